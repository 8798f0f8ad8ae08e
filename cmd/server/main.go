package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/config"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override environment
	port := flag.String("port", cfg.Server.Port, "Server port")
	host := flag.String("host", cfg.Server.Host, "Listen host")
	timeout := flag.Duration("timeout", cfg.Sandbox.Timeout, "Per-run script timeout")
	poolSize := flag.Int("pool", cfg.Sandbox.PoolSize, "Sandbox runtime pool size")
	dev := flag.Bool("dev", cfg.Logging.Development, "Development mode (colored debug logs)")
	noLimit := flag.Bool("no-rate-limit", !cfg.RateLimit.Enabled, "Disable per-client rate limiting")
	flag.Parse()

	cfg.Server.Port = *port
	cfg.Server.Host = *host
	cfg.Sandbox.Timeout = *timeout
	cfg.Sandbox.PoolSize = *poolSize
	cfg.RateLimit.Enabled = !*noLimit
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-sigChan:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}
