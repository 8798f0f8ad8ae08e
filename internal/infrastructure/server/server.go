package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/dsaviz/internal/api/http"
	"github.com/GriffinCanCode/dsaviz/internal/api/middleware"
	"github.com/GriffinCanCode/dsaviz/internal/api/ws"
	"github.com/GriffinCanCode/dsaviz/internal/evaluator"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/config"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/logging"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/dsaviz/internal/replay"
	"github.com/GriffinCanCode/dsaviz/internal/sandbox"
	"github.com/GriffinCanCode/dsaviz/internal/templates"
)

// Options overrides process-wide collaborators. Zero values fall back to
// the production defaults.
type Options struct {
	Logger *logging.Logger
	// Registry receives every collector and backs /metrics. Defaults to the
	// global Prometheus registry.
	Registry *prometheus.Registry
}

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	http    *http.Server
	pool    *sandbox.Pool
	tracer  *tracing.Tracer
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	return NewServerWithOptions(cfg, Options{})
}

// NewServerWithOptions creates a server with injected collaborators
func NewServerWithOptions(cfg *config.Config, opts Options) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		l, err := logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		logger = l
	}

	logger.Info("Initializing DSA Visualizer server",
		zap.String("addr", cfg.Server.Addr()),
		zap.Duration("sandbox_timeout", cfg.Sandbox.Timeout),
		zap.Int("sandbox_pool_size", cfg.Sandbox.PoolSize),
	)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}
	metrics := monitoring.NewMetrics(registerer)
	logger.Info("Performance monitoring initialized")

	tracer := tracing.New("dsaviz", logger.Named("tracing").Logger)
	logger.Info("Distributed tracing initialized")

	pool, err := sandbox.NewPool(cfg.Sandbox.Runtime(), cfg.Sandbox.PoolSize)
	if err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to create sandbox pool: %w", err)
	}
	metrics.SetPoolAvailable(pool.Stats().Available)

	tmpl, err := templates.Load()
	if err != nil {
		pool.Close()
		tracer.Close()
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	logger.Info("Templates loaded", zap.Int("count", len(tmpl.All())))

	ev := evaluator.New(pool, logger.Named("evaluator"), metrics, tracer)
	replayer := replay.New(logger.Named("replay"), metrics)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))

	limit := middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Enabled:           cfg.RateLimit.Enabled,
	})
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
	}

	handlers := apihttp.NewHandlers(ev, replayer, tmpl, metrics, cfg.Sandbox.MaxSourceBytes)
	wsHandler := ws.NewHandler(ev, logger.Named("stream"), metrics, ws.Config{
		Debounce:       cfg.Stream.Debounce,
		MaxSourceBytes: cfg.Sandbox.MaxSourceBytes,
	})

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(monitoring.Handler(gatherer)))

	// Catalog
	router.GET("/kinds", handlers.Kinds)
	router.GET("/templates", handlers.ListTemplates)
	router.GET("/templates/:kind", handlers.GetTemplate)

	// Evaluation
	router.POST("/run", limit, handlers.Run)
	router.POST("/structures/:kind/replay", limit, handlers.Replay)

	// WebSocket
	router.GET("/stream", limit, wsHandler.HandleConnection)

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		pool:    pool,
		tracer:  tracer,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Handler returns the routed HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it stops. A graceful
// Shutdown makes Run return nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones until ctx
// expires, then releases the sandbox pool and flushes pending spans.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	err := s.http.Shutdown(ctx)
	if err != nil {
		err = fmt.Errorf("http shutdown: %w", err)
	}
	if cerr := s.pool.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("sandbox pool close: %w", cerr)
	}
	s.tracer.Close()

	s.logger.Info("Server stopped")
	_ = s.logger.Sync()
	return err
}
