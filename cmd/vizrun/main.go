package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/dsaviz/internal/evaluator"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/config"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/logging"
	"github.com/GriffinCanCode/dsaviz/internal/sandbox"
	"github.com/GriffinCanCode/dsaviz/internal/utils"
)

func main() {
	kind := flag.String("kind", "array", "Structure kind tag")
	timeout := flag.Duration("timeout", 0, "Script timeout (defaults to SANDBOX_TIMEOUT)")
	pretty := flag.Bool("pretty", false, "Indent JSON output")
	verbose := flag.Bool("v", false, "Log the run to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: vizrun [flags] <script.js | ->\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	code, err := run(flag.Arg(0), *kind, *timeout, *pretty, *verbose, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vizrun: %v\n", err)
	}
	os.Exit(code)
}

// run returns 0 for a clean run, 1 when the script failed and 2 when the
// request itself could not be evaluated.
func run(path, kindTag string, timeout time.Duration, pretty, verbose bool, out io.Writer) (int, error) {
	source, err := readSource(path)
	if err != nil {
		return 2, err
	}

	cfg := config.LoadOrDefault()
	kind, err := utils.ValidateKind(kindTag)
	if err != nil {
		return 2, err
	}
	if err := utils.ValidateSource(source, cfg.Sandbox.MaxSourceBytes); err != nil {
		return 2, err
	}

	limits := cfg.Sandbox.Runtime()
	if timeout > 0 {
		limits.Timeout = timeout
	}
	rt, err := sandbox.New(limits)
	if err != nil {
		return 2, err
	}
	defer rt.Close()

	logger := logging.NewNop()
	if verbose {
		l, err := logging.New(logging.Config{Level: "debug", Development: true, OutputPaths: []string{"stderr"}})
		if err != nil {
			return 2, err
		}
		logger = l
		defer l.Sync()
	}

	result := evaluator.New(rt, logger, nil, nil).Run(context.Background(), source, kind)

	var data []byte
	if pretty {
		data, err = sonic.MarshalIndent(result, "", "  ")
	} else {
		data, err = sonic.Marshal(result)
	}
	if err != nil {
		return 2, fmt.Errorf("encode result: %w", err)
	}
	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return 2, err
	}

	if result.Failed() {
		return 1, nil
	}
	return 0, nil
}

func readSource(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(data), nil
}
