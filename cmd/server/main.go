package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"

	"github.com/baditaflorin/go_palindrome/internal/adapters/httpapi"
	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/config"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/go_palindrome/pkg/checker"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	out, err := openLogOutput(cfg.LogFile)
	if err != nil {
		return err
	}
	defer out.Close()

	log, err := createLogger(cfg, out)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting palindrome HTTP server",
		"port", cfg.Port,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"normalizer", cfg.Normalizer,
	)

	normType, err := normalizer.ParseNormalizerType(cfg.Normalizer)
	if err != nil {
		return err
	}

	c, err := checker.New(
		checker.WithPortLogger(log),
		checker.WithNormalizerType(normType),
		checker.WithWarmUp(cfg.WarmUp),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize checker: %w", err)
	}
	log.Info("Checker initialized", "warm_up", cfg.WarmUp, "cpus", runtime.NumCPU())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler := httpapi.NewHandler(c, log, reg, cfg.CheckTimeout)
	server := httpapi.NewServer(handler, httpapi.ServerConfig{
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
	})

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpapi.Serve(ctx, server, ln, log)
}

// loadConfig reads the optional TOML file and applies explicitly set flags on top.
func loadConfig(args []string) (config.Config, error) {
	defaults := config.Default()

	fs := pflag.NewFlagSet("palindrome-server", pflag.ContinueOnError)
	configFile := fs.String("config", "", "Path to a TOML configuration file")
	port := fs.Int("port", defaults.Port, "HTTP server port")
	readTimeout := fs.Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	writeTimeout := fs.Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	checkTimeout := fs.Duration("check-timeout", defaults.CheckTimeout, "Timeout for a single check")
	maxRequestSize := fs.Int("max-request-size", defaults.MaxRequestSize, "Maximum request size in bytes")
	normName := fs.String("normalizer", defaults.Normalizer, "Normalizer: 'unicode' or 'ascii'")
	warmUp := fs.Bool("warm-up", defaults.WarmUp, "Perform warm-up on startup")
	logFile := fs.String("log-file", "", "Log file path (empty = stdout)")
	if err := fs.Parse(args); err != nil {
		return defaults, err
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return cfg, err
	}

	if fs.Changed("port") {
		cfg.Port = *port
	}
	if fs.Changed("read-timeout") {
		cfg.ReadTimeout = *readTimeout
	}
	if fs.Changed("write-timeout") {
		cfg.WriteTimeout = *writeTimeout
	}
	if fs.Changed("check-timeout") {
		cfg.CheckTimeout = *checkTimeout
	}
	if fs.Changed("max-request-size") {
		cfg.MaxRequestSize = *maxRequestSize
	}
	if fs.Changed("normalizer") {
		cfg.Normalizer = *normName
	}
	if fs.Changed("warm-up") {
		cfg.WarmUp = *warmUp
	}
	if fs.Changed("log-file") {
		cfg.LogFile = *logFile
	}

	return cfg, cfg.Validate()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openLogOutput returns stdout when path is empty. The caller owns the
// returned writer and closes it after the logger.
func openLogOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// createLogger creates and configures a logger writing to output
func createLogger(cfg config.Config, output io.Writer) (ports.Logger, error) {
	lc := logger.DefaultConfig(output)
	lc.JsonFormat = cfg.JSONLogs
	lc.Metrics = true

	log, err := logger.NewCustomStdLogger(lc)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}
