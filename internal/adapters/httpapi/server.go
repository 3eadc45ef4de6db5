package httpapi

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/valyala/fasthttp"
	"golang.org/x/sync/errgroup"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// ServerConfig holds the transport limits of the server.
type ServerConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int
}

// NewServer creates a fasthttp server around h.
func NewServer(h *Handler, cfg ServerConfig) *fasthttp.Server {
	return &fasthttp.Server{
		Handler:               h.ServeFastHTTP,
		Name:                  "PalindromeServer",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}
}

// Serve runs srv on ln until ctx is done or serving fails, then shuts the
// server down and waits for open connections to finish.
func Serve(ctx context.Context, srv *fasthttp.Server, ln net.Listener, logger ports.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server listening", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
