// Package httpapi exposes the palindrome checker over fasthttp.
package httpapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// CheckRequest is the body of POST /palindrome.
type CheckRequest struct {
	Text string `json:"text"`
}

// CheckResponse reports the outcome of one check.
type CheckResponse struct {
	RequestID  string `json:"request_id"`
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
	Palindrome bool   `json:"palindrome"`
	Verdict    string `json:"verdict"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// knownPaths bounds the cardinality of the path label.
var knownPaths = map[string]bool{
	"/health":     true,
	"/palindrome": true,
	"/metrics":    true,
}

// Handler routes requests to the checker.
type Handler struct {
	checker      ports.PalindromeChecker
	logger       ports.Logger
	metrics      *Metrics
	metricsHTTP  fasthttp.RequestHandler
	checkTimeout time.Duration
}

// NewHandler creates a handler whose metrics are registered with and served from reg.
func NewHandler(checker ports.PalindromeChecker, logger ports.Logger, reg *prometheus.Registry, checkTimeout time.Duration) *Handler {
	return &Handler{
		checker:      checker,
		logger:       logger,
		metrics:      NewMetrics(reg),
		metricsHTTP:  fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		checkTimeout: checkTimeout,
	}
}

// ServeFastHTTP is the fasthttp request handler.
func (h *Handler) ServeFastHTTP(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	path := string(ctx.Path())

	ctx.Response.Header.Set("Server", "PalindromeServer")

	switch path {
	case "/health":
		h.handleHealthCheck(ctx)
	case "/palindrome":
		h.handleCheck(ctx)
	case "/metrics":
		h.metricsHTTP(ctx)
	default:
		writeJSONError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	label := path
	if !knownPaths[label] {
		label = "other"
	}
	h.metrics.observeRequest(label, ctx.Response.StatusCode())

	h.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", path,
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (h *Handler) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	writeJSONResponse(ctx, fasthttp.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) handleCheck(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeJSONError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CheckRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeJSONError(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	c, cancel := context.WithTimeout(context.Background(), h.checkTimeout)
	defer cancel()

	result := h.checker.Check(c, req.Text)
	if msg, ok := result.Details["error"].(string); ok {
		h.logger.Error("Palindrome check failed", "error", msg)
		writeJSONError(ctx, fasthttp.StatusServiceUnavailable, msg)
		return
	}
	h.metrics.observeCheck(result.Palindrome)

	requestID := uuid.NewString()
	ctx.Response.Header.Set("X-Request-ID", requestID)

	writeJSONResponse(ctx, fasthttp.StatusOK, CheckResponse{
		RequestID:  requestID,
		Text:       result.Input,
		Normalized: result.Normalized,
		Palindrome: result.Palindrome,
		Verdict:    result.Verdict(),
	})
}

func writeJSONResponse(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		writeJSONError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeJSONError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)

	body, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(body)
}
