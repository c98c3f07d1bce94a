package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/numwords/internal/config"
	"github.com/agbru/numwords/internal/input"
	"github.com/agbru/numwords/internal/logging"
	"github.com/agbru/numwords/internal/sysmon"
	"github.com/agbru/numwords/internal/words"
)

const (
	// DefaultShutdownTimeout bounds graceful shutdown once the context ends.
	DefaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
	tracerName             = "github.com/agbru/numwords/internal/server"
)

// Server is the HTTP front end of the formatter.
type Server struct {
	addr            string
	formatter       *words.Formatter
	logger          logging.Logger
	metrics         *Metrics
	security        SecurityConfig
	tracer          trace.Tracer
	shutdownTimeout time.Duration
	startTime       time.Time
	sample          func() sysmon.Report
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger replaces the default zerolog logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSecurityConfig replaces DefaultSecurityConfig.
func WithSecurityConfig(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// WithShutdownTimeout sets how long in-flight requests may take to finish.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.shutdownTimeout = d }
}

// NewServer builds a server listening on cfg.Addr whose conversions honour
// cfg.ExponentSign.
func NewServer(cfg config.AppConfig, opts ...Option) *Server {
	var wordOpts []words.Option
	if cfg.ExponentSign {
		wordOpts = append(wordOpts, words.WithExponentSign())
	}
	s := &Server{
		addr:            cfg.Addr,
		formatter:       words.NewFormatter(wordOpts...),
		logger:          logging.NewDefaultLogger(),
		metrics:         NewMetrics(),
		security:        DefaultSecurityConfig(),
		tracer:          otel.Tracer(tracerName),
		shutdownTimeout: DefaultShutdownTimeout,
		startTime:       time.Now(),
		sample:          sysmon.Collect,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return SecurityMiddleware(s.security, requestIDMiddleware(s.metricsMiddleware(h)))
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/words", wrap(s.handleWords))
	mux.HandleFunc("/health", wrap(s.handleHealth))
	mux.HandleFunc("/metrics", wrap(s.handleMetrics))
	return mux
}

// Start listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server", logging.Duration("timeout", s.shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// wordResponse is the body of GET /v1/words.
type wordResponse struct {
	Value     string `json:"value"`
	Canonical string `json:"canonical"`
	Words     string `json:"words"`
}

// batchRequest is the body of POST /v1/words. Values may be JSON numbers or
// strings, so that NaN and the infinities can be sent.
type batchRequest struct {
	Values []json.RawMessage `json:"values"`
}

type batchResponse struct {
	Words []string `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	sysmon.Report
}

func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleSingle(w, r)
	case http.MethodPost:
		s.handleBatch(w, r)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleSingle(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "words.single",
		trace.WithAttributes(attribute.String("request.id", RequestID(r.Context()))))
	defer span.End()

	raw := r.URL.Query().Get("value")
	if strings.TrimSpace(raw) == "" {
		s.failSpan(span, errors.New("missing input"))
		s.writeError(w, http.StatusBadRequest, "missing input")
		return
	}
	v, err := input.ParseNumber(raw)
	if err != nil {
		s.failSpan(span, err)
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := wordResponse{Value: raw, Canonical: words.FormatInvariant(v), Words: s.formatter.Words(v)}
	span.SetAttributes(attribute.String("numwords.canonical", resp.Canonical))
	s.metrics.AddConversions(1)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "words.batch",
		trace.WithAttributes(attribute.String("request.id", RequestID(r.Context()))))
	defer span.End()

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.failSpan(span, err)
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if s.security.MaxBatchSize > 0 && len(req.Values) > s.security.MaxBatchSize {
		s.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("batch of %d values exceeds the limit of %d", len(req.Values), s.security.MaxBatchSize))
		return
	}

	values, err := decodeValues(req.Values)
	if err != nil {
		s.failSpan(span, err)
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := s.formatter.Batch(values)
	switch {
	case errors.Is(err, words.ErrMissingInput):
		s.failSpan(span, err)
		s.writeError(w, http.StatusBadRequest, "missing input")
		return
	case errors.Is(err, words.ErrEmptyInput):
		s.failSpan(span, err)
		s.writeError(w, http.StatusBadRequest, "empty input")
		return
	case err != nil:
		s.failSpan(span, err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	span.SetAttributes(attribute.Int("numwords.count", len(out)))
	s.metrics.AddConversions(len(out))
	s.writeJSON(w, http.StatusOK, batchResponse{Words: out})
}

// decodeValues turns raw JSON values into numbers. A nil input stays nil so
// that the batch conversion can tell a missing list from an empty one.
func decodeValues(raw []json.RawMessage) ([]float64, error) {
	if raw == nil {
		return nil, nil
	}
	values := make([]float64, 0, len(raw))
	for i, item := range raw {
		token := strings.TrimSpace(string(item))
		if strings.HasPrefix(token, `"`) {
			if err := json.Unmarshal(item, &token); err != nil {
				return nil, fmt.Errorf("values[%d]: %w", i, err)
			}
		}
		v, err := input.ParseNumber(token)
		if err != nil {
			return nil, fmt.Errorf("values[%d]: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(s.startTime).Seconds(),
		Report:        s.sample(),
	})
}

func (s *Server) failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && s.logger != nil {
		s.logger.Error("writing response", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	if s.logger != nil {
		s.logger.Debug("request rejected", logging.Int("status", status), logging.String("reason", msg))
	}
	s.writeJSON(w, status, errorResponse{Error: msg})
}
