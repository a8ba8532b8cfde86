package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nao1215/urlrisk/internal/classifier"
	"github.com/nao1215/urlrisk/internal/pipeline"
)

// maxBodyBytes bounds request bodies. A batch of a few hundred URLs fits
// comfortably.
const maxBodyBytes = 1 << 20

// Server serves the scoring API.
type Server struct {
	assessor pipeline.Assessor
	batch    *pipeline.BatchProcessor
	logger   *slog.Logger

	// concurrency bounds scoring of one batch request.
	concurrency int

	// artifacts are reported by /healthz.
	artifacts []classifier.ArtifactInfo
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request and lifecycle logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithArtifacts lists the loaded artifacts on /healthz.
func WithArtifacts(infos ...classifier.ArtifactInfo) Option {
	return func(s *Server) {
		s.artifacts = infos
	}
}

// WithBatchConcurrency sets how many URLs of one batch request are scored
// at once.
func WithBatchConcurrency(n int) Option {
	return func(s *Server) {
		s.concurrency = n
	}
}

// New creates a Server that scores with assessor.
func New(assessor pipeline.Assessor, opts ...Option) *Server {
	s := &Server{
		assessor: assessor,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.batch = pipeline.NewBatchProcessor(assessor,
		pipeline.WithConcurrency(s.concurrency),
		pipeline.WithBatchLogger(s.logger),
	)
	return s
}

// Routes returns a chi.Router with every endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/score", s.handleScore)
		r.Post("/report", s.handleReport)
	})
	return r
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully,
// waiting at most shutdownTimeout for in-flight requests.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// logRequests logs one line per request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
			"elapsed", time.Since(start),
		)
	})
}
