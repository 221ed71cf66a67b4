package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/siteqa"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout is how long in-flight requests get to finish on shutdown.
const ShutdownTimeout = 5 * time.Second

// Server exposes the host-info endpoint:
//
//	GET /hostinfo/{host}
//
// It scrapes the host's origin, asks every configured question about it and
// responds with a JSON array of answers in question order.
type Server struct {
	scraper   siteqa.Scraper
	asker     siteqa.Asker
	questions siteqa.QuestionSource
	logger    *slog.Logger
	limiter   *ClientLimiter

	handler http.Handler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request logger. Defaults to discarding logs.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRateLimit limits each client IP to rps requests per second.
// Zero or negative disables limiting, which is the default.
func WithRateLimit(rps float64) ServerOption {
	return func(s *Server) {
		if rps > 0 {
			s.limiter = NewClientLimiter(rps)
		}
	}
}

// NewServer creates a new Server.
func NewServer(scraper siteqa.Scraper, asker siteqa.Asker, questions siteqa.QuestionSource, opts ...ServerOption) *Server {
	s := &Server{
		scraper:   scraper,
		asker:     asker,
		questions: questions,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /hostinfo/{host...}", s.handleHostInfo)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	})
	s.handler = c.Handler(s.logRequests(s.rateLimit(mux)))

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleHostInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	origin, err := siteqa.NormalizeOrigin(repairScheme(r.PathValue("host")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	questions, err := s.questions.Questions(ctx)
	if err != nil {
		s.logger.Error("load questions", "err", err)
		s.writeError(w, r, siteqa.Errorf(siteqa.EINTERNAL, "questions unavailable"))
		return
	}

	content := s.scraper.Scrape(ctx, origin)

	answers, err := siteqa.AnswerAll(ctx, s.asker, content, questions)
	if err != nil {
		s.logger.Error("answer questions", "url", origin, "err", err)
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, answers)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// errorStatusCodes maps application error codes to HTTP status codes.
var errorStatusCodes = map[string]int{
	siteqa.ECONFLICT:    http.StatusConflict,
	siteqa.EINVALID:     http.StatusBadRequest,
	siteqa.ENOTFOUND:    http.StatusNotFound,
	siteqa.EUNAVAILABLE: http.StatusBadGateway,
	siteqa.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := errorStatusCodes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := siteqa.ErrorCode(err), siteqa.ErrorMessage(err)
	if code == siteqa.EINTERNAL {
		s.logger.Error("internal error", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// repairScheme restores the double slash of a scheme that path cleaning
// collapsed, e.g. "https:/example.com" back to "https://example.com".
func repairScheme(host string) string {
	for _, scheme := range []string{"http:/", "https:/"} {
		if strings.HasPrefix(strings.ToLower(host), scheme) && !strings.HasPrefix(strings.ToLower(host), scheme+"/") {
			return host[:len(scheme)] + "/" + host[len(scheme):]
		}
	}
	return host
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests tags each request with an X-Request-ID and logs its outcome.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func(begin time.Time) {
			s.logger.Info("request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(begin),
			)
		}(time.Now())

		next.ServeHTTP(rec, r)
	})
}

// rateLimit rejects clients exceeding the configured rate with 429.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientIP(r)) {
			writeJSON(w, http.StatusTooManyRequests, &ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
