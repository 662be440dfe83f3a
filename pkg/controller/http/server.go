package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/globalnoc/dutyboard/pkg/domain/interfaces"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
	"github.com/globalnoc/dutyboard/pkg/service/dialpad"
	"github.com/globalnoc/dutyboard/pkg/usecase"
	"github.com/globalnoc/dutyboard/pkg/utils/errutil"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

// Server exposes the cached roster and on-demand status reports as a small
// pull-only JSON API.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	store  interfaces.RosterStore
}

// Options is a functional option for Server
type Options func(*Server)

// New creates the HTTP server over the given use cases and store
func New(uc *usecase.UseCases, store interfaces.RosterStore, opts ...Options) *Server {
	r := chi.NewRouter()
	s := &Server{
		router: r,
		uc:     uc,
		store:  store,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/roster", s.handleRoster)
		r.Get("/status", s.handleStatus)
		r.Get("/summary", s.handleSummary)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// statusCode maps domain errors to HTTP status codes
func statusCode(err error) int {
	switch {
	case errors.Is(err, interfaces.ErrCacheMissing):
		return http.StatusNotFound
	case dialpad.IsAuthError(err):
		return http.StatusBadGateway
	case goerr.HasTag(err, dialpad.TagRateLimited), goerr.HasTag(err, dialpad.TagTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := s.store.LoadRoster(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusCode(err))
		return
	}
	writeJSON(w, r, roster)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	format := types.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = types.FormatDetailedJSON
	}
	switch format {
	case types.FormatDetailedJSON, types.FormatJSON:
		// supported over HTTP
	default:
		errutil.HandleHTTP(r.Context(), w,
			goerr.New("unsupported format for HTTP status endpoint", goerr.V("format", format)),
			http.StatusBadRequest)
		return
	}

	report, err := s.uc.ReportStatus(r.Context(), usecase.StatusOptions{})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusCode(err))
		return
	}

	if format == types.FormatJSON {
		writeJSON(w, r, report.Raw)
		return
	}
	writeJSON(w, r, report)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	report, err := s.uc.ReportStatus(r.Context(), usecase.StatusOptions{})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusCode(err))
		return
	}

	writeJSON(w, r, map[string]any{
		"report_id":   report.ReportID,
		"generated":   report.GeneratedAt,
		"cache_stale": report.CacheStale,
		"summary":     report.Summary,
	})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
