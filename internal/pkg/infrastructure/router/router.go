package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
)

type Option func(*settings)

type settings struct {
	debug bool
}

// WithDebugLogging lowers the request log level to debug and enables
// CORS debug output
func WithDebugLogging(enabled bool) Option {
	return func(s *settings) {
		s.debug = enabled
	}
}

// New creates a router with the middleware every endpoint shares:
// permissive CORS so the API is reachable from browser tooling,
// structured JSON request logging and otel trace propagation. It also
// mounts the health probe and redirects the bare root to the viewer
// pages.
func New(serviceName string, options ...Option) *chi.Mux {
	s := &settings{}
	for _, option := range options {
		option(s)
	}

	r := chi.NewRouter()

	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		Debug:          s.debug,
	}).Handler)

	logLevel := "info"
	if s.debug {
		logLevel = "debug"
	}

	r.Use(httplog.RequestLogger(
		httplog.NewLogger(serviceName, httplog.Options{
			JSON:     true,
			LogLevel: logLevel,
		}),
	))

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/datastore_viewer", http.StatusFound)
	})

	return r
}
