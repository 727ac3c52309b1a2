package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/hirokinko/datastore-viewer/internal/pkg/application/viewer"
	dserrors "github.com/hirokinko/datastore-viewer/pkg/datastore/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("datastore-viewer/api")

const (
	TraceAttributeProject string = "datastore-project"
	TraceAttributeKind    string = "datastore-kind"
)

// RegisterHandlers mounts the browse pages and the JSON API on the
// supplied router
func RegisterHandlers(ctx context.Context, r *chi.Mux, app viewer.DatastoreViewer) error {

	log := logging.GetFromContext(ctx)

	r.Use(Logger(log))

	r.Get("/datastore_viewer", NewDashboardHandler(app, log))

	r.Route("/datastore_viewer/projects/{project}", func(r chi.Router) {
		r.Get("/", NewProjectPageHandler(app, log))
		r.Post("/", NewProjectActionHandler(app, log))
		r.Get("/view_entity", NewViewEntityHandler(app, log))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", NewListProjectsHandler(app, log))

		r.Route("/projects/{project}", func(r chi.Router) {
			r.Get("/kinds", NewListKindsHandler(app, log))

			r.Route("/kinds/{kind}/entities", func(r chi.Router) {
				r.Get("/", NewListEntitiesHandler(app, log))
				r.Delete("/", NewDeleteAllEntitiesHandler(app, log))

				r.Get("/{key}", NewRetrieveEntityHandler(app, log))
				r.Delete("/{key}", NewDeleteEntityHandler(app, log))
			})
		})
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func traceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// mapViewerError translates application errors to problem reports
func mapViewerError(w http.ResponseWriter, err error, traceID string) {
	switch {
	case errors.Is(err, dserrors.ErrMalformedKeyToken):
		dserrors.ReportNewBadRequestData(w, err.Error(), traceID)
	case errors.Is(err, dserrors.ErrBadRequest):
		dserrors.ReportNewBadRequestData(w, err.Error(), traceID)
	case errors.Is(err, dserrors.ErrNotFound):
		dserrors.ReportNotFoundError(w, err.Error(), traceID)
	case errors.Is(err, dserrors.ErrUnknownProject):
		dserrors.ReportNotFoundError(w, err.Error(), traceID)
	default:
		dserrors.ReportNewInternalError(w, err.Error(), traceID)
	}
}
