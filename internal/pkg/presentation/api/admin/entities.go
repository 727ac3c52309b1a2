package admin

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/hirokinko/datastore-viewer/internal/pkg/application/viewer"
	"github.com/hirokinko/datastore-viewer/pkg/datastore"
	dserrors "github.com/hirokinko/datastore-viewer/pkg/datastore/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NewViewEntityHandler handles GET requests for single entity
// inspection from the browse page
func NewViewEntityHandler(app viewer.DatastoreViewer, logger *slog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		project := chi.URLParam(r, "project")
		namespace := r.URL.Query().Get("namespace")

		ctx, span := tracer.Start(ctx, "view-entity",
			trace.WithAttributes(attribute.String(TraceAttributeProject, project)),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		key, err := datastore.DecodeKeyToken(r.URL.Query().Get("key"))
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		entity, err := app.FetchEntity(ctx, project, namespace, key)
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"project_name": project,
			"key":          entity.Key.String(),
			"entity":       datastore.BuildEntityJSON(project, *entity, propertyNamesOf(*entity)),
		})
	})
}

// NewListProjectsHandler handles GET requests for the configured
// project list
func NewListProjectsHandler(app viewer.ProjectLister, logger *slog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		type projectResult struct {
			ProjectName string `json:"project_name"`
		}

		results := make([]projectResult, 0)
		for _, project := range app.Projects(ctx) {
			results = append(results, projectResult{ProjectName: project.ID})
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"projectResults": results,
		})
	})
}

// NewListKindsHandler handles GET requests for the kinds of a project
// together with their indexed property names
func NewListKindsHandler(app viewer.SchemaBrowser, logger *slog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		project := chi.URLParam(r, "project")
		namespace := r.URL.Query().Get("namespace")

		ctx, span := tracer.Start(ctx, "list-kinds",
			trace.WithAttributes(attribute.String(TraceAttributeProject, project)),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		kinds, err := app.FetchKinds(ctx, project, namespace)
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		propertiesByKind, err := app.FetchParentProperties(ctx, project, namespace)
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		type propertyResult struct {
			PropertyName string `json:"property_name"`
		}

		type kindResult struct {
			Kind              string           `json:"kind"`
			IndexedProperties []propertyResult `json:"indexed_properties"`
		}

		results := make([]kindResult, 0, len(kinds))
		for _, kind := range kinds {
			properties := make([]propertyResult, 0, len(propertiesByKind[kind]))
			for _, name := range propertiesByKind[kind] {
				properties = append(properties, propertyResult{PropertyName: name})
			}

			results = append(results, kindResult{Kind: kind, IndexedProperties: properties})
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"kindResults": results,
		})
	})
}

// NewListEntitiesHandler handles GET requests for a page of entities
// of a kind
func NewListEntitiesHandler(app viewer.DatastoreViewer, logger *slog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		project := chi.URLParam(r, "project")
		kind := chi.URLParam(r, "kind")
		namespace := r.URL.Query().Get("namespace")

		ctx, span := tracer.Start(ctx, "list-entities",
			trace.WithAttributes(
				attribute.String(TraceAttributeProject, project),
				attribute.String(TraceAttributeKind, kind),
			),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		limit := entitiesPerPage
		if lim := r.URL.Query().Get("limit"); lim != "" {
			limit, err = strconv.Atoi(lim)
			if err != nil || limit <= 0 {
				err = dserrors.NewBadRequestError("invalid limit parameter " + lim)
				mapViewerError(w, err, traceID(ctx))
				return
			}
		}

		page, err := app.FetchEntities(ctx, project, namespace, kind, limit, r.URL.Query().Get("cursor"))
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		propertiesByKind, err := app.FetchParentProperties(ctx, project, namespace)
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		results := make([]datastore.EntityJSON, 0, len(page.Entities))
		for _, entity := range page.Entities {
			names := propertiesByKind[kind]
			if len(names) == 0 {
				names = propertyNamesOf(entity)
			}

			results = append(results, datastore.BuildEntityJSON(project, entity, names))
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"entityResults": results,
			"nextCursor":    page.NextCursor,
		})
	})
}

// NewRetrieveEntityHandler handles GET requests for a single entity by
// its encoded key token
func NewRetrieveEntityHandler(app viewer.EntityBrowser, logger *slog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		project := chi.URLParam(r, "project")
		kind := chi.URLParam(r, "kind")
		namespace := r.URL.Query().Get("namespace")

		ctx, span := tracer.Start(ctx, "retrieve-entity",
			trace.WithAttributes(
				attribute.String(TraceAttributeProject, project),
				attribute.String(TraceAttributeKind, kind),
			),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		key, err := decodeKeyTokenOfKind(chi.URLParam(r, "key"), kind)
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		entity, err := app.FetchEntity(ctx, project, namespace, key)
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"entityResult": datastore.BuildEntityJSON(project, *entity, propertyNamesOf(*entity)),
		})
	})
}

// NewDeleteEntityHandler handles DELETE requests for a single entity
// by its encoded key token
func NewDeleteEntityHandler(app viewer.EntityDeleter, logger *slog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		project := chi.URLParam(r, "project")
		kind := chi.URLParam(r, "kind")
		namespace := r.URL.Query().Get("namespace")

		ctx, span := tracer.Start(ctx, "delete-entity",
			trace.WithAttributes(
				attribute.String(TraceAttributeProject, project),
				attribute.String(TraceAttributeKind, kind),
			),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		key, err := decodeKeyTokenOfKind(chi.URLParam(r, "key"), kind)
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		err = app.DeleteEntity(ctx, project, namespace, key)
		if err != nil {
			log.Error("failed to delete entity", "key", key.String(), "err", err.Error())
			mapViewerError(w, err, traceID(ctx))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// NewDeleteAllEntitiesHandler handles DELETE requests that remove
// every entity of a kind
func NewDeleteAllEntitiesHandler(app viewer.EntityDeleter, logger *slog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		project := chi.URLParam(r, "project")
		kind := chi.URLParam(r, "kind")
		namespace := r.URL.Query().Get("namespace")

		ctx, span := tracer.Start(ctx, "delete-all-entities",
			trace.WithAttributes(
				attribute.String(TraceAttributeProject, project),
				attribute.String(TraceAttributeKind, kind),
			),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		err = app.DeleteAllEntities(ctx, project, namespace, kind)
		if err != nil {
			log.Error("failed to delete entities", "kind", kind, "err", err.Error())
			mapViewerError(w, err, traceID(ctx))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// decodeKeyTokenOfKind decodes a key token and checks that the key it
// names belongs under the kind segment of the request path. A token of
// another kind is treated as not found rather than leaked across kinds.
func decodeKeyTokenOfKind(token, kind string) (*datastore.Key, error) {
	key, err := datastore.DecodeKeyToken(token)
	if err != nil {
		return nil, err
	}

	if key.Kind() != kind {
		return nil, dserrors.NewNotFoundError(fmt.Sprintf("no %s entity for key %s", kind, key.String()))
	}

	return key, nil
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	buf, err := json.Marshal(body)
	if err != nil {
		logger.Error("failed to marshal response", "err", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf)
}
