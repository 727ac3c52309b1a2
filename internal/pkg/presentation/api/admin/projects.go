package admin

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/hirokinko/datastore-viewer/internal/pkg/application/viewer"
	"github.com/hirokinko/datastore-viewer/pkg/datastore"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const entitiesPerPage int = 20

// NewDashboardHandler handles GET requests for the landing page. A
// project_name query parameter redirects straight to that project's
// browse page.
func NewDashboardHandler(app viewer.ProjectLister, logger *slog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		projectName := r.URL.Query().Get("project_name")
		if projectName != "" {
			http.Redirect(w, r, "/datastore_viewer/projects/"+projectName, http.StatusFound)
			return
		}

		renderPage(w, logger, "dashboard", dashboardPageModel{
			Projects:       app.Projects(ctx),
			DefaultProject: app.DefaultProject(ctx),
		})
	})
}

// NewProjectPageHandler handles GET requests for the per project
// browse page
func NewProjectPageHandler(app viewer.DatastoreViewer, logger *slog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		project := chi.URLParam(r, "project")
		namespace := r.URL.Query().Get("namespace")

		ctx, span := tracer.Start(ctx, "browse-project",
			trace.WithAttributes(attribute.String(TraceAttributeProject, project)),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		currentNamespace, err := app.CurrentNamespace(ctx, project, namespace)
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		namespaces, err := app.FetchNamespaces(ctx, project)
		if err != nil {
			log.Error("failed to fetch namespaces", "err", err.Error())
			mapViewerError(w, err, traceID(ctx))
			return
		}

		kinds, err := app.FetchKinds(ctx, project, namespace)
		if err != nil {
			log.Error("failed to fetch kinds", "err", err.Error())
			mapViewerError(w, err, traceID(ctx))
			return
		}

		currentKind := r.URL.Query().Get("kind")
		if currentKind == "" && len(kinds) > 0 {
			http.Redirect(w, r, buildRedirectPath(r, map[string]string{"kind": kinds[0]}), http.StatusFound)
			return
		}

		propertiesByKind, err := app.FetchParentProperties(ctx, project, namespace)
		if err != nil {
			log.Error("failed to fetch kind properties", "err", err.Error())
			mapViewerError(w, err, traceID(ctx))
			return
		}

		model := projectPageModel{
			ProjectName:      project,
			Namespaces:       namespaces,
			CurrentNamespace: currentNamespace,
			Kinds:            kinds,
			CurrentKind:      currentKind,
			Properties:       propertiesByKind[currentKind],
		}

		if currentKind != "" {
			var page *datastore.EntityPage

			page, err = app.FetchEntities(ctx, project, namespace, currentKind, entitiesPerPage, r.URL.Query().Get("cursor"))
			if err != nil {
				log.Error("failed to fetch entities", "err", err.Error())
				mapViewerError(w, err, traceID(ctx))
				return
			}

			model.Entities = entityRows(page.Entities, model.Properties)

			if page.NextCursor != "" {
				model.NextPagePath = buildRedirectPath(r, map[string]string{"cursor": page.NextCursor})
			}
		}

		renderPage(w, log, "project", model)
	})
}

// NewProjectActionHandler handles POST requests from the browse page
// form: action "delete" removes the entity identified by the submitted
// key token and action "delete_all" removes every entity of the
// submitted kind
func NewProjectActionHandler(app viewer.EntityDeleter, logger *slog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		project := chi.URLParam(r, "project")
		namespace := r.URL.Query().Get("namespace")

		ctx, span := tracer.Start(ctx, "project-action",
			trace.WithAttributes(attribute.String(TraceAttributeProject, project)),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		err = r.ParseForm()
		if err != nil {
			mapViewerError(w, err, traceID(ctx))
			return
		}

		action := r.PostForm.Get("action")
		token := r.PostForm.Get("key")
		kind := r.PostForm.Get("kind")

		log.Info("project action", "action", action, "key", token, "kind", kind)

		switch action {
		case "delete":
			var key *datastore.Key
			key, err = datastore.DecodeKeyToken(token)
			if err == nil {
				err = app.DeleteEntity(ctx, project, namespace, key)
			}
		case "delete_all":
			err = app.DeleteAllEntities(ctx, project, namespace, kind)
		default:
			// unknown actions fall through to the redirect, matching
			// the permissive behaviour of the original console
		}

		if err != nil {
			log.Error("project action failed", "action", action, "err", err.Error())
			mapViewerError(w, err, traceID(ctx))
			return
		}

		// the t parameter busts any stale browser cache of the page
		http.Redirect(w, r, buildRedirectPath(r, map[string]string{
			"t": strconv.FormatInt(time.Now().UTC().Unix(), 10),
		}), http.StatusFound)
	})
}

// buildRedirectPath merges overrides into the current query string and
// returns a path suitable for a redirect back to the same page
func buildRedirectPath(r *http.Request, overrides map[string]string) string {
	query := r.URL.Query()
	for k, v := range overrides {
		query.Set(k, v)
	}

	return r.URL.Path + "?" + query.Encode()
}

func entityRows(entities []datastore.Entity, properties []string) []entityRow {
	rows := make([]entityRow, 0, len(entities))

	for _, entity := range entities {
		row := entityRow{
			Token:  entity.Key.EncodeToken(),
			Key:    entity.Key.String(),
			Values: make([]string, 0, len(properties)),
		}

		for _, name := range properties {
			value := entity.Properties[name]
			row.Values = append(row.Values, formatValue(value))
		}

		rows = append(rows, row)
	}

	return rows
}

func formatValue(value any) string {
	tag := datastore.Classify(value)

	switch tag {
	case datastore.TypeNull:
		return ""
	case datastore.TypeKey:
		return value.(*datastore.Key).String()
	}

	return fmt.Sprint(value)
}

// propertyNamesOf returns the sorted property names of an entity, used
// as a fallback when no schema has been discovered for its kind
func propertyNamesOf(entity datastore.Entity) []string {
	names := make([]string, 0, len(entity.Properties))
	for name := range entity.Properties {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
