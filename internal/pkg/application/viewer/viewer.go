package viewer

import (
	"context"
	"sort"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/hirokinko/datastore-viewer/pkg/datastore"
	"github.com/hirokinko/datastore-viewer/pkg/datastore/client"
	"github.com/hirokinko/datastore-viewer/pkg/datastore/errors"
)

//go:generate moq -rm -out viewer_mock.go . DatastoreViewer

type ProjectLister interface {
	Projects(ctx context.Context) []Project
	DefaultProject(ctx context.Context) string
}

type SchemaBrowser interface {
	CurrentNamespace(ctx context.Context, project, namespace string) (string, error)
	FetchNamespaces(ctx context.Context, project string) ([]string, error)
	FetchKinds(ctx context.Context, project, namespace string) ([]string, error)
	FetchParentProperties(ctx context.Context, project, namespace string) (map[string][]string, error)
}

type EntityBrowser interface {
	FetchEntities(ctx context.Context, project, namespace, kind string, limit int, cursor string) (*datastore.EntityPage, error)
	FetchEntity(ctx context.Context, project, namespace string, key *datastore.Key) (*datastore.Entity, error)
}

type EntityDeleter interface {
	DeleteEntity(ctx context.Context, project, namespace string, key *datastore.Key) error
	DeleteAllEntities(ctx context.Context, project, namespace, kind string) error
}

type DatastoreViewer interface {
	ProjectLister
	SchemaBrowser
	EntityBrowser
	EntityDeleter
}

type Project struct {
	ID       string
	Endpoint string
}

type clientFactory func(endpoint, projectID string, options ...client.Option) client.DatastoreClient

type viewerApp struct {
	projects       map[string]Project
	defaultProject string
	newClient      clientFactory
	debug          bool
}

// WithClientFactory overrides how repository clients are constructed.
// Used by tests.
func WithClientFactory(factory clientFactory) func(*viewerApp) {
	return func(app *viewerApp) {
		app.newClient = factory
	}
}

// Debug enables request/response dumps from the repository clients
func Debug(enabled string) func(*viewerApp) {
	return func(app *viewerApp) {
		app.debug = (enabled == "true")
	}
}

func New(ctx context.Context, cfg Config, options ...func(*viewerApp)) (DatastoreViewer, error) {
	if len(cfg.Projects) == 0 {
		return nil, errors.NewBadRequestError("at least one project must be configured")
	}

	app := &viewerApp{
		projects:       make(map[string]Project, len(cfg.Projects)),
		defaultProject: cfg.Projects[0].ID,
		newClient:      client.NewDatastoreClient,
	}

	for _, project := range cfg.Projects {
		app.projects[project.ID] = Project{ID: project.ID, Endpoint: project.Endpoint}
	}

	for _, option := range options {
		option(app)
	}

	return app, nil
}

func (app *viewerApp) Projects(ctx context.Context) []Project {
	projects := make([]Project, 0, len(app.projects))

	for _, project := range app.projects {
		projects = append(projects, project)
	}

	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })

	return projects
}

func (app *viewerApp) DefaultProject(ctx context.Context) string {
	return app.defaultProject
}

func (app *viewerApp) CurrentNamespace(ctx context.Context, project, namespace string) (string, error) {
	repository, err := app.repositoryFor(project, namespace)
	if err != nil {
		return "", err
	}

	return repository.CurrentNamespace(), nil
}

func (app *viewerApp) FetchNamespaces(ctx context.Context, project string) ([]string, error) {
	repository, err := app.repositoryFor(project, "")
	if err != nil {
		return nil, err
	}

	return repository.FetchNamespaces(ctx)
}

func (app *viewerApp) FetchKinds(ctx context.Context, project, namespace string) ([]string, error) {
	repository, err := app.repositoryFor(project, namespace)
	if err != nil {
		return nil, err
	}

	return repository.FetchKinds(ctx)
}

func (app *viewerApp) FetchParentProperties(ctx context.Context, project, namespace string) (map[string][]string, error) {
	repository, err := app.repositoryFor(project, namespace)
	if err != nil {
		return nil, err
	}

	return repository.FetchParentProperties(ctx)
}

func (app *viewerApp) FetchEntities(ctx context.Context, project, namespace, kind string, limit int, cursor string) (*datastore.EntityPage, error) {
	repository, err := app.repositoryFor(project, namespace)
	if err != nil {
		return nil, err
	}

	return repository.FetchEntities(ctx, kind, limit, cursor)
}

func (app *viewerApp) FetchEntity(ctx context.Context, project, namespace string, key *datastore.Key) (*datastore.Entity, error) {
	repository, err := app.repositoryFor(project, namespace)
	if err != nil {
		return nil, err
	}

	boundKey, err := repository.BuildKeyByFlatPath(key.FlatPath())
	if err != nil {
		return nil, err
	}

	return repository.FetchEntity(ctx, boundKey)
}

func (app *viewerApp) DeleteEntity(ctx context.Context, project, namespace string, key *datastore.Key) error {
	repository, err := app.repositoryFor(project, namespace)
	if err != nil {
		return err
	}

	boundKey, err := repository.BuildKeyByFlatPath(key.FlatPath())
	if err != nil {
		return err
	}

	return repository.Delete(ctx, boundKey)
}

func (app *viewerApp) DeleteAllEntities(ctx context.Context, project, namespace, kind string) error {
	repository, err := app.repositoryFor(project, namespace)
	if err != nil {
		return err
	}

	operationID := uuid.NewString()
	log := logging.GetFromContext(ctx)
	log.Info("bulk delete started", "operation_id", operationID, "project", project, "kind", kind)

	deleted, err := repository.DeleteAll(ctx, kind)
	if err != nil {
		log.Error("bulk delete failed", "operation_id", operationID, "err", err.Error())
		return err
	}

	log.Info("bulk delete completed", "operation_id", operationID, "count", deleted)

	return nil
}

// repositoryFor constructs a fresh repository handle bound to the
// given project and namespace. Handles are request scoped and never
// shared, so there is no cross request state to coordinate.
func (app *viewerApp) repositoryFor(project, namespace string) (client.DatastoreClient, error) {
	p, ok := app.projects[project]
	if !ok {
		return nil, errors.NewUnknownProjectError(project)
	}

	options := []client.Option{client.Namespace(namespace)}
	if app.debug {
		options = append(options, client.Debug("true"))
	}

	return app.newClient(p.Endpoint, p.ID, options...), nil
}
