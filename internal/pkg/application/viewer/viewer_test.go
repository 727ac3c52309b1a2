package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/hirokinko/datastore-viewer/pkg/datastore"
	"github.com/hirokinko/datastore-viewer/pkg/datastore/client"
	dserrors "github.com/hirokinko/datastore-viewer/pkg/datastore/errors"
	dstest "github.com/hirokinko/datastore-viewer/pkg/datastore/test"
	"github.com/matryer/is"
)

func TestDeleteEntityIssuesExactlyOneRepositoryDelete(t *testing.T) {
	is, app, repository := setupTest(t)

	repository.DeleteFunc = func(ctx context.Context, key *datastore.Key) error {
		return nil
	}

	key := datastore.NewKey(
		datastore.PathElement{Kind: "Account", ID: 42},
		datastore.PathElement{Kind: "Order", Name: "abc"},
	)

	err := app.DeleteEntity(context.Background(), "test-project", "", key)

	is.NoErr(err)
	is.Equal(len(repository.DeleteCalls()), 1) // exactly one delete per request
	is.Equal(len(repository.DeleteAllCalls()), 0)
	is.Equal(repository.DeleteCalls()[0].Key.FlatPath(), key.FlatPath())
}

func TestDeleteAllEntitiesIssuesExactlyOneRepositoryDeleteAll(t *testing.T) {
	is, app, repository := setupTest(t)

	repository.DeleteAllFunc = func(ctx context.Context, kind string) (int, error) {
		return 3, nil
	}

	err := app.DeleteAllEntities(context.Background(), "test-project", "", "Order")

	is.NoErr(err)
	is.Equal(len(repository.DeleteAllCalls()), 1) // exactly one bulk delete per request
	is.Equal(len(repository.DeleteCalls()), 0)
	is.Equal(repository.DeleteAllCalls()[0].Kind, "Order")
}

func TestFetchEntityBindsTheKeyViaFlatPath(t *testing.T) {
	is, app, repository := setupTest(t)

	key := datastore.NewKey(datastore.PathElement{Kind: "Order", Name: "abc"})

	repository.FetchEntityFunc = func(ctx context.Context, key *datastore.Key) (*datastore.Entity, error) {
		return &datastore.Entity{Key: key, Properties: map[string]any{}}, nil
	}

	entity, err := app.FetchEntity(context.Background(), "test-project", "staging", key)

	is.NoErr(err)
	is.Equal(entity.Key.Kind(), "Order")
	is.Equal(len(repository.BuildKeyByFlatPathCalls()), 1)
	is.Equal(repository.BuildKeyByFlatPathCalls()[0].Flat, key.FlatPath())
}

func TestUnknownProjectIsRejected(t *testing.T) {
	is, app, _ := setupTest(t)

	_, err := app.FetchKinds(context.Background(), "no-such-project", "")

	is.True(err != nil)
	is.True(errors.Is(err, dserrors.ErrUnknownProject))
}

func TestCurrentNamespaceReportsTheBoundNamespace(t *testing.T) {
	is, app, repository := setupTest(t)

	repository.CurrentNamespaceFunc = func() string { return "staging" }

	namespace, err := app.CurrentNamespace(context.Background(), "test-project", "staging")

	is.NoErr(err)
	is.Equal(namespace, "staging")
}

func TestDebugModeIsForwardedToRepositoryClients(t *testing.T) {
	is := is.New(t)

	optionCounts := []int{}
	repository := &dstest.DatastoreClientMock{
		FetchKindsFunc: func(ctx context.Context) ([]string, error) { return []string{}, nil },
	}

	factory := func(endpoint, projectID string, options ...client.Option) client.DatastoreClient {
		optionCounts = append(optionCounts, len(options))
		return repository
	}

	quiet, err := New(context.Background(),
		NewSingleProjectConfig("test-project", "http://localhost:8081"),
		WithClientFactory(factory),
	)
	is.NoErr(err)

	verbose, err := New(context.Background(),
		NewSingleProjectConfig("test-project", "http://localhost:8081"),
		WithClientFactory(factory), Debug("true"),
	)
	is.NoErr(err)

	_, err = quiet.FetchKinds(context.Background(), "test-project", "")
	is.NoErr(err)

	_, err = verbose.FetchKinds(context.Background(), "test-project", "")
	is.NoErr(err)

	is.Equal(optionCounts, []int{1, 2}) // namespace only, then namespace plus debug
}

func setupTest(t *testing.T) (*is.I, DatastoreViewer, *dstest.DatastoreClientMock) {
	is := is.New(t)

	repository := &dstest.DatastoreClientMock{
		BuildKeyByFlatPathFunc: datastore.BuildKeyByFlatPath,
	}

	app, err := New(context.Background(),
		NewSingleProjectConfig("test-project", "http://localhost:8081"),
		WithClientFactory(func(endpoint, projectID string, options ...client.Option) client.DatastoreClient {
			return repository
		}),
	)
	is.NoErr(err)

	return is, app, repository
}
