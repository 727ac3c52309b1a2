package admin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hirokinko/datastore-viewer/internal/pkg/application/viewer"
	"github.com/hirokinko/datastore-viewer/pkg/datastore"
	dserrors "github.com/hirokinko/datastore-viewer/pkg/datastore/errors"
	"github.com/matryer/is"
)

const accountToken string = "W1siQWNjb3VudCIsNDJdXQ=="

func TestDashboardRedirectsToNamedProject(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp := newRedirectRequest(is, ts, "GET", "/datastore_viewer?project_name=demo", nil)

	is.Equal(resp.StatusCode, http.StatusFound)
	is.Equal(resp.Header.Get("Location"), "/datastore_viewer/projects/demo")
}

func TestDashboardListsConfiguredProjects(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "GET", "/datastore_viewer", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, "/datastore_viewer/projects/test-project"))
}

func TestBrowsePageRedirectsToFirstKind(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp := newRedirectRequest(is, ts, "GET", "/datastore_viewer/projects/test-project", nil)

	is.Equal(resp.StatusCode, http.StatusFound)
	is.True(strings.Contains(resp.Header.Get("Location"), "kind=Account"))
}

func TestBrowsePageListsEntitiesOfSelectedKind(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "GET", "/datastore_viewer/projects/test-project?kind=Account", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, accountToken))
	is.True(strings.Contains(body, "frank"))

	is.Equal(len(app.FetchEntitiesCalls()), 1)
	is.Equal(app.FetchEntitiesCalls()[0].Kind, "Account")
	is.Equal(app.FetchEntitiesCalls()[0].Limit, 20)
}

func TestBrowsePageReportsEntityFetchFailures(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.FetchEntitiesFunc = func(ctx context.Context, project, namespace, kind string, limit int, cursor string) (*datastore.EntityPage, error) {
		return nil, fmt.Errorf("the store is on fire")
	}

	resp, _ := newTestRequest(is, ts, "GET", "/datastore_viewer/projects/test-project?kind=Account", nil)

	is.Equal(resp.StatusCode, http.StatusInternalServerError)
	is.Equal(resp.Header.Get("Content-Type"), "application/problem+json")
}

func TestDeleteActionRemovesASingleEntity(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	form := url.Values{"action": {"delete"}, "key": {accountToken}}
	resp := newFormRequest(is, ts, "/datastore_viewer/projects/test-project?kind=Account", form)

	is.Equal(resp.StatusCode, http.StatusFound)
	is.True(strings.Contains(resp.Header.Get("Location"), "t="))

	is.Equal(len(app.DeleteEntityCalls()), 1)
	is.Equal(app.DeleteEntityCalls()[0].Key.String(), "Key(Account 42)")
	is.Equal(len(app.DeleteAllEntitiesCalls()), 0)
}

func TestDeleteAllActionRemovesEveryEntityOfTheKind(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	form := url.Values{"action": {"delete_all"}, "kind": {"Account"}}
	resp := newFormRequest(is, ts, "/datastore_viewer/projects/test-project?kind=Account", form)

	is.Equal(resp.StatusCode, http.StatusFound)

	is.Equal(len(app.DeleteAllEntitiesCalls()), 1)
	is.Equal(app.DeleteAllEntitiesCalls()[0].Kind, "Account")
	is.Equal(len(app.DeleteEntityCalls()), 0)
}

func TestDeleteActionWithMalformedTokenReturnsBadRequest(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	form := url.Values{"action": {"delete"}, "key": {"YmFk"}}
	resp := newFormRequest(is, ts, "/datastore_viewer/projects/test-project?kind=Account", form)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(app.DeleteEntityCalls()), 0)
}

func TestViewEntityReturnsEntityJSON(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "GET", "/datastore_viewer/projects/test-project/view_entity?key="+url.QueryEscape(accountToken), nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/json")
	is.True(strings.Contains(body, `"url_safe_key":"`+accountToken+`"`))
	is.True(strings.Contains(body, `"key":"Key(Account 42)"`))
}

func TestListProjects(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "GET", "/api/projects", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"projectResults":[{"project_name":"test-project"}]}`)
}

func TestListKindsIncludesIndexedProperties(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "GET", "/api/projects/test-project/kinds", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"kind":"Account"`))
	is.True(strings.Contains(body, `"indexed_properties":[{"property_name":"balance"},{"property_name":"name"}]`))
}

func TestListEntitiesReturnsPageAndCursor(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "GET", "/api/projects/test-project/kinds/Account/entities", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"entityResults":[`))
	is.True(strings.Contains(body, `"nextCursor":"abc123"`))

	is.Equal(app.FetchEntitiesCalls()[0].Limit, 20)
}

func TestListEntitiesHonoursLimitParameter(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "GET", "/api/projects/test-project/kinds/Account/entities?limit=5", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(app.FetchEntitiesCalls()[0].Limit, 5)
}

func TestListEntitiesRejectsBadLimit(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "GET", "/api/projects/test-project/kinds/Account/entities?limit=bogus", nil)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(resp.Header.Get("Content-Type"), "application/problem+json")
}

func TestRetrieveEntity(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "GET", "/api/projects/test-project/kinds/Account/entities/"+accountToken, nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"entityResult":`))
	is.True(strings.Contains(body, `"url_safe_key":"`+accountToken+`"`))
}

func TestRetrieveEntityWithMalformedTokenReturnsBadRequest(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "GET", "/api/projects/test-project/kinds/Account/entities/YmFk", nil)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(resp.Header.Get("Content-Type"), "application/problem+json")
}

func TestRetrieveEntityUnderAnotherKindReturnsNotFound(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "GET", "/api/projects/test-project/kinds/Order/entities/"+accountToken, nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(len(app.FetchEntityCalls()), 0)
}

func TestRetrieveMissingEntityReturnsNotFound(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.FetchEntityFunc = func(ctx context.Context, project, namespace string, key *datastore.Key) (*datastore.Entity, error) {
		return nil, dserrors.NewNotFoundError("no entity found for key " + key.String())
	}

	resp, _ := newTestRequest(is, ts, "GET", "/api/projects/test-project/kinds/Account/entities/"+accountToken, nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestRetrieveEntityCanHandleInternalError(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	app.FetchEntityFunc = func(ctx context.Context, project, namespace string, key *datastore.Key) (*datastore.Entity, error) {
		return nil, fmt.Errorf("some unknown error")
	}

	resp, _ := newTestRequest(is, ts, "GET", "/api/projects/test-project/kinds/Account/entities/"+accountToken, nil)

	is.Equal(resp.StatusCode, http.StatusInternalServerError)
}

func TestDeleteEntityReturnsNoContent(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "DELETE", "/api/projects/test-project/kinds/Account/entities/"+accountToken, nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(len(app.DeleteEntityCalls()), 1)
}

func TestDeleteEntityUnderAnotherKindReturnsNotFound(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "DELETE", "/api/projects/test-project/kinds/Order/entities/"+accountToken, nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(len(app.DeleteEntityCalls()), 0)
}

func TestDeleteAllEntitiesReturnsNoContent(t *testing.T) {
	is, ts, app := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "DELETE", "/api/projects/test-project/kinds/Account/entities", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(len(app.DeleteAllEntitiesCalls()), 1)
	is.Equal(app.DeleteAllEntitiesCalls()[0].Kind, "Account")
}

func newTestRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func newRedirectRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) *http.Response {
	req, _ := http.NewRequest(method, ts.URL+path, body)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Do(req)
	is.NoErr(err) // http request failed
	resp.Body.Close()

	return resp
}

func newFormRequest(is *is.I, ts *httptest.Server, path string, form url.Values) *http.Response {
	req, _ := http.NewRequest("POST", ts.URL+path, strings.NewReader(form.Encode()))
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Do(req)
	is.NoErr(err) // http request failed
	resp.Body.Close()

	return resp
}

func setupTest(t *testing.T) (*is.I, *httptest.Server, *viewer.DatastoreViewerMock) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	accountKey := datastore.NewKey(datastore.PathElement{Kind: "Account", ID: 42})

	app := &viewer.DatastoreViewerMock{
		ProjectsFunc: func(ctx context.Context) []viewer.Project {
			return []viewer.Project{{ID: "test-project", Endpoint: "http://localhost:8081"}}
		},
		DefaultProjectFunc: func(ctx context.Context) string {
			return "test-project"
		},
		CurrentNamespaceFunc: func(ctx context.Context, project, namespace string) (string, error) {
			return namespace, nil
		},
		FetchNamespacesFunc: func(ctx context.Context, project string) ([]string, error) {
			return []string{"staging"}, nil
		},
		FetchKindsFunc: func(ctx context.Context, project, namespace string) ([]string, error) {
			return []string{"Account", "Order"}, nil
		},
		FetchParentPropertiesFunc: func(ctx context.Context, project, namespace string) (map[string][]string, error) {
			return map[string][]string{"Account": {"balance", "name"}}, nil
		},
		FetchEntitiesFunc: func(ctx context.Context, project, namespace, kind string, limit int, cursor string) (*datastore.EntityPage, error) {
			return &datastore.EntityPage{
				Entities: []datastore.Entity{
					{Key: accountKey, Properties: map[string]any{"balance": int64(250), "name": "frank"}},
				},
				NextCursor: "abc123",
			}, nil
		},
		FetchEntityFunc: func(ctx context.Context, project, namespace string, key *datastore.Key) (*datastore.Entity, error) {
			return &datastore.Entity{Key: accountKey, Properties: map[string]any{"balance": int64(250), "name": "frank"}}, nil
		},
		DeleteEntityFunc: func(ctx context.Context, project, namespace string, key *datastore.Key) error {
			return nil
		},
		DeleteAllEntitiesFunc: func(ctx context.Context, project, namespace, kind string) error {
			return nil
		},
	}

	RegisterHandlers(context.Background(), r, app)

	return is, ts, app
}
