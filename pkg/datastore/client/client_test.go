package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/hirokinko/datastore-viewer/pkg/datastore"
	dserrors "github.com/hirokinko/datastore-viewer/pkg/datastore/errors"

	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput
var method = expects.RequestMethod
var path = expects.RequestPath

func TestFetchKinds(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/v1/projects/test-project:runQuery"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(kindQueryResponse)),
		),
	)
	defer s.Close()

	c := NewDatastoreClient(s.URL(), "test-project")

	kinds, err := c.FetchKinds(context.Background())

	is.NoErr(err)
	is.Equal(kinds, []string{"Account", "Order"}) // sorted, pseudo-kinds filtered out
}

func TestFetchKindsFollowsBatchCursors(t *testing.T) {
	is := is.New(t)

	cursors := []string{}

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/v1/projects/test-project:runQuery")

		var request struct {
			Query struct {
				StartCursor string `json:"startCursor"`
			} `json:"query"`
		}
		is.NoErr(json.NewDecoder(r.Body).Decode(&request))
		cursors = append(cursors, request.Query.StartCursor)

		w.Header().Add("Content-Type", "application/json")
		if len(cursors) == 1 {
			w.Write([]byte(`{"batch":{"entityResults":[{"entity":{"key":{"path":[{"kind":"__kind__","name":"Order"}]}}}],"endCursor":"second-batch","moreResults":"NOT_FINISHED"}}`))
		} else {
			w.Write([]byte(`{"batch":{"entityResults":[{"entity":{"key":{"path":[{"kind":"__kind__","name":"Account"}]}}}],"endCursor":"end","moreResults":"NO_MORE_RESULTS"}}`))
		}
	}))
	defer s.Close()

	c := NewDatastoreClient(s.URL, "test-project")

	kinds, err := c.FetchKinds(context.Background())

	is.NoErr(err)
	is.Equal(kinds, []string{"Account", "Order"})   // both batches contribute
	is.Equal(cursors, []string{"", "second-batch"}) // second query resumes from the batch cursor
}

func TestFetchParentProperties(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(propertyQueryResponse)),
		),
	)
	defer s.Close()

	c := NewDatastoreClient(s.URL(), "test-project")

	properties, err := c.FetchParentProperties(context.Background())

	is.NoErr(err)
	is.Equal(properties, map[string][]string{"Order": {"amount", "name"}})
}

func TestFetchEntities(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/v1/projects/test-project:runQuery"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(entityQueryResponse)),
		),
	)
	defer s.Close()

	c := NewDatastoreClient(s.URL(), "test-project")

	page, err := c.FetchEntities(context.Background(), "Order", 20, "")

	is.NoErr(err)
	is.Equal(len(page.Entities), 1)
	is.Equal(page.NextCursor, "next-page-token")

	entity := page.Entities[0]
	is.Equal(entity.Key.Kind(), "Order")
	is.Equal(entity.Properties["name"], "an order")
	is.Equal(entity.Properties["amount"], int64(42))
	is.Equal(entity.Properties["total"], 4.2)
	is.Equal(entity.Properties["paid"], true)
	is.Equal(entity.Properties["createdAt"], time.Date(2022, 2, 13, 21, 33, 42, 0, time.UTC))

	parent, ok := entity.Properties["parentKey"].(*datastore.Key)
	is.True(ok)
	is.Equal(parent.PathArray(), [][]any{{"Account", int64(42)}})

	is.Equal(entity.Properties["tags"], nil) // array values degrade to null
}

func TestFetchEntityReturnsNotFoundForMissingEntities(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, method(http.MethodPost), path("/v1/projects/test-project:lookup")),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"missing":[{"entity":{"key":{"path":[{"kind":"Order","name":"gone"}]}}}]}`)),
		),
	)
	defer s.Close()

	c := NewDatastoreClient(s.URL(), "test-project")

	_, err := c.FetchEntity(context.Background(), datastore.NewKey(datastore.PathElement{Kind: "Order", Name: "gone"}))

	is.True(err != nil)
	is.True(errors.Is(err, dserrors.ErrNotFound))
}

func TestDeleteIssuesASingleCommit(t *testing.T) {
	is := is.New(t)

	commits := 0
	var committed struct {
		Mode      string `json:"mode"`
		Mutations []struct {
			Delete *wireKey `json:"delete"`
		} `json:"mutations"`
	}

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/v1/projects/test-project:commit")
		commits++
		is.NoErr(json.NewDecoder(r.Body).Decode(&committed))
		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer s.Close()

	c := NewDatastoreClient(s.URL, "test-project", Namespace("staging"))

	key := datastore.NewKey(
		datastore.PathElement{Kind: "Account", ID: 42},
		datastore.PathElement{Kind: "Order", Name: "abc"},
	)

	err := c.Delete(context.Background(), key)

	is.NoErr(err)
	is.Equal(commits, 1) // exactly one commit per delete
	is.Equal(committed.Mode, "NON_TRANSACTIONAL")
	is.Equal(len(committed.Mutations), 1)
	is.Equal(committed.Mutations[0].Delete.PartitionID.NamespaceID, "staging")
	is.Equal(committed.Mutations[0].Delete.Path, []wirePathElement{
		{Kind: "Account", ID: "42"},
		{Kind: "Order", Name: "abc"},
	})
}

func TestDeleteAllPagesThroughKeysAndCommitsDeletes(t *testing.T) {
	is := is.New(t)

	queries := 0
	commits := 0

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/projects/test-project:runQuery":
			queries++
			if queries == 1 {
				w.Write([]byte(`{"batch":{"entityResults":[{"entity":{"key":{"path":[{"kind":"Order","id":"1"}]}}},{"entity":{"key":{"path":[{"kind":"Order","id":"2"}]}}}],"endCursor":"more","moreResults":"NOT_FINISHED"}}`))
			} else {
				w.Write([]byte(`{"batch":{"entityResults":[{"entity":{"key":{"path":[{"kind":"Order","id":"3"}]}}}],"endCursor":"end","moreResults":"NO_MORE_RESULTS"}}`))
			}
		case "/v1/projects/test-project:commit":
			commits++
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer s.Close()

	c := NewDatastoreClient(s.URL, "test-project")

	deleted, err := c.DeleteAll(context.Background(), "Order")

	is.NoErr(err)
	is.Equal(deleted, 3)
	is.Equal(queries, 2)
	is.Equal(commits, 2)
}

func TestDeleteAllSurfacesQueryFailures(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusBadRequest),
			response.Body([]byte(`{"error":{"code":400,"message":"no matching index found","status":"INVALID_ARGUMENT"}}`)),
		),
	)
	defer s.Close()

	c := NewDatastoreClient(s.URL(), "test-project")

	deleted, err := c.DeleteAll(context.Background(), "Order")

	is.True(err != nil)
	is.True(errors.Is(err, dserrors.ErrBadRequest))
	is.Equal(deleted, 0)
}

func TestStoreFailuresSurfaceUnchanged(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusBadRequest),
			response.Body([]byte(`{"error":{"code":400,"message":"no matching index found","status":"INVALID_ARGUMENT"}}`)),
		),
	)
	defer s.Close()

	c := NewDatastoreClient(s.URL(), "test-project")

	_, err := c.FetchEntities(context.Background(), "Order", 20, "")

	is.True(err != nil)
	is.True(errors.Is(err, dserrors.ErrBadRequest))
	is.Equal(err.Error(), "no matching index found")
}

const kindQueryResponse string = `{"batch":{"entityResults":[
	{"entity":{"key":{"path":[{"kind":"__kind__","name":"Order"}]}}},
	{"entity":{"key":{"path":[{"kind":"__kind__","name":"Account"}]}}},
	{"entity":{"key":{"path":[{"kind":"__kind__","name":"__Stat_Total__"}]}}}
],"endCursor":"","moreResults":"NO_MORE_RESULTS"}}`

const propertyQueryResponse string = `{"batch":{"entityResults":[
	{"entity":{"key":{"path":[{"kind":"__kind__","name":"Order"},{"kind":"__property__","name":"name"}]}}},
	{"entity":{"key":{"path":[{"kind":"__kind__","name":"Order"},{"kind":"__property__","name":"amount"}]}}}
],"endCursor":"","moreResults":"NO_MORE_RESULTS"}}`

const entityQueryResponse string = `{"batch":{"entityResults":[
	{"entity":{
		"key":{"partitionId":{"projectId":"test-project"},"path":[{"kind":"Order","name":"abc"}]},
		"properties":{
			"name":{"stringValue":"an order"},
			"amount":{"integerValue":"42"},
			"total":{"doubleValue":4.2},
			"paid":{"booleanValue":true},
			"createdAt":{"timestampValue":"2022-02-13T21:33:42Z"},
			"parentKey":{"keyValue":{"path":[{"kind":"Account","id":"42"}]}},
			"tags":{"arrayValue":{"values":[{"stringValue":"a"}]}}
		}
	}}
],"endCursor":"next-page-token","moreResults":"NOT_FINISHED"}}`
