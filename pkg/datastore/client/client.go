package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"sort"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/hirokinko/datastore-viewer/pkg/datastore"
	"github.com/hirokinko/datastore-viewer/pkg/datastore/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out ../test/datastoreclient_mock.go . DatastoreClient

// DatastoreClient is the repository capability set consumed by the
// viewer. A client is bound to one project and namespace; pagination
// cursors are opaque tokens owned by the datastore service and are
// passed through unmodified.
type DatastoreClient interface {
	CurrentNamespace() string
	FetchNamespaces(ctx context.Context) ([]string, error)
	FetchKinds(ctx context.Context) ([]string, error)
	FetchParentProperties(ctx context.Context) (map[string][]string, error)
	FetchEntities(ctx context.Context, kind string, limit int, cursor string) (*datastore.EntityPage, error)
	FetchEntity(ctx context.Context, key *datastore.Key) (*datastore.Entity, error)
	Delete(ctx context.Context, key *datastore.Key) error
	DeleteAll(ctx context.Context, kind string) (int, error)
	BuildKeyByFlatPath(flat []any) (*datastore.Key, error)
}

// Option configures a client at construction time
type Option func(*dsClient)

func Debug(enabled string) Option {
	return func(c *dsClient) {
		c.debug = (enabled == "true")
	}
}

func Namespace(namespace string) Option {
	return func(c *dsClient) {
		c.namespace = namespace
	}
}

func NewDatastoreClient(endpoint, projectID string, options ...Option) DatastoreClient {
	c := &dsClient{
		baseURL:   strings.TrimSuffix(endpoint, "/"),
		projectID: projectID,
		debug:     false,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeProject string = "datastore-project"
	TraceAttributeKind    string = "datastore-kind"
)

var tracer = otel.Tracer("datastore-viewer-client")

// pseudo-kinds exposed by the datastore for schema discovery
const (
	namespaceKind string = "__namespace__"
	kindKind      string = "__kind__"
	propertyKind  string = "__property__"
)

type dsClient struct {
	baseURL   string
	projectID string
	namespace string
	debug     bool
}

func (c dsClient) CurrentNamespace() string {
	return c.namespace
}

func (c dsClient) FetchNamespaces(ctx context.Context) ([]string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-namespaces",
		trace.WithAttributes(attribute.String(TraceAttributeProject, c.projectID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	results, err := c.runKeysOnlyQuery(ctx, namespaceKind, "")
	if err != nil {
		return nil, err
	}

	namespaces := make([]string, 0, len(results))
	for _, key := range results {
		// the default namespace is listed under a numeric id and is
		// presented as the empty string
		namespaces = append(namespaces, key.Path[len(key.Path)-1].Name)
	}

	sort.Strings(namespaces)

	return namespaces, nil
}

func (c dsClient) FetchKinds(ctx context.Context) ([]string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-kinds",
		trace.WithAttributes(attribute.String(TraceAttributeProject, c.projectID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	results, err := c.runKeysOnlyQuery(ctx, kindKind, c.namespace)
	if err != nil {
		return nil, err
	}

	kinds := make([]string, 0, len(results))
	for _, key := range results {
		name := key.Path[len(key.Path)-1].Name
		if !strings.HasPrefix(name, "__") {
			kinds = append(kinds, name)
		}
	}

	sort.Strings(kinds)

	return kinds, nil
}

func (c dsClient) FetchParentProperties(ctx context.Context) (map[string][]string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-parent-properties",
		trace.WithAttributes(attribute.String(TraceAttributeProject, c.projectID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	results, err := c.runKeysOnlyQuery(ctx, propertyKind, c.namespace)
	if err != nil {
		return nil, err
	}

	properties := map[string][]string{}

	// property keys have the shape [__kind__ <kind>, __property__ <name>]
	for _, key := range results {
		if len(key.Path) != 2 {
			continue
		}

		kind := key.Path[0].Name
		properties[kind] = append(properties[kind], key.Path[1].Name)
	}

	for kind := range properties {
		sort.Strings(properties[kind])
	}

	return properties, nil
}

func (c dsClient) FetchEntities(ctx context.Context, kind string, limit int, cursor string) (*datastore.EntityPage, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-entities",
		trace.WithAttributes(attribute.String(TraceAttributeProject, c.projectID)),
		trace.WithAttributes(attribute.String(TraceAttributeKind, kind)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	batch, err := c.runQuery(ctx, &wireQuery{
		Kind:        []wireKindExpr{{Name: kind}},
		Limit:       limit,
		StartCursor: cursor,
	}, c.namespace)
	if err != nil {
		return nil, err
	}

	page := &datastore.EntityPage{
		Entities: make([]datastore.Entity, 0, len(batch.EntityResults)),
	}

	for _, result := range batch.EntityResults {
		var entity *datastore.Entity

		entity, err = result.Entity.toEntity()
		if err != nil {
			return nil, err
		}
		page.Entities = append(page.Entities, *entity)
	}

	if batch.MoreResults != "NO_MORE_RESULTS" {
		page.NextCursor = batch.EndCursor
	}

	return page, nil
}

func (c dsClient) FetchEntity(ctx context.Context, key *datastore.Key) (*datastore.Entity, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-entity",
		trace.WithAttributes(attribute.String(TraceAttributeProject, c.projectID)),
		trace.WithAttributes(attribute.String(TraceAttributeKind, key.Kind())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	request := struct {
		Keys []wireKey `json:"keys"`
	}{
		Keys: []wireKey{c.toWireKey(key)},
	}

	response := struct {
		Found []wireEntityResult `json:"found"`
	}{}

	err = c.callDatastore(ctx, ":lookup", request, &response)
	if err != nil {
		return nil, err
	}

	if len(response.Found) == 0 {
		err = errors.NewNotFoundError(fmt.Sprintf("no entity found for key %s", key.String()))
		return nil, err
	}

	return response.Found[0].Entity.toEntity()
}

func (c dsClient) Delete(ctx context.Context, key *datastore.Key) error {
	var err error

	ctx, span := tracer.Start(ctx, "delete-entity",
		trace.WithAttributes(attribute.String(TraceAttributeProject, c.projectID)),
		trace.WithAttributes(attribute.String(TraceAttributeKind, key.Kind())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	err = c.commitDeletes(ctx, []wireKey{c.toWireKey(key)})

	return err
}

func (c dsClient) DeleteAll(ctx context.Context, kind string) (int, error) {
	var err error

	ctx, span := tracer.Start(ctx, "delete-all-entities",
		trace.WithAttributes(attribute.String(TraceAttributeProject, c.projectID)),
		trace.WithAttributes(attribute.String(TraceAttributeKind, kind)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	deleted := 0

	// keys-only pages of matching entities are deleted batch by batch
	// until the store reports that no results remain
	cursor := ""

	for {
		var batch *wireQueryBatch

		batch, err = c.runQuery(ctx, &wireQuery{
			Kind:        []wireKindExpr{{Name: kind}},
			Projection:  keysOnlyProjection(),
			StartCursor: cursor,
		}, c.namespace)
		if err != nil {
			return deleted, err
		}

		if len(batch.EntityResults) == 0 {
			return deleted, nil
		}

		keys := make([]wireKey, 0, len(batch.EntityResults))
		for _, result := range batch.EntityResults {
			keys = append(keys, result.Entity.Key)
		}

		err = c.commitDeletes(ctx, keys)
		if err != nil {
			return deleted, err
		}

		deleted += len(keys)

		if batch.MoreResults == "NO_MORE_RESULTS" || batch.EndCursor == "" {
			return deleted, nil
		}

		cursor = batch.EndCursor
	}
}

func (c dsClient) BuildKeyByFlatPath(flat []any) (*datastore.Key, error) {
	return datastore.BuildKeyByFlatPath(flat)
}

func (c dsClient) commitDeletes(ctx context.Context, keys []wireKey) error {
	mutations := make([]wireMutation, 0, len(keys))
	for idx := range keys {
		mutations = append(mutations, wireMutation{Delete: &keys[idx]})
	}

	request := struct {
		Mode      string         `json:"mode"`
		Mutations []wireMutation `json:"mutations"`
	}{
		Mode:      "NON_TRANSACTIONAL",
		Mutations: mutations,
	}

	return c.callDatastore(ctx, ":commit", request, &struct{}{})
}

// runKeysOnlyQuery collects every key of the given kind, following
// batch cursors until the store reports that no results remain. The
// store caps the size of a single batch, so schema discovery over the
// pseudo-kinds has to page just like entity queries do.
func (c dsClient) runKeysOnlyQuery(ctx context.Context, kind, namespace string) ([]*datastore.Key, error) {
	keys := make([]*datastore.Key, 0, 32)
	cursor := ""

	for {
		batch, err := c.runQuery(ctx, &wireQuery{
			Kind:        []wireKindExpr{{Name: kind}},
			Projection:  keysOnlyProjection(),
			StartCursor: cursor,
		}, namespace)
		if err != nil {
			return nil, err
		}

		for _, result := range batch.EntityResults {
			key, err := result.Entity.Key.toKey()
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
		}

		if len(batch.EntityResults) == 0 || batch.MoreResults == "NO_MORE_RESULTS" || batch.EndCursor == "" {
			return keys, nil
		}

		cursor = batch.EndCursor
	}
}

func (c dsClient) runQuery(ctx context.Context, query *wireQuery, namespace string) (*wireQueryBatch, error) {
	request := struct {
		PartitionID wirePartition `json:"partitionId"`
		Query       *wireQuery    `json:"query"`
	}{
		PartitionID: wirePartition{ProjectID: c.projectID, NamespaceID: namespace},
		Query:       query,
	}

	response := struct {
		Batch wireQueryBatch `json:"batch"`
	}{}

	err := c.callDatastore(ctx, ":runQuery", request, &response)
	if err != nil {
		return nil, err
	}

	return &response.Batch, nil
}

func (c dsClient) callDatastore(ctx context.Context, operation string, request, response any) error {
	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	endpoint := c.baseURL + "/v1/projects/" + c.projectID + operation

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if resp.StatusCode != http.StatusOK {
		if c.debug {
			reqbytes, _ := httputil.DumpRequest(req, false)
			respbytes, _ := httputil.DumpResponse(resp, false)

			log := logging.GetFromContext(ctx)
			log.Error("datastore request failed", "request", string(reqbytes), "response", string(respbytes))
		}

		contentType := resp.Header.Get("Content-Type")
		if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode <= http.StatusInternalServerError {
			return errors.NewErrorFromProblemReport(resp.StatusCode, contentType, respBody)
		}

		return fmt.Errorf("unexpected response code %d (%w)", resp.StatusCode, errors.ErrInternal)
	}

	err = json.Unmarshal(respBody, response)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	return nil
}

func keysOnlyProjection() []wireProjection {
	return []wireProjection{{Property: wirePropertyRef{Name: "__key__"}}}
}

func (c dsClient) toWireKey(key *datastore.Key) wireKey {
	wk := wireKey{
		PartitionID: &wirePartition{ProjectID: c.projectID, NamespaceID: c.namespace},
		Path:        make([]wirePathElement, 0, len(key.Path)),
	}

	for _, elem := range key.Path {
		wpe := wirePathElement{Kind: elem.Kind}
		if elem.Name != "" {
			wpe.Name = elem.Name
		} else {
			// numeric ids travel as strings on the wire
			wpe.ID = fmt.Sprintf("%d", elem.ID)
		}
		wk.Path = append(wk.Path, wpe)
	}

	return wk
}
