package client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hirokinko/datastore-viewer/pkg/datastore"
	"github.com/hirokinko/datastore-viewer/pkg/datastore/errors"
)

// wire level request and response shapes for the datastore REST protocol

type wirePartition struct {
	ProjectID   string `json:"projectId"`
	NamespaceID string `json:"namespaceId,omitempty"`
}

type wirePathElement struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type wireKey struct {
	PartitionID *wirePartition    `json:"partitionId,omitempty"`
	Path        []wirePathElement `json:"path"`
}

type wirePropertyRef struct {
	Name string `json:"name"`
}

type wireProjection struct {
	Property wirePropertyRef `json:"property"`
}

type wireKindExpr struct {
	Name string `json:"name"`
}

type wireQuery struct {
	Kind        []wireKindExpr   `json:"kind"`
	Projection  []wireProjection `json:"projection,omitempty"`
	Limit       int              `json:"limit,omitempty"`
	StartCursor string           `json:"startCursor,omitempty"`
}

type wireMutation struct {
	Delete *wireKey `json:"delete,omitempty"`
}

type wireValue struct {
	NullValue      *string  `json:"nullValue,omitempty"`
	BooleanValue   *bool    `json:"booleanValue,omitempty"`
	IntegerValue   *string  `json:"integerValue,omitempty"`
	DoubleValue    *float64 `json:"doubleValue,omitempty"`
	TimestampValue *string  `json:"timestampValue,omitempty"`
	StringValue    *string  `json:"stringValue,omitempty"`
	KeyValue       *wireKey `json:"keyValue,omitempty"`
}

type wireEntity struct {
	Key        wireKey              `json:"key"`
	Properties map[string]wireValue `json:"properties"`
}

type wireEntityResult struct {
	Entity wireEntity `json:"entity"`
	Cursor string     `json:"cursor,omitempty"`
}

type wireQueryBatch struct {
	EntityResults []wireEntityResult `json:"entityResults"`
	EndCursor     string             `json:"endCursor"`
	MoreResults   string             `json:"moreResults"`
}

func (wk wireKey) toKey() (*datastore.Key, error) {
	path := make([]datastore.PathElement, 0, len(wk.Path))

	for _, wpe := range wk.Path {
		elem := datastore.PathElement{Kind: wpe.Kind, Name: wpe.Name}

		if wpe.ID != "" {
			id, err := strconv.ParseInt(wpe.ID, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("key path contains a non numeric id %q (%w)", wpe.ID, errors.ErrBadResponse)
			}
			elem.ID = id
		}

		path = append(path, elem)
	}

	if len(path) == 0 {
		return nil, fmt.Errorf("key path must not be empty (%w)", errors.ErrBadResponse)
	}

	return datastore.NewKey(path...), nil
}

func (we wireEntity) toEntity() (*datastore.Entity, error) {
	key, err := we.Key.toKey()
	if err != nil {
		return nil, err
	}

	properties := make(map[string]any, len(we.Properties))
	for name, value := range we.Properties {
		properties[name], err = value.toValue()
		if err != nil {
			return nil, err
		}
	}

	return &datastore.Entity{Key: key, Properties: properties}, nil
}

// toValue maps a wire value to its runtime representation. Shapes the
// viewer does not present (arrays, embedded entities, blobs, geo
// points) come back as nil, which classifies as the null tag.
func (wv wireValue) toValue() (any, error) {
	switch {
	case wv.StringValue != nil:
		return *wv.StringValue, nil
	case wv.IntegerValue != nil:
		i, err := strconv.ParseInt(*wv.IntegerValue, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("non numeric integer value %q (%w)", *wv.IntegerValue, errors.ErrBadResponse)
		}
		return i, nil
	case wv.DoubleValue != nil:
		return *wv.DoubleValue, nil
	case wv.BooleanValue != nil:
		return *wv.BooleanValue, nil
	case wv.TimestampValue != nil:
		ts, err := time.Parse(time.RFC3339Nano, *wv.TimestampValue)
		if err != nil {
			return nil, fmt.Errorf("malformed timestamp value %q (%w)", *wv.TimestampValue, errors.ErrBadResponse)
		}
		return ts, nil
	case wv.KeyValue != nil:
		return wv.KeyValue.toKey()
	}

	return nil, nil
}
