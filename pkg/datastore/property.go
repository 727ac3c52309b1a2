package datastore

import (
	"time"
)

// TypeTag is the semantic type of a property value as presented by the
// JSON API
type TypeTag string

const (
	TypeString    TypeTag = "string"
	TypeInteger   TypeTag = "integer"
	TypeFloat     TypeTag = "float"
	TypeBoolean   TypeTag = "boolean"
	TypeTimestamp TypeTag = "timestamp"
	TypeKey       TypeTag = "key"
	TypeNull      TypeTag = "null"
)

// Entity is a record from the store: a key plus a mapping from property
// name to property value
type Entity struct {
	Key        *Key
	Properties map[string]any
}

// EntityPage is one page from a paginated entity fetch. NextCursor is
// an opaque continuation token owned by the store and must be passed
// back unmodified to fetch the next page.
type EntityPage struct {
	Entities   []Entity
	NextCursor string
}

// classifiers map a value shape to its type tag. The order is a fixed
// tie break rule: string, integer, float, boolean, timestamp, key.
// Existing API consumers depend on it, so entries must not be reordered.
var classifiers = []struct {
	tag     TypeTag
	matches func(v any) bool
}{
	{TypeString, func(v any) bool {
		_, ok := v.(string)
		return ok
	}},
	{TypeInteger, func(v any) bool {
		switch v.(type) {
		case int, int32, int64:
			return true
		}
		return false
	}},
	{TypeFloat, func(v any) bool {
		switch v.(type) {
		case float32, float64:
			return true
		}
		return false
	}},
	{TypeBoolean, func(v any) bool {
		_, ok := v.(bool)
		return ok
	}},
	{TypeTimestamp, func(v any) bool {
		_, ok := v.(time.Time)
		return ok
	}},
	{TypeKey, func(v any) bool {
		k, ok := v.(*Key)
		return ok && k != nil
	}},
}

// Classify derives a type tag from the runtime shape of a value. Values
// of an unrecognized shape degrade to the null tag, the same tag used
// for true nulls, so that rendering never blocks on unknown shapes.
func Classify(v any) TypeTag {
	for _, c := range classifiers {
		if c.matches(v) {
			return c.tag
		}
	}

	return TypeNull
}

// Render produces a JSON-safe rendering of a property value. Key-typed
// values render as their ancestor path array, everything else renders
// as the scalar itself.
func Render(v any, tag TypeTag) any {
	if tag == TypeKey {
		return v.(*Key).PathArray()
	}

	if tag == TypeNull {
		return nil
	}

	return v
}

type PartitionJSON struct {
	ProjectID string `json:"projectId"`
}

type KeyJSON struct {
	PartitionID PartitionJSON `json:"partitionId"`
	Path        [][]any       `json:"path"`
}

type PropertyJSON struct {
	PropertyName string  `json:"property_name"`
	ValueType    TypeTag `json:"value_type"`
	Value        any     `json:"value"`
	Index        bool    `json:"index"`
}

type EntityJSON struct {
	Key        KeyJSON        `json:"key"`
	URLSafeKey string         `json:"url_safe_key"`
	Properties []PropertyJSON `json:"properties"`
}

// BuildEntityJSON produces the JSON API rendering of an entity. One
// property entry is emitted per supplied name, in order. The caller is
// expected to supply only names known to exist on the entity, typically
// from the schema discovered through the parent property listing.
func BuildEntityJSON(projectID string, entity Entity, propertyNames []string) EntityJSON {
	properties := make([]PropertyJSON, 0, len(propertyNames))

	for _, name := range propertyNames {
		value := entity.Properties[name]
		tag := Classify(value)

		properties = append(properties, PropertyJSON{
			PropertyName: name,
			ValueType:    tag,
			Value:        Render(value, tag),
			Index:        true,
		})
	}

	return EntityJSON{
		Key: KeyJSON{
			PartitionID: PartitionJSON{ProjectID: projectID},
			Path:        entity.Key.PathArray(),
		},
		URLSafeKey: entity.Key.EncodeToken(),
		Properties: properties,
	}
}
