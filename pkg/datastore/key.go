package datastore

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	dserrors "github.com/hirokinko/datastore-viewer/pkg/datastore/errors"
)

// PathElement is one segment of an entity key. Kind is always set and
// exactly one of ID or Name identifies the entity within that kind.
type PathElement struct {
	Kind string
	ID   int64
	Name string
}

// IDOrName returns whichever identifier is present on this segment
func (p PathElement) IDOrName() any {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Key is the full ancestor path of an entity, from root to the entity
// itself. Keys are immutable values: they are decoded from a token or
// built from path segments, used, and discarded.
type Key struct {
	Path []PathElement
}

// NewKey creates a key from an ancestor path. The last segment
// identifies the entity itself.
func NewKey(path ...PathElement) *Key {
	return &Key{Path: path}
}

// Kind returns the kind of the entity the key identifies
func (k *Key) Kind() string {
	return k.Path[len(k.Path)-1].Kind
}

// PathArray renders the ancestor path as an ordered array of
// [kind, id_or_name] pairs
func (k *Key) PathArray() [][]any {
	path := make([][]any, 0, len(k.Path))
	for _, elem := range k.Path {
		path = append(path, []any{elem.Kind, elem.IDOrName()})
	}
	return path
}

// FlatPath returns the path as an alternating sequence of kinds and
// identifiers, the shape used for key construction
func (k *Key) FlatPath() []any {
	flat := make([]any, 0, 2*len(k.Path))
	for _, elem := range k.Path {
		flat = append(flat, elem.Kind, elem.IDOrName())
	}
	return flat
}

func (k *Key) String() string {
	b := &bytes.Buffer{}
	for idx, elem := range k.Path {
		if idx > 0 {
			b.WriteString(", ")
		}
		if elem.Name != "" {
			fmt.Fprintf(b, "%s %q", elem.Kind, elem.Name)
		} else {
			fmt.Fprintf(b, "%s %d", elem.Kind, elem.ID)
		}
	}
	return "Key(" + b.String() + ")"
}

// EncodeToken serializes the ancestor path as a JSON array of
// [kind, id_or_name] pairs and wraps it in base64 so that it survives
// transit as a URL query value or an HTML form field. Encoding never
// fails for a well formed key.
func (k *Key) EncodeToken() string {
	buf, _ := json.Marshal(k.PathArray())
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeKeyToken reverses EncodeToken: base64, then UTF-8, then a JSON
// array of 2-element [kind, id_or_name] arrays. Any failure along the
// way, including an empty path or a shape mismatch, is reported as a
// malformed key token.
func DecodeKeyToken(token string) (*Key, error) {
	buf, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, dserrors.NewMalformedKeyTokenError(
			fmt.Sprintf("key token is not valid base64: %s", err.Error()),
		)
	}

	if !utf8.Valid(buf) {
		return nil, dserrors.NewMalformedKeyTokenError("key token does not contain valid utf-8")
	}

	var path [][]json.RawMessage
	err = json.Unmarshal(buf, &path)
	if err != nil {
		return nil, dserrors.NewMalformedKeyTokenError(
			fmt.Sprintf("key token does not contain a json path array: %s", err.Error()),
		)
	}

	if len(path) == 0 {
		return nil, dserrors.NewMalformedKeyTokenError("key path must have at least one segment")
	}

	elements := make([]PathElement, 0, len(path))

	for idx, segment := range path {
		if len(segment) != 2 {
			return nil, dserrors.NewMalformedKeyTokenError(
				fmt.Sprintf("key path segment %d must be a [kind, id_or_name] pair", idx),
			)
		}

		elem := PathElement{}

		err = json.Unmarshal(segment[0], &elem.Kind)
		if err != nil || elem.Kind == "" {
			return nil, dserrors.NewMalformedKeyTokenError(
				fmt.Sprintf("key path segment %d has no kind name", idx),
			)
		}

		elem.ID, elem.Name, err = decodeIdentifier(segment[1])
		if err != nil {
			return nil, dserrors.NewMalformedKeyTokenError(
				fmt.Sprintf("key path segment %d: %s", idx, err.Error()),
			)
		}

		elements = append(elements, elem)
	}

	return NewKey(elements...), nil
}

// BuildKeyByFlatPath creates a key from a flat [kind, id_or_name, ...]
// sequence, such as one produced by Key.FlatPath
func BuildKeyByFlatPath(flat []any) (*Key, error) {
	if len(flat) == 0 || len(flat)%2 != 0 {
		return nil, dserrors.NewBadRequestError("flat key path must contain kind and identifier pairs")
	}

	elements := make([]PathElement, 0, len(flat)/2)

	for i := 0; i < len(flat); i += 2 {
		kind, ok := flat[i].(string)
		if !ok || kind == "" {
			return nil, dserrors.NewBadRequestError(fmt.Sprintf("flat key path element %d is not a kind name", i))
		}

		elem := PathElement{Kind: kind}

		switch id := flat[i+1].(type) {
		case string:
			if id == "" {
				return nil, dserrors.NewBadRequestError(fmt.Sprintf("flat key path element %d is an empty name", i+1))
			}
			elem.Name = id
		case int64:
			elem.ID = id
		case int:
			elem.ID = int64(id)
		default:
			return nil, dserrors.NewBadRequestError(fmt.Sprintf("flat key path element %d is not an identifier", i+1))
		}

		elements = append(elements, elem)
	}

	return NewKey(elements...), nil
}

func decodeIdentifier(raw json.RawMessage) (int64, string, error) {
	var name string
	if json.Unmarshal(raw, &name) == nil {
		if name == "" {
			return 0, "", fmt.Errorf("name identifier must not be empty")
		}
		return 0, name, nil
	}

	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if dec.Decode(&num) == nil {
		id, err := num.Int64()
		if err == nil {
			return id, "", nil
		}
	}

	return 0, "", fmt.Errorf("identifier must be a signed integer id or a non-empty name")
}
