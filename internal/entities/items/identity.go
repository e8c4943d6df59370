package items

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/logistics-api/internal/errors"
)

// identity is the persisted form of a stack's kind and metadata.
// Counts are stored next to the identity, never inside it.
type identity struct {
	ID       string   `json:"id"`
	MaxStack int      `json:"max_stack"`
	Tags     []string `json:"tags,omitempty"`
	Meta     Metadata `json:"meta,omitempty"`
}

// EncodeIdentity returns the opaque identity blob for the stack's kind and metadata.
// Map keys and tags are emitted in sorted order so equal identities encode identically.
func EncodeIdentity(s Stack) ([]byte, error) {
	if s.Kind.ID == "" {
		return nil, errors.InvalidArgument("cannot encode identity of an empty stack")
	}

	data, err := json.Marshal(identity{
		ID:       s.Kind.ID,
		MaxStack: s.Kind.MaxStack(),
		Tags:     NormalizeTags(s.Kind.Tags),
		Meta:     s.Meta,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode stack identity")
	}
	return data, nil
}

// DecodeIdentity parses an identity blob produced by EncodeIdentity.
// The returned stack has a zero count.
func DecodeIdentity(blob []byte) (Stack, error) {
	if len(blob) == 0 {
		return Empty, errors.InvalidArgument("identity blob is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(blob))
	dec.DisallowUnknownFields()

	var id identity
	if err := dec.Decode(&id); err != nil {
		return Empty, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown identity encoding")
	}
	if dec.More() {
		return Empty, errors.InvalidArgument("trailing data after identity")
	}
	if id.ID == "" {
		return Empty, errors.InvalidArgument("identity is missing a kind id")
	}
	if id.MaxStack < 1 {
		return Empty, errors.InvalidArgumentf("identity for %s has invalid max stack %d", id.ID, id.MaxStack)
	}

	var meta Metadata
	if len(id.Meta) > 0 {
		meta = id.Meta
	}

	return Stack{
		Kind: Kind{ID: id.ID, MaxStackSize: id.MaxStack, Tags: NormalizeTags(id.Tags)},
		Meta: meta,
	}, nil
}
