package resource

import (
	"encoding/json"
	"fmt"

	"github.com/scimkit/scimmodel/spec"
)

// Union dispatches a polymorphic SCIM payload to the right concrete decode
// function by its schemas[0] discriminator (C4), the Go rendering of
// tagged_resource_union (spec §12.3).
type Union struct {
	decoders map[string]func(raw []byte) (interface{}, error)
}

// NewUnion builds an empty Union; register each member schema with Register.
func NewUnion() *Union {
	return &Union{decoders: make(map[string]func([]byte) (interface{}, error))}
}

// Register associates schemaURI with a decode function, typically
// `func(raw []byte) (interface{}, error) { r := resource.New(model.User{}); err := json.Unmarshal(raw, r); return r, err }`.
func (u *Union) Register(schemaURI string, decode func(raw []byte) (interface{}, error)) *Union {
	u.decoders[schemaURI] = decode
	return u
}

// Decode inspects raw's schemas[0] and dispatches to the matching
// registered decoder.
func (u *Union) Decode(raw []byte) (interface{}, error) {
	var tag struct {
		Schemas []string `json:"schemas"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("%w: %v", spec.ErrSchemaMismatch, err)
	}
	if len(tag.Schemas) == 0 {
		return nil, spec.WrapPath("schemas", spec.ErrSchemaMismatch, "required attribute missing")
	}

	decode, ok := u.decoders[tag.Schemas[0]]
	if !ok {
		return nil, spec.WrapPath("schemas[0]", spec.ErrSchemaMismatch, fmt.Sprintf("no member registered for %q", tag.Schemas[0]))
	}
	return decode(raw)
}
