package dynamic

import (
	"encoding/json"

	"github.com/scimkit/scimmodel/codec"
	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// Resource is the map-backed carrier for a generated type: the runtime
// counterpart Design Notes §9 calls for in place of a reflect.StructOf
// compile-time type. It stores decoded values directly in a codec.Bag keyed
// by internal name, so it is driven by the exact same codec.Decode/Encode
// engine as a hand-written resource.Resource[B], without any reflection
// over a generated Go type that does not exist.
type Resource struct {
	td     *meta.TypeDescriptor
	values codec.Bag
}

// New wraps schema's generated model in an empty Resource, ready to have
// field values assigned with Set before encoding.
func New(schema *spec.Schema) (*Resource, error) {
	td, err := BuildModel(schema)
	if err != nil {
		return nil, err
	}
	return &Resource{td: td, values: codec.Bag{}}, nil
}

// Descriptor returns the TypeDescriptor this resource was generated from.
func (r *Resource) Descriptor() *meta.TypeDescriptor { return r.td }

// Get returns the value stored for the field addressed by wire alias or
// internal name, and whether it was ever assigned.
func (r *Resource) Get(name string) (interface{}, bool) {
	f, ok := r.td.FieldByWireName(name)
	if !ok {
		return nil, false
	}
	return r.values.Get(f.InternalName)
}

// Set assigns a value to the named field. Callers are responsible for
// passing a value already shaped per the field's declared type (e.g. a
// codec.Bag for a complex attribute, a []interface{} for multi-valued) —
// the same representation Decode produces, since Resource has no
// compile-time struct to coerce through.
func (r *Resource) Set(name string, value interface{}) error {
	f, ok := r.td.FieldByWireName(name)
	if !ok {
		return spec.WrapPath(name, spec.ErrUnknownField, "no such field")
	}
	r.values[f.InternalName] = value
	return nil
}

// UnmarshalJSON decodes raw directly into r's Bag via r.td.
func (r *Resource) UnmarshalJSON(raw []byte) error {
	bag, err := codec.Decode(raw, r.td)
	if err != nil {
		return err
	}
	r.values = bag
	return nil
}

// MarshalJSON encodes r's Bag back to JSON. When the Bag carries no
// "schemas" key, "schemas" is set to [r.td.SchemaID] per spec §4.5 step 5's
// generated-type default; a "schemas" value already present is written
// unchanged.
func (r *Resource) MarshalJSON() ([]byte, error) {
	m, err := codec.EncodeMap(r.values, r.td, codec.ModeDefault)
	if err != nil {
		return nil, err
	}
	if r.td.SchemaID != "" {
		if _, ok := m["schemas"]; !ok {
			m["schemas"] = []string{r.td.SchemaID}
		}
	}
	return json.Marshal(m)
}
