package resource

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/scimkit/scimmodel/codec"
	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// Resource is the typed envelope around a hand-written resource body B
// (e.g. a User or Group struct): the core attributes every SCIM resource
// carries (schemas, id, externalId, meta) plus zero or more schema
// extension buckets, inflated and deflated per spec §3(c) and §12.2.
type Resource[B any] struct {
	Schemas    []string
	ID         *string
	ExternalID *string
	Meta       *Meta
	Body       B

	extensions     map[string]interface{}
	extensionTypes map[string]reflect.Type
}

// PrimarySchemer is implemented by a resource body that knows its own
// schema URI, used to seed Schemas on New and to validate it on decode.
type PrimarySchemer interface {
	PrimarySchema() string
}

// New constructs an empty resource wrapping body, with Schemas seeded from
// body's PrimarySchema if it implements PrimarySchemer, and a fresh
// client-side ID stamped via NewID.
func New[B any](body B) *Resource[B] {
	r := &Resource[B]{Body: body}
	if ps, ok := interface{}(body).(PrimarySchemer); ok {
		r.Schemas = []string{ps.PrimarySchema()}
	}
	id := NewID()
	r.ID = &id
	return r
}

// NewID returns a fresh client-side correlation id. The server is the
// authority on a resource's real id; this exists for code (and tests) that
// need a stand-in before a resource has been created server-side.
func NewID() string {
	return uuid.NewString()
}

// RegisterExtension declares that schemaURI, when present as a top-level
// key on decode, should be decoded into a fresh value of ext's type (a
// pointer to an Extension-implementing struct). Call once per extension
// type before Decode.
func (r *Resource[B]) RegisterExtension(ext Extension) *Resource[B] {
	if r.extensionTypes == nil {
		r.extensionTypes = make(map[string]reflect.Type)
	}
	t := reflect.TypeOf(ext)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	r.extensionTypes[ext.PrimarySchema()] = t
	return r
}

// UnmarshalJSON decodes a SCIM resource document into r: the core envelope
// fields, then any registered extension bucket present as a top-level
// object keyed by its schema URI, then the remaining keys into Body.
func (r *Resource[B]) UnmarshalJSON(raw []byte) error {
	var top map[string]interface{}
	if err := json.Unmarshal(raw, &top); err != nil {
		return fmt.Errorf("%w: %v", spec.ErrSchemaMismatch, err)
	}

	if err := extractEnvelope(top, r); err != nil {
		return err
	}
	delete(top, "schemas")
	delete(top, "id")
	delete(top, "externalId")
	delete(top, "meta")

	for schemaURI, t := range r.extensionTypes {
		sub, ok := top[schemaURI]
		if !ok {
			continue
		}
		subMap, ok := sub.(map[string]interface{})
		if !ok {
			return spec.WrapPath(schemaURI, spec.ErrSchemaMismatch, "extension must be a JSON object")
		}
		extPtr := reflect.New(t)
		if err := decodeInto(subMap, extPtr); err != nil {
			return err
		}
		if r.extensions == nil {
			r.extensions = make(map[string]interface{})
		}
		r.extensions[schemaURI] = extPtr.Interface()
		delete(top, schemaURI)
	}

	return decodeInto(top, reflect.ValueOf(&r.Body))
}

// MarshalJSON encodes r: the core envelope, Body's own fields, and every
// populated extension bucket — adding its schema URI to schemas if the
// caller had not already listed it (spec §12.2's augmentation rule).
func (r *Resource[B]) MarshalJSON() ([]byte, error) {
	bodyMap, err := encodeFrom(reflect.ValueOf(r.Body))
	if err != nil {
		return nil, err
	}

	schemas := append([]string(nil), r.Schemas...)
	for schemaURI, ext := range r.extensions {
		if !containsString(schemas, schemaURI) {
			schemas = append(schemas, schemaURI)
		}
		extMap, err := encodeFrom(reflect.ValueOf(ext))
		if err != nil {
			return nil, err
		}
		bodyMap[schemaURI] = extMap
	}

	bodyMap["schemas"] = schemas
	if r.ID != nil {
		bodyMap["id"] = *r.ID
	}
	if r.ExternalID != nil {
		bodyMap["externalId"] = *r.ExternalID
	}
	if r.Meta != nil {
		metaMap, err := encodeFrom(reflect.ValueOf(r.Meta))
		if err != nil {
			return nil, err
		}
		bodyMap["meta"] = metaMap
	}

	return json.Marshal(bodyMap)
}

func extractEnvelope[B any](top map[string]interface{}, r *Resource[B]) error {
	if raw, ok := top["schemas"]; ok {
		list, ok := raw.([]interface{})
		if !ok {
			return spec.WrapPath("schemas", spec.ErrSchemaMismatch, "expected an array")
		}
		schemas := make([]string, 0, len(list))
		for _, v := range list {
			s, ok := v.(string)
			if !ok {
				return spec.WrapPath("schemas", spec.ErrSchemaMismatch, "expected a string")
			}
			schemas = append(schemas, s)
		}
		r.Schemas = schemas
	}
	if len(r.Schemas) == 0 {
		return spec.WrapPath("schemas", spec.ErrSchemaMismatch, "required attribute missing")
	}
	if ps, ok := interface{}(r.Body).(PrimarySchemer); ok && r.Schemas[0] != ps.PrimarySchema() {
		return spec.WrapPath("schemas[0]", spec.ErrSchemaMismatch, fmt.Sprintf("expected %q", ps.PrimarySchema()))
	}

	if raw, ok := top["id"]; ok {
		s, ok := raw.(string)
		if !ok {
			return spec.WrapPath("id", spec.ErrSchemaMismatch, "expected a string")
		}
		r.ID = &s
	}
	if raw, ok := top["externalId"]; ok {
		s, ok := raw.(string)
		if !ok {
			return spec.WrapPath("externalId", spec.ErrSchemaMismatch, "expected a string")
		}
		r.ExternalID = &s
	}
	if raw, ok := top["meta"]; ok {
		subMap, ok := raw.(map[string]interface{})
		if !ok {
			return spec.WrapPath("meta", spec.ErrSchemaMismatch, "expected a JSON object")
		}
		m := &Meta{}
		if err := decodeInto(subMap, reflect.ValueOf(m)); err != nil {
			return err
		}
		r.Meta = m
	}

	return nil
}

func decodeInto(m map[string]interface{}, target reflect.Value) error {
	td, err := meta.DescriptorFor(target.Type())
	if err != nil {
		return err
	}
	bag, err := codec.DecodeMap(m, td, "")
	if err != nil {
		return err
	}
	return loadStruct(bag, td, indirect(target))
}

func encodeFrom(v reflect.Value) (map[string]interface{}, error) {
	td, err := meta.DescriptorFor(v.Type())
	if err != nil {
		return nil, err
	}
	bag := dumpStruct(td, indirect(v))
	return codec.EncodeMap(bag, td, codec.ModeDefault)
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
