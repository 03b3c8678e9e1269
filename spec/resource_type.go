package spec

import (
	"encoding/json"

	"github.com/scimkit/scimmodel/spec/internal"
)

// ResourceType models the SCIM ResourceType resource (RFC 7643 §6): a
// collection of one main schema and zero or more schema extensions that
// together describe a single kind of SCIM resource.
type ResourceType struct {
	id          string
	name        string
	description string
	endpoint    string
	schema      *Schema
	extensions  []*Schema
	required    map[string]bool // extension schema id -> required
}

// NewResourceType constructs a ResourceType from an already-resolved main
// schema. Extension schemas are added with WithExtension.
func NewResourceType(id, name, description, endpoint string, schema *Schema) *ResourceType {
	return &ResourceType{
		id: id, name: name, description: description, endpoint: endpoint,
		schema: schema, required: map[string]bool{},
	}
}

// WithExtension registers an extension schema on the resource type.
func (t *ResourceType) WithExtension(ext *Schema, required bool) *ResourceType {
	t.extensions = append(t.extensions, ext)
	if t.required == nil {
		t.required = map[string]bool{}
	}
	t.required[ext.id] = required
	return t
}

func (t *ResourceType) ID() string          { return t.id }
func (t *ResourceType) Name() string        { return t.name }
func (t *ResourceType) Description() string { return t.description }
func (t *ResourceType) Endpoint() string    { return t.endpoint }
func (t *ResourceType) Schema() *Schema     { return t.schema }

// Extensions returns the registered extension schemas, in declared order.
func (t *ResourceType) Extensions() []*Schema { return t.extensions }

// ExtensionRequired reports whether the extension identified by schema id
// is required on this resource type.
func (t *ResourceType) ExtensionRequired(schemaID string) bool { return t.required[schemaID] }

// ForEachExtension invokes callback on each extension schema.
func (t *ResourceType) ForEachExtension(callback func(extension *Schema, required bool) error) error {
	for _, ext := range t.extensions {
		if err := callback(ext, t.required[ext.id]); err != nil {
			return err
		}
	}
	return nil
}

func (t *ResourceType) MarshalJSON() ([]byte, error) {
	adapter := internal.ResourceTypeJsonAdapter{
		ID:          t.id,
		Name:        t.name,
		Description: t.description,
		Endpoint:    t.endpoint,
		Schema:      t.schema.ID(),
	}
	for _, ext := range t.extensions {
		adapter.Extensions = append(adapter.Extensions, &internal.SchemaExtension{
			Schema:   ext.ID(),
			Required: t.required[ext.ID()],
		})
	}
	return json.Marshal(adapter)
}

func (t *ResourceType) UnmarshalJSON(raw []byte) error {
	var adapter internal.ResourceTypeJsonAdapter
	if err := json.Unmarshal(raw, &adapter); err != nil {
		return err
	}

	schema, ok := Schemas().Get(adapter.Schema)
	if !ok {
		return WrapPath("schema", ErrInvalidSchemaDocument, "unknown schema id "+adapter.Schema)
	}

	t.id = adapter.ID
	t.name = adapter.Name
	t.description = adapter.Description
	t.endpoint = adapter.Endpoint
	t.schema = schema
	t.extensions = nil
	t.required = map[string]bool{}
	for _, ext := range adapter.Extensions {
		extSchema, ok := Schemas().Get(ext.Schema)
		if !ok {
			return WrapPath("schemaExtensions", ErrInvalidSchemaDocument, "unknown schema id "+ext.Schema)
		}
		t.extensions = append(t.extensions, extSchema)
		t.required[ext.Schema] = ext.Required
	}
	return nil
}

// SuperAttribute returns a virtual complex attribute whose sub attributes
// are the union of the main schema's top-level attributes and, for each
// extension, a nested complex sub attribute named after the extension's
// schema URI holding that extension's attributes: the primary-schema
// attributes sit alongside URI-named extension buckets, as spec §3
// "Resource" describes. resource.Resource does not use it; it decodes
// against descriptors reflected from its Go body and extension types.
func (t *ResourceType) SuperAttribute() *Attribute {
	b := NewAttributeBuilder(t.schema.ID(), TypeComplex).Path("")
	subs := append([]*Attribute(nil), t.schema.Attributes()...)
	for _, ext := range t.extensions {
		extAttr := NewAttributeBuilder(ext.ID(), TypeComplex).
			Path(ext.ID()).
			Required(t.required[ext.ID()]).
			Mutability(MutabilityReadWrite).
			Returned(ReturnedDefault).
			SubAttributes(ext.Attributes()...).
			Build()
		subs = append(subs, extAttr)
	}
	return b.SubAttributes(subs...).Build()
}
