package dynamic

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// ExportJSONSchema renders a generated model's shape as a JSON Schema
// document, for documentation and client tooling that wants a
// machine-readable description of a dynamically discovered resource type
// without depending on this module's own introspection API.
func ExportJSONSchema(td *meta.TypeDescriptor) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema),
		AdditionalProperties: boolSchema(td.ExtraFieldsAllowed),
	}

	for _, f := range td.Fields() {
		fs := fieldJSONSchema(f)
		s.Properties[f.Alias] = fs
		if f.Attribute.Required() {
			s.Required = append(s.Required, f.Alias)
		}
	}

	return s
}

func fieldJSONSchema(f *meta.FieldDescriptor) *jsonschema.Schema {
	single := scalarJSONSchema(f)
	single.Description = f.Attribute.Description()
	if len(f.Attribute.CanonicalValues()) > 0 {
		for _, v := range f.Attribute.CanonicalValues() {
			single.Enum = append(single.Enum, v)
		}
	}

	if !f.Attribute.MultiValued() {
		return single
	}
	return &jsonschema.Schema{Type: "array", Items: single}
}

func scalarJSONSchema(f *meta.FieldDescriptor) *jsonschema.Schema {
	switch f.Attribute.Type() {
	case spec.TypeString, spec.TypeReference, spec.TypeBinary, spec.TypeDateTime:
		return &jsonschema.Schema{Type: "string"}
	case spec.TypeBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case spec.TypeInteger:
		return &jsonschema.Schema{Type: "integer"}
	case spec.TypeDecimal:
		return &jsonschema.Schema{Type: "number"}
	case spec.TypeComplex:
		return ExportJSONSchema(f.Elem)
	default:
		return &jsonschema.Schema{}
	}
}

func boolSchema(allow bool) *jsonschema.Schema {
	if allow {
		return &jsonschema.Schema{}
	}
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
