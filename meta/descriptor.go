// Package meta implements the side-table type descriptor Design Notes §9
// prescribes in place of annotation-carrying fields: per-field SCIM
// metadata (alias, description, mutability, returned, uniqueness,
// caseExact, required, reference kind, multiplicity) lives in a
// TypeDescriptor rather than on the field itself, so the same
// introspection API (C7) serves both hand-written Go structs (reflected
// once, from struct tags, see reflect.go) and dynamically generated models
// (populated directly from a spec.AttributeDescriptor tree, see the
// dynamic package) without branching on origin.
package meta

import "github.com/scimkit/scimmodel/spec"

// FieldDescriptor carries everything codec and introspection need to know
// about one field of a resource type.
type FieldDescriptor struct {
	// InternalName is the Go-facing identifier for the field: a struct's
	// exported field name for hand-written types, or the derived
	// snake_case identifier for dynamically generated ones.
	InternalName string
	// Alias is the wire (JSON) name, e.g. "userName" or "$ref".
	Alias string
	// Attribute carries the field's SCIM metadata: type, multiplicity,
	// mutability, returned, uniqueness, caseExact, required, description,
	// canonical values and reference types.
	Attribute *spec.Attribute
	// Elem is the descriptor of the field's complex element type,
	// non-nil only when Attribute.Type() == spec.TypeComplex.
	Elem *TypeDescriptor
	// StructIndex is the reflect.StructField index path used to reach this
	// field on a hand-written struct. Empty for dynamically generated
	// fields, which are stored in a map instead (see dynamic.Resource).
	StructIndex []int
}

// TypeDescriptor is the ordered collection of FieldDescriptors for one
// resource or complex type, plus lookup tables keyed by both the wire
// alias and the internal name (spec §4.1: "both directions of JSON accept
// either the alias or the internal name").
type TypeDescriptor struct {
	// Name is a human label for the type, used in generated nested-type
	// names and error messages (e.g. "User", "PhoneNumbers").
	Name string
	// SchemaID is the primary schema URI this type decodes/encodes
	// against the schemas[0] discriminator with, empty for non-resource
	// complex types.
	SchemaID string
	// ExtraFieldsAllowed mirrors spec §4.1's extra="allow": resource
	// types opt in (so extension buckets pass through to resource.Resource
	// unrejected), complex sub-types do not.
	ExtraFieldsAllowed bool

	fields    []*FieldDescriptor
	byAlias   map[string]*FieldDescriptor
	byInternal map[string]*FieldDescriptor
}

// NewTypeDescriptor builds a TypeDescriptor from an ordered field list.
func NewTypeDescriptor(name, schemaID string, extraFieldsAllowed bool, fields []*FieldDescriptor) *TypeDescriptor {
	td := &TypeDescriptor{
		Name:               name,
		SchemaID:           schemaID,
		ExtraFieldsAllowed: extraFieldsAllowed,
		fields:             fields,
		byAlias:            make(map[string]*FieldDescriptor, len(fields)),
		byInternal:         make(map[string]*FieldDescriptor, len(fields)),
	}
	for _, f := range fields {
		td.byAlias[f.Alias] = f
		td.byInternal[f.InternalName] = f
	}
	return td
}

// Fields returns the field descriptors in declared order.
func (td *TypeDescriptor) Fields() []*FieldDescriptor { return td.fields }

// FieldByWireName resolves a JSON key, accepting either the wire alias or
// the internal name, per spec §4.1.
func (td *TypeDescriptor) FieldByWireName(key string) (*FieldDescriptor, bool) {
	if f, ok := td.byAlias[key]; ok {
		return f, true
	}
	f, ok := td.byInternal[key]
	return f, ok
}

// FieldByInternalName resolves a field by its Go-facing name.
func (td *TypeDescriptor) FieldByInternalName(name string) (*FieldDescriptor, bool) {
	f, ok := td.byInternal[name]
	return f, ok
}
