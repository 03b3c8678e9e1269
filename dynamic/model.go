package dynamic

import (
	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// BuildModel implements the dynamic model factory (C6, spec §4.5): it
// ingests a Schema document and returns a TypeDescriptor with the same
// validation and serialization behavior as a hand-written model, including
// nested complex and multi-valued complex sub-types.
//
// If schema.ID() names one of the well-known core schemas and a
// hand-written descriptor was registered for it (see RegisterWellKnown),
// that descriptor is returned unchanged, per step 1 of the algorithm:
// standard resources keep their hand-written container shape.
func BuildModel(schema *spec.Schema) (*meta.TypeDescriptor, error) {
	if td, ok := wellKnown[schema.ID()]; ok {
		debugEvent().Str("schema", schema.ID()).Msg("dynamic: reusing well-known model")
		return td, nil
	}
	return buildFromCache(schema)
}

// buildDescriptor recursively derives a TypeDescriptor from an attribute
// list (either a Schema's top-level attributes, or a complex attribute's
// subAttributes), synthesizing the implicit type/primary/display
// sub-attributes on multi-valued complex attributes per RFC 7643 §2.4.
func buildDescriptor(name, schemaID string, attrs []*spec.Attribute) (*meta.TypeDescriptor, error) {
	fields := make([]*meta.FieldDescriptor, 0, len(attrs))

	for _, attr := range attrs {
		f, err := buildField(attr)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return meta.NewTypeDescriptor(name, schemaID, schemaID != "", fields), nil
}

func buildField(attr *spec.Attribute) (*meta.FieldDescriptor, error) {
	f := &meta.FieldDescriptor{
		InternalName: internalName(attr.Name()),
		Alias:        attr.Name(),
		Attribute:    attr,
	}

	if attr.Type() != spec.TypeComplex {
		return f, nil
	}

	subs := attr.SubAttributes()
	if attr.MultiValued() {
		subs = withImplicitMultiValuedComplexAttributes(subs)
	}

	elem, err := buildDescriptor(pascalCase(attr.Name()), "", subs)
	if err != nil {
		return nil, err
	}
	f.Elem = elem
	return f, nil
}

// withImplicitMultiValuedComplexAttributes adds the standard type/primary/
// display sub-attributes RFC 7643 §2.4 implies for a multi-valued complex
// attribute (emails, phoneNumbers, ...) whenever the schema document does
// not already declare them.
func withImplicitMultiValuedComplexAttributes(subs []*spec.Attribute) []*spec.Attribute {
	out := append([]*spec.Attribute(nil), subs...)
	have := make(map[string]bool, len(subs))
	for _, s := range subs {
		have[s.Name()] = true
	}

	if !have["type"] {
		out = append(out, spec.NewAttributeBuilder("type", spec.TypeString).Build())
	}
	if !have["primary"] {
		out = append(out, spec.NewAttributeBuilder("primary", spec.TypeBoolean).Build())
	}
	if !have["display"] {
		out = append(out, spec.NewAttributeBuilder("display", spec.TypeString).Build())
	}
	return out
}
