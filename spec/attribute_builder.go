package spec

// AttributeBuilder constructs an Attribute programmatically. It exists so
// hand-written resource types and the meta package's struct-tag reflector
// can both produce Attribute values without exposing Attribute's private
// fields — the same immutability-after-construction contract a Schema
// document's UnmarshalJSON enjoys.
type AttributeBuilder struct {
	attr Attribute
}

// NewAttributeBuilder starts building an attribute with the given wire name
// and type.
func NewAttributeBuilder(name string, typ Type) *AttributeBuilder {
	return &AttributeBuilder{attr: Attribute{name: name, typ: typ, path: name}}
}

func (b *AttributeBuilder) Path(path string) *AttributeBuilder {
	b.attr.path = path
	return b
}

func (b *AttributeBuilder) Description(d string) *AttributeBuilder {
	b.attr.description = d
	return b
}

func (b *AttributeBuilder) MultiValued(v bool) *AttributeBuilder {
	b.attr.multiValued = v
	return b
}

func (b *AttributeBuilder) Required(v bool) *AttributeBuilder {
	b.attr.required = v
	return b
}

func (b *AttributeBuilder) CaseExact(v bool) *AttributeBuilder {
	b.attr.caseExact = v
	return b
}

func (b *AttributeBuilder) Mutability(m Mutability) *AttributeBuilder {
	b.attr.mutability = m
	return b
}

func (b *AttributeBuilder) Returned(r Returned) *AttributeBuilder {
	b.attr.returned = r
	return b
}

func (b *AttributeBuilder) Uniqueness(u Uniqueness) *AttributeBuilder {
	b.attr.uniqueness = u
	return b
}

func (b *AttributeBuilder) CanonicalValues(values ...string) *AttributeBuilder {
	b.attr.canonicalValues = values
	return b
}

func (b *AttributeBuilder) ReferenceTypes(types ...string) *AttributeBuilder {
	b.attr.referenceTypes = types
	return b
}

func (b *AttributeBuilder) SubAttributes(subs ...*Attribute) *AttributeBuilder {
	b.attr.subAttributes = subs
	return b
}

func (b *AttributeBuilder) Build() *Attribute {
	a := b.attr
	return &a
}
