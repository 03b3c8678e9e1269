package spec

import (
	"encoding/json"
	"strings"

	"github.com/scimkit/scimmodel/spec/internal"
)

// Attribute describes the data requirements of one SCIM attribute: its
// wire name, data type, multiplicity and the four orthogonal annotation
// axes (mutability, returned, uniqueness, caseExact) plus required. It
// doubles as the "AttributeDescriptor" of spec §3: the same type is used
// both for attributes parsed out of a Schema document and for attributes
// attached to hand-written resource fields, so introspection (C7) never has
// to branch on where an attribute came from.
//
// Attribute is immutable after construction: build one through
// AttributeBuilder, or by unmarshaling a Schema document.
type Attribute struct {
	name            string
	description     string
	typ             Type
	subAttributes   []*Attribute
	canonicalValues []string
	multiValued     bool
	required        bool
	caseExact       bool
	mutability      Mutability
	returned        Returned
	uniqueness      Uniqueness
	referenceTypes  []string
	path            string // dotted path from the root, e.g. "name.familyName"
}

// Name returns the wire (SCIM) name of the attribute, e.g. "familyName" or "$ref".
func (a *Attribute) Name() string { return a.name }

// Description returns the human-readable attribute description.
func (a *Attribute) Description() string { return a.description }

// Type returns the attribute's data type.
func (a *Attribute) Type() Type { return a.typ }

// Path returns the dotted path of this attribute from the root, e.g. "emails.value".
func (a *Attribute) Path() string { return a.path }

// MultiValued reports whether this attribute allows more than one value.
func (a *Attribute) MultiValued() bool { return a.multiValued }

// Required reports whether the attribute must be present on decode.
func (a *Attribute) Required() bool { return a.required }

// CaseExact reports whether string comparison against this attribute's
// value is case sensitive.
func (a *Attribute) CaseExact() bool { return a.caseExact }

// Mutability returns the attribute's mutability characteristic.
func (a *Attribute) Mutability() Mutability { return a.mutability }

// Returned returns the attribute's return-ability characteristic.
func (a *Attribute) Returned() Returned { return a.returned }

// Uniqueness returns the attribute's uniqueness characteristic.
func (a *Attribute) Uniqueness() Uniqueness { return a.uniqueness }

// CanonicalValues returns the suggested (non-exhaustive) values for a
// string attribute. They are carried for introspection only; decode does
// not reject values outside this list (SCIM canonical values are examples,
// not a closed enum).
func (a *Attribute) CanonicalValues() []string { return append([]string(nil), a.canonicalValues...) }

// ReferenceTypes returns the raw referenceTypes list. Only meaningful when
// Type() == TypeReference. Use ClassifyReferenceTypes to interpret it.
func (a *Attribute) ReferenceTypes() []string { return append([]string(nil), a.referenceTypes...) }

// SubAttributes returns the direct sub-attributes, in declared order. Only
// meaningful when Type() == TypeComplex.
func (a *Attribute) SubAttributes() []*Attribute { return a.subAttributes }

// ForEachSubAttribute invokes callback on each sub attribute in order.
func (a *Attribute) ForEachSubAttribute(callback func(sub *Attribute) error) error {
	for _, sub := range a.subAttributes {
		if err := callback(sub); err != nil {
			return err
		}
	}
	return nil
}

// SubAttributeForName returns the sub attribute addressed by name (matched
// case-insensitively against its wire name or path), or nil.
func (a *Attribute) SubAttributeForName(name string) *Attribute {
	for _, sub := range a.subAttributes {
		if sub.GoesBy(name) {
			return sub
		}
	}
	return nil
}

// GoesBy reports whether this attribute can be addressed by the given name.
func (a *Attribute) GoesBy(name string) bool {
	lower := strings.ToLower(name)
	return lower == strings.ToLower(a.name) || lower == strings.ToLower(a.path)
}

// DFS performs a depth-first traversal starting at this attribute.
func (a *Attribute) DFS(callback func(attr *Attribute)) {
	callback(a)
	for _, sub := range a.subAttributes {
		sub.DFS(callback)
	}
}

// Equals reports whether two attributes describe the same path.
func (a *Attribute) Equals(other *Attribute) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	return a.path == other.path
}

func (a *Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.toMarshaler())
}

func (a *Attribute) toMarshaler() *internal.AttributeMarshaler {
	m := &internal.AttributeMarshaler{
		Name:            a.name,
		Description:     a.description,
		Type:            a.typ.String(),
		CanonicalValues: a.canonicalValues,
		MultiValued:     a.multiValued,
		Required:        a.required,
		CaseExact:       a.caseExact,
		Mutability:      a.mutability.String(),
		Returned:        a.returned.String(),
		Uniqueness:      a.uniqueness.String(),
		ReferenceTypes:  a.referenceTypes,
	}
	for _, sub := range a.subAttributes {
		m.SubAttributes = append(m.SubAttributes, sub.toMarshaler())
	}
	return m
}

func (a *Attribute) UnmarshalJSON(raw []byte) error {
	var um internal.AttributeUnmarshaler
	if err := json.Unmarshal(raw, &um); err != nil {
		return err
	}
	built, err := attributeFromUnmarshaler(&um, "")
	if err != nil {
		return err
	}
	*a = *built
	return nil
}

func attributeFromUnmarshaler(um *internal.AttributeUnmarshaler, parentPath string) (*Attribute, error) {
	typ, err := ParseType(um.Type)
	if err != nil {
		return nil, err
	}
	if typ == TypeComplex && len(um.SubAttributes) == 0 {
		return nil, WrapPath(um.Name, ErrInvalidSchemaDocument, "complex attribute requires subAttributes")
	}
	if typ != TypeComplex && len(um.SubAttributes) > 0 {
		return nil, WrapPath(um.Name, ErrInvalidSchemaDocument, "subAttributes only allowed on complex attributes")
	}
	if typ == TypeReference {
		if _, _, err := ClassifyReferenceTypes(um.ReferenceTypes); err != nil {
			return nil, WrapPath(um.Name, err, "invalid referenceTypes")
		}
	}

	mutability, err := ParseMutability(um.Mutability)
	if err != nil {
		return nil, err
	}
	returned, err := ParseReturned(um.Returned)
	if err != nil {
		return nil, err
	}
	uniqueness, err := ParseUniqueness(um.Uniqueness)
	if err != nil {
		return nil, err
	}

	path := um.Name
	if parentPath != "" {
		path = parentPath + "." + um.Name
	}

	attr := &Attribute{
		name:            um.Name,
		description:     um.Description,
		typ:             typ,
		canonicalValues: um.CanonicalValues,
		multiValued:     um.MultiValued,
		required:        um.Required,
		caseExact:       um.CaseExact,
		mutability:      mutability,
		returned:        returned,
		uniqueness:      uniqueness,
		referenceTypes:  um.ReferenceTypes,
		path:            path,
	}

	for _, subUm := range um.SubAttributes {
		sub, err := attributeFromUnmarshaler(subUm, path)
		if err != nil {
			return nil, err
		}
		attr.subAttributes = append(attr.subAttributes, sub)
	}

	return attr, nil
}
