package meta

import (
	"fmt"
	"reflect"

	"github.com/scimkit/scimmodel/spec"
)

// AnnotationKind names one of the five orthogonal axes of spec §3
// AttributeAnnotation, for use with GetFieldAnnotation.
type AnnotationKind int

const (
	AnnotationMutability AnnotationKind = iota
	AnnotationReturned
	AnnotationUniqueness
	AnnotationCaseExact
	AnnotationRequired
)

// GetFieldRootType returns the Go type of one value of a field, without any
// multi-valued or optional wrapper: the type is chosen by the field's SCIM
// type (string, bool, int64, float64, time.Time, []byte, Reference). It is
// not the declared struct field type, and a complex field reports
// map[string]interface{} rather than its nested struct type.
func (td *TypeDescriptor) GetFieldRootType(name string) (reflect.Type, error) {
	f, ok := td.FieldByWireName(name)
	if !ok {
		return nil, fmt.Errorf("%w: no such field %q", spec.ErrSchemaMismatch, name)
	}
	return scimTypeToGoType(f), nil
}

// IsMultiple reports whether the named field is multi-valued.
func (td *TypeDescriptor) IsMultiple(name string) (bool, error) {
	f, ok := td.FieldByWireName(name)
	if !ok {
		return false, fmt.Errorf("%w: no such field %q", spec.ErrSchemaMismatch, name)
	}
	return f.Attribute.MultiValued(), nil
}

// GetFieldAnnotation returns the value of one annotation axis for the named
// field. The returned value is one of spec.Mutability, spec.Returned,
// spec.Uniqueness or bool (for CaseExact/Required), matching kind.
func (td *TypeDescriptor) GetFieldAnnotation(name string, kind AnnotationKind) (interface{}, error) {
	f, ok := td.FieldByWireName(name)
	if !ok {
		return nil, fmt.Errorf("%w: no such field %q", spec.ErrSchemaMismatch, name)
	}
	switch kind {
	case AnnotationMutability:
		return f.Attribute.Mutability(), nil
	case AnnotationReturned:
		return f.Attribute.Returned(), nil
	case AnnotationUniqueness:
		return f.Attribute.Uniqueness(), nil
	case AnnotationCaseExact:
		return f.Attribute.CaseExact(), nil
	case AnnotationRequired:
		return f.Attribute.Required(), nil
	default:
		return nil, fmt.Errorf("%w: unknown annotation kind", spec.ErrInternal)
	}
}

// Alias returns the wire name of the named field, and Description its
// human-readable text — both discoverable per spec §4.6.
func (td *TypeDescriptor) Alias(name string) (string, error) {
	f, ok := td.FieldByWireName(name)
	if !ok {
		return "", fmt.Errorf("%w: no such field %q", spec.ErrSchemaMismatch, name)
	}
	return f.Alias, nil
}

func (td *TypeDescriptor) Description(name string) (string, error) {
	f, ok := td.FieldByWireName(name)
	if !ok {
		return "", fmt.Errorf("%w: no such field %q", spec.ErrSchemaMismatch, name)
	}
	return f.Attribute.Description(), nil
}

func scimTypeToGoType(f *FieldDescriptor) reflect.Type {
	switch f.Attribute.Type() {
	case spec.TypeString:
		return reflect.TypeOf("")
	case spec.TypeBoolean:
		return reflect.TypeOf(false)
	case spec.TypeInteger:
		return reflect.TypeOf(int64(0))
	case spec.TypeDecimal:
		return reflect.TypeOf(float64(0))
	case spec.TypeDateTime:
		return timeType
	case spec.TypeBinary:
		return reflect.TypeOf([]byte(nil))
	case spec.TypeReference:
		return referenceType
	case spec.TypeComplex:
		return reflect.TypeOf(map[string]interface{}(nil))
	default:
		return nil
	}
}
