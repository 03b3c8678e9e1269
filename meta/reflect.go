package meta

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/scimkit/scimmodel/spec"
)

// Reference is the Go representation of a SCIM reference-typed attribute
// value (spec §3 "Reference"): a bare string on the wire, whose structural
// shape (external URL / URI / resource-type tag) is governed by the
// owning attribute's referenceTypes, not by the Go type itself.
type Reference string

var (
	descriptorCache sync.Map // reflect.Type -> *TypeDescriptor
	referenceType   = reflect.TypeOf(Reference(""))
	timeType        = reflect.TypeOf(time.Time{})
)

// DescriptorFor returns the TypeDescriptor for a hand-written resource or
// complex struct type, building and caching it on first use the way
// encoding/json caches its own field lists.
//
// v may be a struct value, a pointer to struct, or a reflect.Type of
// either.
func DescriptorFor(v interface{}) (*TypeDescriptor, error) {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", spec.ErrInternal, t)
	}

	if cached, ok := descriptorCache.Load(t); ok {
		return cached.(*TypeDescriptor), nil
	}

	td, err := buildDescriptor(t)
	if err != nil {
		return nil, err
	}
	actual, _ := descriptorCache.LoadOrStore(t, td)
	return actual.(*TypeDescriptor), nil
}

// tag is the parsed form of a `scim:"..."` struct tag.
type tag struct {
	name       string
	required   bool
	caseExact  bool
	mutability string
	returned   string
	uniqueness string
	refTypes   []string
	desc       string
	examples   []string
	skip       bool
}

func parseTag(raw string) tag {
	var t tag
	if raw == "-" {
		t.skip = true
		return t
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		key := kv[0]
		var val string
		if len(kv) == 2 {
			val = kv[1]
		}
		switch key {
		case "name":
			t.name = val
		case "required":
			t.required = true
		case "caseExact":
			t.caseExact = true
		case "mutability":
			t.mutability = val
		case "returned":
			t.returned = val
		case "uniqueness":
			t.uniqueness = val
		case "refTypes":
			t.refTypes = strings.Split(val, ";")
		case "desc":
			t.desc = val
		case "examples":
			t.examples = strings.Split(val, ";")
		}
	}
	return t
}

func buildDescriptor(t reflect.Type) (*TypeDescriptor, error) {
	var fields []*FieldDescriptor
	const schemaID = ""
	// A struct that names its own primary schema is a resource type and
	// accepts keys it has no field for; every other struct is strict.
	extraAllowed := reflect.PtrTo(t).Implements(reflect.TypeOf((*interface{ PrimarySchema() string })(nil)).Elem())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}
		if sf.Name == "Schemas" || sf.Name == "ID" || sf.Name == "ExternalID" || sf.Name == "Meta" {
			// The core resource envelope fields (spec §3) are handled
			// directly by resource.Resource, not through a field
			// descriptor: they are identical across every resource type
			// and carry fixed annotations.
			continue
		}

		raw, has := sf.Tag.Lookup("scim")
		if !has {
			continue
		}
		pt := parseTag(raw)
		if pt.skip {
			continue
		}

		alias := pt.name
		if alias == "" {
			alias = strings.ToLower(sf.Name[:1]) + sf.Name[1:]
		}

		ft := sf.Type
		multiValued := false
		for ft.Kind() == reflect.Slice && ft.Elem().Kind() != reflect.Uint8 {
			multiValued = true
			ft = ft.Elem()
		}
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}

		scimType, elemDesc, err := classify(ft)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}

		mutability, err := spec.ParseMutability(pt.mutability)
		if err != nil {
			return nil, err
		}
		returned, err := spec.ParseReturned(pt.returned)
		if err != nil {
			return nil, err
		}
		uniqueness, err := spec.ParseUniqueness(pt.uniqueness)
		if err != nil {
			return nil, err
		}

		ab := spec.NewAttributeBuilder(alias, scimType).
			Description(pt.desc).
			MultiValued(multiValued).
			Required(pt.required).
			CaseExact(pt.caseExact).
			Mutability(mutability).
			Returned(returned).
			Uniqueness(uniqueness).
			CanonicalValues(pt.examples...)
		if scimType == spec.TypeReference {
			ab = ab.ReferenceTypes(pt.refTypes...)
		}
		if elemDesc != nil {
			ab = ab.SubAttributes(elemDesc.attributeList()...)
		}

		fields = append(fields, &FieldDescriptor{
			InternalName: sf.Name,
			Alias:        alias,
			Attribute:    ab.Build(),
			Elem:         elemDesc,
			StructIndex:  append([]int(nil), sf.Index...),
		})
	}

	return NewTypeDescriptor(t.Name(), schemaID, extraAllowed, fields), nil
}

// attributeList exposes a TypeDescriptor's fields as spec.Attribute values,
// used to populate a parent complex attribute's subAttributes.
func (td *TypeDescriptor) attributeList() []*spec.Attribute {
	out := make([]*spec.Attribute, 0, len(td.fields))
	for _, f := range td.fields {
		out = append(out, f.Attribute)
	}
	return out
}

func classify(ft reflect.Type) (spec.Type, *TypeDescriptor, error) {
	switch {
	case ft == referenceType:
		return spec.TypeReference, nil, nil
	case ft == timeType:
		return spec.TypeDateTime, nil, nil
	case ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Uint8:
		return spec.TypeBinary, nil, nil
	case ft.Kind() == reflect.String:
		return spec.TypeString, nil, nil
	case ft.Kind() == reflect.Bool:
		return spec.TypeBoolean, nil, nil
	case ft.Kind() == reflect.Int || ft.Kind() == reflect.Int64:
		return spec.TypeInteger, nil, nil
	case ft.Kind() == reflect.Float64 || ft.Kind() == reflect.Float32:
		return spec.TypeDecimal, nil, nil
	case ft.Kind() == reflect.Struct:
		elem, err := DescriptorFor(ft)
		if err != nil {
			return 0, nil, err
		}
		return spec.TypeComplex, elem, nil
	default:
		return 0, nil, fmt.Errorf("unsupported field type %s", ft)
	}
}
