package resource

import (
	"reflect"

	"github.com/scimkit/scimmodel/codec"
	"github.com/scimkit/scimmodel/meta"
)

// loadStruct populates the exported fields of a struct value (addressed by
// target, which must be addressable) from a decoded Bag, following each
// FieldDescriptor's StructIndex. It is the Bag-to-struct half of the bridge
// codec's package doc promises: codec never touches reflect.StructField.
func loadStruct(bag codec.Bag, td *meta.TypeDescriptor, target reflect.Value) error {
	for _, f := range td.Fields() {
		v, ok := bag[f.InternalName]
		if !ok || v == codec.Null {
			// A struct field has no representation for "explicitly set to
			// null" distinct from "never assigned"; leave it at its zero
			// value in both cases. Round-tripping that distinction is only
			// possible through dynamic.Resource's Bag-backed storage.
			continue
		}
		fv := target.FieldByIndex(f.StructIndex)
		if err := setField(fv, f, v); err != nil {
			return err
		}
	}
	return nil
}

func setField(fv reflect.Value, f *meta.FieldDescriptor, v interface{}) error {
	if f.Attribute.MultiValued() {
		list := v.([]interface{})
		slice := reflect.MakeSlice(fv.Type(), len(list), len(list))
		for i, item := range list {
			if err := setSingle(slice.Index(i), f, item); err != nil {
				return err
			}
		}
		fv.Set(slice)
		return nil
	}
	return setSingle(fv, f, v)
}

func setSingle(fv reflect.Value, f *meta.FieldDescriptor, v interface{}) error {
	target := fv
	if fv.Kind() == reflect.Ptr {
		target = reflect.New(fv.Type().Elem())
		fv.Set(target)
		target = target.Elem()
	}

	if sub, ok := v.(codec.Bag); ok {
		return loadStruct(sub, f.Elem, target)
	}

	target.Set(reflect.ValueOf(v).Convert(target.Type()))
	return nil
}

// dumpStruct is the inverse of loadStruct: it reads a struct value's
// exported fields back into a Bag, omitting any field holding its Go-side
// "unset" marker (a nil pointer, or a nil slice for a single-valued binary
// attribute) so codec.EncodeMap's mode behavior is driven purely by Bag key
// presence. Every optional scalar field in this repo's hand-written models
// is therefore a pointer: a non-pointer scalar has no zero value distinct
// from a legitimately-set zero, so it can never signal "absent" here.
func dumpStruct(td *meta.TypeDescriptor, v reflect.Value) codec.Bag {
	bag := make(codec.Bag, len(td.Fields()))
	for _, f := range td.Fields() {
		fv := v.FieldByIndex(f.StructIndex)
		val, ok := readField(fv, f)
		if !ok {
			continue
		}
		bag[f.InternalName] = val
	}
	return bag
}

func readField(fv reflect.Value, f *meta.FieldDescriptor) (interface{}, bool) {
	if f.Attribute.MultiValued() {
		if fv.IsNil() {
			return nil, false
		}
		out := make([]interface{}, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			val, ok := readSingle(fv.Index(i), f)
			if !ok {
				return nil, false
			}
			out[i] = val
		}
		return out, true
	}
	return readSingle(fv, f)
}

func readSingle(fv reflect.Value, f *meta.FieldDescriptor) (interface{}, bool) {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return nil, false
		}
		fv = fv.Elem()
	}
	// A single-valued binary attribute (dateTime is time.Time, a value
	// type) is the one non-pointer kind that still has a natural "unset"
	// zero value: a nil []byte. Treat it the same as a nil pointer.
	if fv.Kind() == reflect.Slice && fv.IsNil() {
		return nil, false
	}
	if f.Elem != nil {
		return dumpStruct(f.Elem, fv), true
	}
	return fv.Interface(), true
}
