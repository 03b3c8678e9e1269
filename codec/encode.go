package codec

import (
	"encoding/json"
	"fmt"

	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// Encode renders a Bag back to JSON according to mode.
func Encode(b Bag, td *meta.TypeDescriptor, mode Mode) ([]byte, error) {
	m, err := EncodeMap(b, td, mode)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// EncodeMap is Encode's recursive worker, producing a plain
// map[string]interface{} suitable for json.Marshal or for embedding inside
// a parent object.
func EncodeMap(b Bag, td *meta.TypeDescriptor, mode Mode) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(td.Fields()))

	for _, f := range td.Fields() {
		v, present := b[f.InternalName]
		if !present {
			if mode == ModeIncludeNull && f.Attribute.Returned() != spec.ReturnedNever {
				out[f.Alias] = nil
			}
			continue
		}
		if f.Attribute.Returned() == spec.ReturnedNever {
			continue
		}

		if v == Null {
			if mode == ModeExcludeUnset {
				continue
			}
			out[f.Alias] = nil
			continue
		}

		encoded, err := encodeField(f, v, mode)
		if err != nil {
			return nil, err
		}
		out[f.Alias] = encoded
	}

	// Extension buckets and other extra fields (ExtraFieldsAllowed types
	// only) pass through verbatim; they were never run through a
	// FieldDescriptor on decode either.
	if td.ExtraFieldsAllowed {
		for k, v := range b {
			if _, ok := td.FieldByInternalName(k); ok {
				continue
			}
			out[k] = v
		}
	}

	return out, nil
}

func encodeField(f *meta.FieldDescriptor, v interface{}, mode Mode) (interface{}, error) {
	if f.Attribute.MultiValued() {
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: multiValued field %s holds %T", spec.ErrInternal, f.Alias, v)
		}
		out := make([]interface{}, 0, len(list))
		for _, item := range list {
			enc, err := encodeSingle(f, item, mode)
			if err != nil {
				return nil, err
			}
			out = append(out, enc)
		}
		return out, nil
	}
	return encodeSingle(f, v, mode)
}

func encodeSingle(f *meta.FieldDescriptor, v interface{}, mode Mode) (interface{}, error) {
	if f.Attribute.Type() == spec.TypeComplex {
		sub, ok := v.(Bag)
		if !ok {
			return nil, fmt.Errorf("%w: complex field %s holds %T", spec.ErrInternal, f.Alias, v)
		}
		return EncodeMap(sub, f.Elem, mode)
	}
	return encodeScalar(f.Attribute, v)
}
