package codec

import (
	"encoding/json"
	"fmt"

	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// Decode parses raw JSON into a Bag shaped by td. It is the entry point
// dynamic.Resource.UnmarshalJSON drives; resource.Resource unmarshals the
// top-level object itself and calls DecodeMap directly.
func Decode(raw []byte, td *meta.TypeDescriptor) (Bag, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", spec.ErrSchemaMismatch, err)
	}
	return DecodeMap(m, td, "")
}

// DecodeMap converts an already-unmarshaled JSON object into a Bag, applying
// key aliasing, value coercion and required/unknown-field enforcement for
// every field described by td. path is the dotted attribute path of m's
// owner, empty at the root.
func DecodeMap(m map[string]interface{}, td *meta.TypeDescriptor, path string) (Bag, error) {
	bag := make(Bag, len(m))
	seen := make(map[string]bool, len(m))

	for key, raw := range m {
		f, ok := td.FieldByWireName(key)
		if !ok {
			if td.ExtraFieldsAllowed {
				bag[key] = raw
				continue
			}
			return nil, spec.WrapPath(childPath(path, key), spec.ErrUnknownField, "no such field")
		}
		seen[f.InternalName] = true

		fieldPath := childPath(path, f.Alias)
		if raw == nil {
			bag[f.InternalName] = Null
			continue
		}

		v, err := decodeField(fieldPath, f, raw)
		if err != nil {
			return nil, err
		}
		bag[f.InternalName] = v
	}

	for _, f := range td.Fields() {
		if f.Attribute.Required() && !seen[f.InternalName] {
			return nil, spec.WrapPath(childPath(path, f.Alias), spec.ErrSchemaMismatch, "required attribute missing")
		}
	}

	return bag, nil
}

func decodeField(path string, f *meta.FieldDescriptor, raw interface{}) (interface{}, error) {
	if f.Attribute.MultiValued() {
		list, ok := raw.([]interface{})
		if !ok {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, "expected a JSON array")
		}
		out := make([]interface{}, 0, len(list))
		for i, item := range list {
			v, err := decodeSingle(fmt.Sprintf("%s[%d]", path, i), f, item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	return decodeSingle(path, f, raw)
}

func decodeSingle(path string, f *meta.FieldDescriptor, raw interface{}) (interface{}, error) {
	if f.Attribute.Type() == spec.TypeComplex {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, "expected a JSON object")
		}
		return DecodeMap(m, f.Elem, path)
	}
	return decodeScalar(path, f.Attribute, raw)
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
