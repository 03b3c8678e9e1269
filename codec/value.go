package codec

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"time"

	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// decodeScalar converts a JSON-decoded value (string, float64, bool, nil)
// into the Bag representation for a single scalar attribute, per the
// Attribute's declared type.
func decodeScalar(path string, attr *spec.Attribute, raw interface{}) (interface{}, error) {
	switch attr.Type() {
	case spec.TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, "expected a string")
		}
		return s, nil
	case spec.TypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, "expected a boolean")
		}
		return b, nil
	case spec.TypeInteger:
		f, ok := raw.(float64)
		if !ok {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, "expected an integer")
		}
		return int64(f), nil
	case spec.TypeDecimal:
		f, ok := raw.(float64)
		if !ok {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, "expected a decimal")
		}
		return f, nil
	case spec.TypeDateTime:
		s, ok := raw.(string)
		if !ok {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, "expected a dateTime string")
		}
		t, err := parseDateTime(s)
		if err != nil {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, err.Error())
		}
		return t, nil
	case spec.TypeBinary:
		s, ok := raw.(string)
		if !ok {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, "expected a base64 string")
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, "invalid base64: "+err.Error())
		}
		return b, nil
	case spec.TypeReference:
		s, ok := raw.(string)
		if !ok {
			return nil, spec.WrapPath(path, spec.ErrSchemaMismatch, "expected a reference string")
		}
		if err := validateReference(attr, s); err != nil {
			return nil, spec.WrapPath(path, err, "")
		}
		return meta.Reference(s), nil
	default:
		return nil, spec.WrapPath(path, spec.ErrInternal, fmt.Sprintf("unexpected scalar type %s", attr.Type()))
	}
}

// encodeScalar is the inverse of decodeScalar, producing a value that
// encoding/json can marshal directly.
func encodeScalar(attr *spec.Attribute, v interface{}) (interface{}, error) {
	switch attr.Type() {
	case spec.TypeDateTime:
		t, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("%w: dateTime field holds %T", spec.ErrInternal, v)
		}
		return formatDateTime(t), nil
	case spec.TypeBinary:
		b, ok := v.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: binary field holds %T", spec.ErrInternal, v)
		}
		return base64.StdEncoding.EncodeToString(b), nil
	case spec.TypeReference:
		r, ok := v.(meta.Reference)
		if !ok {
			return nil, fmt.Errorf("%w: reference field holds %T", spec.ErrInternal, v)
		}
		return string(r), nil
	default:
		return v, nil
	}
}

// parseDateTime accepts any RFC 3339 timestamp, matching the leniency of
// real-world SCIM service providers that do not all emit the same
// sub-second precision.
func parseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed dateTime %q: %v", s, err)
	}
	return t, nil
}

// formatDateTime renders a timestamp the way spec §4.1 requires: RFC 3339,
// UTC, trailing "Z".
func formatDateTime(t time.Time) string {
	return t.UTC().Format(spec.RFC3339Micro)
}

// validateReference checks a reference value's shape against the owning
// attribute's referenceTypes, per spec §4.5.
func validateReference(attr *spec.Attribute, value string) error {
	kind, _, err := spec.ClassifyReferenceTypes(attr.ReferenceTypes())
	if err != nil {
		return err
	}
	switch kind {
	case spec.ReferenceResourceType:
		if value == "" {
			return fmt.Errorf("%w: empty reference value", spec.ErrSchemaMismatch)
		}
		return nil
	case spec.ReferenceExternal:
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %q is not an absolute URL", spec.ErrSchemaMismatch, value)
		}
		return nil
	case spec.ReferenceURI:
		if value == "" {
			return fmt.Errorf("%w: empty reference value", spec.ErrSchemaMismatch)
		}
		if _, err := url.Parse(value); err != nil {
			return fmt.Errorf("%w: %q is not a valid URI", spec.ErrSchemaMismatch, value)
		}
		return nil
	default:
		return nil
	}
}
