package spec

import "fmt"

// WrapPath wraps a prototype error with the dotted SCIM attribute path that
// failed and a human-readable detail, per the error-path requirement of
// spec §7 ("error messages cite the dotted SCIM attribute path").
func WrapPath(path string, proto error, detail string) error {
	if path == "" {
		return fmt.Errorf("%w: %s", proto, detail)
	}
	return fmt.Errorf("%s: %w: %s", path, proto, detail)
}

// Error prototypes corresponding to the failure taxonomy of the decode and
// generate operations (spec §7). Wrap a prototype with fmt.Errorf("%s: %w",
// path, proto) to attach the dotted SCIM attribute path that failed.
var (
	// ErrSchemaMismatch: a value fails the type-level contract — required
	// attribute missing, wrong JSON kind, bad enum, malformed reference.
	ErrSchemaMismatch = &Error{Status: 400, Type: "schemaMismatch"}

	// ErrUnknownField: a strict (non extension-bearing) type encountered a
	// field it cannot place.
	ErrUnknownField = &Error{Status: 400, Type: "unknownField"}

	// ErrInvalidSchemaDocument: a malformed schema document or attribute
	// descriptor was rejected (unknown type or enum value, misplaced
	// subAttributes, empty referenceTypes).
	ErrInvalidSchemaDocument = &Error{Status: 400, Type: "invalidSchemaDocument"}

	// ErrExtensionLookupFailure: indexing a resource by a type that is not
	// a declared extension of it.
	ErrExtensionLookupFailure = &Error{Status: 400, Type: "extensionLookupFailure"}

	// ErrInternal: an invariant was violated that no caller input could
	// have triggered.
	ErrInternal = &Error{Status: 500, Type: "internal"}
)

// Error is a SCIM error kind. Construct additional context by wrapping a
// prototype (i.e. ErrSchemaMismatch) with fmt.Errorf rather than
// constructing Error values directly.
type Error struct {
	Status int
	Type   string
}

func (e *Error) Error() string {
	return e.Type
}

var _ error = (*Error)(nil)
