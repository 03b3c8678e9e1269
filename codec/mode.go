// Package codec implements the base model machinery (spec §4.1, C2):
// bidirectional JSON (de)serialization keyed off a meta.TypeDescriptor,
// with SCIM-aware key aliasing, reference and dateTime parsing, and
// strict/lax unknown-field policy.
//
// codec does not know about Go structs. It decodes JSON into a Bag — a
// recursive map of Go-native values keyed by a field's internal name — and
// encodes a Bag back to JSON. The resource and dynamic packages bridge a
// Bag to, respectively, a reflected Go struct and a map-backed dynamic
// carrier, so the same decode/encode engine serves both hand-written and
// generated types without branching on origin (spec §4.6).
package codec

// Mode controls which fields Encode writes, per spec §4.1. In every mode a
// field whose attribute is returned=never is left out of the output.
type Mode int

const (
	// ModeDefault emits every assigned field using its wire alias,
	// including one explicitly set to JSON null (Null, distinct from the
	// field never being mentioned), which it renders back as null. Fields
	// that were never assigned at all are omitted.
	ModeDefault Mode = iota
	// ModeExcludeUnset omits fields that were never assigned a concrete
	// value during decode, as opposed to a field explicitly set to a
	// zero value: "" or false are still emitted, since they carry a real
	// value. An explicit JSON null is treated the same as unset here,
	// matching the common PATCH convention that null means "clear this
	// attribute" rather than "this attribute's value is null".
	ModeExcludeUnset
	// ModeIncludeNull additionally emits every remaining unassigned
	// optional field as JSON null, rather than omitting the key, on top
	// of ModeDefault's behavior.
	ModeIncludeNull
)
