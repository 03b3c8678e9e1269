package model

import "github.com/scimkit/scimmodel/spec"

// ErrorSchema is the schema URI of Error (RFC 7644 §3.12).
const ErrorSchema = spec.ErrorSchema

// Error is the RFC 7644 §3.12 wire-level error response body. It is
// unrelated to spec.Error, which tags decode/generate failures inside this
// library rather than describing a SCIM HTTP response.
type Error struct {
	Schemas  []string `json:"schemas"`
	Status   string   `json:"status"`
	ScimType string   `json:"scimType,omitempty"`
	Detail   string   `json:"detail,omitempty"`
}

// NewError builds an Error with schemas seeded correctly.
func NewError(status, detail string) *Error {
	return &Error{Schemas: []string{ErrorSchema}, Status: status, Detail: detail}
}
