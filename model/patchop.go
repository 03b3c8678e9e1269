package model

import (
	"encoding/json"

	"github.com/scimkit/scimmodel/spec"
)

// PatchOpSchema is the schema URI of PatchOp (RFC 7644 §3.5.2).
const PatchOpSchema = spec.PatchOpSchema

// PatchOperation is one element of PatchOp.Operations. Value is left as
// raw JSON: its shape depends on Path and the target attribute's type,
// neither of which PatchOp itself resolves.
type PatchOperation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// PatchOp is the RFC 7644 §3.5.2 PATCH request body.
type PatchOp struct {
	Schemas    []string         `json:"schemas"`
	Operations []PatchOperation `json:"Operations"`
}

// NewPatchOp builds a PatchOp with schemas seeded correctly.
func NewPatchOp(ops ...PatchOperation) *PatchOp {
	return &PatchOp{Schemas: []string{PatchOpSchema}, Operations: ops}
}
