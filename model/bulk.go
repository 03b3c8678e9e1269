package model

import (
	"encoding/json"

	"github.com/scimkit/scimmodel/spec"
)

// BulkRequestSchema and BulkResponseSchema are the schema URIs of
// BulkRequest and BulkResponse (RFC 7644 §3.7).
const (
	BulkRequestSchema  = spec.BulkRequestSchema
	BulkResponseSchema = spec.BulkResponseSchema
)

// BulkOperation is one element of BulkRequest.Operations. Data carries the
// operation's resource payload as raw JSON, decoded by the caller once it
// knows which resource type the path addresses.
type BulkOperation struct {
	Method  string          `json:"method"`
	BulkID  string          `json:"bulkId,omitempty"`
	Path    string          `json:"path"`
	Data    json.RawMessage `json:"data,omitempty"`
	Version string          `json:"version,omitempty"`
}

// BulkRequest is the RFC 7644 §3.7.2 bulk request body.
type BulkRequest struct {
	Schemas      []string        `json:"schemas"`
	FailOnErrors int             `json:"failOnErrors,omitempty"`
	Operations   []BulkOperation `json:"Operations"`
}

// NewBulkRequest builds a BulkRequest with schemas seeded correctly.
func NewBulkRequest(ops ...BulkOperation) *BulkRequest {
	return &BulkRequest{Schemas: []string{BulkRequestSchema}, Operations: ops}
}

// BulkOperationResult is one element of BulkResponse.Operations.
type BulkOperationResult struct {
	Location string          `json:"location,omitempty"`
	Method   string          `json:"method"`
	BulkID   string          `json:"bulkId,omitempty"`
	Version  string          `json:"version,omitempty"`
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response,omitempty"`
}

// BulkResponse is the RFC 7644 §3.7.3 bulk response body.
type BulkResponse struct {
	Schemas    []string              `json:"schemas"`
	Operations []BulkOperationResult `json:"Operations"`
}
