package model

import "github.com/scimkit/scimmodel/spec"

// SearchRequestSchema is the schema URI of SearchRequest (RFC 7644 §3.4.3).
const SearchRequestSchema = spec.SearchRequestSchema

// SearchRequest is the RFC 7644 §3.4.3 POST-based query body. Filter is
// carried opaquely: parsing and evaluating it is out of scope here, the
// same way a client library takes an arbitrary SQL WHERE clause as a
// string.
type SearchRequest struct {
	Schemas            []string `json:"schemas"`
	Attributes         []string `json:"attributes,omitempty"`
	ExcludedAttributes []string `json:"excludedAttributes,omitempty"`
	Filter             string   `json:"filter,omitempty"`
	SortBy             string   `json:"sortBy,omitempty"`
	SortOrder          string   `json:"sortOrder,omitempty"`
	StartIndex         int      `json:"startIndex,omitempty"`
	Count              int      `json:"count,omitempty"`
}

// NewSearchRequest builds a SearchRequest with schemas seeded correctly.
func NewSearchRequest() *SearchRequest {
	return &SearchRequest{Schemas: []string{SearchRequestSchema}}
}
