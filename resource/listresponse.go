package resource

import (
	"encoding/json"
	"fmt"

	"github.com/scimkit/scimmodel/spec"
)

// ListResponse is the RFC 7644 §3.4.2 search-result envelope. Resources
// holds whatever Union.Decode produced for each element — typically a
// *Resource[T] for a hand-written type, or a *dynamic.Resource.
type ListResponse struct {
	Schemas      []string
	TotalResults int
	ItemsPerPage int
	StartIndex   int
	Resources    []interface{}
}

// DecodeListResponse parses a ListResponse document, dispatching each
// element of "Resources" through members.
func DecodeListResponse(raw []byte, members *Union) (*ListResponse, error) {
	var shell struct {
		Schemas      []string          `json:"schemas"`
		TotalResults int               `json:"totalResults"`
		ItemsPerPage int               `json:"itemsPerPage"`
		StartIndex   int               `json:"startIndex"`
		Resources    []json.RawMessage `json:"Resources"`
	}
	if err := json.Unmarshal(raw, &shell); err != nil {
		return nil, fmt.Errorf("%w: %v", spec.ErrSchemaMismatch, err)
	}
	if len(shell.Schemas) == 0 || shell.Schemas[0] != spec.ListResponseSchema {
		return nil, spec.WrapPath("schemas", spec.ErrSchemaMismatch, "not a ListResponse document")
	}

	lr := &ListResponse{
		Schemas:      shell.Schemas,
		TotalResults: shell.TotalResults,
		ItemsPerPage: shell.ItemsPerPage,
		StartIndex:   shell.StartIndex,
	}
	for i, raw := range shell.Resources {
		decoded, err := members.Decode(raw)
		if err != nil {
			return nil, spec.WrapPath(fmt.Sprintf("Resources[%d]", i), err, "")
		}
		lr.Resources = append(lr.Resources, decoded)
	}
	return lr, nil
}
