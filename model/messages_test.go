package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequestCarriesFilterOpaquely(t *testing.T) {
	sr := NewSearchRequest()
	sr.Filter = `userName eq "bjensen"`
	sr.Attributes = []string{"userName", "emails"}

	out, err := json.Marshal(sr)
	require.NoError(t, err)
	assert.Contains(t, string(out), `userName eq \"bjensen\"`)

	var decoded SearchRequest
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, sr.Filter, decoded.Filter)
}

func TestPatchOpRoundTrip(t *testing.T) {
	op := NewPatchOp(PatchOperation{
		Op:    "replace",
		Path:  "displayName",
		Value: json.RawMessage(`"Babs Jensen"`),
	})

	out, err := json.Marshal(op)
	require.NoError(t, err)

	var decoded PatchOp
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Operations, 1)
	assert.Equal(t, "replace", decoded.Operations[0].Op)
	assert.Equal(t, `"Babs Jensen"`, string(decoded.Operations[0].Value))
}

func TestErrorRoundTrip(t *testing.T) {
	e := NewError("404", "Resource not found")
	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(out), ErrorSchema)

	var decoded Error
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "404", decoded.Status)
	assert.Equal(t, "Resource not found", decoded.Detail)
}

func TestBulkRequestResponseRoundTrip(t *testing.T) {
	req := NewBulkRequest(BulkOperation{
		Method: "POST",
		BulkID: "qwerty",
		Path:   "/Users",
		Data:   json.RawMessage(`{"userName":"bjensen"}`),
	})
	out, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded BulkRequest
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Operations, 1)
	assert.Equal(t, "POST", decoded.Operations[0].Method)

	resp := &BulkResponse{
		Schemas: []string{BulkResponseSchema},
		Operations: []BulkOperationResult{
			{Method: "POST", BulkID: "qwerty", Status: "201", Location: "https://example.com/v2/Users/92b725cd"},
		},
	}
	out, err = json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"status":"201"`)
}
