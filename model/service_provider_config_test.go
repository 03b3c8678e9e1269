package model

import (
	"encoding/json"
	"testing"

	"github.com/scimkit/scimmodel/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceProviderConfigDecodeEncode(t *testing.T) {
	raw := []byte(`{
		"schemas": ["` + ServiceProviderConfigSchema + `"],
		"documentationUri": "https://example.com/help/scim.html",
		"patch": {"supported": true},
		"bulk": {"supported": true, "maxOperations": 1000, "maxPayloadSize": 1048576},
		"filter": {"supported": true, "maxResults": 200},
		"changePassword": {"supported": true},
		"sort": {"supported": true},
		"etag": {"supported": false},
		"authenticationSchemes": [
			{"name": "OAuth Bearer Token", "description": "Authentication scheme using the OAuth Bearer Token Standard", "specUri": "http://www.rfc-editor.org/info/rfc6750", "type": "oauthbearertoken", "primary": true}
		]
	}`)

	r := resource.New(ServiceProviderConfig{})
	require.NoError(t, json.Unmarshal(raw, r))

	assert.True(t, r.Body.Patch.Supported)
	assert.EqualValues(t, 1000, r.Body.Bulk.MaxOperations)
	assert.True(t, r.Body.Filter.Supported)
	require.Len(t, r.Body.AuthenticationSchemes, 1)
	assert.Equal(t, "oauthbearertoken", r.Body.AuthenticationSchemes[0].Type)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `"maxOperations":1000`)
	assert.Contains(t, s, `"oauthbearertoken"`)
}
