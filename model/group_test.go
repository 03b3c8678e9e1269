package model

import (
	"encoding/json"
	"testing"

	"github.com/scimkit/scimmodel/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupDecodeEncodeRoundTrip(t *testing.T) {
	raw := []byte(`{
		"schemas": ["` + GroupSchema + `"],
		"id": "e9e30dba-f08f-4109-8486-d5c6a331660a",
		"displayName": "Tour Guides",
		"members": [
			{"value": "2819c223-7f76-453a-919d-413861904646", "$ref": "https://example.com/v2/Users/2819c223", "display": "Babs Jensen"}
		]
	}`)

	r := resource.New(Group{})
	require.NoError(t, json.Unmarshal(raw, r))
	assert.Equal(t, "Tour Guides", r.Body.DisplayName)
	require.Len(t, r.Body.Members, 1)
	require.NotNil(t, r.Body.Members[0].Display)
	assert.Equal(t, "Babs Jensen", *r.Body.Members[0].Display)
	assert.Nil(t, r.Body.Members[0].Type)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `"displayName":"Tour Guides"`)
	assert.NotContains(t, s, `"type"`)
	assert.NotContains(t, s, `"primary"`)
}

func TestCoreUnionDispatchesByPrimarySchema(t *testing.T) {
	u := CoreUnion()

	decoded, err := u.Decode([]byte(`{"schemas":["` + UserSchema + `"],"userName":"bjensen"}`))
	require.NoError(t, err)
	user, ok := decoded.(*resource.Resource[User])
	require.True(t, ok)
	assert.Equal(t, "bjensen", user.Body.UserName)

	decoded, err = u.Decode([]byte(`{"schemas":["` + GroupSchema + `"],"displayName":"Tour Guides"}`))
	require.NoError(t, err)
	group, ok := decoded.(*resource.Resource[Group])
	require.True(t, ok)
	assert.Equal(t, "Tour Guides", group.Body.DisplayName)
}

func TestDecodeListResponseOfMixedMembers(t *testing.T) {
	raw := []byte(`{
		"schemas": ["urn:ietf:params:scim:api:messages:2.0:ListResponse"],
		"totalResults": 2,
		"Resources": [
			{"schemas":["` + UserSchema + `"],"userName":"bjensen"},
			{"schemas":["` + GroupSchema + `"],"displayName":"Tour Guides"}
		]
	}`)

	lr, err := resource.DecodeListResponse(raw, CoreUnion())
	require.NoError(t, err)
	assert.Equal(t, 2, lr.TotalResults)
	require.Len(t, lr.Resources, 2)
	_, ok := lr.Resources[0].(*resource.Resource[User])
	assert.True(t, ok)
	_, ok = lr.Resources[1].(*resource.Resource[Group])
	assert.True(t, ok)
}
