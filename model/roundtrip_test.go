package model

import (
	"encoding/json"
	"testing"

	"github.com/scimkit/scimmodel/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserRoundTripOmitsAbsentOptionalFields guards against a decoded
// resource re-encoding with keys for attributes that were never in the
// original document, which would make every optional string/bool field
// reappear at its Go zero value.
func TestUserRoundTripOmitsAbsentOptionalFields(t *testing.T) {
	raw := []byte(`{
		"schemas": ["` + UserSchema + `"],
		"userName": "bjensen"
	}`)

	r := resource.New(User{})
	require.NoError(t, json.Unmarshal(raw, r))

	assert.Nil(t, r.Body.DisplayName)
	assert.Nil(t, r.Body.NickName)
	assert.Nil(t, r.Body.ProfileUrl)
	assert.Nil(t, r.Body.Title)
	assert.Nil(t, r.Body.UserType)
	assert.Nil(t, r.Body.PreferredLanguage)
	assert.Nil(t, r.Body.Active)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	s := string(out)
	assert.NotContains(t, s, `"displayName"`)
	assert.NotContains(t, s, `"nickName"`)
	assert.NotContains(t, s, `"title"`)
	assert.NotContains(t, s, `"userType"`)
	assert.NotContains(t, s, `"preferredLanguage"`)
	assert.NotContains(t, s, `"active"`)
	assert.Contains(t, s, `"userName":"bjensen"`)
}

// TestX509CertificateOmitsAbsentValue exercises the single-valued binary
// field's own presence tracking: a nil []byte, unlike a plain string or
// bool, already has no wire representation distinct from absent, so it
// needs no pointer to behave correctly.
func TestX509CertificateOmitsAbsentValue(t *testing.T) {
	raw := []byte(`{
		"schemas": ["` + UserSchema + `"],
		"userName": "bjensen",
		"x509Certificates": [{"type": "work"}]
	}`)

	r := resource.New(User{})
	require.NoError(t, json.Unmarshal(raw, r))
	require.Len(t, r.Body.X509Certificates, 1)
	assert.Nil(t, r.Body.X509Certificates[0].Value)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `"type":"work"`)
	assert.NotContains(t, s, `"value"`)
}
