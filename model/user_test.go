package model

import (
	"encoding/json"
	"testing"

	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/resource"
	"github.com/scimkit/scimmodel/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDecodeEncodeRoundTrip(t *testing.T) {
	raw := []byte(`{
		"schemas": ["` + UserSchema + `", "` + EnterpriseUserSchema + `"],
		"id": "2819c223-7f76-453a-919d-413861904646",
		"userName": "bjensen",
		"name": {"givenName": "Barbara", "familyName": "Jensen"},
		"emails": [{"value": "bjensen@example.com", "type": "work", "primary": true}],
		"active": true,
		"` + EnterpriseUserSchema + `": {
			"employeeNumber": "701984",
			"manager": {"value": "26118915-6090-4610-87e4-49d8ca9f808d", "displayName": "J. Smith"}
		}
	}`)

	r := resource.New(User{})
	r.RegisterExtension(&EnterpriseUser{})
	require.NoError(t, json.Unmarshal(raw, r))

	assert.Equal(t, "bjensen", r.Body.UserName)
	require.NotNil(t, r.Body.Name)
	require.NotNil(t, r.Body.Name.GivenName)
	assert.Equal(t, "Barbara", *r.Body.Name.GivenName)
	require.Len(t, r.Body.Emails, 1)
	require.NotNil(t, r.Body.Emails[0].Value)
	assert.Equal(t, "bjensen@example.com", *r.Body.Emails[0].Value)
	require.NotNil(t, r.Body.Emails[0].Primary)
	assert.True(t, *r.Body.Emails[0].Primary)

	ext, ok := resource.GetExtension[*EnterpriseUser](r)
	require.True(t, ok)
	require.NotNil(t, ext.EmployeeNumber)
	assert.Equal(t, "701984", *ext.EmployeeNumber)
	require.NotNil(t, ext.Manager)
	require.NotNil(t, ext.Manager.DisplayName)
	assert.Equal(t, "J. Smith", *ext.Manager.DisplayName)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `"userName":"bjensen"`)
	assert.Contains(t, s, `"employeeNumber":"701984"`)
	assert.Contains(t, s, EnterpriseUserSchema)
	assert.NotContains(t, s, `"nickName"`)
	assert.NotContains(t, s, `"title"`)
	assert.NotContains(t, s, `"userType"`)
	assert.NotContains(t, s, `"preferredLanguage"`)
}

func TestUserPasswordNeverReturned(t *testing.T) {
	td, err := meta.DescriptorFor(User{})
	require.NoError(t, err)
	f, ok := td.FieldByInternalName("Password")
	require.True(t, ok)
	assert.Equal(t, spec.ReturnedNever, f.Attribute.Returned())
}
