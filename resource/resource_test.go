package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserSchema = "urn:ietf:params:scim:schemas:core:2.0:User"
const testEnterpriseSchema = "urn:ietf:params:scim:schemas:extension:enterprise:2.0:User"

type testUser struct {
	UserName string `scim:"name=userName,required"`
	Active   bool   `scim:"name=active"`
}

func (testUser) PrimarySchema() string { return testUserSchema }

type testEnterpriseUser struct {
	EmployeeNumber string `scim:"name=employeeNumber"`
}

func (*testEnterpriseUser) PrimarySchema() string { return testEnterpriseSchema }

func TestResourceDecodeRoundTrip(t *testing.T) {
	raw := []byte(`{
		"schemas": ["` + testUserSchema + `", "` + testEnterpriseSchema + `"],
		"id": "2819c223-7f76-453a-919d-413861904646",
		"userName": "bjensen",
		"active": true,
		"` + testEnterpriseSchema + `": {"employeeNumber": "701984"}
	}`)

	r := &Resource[testUser]{}
	r.RegisterExtension(&testEnterpriseUser{})

	require.NoError(t, json.Unmarshal(raw, r))
	assert.Equal(t, "bjensen", r.Body.UserName)
	assert.True(t, r.Body.Active)
	require.NotNil(t, r.ID)
	assert.Equal(t, "2819c223-7f76-453a-919d-413861904646", *r.ID)

	ext, ok := GetExtension[*testEnterpriseUser](r)
	require.True(t, ok)
	assert.Equal(t, "701984", ext.EmployeeNumber)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"userName":"bjensen"`)
	assert.Contains(t, string(out), `"employeeNumber":"701984"`)
	assert.Contains(t, string(out), testEnterpriseSchema)
}

func TestResourceMissingSchemasRejected(t *testing.T) {
	r := &Resource[testUser]{}
	err := json.Unmarshal([]byte(`{"userName":"bjensen","active":true}`), r)
	assert.Error(t, err)
}

func TestNewSeedsSchemaAndID(t *testing.T) {
	r := New(testUser{UserName: "bjensen"})
	require.Len(t, r.Schemas, 1)
	assert.Equal(t, testUserSchema, r.Schemas[0])
	assert.NotNil(t, r.ID)
	assert.NotEmpty(t, *r.ID)
}
