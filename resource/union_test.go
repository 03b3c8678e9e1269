package resource

import (
	"encoding/json"
	"testing"

	"github.com/scimkit/scimmodel/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionDispatchesByFirstSchema(t *testing.T) {
	u := NewUnion().Register(testUserSchema, func(raw []byte) (interface{}, error) {
		r := &Resource[testUser]{}
		return r, json.Unmarshal(raw, r)
	})

	decoded, err := u.Decode([]byte(`{"schemas":["` + testUserSchema + `"],"userName":"bjensen","active":true}`))
	require.NoError(t, err)
	r, ok := decoded.(*Resource[testUser])
	require.True(t, ok)
	assert.Equal(t, "bjensen", r.Body.UserName)
}

func TestUnionUnregisteredSchemaIsSchemaMismatch(t *testing.T) {
	u := NewUnion().Register(testUserSchema, func(raw []byte) (interface{}, error) {
		r := &Resource[testUser]{}
		return r, json.Unmarshal(raw, r)
	})

	_, err := u.Decode([]byte(`{"schemas":["urn:example:schemas:Unregistered"],"foo":"bar"}`))
	assert.ErrorIs(t, err, spec.ErrSchemaMismatch)
	assert.NotErrorIs(t, err, spec.ErrExtensionLookupFailure)
}

func TestUnionMissingSchemasIsSchemaMismatch(t *testing.T) {
	u := NewUnion()

	_, err := u.Decode([]byte(`{"userName":"bjensen"}`))
	assert.ErrorIs(t, err, spec.ErrSchemaMismatch)
}
