package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModesDistinguishExplicitNullFromUnset(t *testing.T) {
	td := descriptorFor(t)

	raw := []byte(`{
		"userName": "bjensen",
		"active": null
	}`)

	bag, err := Decode(raw, td)
	require.NoError(t, err)
	assert.Equal(t, Null, bag["Active"])
	_, nameAssigned := bag["Name"]
	assert.False(t, nameAssigned)

	def, err := Encode(bag, td, ModeDefault)
	require.NoError(t, err)
	assert.Contains(t, string(def), `"active":null`)
	assert.NotContains(t, string(def), `"name"`)

	excludeUnset, err := Encode(bag, td, ModeExcludeUnset)
	require.NoError(t, err)
	assert.NotContains(t, string(excludeUnset), `"active"`)
	assert.NotContains(t, string(excludeUnset), `"name"`)

	includeNull, err := Encode(bag, td, ModeIncludeNull)
	require.NoError(t, err)
	assert.Contains(t, string(includeNull), `"active":null`)
	assert.Contains(t, string(includeNull), `"name":null`)
}
