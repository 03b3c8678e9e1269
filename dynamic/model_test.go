package dynamic

import (
	"testing"

	"github.com/scimkit/scimmodel/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSchema() *spec.Schema {
	emailValue := spec.NewAttributeBuilder("value", spec.TypeString).Build()
	emails := spec.NewAttributeBuilder("emails", spec.TypeComplex).
		MultiValued(true).
		SubAttributes(emailValue).
		Build()

	cert := spec.NewAttributeBuilder("x509Certificates", spec.TypeBinary).
		MultiValued(true).
		Build()

	ref := spec.NewAttributeBuilder("$ref", spec.TypeReference).
		ReferenceTypes("User", "Group").
		Build()

	return spec.NewSchema("urn:example:schemas:Widget", "Widget", "a test schema",
		spec.NewAttributeBuilder("displayName", spec.TypeString).Required(true).Build(),
		emails,
		cert,
		ref,
	)
}

func TestBuildModelInternalNames(t *testing.T) {
	td, err := BuildModel(sampleSchema())
	require.NoError(t, err)

	f, ok := td.FieldByWireName("displayName")
	require.True(t, ok)
	assert.Equal(t, "display_name", f.InternalName)

	f, ok = td.FieldByWireName("x509Certificates")
	require.True(t, ok)
	assert.Equal(t, "x_509_certificates", f.InternalName)

	f, ok = td.FieldByWireName("$ref")
	require.True(t, ok)
	assert.Equal(t, "ref", f.InternalName)
}

func TestBuildModelSynthesizesMultiValuedComplexSubAttributes(t *testing.T) {
	td, err := BuildModel(sampleSchema())
	require.NoError(t, err)

	f, ok := td.FieldByWireName("emails")
	require.True(t, ok)
	require.NotNil(t, f.Elem)

	_, ok = f.Elem.FieldByWireName("value")
	assert.True(t, ok)
	_, ok = f.Elem.FieldByWireName("type")
	assert.True(t, ok)
	_, ok = f.Elem.FieldByWireName("primary")
	assert.True(t, ok)
	_, ok = f.Elem.FieldByWireName("display")
	assert.True(t, ok)
}

func TestBuildModelIsCached(t *testing.T) {
	s := sampleSchema()
	a, err := BuildModel(s)
	require.NoError(t, err)
	b, err := BuildModel(sampleSchema())
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestResourceDecodeEncode(t *testing.T) {
	r, err := New(sampleSchema())
	require.NoError(t, err)

	raw := []byte(`{
		"schemas": ["urn:example:schemas:Widget"],
		"displayName": "Widget One",
		"emails": [{"value": "a@example.com", "type": "work", "primary": true}],
		"x509Certificates": ["aGVsbG8="]
	}`)
	require.NoError(t, r.UnmarshalJSON(raw))

	name, ok := r.Get("displayName")
	require.True(t, ok)
	assert.Equal(t, "Widget One", name)

	out, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"displayName":"Widget One"`)
	assert.Contains(t, string(out), `"x509Certificates":["aGVsbG8="]`)
}
