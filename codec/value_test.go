package codec

import (
	"testing"
	"time"

	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeRoundTrip(t *testing.T) {
	attr := spec.NewAttributeBuilder("lastModified", spec.TypeDateTime).Build()

	v, err := decodeScalar("meta.lastModified", attr, "2019-11-20T13:09:00Z")
	require.NoError(t, err)

	tm, ok := v.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2019, tm.Year())

	encoded, err := encodeScalar(attr, tm)
	require.NoError(t, err)
	assert.Equal(t, "2019-11-20T13:09:00Z", encoded)
}

func TestBinaryRoundTrip(t *testing.T) {
	attr := spec.NewAttributeBuilder("certificate", spec.TypeBinary).Build()

	v, err := decodeScalar("x509Certificates.value", attr, "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), v)

	encoded, err := encodeScalar(attr, v)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", encoded)
}

func TestReferenceRejectsEmptyReferenceTypes(t *testing.T) {
	attr := spec.NewAttributeBuilder("manager", spec.TypeReference).Build()

	_, err := decodeScalar("manager", attr, "https://example.com/Users/1")
	assert.ErrorIs(t, err, spec.ErrInvalidSchemaDocument)
}

func TestReferenceAcceptsResourceType(t *testing.T) {
	attr := spec.NewAttributeBuilder("manager", spec.TypeReference).
		ReferenceTypes("User", "Group").
		Build()

	v, err := decodeScalar("manager", attr, "https://example.com/Users/1")
	require.NoError(t, err)
	assert.Equal(t, meta.Reference("https://example.com/Users/1"), v)
}

func TestExternalReferenceRequiresAbsoluteURL(t *testing.T) {
	attr := spec.NewAttributeBuilder("profileUrl", spec.TypeReference).
		ReferenceTypes("external").
		Build()

	_, err := decodeScalar("profileUrl", attr, "not a url")
	assert.ErrorIs(t, err, spec.ErrSchemaMismatch)

	_, err = decodeScalar("profileUrl", attr, "/relative/path")
	assert.ErrorIs(t, err, spec.ErrSchemaMismatch)

	v, err := decodeScalar("profileUrl", attr, "https://example.com/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, meta.Reference("https://example.com/photo.jpg"), v)
}

func TestURIReferenceAcceptsURN(t *testing.T) {
	attr := spec.NewAttributeBuilder("schemaRef", spec.TypeReference).
		ReferenceTypes("uri").
		Build()

	v, err := decodeScalar("schemaRef", attr, "urn:ietf:params:scim:schemas:core:2.0:User")
	require.NoError(t, err)
	assert.Equal(t, meta.Reference("urn:ietf:params:scim:schemas:core:2.0:User"), v)

	_, err = decodeScalar("schemaRef", attr, "")
	assert.ErrorIs(t, err, spec.ErrSchemaMismatch)
}
