package model

import (
	"testing"

	"github.com/scimkit/scimmodel/dynamic"
	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildModelReturnsHandWrittenUserDescriptor(t *testing.T) {
	want, err := meta.DescriptorFor(User{})
	require.NoError(t, err)

	schema := spec.NewSchema(UserSchema, "User", "SCIM core resource for representing users")
	got, err := dynamic.BuildModel(schema)
	require.NoError(t, err)

	assert.Same(t, want, got)
}
