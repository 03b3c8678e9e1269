package main

import (
	"bytes"
	"testing"

	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeModelListsFieldsAndNesting(t *testing.T) {
	td, err := meta.DescriptorFor(model.User{})
	require.NoError(t, err)

	var buf bytes.Buffer
	describeModel(&buf, td)

	out := buf.String()
	assert.Contains(t, out, "userName")
	assert.Contains(t, out, "required")
	assert.Contains(t, out, "givenName")
	assert.Contains(t, out, "password")
	assert.Contains(t, out, "returned=never")
}
