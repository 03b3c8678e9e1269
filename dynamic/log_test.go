package dynamic

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/scimkit/scimmodel/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distinctTestSchema() *spec.Schema {
	return spec.NewSchema("urn:example:schemas:LogWidget", "LogWidget", "a test schema",
		spec.NewAttributeBuilder("displayName", spec.TypeString).Build(),
	)
}

func TestDebugLogObservesCacheMissAndHit(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	DebugLog = &logger
	defer func() { DebugLog = nil }()

	_, err := BuildModel(distinctTestSchema())
	require.NoError(t, err)
	_, err = BuildModel(distinctTestSchema())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "model cache miss")
	assert.Contains(t, out, "model cache hit")
}

func TestDebugLogNilByDefaultDoesNotPanic(t *testing.T) {
	DebugLog = nil
	_, err := BuildModel(sampleSchema())
	require.NoError(t, err)
}
