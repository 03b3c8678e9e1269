package dynamic

import (
	"encoding/json"
	"sync"

	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// modelCache memoizes BuildModel by the canonical JSON form of its input
// schema, the same sync.Map-based caching idiom meta.DescriptorFor uses,
// satisfying spec §4.5's "MAY cache ... keyed by
// the canonical form" and §5's "concurrent calls with equal input must
// produce equivalent results".
var modelCache sync.Map // string (canonical schema JSON) -> *meta.TypeDescriptor

func buildFromCache(schema *spec.Schema) (*meta.TypeDescriptor, error) {
	key, err := canonicalForm(schema)
	if err != nil {
		return nil, err
	}

	if cached, ok := modelCache.Load(key); ok {
		debugEvent().Str("schema", schema.ID()).Msg("dynamic: model cache hit")
		return cached.(*meta.TypeDescriptor), nil
	}

	td, err := buildDescriptor(schema.Name(), schema.ID(), schema.Attributes())
	if err != nil {
		return nil, err
	}

	actual, loaded := modelCache.LoadOrStore(key, td)
	debugEvent().Str("schema", schema.ID()).Bool("racedBuild", loaded).Msg("dynamic: model cache miss")
	return actual.(*meta.TypeDescriptor), nil
}

// canonicalForm renders a schema's attributes as JSON after marshaling
// through spec.Attribute's own MarshalJSON, which already emits fields in a
// fixed struct order — equal schemas (by value) always produce an identical
// byte string regardless of how the caller assembled the *spec.Schema.
func canonicalForm(schema *spec.Schema) (string, error) {
	raw, err := json.Marshal(struct {
		ID         string            `json:"id"`
		Attributes []*spec.Attribute `json:"attributes"`
	}{ID: schema.ID(), Attributes: schema.Attributes()})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
