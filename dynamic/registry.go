package dynamic

import "github.com/scimkit/scimmodel/meta"

// wellKnown holds the hand-written TypeDescriptor for each well-known
// schema URI spec §4.5 step 1 names (core:2.0:User, core:2.0:Group, ...).
// The model package registers these in its init() so BuildModel starts from
// the hand-written container shape for standard resources instead of
// generating a structurally-equivalent but distinct one.
var wellKnown = map[string]*meta.TypeDescriptor{}

// RegisterWellKnown associates schemaURI with a hand-written TypeDescriptor,
// so that building a model for that schema returns it unchanged.
func RegisterWellKnown(schemaURI string, td *meta.TypeDescriptor) {
	wellKnown[schemaURI] = td
}
