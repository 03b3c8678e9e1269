package model

import (
	"fmt"

	"github.com/scimkit/scimmodel/dynamic"
	"github.com/scimkit/scimmodel/meta"
)

// init registers the hand-written container shape for the User, Group,
// EnterpriseUser and ServiceProviderConfig schemas (spec §4.5 step 1), so
// BuildModel returns these descriptors unchanged instead of generating a
// structurally equivalent one from a fetched Schema document. The Schema and
// ResourceType schemas have no hand-written model here and are not
// registered; BuildModel generates a descriptor for them like any other.
func init() {
	registerWellKnown(UserSchema, User{})
	registerWellKnown(GroupSchema, Group{})
	registerWellKnown(EnterpriseUserSchema, EnterpriseUser{})
	registerWellKnown(ServiceProviderConfigSchema, ServiceProviderConfig{})
}

func registerWellKnown(schemaURI string, sample interface{}) {
	td, err := meta.DescriptorFor(sample)
	if err != nil {
		panic(fmt.Sprintf("model: building descriptor for %s: %v", schemaURI, err))
	}
	td.SchemaID = schemaURI
	dynamic.RegisterWellKnown(schemaURI, td)
}
