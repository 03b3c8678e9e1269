package model

import "github.com/scimkit/scimmodel/spec"

// GroupSchema is the primary schema URI of Group (RFC 7643 §4.2).
const GroupSchema = spec.GroupSchema

// Group is the hand-written RFC 7643 §4.2 Group resource body.
type Group struct {
	DisplayName string   `scim:"name=displayName,required"`
	Members     []Member `scim:"name=members"`
}

func (Group) PrimarySchema() string { return GroupSchema }
