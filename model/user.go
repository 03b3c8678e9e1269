package model

import (
	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// UserSchema is the primary schema URI of User (RFC 7643 §4.1).
const UserSchema = spec.UserSchema

// User is the hand-written RFC 7643 §4.1 User resource body. Core envelope
// fields (schemas, id, externalId, meta) live on the enclosing
// resource.Resource[User], not here. Only userName is required; every other
// scalar is a pointer so an absent attribute round-trips as absent rather
// than as its Go zero value.
type User struct {
	UserName          string            `scim:"name=userName,required,caseExact,uniqueness=server"`
	Name              *Name             `scim:"name=name"`
	DisplayName       *string           `scim:"name=displayName"`
	NickName          *string           `scim:"name=nickName"`
	ProfileUrl        *meta.Reference   `scim:"name=profileUrl,refTypes=external"`
	Title             *string           `scim:"name=title"`
	UserType          *string           `scim:"name=userType"`
	PreferredLanguage *string           `scim:"name=preferredLanguage"`
	Locale            *string           `scim:"name=locale"`
	Timezone          *string           `scim:"name=timezone"`
	Active            *bool             `scim:"name=active"`
	Password          *string           `scim:"name=password,mutability=writeOnly,returned=never"`
	Emails            []Email           `scim:"name=emails"`
	PhoneNumbers      []PhoneNumber     `scim:"name=phoneNumbers"`
	Ims               []Im              `scim:"name=ims"`
	Photos            []Photo           `scim:"name=photos"`
	Addresses         []Address         `scim:"name=addresses"`
	Groups            []Member          `scim:"name=groups,mutability=readOnly"`
	Entitlements      []Entitlement     `scim:"name=entitlements"`
	Roles             []Role            `scim:"name=roles"`
	X509Certificates  []X509Certificate `scim:"name=x509Certificates"`
}

func (User) PrimarySchema() string { return UserSchema }
