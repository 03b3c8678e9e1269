package model

import (
	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// EnterpriseUserSchema is the extension schema URI of EnterpriseUser
// (RFC 7643 §4.3).
const EnterpriseUserSchema = spec.EnterpriseUserExtensionSchema

// Manager is EnterpriseUser.Manager (RFC 7643 §4.3).
type Manager struct {
	Value       *string         `scim:"name=value"`
	Ref         *meta.Reference `scim:"name=$ref,refTypes=User"`
	DisplayName *string         `scim:"name=displayName"`
}

// EnterpriseUser is the RFC 7643 §4.3 enterprise extension of User, carried
// as an extension bucket on resource.Resource[User] keyed by
// EnterpriseUserSchema. None of its attributes are required.
type EnterpriseUser struct {
	EmployeeNumber *string  `scim:"name=employeeNumber"`
	CostCenter     *string  `scim:"name=costCenter"`
	Organization   *string  `scim:"name=organization"`
	Division       *string  `scim:"name=division"`
	Department     *string  `scim:"name=department"`
	Manager        *Manager `scim:"name=manager"`
}

func (*EnterpriseUser) PrimarySchema() string { return EnterpriseUserSchema }
