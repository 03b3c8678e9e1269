package model

// Name is the RFC 7643 §4.1.1 "name" complex attribute. Every sub-attribute
// is optional, so each field is a pointer: a nil pointer means the
// attribute was absent, as opposed to present with an empty string.
type Name struct {
	Formatted       *string `scim:"name=formatted,desc=The full name"`
	FamilyName      *string `scim:"name=familyName"`
	GivenName       *string `scim:"name=givenName"`
	MiddleName      *string `scim:"name=middleName"`
	HonorificPrefix *string `scim:"name=honorificPrefix"`
	HonorificSuffix *string `scim:"name=honorificSuffix"`
}
