package model

import "github.com/scimkit/scimmodel/meta"

// Email is one element of User.Emails, following the RFC 7643 §2.4
// convention of carrying type/primary/display alongside its value. meta's
// struct-tag reflector reads the scim tag off the field itself, so this
// shape (rather than an embedded shared struct) is repeated per plural
// attribute instead of promoted. None of the sub-attributes are required,
// so each is a pointer: a nil pointer is "absent", distinct from a
// zero-valued "" or false that was actually sent on the wire.
type Email struct {
	Type    *string `scim:"name=type"`
	Primary *bool   `scim:"name=primary"`
	Display *string `scim:"name=display"`
	Value   *string `scim:"name=value"`
}

// PhoneNumber is one element of User.PhoneNumbers.
type PhoneNumber struct {
	Type    *string `scim:"name=type"`
	Primary *bool   `scim:"name=primary"`
	Display *string `scim:"name=display"`
	Value   *string `scim:"name=value"`
}

// Im is one element of User.Ims (instant messaging addresses).
type Im struct {
	Type    *string `scim:"name=type"`
	Primary *bool   `scim:"name=primary"`
	Display *string `scim:"name=display"`
	Value   *string `scim:"name=value"`
}

// Photo is one element of User.Photos. Its value is a reference to an
// external image rather than a bare string, per RFC 7643 §4.1.2.
type Photo struct {
	Type    *string         `scim:"name=type"`
	Primary *bool           `scim:"name=primary"`
	Display *string         `scim:"name=display"`
	Value   *meta.Reference `scim:"name=value,refTypes=external"`
}

// Entitlement is one element of User.Entitlements.
type Entitlement struct {
	Type    *string `scim:"name=type"`
	Primary *bool   `scim:"name=primary"`
	Display *string `scim:"name=display"`
	Value   *string `scim:"name=value"`
}

// Role is one element of User.Roles.
type Role struct {
	Type    *string `scim:"name=type"`
	Primary *bool   `scim:"name=primary"`
	Display *string `scim:"name=display"`
	Value   *string `scim:"name=value"`
}

// X509Certificate is one element of User.X509Certificates. Its value is raw
// certificate bytes, base64 on the wire (RFC 7643 §4.1.2). Value is left as
// a plain []byte: a nil slice already has no wire representation distinct
// from "absent", so it needs no pointer to carry that signal.
type X509Certificate struct {
	Type    *string `scim:"name=type"`
	Primary *bool   `scim:"name=primary"`
	Display *string `scim:"name=display"`
	Value   []byte  `scim:"name=value"`
}

// Address is one element of User.Addresses (RFC 7643 §4.1.1).
type Address struct {
	Type          *string `scim:"name=type"`
	Primary       *bool   `scim:"name=primary"`
	Formatted     *string `scim:"name=formatted"`
	StreetAddress *string `scim:"name=streetAddress"`
	Locality      *string `scim:"name=locality"`
	Region        *string `scim:"name=region"`
	PostalCode    *string `scim:"name=postalCode"`
	Country       *string `scim:"name=country"`
}

// Member is one element of Group.Members (RFC 7643 §4.2).
type Member struct {
	Value   *string         `scim:"name=value"`
	Ref     *meta.Reference `scim:"name=$ref,refTypes=User;Group"`
	Display *string         `scim:"name=display"`
	Type    *string         `scim:"name=type"`
}
