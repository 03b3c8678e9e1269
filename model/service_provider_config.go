package model

import (
	"github.com/scimkit/scimmodel/meta"
	"github.com/scimkit/scimmodel/spec"
)

// ServiceProviderConfigSchema is the schema URI of ServiceProviderConfig
// (RFC 7643 §5).
const ServiceProviderConfigSchema = spec.ServiceProviderConfigSchema

type supportedFlag struct {
	Supported bool `scim:"name=supported,required"`
}

// BulkConfig describes bulk operation support (RFC 7643 §5). Every
// sub-attribute is required whenever "bulk" itself is present.
type BulkConfig struct {
	Supported      bool  `scim:"name=supported,required"`
	MaxOperations  int64 `scim:"name=maxOperations,required"`
	MaxPayloadSize int64 `scim:"name=maxPayloadSize,required"`
}

// FilterConfig describes filter support (RFC 7643 §5).
type FilterConfig struct {
	Supported  bool  `scim:"name=supported,required"`
	MaxResults int64 `scim:"name=maxResults,required"`
}

// AuthenticationScheme describes one supported authentication mechanism
// (RFC 7643 §5). specUri, documentationUri and primary are the optional
// sub-attributes; the two URIs are classified as external references, so a
// malformed URL fails decode rather than passing through silently.
type AuthenticationScheme struct {
	Name             string          `scim:"name=name,required"`
	Description      string          `scim:"name=description,required"`
	SpecURI          *meta.Reference `scim:"name=specUri,refTypes=external"`
	DocumentationURI *meta.Reference `scim:"name=documentationUri,refTypes=external"`
	Type             string          `scim:"name=type,required"`
	Primary          *bool           `scim:"name=primary"`
}

// ServiceProviderConfig is the RFC 7643 §5 ServiceProviderConfig resource
// body, describing a service provider's SCIM feature support.
type ServiceProviderConfig struct {
	DocumentationURI      *meta.Reference        `scim:"name=documentationUri,refTypes=external"`
	Patch                 supportedFlag          `scim:"name=patch,required"`
	Bulk                  BulkConfig             `scim:"name=bulk,required"`
	Filter                FilterConfig           `scim:"name=filter,required"`
	ChangePassword        supportedFlag          `scim:"name=changePassword,required"`
	Sort                  supportedFlag          `scim:"name=sort,required"`
	ETag                  supportedFlag          `scim:"name=etag,required"`
	AuthenticationSchemes []AuthenticationScheme `scim:"name=authenticationSchemes,required"`
}

func (ServiceProviderConfig) PrimarySchema() string { return ServiceProviderConfigSchema }
