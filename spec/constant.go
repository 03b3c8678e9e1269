package spec

// RFC3339Micro is the wire format for dateTime attributes: RFC 3339 UTC
// with a trailing "Z", as required by spec §4.1.
const RFC3339Micro = "2006-01-02T15:04:05.999999999Z07:00"

// ApplicationScimJson is the SCIM standard content type.
const ApplicationScimJson = "application/scim+json"

// Well-known schema URIs recognized by the core (spec §6).
const (
	UserSchema                   = "urn:ietf:params:scim:schemas:core:2.0:User"
	GroupSchema                  = "urn:ietf:params:scim:schemas:core:2.0:Group"
	SchemaSchema                 = "urn:ietf:params:scim:schemas:core:2.0:Schema"
	ResourceTypeSchema           = "urn:ietf:params:scim:schemas:core:2.0:ResourceType"
	ServiceProviderConfigSchema  = "urn:ietf:params:scim:schemas:core:2.0:ServiceProviderConfig"
	EnterpriseUserExtensionSchema = "urn:ietf:params:scim:schemas:extension:enterprise:2.0:User"
	ListResponseSchema           = "urn:ietf:params:scim:api:messages:2.0:ListResponse"
	SearchRequestSchema          = "urn:ietf:params:scim:api:messages:2.0:SearchRequest"
	ErrorSchema                  = "urn:ietf:params:scim:api:messages:2.0:Error"
	PatchOpSchema                = "urn:ietf:params:scim:api:messages:2.0:PatchOp"
	BulkRequestSchema            = "urn:ietf:params:scim:api:messages:2.0:BulkRequest"
	BulkResponseSchema           = "urn:ietf:params:scim:api:messages:2.0:BulkResponse"
)
