package spec

// ReferenceKind constrains the structural shape a reference-typed
// attribute's value must take (spec §3 "Reference"). It is derived from an
// AttributeDescriptor's referenceTypes list by ClassifyReferenceTypes.
type ReferenceKind int

const (
	// ReferenceExternal requires the value to parse as an absolute URL
	// with a scheme ("external" in referenceTypes).
	ReferenceExternal ReferenceKind = iota
	// ReferenceURI requires the value to parse as a URI, including URNs
	// ("uri" in referenceTypes).
	ReferenceURI
	// ReferenceResourceType accepts any string; the referenced resource's
	// kind is one of a named set of SCIM resource types. The server, not
	// this library, is the authority on whether the URI actually resolves;
	// equality here is by string value only.
	ReferenceResourceType
)

func (k ReferenceKind) String() string {
	switch k {
	case ReferenceExternal:
		return "external"
	case ReferenceURI:
		return "uri"
	case ReferenceResourceType:
		return "resourceType"
	default:
		return "unknown"
	}
}

// ClassifyReferenceTypes inspects the referenceTypes list of an
// AttributeDescriptor and returns the ReferenceKind it implies, along with
// the resource-type tags when the kind is ReferenceResourceType.
//
//	["external"] -> ReferenceExternal
//	["uri"]      -> ReferenceURI
//	anything else (including a mix) -> ReferenceResourceType, tags verbatim
//
// An empty list is rejected: spec §4.5 requires "reference" attributes to
// carry a non-empty referenceTypes.
func ClassifyReferenceTypes(referenceTypes []string) (kind ReferenceKind, tags []string, err error) {
	if len(referenceTypes) == 0 {
		return 0, nil, WrapPath("referenceTypes", ErrInvalidSchemaDocument, "reference attribute requires a non-empty referenceTypes")
	}
	if len(referenceTypes) == 1 {
		switch referenceTypes[0] {
		case "external":
			return ReferenceExternal, nil, nil
		case "uri":
			return ReferenceURI, nil, nil
		}
	}
	return ReferenceResourceType, referenceTypes, nil
}
