package codec

// AliasOverrides documents every wire name that cannot be mechanically
// derived from its internal name (spec §9 Open Question 2). The ordinary
// rule — lowercase the first letter of a Go field name, or snake_case a
// dynamically generated one — covers nearly everything; these are the
// exceptions RFC 7643 itself carves out.
//
// dynamic.internalName consults this table before falling back to its
// usual camelCase-to-snake_case conversion, and hand-written structs that
// need one of these wire names simply set it explicitly via `scim:"name=..."`.
var AliasOverrides = map[string]string{
	"$ref": "ref",
}

// InternalNameFor resolves a wire key to its override internal name, if one
// is registered.
func InternalNameFor(wireName string) (string, bool) {
	name, ok := AliasOverrides[wireName]
	return name, ok
}
