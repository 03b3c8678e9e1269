package resource

// Extension is implemented by every hand-written SCIM schema extension
// struct (e.g. an EnterpriseUser extension). PrimarySchema identifies the
// bucket's key in a resource's top-level JSON object and in its schemas
// list, per spec §3(c).
type Extension interface {
	PrimarySchema() string
}

// GetExtension resolves the extension bucket of type E attached to r, the
// Go-generics rendering of a dynamic __getitem__(extension_type) lookup
// (spec §9, SUPPLEMENTED FEATURES 12.1). B is inferred from r; E must be
// given explicitly: resource.GetExtension[*model.EnterpriseUser](r).
func GetExtension[E Extension, B any](r *Resource[B]) (E, bool) {
	var zero E
	if r.extensions == nil {
		return zero, false
	}
	v, ok := r.extensions[zero.PrimarySchema()]
	if !ok {
		return zero, false
	}
	e, ok := v.(E)
	return e, ok
}

// SetExtension attaches an extension bucket to r, registering its schema
// under both the extension map and (on the next Encode) the schemas list.
func SetExtension[E Extension, B any](r *Resource[B], ext E) {
	if r.extensions == nil {
		r.extensions = make(map[string]interface{})
	}
	r.extensions[ext.PrimarySchema()] = ext
}
