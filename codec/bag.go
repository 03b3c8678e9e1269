package codec

// Bag is the intermediate value tree codec decodes JSON into and encodes
// JSON out of. Keys are a field's internal name (meta.FieldDescriptor.
// InternalName). A key's absence means the field was never assigned — this
// is what makes ModeExcludeUnset possible without a separate "was-set"
// bitset. A key present with the Null sentinel means the field was
// assigned JSON null explicitly, distinct from never being mentioned at
// all; only ModeDefault tells the two apart in its output (ModeExcludeUnset
// omits both, ModeIncludeNull writes null for both).
//
// Values held in a Bag:
//
//	scim string    -> string
//	scim boolean   -> bool
//	scim integer   -> int64
//	scim decimal   -> float64
//	scim dateTime  -> time.Time
//	scim binary    -> []byte
//	scim reference -> meta.Reference
//	scim complex   -> Bag
//	multiValued    -> []interface{} of one of the above
//	explicit null  -> Null
type Bag map[string]interface{}

// nullValue is Null's concrete type. An unexported type keeps Null the only
// value that can ever compare equal to it.
type nullValue struct{}

// Null marks a Bag entry that was explicitly assigned JSON null, as opposed
// to a key that is simply absent from the Bag.
var Null interface{} = nullValue{}

// Get returns the value stored under name and whether it was present.
func (b Bag) Get(name string) (interface{}, bool) {
	v, ok := b[name]
	return v, ok
}

// Clone returns a shallow copy of the bag (nested Bags/slices are shared).
func (b Bag) Clone() Bag {
	out := make(Bag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
