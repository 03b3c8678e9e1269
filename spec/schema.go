package spec

import (
	"encoding/json"
	"sync"
)

// Schema models a SCIM Schema resource (RFC 7643 §7): a collection of
// attribute descriptors identified by a schema URI. Schema is read only
// after construction and may be safely shared and cached — exactly the
// immutability contract spec §5 requires of type definitions.
type Schema struct {
	id          string
	name        string
	description string
	attributes  []*Attribute
}

// NewSchema constructs a Schema directly, for hand-written well-known
// schemas built in Go rather than decoded from a document.
func NewSchema(id, name, description string, attributes ...*Attribute) *Schema {
	return &Schema{id: id, name: name, description: description, attributes: attributes}
}

// ID returns the schema's URI, e.g. "urn:ietf:params:scim:schemas:core:2.0:User".
func (s *Schema) ID() string { return s.id }

// Name returns the schema's short name, e.g. "User".
func (s *Schema) Name() string { return s.name }

// Description returns the human-readable schema description.
func (s *Schema) Description() string { return s.description }

// Attributes returns the schema's top-level attribute descriptors, in
// declared order.
func (s *Schema) Attributes() []*Attribute { return s.attributes }

// ForEachAttribute invokes callback on each top-level attribute in order.
func (s *Schema) ForEachAttribute(callback func(attr *Attribute) error) error {
	for _, attr := range s.attributes {
		if err := callback(attr); err != nil {
			return err
		}
	}
	return nil
}

// AttributeForName returns the top-level attribute addressed by name, or nil.
func (s *Schema) AttributeForName(name string) *Attribute {
	for _, attr := range s.attributes {
		if attr.GoesBy(name) {
			return attr
		}
	}
	return nil
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(schemaAdapter{
		Schemas:     []string{SchemaSchema},
		ID:          s.id,
		Name:        s.name,
		Description: s.description,
		Attributes:  s.attributes,
	})
}

func (s *Schema) UnmarshalJSON(raw []byte) error {
	var adapter schemaAdapter
	if err := json.Unmarshal(raw, &adapter); err != nil {
		return err
	}
	if adapter.ID == "" {
		return WrapPath("id", ErrInvalidSchemaDocument, "schema document requires a non-empty id")
	}
	s.id = adapter.ID
	s.name = adapter.Name
	s.description = adapter.Description
	s.attributes = adapter.Attributes
	return nil
}

type schemaAdapter struct {
	Schemas     []string     `json:"schemas,omitempty"`
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Attributes  []*Attribute `json:"attributes"`
}

// schemaRegistry caches Schema values by id so ResourceType and the dynamic
// factory can resolve a schema URI without re-parsing its document. A
// sync.Once-guarded package-level singleton, same pattern as Schemas below.
type schemaRegistry struct {
	mu sync.RWMutex
	db map[string]*Schema
}

var (
	schemaReg     *schemaRegistry
	schemaRegOnce sync.Once
)

// Schemas returns the process-wide schema registry.
func Schemas() *schemaRegistry {
	schemaRegOnce.Do(func() {
		schemaReg = &schemaRegistry{db: map[string]*Schema{}}
	})
	return schemaReg
}

// Register relates the schema with its id in the registry, overwriting any
// existing entry for that id.
func (r *schemaRegistry) Register(schema *Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.db[schema.id] = schema
}

// Get returns the schema registered under schemaID, if any.
func (r *schemaRegistry) Get(schemaID string) (schema *Schema, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schema, ok = r.db[schemaID]
	return
}

// ForEachSchema invokes callback on every registered schema.
func (r *schemaRegistry) ForEachSchema(callback func(schema *Schema) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, schema := range r.db {
		if err := callback(schema); err != nil {
			return err
		}
	}
	return nil
}
