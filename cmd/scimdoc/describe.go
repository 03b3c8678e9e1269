package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scimkit/scimmodel/meta"
)

// describeModel writes a human-readable descriptor tree for td to w, one
// line per field, indented by nesting depth.
func describeModel(w io.Writer, td *meta.TypeDescriptor) {
	fmt.Fprintf(w, "%s (schema %s)\n", td.Name, orNone(td.SchemaID))
	describeFields(w, td, 1)
}

func describeFields(w io.Writer, td *meta.TypeDescriptor, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range td.Fields() {
		attrs := []string{f.Attribute.Type().String()}
		if f.Attribute.MultiValued() {
			attrs = append(attrs, "multiValued")
		}
		if f.Attribute.Required() {
			attrs = append(attrs, "required")
		}
		if m := f.Attribute.Mutability(); m.String() != "readWrite" {
			attrs = append(attrs, "mutability="+m.String())
		}
		if r := f.Attribute.Returned(); r.String() != "default" {
			attrs = append(attrs, "returned="+r.String())
		}
		fmt.Fprintf(w, "%s%s (%s) [%s]\n", indent, f.Alias, f.InternalName, strings.Join(attrs, ", "))
		if f.Elem != nil {
			describeFields(w, f.Elem, depth+1)
		}
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
