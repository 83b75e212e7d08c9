package container

import (
	"github.com/arthur-debert/adminext/pkg/types"
)

// Tag is one occurrence of a tag on a definition
type Tag struct {
	Name       string
	Attributes *types.Attributes
}

// MethodCall is a call recorded on a definition, replayed when the service
// is instantiated
type MethodCall struct {
	Method string
	Args   []any
}

// Definition describes one service
type Definition struct {
	ID        string
	Class     string
	Arguments []any
	Tags      []Tag
	Calls     []MethodCall
}

// NewDefinition creates a definition for class
func NewDefinition(id, class string, args ...any) *Definition {
	return &Definition{ID: id, Class: class, Arguments: args}
}

// AddTag appends a tag occurrence. Attributes may be nil.
func (d *Definition) AddTag(name string, attrs *types.Attributes) *Definition {
	if attrs == nil {
		attrs = types.NewAttributes()
	}
	d.Tags = append(d.Tags, Tag{Name: name, Attributes: attrs})
	return d
}

// TagAttributes returns the attribute sets of every occurrence of name
func (d *Definition) TagAttributes(name string) []*types.Attributes {
	var out []*types.Attributes
	for _, t := range d.Tags {
		if t.Name == name {
			out = append(out, t.Attributes)
		}
	}
	return out
}

// CallsTo returns the recorded calls of method, in order
func (d *Definition) CallsTo(method string) []MethodCall {
	var out []MethodCall
	for _, c := range d.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}
