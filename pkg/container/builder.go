package container

import (
	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/registry"
	"github.com/arthur-debert/adminext/pkg/types"
	"github.com/elliotchance/orderedmap/v2"
)

// Builder is an in-memory container
type Builder struct {
	services   *orderedmap.OrderedMap[string, *Definition]
	aliases    map[string]string
	parameters registry.Registry[any]
}

var (
	_ types.Container      = (*Builder)(nil)
	_ types.MethodCallSink = (*Builder)(nil)
)

// NewBuilder creates an empty container
func NewBuilder() *Builder {
	return &Builder{
		services:   orderedmap.NewOrderedMap[string, *Definition](),
		aliases:    make(map[string]string),
		parameters: registry.New[any]("parameter"),
	}
}

// Register adds a definition. Ids are unique across definitions and aliases.
func (b *Builder) Register(def *Definition) error {
	if def == nil || def.ID == "" {
		return errors.New(errors.ErrInvalidInput, "service id cannot be empty")
	}
	if b.Has(def.ID) {
		return errors.Newf(errors.ErrAlreadyExists, "service '%s' is already defined", def.ID).
			WithDetail("service", def.ID)
	}
	b.services.Set(def.ID, def)
	return nil
}

// SetAlias makes alias resolve to the service id
func (b *Builder) SetAlias(alias, id string) error {
	if alias == "" || id == "" {
		return errors.New(errors.ErrInvalidInput, "alias and service id cannot be empty")
	}
	if b.HasDefinition(alias) {
		return errors.Newf(errors.ErrAlreadyExists, "alias '%s' collides with a service definition", alias).
			WithDetail("service", alias)
	}
	b.aliases[alias] = id
	return nil
}

// SetParameter defines or replaces a parameter
func (b *Builder) SetParameter(name string, value any) error {
	return b.parameters.Set(name, value)
}

// Definition returns the definition registered under id
func (b *Builder) Definition(id string) (*Definition, bool) {
	return b.services.Get(id)
}

// ServiceIDs returns definition ids in registration order
func (b *Builder) ServiceIDs() []string {
	return b.services.Keys()
}

// FindTaggedServiceIDs returns every service carrying tag with its
// attribute sets, in registration order
func (b *Builder) FindTaggedServiceIDs(tag string) []types.TaggedService {
	var out []types.TaggedService
	for el := b.services.Front(); el != nil; el = el.Next() {
		attrs := el.Value.TagAttributes(tag)
		if len(attrs) == 0 {
			continue
		}
		out = append(out, types.TaggedService{ID: el.Key, Tags: attrs})
	}
	return out
}

func (b *Builder) HasDefinition(id string) bool {
	_, ok := b.services.Get(id)
	return ok
}

// Has reports whether id is a definition or an alias of an existing service
func (b *Builder) Has(id string) bool {
	if b.HasDefinition(id) {
		return true
	}
	target, ok := b.aliases[id]
	return ok && b.HasDefinition(target)
}

func (b *Builder) Class(id string) (string, bool) {
	def, ok := b.services.Get(id)
	if !ok || def.Class == "" {
		return "", false
	}
	return def.Class, true
}

func (b *Builder) Arguments(id string) []any {
	def, ok := b.services.Get(id)
	if !ok {
		return nil
	}
	return def.Arguments
}

func (b *Builder) HasParameter(name string) bool {
	return b.parameters.Has(name)
}

// Parameter returns a raw, unresolved parameter value
func (b *Builder) Parameter(name string) (any, error) {
	v, ok := b.parameters.Lookup(name)
	if !ok {
		return nil, errors.Newf(errors.ErrParameterNotFound, "parameter '%s' is not defined", name).
			WithDetail("parameter", name)
	}
	return v, nil
}

// AddMethodCall appends a call to the definition of id
func (b *Builder) AddMethodCall(id, method string, args ...any) error {
	def, ok := b.services.Get(id)
	if !ok {
		return errors.Newf(errors.ErrServiceNotFound, "cannot add call %s to unknown service '%s'", method, id).
			WithDetail("service", id)
	}
	def.Calls = append(def.Calls, MethodCall{Method: method, Args: args})
	return nil
}
