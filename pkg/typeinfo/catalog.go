package typeinfo

import (
	"strings"

	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/registry"
	"github.com/arthur-debert/adminext/pkg/types"
	goset "github.com/deckarep/golang-set/v2"
	"go.uber.org/multierr"
)

// Declaration describes one named type
type Declaration struct {
	Name string         `koanf:"name" yaml:"name"`
	Kind types.TypeKind `koanf:"kind" yaml:"kind"`

	// Parent is the superclass of a class. Interfaces and traits leave it empty.
	Parent string `koanf:"parent" yaml:"parent,omitempty"`

	// Implements lists the interfaces of a class, or the parent interfaces
	// of an interface
	Implements []string `koanf:"implements" yaml:"implements,omitempty"`

	// Uses lists the traits the type itself declares
	Uses []string `koanf:"uses" yaml:"uses,omitempty"`
}

// Catalog is an in-memory TypeSystem
type Catalog struct {
	entries registry.Registry[*entry]
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{entries: registry.New[*entry]("type")}
}

// Normalize drops a leading namespace separator
func Normalize(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), `\`)
}

// Declare adds a type to the catalog
func (c *Catalog) Declare(d Declaration) error {
	name := Normalize(d.Name)
	if name == "" {
		return errors.New(errors.ErrTypeInvalid, "type declaration without a name")
	}

	kind := d.Kind
	if kind == "" {
		kind = types.TypeClass
	}
	switch kind {
	case types.TypeClass, types.TypeInterface, types.TypeTrait:
	default:
		return errors.Newf(errors.ErrTypeInvalid, "type %s has unknown kind %q", name, d.Kind).
			WithDetail("type", name)
	}

	if d.Parent != "" && kind != types.TypeClass {
		return errors.Newf(errors.ErrTypeInvalid, "%s %s cannot declare a parent class", kind, name).
			WithDetail("type", name)
	}

	e := &entry{
		catalog:    c,
		name:       name,
		kind:       kind,
		parent:     Normalize(d.Parent),
		implements: normalizedSet(d.Implements),
		uses:       normalizedSet(d.Uses),
	}

	if err := c.entries.Register(name, e); err != nil {
		return errors.Wrapf(err, errors.ErrTypeInvalid, "cannot declare type %s", name)
	}
	return nil
}

// DeclareAll declares every type and reports all failures together
func (c *Catalog) DeclareAll(decls []Declaration) error {
	var err error
	for _, d := range decls {
		multierr.AppendInto(&err, c.Declare(d))
	}
	return err
}

// Lookup implements types.TypeSystem
func (c *Catalog) Lookup(name string) (types.TypeInfo, bool) {
	e, ok := c.entries.Lookup(Normalize(name))
	if !ok {
		return nil, false
	}
	return e, true
}

// Names returns every declared type name, sorted
func (c *Catalog) Names() []string {
	return c.entries.List()
}

func normalizedSet(names []string) goset.Set[string] {
	set := goset.NewThreadUnsafeSet[string]()
	for _, n := range names {
		if n = Normalize(n); n != "" {
			set.Add(n)
		}
	}
	return set
}
