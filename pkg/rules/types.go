package rules

import (
	"github.com/arthur-debert/adminext/pkg/types"
	"github.com/elliotchance/orderedmap/v2"
)

// ExtensionOptions is the declared option set of one extension
type ExtensionOptions struct {
	Global          bool     `koanf:"global" yaml:"global,omitempty"`
	Excludes        []string `koanf:"excludes" yaml:"excludes,omitempty"`
	Admins          []string `koanf:"admins" yaml:"admins,omitempty"`
	Implements      []string `koanf:"implements" yaml:"implements,omitempty"`
	Extends         []string `koanf:"extends" yaml:"extends,omitempty"`
	Instanceof      []string `koanf:"instanceof" yaml:"instanceof,omitempty"`
	Uses            []string `koanf:"uses" yaml:"uses,omitempty"`
	AdminImplements []string `koanf:"admin_implements" yaml:"admin_implements,omitempty"`
	AdminExtends    []string `koanf:"admin_extends" yaml:"admin_extends,omitempty"`
	AdminInstanceof []string `koanf:"admin_instanceof" yaml:"admin_instanceof,omitempty"`
	AdminUses       []string `koanf:"admin_uses" yaml:"admin_uses,omitempty"`
	Priority        int      `koanf:"priority" yaml:"priority,omitempty"`
}

// Subjects returns the subjects declared for kind. The global kind has no
// declared subjects; Flatten synthesizes it.
func (o ExtensionOptions) Subjects(kind types.RuleKind) []string {
	switch kind {
	case types.KindExcludes:
		return o.Excludes
	case types.KindAdmins:
		return o.Admins
	case types.KindImplements:
		return o.Implements
	case types.KindExtends:
		return o.Extends
	case types.KindInstanceof:
		return o.Instanceof
	case types.KindUses:
		return o.Uses
	case types.KindAdminImplements:
		return o.AdminImplements
	case types.KindAdminExtends:
		return o.AdminExtends
	case types.KindAdminInstanceof:
		return o.AdminInstanceof
	case types.KindAdminUses:
		return o.AdminUses
	}
	return nil
}

// Entry is one extension registered under a subject
type Entry struct {
	Extension string
	Priority  int
}

// Index is the flattened extension map: kind -> subject -> entries
type Index struct {
	kinds map[types.RuleKind]*orderedmap.OrderedMap[string, []Entry]
}

func newIndex() *Index {
	ix := &Index{kinds: make(map[types.RuleKind]*orderedmap.OrderedMap[string, []Entry], len(types.AllKinds))}
	for _, k := range types.AllKinds {
		ix.kinds[k] = orderedmap.NewOrderedMap[string, []Entry]()
	}
	return ix
}

func (ix *Index) add(kind types.RuleKind, subject string, e Entry) {
	subjects := ix.kinds[kind]
	entries, _ := subjects.Get(subject)
	subjects.Set(subject, append(entries, e))
}

// Subjects returns the subjects of kind in insertion order
func (ix *Index) Subjects(kind types.RuleKind) []string {
	subjects, ok := ix.kinds[kind]
	if !ok {
		return nil
	}
	return subjects.Keys()
}

// Entries returns the extensions registered under subject for kind
func (ix *Index) Entries(kind types.RuleKind, subject string) []Entry {
	subjects, ok := ix.kinds[kind]
	if !ok {
		return nil
	}
	entries, _ := subjects.Get(subject)
	return entries
}

// Size returns the number of (subject, extension) pairs of kind
func (ix *Index) Size(kind types.RuleKind) int {
	n := 0
	for _, s := range ix.Subjects(kind) {
		n += len(ix.Entries(kind, s))
	}
	return n
}
