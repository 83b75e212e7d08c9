// Package matcher decides whether a single extension rule applies to a
// candidate admin, given the admin's managed model type and its own type.
package matcher

import (
	"github.com/arthur-debert/adminext/pkg/types"
)

// Matcher evaluates class-based rules against a type system. It holds no
// state beyond the type system it queries.
type Matcher struct {
	types types.TypeSystem
}

// New creates a matcher backed by ts
func New(ts types.TypeSystem) *Matcher {
	return &Matcher{types: ts}
}

// Matches reports whether a rule of kind with subject applies to an admin
// whose model type is class and whose own type is adminClass. Unknown
// subjects, nil candidates, and structural kinds never match.
func (m *Matcher) Matches(kind types.RuleKind, subject string, class, adminClass types.TypeInfo) bool {
	if kind == types.KindGlobal {
		return true
	}

	candidate := class
	if kind.IsAdminKind() {
		candidate = adminClass
	}
	if candidate == nil {
		return false
	}

	switch kind {
	case types.KindInstanceof, types.KindAdminInstanceof:
		s, ok := m.lookup(subject, types.TypeClass)
		if !ok {
			return false
		}
		return candidate.Name() == s.Name() || candidate.IsSubtypeOf(s.Name())
	case types.KindExtends, types.KindAdminExtends:
		s, ok := m.lookup(subject, types.TypeClass)
		return ok && candidate.IsSubtypeOf(s.Name())
	case types.KindImplements, types.KindAdminImplements:
		s, ok := m.lookup(subject, types.TypeInterface)
		return ok && candidate.ImplementsCapability(s.Name())
	case types.KindUses, types.KindAdminUses:
		s, ok := m.lookup(subject, types.TypeTrait)
		return ok && m.hasMixin(candidate, s.Name())
	}
	return false
}

func (m *Matcher) lookup(name string, kind types.TypeKind) (types.TypeInfo, bool) {
	if name == "" {
		return nil, false
	}
	t, ok := m.types.Lookup(name)
	if !ok || t.Kind() != kind {
		return nil, false
	}
	return t, true
}

// hasMixin walks the candidate and its ancestors looking for a declaration
// of trait
func (m *Matcher) hasMixin(candidate types.TypeInfo, trait string) bool {
	if candidate.DeclaresMixin(trait) {
		return true
	}
	for _, name := range candidate.Ancestors() {
		ancestor, ok := m.types.Lookup(name)
		if !ok {
			return false
		}
		if ancestor.DeclaresMixin(trait) {
			return true
		}
	}
	return false
}
