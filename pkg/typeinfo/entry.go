package typeinfo

import (
	"github.com/arthur-debert/adminext/pkg/types"
	goset "github.com/deckarep/golang-set/v2"
)

type entry struct {
	catalog    *Catalog
	name       string
	kind       types.TypeKind
	parent     string
	implements goset.Set[string]
	uses       goset.Set[string]
}

func (e *entry) Name() string         { return e.name }
func (e *entry) Kind() types.TypeKind { return e.kind }

func (e *entry) DeclaresMixin(name string) bool {
	return e.uses.Contains(Normalize(name))
}

// Ancestors follows parent links until a root, an undeclared parent, or a
// type already seen
func (e *entry) Ancestors() []string {
	var chain []string
	seen := goset.NewThreadUnsafeSet(e.name)

	for parent := e.parent; parent != ""; {
		if !seen.Add(parent) {
			break
		}
		chain = append(chain, parent)

		next, ok := e.catalog.entries.Lookup(parent)
		if !ok {
			break
		}
		parent = next.parent
	}
	return chain
}

func (e *entry) IsSubtypeOf(name string) bool {
	name = Normalize(name)
	if name == e.name {
		return false
	}
	for _, a := range e.Ancestors() {
		if a == name {
			return true
		}
	}
	return e.ImplementsCapability(name)
}

// ImplementsCapability searches the interfaces declared by the type, its
// ancestors, and the interfaces those interfaces extend
func (e *entry) ImplementsCapability(name string) bool {
	name = Normalize(name)
	if e.kind == types.TypeInterface && e.name == name {
		return true
	}

	queue := e.implements.ToSlice()
	for _, a := range e.Ancestors() {
		if anc, ok := e.catalog.entries.Lookup(a); ok {
			queue = append(queue, anc.implements.ToSlice()...)
		}
	}

	seen := goset.NewThreadUnsafeSet[string]()
	for len(queue) > 0 {
		iface := queue[0]
		queue = queue[1:]
		if !seen.Add(iface) {
			continue
		}
		if iface == name {
			return true
		}
		if decl, ok := e.catalog.entries.Lookup(iface); ok {
			queue = append(queue, decl.implements.ToSlice()...)
		}
	}
	return false
}
