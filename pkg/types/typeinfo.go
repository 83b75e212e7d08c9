package types

// TypeKind distinguishes the three sorts of named types rules can reference
type TypeKind string

const (
	TypeClass     TypeKind = "class"
	TypeInterface TypeKind = "interface"
	TypeTrait     TypeKind = "trait"
)

// TypeInfo is the capability view of a single named type
type TypeInfo interface {
	Name() string
	Kind() TypeKind

	// IsSubtypeOf reports strict subtyping: a type is not a subtype of itself
	IsSubtypeOf(name string) bool

	// ImplementsCapability reports whether the type declares or inherits the interface
	ImplementsCapability(name string) bool

	// DeclaresMixin reports whether this type itself declares the trait,
	// ancestors excluded
	DeclaresMixin(name string) bool

	// Ancestors returns the parent chain, nearest first
	Ancestors() []string
}

// TypeSystem resolves type names. Unknown names are not an error.
type TypeSystem interface {
	Lookup(name string) (TypeInfo, bool)
}
