package types

// TaggedService is a service carrying one or more occurrences of a tag
type TaggedService struct {
	ID   string
	Tags []*Attributes
}

// Reference points at a service by id. It is the argument of every emitted
// wiring directive.
type Reference struct {
	ID string
}

func (r Reference) String() string {
	return "@" + r.ID
}

// Container is the read side of the service container consumed during
// resolution
type Container interface {
	// FindTaggedServiceIDs returns the services carrying tag, in definition order
	FindTaggedServiceIDs(tag string) []TaggedService

	// HasDefinition reports whether a service definition exists for id
	HasDefinition(id string) bool

	// Has reports whether id resolves to a service, definitions and aliases alike
	Has(id string) bool

	// Class returns the class declared on a definition, possibly a %parameter% reference
	Class(id string) (string, bool)

	// Arguments returns the positional constructor arguments of a definition
	Arguments(id string) []any

	HasParameter(name string) bool
	Parameter(name string) (any, error)

	// ResolveValue applies one level of %parameter% substitution
	ResolveValue(value any) (any, error)
}

// MethodCallSink receives wiring directives. Calls are additive.
type MethodCallSink interface {
	AddMethodCall(id, method string, args ...any) error
}
