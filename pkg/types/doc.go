// Package types defines the core types and interfaces shared by the
// extension resolution packages: rule kinds, tag attribute sets, service
// references, and the two capability interfaces the host application
// provides (Container for service lookup, TypeSystem for type introspection).
package types
