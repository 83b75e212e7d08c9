// Package registry provides a generic, thread-safe registry keyed by name.
// The type catalog stores its type declarations in one, the in-memory
// container stores its parameters in another.
package registry
