// Package container is an in-memory service container builder. It keeps
// service definitions in registration order, resolves %parameter%
// references, and records method calls added to definitions.
//
// Builder implements types.Container for resolution and
// types.MethodCallSink for emission, so a host without its own container
// can run the whole pass against it.
package container
