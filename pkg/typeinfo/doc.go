// Package typeinfo provides a declarative type catalog implementing
// types.TypeSystem. Hosts describe their model and admin types (classes,
// interfaces, traits) once, and rule matching queries the catalog instead
// of a language reflection API.
//
// Names are compared exactly, after a single leading namespace separator
// is dropped, so `\App\Entity\Post` and `App\Entity\Post` are the same type.
//
// Ancestor chains are walked iteratively with a visited set; a declared
// cycle ends the walk instead of looping.
package typeinfo
