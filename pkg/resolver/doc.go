// Package resolver decides which extensions apply to which admin services.
//
// Extensions reach an admin through two channels. The tag channel reads the
// attribute sets of services tagged as extensions: a target attribute wires
// the extension to one service directly, the remaining attributes act as
// rules evaluated against every admin. The config channel evaluates the
// flattened extension map. Both channels feed one accumulator; the drained
// result is a Plan holding, per admin, the extensions ordered by priority
// (highest first, later registrations first on ties).
//
// Resolution is synchronous and stops at the first configuration error.
// Model classes that do not resolve to a known type are not errors: the
// admin is skipped for class-based matching only.
package resolver
