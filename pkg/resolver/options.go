package resolver

import (
	"github.com/rs/zerolog"
)

// Default tag and parameter names
const (
	DefaultAdminTag              = "sonata.admin"
	DefaultExtensionTag          = "sonata.admin.extension"
	DefaultExtensionMapParameter = "sonata.admin.extension.map"
)

// Option configures a Resolver
type Option func(*Resolver)

// WithAdminTag sets the tag marking admin services
func WithAdminTag(tag string) Option {
	return func(r *Resolver) {
		if tag != "" {
			r.adminTag = tag
		}
	}
}

// WithExtensionTag sets the tag marking extension services
func WithExtensionTag(tag string) Option {
	return func(r *Resolver) {
		if tag != "" {
			r.extensionTag = tag
		}
	}
}

// WithExtensionMapParameter sets the parameter holding the extension map
func WithExtensionMapParameter(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.mapParameter = name
		}
	}
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}
