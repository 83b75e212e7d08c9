// Package config handles configuration management for adminext.
// Settings are layered: embedded defaults, then an optional adminext.toml
// in the XDG config directory, then ADMINEXT_* environment variables.
package config
