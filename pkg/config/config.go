package config

import (
	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/samber/lo"
)

// Output formats understood by the CLI
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// Formats lists every output format
var Formats = []string{FormatText, FormatTable, FormatYAML, FormatTOML}

// Config holds the adminext settings
type Config struct {
	Tags       Tags       `koanf:"tags"`
	Parameters Parameters `koanf:"parameters"`
	Emitter    Emitter    `koanf:"emitter"`
	Output     Output     `koanf:"output"`
}

// Tags names the service tags the resolver reads
type Tags struct {
	Admin     string `koanf:"admin"`
	Extension string `koanf:"extension"`
}

// Parameters names container parameters
type Parameters struct {
	ExtensionMap string `koanf:"extension_map"`
}

// Emitter configures wiring directives
type Emitter struct {
	Method string `koanf:"method"`
}

// Output configures plan rendering
type Output struct {
	Format string `koanf:"format"`
}

// Validate checks required settings
func (c *Config) Validate() error {
	required := [][2]string{
		{"tags.admin", c.Tags.Admin},
		{"tags.extension", c.Tags.Extension},
		{"parameters.extension_map", c.Parameters.ExtensionMap},
		{"emitter.method", c.Emitter.Method},
	}
	for _, r := range required {
		if r[1] == "" {
			return errors.Newf(errors.ErrConfigValid, "%s cannot be empty", r[0]).
				WithDetail("key", r[0])
		}
	}
	if !lo.Contains(Formats, c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
	return nil
}
