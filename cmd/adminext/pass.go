package adminext

import (
	"io"
	"os"

	"github.com/arthur-debert/adminext/pkg/config"
	"github.com/arthur-debert/adminext/pkg/emitter"
	"github.com/arthur-debert/adminext/pkg/logging"
	"github.com/arthur-debert/adminext/pkg/output"
	"github.com/arthur-debert/adminext/pkg/project"
	"github.com/arthur-debert/adminext/pkg/resolver"
	"github.com/spf13/cobra"
)

// passOptions are the flags shared by commands running a pass
type passOptions struct {
	configPath   string
	adminTag     string
	extensionTag string
	mapParameter string
	method       string
	format       string
}

func (o *passOptions) loadConfig() (*config.Config, error) {
	return config.LoadWithOverrides(o.configPath, map[string]interface{}{
		"tags.admin":               o.adminTag,
		"tags.extension":           o.extensionTag,
		"parameters.extension_map": o.mapParameter,
		"emitter.method":           o.method,
		"output.format":            o.format,
	})
}

// runPass loads the project at path, resolves it and emits the plan onto
// the project's container
func runPass(cmd *cobra.Command, opts *passOptions, path string) (*resolver.Plan, *config.Config, error) {
	logger := logging.GetLogger("cli")

	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	p, err := project.LoadFile(path, project.Options{ExtensionMapParameter: cfg.Parameters.ExtensionMap})
	if err != nil {
		return nil, nil, err
	}
	catalog, err := p.Catalog()
	if err != nil {
		return nil, nil, err
	}

	r := resolver.New(p.Container, catalog,
		resolver.WithAdminTag(cfg.Tags.Admin),
		resolver.WithExtensionTag(cfg.Tags.Extension),
		resolver.WithExtensionMapParameter(cfg.Parameters.ExtensionMap),
	)
	plan, err := emitter.New(p.Container, cfg.Emitter.Method).Apply(cmd.Context(), r)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().
		Str("project", path).
		Int("services", len(plan.Admins())).
		Int("assignments", plan.Len()).
		Msg("Project resolved")
	return plan, cfg, nil
}

func colorFor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && output.ColorEnabled(f)
}
