package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/adminext/pkg/container"
	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/logging"
	"github.com/arthur-debert/adminext/pkg/typeinfo"
)

// DefaultExtensionMapParameter is where the extensions section is stored
const DefaultExtensionMapParameter = "sonata.admin.extension.map"

// Format is a project file format
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatJSONC Format = "jsonc"
	FormatXML   Format = "xml"
)

// Options controls loading
type Options struct {
	// ExtensionMapParameter names the parameter receiving the extensions
	// section. Empty means DefaultExtensionMapParameter.
	ExtensionMapParameter string
}

// Project is a loaded project file
type Project struct {
	Path      string
	Format    Format
	Container *container.Builder
	Types     []typeinfo.Declaration
}

// Catalog builds a type catalog from the declared types
func (p *Project) Catalog() (*typeinfo.Catalog, error) {
	catalog := typeinfo.NewCatalog()
	if err := catalog.DeclareAll(p.Types); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTypeInvalid, "invalid types in %s", p.Path)
	}
	return catalog, nil
}

// DetectFormat picks the format from the file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	case ".xml":
		return FormatXML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unsupported project file %s", path).
		WithDetail("path", path)
}

// LoadFile reads a project file
func LoadFile(path string, opts Options) (*Project, error) {
	logger := logging.GetLogger("project")

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read project file %s", path).
			WithDetail("path", path)
	}
	if opts.ExtensionMapParameter == "" {
		opts.ExtensionMapParameter = DefaultExtensionMapParameter
	}

	logger.Debug().Str("path", path).Str("format", string(format)).Msg("Loading project file")

	var p *Project
	if format == FormatXML {
		p, err = loadXML(path)
	} else {
		p, err = loadDocument(path, format, opts)
	}
	if err != nil {
		return nil, err
	}
	p.Path = path
	p.Format = format

	logger.Debug().
		Int("services", len(p.Container.ServiceIDs())).
		Int("types", len(p.Types)).
		Msg("Project loaded")
	return p, nil
}
