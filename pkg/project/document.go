package project

import (
	"os"

	"github.com/arthur-debert/adminext/pkg/container"
	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/typeinfo"
	"github.com/arthur-debert/adminext/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/jsonc"
)

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

type document struct {
	Parameters map[string]any         `koanf:"parameters"`
	Types      []typeinfo.Declaration `koanf:"types"`
	Services   []serviceDocument      `koanf:"services"`
	Extensions map[string]any         `koanf:"extensions"`
}

type serviceDocument struct {
	ID        string `koanf:"id"`
	Class     string `koanf:"class"`
	Alias     string `koanf:"alias"`
	Arguments []any  `koanf:"arguments"`

	// Tags holds either a tag name or a mapping with a name key
	Tags []any `koanf:"tags"`
}

func loadDocument(path string, format Format, opts Options) (*Project, error) {
	k := koanf.New(".")

	var err error
	switch format {
	case FormatYAML:
		err = k.Load(file.Provider(path), yaml.Parser())
	case FormatTOML:
		err = k.Load(file.Provider(path), toml.Parser())
	case FormatJSONC:
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read %s", path).
				WithDetail("path", path)
		}
		// JSON is a subset of YAML once comments and trailing commas are gone
		err = k.Load(&rawBytesProvider{bytes: jsonc.ToJSON(data)}, yaml.Parser())
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", path).
			WithDetail("path", path)
	}

	var doc document
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &doc,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &doc, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid project file %s", path).
			WithDetail("path", path)
	}

	b, err := doc.build(opts)
	if err != nil {
		return nil, err
	}
	return &Project{Container: b, Types: doc.Types}, nil
}

func (d *document) build(opts Options) (*container.Builder, error) {
	b := container.NewBuilder()

	for name, value := range d.Parameters {
		if err := b.SetParameter(name, value); err != nil {
			return nil, err
		}
	}
	if d.Extensions != nil {
		if err := b.SetParameter(opts.ExtensionMapParameter, d.Extensions); err != nil {
			return nil, err
		}
	}

	var aliases []serviceDocument
	for _, s := range d.Services {
		if s.Alias != "" {
			aliases = append(aliases, s)
			continue
		}
		def := container.NewDefinition(s.ID, s.Class, s.Arguments...)
		for _, raw := range s.Tags {
			name, attrs, err := parseTag(raw)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid tag on service %s", s.ID).
					WithDetail("service", s.ID)
			}
			def.AddTag(name, attrs)
		}
		if err := b.Register(def); err != nil {
			return nil, err
		}
	}

	for _, s := range aliases {
		if err := b.SetAlias(s.ID, s.Alias); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func parseTag(raw any) (string, *types.Attributes, error) {
	switch v := raw.(type) {
	case string:
		return v, types.NewAttributes(), nil
	case map[string]any:
		name, _ := v["name"].(string)
		if name == "" {
			return "", nil, errors.New(errors.ErrConfigParse, "tag without a name")
		}
		rest := make(map[string]any, len(v))
		for key, value := range v {
			if key != "name" {
				rest[key] = value
			}
		}
		return name, types.AttributesFromMap(rest), nil
	}
	return "", nil, errors.Newf(errors.ErrConfigParse, "tag must be a name or a mapping, got %T", raw)
}
