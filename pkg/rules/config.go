package rules

import (
	"reflect"
	"sort"

	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
)

// DecodeExtensionMap converts the raw extension map parameter into typed
// options. raw is usually a map[string]any produced by a config parser.
func DecodeExtensionMap(raw any) (map[string]ExtensionOptions, error) {
	logger := logging.GetLogger("rules.config")

	result := make(map[string]ExtensionOptions)
	if raw == nil {
		logger.Debug().Msg("No extension map configured")
		return result, nil
	}

	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.Newf(errors.ErrConfigParse,
			"extension map must be a mapping of extension ids, got %T", raw)
	}

	for id, value := range entries {
		if id == "" {
			return nil, errors.New(errors.ErrConfigParse, "extension map contains an empty extension id")
		}

		var opts ExtensionOptions
		if !isEmptyCollection(value) {
			if err := decodeOptions(value, &opts); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"invalid options for extension %s", id).WithDetail("extension", id)
			}
		}
		result[id] = opts
	}

	logger.Debug().Int("extensions", len(result)).Msg("Decoded extension map")
	return result, nil
}

// isEmptyCollection reports whether value carries no options at all. XML
// loaders produce an empty list for a bare collection parameter.
func isEmptyCollection(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	}
	return false
}

func decodeOptions(value any, out *ExtensionOptions) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "koanf",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapKeysToSliceHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(value)
}

// mapKeysToSliceHookFunc lets subject collections be written as a map keyed
// by subject. Keys are sorted; values are ignored.
func mapKeysToSliceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.Map || t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}

		v := reflect.ValueOf(data)
		keys := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			k, ok := iter.Key().Interface().(string)
			if !ok {
				return data, nil
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys, nil
	}
}
