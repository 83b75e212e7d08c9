package container

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/adminext/pkg/errors"
)

var (
	wholeParameter    = regexp.MustCompile(`^%([^%\s]+)%$`)
	embeddedParameter = regexp.MustCompile(`%%|%([^%\s]+)%`)
)

// ResolveValue replaces %name% references with parameter values, one level
// deep: the substituted value is not resolved again.
//
// A string that is exactly one reference takes the parameter value with its
// own type. References embedded in a longer string must name string or
// numeric parameters. %% stands for a literal percent sign. Lists and maps
// are resolved element by element.
func (b *Builder) ResolveValue(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return b.resolveString(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			r, err := b.ResolveValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			r, err := b.ResolveValue(e)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	}
	return value, nil
}

func (b *Builder) resolveString(s string) (any, error) {
	if m := wholeParameter.FindStringSubmatch(s); m != nil {
		return b.Parameter(m[1])
	}

	var resolveErr error
	out := embeddedParameter.ReplaceAllStringFunc(s, func(ref string) string {
		if ref == "%%" || resolveErr != nil {
			return "%"
		}
		name := ref[1 : len(ref)-1]
		v, err := b.Parameter(name)
		if err != nil {
			resolveErr = err
			return ""
		}
		switch t := v.(type) {
		case string:
			return t
		case int, int64, float64, bool:
			return fmt.Sprint(t)
		}
		resolveErr = errors.Newf(errors.ErrInvalidAttribute,
			"parameter '%s' of type %T cannot be embedded in string %q", name, v, s).
			WithDetail("parameter", name)
		return ""
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	return out, nil
}
