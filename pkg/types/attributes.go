package types

import (
	"fmt"
	"sort"
	"strings"

	goset "github.com/deckarep/golang-set/v2"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-viper/mapstructure/v2"
)

// Tag attribute names with a meaning for extension resolution
const (
	AttrTarget     = "target"
	AttrGlobal     = "global"
	AttrExcludes   = "excludes"
	AttrPriority   = "priority"
	AttrModelClass = "model_class"
)

// Attributes is one attribute set of a service tag. Keys keep their
// insertion order; the resolver tests rule kinds in that order.
type Attributes struct {
	*orderedmap.OrderedMap[string, any]
}

// NewAttributes builds an attribute set from alternating key/value pairs
func NewAttributes(pairs ...any) *Attributes {
	a := &Attributes{OrderedMap: orderedmap.NewOrderedMap[string, any]()}
	for i := 0; i+1 < len(pairs); i += 2 {
		a.Set(fmt.Sprint(pairs[i]), pairs[i+1])
	}
	return a
}

// AttributesFromMap builds an attribute set from a plain map. Go maps carry
// no order, so keys are inserted in lexicographic order.
func AttributesFromMap(m map[string]any) *Attributes {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	a := NewAttributes()
	for _, k := range keys {
		a.Set(k, m[k])
	}
	return a
}

// Clone returns an independent copy; values are shared
func (a *Attributes) Clone() *Attributes {
	return &Attributes{OrderedMap: a.OrderedMap.Copy()}
}

// Has checks whether the key is present
func (a *Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// String returns the value as a string when it is one
func (a *Attributes) String(key string) (string, bool) {
	v, ok := a.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Truthy reports whether the value under key counts as enabled
func (a *Attributes) Truthy(key string) bool {
	v, ok := a.Get(key)
	if !ok {
		return false
	}
	return IsTruthy(v)
}

// Priority returns the priority attribute, 0 when absent
func (a *Attributes) Priority() (int, error) {
	v, ok := a.Get(AttrPriority)
	if !ok || v == nil {
		return 0, nil
	}
	var p int
	if err := mapstructure.WeakDecode(v, &p); err != nil {
		return 0, fmt.Errorf("priority %v is not an integer: %w", v, err)
	}
	return p, nil
}

// StringSet interprets the value under key as a set of names. Maps
// contribute their keys, lists their elements, a string itself.
func (a *Attributes) StringSet(key string) goset.Set[string] {
	v, _ := a.Get(key)
	return ToStringSet(v)
}

// Map returns the attribute set as a plain map
func (a *Attributes) Map() map[string]any {
	m := make(map[string]any, a.Len())
	for el := a.Front(); el != nil; el = el.Next() {
		m[el.Key] = el.Value
	}
	return m
}

// IsTruthy applies the loose boolean reading used for tag attributes
func IsTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "0", "false", "no", "off":
			return false
		}
		return true
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	}
	return true
}

// ToStringSet converts map keys, list elements or a single string into a set
func ToStringSet(v any) goset.Set[string] {
	set := goset.NewThreadUnsafeSet[string]()
	switch t := v.(type) {
	case nil:
	case string:
		if t != "" {
			set.Add(t)
		}
	case []string:
		set.Append(t...)
	case []any:
		for _, e := range t {
			set.Add(fmt.Sprint(e))
		}
	case map[string]any:
		for k := range t {
			set.Add(k)
		}
	case map[string]bool:
		for k := range t {
			set.Add(k)
		}
	case map[string]string:
		for k := range t {
			set.Add(k)
		}
	}
	return set
}
