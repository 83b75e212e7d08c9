package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/logging"
	"github.com/arthur-debert/adminext/pkg/matcher"
	"github.com/arthur-debert/adminext/pkg/rules"
	"github.com/arthur-debert/adminext/pkg/types"
	goset "github.com/deckarep/golang-set/v2"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/rs/zerolog"
)

// Resolver runs the extension resolution pass over a container
type Resolver struct {
	container types.Container
	types     types.TypeSystem
	matcher   *matcher.Matcher
	logger    zerolog.Logger

	adminTag     string
	extensionTag string
	mapParameter string
}

// universalSet is one extension tag attribute set, kept for evaluation
// against every admin
type universalSet struct {
	extension string
	attrs     *types.Attributes
	priority  int
	excludes  goset.Set[string]
}

// admin is an admin service with its resolvable types
type admin struct {
	id     string
	class  types.TypeInfo
	models []types.TypeInfo
}

// New creates a resolver reading c and introspecting types through ts
func New(c types.Container, ts types.TypeSystem, opts ...Option) *Resolver {
	r := &Resolver{
		container:    c,
		types:        ts,
		matcher:      matcher.New(ts),
		logger:       logging.GetLogger("resolver"),
		adminTag:     DefaultAdminTag,
		extensionTag: DefaultExtensionTag,
		mapParameter: DefaultExtensionMapParameter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs the pass
func (r *Resolver) Resolve() (*Plan, error) {
	return r.ResolveContext(context.Background())
}

// ResolveContext runs the pass, checking ctx between admins
func (r *Resolver) ResolveContext(ctx context.Context) (*Plan, error) {
	defer logging.LogOperationStart(r.logger, "resolve")()

	acc := newAccumulator()

	universal, err := r.collectTagged(acc)
	if err != nil {
		return nil, err
	}

	index, err := r.loadIndex()
	if err != nil {
		return nil, err
	}

	admins := r.container.FindTaggedServiceIDs(r.adminTag)
	r.logger.Debug().
		Int("admins", len(admins)).
		Int("universal_sets", len(universal)).
		Msg("Matching admins")

	for _, svc := range admins {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "resolution interrupted")
		}

		a, err := r.describeAdmin(svc)
		if err != nil {
			return nil, err
		}

		ap := acc.touch(a.id)
		ap.Class = r.serviceClass(a.id)
		ap.ModelClasses = modelNames(a.models)

		r.matchUniversal(acc, a, universal)
		if err := r.matchIndex(acc, a, index); err != nil {
			return nil, err
		}
	}

	plan := acc.drain()
	r.logger.Debug().
		Int("services", len(plan.Admins())).
		Int("assignments", plan.Len()).
		Msg("Resolution complete")
	return plan, nil
}

// collectTagged walks the extension tag. Direct targets are recorded right
// away; every attribute set is kept for evaluation against admins.
func (r *Resolver) collectTagged(acc *accumulator) ([]universalSet, error) {
	var universal []universalSet

	for _, svc := range r.container.FindTaggedServiceIDs(r.extensionTag) {
		class := r.serviceClass(svc.ID)

		for _, tag := range svc.Tags {
			attrs := tag.Clone()

			target := ""
			if v, ok := attrs.Get(types.AttrTarget); ok {
				if v != nil {
					target = fmt.Sprint(v)
				}
				attrs.Delete(types.AttrTarget)
			}

			if v, ok := attrs.Get(types.AttrGlobal); ok {
				if types.IsTruthy(v) {
					attrs.Set(types.AttrGlobal, class)
				} else {
					attrs.Delete(types.AttrGlobal)
				}
			}

			priority, err := attrs.Priority()
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidAttribute,
					"invalid priority on extension service %q", svc.ID).
					WithDetail("extension", svc.ID)
			}

			universal = append(universal, universalSet{
				extension: svc.ID,
				attrs:     attrs,
				priority:  priority,
				excludes:  attrs.StringSet(types.AttrExcludes),
			})

			if target == "" || !r.container.HasDefinition(target) {
				continue
			}
			r.logger.Trace().Str("admin", target).Str("extension", svc.ID).Msg("Direct target")
			acc.touch(target).Class = r.serviceClass(target)
			acc.record(target, svc.ID, priority, SourceTarget)
		}
	}

	return universal, nil
}

func (r *Resolver) loadIndex() (*rules.Index, error) {
	if !r.container.HasParameter(r.mapParameter) {
		r.logger.Debug().Str("parameter", r.mapParameter).Msg("No extension map parameter")
		return rules.Flatten(nil), nil
	}

	raw, err := r.container.Parameter(r.mapParameter)
	if err != nil {
		return nil, err
	}
	config, err := rules.DecodeExtensionMap(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid extension map parameter %s", r.mapParameter).
			WithDetail("parameter", r.mapParameter)
	}
	return rules.Flatten(config), nil
}

// describeAdmin resolves the model class of every admin tag. Missing or
// non-string model classes are fatal; unknown types are dropped.
func (r *Resolver) describeAdmin(svc types.TaggedService) (admin, error) {
	a := admin{id: svc.ID}
	if ti, ok := r.types.Lookup(r.serviceClass(svc.ID)); ok {
		a.class = ti
	}

	for _, tag := range svc.Tags {
		raw, ok := tag.Get(types.AttrModelClass)
		if !ok || raw == nil {
			raw = r.legacyModelClass(svc.ID)
		}
		if raw == nil {
			return a, errors.Newf(errors.ErrMissingAttribute,
				"missing tag attribute %q on service %q", types.AttrModelClass, svc.ID).
				WithDetail("admin", svc.ID)
		}

		resolved, err := r.container.ResolveValue(raw)
		if err != nil {
			return a, errors.Wrapf(err, errors.GetErrorCode(err),
				"cannot resolve %s of service %q", types.AttrModelClass, svc.ID).
				WithDetail("admin", svc.ID)
		}

		name, ok := resolved.(string)
		if !ok {
			return a, errors.Newf(errors.ErrInvalidAttribute,
				"tag attribute %q for service %q must be of type string, %T given",
				types.AttrModelClass, svc.ID, resolved).
				WithDetails(map[string]interface{}{"admin": svc.ID, "type": fmt.Sprintf("%T", resolved)})
		}

		if ti, ok := r.types.Lookup(name); ok {
			a.models = append(a.models, ti)
		}
	}
	return a, nil
}

// legacyModelClass is the second constructor argument, which older admin
// definitions use to carry the model class
func (r *Resolver) legacyModelClass(id string) any {
	args := r.container.Arguments(id)
	if len(args) < 2 {
		return nil
	}
	return args[1]
}

// matchUniversal evaluates every kept attribute set against a. The first
// matching key of a set wins; a set contributes at most once per model class.
func (r *Resolver) matchUniversal(acc *accumulator, a admin, universal []universalSet) {
	for _, model := range a.models {
		for _, set := range universal {
			if set.excludes.Contains(a.id) {
				continue
			}
			for _, key := range set.attrs.Keys() {
				kind, err := types.ParseRuleKind(key)
				if err != nil {
					continue
				}
				value, _ := set.attrs.Get(key)
				subject, isString := value.(string)
				if !isString && kind != types.KindGlobal {
					continue
				}
				if r.matcher.Matches(kind, subject, model, a.class) {
					r.logger.Trace().
						Str("admin", a.id).
						Str("extension", set.extension).
						Str("kind", key).
						Msg("Tag rule matched")
					acc.record(a.id, set.extension, set.priority, SourceTag)
					break
				}
			}
		}
	}
}

// matchIndex evaluates the flattened extension map against a, then removes
// the extensions excluding a and checks the survivors exist
func (r *Resolver) matchIndex(acc *accumulator, a admin, index *rules.Index) error {
	matched := orderedmap.NewOrderedMap[string, int]()
	merge := func(entries []rules.Entry) {
		for _, e := range entries {
			matched.Set(e.Extension, e.Priority)
		}
	}

	for _, kind := range types.AllKinds {
		if kind == types.KindExcludes {
			continue
		}
		for _, subject := range index.Subjects(kind) {
			entries := index.Entries(kind, subject)
			if kind == types.KindAdmins {
				if subject == a.id {
					merge(entries)
				}
				continue
			}
			for _, model := range a.models {
				if r.matcher.Matches(kind, subject, model, a.class) {
					merge(entries)
				}
			}
		}
	}

	excluded := goset.NewThreadUnsafeSet[string]()
	for _, e := range index.Entries(types.KindExcludes, a.id) {
		excluded.Add(e.Extension)
	}

	for el := matched.Front(); el != nil; el = el.Next() {
		if excluded.Contains(el.Key) {
			continue
		}
		if !r.container.Has(el.Key) {
			return errors.Newf(errors.ErrUnknownExtension,
				"unable to find extension service for id %s", el.Key).
				WithDetails(map[string]interface{}{"admin": a.id, "extension": el.Key})
		}
		r.logger.Trace().Str("admin", a.id).Str("extension", el.Key).Msg("Config rule matched")
		acc.record(a.id, el.Key, el.Value, SourceConfig)
	}
	return nil
}

// serviceClass returns the class of a service definition. A class written
// as a %parameter% reference that is not itself a known type is looked up
// in the parameters.
func (r *Resolver) serviceClass(id string) string {
	class, _ := r.container.Class(id)
	class = strings.Trim(class, "%")
	if _, ok := r.types.Lookup(class); ok || !r.container.HasParameter(class) {
		return class
	}
	if v, err := r.container.Parameter(class); err == nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return class
}

func modelNames(models []types.TypeInfo) []string {
	var out []string
	for _, m := range models {
		out = append(out, m.Name())
	}
	return out
}
