// Package emitter turns a resolved plan into wiring directives on the
// container: one method call per (admin, extension), in final order.
package emitter

import (
	"context"

	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/logging"
	"github.com/arthur-debert/adminext/pkg/resolver"
	"github.com/arthur-debert/adminext/pkg/types"
)

// DefaultMethod is the method receiving each extension reference
const DefaultMethod = "addExtension"

// Emitter writes method calls to a sink
type Emitter struct {
	sink   types.MethodCallSink
	method string
}

// New creates an emitter. An empty method means DefaultMethod.
func New(sink types.MethodCallSink, method string) *Emitter {
	if method == "" {
		method = DefaultMethod
	}
	return &Emitter{sink: sink, method: method}
}

// Emit issues one call per extension, in order
func (e *Emitter) Emit(admin string, extensions []string) error {
	for _, ext := range extensions {
		if err := e.sink.AddMethodCall(admin, e.method, types.Reference{ID: ext}); err != nil {
			return errors.Wrapf(err, errors.GetErrorCode(err),
				"cannot wire extension %s to %s", ext, admin).
				WithDetails(map[string]interface{}{"admin": admin, "extension": ext})
		}
	}
	return nil
}

// EmitPlan emits every service of plan, in plan order
func (e *Emitter) EmitPlan(plan *resolver.Plan) error {
	logger := logging.GetLogger("emitter")
	for _, ap := range plan.All() {
		if err := e.Emit(ap.ID, ap.Extensions()); err != nil {
			return err
		}
	}
	logger.Debug().Int("calls", plan.Len()).Str("method", e.method).Msg("Plan emitted")
	return nil
}

// Apply resolves with r and emits the resulting plan
func (e *Emitter) Apply(ctx context.Context, r *resolver.Resolver) (*resolver.Plan, error) {
	plan, err := r.ResolveContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := e.EmitPlan(plan); err != nil {
		return nil, err
	}
	return plan, nil
}
