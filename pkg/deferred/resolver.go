package deferred

import (
	"context"
	"sync"
)

// Resolver resolves a batch of deferred values in one call.
type Resolver interface {
	// ResolveAll resolves vals, returning results in the same order.
	ResolveAll(ctx context.Context, vals []Value) ([]interface{}, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, vals []Value) ([]interface{}, error)

// ResolveAll calls f.
func (f ResolverFunc) ResolveAll(ctx context.Context, vals []Value) ([]interface{}, error) {
	return f(ctx, vals)
}

// Default resolver registry.
var (
	registryMu sync.RWMutex
	registered Resolver
)

// Register installs r as the process-wide resolver used when a render is not
// given one explicitly. Passing nil clears the registration.
func Register(r Resolver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = r
}

// Registered returns the process-wide resolver, or nil when none is set.
func Registered() Resolver {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registered
}

// StaticResolver resolves values from a fixed mapping and falls back to each
// value's own Await. It doubles as a test backend.
type StaticResolver struct {
	values map[Value]interface{}
}

// NewStaticResolver returns an empty StaticResolver.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{values: make(map[Value]interface{})}
}

// Set fixes the resolution of v to result.
func (r *StaticResolver) Set(v Value, result interface{}) {
	r.values[v] = result
}

// ResolveAll resolves vals in order.
func (r *StaticResolver) ResolveAll(ctx context.Context, vals []Value) ([]interface{}, error) {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		if fixed, ok := r.values[v]; ok {
			out[i] = fixed
			continue
		}
		res, err := v.Await(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}
