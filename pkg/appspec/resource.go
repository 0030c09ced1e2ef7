package appspec

import (
	"fmt"

	"github.com/straiforos/wickedbased/pkg/manifest"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// envList owns a resource's ordered environment variables and their
// key-uniqueness invariant. Variables are held by reference; the list they
// arrived in is copied.
//
// Duplicate keys in the initial list are accepted as-is. Only add enforces
// uniqueness.
type envList struct {
	vars []*EnvironmentVariable
}

func newEnvList(vars []*EnvironmentVariable) envList {
	return envList{vars: copySlice(vars)}
}

// add appends v, failing when its key is already present. The list is
// unchanged on failure.
func (l *envList) add(v *EnvironmentVariable) error {
	if v == nil {
		return validation.NewError("key", nil, "environment variable is required")
	}
	for _, existing := range l.vars {
		if existing.Key() == v.Key() {
			return validation.NewError("key", v.Key(),
				fmt.Sprintf("duplicate environment variable key %q", v.Key()))
		}
	}
	l.vars = append(l.vars, v)
	return nil
}

// remove deletes the first variable named key, reporting whether it was
// present.
func (l *envList) remove(key string) bool {
	for i, v := range l.vars {
		if v.Key() == key {
			l.vars = append(l.vars[:i], l.vars[i+1:]...)
			return true
		}
	}
	return false
}

// get returns the first variable named key.
func (l *envList) get(key string) (*EnvironmentVariable, bool) {
	for _, v := range l.vars {
		if v.Key() == key {
			return v, true
		}
	}
	return nil, false
}

// list returns a snapshot of the variables in insertion order.
func (l *envList) list() []*EnvironmentVariable {
	out := make([]*EnvironmentVariable, len(l.vars))
	copy(out, l.vars)
	return out
}

// json projects the variables, always returning a non-nil list.
func (l *envList) json() []interface{} {
	out := make([]interface{}, len(l.vars))
	for i, v := range l.vars {
		out[i] = v.JSON()
	}
	return out
}

// resource bundles the fields and operations every deployable unit shares.
type resource struct {
	name string
	envs envList
}

// Name returns the resource name.
func (r *resource) Name() string {
	return r.name
}

// AddEnv appends env, failing with a validation error on a duplicate key.
func (r *resource) AddEnv(env *EnvironmentVariable) error {
	return r.envs.add(env)
}

// RemoveEnv deletes the variable named key, reporting whether it existed.
func (r *resource) RemoveEnv(key string) bool {
	return r.envs.remove(key)
}

// GetEnv returns the variable named key.
func (r *resource) GetEnv(key string) (*EnvironmentVariable, bool) {
	return r.envs.get(key)
}

// ListEnvs returns a snapshot of the variables in insertion order. Mutating
// the returned slice does not affect the resource.
func (r *resource) ListEnvs() []*EnvironmentVariable {
	return r.envs.list()
}

// resourceOpts prepends the pipeline options every resource render uses:
// the envs key survives as [] even when the resource has no variables.
func resourceOpts(opts []manifest.Option) []manifest.Option {
	return append([]manifest.Option{manifest.WithKeepEmpty("envs")}, opts...)
}
