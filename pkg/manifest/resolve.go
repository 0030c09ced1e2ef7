package manifest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/straiforos/wickedbased/pkg/deferred"
)

// resolveTree substitutes every deferred value in tree with its resolved
// result. Resolution happens once, as a single ordered batch, so a value
// referenced from several positions resolves exactly once and all positions
// share the result. With no resolver available the tree is returned
// untouched.
func resolveTree(ctx context.Context, tree interface{}, o options) (interface{}, error) {
	vals := collectDeferred(tree)
	if len(vals) == 0 {
		return tree, nil
	}

	r := o.resolver
	if r == nil {
		r = deferred.Registered()
	}
	if r == nil {
		o.log.Debug("No deferred resolver available, leaving values unresolved",
			zap.Int("count", len(vals)))
		return tree, nil
	}

	results, err := r.ResolveAll(ctx, vals)
	if err != nil {
		return nil, fmt.Errorf("resolving deferred values: %w", err)
	}
	if len(results) != len(vals) {
		return nil, fmt.Errorf("resolver returned %d results for %d deferred values",
			len(results), len(vals))
	}

	resolved := make(map[deferred.Value]interface{}, len(vals))
	for i, v := range vals {
		resolved[v] = results[i]
	}
	o.log.Debug("Resolved deferred values", zap.Int("count", len(vals)))

	return mapLeaves(tree, func(v interface{}) interface{} {
		if dv, ok := v.(deferred.Value); ok {
			if result, found := resolved[dv]; found {
				return result
			}
		}
		return v
	}), nil
}

// collectDeferred returns the distinct deferred values in tree in first-seen
// order.
func collectDeferred(tree interface{}) []deferred.Value {
	var out []deferred.Value
	seen := make(map[deferred.Value]bool)
	walkLeaves(tree, func(v interface{}) {
		dv, ok := v.(deferred.Value)
		if !ok || seen[dv] {
			return
		}
		seen[dv] = true
		out = append(out, dv)
	})
	return out
}
