package manifest

import (
	"strconv"

	"github.com/straiforos/wickedbased/pkg/deferred"
)

// mapLeaves rebuilds tree, applying fn to every non-container value.
// Containers are copied, never mutated.
func mapLeaves(tree interface{}, fn func(interface{}) interface{}) interface{} {
	switch t := tree.(type) {
	case *Map:
		out := NewMap()
		for _, item := range t.items {
			out.Set(item.Key, mapLeaves(item.Value, fn))
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = mapLeaves(item, fn)
		}
		return out
	default:
		return fn(t)
	}
}

// walkLeaves visits every non-container value in tree.
func walkLeaves(tree interface{}, fn func(interface{})) {
	switch t := tree.(type) {
	case *Map:
		for _, item := range t.items {
			walkLeaves(item.Value, fn)
		}
	case []interface{}:
		for _, item := range t {
			walkLeaves(item, fn)
		}
	default:
		fn(t)
	}
}

// findDeferred locates the first deferred value in tree, returning its
// dot/index path ("envs.0.value").
func findDeferred(tree interface{}) (string, deferred.Value, bool) {
	return findDeferredAt("", tree)
}

func findDeferredAt(path string, tree interface{}) (string, deferred.Value, bool) {
	switch t := tree.(type) {
	case *Map:
		for _, item := range t.items {
			if p, v, ok := findDeferredAt(childPath(path, item.Key), item.Value); ok {
				return p, v, true
			}
		}
	case []interface{}:
		for i, item := range t {
			if p, v, ok := findDeferredAt(childPath(path, strconv.Itoa(i)), item); ok {
				return p, v, true
			}
		}
	case deferred.Value:
		return path, t, true
	}
	return "", nil, false
}

func childPath(parent, segment string) string {
	if parent == "" {
		return segment
	}
	return parent + "." + segment
}
