// Package manifest turns configuration trees into YAML manifests.
//
// A tree is built from *Map (insertion-ordered mapping), []interface{} and
// scalar leaves. Marshal runs four stages in a fixed order:
//  1. Resolve: deferred values are resolved as one ordered batch
//  2. Prune: empty branches are dropped, scalars always survive
//  3. Rename: medial-capital keys become snake_case
//  4. Render: YAML with two-space indentation, keys in insertion order
//
// MarshalSync skips resolution and fails when deferred values are present.
package manifest

import (
	"context"

	"go.uber.org/zap"

	"github.com/straiforos/wickedbased/pkg/deferred"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// options collects per-call pipeline settings.
type options struct {
	resolver  deferred.Resolver
	log       *zap.Logger
	keepEmpty []string
}

// Option customizes a single marshal call.
type Option func(*options)

// WithResolver overrides the registered deferred-value resolver for this
// call.
func WithResolver(r deferred.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithLogger sets the logger used by the pipeline stages.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithKeepEmpty names top-level keys that are restored as empty lists when
// pruning removes them.
func WithKeepEmpty(keys ...string) Option {
	return func(o *options) {
		o.keepEmpty = append(o.keepEmpty, keys...)
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Marshal renders tree as a YAML manifest. Deferred values are resolved
// first; when no resolver is available they are left in place and rendered
// as placeholders rather than failing the call.
func Marshal(ctx context.Context, tree interface{}, opts ...Option) (string, error) {
	o := buildOptions(opts)
	resolved, err := resolveTree(ctx, tree, o)
	if err != nil {
		return "", err
	}
	return finish(tree, resolved, o)
}

// MarshalSync renders tree without resolving deferred values. Any deferred
// value left in the tree is a validation failure naming its tree path.
func MarshalSync(tree interface{}, opts ...Option) (string, error) {
	o := buildOptions(opts)
	if path, val, found := findDeferred(tree); found {
		return "", validation.NewError(path, val, "deferred values cannot be rendered synchronously")
	}
	return finish(tree, tree, o)
}

// finish runs the prune, rename and render stages.
func finish(original, tree interface{}, o options) (string, error) {
	pruned := Prune(tree)
	restoreKeepEmpty(original, pruned, o.keepEmpty)
	return render(RenameKeys(stubUnresolved(pruned)))
}

// restoreKeepEmpty re-adds keep-empty keys that pruning removed. Only keys
// present in the original tree come back; they return as empty lists in
// their original role, appended after the surviving keys.
func restoreKeepEmpty(original, pruned interface{}, keys []string) {
	if len(keys) == 0 {
		return
	}
	origMap, ok := original.(*Map)
	if !ok {
		return
	}
	prunedMap, ok := pruned.(*Map)
	if !ok {
		return
	}
	for _, key := range keys {
		if _, present := origMap.Get(key); !present {
			continue
		}
		if _, kept := prunedMap.Get(key); !kept {
			prunedMap.Set(key, []interface{}{})
		}
	}
}
