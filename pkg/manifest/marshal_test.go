package manifest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/straiforos/wickedbased/pkg/deferred"
	"github.com/straiforos/wickedbased/pkg/validation"
)

func TestMarshal_RunsAllStages(t *testing.T) {
	tree := NewMap()
	tree.Set("instanceSizeSlug", "basic-xs")
	tree.Set("httpPort", 3000)
	tree.Set("dropMe", nil)
	tree.Set("numericString", "3000")

	out, err := Marshal(context.Background(), tree)
	require.NoError(t, err)

	expected := "instance_size_slug: basic-xs\n" +
		"http_port: 3000\n" +
		"numeric_string: \"3000\"\n"
	assert.Equal(t, expected, out)
}

func TestMarshal_TwoSpaceIndent(t *testing.T) {
	inner := NewMap()
	inner.Set("registryType", "DOCKER_HUB")
	inner.Set("repository", "postgrest")

	tree := NewMap()
	tree.Set("image", inner)
	tree.Set("envs", []interface{}{
		func() *Map {
			m := NewMap()
			m.Set("key", "PORT")
			m.Set("value", "3000")
			return m
		}(),
	})

	out, err := Marshal(context.Background(), tree)
	require.NoError(t, err)

	expected := "image:\n" +
		"  registry_type: DOCKER_HUB\n" +
		"  repository: postgrest\n" +
		"envs:\n" +
		"  - key: PORT\n" +
		"    value: \"3000\"\n"
	assert.Equal(t, expected, out)
}

func TestMarshal_KeysStayInInsertionOrder(t *testing.T) {
	tree := NewMap()
	tree.Set("zulu", 1)
	tree.Set("alpha", 2)

	out, err := Marshal(context.Background(), tree)
	require.NoError(t, err)
	assert.Equal(t, "zulu: 1\nalpha: 2\n", out)
}

func TestMarshal_MultilineStringUsesLiteralBlock(t *testing.T) {
	tree := NewMap()
	tree.Set("runCommand", "npm run build\nnpm start")

	out, err := Marshal(context.Background(), tree)
	require.NoError(t, err)
	assert.Contains(t, out, "run_command: |-\n")
	assert.Contains(t, out, "  npm run build\n")
	assert.Contains(t, out, "  npm start\n")
}

func TestMarshal_NoResolver_RendersPlaceholder(t *testing.T) {
	tree := NewMap()
	tree.Set("token", deferred.NewSecret(func(ctx context.Context) (interface{}, error) {
		return "shh", nil
	}))
	tree.Set("url", deferred.NewLazy(func(ctx context.Context) (interface{}, error) {
		return "https://example.test", nil
	}))

	out, err := Marshal(context.Background(), tree)
	require.NoError(t, err)
	assert.Contains(t, out, "token: <secret>")
	assert.Contains(t, out, "url: <deferred>")
}

func TestMarshal_NoResolver_LogsSkip(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	tree := NewMap()
	tree.Set("token", deferred.NewLazy(func(ctx context.Context) (interface{}, error) {
		return nil, nil
	}))

	_, err := Marshal(context.Background(), tree, WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("No deferred resolver available, leaving values unresolved").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["count"])
}

func TestMarshal_WithResolver_Substitutes(t *testing.T) {
	dbURL := deferred.NewLazy(func(ctx context.Context) (interface{}, error) {
		return "postgres://db:5432", nil
	})

	tree := NewMap()
	tree.Set("value", dbURL)

	out, err := Marshal(context.Background(), tree, WithResolver(deferred.NewStaticResolver()))
	require.NoError(t, err)
	assert.Equal(t, "value: postgres://db:5432\n", out)
}

func TestMarshal_SharedValueResolvesOnce(t *testing.T) {
	shared := deferred.NewLazy(func(ctx context.Context) (interface{}, error) {
		return "one-result", nil
	})

	tree := NewMap()
	tree.Set("first", shared)
	tree.Set("second", []interface{}{shared})

	var batches [][]deferred.Value
	r := deferred.ResolverFunc(func(ctx context.Context, vals []deferred.Value) ([]interface{}, error) {
		batches = append(batches, vals)
		out := make([]interface{}, len(vals))
		for i, v := range vals {
			res, err := v.Await(ctx)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil
	})

	out, err := Marshal(context.Background(), tree, WithResolver(r))
	require.NoError(t, err)

	// One batch, one distinct value, both positions substituted.
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 1)
	assert.Equal(t, "first: one-result\nsecond:\n  - one-result\n", out)
}

func TestMarshal_ResolverErrorFailsTheCall(t *testing.T) {
	tree := NewMap()
	tree.Set("value", deferred.NewLazy(func(ctx context.Context) (interface{}, error) {
		return nil, nil
	}))

	r := deferred.ResolverFunc(func(ctx context.Context, vals []deferred.Value) ([]interface{}, error) {
		return nil, errors.New("backend down")
	})

	_, err := Marshal(context.Background(), tree, WithResolver(r))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolving deferred values")
}

func TestMarshal_ResolverLengthMismatchFailsTheCall(t *testing.T) {
	tree := NewMap()
	tree.Set("value", deferred.NewLazy(func(ctx context.Context) (interface{}, error) {
		return nil, nil
	}))

	r := deferred.ResolverFunc(func(ctx context.Context, vals []deferred.Value) ([]interface{}, error) {
		return nil, nil
	})

	_, err := Marshal(context.Background(), tree, WithResolver(r))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned 0 results for 1 deferred values")
}

func TestMarshal_UsesRegisteredResolver(t *testing.T) {
	t.Cleanup(func() { deferred.Register(nil) })

	val := deferred.NewLazy(func(ctx context.Context) (interface{}, error) {
		return "from-registry", nil
	})
	deferred.Register(deferred.NewStaticResolver())

	tree := NewMap()
	tree.Set("value", val)

	out, err := Marshal(context.Background(), tree)
	require.NoError(t, err)
	assert.Equal(t, "value: from-registry\n", out)
}

func TestMarshal_KeepEmptyRestoresPrunedList(t *testing.T) {
	tree := NewMap()
	tree.Set("name", "worker")
	tree.Set("envs", []interface{}{})

	out, err := Marshal(context.Background(), tree, WithKeepEmpty("envs"))
	require.NoError(t, err)
	assert.Equal(t, "name: worker\nenvs: []\n", out)
}

func TestMarshal_KeepEmptySkipsAbsentKeys(t *testing.T) {
	tree := NewMap()
	tree.Set("name", "worker")

	out, err := Marshal(context.Background(), tree, WithKeepEmpty("envs"))
	require.NoError(t, err)
	assert.Equal(t, "name: worker\n", out)
}

func TestMarshalSync_PlainTree(t *testing.T) {
	tree := NewMap()
	tree.Set("instanceCount", 1)

	out, err := MarshalSync(tree)
	require.NoError(t, err)
	assert.Equal(t, "instance_count: 1\n", out)
}

func TestMarshalSync_FailsOnDeferredValue(t *testing.T) {
	val := deferred.NewSecret(func(ctx context.Context) (interface{}, error) {
		return "shh", nil
	})

	env := NewMap()
	env.Set("key", "TOKEN")
	env.Set("value", val)

	tree := NewMap()
	tree.Set("name", "rest")
	tree.Set("envs", []interface{}{env})

	_, err := MarshalSync(tree)
	require.Error(t, err)

	var verr validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "envs.0.value", verr.Field)
	assert.Same(t, val, verr.Value)
	assert.Equal(t, "deferred values cannot be rendered synchronously", verr.Constraint)
}
