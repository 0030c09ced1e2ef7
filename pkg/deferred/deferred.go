// Package deferred models configuration values that are not known until a
// manifest is rendered.
//
// A value participates by implementing Value. The render pipeline collects
// every distinct deferred value in a tree and hands them to a Resolver as a
// single ordered batch, so backends can coalesce lookups. When no resolver
// is available the values are simply left unresolved; rendering still
// succeeds.
package deferred

import (
	"context"
	"sync"
)

// Value is a configuration value whose concrete form is produced at render
// time. Implementations must be comparable: the render pipeline dedupes
// occurrences by identity, so pointer implementations are expected.
type Value interface {
	// Secret reports whether the resolved value must be treated as sensitive.
	Secret() bool
	// Await produces the concrete value.
	Await(ctx context.Context) (interface{}, error)
}

// Lazy is a func-backed deferred value. The function runs at most once; its
// result is reused across renders.
type Lazy struct {
	fn     func(ctx context.Context) (interface{}, error)
	secret bool

	once   sync.Once
	result interface{}
	err    error
}

// NewLazy returns a deferred value backed by fn.
func NewLazy(fn func(ctx context.Context) (interface{}, error)) *Lazy {
	return &Lazy{fn: fn}
}

// NewSecret returns a deferred value backed by fn whose result is sensitive.
func NewSecret(fn func(ctx context.Context) (interface{}, error)) *Lazy {
	return &Lazy{fn: fn, secret: true}
}

// Secret reports whether the value is sensitive.
func (l *Lazy) Secret() bool {
	return l.secret
}

// Await runs the backing function once and memoizes its result.
func (l *Lazy) Await(ctx context.Context) (interface{}, error) {
	l.once.Do(func() {
		l.result, l.err = l.fn(ctx)
	})
	return l.result, l.err
}

// String keeps unresolved values from leaking into rendered output.
func (l *Lazy) String() string {
	if l.secret {
		return "<secret>"
	}
	return "<deferred>"
}
