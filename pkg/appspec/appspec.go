// Package appspec models deployable resources for an application platform
// manifest.
//
// The package provides:
//  1. Immutable configuration entities (EnvironmentVariable, HealthCheck,
//     DockerImage, GitHubSource, VolumeMount) validated at construction
//  2. Resource aggregates (Service, Job, Worker) that own an ordered
//     environment variable list with unique keys
//  3. JSON projections that feed the manifest pipeline for YAML rendering
//
// Construction is the only way to obtain an entity or aggregate, so every
// reachable object has passed validation.
package appspec

import (
	"github.com/straiforos/wickedbased/pkg/manifest"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// Source is the origin of a deployable unit's runnable artifact. It is a
// closed union: *DockerImage and *GitHubSource are the only variants.
type Source interface {
	// JSON returns the canonical projection of the variant.
	JSON() *manifest.Map

	isSource()
}

func (*DockerImage) isSource()  {}
func (*GitHubSource) isSource() {}

// setSourceJSON projects src into m under its variant key. The union is
// closed, so the type switch is exhaustive.
func setSourceJSON(m *manifest.Map, src Source) {
	switch s := src.(type) {
	case nil:
	case *DockerImage:
		m.Set("image", s.JSON())
	case *GitHubSource:
		m.Set("github", s.JSON())
	}
}

// validateSource rejects a nil variant pointer arriving through a non-nil
// Source interface; an absent source is valid.
func validateSource(src Source) error {
	var nilVariant bool
	switch s := src.(type) {
	case *DockerImage:
		nilVariant = s == nil
	case *GitHubSource:
		nilVariant = s == nil
	}
	if nilVariant {
		return validation.NewError("source", src, "must not be nil")
	}
	return nil
}

// Ptr returns a pointer to v. It keeps optional argument fields readable at
// call sites: HTTPPort: appspec.Ptr(3000).
func Ptr[T any](v T) *T {
	return &v
}

// intOr dereferences v, falling back to def when v is nil.
func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// copyIntPtr clones v so callers cannot mutate stored state through a
// retained pointer.
func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// copyStringPtr clones v.
func copyStringPtr(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// copySlice clones v, preserving nil-ness. Element values are shared.
func copySlice[T any](v []T) []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v))
	copy(out, v)
	return out
}
