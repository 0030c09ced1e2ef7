package appspec

import (
	"strings"

	"github.com/straiforos/wickedbased/pkg/manifest"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// RegistryType identifies a container registry provider.
type RegistryType string

// Registry types.
const (
	RegistryDockerHub RegistryType = "DOCKER_HUB"
	RegistryDOCR      RegistryType = "DOCR"
	RegistryGHCR      RegistryType = "GHCR"
)

// DockerImageArgs is the raw input record for NewDockerImage.
type DockerImageArgs struct {
	// RegistryType identifies the registry provider.
	RegistryType RegistryType `json:"registryType" validate:"required,oneof=DOCKER_HUB DOCR GHCR"`
	// Registry is the registry name. Required when RegistryType is DOCR.
	Registry string `json:"registry" validate:"omitempty,notblank"`
	// Repository is the image repository.
	Repository string `json:"repository" validate:"required,notblank"`
	// Tag is the image tag.
	Tag string `json:"tag" validate:"required,notblank"`
}

// DockerImage is a validated container image reference. Immutable once
// constructed.
type DockerImage struct {
	registryType RegistryType
	registry     string
	repository   string
	tag          string
}

// NewDockerImage validates args and builds the reference. The DOCR registry
// requirement is checked after the per-field rules pass.
func NewDockerImage(args DockerImageArgs) (*DockerImage, error) {
	if err := validation.Struct(args); err != nil {
		return nil, err
	}
	registry := strings.TrimSpace(args.Registry)
	if args.RegistryType == RegistryDOCR && registry == "" {
		return nil, validation.NewError("registry", args.Registry, "is required when registryType is DOCR")
	}
	return &DockerImage{
		registryType: args.RegistryType,
		registry:     registry,
		repository:   strings.TrimSpace(args.Repository),
		tag:          strings.TrimSpace(args.Tag),
	}, nil
}

// RegistryType returns the registry provider.
func (i *DockerImage) RegistryType() RegistryType {
	return i.registryType
}

// Registry returns the registry name, or "" when unset.
func (i *DockerImage) Registry() string {
	return i.registry
}

// Repository returns the image repository.
func (i *DockerImage) Repository() string {
	return i.repository
}

// Tag returns the image tag.
func (i *DockerImage) Tag() string {
	return i.tag
}

// JSON returns the canonical projection. The registry key is omitted
// entirely when no registry is set.
func (i *DockerImage) JSON() *manifest.Map {
	m := manifest.NewMap()
	m.Set("registryType", string(i.registryType))
	if i.registry != "" {
		m.Set("registry", i.registry)
	}
	m.Set("repository", i.repository)
	m.Set("tag", i.tag)
	return m
}
