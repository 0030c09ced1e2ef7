package appspec

import (
	"strings"

	"github.com/straiforos/wickedbased/pkg/manifest"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// defaultVolumeSize is the size used when VolumeMountArgs.Size is omitted.
const defaultVolumeSize = "1GB"

// VolumeMountArgs is the raw input record for NewVolumeMount.
type VolumeMountArgs struct {
	// Name identifies the volume.
	Name string `json:"name" validate:"required,notblank"`
	// MountPath is the absolute mount location.
	MountPath string `json:"mountPath" validate:"required,startswith=/"`
	// Size is the volume size. Defaults to "1GB".
	Size string `json:"size" validate:"omitempty,notblank"`
}

// VolumeMount is a validated volume attachment. Immutable once constructed.
type VolumeMount struct {
	name      string
	mountPath string
	size      string
}

// NewVolumeMount validates args and builds the mount.
func NewVolumeMount(args VolumeMountArgs) (*VolumeMount, error) {
	if err := validation.Struct(args); err != nil {
		return nil, err
	}
	v := &VolumeMount{
		name:      strings.TrimSpace(args.Name),
		mountPath: args.MountPath,
		size:      strings.TrimSpace(args.Size),
	}
	if v.size == "" {
		v.size = defaultVolumeSize
	}
	return v, nil
}

// Name returns the volume name.
func (v *VolumeMount) Name() string {
	return v.name
}

// MountPath returns the absolute mount location.
func (v *VolumeMount) MountPath() string {
	return v.mountPath
}

// Size returns the volume size.
func (v *VolumeMount) Size() string {
	return v.size
}

// JSON returns the canonical projection with the size default materialized.
func (v *VolumeMount) JSON() *manifest.Map {
	m := manifest.NewMap()
	m.Set("name", v.name)
	m.Set("mountPath", v.mountPath)
	m.Set("size", v.size)
	return m
}
