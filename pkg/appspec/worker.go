package appspec

import (
	"context"
	"strings"

	"github.com/straiforos/wickedbased/pkg/manifest"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// WorkerArgs is the raw input record for NewWorker.
type WorkerArgs struct {
	// Name is the worker name.
	Name string `json:"name" validate:"required,notblank"`
	// InstanceSizeSlug selects the instance size.
	InstanceSizeSlug InstanceSize `json:"instanceSizeSlug" validate:"required,oneof=basic-xxs basic-xs basic-s basic-m professional-xs professional-s professional-m professional-l"`
	// InstanceCount is the number of instances.
	InstanceCount int `json:"instanceCount" validate:"required,min=1"`
	// InternalPorts are ports reachable from other components.
	InternalPorts []int `json:"internalPorts" validate:"omitempty,dive,min=1,max=65535"`
	// RunCommand overrides the container start command.
	RunCommand *string `json:"runCommand"`
	// Volumes are the attached volume mounts.
	Volumes []*VolumeMount `json:"volumes" validate:"omitempty,dive,required"`
	// Source is the image or repository to run.
	Source Source `json:"source" validate:"-"`
	// Envs are the initial environment variables.
	Envs []*EnvironmentVariable `json:"envs" validate:"omitempty,dive,required"`
}

// Worker is a long-running deployable unit that serves no public traffic.
type Worker struct {
	resource

	instanceSizeSlug InstanceSize
	instanceCount    int
	internalPorts    []int
	runCommand       *string
	volumes          []*VolumeMount
	source           Source
}

// NewWorker validates args and builds the worker.
func NewWorker(args WorkerArgs) (*Worker, error) {
	if err := validation.Struct(args); err != nil {
		return nil, err
	}
	if err := validateSource(args.Source); err != nil {
		return nil, err
	}
	return &Worker{
		resource: resource{
			name: strings.TrimSpace(args.Name),
			envs: newEnvList(args.Envs),
		},
		instanceSizeSlug: args.InstanceSizeSlug,
		instanceCount:    args.InstanceCount,
		internalPorts:    copySlice(args.InternalPorts),
		runCommand:       copyStringPtr(args.RunCommand),
		volumes:          copySlice(args.Volumes),
		source:           args.Source,
	}, nil
}

// InstanceSizeSlug returns the instance size.
func (w *Worker) InstanceSizeSlug() InstanceSize {
	return w.instanceSizeSlug
}

// InstanceCount returns the number of instances.
func (w *Worker) InstanceCount() int {
	return w.instanceCount
}

// InternalPorts returns a copy of the internal ports.
func (w *Worker) InternalPorts() []int {
	return copySlice(w.internalPorts)
}

// RunCommand returns the start command override, when one is set.
func (w *Worker) RunCommand() (string, bool) {
	if w.runCommand == nil {
		return "", false
	}
	return *w.runCommand, true
}

// Volumes returns a copy of the attached volume mounts.
func (w *Worker) Volumes() []*VolumeMount {
	return copySlice(w.volumes)
}

// Source returns the run source, or nil.
func (w *Worker) Source() Source {
	return w.source
}

// JSON returns the canonical projection, following the same optional-field
// rules as Service.
func (w *Worker) JSON() *manifest.Map {
	m := manifest.NewMap()
	m.Set("name", w.name)
	m.Set("instanceSizeSlug", string(w.instanceSizeSlug))
	m.Set("instanceCount", w.instanceCount)
	if w.internalPorts != nil {
		ports := make([]interface{}, len(w.internalPorts))
		for i, p := range w.internalPorts {
			ports[i] = p
		}
		m.Set("internalPorts", ports)
	}
	if w.runCommand != nil {
		m.Set("runCommand", *w.runCommand)
	}
	if len(w.volumes) > 0 {
		vols := make([]interface{}, len(w.volumes))
		for i, v := range w.volumes {
			vols[i] = v.JSON()
		}
		m.Set("volumes", vols)
	}
	setSourceJSON(m, w.source)
	m.Set("envs", w.envs.json())
	return m
}

// YAML renders the worker manifest, resolving deferred values as a batch.
func (w *Worker) YAML(ctx context.Context, opts ...manifest.Option) (string, error) {
	return manifest.Marshal(ctx, w.JSON(), resourceOpts(opts)...)
}

// YAMLSync renders the worker manifest without resolution; deferred values
// in the tree fail the call.
func (w *Worker) YAMLSync(opts ...manifest.Option) (string, error) {
	return manifest.MarshalSync(w.JSON(), resourceOpts(opts)...)
}
