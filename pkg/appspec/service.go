package appspec

import (
	"context"
	"strings"

	"github.com/straiforos/wickedbased/pkg/manifest"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// ServiceArgs is the raw input record for NewService.
type ServiceArgs struct {
	// Name is the service name.
	Name string `json:"name" validate:"required,notblank"`
	// InstanceSizeSlug selects the instance size.
	InstanceSizeSlug InstanceSize `json:"instanceSizeSlug" validate:"required,oneof=basic-xxs basic-xs basic-s basic-m professional-xs professional-s professional-m professional-l"`
	// InstanceCount is the number of instances.
	InstanceCount int `json:"instanceCount" validate:"required,min=1"`
	// HTTPPort is the public port, when the service serves HTTP.
	HTTPPort *int `json:"httpPort" validate:"omitnil,min=1,max=65535"`
	// InternalPorts are ports reachable from other components.
	InternalPorts []int `json:"internalPorts" validate:"omitempty,dive,min=1,max=65535"`
	// HealthCheck configures the readiness probe.
	HealthCheck *HealthCheck `json:"healthCheck" validate:"-"`
	// RunCommand overrides the container start command.
	RunCommand *string `json:"runCommand"`
	// Volumes are the attached volume mounts.
	Volumes []*VolumeMount `json:"volumes" validate:"omitempty,dive,required"`
	// Source is the image or repository to deploy.
	Source Source `json:"source" validate:"-"`
	// Envs are the initial environment variables.
	Envs []*EnvironmentVariable `json:"envs" validate:"omitempty,dive,required"`
}

// Service is a long-running deployable unit that can serve traffic.
type Service struct {
	resource

	instanceSizeSlug InstanceSize
	instanceCount    int
	httpPort         *int
	internalPorts    []int
	healthCheck      *HealthCheck
	runCommand       *string
	volumes          []*VolumeMount
	source           Source
}

// NewService validates args and builds the service. Nested entities are
// retained by reference, so an entity shared between resources stays one
// instance.
func NewService(args ServiceArgs) (*Service, error) {
	if err := validation.Struct(args); err != nil {
		return nil, err
	}
	if err := validateSource(args.Source); err != nil {
		return nil, err
	}
	return &Service{
		resource: resource{
			name: strings.TrimSpace(args.Name),
			envs: newEnvList(args.Envs),
		},
		instanceSizeSlug: args.InstanceSizeSlug,
		instanceCount:    args.InstanceCount,
		httpPort:         copyIntPtr(args.HTTPPort),
		internalPorts:    copySlice(args.InternalPorts),
		healthCheck:      args.HealthCheck,
		runCommand:       copyStringPtr(args.RunCommand),
		volumes:          copySlice(args.Volumes),
		source:           args.Source,
	}, nil
}

// InstanceSizeSlug returns the instance size.
func (s *Service) InstanceSizeSlug() InstanceSize {
	return s.instanceSizeSlug
}

// InstanceCount returns the number of instances.
func (s *Service) InstanceCount() int {
	return s.instanceCount
}

// HTTPPort returns the public HTTP port, when one is set.
func (s *Service) HTTPPort() (int, bool) {
	if s.httpPort == nil {
		return 0, false
	}
	return *s.httpPort, true
}

// InternalPorts returns a copy of the internal ports.
func (s *Service) InternalPorts() []int {
	return copySlice(s.internalPorts)
}

// HealthCheck returns the readiness probe, or nil.
func (s *Service) HealthCheck() *HealthCheck {
	return s.healthCheck
}

// RunCommand returns the start command override, when one is set.
func (s *Service) RunCommand() (string, bool) {
	if s.runCommand == nil {
		return "", false
	}
	return *s.runCommand, true
}

// Volumes returns a copy of the attached volume mounts.
func (s *Service) Volumes() []*VolumeMount {
	return copySlice(s.volumes)
}

// Source returns the deploy source, or nil.
func (s *Service) Source() Source {
	return s.source
}

// JSON returns the canonical projection: name first, required fields, set
// optionals only, the source variant, and envs last. The envs key is always
// present; volumes appears only when at least one mount is attached.
func (s *Service) JSON() *manifest.Map {
	m := manifest.NewMap()
	m.Set("name", s.name)
	m.Set("instanceSizeSlug", string(s.instanceSizeSlug))
	m.Set("instanceCount", s.instanceCount)
	if s.httpPort != nil {
		m.Set("httpPort", *s.httpPort)
	}
	if s.internalPorts != nil {
		ports := make([]interface{}, len(s.internalPorts))
		for i, p := range s.internalPorts {
			ports[i] = p
		}
		m.Set("internalPorts", ports)
	}
	if s.healthCheck != nil {
		m.Set("healthCheck", s.healthCheck.JSON())
	}
	if s.runCommand != nil {
		m.Set("runCommand", *s.runCommand)
	}
	if len(s.volumes) > 0 {
		vols := make([]interface{}, len(s.volumes))
		for i, v := range s.volumes {
			vols[i] = v.JSON()
		}
		m.Set("volumes", vols)
	}
	setSourceJSON(m, s.source)
	m.Set("envs", s.envs.json())
	return m
}

// YAML renders the service manifest, resolving deferred values as a batch.
func (s *Service) YAML(ctx context.Context, opts ...manifest.Option) (string, error) {
	return manifest.Marshal(ctx, s.JSON(), resourceOpts(opts)...)
}

// YAMLSync renders the service manifest without resolution; deferred values
// in the tree fail the call.
func (s *Service) YAMLSync(opts ...manifest.Option) (string, error) {
	return manifest.MarshalSync(s.JSON(), resourceOpts(opts)...)
}
