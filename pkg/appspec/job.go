package appspec

import (
	"context"
	"strings"

	"github.com/straiforos/wickedbased/pkg/manifest"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// JobKind is the deployment lifecycle phase a job runs in.
type JobKind string

// Job kinds.
const (
	JobKindPreDeploy  JobKind = "PRE_DEPLOY"
	JobKindPostDeploy JobKind = "POST_DEPLOY"
)

// JobArgs is the raw input record for NewJob.
type JobArgs struct {
	// Name is the job name.
	Name string `json:"name" validate:"required,notblank"`
	// Kind selects when the job runs.
	Kind JobKind `json:"kind" validate:"required,oneof=PRE_DEPLOY POST_DEPLOY"`
	// RunCommand is the command the job executes.
	RunCommand string `json:"runCommand" validate:"required,notblank"`
	// InstanceSizeSlug selects the instance size, when set.
	InstanceSizeSlug InstanceSize `json:"instanceSizeSlug" validate:"omitempty,oneof=basic-xxs basic-xs basic-s basic-m professional-xs professional-s professional-m professional-l"`
	// InstanceCount is the number of instances, when set.
	InstanceCount *int `json:"instanceCount" validate:"omitnil,min=1"`
	// Source is the image or repository to run.
	Source Source `json:"source" validate:"-"`
	// Envs are the initial environment variables.
	Envs []*EnvironmentVariable `json:"envs" validate:"omitempty,dive,required"`
}

// Job is a deployable unit that runs to completion around a deployment.
type Job struct {
	resource

	kind             JobKind
	runCommand       string
	instanceSizeSlug InstanceSize
	instanceCount    *int
	source           Source
}

// NewJob validates args and builds the job.
func NewJob(args JobArgs) (*Job, error) {
	if err := validation.Struct(args); err != nil {
		return nil, err
	}
	if err := validateSource(args.Source); err != nil {
		return nil, err
	}
	return &Job{
		resource: resource{
			name: strings.TrimSpace(args.Name),
			envs: newEnvList(args.Envs),
		},
		kind:             args.Kind,
		runCommand:       strings.TrimSpace(args.RunCommand),
		instanceSizeSlug: args.InstanceSizeSlug,
		instanceCount:    copyIntPtr(args.InstanceCount),
		source:           args.Source,
	}, nil
}

// Kind returns the lifecycle phase.
func (j *Job) Kind() JobKind {
	return j.kind
}

// RunCommand returns the command the job executes.
func (j *Job) RunCommand() string {
	return j.runCommand
}

// InstanceSizeSlug returns the instance size, when one is set.
func (j *Job) InstanceSizeSlug() (InstanceSize, bool) {
	if j.instanceSizeSlug == "" {
		return "", false
	}
	return j.instanceSizeSlug, true
}

// InstanceCount returns the number of instances, when one is set.
func (j *Job) InstanceCount() (int, bool) {
	if j.instanceCount == nil {
		return 0, false
	}
	return *j.instanceCount, true
}

// Source returns the run source, or nil.
func (j *Job) Source() Source {
	return j.source
}

// JSON returns the canonical projection: name, kind and runCommand first,
// set optionals, the source variant, and envs last.
func (j *Job) JSON() *manifest.Map {
	m := manifest.NewMap()
	m.Set("name", j.name)
	m.Set("kind", string(j.kind))
	m.Set("runCommand", j.runCommand)
	if j.instanceSizeSlug != "" {
		m.Set("instanceSizeSlug", string(j.instanceSizeSlug))
	}
	if j.instanceCount != nil {
		m.Set("instanceCount", *j.instanceCount)
	}
	setSourceJSON(m, j.source)
	m.Set("envs", j.envs.json())
	return m
}

// YAML renders the job manifest, resolving deferred values as a batch.
func (j *Job) YAML(ctx context.Context, opts ...manifest.Option) (string, error) {
	return manifest.Marshal(ctx, j.JSON(), resourceOpts(opts)...)
}

// YAMLSync renders the job manifest without resolution; deferred values in
// the tree fail the call.
func (j *Job) YAMLSync(opts ...manifest.Option) (string, error) {
	return manifest.MarshalSync(j.JSON(), resourceOpts(opts)...)
}
