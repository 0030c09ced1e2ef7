package appspec

import (
	"strings"

	"github.com/straiforos/wickedbased/pkg/manifest"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// Health check defaults.
const (
	defaultInitialDelaySeconds = 0
	defaultPeriodSeconds       = 10
	defaultTimeoutSeconds      = 1
	defaultSuccessThreshold    = 1
	defaultFailureThreshold    = 3
)

// HealthCheckArgs is the raw input record for NewHealthCheck. The numeric
// pointer fields distinguish "omitted, use the default" (nil) from an
// explicit value, which is validated even when out of range.
type HealthCheckArgs struct {
	// HTTPPath is the probe path.
	HTTPPath string `json:"httpPath" validate:"required,notblank"`
	// Port is the probe port.
	Port int `json:"port" validate:"required,min=1,max=65535"`
	// InitialDelaySeconds delays the first probe. Defaults to 0.
	InitialDelaySeconds *int `json:"initialDelaySeconds" validate:"omitnil,min=0"`
	// PeriodSeconds is the probe interval. Defaults to 10.
	PeriodSeconds *int `json:"periodSeconds" validate:"omitnil,min=1"`
	// TimeoutSeconds bounds each probe. Defaults to 1.
	TimeoutSeconds *int `json:"timeoutSeconds" validate:"omitnil,min=1"`
	// SuccessThreshold is the pass count before healthy. Defaults to 1.
	SuccessThreshold *int `json:"successThreshold" validate:"omitnil,min=1"`
	// FailureThreshold is the fail count before unhealthy. Defaults to 3.
	FailureThreshold *int `json:"failureThreshold" validate:"omitnil,min=1"`
}

// HealthCheck is a validated readiness probe. Immutable once constructed.
type HealthCheck struct {
	httpPath            string
	port                int
	initialDelaySeconds int
	periodSeconds       int
	timeoutSeconds      int
	successThreshold    int
	failureThreshold    int
}

// NewHealthCheck validates args and builds the probe, filling defaults for
// omitted numeric fields.
func NewHealthCheck(args HealthCheckArgs) (*HealthCheck, error) {
	if err := validation.Struct(args); err != nil {
		return nil, err
	}
	return &HealthCheck{
		httpPath:            strings.TrimSpace(args.HTTPPath),
		port:                args.Port,
		initialDelaySeconds: intOr(args.InitialDelaySeconds, defaultInitialDelaySeconds),
		periodSeconds:       intOr(args.PeriodSeconds, defaultPeriodSeconds),
		timeoutSeconds:      intOr(args.TimeoutSeconds, defaultTimeoutSeconds),
		successThreshold:    intOr(args.SuccessThreshold, defaultSuccessThreshold),
		failureThreshold:    intOr(args.FailureThreshold, defaultFailureThreshold),
	}, nil
}

// HTTPPath returns the probe path.
func (h *HealthCheck) HTTPPath() string {
	return h.httpPath
}

// Port returns the probe port.
func (h *HealthCheck) Port() int {
	return h.port
}

// InitialDelaySeconds returns the delay before the first probe.
func (h *HealthCheck) InitialDelaySeconds() int {
	return h.initialDelaySeconds
}

// PeriodSeconds returns the probe interval.
func (h *HealthCheck) PeriodSeconds() int {
	return h.periodSeconds
}

// TimeoutSeconds returns the per-probe timeout.
func (h *HealthCheck) TimeoutSeconds() int {
	return h.timeoutSeconds
}

// SuccessThreshold returns the pass count before healthy.
func (h *HealthCheck) SuccessThreshold() int {
	return h.successThreshold
}

// FailureThreshold returns the fail count before unhealthy.
func (h *HealthCheck) FailureThreshold() int {
	return h.failureThreshold
}

// JSON returns the canonical projection with defaults materialized.
func (h *HealthCheck) JSON() *manifest.Map {
	m := manifest.NewMap()
	m.Set("httpPath", h.httpPath)
	m.Set("port", h.port)
	m.Set("initialDelaySeconds", h.initialDelaySeconds)
	m.Set("periodSeconds", h.periodSeconds)
	m.Set("timeoutSeconds", h.timeoutSeconds)
	m.Set("successThreshold", h.successThreshold)
	m.Set("failureThreshold", h.failureThreshold)
	return m
}
