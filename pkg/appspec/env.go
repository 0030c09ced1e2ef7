package appspec

import (
	"strings"

	"github.com/straiforos/wickedbased/pkg/deferred"
	"github.com/straiforos/wickedbased/pkg/manifest"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// EnvType classifies an environment variable's sensitivity.
type EnvType string

// Environment variable types.
const (
	EnvTypeGeneral EnvType = "GENERAL"
	EnvTypeSecret  EnvType = "SECRET"
)

// EnvScope selects the lifecycle phase a variable is visible in.
type EnvScope string

// Environment variable scopes.
const (
	EnvScopeRunTime    EnvScope = "RUN_TIME"
	EnvScopeBuildTime  EnvScope = "BUILD_TIME"
	EnvScopeDeployTime EnvScope = "DEPLOY_TIME"
)

// EnvironmentVariableArgs is the raw input record for NewEnvironmentVariable.
type EnvironmentVariableArgs struct {
	// Key is the variable name.
	Key string `json:"key" validate:"required,notblank"`
	// Value is the variable value: a string, or a deferred.Value resolved at
	// render time.
	Value interface{} `json:"value" validate:"required"`
	// Type classifies sensitivity. Defaults to GENERAL.
	Type EnvType `json:"type" validate:"omitempty,oneof=GENERAL SECRET"`
	// Scope selects the lifecycle phase. Defaults to RUN_TIME.
	Scope EnvScope `json:"scope" validate:"omitempty,oneof=RUN_TIME BUILD_TIME DEPLOY_TIME"`
}

// EnvironmentVariable is a validated key/value pair attached to a resource.
// Immutable once constructed.
type EnvironmentVariable struct {
	key   string
	value interface{}
	typ   EnvType
	scope EnvScope
}

// NewEnvironmentVariable validates args and builds the variable.
func NewEnvironmentVariable(args EnvironmentVariableArgs) (*EnvironmentVariable, error) {
	if err := validation.Struct(args); err != nil {
		return nil, err
	}
	switch args.Value.(type) {
	case string, deferred.Value:
	default:
		return nil, validation.NewError("value", args.Value, "must be a string or a deferred value")
	}

	ev := &EnvironmentVariable{
		key:   strings.TrimSpace(args.Key),
		value: args.Value,
		typ:   args.Type,
		scope: args.Scope,
	}
	if ev.typ == "" {
		ev.typ = EnvTypeGeneral
	}
	if ev.scope == "" {
		ev.scope = EnvScopeRunTime
	}
	return ev, nil
}

// Key returns the variable name.
func (e *EnvironmentVariable) Key() string {
	return e.key
}

// Value returns the raw value, which may be a deferred.Value.
func (e *EnvironmentVariable) Value() interface{} {
	return e.value
}

// Type returns the sensitivity classification.
func (e *EnvironmentVariable) Type() EnvType {
	return e.typ
}

// Scope returns the lifecycle scope.
func (e *EnvironmentVariable) Scope() EnvScope {
	return e.scope
}

// JSON returns the canonical projection with defaults materialized.
func (e *EnvironmentVariable) JSON() *manifest.Map {
	m := manifest.NewMap()
	m.Set("key", e.key)
	m.Set("value", e.value)
	m.Set("type", string(e.typ))
	m.Set("scope", string(e.scope))
	return m
}
