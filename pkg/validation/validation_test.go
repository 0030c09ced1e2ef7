package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error_MessageFormat(t *testing.T) {
	err := Error{
		Field:      "name",
		Constraint: "this field is required",
	}

	assert.Equal(t, `Validation failed for field "name": this field is required`, err.Error())
}

func TestError_Detail(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "string_value",
			err:  Error{Field: "key", Value: "  ", Constraint: "must be a non-empty string"},
			want: `ValidationError: Field "key" with value "  " - must be a non-empty string`,
		},
		{
			name: "absent_value",
			err:  Error{Field: "value", Value: nil, Constraint: "this field is required"},
			want: `ValidationError: Field "value" with value <nil> - this field is required`,
		},
		{
			name: "numeric_value",
			err:  Error{Field: "port", Value: 0, Constraint: "must be at least 1"},
			want: `ValidationError: Field "port" with value 0 - must be at least 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Detail())
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError("registry", "", "is required when registryType is DOCR")

	assert.Equal(t, "registry", err.Field)
	assert.Equal(t, "", err.Value)
	assert.Equal(t, `Validation failed for field "registry": is required when registryType is DOCR`, err.Error())
}

func TestStruct_Valid(t *testing.T) {
	in := struct {
		Name string `json:"name" validate:"required,notblank"`
		Port int    `json:"port" validate:"min=1,max=65535"`
	}{Name: "api", Port: 8080}

	assert.NoError(t, Struct(in))
}

func TestStruct_FirstFailureOnly(t *testing.T) {
	// Both fields are invalid; only the first in declaration order surfaces.
	in := struct {
		Name string `json:"name" validate:"required"`
		Port int    `json:"port" validate:"min=1"`
	}{}

	err := Struct(in)
	require.Error(t, err)

	var verr Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "this field is required", verr.Constraint)
}

func TestStruct_FieldPathUsesJSONTag(t *testing.T) {
	in := struct {
		HTTPPath string `json:"httpPath" validate:"required"`
	}{}

	err := Struct(in)
	require.Error(t, err)

	var verr Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "httpPath", verr.Field)
}

func TestStruct_Notblank(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"notblank"`
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain", "api", false},
		{"inner_whitespace", "a b", false},
		{"empty", "", true},
		{"spaces_only", "   ", true},
		{"tab_only", "\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(in{Name: tt.value})
			if tt.wantErr {
				require.Error(t, err)
				var verr Error
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "must be a non-empty string", verr.Constraint)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStruct_GithubRepo(t *testing.T) {
	type in struct {
		Repo string `json:"repo" validate:"github_repo"`
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"owner_repo", "straiforos/wickedbased", false},
		{"hyphen_underscore", "some-org/some_repo", false},
		{"digits", "org1/repo2", false},
		{"missing_slash", "wickedbased", true},
		{"extra_segment", "a/b/c", true},
		{"leading_slash", "/repo", true},
		{"trailing_slash", "owner/", true},
		{"inner_space", "ow ner/repo", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(in{Repo: tt.value})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStruct_ConstraintMessages(t *testing.T) {
	type in struct {
		Size  string `json:"size" validate:"omitempty,oneof=small large"`
		Count int    `json:"count" validate:"min=1,max=10"`
	}

	err := Struct(in{Size: "medium", Count: 5})
	require.Error(t, err)
	var verr Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "size", verr.Field)
	assert.Equal(t, "must be one of: small large", verr.Constraint)

	err = Struct(in{Size: "small", Count: 11})
	require.Error(t, err)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "count", verr.Field)
	assert.Equal(t, "must be at most 10", verr.Constraint)
}
