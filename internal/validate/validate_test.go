package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" validate:"required,max=5"`
	Email string   `json:"email" validate:"omitempty,email"`
	Tags  []string `json:"tags" validate:"max=2"`
}

func TestStruct(t *testing.T) {
	v := New()

	require.NoError(t, v.Struct(sample{Name: "Jane"}))

	err := v.Struct(sample{Name: "", Email: "nope", Tags: []string{"a", "b", "c"}})
	require.Error(t, err)
	assert.Equal(t, "name is required; email must be a valid email address; tags must have at most 2 items", err.Error())

	err = v.Struct(sample{Name: "Jonathan"})
	assert.EqualError(t, err, "name must be at most 5 characters")
}

func TestStruct_ReportsFailedRules(t *testing.T) {
	err := New().Struct(sample{Email: "nope"})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Failed("required"))
	assert.True(t, verr.Failed("email"))
	assert.False(t, verr.Failed("max"))
	assert.Equal(t, FieldError{Field: "name", Tag: "required", Message: "name is required"}, verr.Fields[0])
}
