package validator

import (
	"testing"

	"booksy/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"notblank,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidator_TranslatesByJSONName(t *testing.T) {
	v := New()

	err := v.Validate(&signup{Name: "  ", Email: "not-an-email", Password: "123"})

	fieldErrs, ok := errors.AsType[*FieldErrors](err)
	require.True(t, ok)
	assert.Equal(t, "this field cannot be blank", fieldErrs.Fields["name"])
	assert.Equal(t, "email must be a valid email address", fieldErrs.Fields["email"])
	assert.Equal(t, "password must be at least 6 characters in length", fieldErrs.Fields["password"])
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signup{Name: "Ada", Email: "ada@example.com", Password: "secret1"}))
}
