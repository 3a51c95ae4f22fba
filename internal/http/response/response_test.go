package response_test

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billennium/platform-api/internal/http/response"
)

func TestError(t *testing.T) {
	resp := response.Error("product not found")
	assert.Equal(t, "product not found", resp.Detail)
}

func TestMessage(t *testing.T) {
	resp := response.Message("Message marked as read")
	assert.Equal(t, "Message marked as read", resp.Message)
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Name     string `validate:"required"`
		Password string `validate:"required,min=6"`
	}

	err := validator.New().Struct(payload{Email: "not-an-email", Password: "123"})
	require.Error(t, err)
	validateErr, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	resp := response.ValidationError(validateErr)
	assert.Contains(t, resp.Detail, "field Email must be a valid email")
	assert.Contains(t, resp.Detail, "field Name is a required field")
	assert.Contains(t, resp.Detail, "field Password is too short")
}
