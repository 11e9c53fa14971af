package validation_test

import (
	"testing"

	"jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type usernameInput struct {
	Username string `validate:"required,valid_username"`
}

type phoneInput struct {
	Phone string `validate:"valid_phone"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestValidUsername(t *testing.T) {
	v := newValidate()

	t.Run("Accepts handles with dots, underscores and hyphens", func(t *testing.T) {
		for _, name := range []string{"alice", "bob.smith", "dev_ops-1", "Abc"} {
			assert.NoError(t, v.Struct(usernameInput{Username: name}), name)
		}
	})

	t.Run("Rejects malformed handles", func(t *testing.T) {
		for _, name := range []string{"ab", "has space", "bad!char", "ümlaut"} {
			assert.Error(t, v.Struct(usernameInput{Username: name}), name)
		}
	})

	t.Run("Produces a readable message", func(t *testing.T) {
		err := v.Struct(usernameInput{Username: "x"})
		assert.Error(t, err)

		messages := validation.FormatValidationErrors(err)
		assert.Len(t, messages, 1)
		assert.Contains(t, messages[0], "Username")
		assert.Contains(t, messages[0], "3-150 characters")
	})
}

func TestValidPhone(t *testing.T) {
	v := newValidate()

	t.Run("Accepts digits with optional plus prefix", func(t *testing.T) {
		for _, phone := range []string{"+628123456789", "0811223344", ""} {
			assert.NoError(t, v.Struct(phoneInput{Phone: phone}), phone)
		}
	})

	t.Run("Rejects formatted or short numbers", func(t *testing.T) {
		for _, phone := range []string{"call-me", "(021) 555-0100", "12345"} {
			assert.Error(t, v.Struct(phoneInput{Phone: phone}), phone)
		}
	})
}
