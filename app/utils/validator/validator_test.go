package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUpForm struct {
	Email    string `json:"email" validate:"required,email"`
	Nickname string `json:"nickname" validate:"required,nickname"`
	Password string `json:"password" validate:"required,password"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		form      signUpForm
		wantErr   bool
		wantField string
	}{
		{
			name: "valid form",
			form: signUpForm{
				Email:    "hong@example.com",
				Nickname: "gildong",
				Password: "secret1pw!",
			},
		},
		{
			name: "korean nickname",
			form: signUpForm{
				Email:    "hong@example.com",
				Nickname: "홍길동",
				Password: "secret1pw!",
			},
		},
		{
			name: "missing email",
			form: signUpForm{
				Nickname: "gildong",
				Password: "secret1pw!",
			},
			wantErr:   true,
			wantField: "email",
		},
		{
			name: "malformed email",
			form: signUpForm{
				Email:    "not-an-email",
				Nickname: "gildong",
				Password: "secret1pw!",
			},
			wantErr:   true,
			wantField: "email",
		},
		{
			name: "nickname too short",
			form: signUpForm{
				Email:    "hong@example.com",
				Nickname: "a",
				Password: "secret1pw!",
			},
			wantErr:   true,
			wantField: "nickname",
		},
		{
			name: "password without special character",
			form: signUpForm{
				Email:    "hong@example.com",
				Nickname: "gildong",
				Password: "secret1pw",
			},
			wantErr:   true,
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.form)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Errors, tt.wantField)
		})
	}
}

func TestValidator_ValidateVar(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateVar("hong@example.com", "required,email"))
	assert.Error(t, v.ValidateVar("", "required,email"))
	assert.Error(t, v.ValidateVar("nope", "required,email"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("hong@example.com"))
	assert.False(t, IsValidEmail("hong@"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("secret1pw!"))
	assert.False(t, IsValidPassword("short1!"))
	assert.False(t, IsValidPassword("nodigitshere!"))
	assert.False(t, IsValidPassword("nospecial123"))
}

func TestIsValidNickname(t *testing.T) {
	assert.True(t, IsValidNickname("gildong"))
	assert.True(t, IsValidNickname("홍길동"))
	assert.False(t, IsValidNickname("a"))
	assert.False(t, IsValidNickname("has space"))
	assert.False(t, IsValidNickname("seventeen-chars-x"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("6ba7b810-9dad-41d1-80b4-00c04fd430c8"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestValidationError_Message(t *testing.T) {
	v := New()
	err := v.Validate(signUpForm{Email: "bad", Nickname: "gildong", Password: "secret1pw!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
