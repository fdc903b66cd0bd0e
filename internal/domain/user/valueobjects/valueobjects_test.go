package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
		expected  string
	}{
		{name: "valid email", input: "test@example.com", expected: "test@example.com"},
		{name: "case preserved", input: "Test@Example.COM", expected: "Test@Example.COM"},
		{name: "trimmed", input: "  a@b.io ", expected: "a@b.io"},
		{name: "empty", input: "", wantError: true},
		{name: "missing at sign", input: "testexample.com", wantError: true},
		{name: "missing tld", input: "test@example", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, email)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, email.String())
		})
	}
}

func TestNewUsername(t *testing.T) {
	u, err := NewUsername("  ann ")
	require.NoError(t, err)
	assert.Equal(t, "ann", u.String())

	_, err = NewUsername("ab")
	assert.Error(t, err)

	_, err = NewUsername(strings.Repeat("x", MaxUsernameLength+1))
	assert.Error(t, err)
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("Female")
	require.NoError(t, err)
	assert.Equal(t, GenderFemale, g)

	_, err = ParseGender("unknown")
	assert.Error(t, err)
}

func TestNewConfirmedPassword(t *testing.T) {
	policy := DefaultPasswordPolicy()
	p, err := policy.NewConfirmedPassword("password123", "password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", p.String())

	_, err = policy.NewConfirmedPassword("password123", "password124")
	assert.EqualError(t, err, "passwords do not match")

	_, err = policy.NewConfirmedPassword("short", "short")
	assert.Error(t, err)

	_, err = NewPassword(strings.Repeat("a", MaxPasswordLength+1))
	assert.Error(t, err)
}

func TestPasswordPolicy_MinLength(t *testing.T) {
	strict := NewPasswordPolicy(12)

	_, err := strict.NewPassword("password123")
	assert.EqualError(t, err, "password must be at least 12 characters long")

	_, err = strict.NewPassword("password1234")
	assert.NoError(t, err)

	assert.Equal(t, MinPasswordLength, NewPasswordPolicy(0).MinLength)
	assert.Equal(t, 1, NewPasswordPolicy(-3).MinLength)
	assert.Equal(t, MaxPasswordLength, NewPasswordPolicy(500).MinLength)
}
