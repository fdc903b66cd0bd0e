package valueobjects

import "fmt"

const (
	MinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	MaxPasswordLength = 72
)

// PasswordPolicy holds the length rule applied at registration.
type PasswordPolicy struct {
	MinLength int
}

func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: MinPasswordLength}
}

// NewPasswordPolicy clamps minLength into [1, MaxPasswordLength]; zero selects the default.
func NewPasswordPolicy(minLength int) PasswordPolicy {
	switch {
	case minLength == 0:
		return DefaultPasswordPolicy()
	case minLength < 1:
		minLength = 1
	case minLength > MaxPasswordLength:
		minLength = MaxPasswordLength
	}
	return PasswordPolicy{MinLength: minLength}
}

// Password is a plaintext password that passed length checks. It is only
// held long enough to be hashed.
type Password struct {
	value string
}

func (p PasswordPolicy) NewPassword(plain string) (*Password, error) {
	if len(plain) < p.MinLength {
		return nil, fmt.Errorf("password must be at least %d characters long", p.MinLength)
	}
	if len(plain) > MaxPasswordLength {
		return nil, fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	}
	return &Password{value: plain}, nil
}

// NewConfirmedPassword also checks that the confirmation matches.
func (p PasswordPolicy) NewConfirmedPassword(plain, confirm string) (*Password, error) {
	if plain != confirm {
		return nil, fmt.Errorf("passwords do not match")
	}
	return p.NewPassword(plain)
}

// NewPassword validates plain against the default policy.
func NewPassword(plain string) (*Password, error) {
	return DefaultPasswordPolicy().NewPassword(plain)
}

func (p *Password) String() string {
	return p.value
}
