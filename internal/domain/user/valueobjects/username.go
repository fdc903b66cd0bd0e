package valueobjects

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

type Username struct {
	value string
}

func NewUsername(value string) (*Username, error) {
	trimmed := strings.TrimSpace(value)
	n := utf8.RuneCountInString(trimmed)

	if n < MinUsernameLength {
		return nil, fmt.Errorf("username must be at least %d characters long", MinUsernameLength)
	}
	if n > MaxUsernameLength {
		return nil, fmt.Errorf("username cannot exceed %d characters", MaxUsernameLength)
	}

	return &Username{value: trimmed}, nil
}

func (u *Username) String() string {
	return u.value
}
