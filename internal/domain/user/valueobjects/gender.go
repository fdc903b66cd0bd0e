package valueobjects

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

var validGenders = map[Gender]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}

func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !validGenders[g] {
		return "", fmt.Errorf("invalid gender: %s", s)
	}
	return g, nil
}

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	return validGenders[g]
}
