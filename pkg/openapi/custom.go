package openapi

import (
	"errors"
	"regexp"
	"slices"
)

var (
	ErrUnknownRole = errors.New("invalid role: must be one of supervisor, admin or user")

	ErrUnknownGender = errors.New("invalid gender: must be one of male or female")

	ErrInvalidPassword = errors.New("invalid password: must be latin letters and digits, containing at least one of each")
)

type Role string

const (
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// Roles lists every role known to the service.
func Roles() []Role {
	return []Role{RoleSupervisor, RoleAdmin, RoleUser}
}

func ParseRole(s string) (Role, error) {
	if !slices.Contains(Roles(), Role(s)) {
		return "", ErrUnknownRole
	}

	return Role(s), nil
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

func ParseGender(s string) (Gender, error) {
	if !slices.Contains(Genders(), Gender(s)) {
		return "", ErrUnknownGender
	}

	return Gender(s), nil
}

var (
	passwordCharsetRegex = regexp.MustCompile("^[a-zA-Z0-9]+$")
	passwordLetterRegex  = regexp.MustCompile("[a-zA-Z]")
	passwordDigitRegex   = regexp.MustCompile("[0-9]")
)

// CheckPasswordCharset validates the character rules of a password. Length
// is a service setting and is checked separately.
func CheckPasswordCharset(password string) error {
	if !passwordCharsetRegex.MatchString(password) ||
		!passwordLetterRegex.MatchString(password) ||
		!passwordDigitRegex.MatchString(password) {
		return ErrInvalidPassword
	}

	return nil
}
