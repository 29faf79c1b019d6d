/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fixtures generates Player payloads, valid ones within the service's
// bounds and invalid ones that each break exactly one rule.
package fixtures

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/unikorn-cloud/player/pkg/openapi"
	"github.com/unikorn-cloud/player/pkg/properties"

	"k8s.io/utils/ptr"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"

	InvalidGender = "invalid_gender"
	InvalidRole   = "invalid_role"

	// ShortPassword is one character below the default minimum length.
	ShortPassword = "abc123"
	// LongPassword is well above the default maximum length.
	LongPassword = "abcdefghijklmnop123456789"
	// NoDigitsPassword has a valid length but no digits.
	NoDigitsPassword = "abcdefg"
	// NoLettersPassword has a valid length but no letters.
	NoLettersPassword = "1234567"
)

// Bounds are the inclusive limits the service enforces.
type Bounds struct {
	MinAge            int
	MaxAge            int
	MinPasswordLength int
	MaxPasswordLength int
}

func DefaultBounds() Bounds {
	return Bounds{
		MinAge:            17,
		MaxAge:            59,
		MinPasswordLength: 7,
		MaxPasswordLength: 15,
	}
}

// BoundsFromProperties reads the bounds, unset ones take their defaults.
func BoundsFromProperties(p *properties.Properties) Bounds {
	d := DefaultBounds()

	return Bounds{
		MinAge:            p.GetInt(properties.UserMinAge, d.MinAge),
		MaxAge:            p.GetInt(properties.UserMaxAge, d.MaxAge),
		MinPasswordLength: p.GetInt(properties.PasswordMinLength, d.MinPasswordLength),
		MaxPasswordLength: p.GetInt(properties.PasswordMaxLength, d.MaxPasswordLength),
	}
}

// Generator is safe for concurrent use.
type Generator struct {
	bounds Bounds

	lock sync.Mutex
	rand *rand.Rand
}

type Option func(*Generator)

// WithSeed makes the random fields reproducible. Logins and screen names stay
// unique per call.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rand = rand.New(rand.NewPCG(seed, seed)) //nolint:gosec
	}
}

func NewGenerator(bounds Bounds, opts ...Option) *Generator {
	g := &Generator{
		bounds: bounds,
		rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Generator) Bounds() Bounds {
	return g.bounds
}

// intN returns a value in [lo, hi].
func (g *Generator) intN(lo, hi int) int {
	g.lock.Lock()
	defer g.lock.Unlock()

	if hi <= lo {
		return lo
	}

	return lo + g.rand.IntN(hi-lo+1)
}

// UniqueID returns a short random identifier.
func UniqueID() string {
	return uuid.NewString()[:8]
}

// ValidPlayer returns a player with the user role.
func (g *Generator) ValidPlayer() openapi.Player {
	return g.ValidPlayerWithRole(openapi.RoleUser)
}

// ValidPlayerWithRole returns a player within bounds with a unique login and
// screen name.
func (g *Generator) ValidPlayerWithRole(role openapi.Role) openapi.Player {
	id := UniqueID()

	return NewPlayer().
		WithAge(g.intN(g.bounds.MinAge, g.bounds.MaxAge)).
		WithGender(g.gender()).
		WithLogin("testuser_" + id).
		WithPassword(g.Password()).
		WithRole(string(role)).
		WithScreenName("screen_" + id).
		Build()
}

func (g *Generator) gender() string {
	genders := openapi.Genders()

	return string(genders[g.intN(0, len(genders)-1)])
}

// Password returns a password within the length bounds containing at least
// one letter and one digit.
func (g *Generator) Password() string {
	length := max(g.intN(g.bounds.MinPasswordLength, g.bounds.MaxPasswordLength), 2)

	g.lock.Lock()
	defer g.lock.Unlock()

	all := letters + digits

	password := make([]byte, 0, length)
	password = append(password, letters[g.rand.IntN(len(letters))], digits[g.rand.IntN(len(digits))])

	for len(password) < length {
		password = append(password, all[g.rand.IntN(len(all))])
	}

	g.rand.Shuffle(len(password), func(i, j int) {
		password[i], password[j] = password[j], password[i]
	})

	return string(password)
}

func (g *Generator) InvalidAgeYoung() openapi.Player {
	p := g.ValidPlayer()
	p.Age = ptr.To(g.bounds.MinAge - 1)

	return p
}

func (g *Generator) InvalidAgeOld() openapi.Player {
	p := g.ValidPlayer()
	p.Age = ptr.To(g.bounds.MaxAge + 1)

	return p
}

func (g *Generator) InvalidGender() openapi.Player {
	p := g.ValidPlayer()
	p.Gender = ptr.To(InvalidGender)

	return p
}

// InvalidPasswordShort uses a password one below the minimum length.
func (g *Generator) InvalidPasswordShort() openapi.Player {
	p := g.ValidPlayer()
	p.Password = ptr.To(ShortPassword)

	if n := g.bounds.MinPasswordLength - 1; n != len(ShortPassword) && n >= 2 {
		p.Password = ptr.To(strings.Repeat("a", n-1) + "1")
	}

	return p
}

// InvalidPasswordLong uses a password above the maximum length.
func (g *Generator) InvalidPasswordLong() openapi.Player {
	p := g.ValidPlayer()
	p.Password = ptr.To(LongPassword)

	if len(LongPassword) <= g.bounds.MaxPasswordLength {
		p.Password = ptr.To(strings.Repeat("a", g.bounds.MaxPasswordLength) + "1")
	}

	return p
}

// charsetLength is a valid password length, the default minimum when the
// bounds allow it.
func (g *Generator) charsetLength() int {
	return min(max(len(NoDigitsPassword), g.bounds.MinPasswordLength), g.bounds.MaxPasswordLength)
}

// InvalidPasswordNoNumbers uses a password of valid length made of letters only.
func (g *Generator) InvalidPasswordNoNumbers() openapi.Player {
	p := g.ValidPlayer()
	p.Password = ptr.To(NoDigitsPassword)

	if n := g.charsetLength(); n != len(NoDigitsPassword) {
		p.Password = ptr.To(strings.Repeat("a", n))
	}

	return p
}

// InvalidPasswordNoLetters uses a password of valid length made of digits only.
func (g *Generator) InvalidPasswordNoLetters() openapi.Player {
	p := g.ValidPlayer()
	p.Password = ptr.To(NoLettersPassword)

	if n := g.charsetLength(); n != len(NoLettersPassword) {
		p.Password = ptr.To(strings.Repeat("1", n))
	}

	return p
}

func (g *Generator) InvalidRole() openapi.Player {
	p := g.ValidPlayer()
	p.Role = ptr.To(InvalidRole)

	return p
}

func (g *Generator) DuplicateLogin(login string) openapi.Player {
	p := g.ValidPlayer()
	p.Login = ptr.To(login)

	return p
}

func (g *Generator) DuplicateScreenName(screenName string) openapi.Player {
	p := g.ValidPlayer()
	p.ScreenName = ptr.To(screenName)

	return p
}

// NullFields returns a player with only age and gender set.
func (g *Generator) NullFields() openapi.Player {
	return NewPlayer().
		WithAge(25).
		WithGender(string(openapi.GenderMale)).
		Build()
}

// Invalid names every payload that breaks a single creation rule.
func (g *Generator) Invalid() map[string]openapi.Player {
	return map[string]openapi.Player{
		"age below minimum":       g.InvalidAgeYoung(),
		"age above maximum":       g.InvalidAgeOld(),
		"unknown gender":          g.InvalidGender(),
		"password too short":      g.InvalidPasswordShort(),
		"password too long":       g.InvalidPasswordLong(),
		"password without digit":  g.InvalidPasswordNoNumbers(),
		"password without letter": g.InvalidPasswordNoLetters(),
		"unknown role":            g.InvalidRole(),
		"missing fields":          g.NullFields(),
	}
}
