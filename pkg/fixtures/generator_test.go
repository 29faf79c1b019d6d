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

package fixtures_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/player/pkg/fixtures"
	"github.com/unikorn-cloud/player/pkg/openapi"
	"github.com/unikorn-cloud/player/pkg/properties"
)

func requireValid(t *testing.T, bounds fixtures.Bounds, p openapi.Player) {
	t.Helper()

	require.NotNil(t, p.Age)
	require.GreaterOrEqual(t, *p.Age, bounds.MinAge)
	require.LessOrEqual(t, *p.Age, bounds.MaxAge)

	require.NotNil(t, p.Gender)
	_, err := openapi.ParseGender(*p.Gender)
	require.NoError(t, err)

	require.NotNil(t, p.Role)
	_, err = openapi.ParseRole(*p.Role)
	require.NoError(t, err)

	require.NotNil(t, p.Password)
	require.GreaterOrEqual(t, len(*p.Password), bounds.MinPasswordLength)
	require.LessOrEqual(t, len(*p.Password), bounds.MaxPasswordLength)
	require.NoError(t, openapi.CheckPasswordCharset(*p.Password))

	require.NotNil(t, p.Login)
	require.True(t, strings.HasPrefix(*p.Login, "testuser_"))
	require.NotNil(t, p.ScreenName)
	require.True(t, strings.HasPrefix(*p.ScreenName, "screen_"))
}

func TestValidPlayer(t *testing.T) {
	t.Parallel()

	bounds := fixtures.DefaultBounds()
	g := fixtures.NewGenerator(bounds)

	logins := map[string]bool{}

	for range 200 {
		p := g.ValidPlayer()
		requireValid(t, bounds, p)
		require.Equal(t, string(openapi.RoleUser), *p.Role)

		require.False(t, logins[*p.Login])
		logins[*p.Login] = true
	}

	admin := g.ValidPlayerWithRole(openapi.RoleAdmin)
	requireValid(t, bounds, admin)
	require.Equal(t, string(openapi.RoleAdmin), *admin.Role)
}

func TestNarrowBounds(t *testing.T) {
	t.Parallel()

	bounds := fixtures.Bounds{
		MinAge:            30,
		MaxAge:            30,
		MinPasswordLength: 2,
		MaxPasswordLength: 2,
	}

	g := fixtures.NewGenerator(bounds)

	for range 50 {
		requireValid(t, bounds, g.ValidPlayer())
	}
}

func TestSeeded(t *testing.T) {
	t.Parallel()

	a := fixtures.NewGenerator(fixtures.DefaultBounds(), fixtures.WithSeed(42))
	b := fixtures.NewGenerator(fixtures.DefaultBounds(), fixtures.WithSeed(42))

	for range 10 {
		require.Equal(t, a.Password(), b.Password())
	}
}

func TestInvalidPlayers(t *testing.T) {
	t.Parallel()

	bounds := fixtures.DefaultBounds()
	g := fixtures.NewGenerator(bounds)

	require.Equal(t, bounds.MinAge-1, *g.InvalidAgeYoung().Age)
	require.Equal(t, bounds.MaxAge+1, *g.InvalidAgeOld().Age)
	require.Equal(t, fixtures.InvalidGender, *g.InvalidGender().Gender)
	require.Equal(t, fixtures.InvalidRole, *g.InvalidRole().Role)
	require.Equal(t, fixtures.ShortPassword, *g.InvalidPasswordShort().Password)
	require.Equal(t, fixtures.LongPassword, *g.InvalidPasswordLong().Password)
	require.Equal(t, fixtures.NoDigitsPassword, *g.InvalidPasswordNoNumbers().Password)
	require.Equal(t, fixtures.NoLettersPassword, *g.InvalidPasswordNoLetters().Password)

	require.Equal(t, "taken", *g.DuplicateLogin("taken").Login)
	require.Equal(t, "taken", *g.DuplicateScreenName("taken").ScreenName)

	require.Len(t, g.Invalid(), 9)
}

func TestInvalidPasswordsFollowBounds(t *testing.T) {
	t.Parallel()

	bounds := fixtures.DefaultBounds()
	bounds.MinPasswordLength = 10
	bounds.MaxPasswordLength = 30

	g := fixtures.NewGenerator(bounds)

	require.Len(t, *g.InvalidPasswordShort().Password, 9)
	require.Len(t, *g.InvalidPasswordLong().Password, 31)

	noDigits := *g.InvalidPasswordNoNumbers().Password
	require.Len(t, noDigits, 10)
	require.NotRegexp(t, "[0-9]", noDigits)

	noLetters := *g.InvalidPasswordNoLetters().Password
	require.Len(t, noLetters, 10)
	require.NotRegexp(t, "[a-zA-Z]", noLetters)

	bounds.MinPasswordLength = 3
	bounds.MaxPasswordLength = 5

	g = fixtures.NewGenerator(bounds)

	require.Len(t, *g.InvalidPasswordNoNumbers().Password, 5)
	require.Len(t, *g.InvalidPasswordNoLetters().Password, 5)
}

func TestNullFields(t *testing.T) {
	t.Parallel()

	p := fixtures.NewGenerator(fixtures.DefaultBounds()).NullFields()

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"age":25,"gender":"male"}`, string(data))
}

func TestBoundsFromProperties(t *testing.T) {
	t.Parallel()

	p := properties.New(map[string]string{
		properties.UserMinAge:        "18",
		properties.PasswordMaxLength: "20",
	}, properties.WithLookup(func(string) (string, bool) { return "", false }))

	bounds := fixtures.BoundsFromProperties(p)
	require.Equal(t, 18, bounds.MinAge)
	require.Equal(t, fixtures.DefaultBounds().MaxAge, bounds.MaxAge)
	require.Equal(t, 20, bounds.MaxPasswordLength)
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	p := fixtures.NewPlayer().WithAge(40).Build()
	require.Equal(t, 40, *p.Age)
	require.Nil(t, p.Gender)

	q := fixtures.From(p).WithGender("female").Build()
	require.Equal(t, 40, *q.Age)
	require.Equal(t, "female", *q.Gender)
	require.Nil(t, p.Gender)
}
