/*
Copyright 2024-2025 the Unikorn Authors.
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

package fixtures

import (
	"github.com/unikorn-cloud/player/pkg/openapi"

	"k8s.io/utils/ptr"
)

// PlayerBuilder builds player payloads, fields never set are left out of the
// request, which is what a partial update needs.
type PlayerBuilder struct {
	player openapi.Player
}

// NewPlayer creates an empty player payload builder.
func NewPlayer() *PlayerBuilder {
	return &PlayerBuilder{}
}

// From starts from an existing payload.
func From(player openapi.Player) *PlayerBuilder {
	return &PlayerBuilder{
		player: player,
	}
}

func (b *PlayerBuilder) WithAge(age int) *PlayerBuilder {
	b.player.Age = ptr.To(age)
	return b
}

func (b *PlayerBuilder) WithGender(gender string) *PlayerBuilder {
	b.player.Gender = ptr.To(gender)
	return b
}

func (b *PlayerBuilder) WithLogin(login string) *PlayerBuilder {
	b.player.Login = ptr.To(login)
	return b
}

func (b *PlayerBuilder) WithPassword(password string) *PlayerBuilder {
	b.player.Password = ptr.To(password)
	return b
}

func (b *PlayerBuilder) WithRole(role string) *PlayerBuilder {
	b.player.Role = ptr.To(role)
	return b
}

func (b *PlayerBuilder) WithScreenName(screenName string) *PlayerBuilder {
	b.player.ScreenName = ptr.To(screenName)
	return b
}

// Build returns the completed player payload.
func (b *PlayerBuilder) Build() openapi.Player {
	return b.player
}
