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

package openapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"k8s.io/utils/ptr"
)

// ErrMissingID is returned when a body decoded as a player carries no ID,
// e.g. a no such user body answered with a 200.
var ErrMissingID = errors.New("player response has no id")

// Player is the request payload for creation and partial updates. Every
// field is optional so an update only sends what it changes.
type Player struct {
	Age        *int    `json:"age,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Login      *string `json:"login,omitempty"`
	Password   *string `json:"password,omitempty"`
	Role       *string `json:"role,omitempty"`
	ScreenName *string `json:"screenName,omitempty"`
}

func (p Player) String() string {
	return fmt.Sprintf("Player{age=%v, gender=%q, login=%q, role=%q, screenName=%q}",
		ptrString(p.Age), ptr.Deref(p.Gender, ""), ptr.Deref(p.Login, ""), ptr.Deref(p.Role, ""), ptr.Deref(p.ScreenName, ""))
}

func ptrString(v *int) string {
	if v == nil {
		return "<nil>"
	}

	return fmt.Sprint(*v)
}

// PlayerResponse is a player as stored by the service.
type PlayerResponse struct {
	PlayerID   int     `json:"id"`
	Age        *int    `json:"age,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Login      *string `json:"login,omitempty"`
	Password   *string `json:"password,omitempty"`
	Role       *string `json:"role,omitempty"`
	ScreenName *string `json:"screenName,omitempty"`
}

// UnmarshalJSON rejects bodies without the required ID.
func (p *PlayerResponse) UnmarshalJSON(data []byte) error {
	if !gjson.GetBytes(data, "id").Exists() {
		return ErrMissingID
	}

	type plain PlayerResponse

	return json.Unmarshal(data, (*plain)(p))
}

// Player returns the request view of the response, without the ID.
func (p PlayerResponse) Player() Player {
	return Player{
		Age:        p.Age,
		Gender:     p.Gender,
		Login:      p.Login,
		Password:   p.Password,
		Role:       p.Role,
		ScreenName: p.ScreenName,
	}
}

// PlayerShortResponse is the reduced projection returned when listing.
type PlayerShortResponse struct {
	ID         int    `json:"id"`
	ScreenName string `json:"screenName"`
	Gender     string `json:"gender"`
	Age        int    `json:"age"`
}

// PlayersResponse is the list container returned by getAll.
type PlayersResponse struct {
	Players []PlayerShortResponse `json:"players"`
}

// GetPlayerRequest selects a single player, a nil ID is sent as null.
type GetPlayerRequest struct {
	PlayerID *int `json:"playerId"`
}

// ErrorBody is returned for validation and authorization failures.
type ErrorBody struct {
	Title string `json:"title"`
}

// NoSuchUserBody is returned when the player does not exist.
type NoSuchUserBody struct {
	Title string `json:"title"`
}
