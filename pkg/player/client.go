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

package player

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/unikorn-cloud/player/pkg/client"
	"github.com/unikorn-cloud/player/pkg/openapi"
	"github.com/unikorn-cloud/player/pkg/properties"
)

var ErrBaseURLNotSet = errors.New("base URL not set")

const contentTypeJSON = "application/json"

// DefaultConfiguration targets the service at base.url with JSON payloads.
func DefaultConfiguration(p *properties.Properties) (client.Configuration, error) {
	baseURL, ok := p.Get(properties.BaseURL)
	if !ok || baseURL == "" {
		return client.Configuration{}, fmt.Errorf("%w: set %s or %s", ErrBaseURLNotSet, properties.BaseURL, properties.EnvName(properties.BaseURL))
	}

	config := client.NewConfiguration().
		ServicePath(baseURL).
		ContentType(contentTypeJSON).
		Headers(map[string]string{
			"Accept": contentTypeJSON,
		}).
		Build()

	return config, nil
}

// Client performs Player operations. It does no validation of its own, every
// rule is the service's to enforce and is observed through the response.
type Client struct {
	client    *client.Client
	endpoints *Endpoints
}

// New returns a client configured from properties.
func New(p *properties.Properties, opts ...client.Option) (*Client, error) {
	config, err := DefaultConfiguration(p)
	if err != nil {
		return nil, err
	}

	return NewWithConfiguration(config, opts...), nil
}

func NewWithConfiguration(config client.Configuration, opts ...client.Option) *Client {
	return &Client{
		client:    client.New(config, opts...),
		endpoints: NewEndpoints(),
	}
}

// Configuration returns the configuration requests are made with.
func (c *Client) Configuration() client.Configuration {
	return c.client.Configuration()
}

// CreatePlayer creates a player on behalf of an editor, the player is sent as
// query parameters with unset fields left out.
func (c *Client) CreatePlayer(ctx context.Context, editor string, player openapi.Player) (*client.Response[openapi.PlayerResponse], error) {
	return client.Do[openapi.PlayerResponse](ctx, c.client, http.MethodPost, c.endpoints.CreatePlayer(), client.RequestOptions{
		Headers: map[string]any{
			EditorParam: editor,
		},
		QueryParams: map[string]any{
			"age":        player.Age,
			"gender":     player.Gender,
			"login":      player.Login,
			"password":   player.Password,
			"role":       player.Role,
			"screenName": player.ScreenName,
		},
	})
}

// GetPlayer fetches a player, a nil ID is sent as null.
func (c *Client) GetPlayer(ctx context.Context, id *int) (*client.Response[openapi.PlayerResponse], error) {
	return client.Post[openapi.PlayerResponse](ctx, c.client, c.endpoints.GetPlayer(), &openapi.GetPlayerRequest{
		PlayerID: id,
	})
}

func (c *Client) GetAllPlayers(ctx context.Context) (*client.Response[openapi.PlayersResponse], error) {
	return client.Get[openapi.PlayersResponse](ctx, c.client, c.endpoints.GetAllPlayers())
}

// UpdatePlayer sends only the fields that are set.
func (c *Client) UpdatePlayer(ctx context.Context, editor string, id int, player openapi.Player) (*client.Response[openapi.PlayerResponse], error) {
	return client.Patch[openapi.PlayerResponse](ctx, c.client, UpdatePath, pathParams(editor, id), &player)
}

// DeletePlayer returns the raw response as deletions carry no body.
func (c *Client) DeletePlayer(ctx context.Context, editor string, id int) (*resty.Response, error) {
	return c.client.Delete(ctx, DeletePath, pathParams(editor, id), nil)
}

func pathParams(editor string, id int) map[string]any {
	return map[string]any{
		EditorParam: editor,
		IDParam:     id,
	}
}
