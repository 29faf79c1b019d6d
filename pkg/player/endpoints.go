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

// Path templates, placeholders are filled from request path parameters.
const (
	CreatePath  = "/player/create"
	GetPath     = "/player/get"
	GetAllPath  = "/player/getAll"
	UpdatePath  = "/player/update/{editor}/{id}"
	DeletePath  = "/player/delete/{editor}/{id}"
	EditorParam = "editor"
	IDParam     = "id"
)

// Endpoints renders concrete request paths.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

func (e *Endpoints) CreatePlayer() string {
	return CreatePath
}

func (e *Endpoints) GetPlayer() string {
	return GetPath
}

func (e *Endpoints) GetAllPlayers() string {
	return GetAllPath
}
