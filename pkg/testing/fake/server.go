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

// Package fake provides an in-memory Player service for exercising clients
// and suites without a deployment.
package fake

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/player/pkg/fixtures"
	"github.com/unikorn-cloud/player/pkg/openapi"
	"github.com/unikorn-cloud/player/pkg/properties"
)

const (
	// SupervisorID is the ID of the seeded supervisor, it can never be deleted.
	SupervisorID = 1
	// AdminID is the ID of the seeded admin.
	AdminID = 2
	// UserID is the ID of the seeded user, it may edit nobody but itself.
	UserID = 3
)

// Options control the rules the service enforces.
type Options struct {
	Bounds      fixtures.Bounds
	Conventions properties.Conventions

	SupervisorLogin string
	AdminLogin      string
	UserLogin       string

	Logger logr.Logger
}

func DefaultOptions() Options {
	return Options{
		Bounds:          fixtures.DefaultBounds(),
		Conventions:     properties.DefaultConventions(),
		SupervisorLogin: "supervisor",
		AdminLogin:      "admin",
		UserLogin:       "user",
		Logger:          logr.Discard(),
	}
}

// OptionsFromProperties takes the rules from the same properties the suites
// run with so both agree.
func OptionsFromProperties(p *properties.Properties) Options {
	o := DefaultOptions()

	o.Bounds = fixtures.BoundsFromProperties(p)
	o.Conventions = p.Conventions()
	o.SupervisorLogin = p.GetOrDefault(properties.DefaultSupervisorLogin, o.SupervisorLogin)
	o.AdminLogin = p.GetOrDefault(properties.DefaultAdminLogin, o.AdminLogin)

	return o
}

// Server is safe for concurrent use.
type Server struct {
	options Options
	router  chi.Router

	lock    sync.RWMutex
	players map[int]*openapi.PlayerResponse
	nextID  int
}

func New(options Options) *Server {
	s := &Server{
		options: options,
	}

	s.Reset()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequest)

	r.Post("/player/create", s.createPlayer)
	r.Post("/player/get", s.getPlayer)
	r.Get("/player/getAll", s.getAllPlayers)
	r.Patch("/player/update/{editor}/{id}", s.updatePlayer)
	r.Delete("/player/delete/{editor}/{id}", s.deletePlayer)

	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Reset drops every player then seeds the supervisor, admin and user.
func (s *Server) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.players = map[int]*openapi.PlayerResponse{}
	s.nextID = 1

	seed := []struct {
		login string
		role  openapi.Role
		age   int
	}{
		{s.options.SupervisorLogin, openapi.RoleSupervisor, 40},
		{s.options.AdminLogin, openapi.RoleAdmin, 35},
		{s.options.UserLogin, openapi.RoleUser, 30},
	}

	for _, p := range seed {
		player := fixtures.NewPlayer().
			WithAge(p.age).
			WithGender(string(openapi.GenderMale)).
			WithLogin(p.login).
			WithPassword("password1").
			WithRole(string(p.role)).
			WithScreenName(p.login).
			Build()

		s.insert(player)
	}
}

// Len returns the number of stored players, seeded ones included.
func (s *Server) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.players)
}

// insert stores a copy of the player, the caller holds the lock.
func (s *Server) insert(player openapi.Player) *openapi.PlayerResponse {
	record := &openapi.PlayerResponse{
		PlayerID: s.nextID,
	}

	apply(record, player)

	s.players[record.PlayerID] = record
	s.nextID++

	return record
}

func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.options.Logger.V(1).Info("fake player service", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
	})
}
