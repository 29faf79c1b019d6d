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

package fake

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unikorn-cloud/player/pkg/openapi"

	"k8s.io/utils/ptr"
)

var (
	errEditorNotFound = errors.New("editor not found")
	errForbidden      = errors.New("editor is not permitted to perform this operation")
	errMissingField   = errors.New("field is required")
	errAge            = errors.New("age is out of range")
	errPasswordLength = errors.New("password length is out of range")
	errDuplicate      = errors.New("already in use")
	errPlayerID       = errors.New("playerId is required")
	errSupervisorRole = errors.New("invalid role: the supervisor role cannot be assigned")
)

const noSuchUser = "no such user"

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errchkjson
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, openapi.ErrorBody{Title: err.Error()})
}

func writeNoSuchUser(w http.ResponseWriter, status int) {
	writeJSON(w, status, openapi.NoSuchUserBody{Title: noSuchUser})
}

// apply merges the set fields of a player into a record.
func apply(record *openapi.PlayerResponse, player openapi.Player) {
	if player.Age != nil {
		record.Age = ptr.To(*player.Age)
	}

	if player.Gender != nil {
		record.Gender = ptr.To(*player.Gender)
	}

	if player.Login != nil {
		record.Login = ptr.To(*player.Login)
	}

	if player.Password != nil {
		record.Password = ptr.To(*player.Password)
	}

	if player.Role != nil {
		record.Role = ptr.To(*player.Role)
	}

	if player.ScreenName != nil {
		record.ScreenName = ptr.To(*player.ScreenName)
	}
}

func role(record *openapi.PlayerResponse) openapi.Role {
	return openapi.Role(ptr.Deref(record.Role, ""))
}

// editor looks a player up by login, the caller holds the lock.
func (s *Server) editor(login string) (*openapi.PlayerResponse, error) {
	for _, record := range s.players {
		if ptr.Deref(record.Login, "") == login {
			return record, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", errEditorNotFound, login)
}

// canEdit reports whether an editor may modify or delete a target. Supervisors
// may edit anyone, admins may edit users and themselves, users only themselves.
func canEdit(editor, target *openapi.PlayerResponse) bool {
	switch role(editor) {
	case openapi.RoleSupervisor:
		return true
	case openapi.RoleAdmin:
		return role(target) == openapi.RoleUser || editor.PlayerID == target.PlayerID
	}

	return editor.PlayerID == target.PlayerID
}

// validate checks the fields that are set, required ones must all be set.
func (s *Server) validate(player openapi.Player, required bool) error {
	if required {
		if player.Age == nil || player.Gender == nil || player.Login == nil ||
			player.Password == nil || player.Role == nil || player.ScreenName == nil {
			return errMissingField
		}
	}

	bounds := s.options.Bounds

	if player.Age != nil && (*player.Age < bounds.MinAge || *player.Age > bounds.MaxAge) {
		return fmt.Errorf("%w: must be between %d and %d", errAge, bounds.MinAge, bounds.MaxAge)
	}

	if player.Gender != nil {
		if _, err := openapi.ParseGender(*player.Gender); err != nil {
			return err
		}
	}

	if player.Password != nil {
		if n := len(*player.Password); n < bounds.MinPasswordLength || n > bounds.MaxPasswordLength {
			return fmt.Errorf("%w: must be between %d and %d characters", errPasswordLength, bounds.MinPasswordLength, bounds.MaxPasswordLength)
		}

		if err := openapi.CheckPasswordCharset(*player.Password); err != nil {
			return err
		}
	}

	if player.Role != nil {
		role, err := openapi.ParseRole(*player.Role)
		if err != nil {
			return err
		}

		// There is only ever one supervisor.
		if role == openapi.RoleSupervisor {
			return errSupervisorRole
		}
	}

	return nil
}

// unique checks login and screen name are not taken by another player, the
// caller holds the lock.
func (s *Server) unique(player openapi.Player, self int) error {
	for _, record := range s.players {
		if record.PlayerID == self {
			continue
		}

		if player.Login != nil && ptr.Deref(record.Login, "") == *player.Login {
			return fmt.Errorf("login %q %w", *player.Login, errDuplicate)
		}

		if player.ScreenName != nil && ptr.Deref(record.ScreenName, "") == *player.ScreenName {
			return fmt.Errorf("screen name %q %w", *player.ScreenName, errDuplicate)
		}
	}

	return nil
}

func queryInt(r *http.Request, name string) (*int, error) {
	if !r.URL.Query().Has(name) {
		return nil, nil //nolint:nilnil
	}

	i, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer: %w", name, err)
	}

	return &i, nil
}

func queryString(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}

	return ptr.To(r.URL.Query().Get(name))
}

func (s *Server) createPlayer(w http.ResponseWriter, r *http.Request) {
	age, err := queryInt(r, "age")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	player := openapi.Player{
		Age:        age,
		Gender:     queryString(r, "gender"),
		Login:      queryString(r, "login"),
		Password:   queryString(r, "password"),
		Role:       queryString(r, "role"),
		ScreenName: queryString(r, "screenName"),
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	editor, err := s.editor(r.Header.Get("editor"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	if role(editor) == openapi.RoleUser {
		writeError(w, http.StatusForbidden, errForbidden)
		return
	}

	if err := s.validate(player, true); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// Only a supervisor may create admins.
	if openapi.Role(*player.Role) == openapi.RoleAdmin && role(editor) != openapi.RoleSupervisor {
		writeError(w, http.StatusForbidden, errForbidden)
		return
	}

	if err := s.unique(player, 0); err != nil {
		writeError(w, s.options.Conventions.DuplicateLoginStatus, err)
		return
	}

	writeJSON(w, http.StatusOK, s.insert(player))
}

func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	var request openapi.GetPlayerRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if request.PlayerID == nil {
		writeError(w, http.StatusBadRequest, errPlayerID)
		return
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	record, ok := s.players[*request.PlayerID]
	if !ok {
		writeNoSuchUser(w, s.options.Conventions.GetMissingStatus)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (s *Server) getAllPlayers(w http.ResponseWriter, r *http.Request) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	ids := make([]int, 0, len(s.players))
	for id := range s.players {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	response := openapi.PlayersResponse{
		Players: make([]openapi.PlayerShortResponse, 0, len(ids)),
	}

	for _, id := range ids {
		record := s.players[id]

		response.Players = append(response.Players, openapi.PlayerShortResponse{
			ID:         record.PlayerID,
			ScreenName: ptr.Deref(record.ScreenName, ""),
			Gender:     ptr.Deref(record.Gender, ""),
			Age:        ptr.Deref(record.Age, 0),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, fmt.Errorf("id must be an integer: %w", err)
	}

	return id, nil
}

// pathEditor returns the unescaped editor login, chi yields the raw segment
// when the path carries escapes.
func pathEditor(r *http.Request) (string, error) {
	editor, err := url.PathUnescape(chi.URLParam(r, "editor"))
	if err != nil {
		return "", fmt.Errorf("editor is malformed: %w", err)
	}

	return editor, nil
}

func (s *Server) updatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var player openapi.Player

	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	login, err := pathEditor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	editor, err := s.editor(login)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	record, ok := s.players[id]
	if !ok {
		writeNoSuchUser(w, http.StatusNotFound)
		return
	}

	if !canEdit(editor, record) {
		writeError(w, http.StatusForbidden, errForbidden)
		return
	}

	if err := s.validate(player, false); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if player.Role != nil && openapi.Role(*player.Role) != role(record) && role(editor) != openapi.RoleSupervisor {
		writeError(w, http.StatusForbidden, errForbidden)
		return
	}

	if err := s.unique(player, id); err != nil {
		writeError(w, s.options.Conventions.DuplicateLoginStatus, err)
		return
	}

	apply(record, player)

	writeJSON(w, http.StatusOK, record)
}

func (s *Server) deletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	login, err := pathEditor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	editor, err := s.editor(login)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	record, ok := s.players[id]
	if !ok {
		writeNoSuchUser(w, s.options.Conventions.DeleteMissingStatus)
		return
	}

	if role(record) == openapi.RoleSupervisor || !canEdit(editor, record) {
		writeError(w, http.StatusForbidden, errForbidden)
		return
	}

	delete(s.players, id)

	w.WriteHeader(s.options.Conventions.DeleteSuccessStatus)
}
