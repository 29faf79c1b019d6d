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

package properties

import (
	"net/http"
)

// Conventions are the status codes a deployment answers with where the
// Player service has not been consistent.
type Conventions struct {
	// DuplicateLoginStatus answers a create that reuses a login or screen name.
	DuplicateLoginStatus int
	// GetMissingStatus answers a get for an unknown player, when 200 the body
	// is still a no such user body.
	GetMissingStatus int
	// DeleteMissingStatus answers a delete for an unknown player.
	DeleteMissingStatus int
	// DeleteSuccessStatus answers a successful delete.
	DeleteSuccessStatus int
}

func DefaultConventions() Conventions {
	return Conventions{
		DuplicateLoginStatus: http.StatusConflict,
		GetMissingStatus:     http.StatusNotFound,
		DeleteMissingStatus:  http.StatusNotFound,
		DeleteSuccessStatus:  http.StatusOK,
	}
}

// Conventions reads the service conventions, unset ones take their defaults.
func (p *Properties) Conventions() Conventions {
	d := DefaultConventions()

	return Conventions{
		DuplicateLoginStatus: p.GetInt(DuplicateLoginStatus, d.DuplicateLoginStatus),
		GetMissingStatus:     p.GetInt(GetMissingStatus, d.GetMissingStatus),
		DeleteMissingStatus:  p.GetInt(DeleteMissingStatus, d.DeleteMissingStatus),
		DeleteSuccessStatus:  p.GetInt(DeleteSuccessStatus, d.DeleteSuccessStatus),
	}
}
