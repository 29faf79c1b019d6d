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

// Package cleanup removes the players a test created, whatever the outcome of
// the test.
package cleanup

//go:generate mockgen -source=tracker.go -destination=mock/deleter.go -package=mock

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-resty/resty/v2"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Deleter removes a player on behalf of an editor.
type Deleter interface {
	DeletePlayer(ctx context.Context, editor string, id int) (*resty.Response, error)
}

// Tracker records created player IDs, it is safe for use by parallel tests.
type Tracker struct {
	deleter Deleter
	editor  string
	gone    sets.Set[int]

	lock sync.Mutex
	ids  sets.Set[int]
}

type Option func(*Tracker)

// WithGoneStatuses adds statuses meaning the player no longer exists.
func WithGoneStatuses(statuses ...int) Option {
	return func(t *Tracker) {
		t.gone.Insert(statuses...)
	}
}

func New(deleter Deleter, editor string, opts ...Option) *Tracker {
	t := &Tracker{
		deleter: deleter,
		editor:  editor,
		gone:    sets.New(http.StatusNotFound),
		ids:     sets.New[int](),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Tracker) Track(id int) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.ids.Insert(id)
}

// Forget stops tracking a player, e.g. one a test deleted itself.
func (t *Tracker) Forget(id int) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.ids.Delete(id)
}

// IDs returns the tracked IDs in ascending order.
func (t *Tracker) IDs() []int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return sets.List(t.ids)
}

func (t *Tracker) Len() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.ids.Len()
}

// Cleanup deletes every tracked player. Players that are already gone count
// as deleted, the rest stay tracked and their failures are aggregated.
func (t *Tracker) Cleanup(ctx context.Context) error {
	log := logr.FromContextOrDiscard(ctx)

	var errs []error

	for _, id := range t.IDs() {
		response, err := t.deleter.DeletePlayer(ctx, t.editor, id)
		if err != nil {
			log.Error(err, "failed to clean up player", "id", id)

			errs = append(errs, fmt.Errorf("deleting player %d: %w", id, err))

			continue
		}

		status := response.StatusCode()

		if !t.gone.Has(status) && (status < http.StatusOK || status >= http.StatusMultipleChoices) {
			err := fmt.Errorf("deleting player %d: unexpected status %d: %s", id, status, response.String())

			log.Error(err, "failed to clean up player", "id", id)

			errs = append(errs, err)

			continue
		}

		log.V(1).Info("cleaned up player", "id", id, "status", status)

		t.Forget(id)
	}

	return utilerrors.NewAggregate(errs)
}
