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

// Package properties provides the key/value settings shared by the clients,
// fixtures and suites. A Properties is built once and passed to whatever
// needs it.
package properties

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/joho/godotenv"
)

var ErrNotFound = errors.New("property not found")

// LookupFunc resolves an override for a property, see EnvName.
type LookupFunc func(name string) (string, bool)

type Properties struct {
	lock   sync.RWMutex
	values map[string]string
	lookup LookupFunc
	log    logr.Logger
}

type Option func(*Properties)

// WithLookup replaces the environment as the source of overrides.
func WithLookup(lookup LookupFunc) Option {
	return func(p *Properties) {
		p.lookup = lookup
	}
}

// WithLogger reports malformed values.
func WithLogger(log logr.Logger) Option {
	return func(p *Properties) {
		p.log = log
	}
}

// New creates properties from a map, the map is copied.
func New(values map[string]string, opts ...Option) *Properties {
	p := &Properties{
		values: maps.Clone(values),
		lookup: os.LookupEnv,
		log:    logr.Discard(),
	}

	if p.values == nil {
		p.values = map[string]string{}
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Load reads properties files in order, later files override earlier ones.
func Load(paths []string, opts ...Option) (*Properties, error) {
	values := map[string]string{}

	for _, path := range paths {
		file, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading properties file %s: %w", path, err)
		}

		maps.Copy(values, file)
	}

	return New(values, opts...), nil
}

// Parse reads properties from a stream.
func Parse(r io.Reader, opts ...Option) (*Properties, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing properties: %w", err)
	}

	return New(values, opts...), nil
}

// EnvName is the environment variable that overrides a property, e.g.
// base.url is overridden by BASE_URL.
func EnvName(key string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// Get returns a property, an environment override takes precedence over the
// stored value.
func (p *Properties) Get(key string) (string, bool) {
	if strings.TrimSpace(key) == "" {
		return "", false
	}

	if value, ok := p.lookup(EnvName(key)); ok {
		return value, true
	}

	p.lock.RLock()
	defer p.lock.RUnlock()

	value, ok := p.values[key]

	return value, ok
}

func (p *Properties) GetOrDefault(key, def string) string {
	if value, ok := p.Get(key); ok {
		return value
	}

	return def
}

// Int returns a property as an integer.
func (p *Properties) Int(key string) (int, error) {
	value, ok := p.Get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("property %s is not a valid integer: %w", key, err)
	}

	return i, nil
}

// GetInt returns a property as an integer, falling back to the default when
// it is missing or malformed.
func (p *Properties) GetInt(key string, def int) int {
	i, err := p.Int(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			p.log.Info("ignoring malformed property", "key", key, "error", err.Error())
		}

		return def
	}

	return i
}

// GetBool returns a property as a boolean, falling back to the default when it
// is missing or malformed.
func (p *Properties) GetBool(key string, def bool) bool {
	value, ok := p.Get(key)
	if !ok {
		return def
	}

	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		p.log.Info("ignoring malformed property", "key", key, "error", err.Error())

		return def
	}

	return b
}

// Set stores a property. Environment overrides still take precedence.
func (p *Properties) Set(key, value string) {
	if strings.TrimSpace(key) == "" {
		return
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.values[key] = value
}

// Keys lists the stored keys in order.
func (p *Properties) Keys() []string {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return slices.Sorted(maps.Keys(p.values))
}
