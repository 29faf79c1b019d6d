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

package client

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Configuration holds the request defaults shared by every call a client makes.
// It cannot be modified once built, so a single value may be shared between
// clients running in parallel tests.
type Configuration struct {
	servicePath string
	contentType string
	headers     map[string]string
}

// ServicePath is the base URL requests are resolved against.
func (c Configuration) ServicePath() string {
	return c.servicePath
}

// ContentType is sent with every request.
func (c Configuration) ContentType() string {
	return c.contentType
}

// Headers returns a copy of the default headers.
func (c Configuration) Headers() map[string]string {
	if c.headers == nil {
		return map[string]string{}
	}

	return maps.Clone(c.headers)
}

// Equal compares two configurations by value.
func (c Configuration) Equal(o Configuration) bool {
	return c.servicePath == o.servicePath &&
		c.contentType == o.contentType &&
		maps.Equal(c.headers, o.headers)
}

func (c Configuration) String() string {
	keys := slices.Sorted(maps.Keys(c.headers))

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+c.headers[k])
	}

	return fmt.Sprintf("Configuration{servicePath=%q, contentType=%q, headers=[%s]}", c.servicePath, c.contentType, strings.Join(pairs, ", "))
}

// ConfigurationBuilder accumulates configuration values.
type ConfigurationBuilder struct {
	servicePath string
	contentType string
	headers     map[string]string
}

// NewConfiguration returns an empty configuration builder.
func NewConfiguration() *ConfigurationBuilder {
	return &ConfigurationBuilder{}
}

func (b *ConfigurationBuilder) ServicePath(servicePath string) *ConfigurationBuilder {
	b.servicePath = servicePath
	return b
}

func (b *ConfigurationBuilder) ContentType(contentType string) *ConfigurationBuilder {
	b.contentType = contentType
	return b
}

// Headers replaces the default headers, nil is treated as empty.
func (b *ConfigurationBuilder) Headers(headers map[string]string) *ConfigurationBuilder {
	b.headers = headers
	return b
}

// Build returns the immutable configuration. No validation is performed, a bad
// service path only surfaces when a request is made.
func (b *ConfigurationBuilder) Build() Configuration {
	headers := map[string]string{}
	if b.headers != nil {
		headers = maps.Clone(b.headers)
	}

	return Configuration{
		servicePath: b.servicePath,
		contentType: b.contentType,
		headers:     headers,
	}
}
