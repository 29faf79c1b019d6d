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

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/unikorn-cloud/player/pkg/fixtures"
	"github.com/unikorn-cloud/player/pkg/properties"
)

// PropertiesPathEnv names an explicit properties file, used instead of the
// search below.
const PropertiesPathEnv = "PLAYER_PROPERTIES"

type TestConfig struct {
	// BaseURL is the service under test, when empty the suites run against
	// an in-process fake.
	BaseURL string `validate:"omitempty,http_url"`

	SupervisorLogin string `validate:"required"`
	AdminLogin      string `validate:"required"`

	// SwaggerURL optionally points at the description the service publishes,
	// responses are checked against the embedded one otherwise.
	SwaggerURL string `validate:"omitempty,http_url"`

	// SpecTimeout bounds each spec through its context, the client itself
	// keeps the transport default.
	SpecTimeout time.Duration `validate:"gt=0"`
	RetryCount  int           `validate:"gte=0"`
	ThreadCount int           `validate:"gte=1"`

	MinAge            int `validate:"gte=0"`
	MaxAge            int `validate:"gtefield=MinAge"`
	MinPasswordLength int `validate:"gte=2"`
	MaxPasswordLength int `validate:"gtefield=MinPasswordLength"`

	DuplicateLoginStatus int `validate:"gte=100,lte=599"`
	GetMissingStatus     int `validate:"gte=100,lte=599"`
	DeleteMissingStatus  int `validate:"gte=100,lte=599"`
	DeleteSuccessStatus  int `validate:"gte=100,lte=599"`

	LogRequests  bool
	LogResponses bool

	// Properties the configuration was read from.
	Properties *properties.Properties `validate:"required"`
}

// LoadTestConfig loads configuration from the properties file and environment
// variables, the environment taking precedence.
// Returns an error if configuration values are missing or malformed.
func LoadTestConfig() (*TestConfig, error) {
	p, err := properties.Load(propertiesFiles())
	if err != nil {
		return nil, err
	}

	return NewTestConfig(p)
}

// NewTestConfig reads configuration from already loaded properties.
func NewTestConfig(p *properties.Properties) (*TestConfig, error) {
	specTimeout, err := time.ParseDuration(p.GetOrDefault(properties.TestTimeout, "30s"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", properties.TestTimeout, err)
	}

	bounds := fixtures.BoundsFromProperties(p)
	conventions := p.Conventions()

	config := &TestConfig{
		BaseURL:              strings.TrimSuffix(p.GetOrDefault(properties.BaseURL, ""), "/"),
		SupervisorLogin:      p.GetOrDefault(properties.DefaultSupervisorLogin, "supervisor"),
		AdminLogin:           p.GetOrDefault(properties.DefaultAdminLogin, "admin"),
		SwaggerURL:           p.GetOrDefault(properties.SwaggerURL, ""),
		SpecTimeout:          specTimeout,
		RetryCount:           p.GetInt(properties.TestRetryCount, 0),
		ThreadCount:          p.GetInt(properties.TestThreadCount, 4),
		MinAge:               bounds.MinAge,
		MaxAge:               bounds.MaxAge,
		MinPasswordLength:    bounds.MinPasswordLength,
		MaxPasswordLength:    bounds.MaxPasswordLength,
		DuplicateLoginStatus: conventions.DuplicateLoginStatus,
		GetMissingStatus:     conventions.GetMissingStatus,
		DeleteMissingStatus:  conventions.DeleteMissingStatus,
		DeleteSuccessStatus:  conventions.DeleteSuccessStatus,
		LogRequests:          p.GetBool(properties.RequestLogging, false),
		LogResponses:         p.GetBool(properties.ResponseLogging, false),
		Properties:           p,
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Bounds are the limits fixtures are generated within.
func (c *TestConfig) Bounds() fixtures.Bounds {
	return fixtures.Bounds{
		MinAge:            c.MinAge,
		MaxAge:            c.MaxAge,
		MinPasswordLength: c.MinPasswordLength,
		MaxPasswordLength: c.MaxPasswordLength,
	}
}

// Conventions are the status codes the service answers with.
func (c *TestConfig) Conventions() properties.Conventions {
	return properties.Conventions{
		DuplicateLoginStatus: c.DuplicateLoginStatus,
		GetMissingStatus:     c.GetMissingStatus,
		DeleteMissingStatus:  c.DeleteMissingStatus,
		DeleteSuccessStatus:  c.DeleteSuccessStatus,
	}
}

// propertiesFiles finds the properties file whether tests run from the
// repository root, test/api or test/api/suites.
func propertiesFiles() []string {
	if path := os.Getenv(PropertiesPathEnv); path != "" {
		return []string{path}
	}

	paths := []string{
		"test/config.properties",
		"../config.properties",
		"../../config.properties",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return []string{abs}
			}
		}
	}

	// Not found, this is OK in CI/CD where the environment is set directly.
	return nil
}

// validateRequiredFields checks that all configuration values are set and sane.
func validateRequiredFields(config *TestConfig) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}

		invalid := make([]string, len(validationErrors))

		for i, fieldError := range validationErrors {
			invalid[i] = fmt.Sprintf("%s (%s)", fieldError.Field(), fieldError.Tag())
		}

		return fmt.Errorf("invalid configuration: %s. Please set these in config.properties or as environment variables", strings.Join(invalid, ", "))
	}

	return nil
}
