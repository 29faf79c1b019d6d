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

// Package api provides integration test utilities for the Player API.
//
// # Configuration
//
// Settings are read from test/config.properties, or the file named by
// PLAYER_PROPERTIES, and any property may be overridden by an environment
// variable named after it, e.g. base.url by BASE_URL. When no base URL is
// set the suites start an in-process fake of the service so they can run
// without a deployment.
//
// # Cleanup
//
// Every player created through CreatePlayerWithCleanup is deleted when the
// spec ends, pass or fail, by the supervisor.
//
// # Service Conventions
//
// Where deployments of the service disagree on a status code, e.g. whether a
// duplicate login is a 400 or a 409, the suites assert whatever the
// contract.* properties say rather than picking one.
package api
