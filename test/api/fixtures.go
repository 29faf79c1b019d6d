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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/player/pkg/cleanup"
	"github.com/unikorn-cloud/player/pkg/client"
	"github.com/unikorn-cloud/player/pkg/openapi"
	"github.com/unikorn-cloud/player/pkg/player"
)

// NewPlayerClient creates a client for the service under test that logs
// through Ginkgo.
func NewPlayerClient(config *TestConfig) *player.Client {
	c, err := player.New(config.Properties,
		client.WithLogger(GinkgoLogr),
		client.WithRequestLogging(config.LogRequests),
		client.WithResponseLogging(config.LogResponses),
	)
	Expect(err).NotTo(HaveOccurred())

	return c
}

// NewTracker creates a cleanup tracker that deletes as the supervisor once the
// current spec ends.
func NewTracker(c *player.Client, config *TestConfig) *cleanup.Tracker {
	tracker := cleanup.New(c, config.SupervisorLogin, cleanup.WithGoneStatuses(config.DeleteMissingStatus))

	DeferCleanup(func(ctx SpecContext) {
		if err := tracker.Cleanup(ctx); err != nil {
			GinkgoWriter.Printf("Warning: failed to clean up players: %v\n", err)
		}
	})

	return tracker
}

// CreatePlayerWithCleanup creates a player, expecting success, and tracks it
// for deletion.
func CreatePlayerWithCleanup(ctx context.Context, c *player.Client, tracker *cleanup.Tracker, editor string, p openapi.Player) *openapi.PlayerResponse {
	GinkgoHelper()

	response, err := c.CreatePlayer(ctx, editor, p)
	Expect(err).NotTo(HaveOccurred())

	created, err := response.Expect(http.StatusOK)
	Expect(err).NotTo(HaveOccurred())
	Expect(created.PlayerID).NotTo(BeZero())

	tracker.Track(created.PlayerID)

	GinkgoWriter.Printf("Created player with ID: %d\n", created.PlayerID)

	return created
}

// ExpectPlayerMatches checks every field that was sent, apart from the
// password, came back unchanged.
func ExpectPlayerMatches(actual *openapi.PlayerResponse, expected openapi.Player) {
	GinkgoHelper()

	Expect(actual).NotTo(BeNil())
	Expect(actual.Age).To(Equal(expected.Age))
	Expect(actual.Gender).To(Equal(expected.Gender))
	Expect(actual.Login).To(Equal(expected.Login))
	Expect(actual.Role).To(Equal(expected.Role))
	Expect(actual.ScreenName).To(Equal(expected.ScreenName))
}

// ExpectStatus checks the status and logs the body on failure.
func ExpectStatus(response client.Wrapper, status int) {
	GinkgoHelper()

	raw, err := response.Raw()
	Expect(err).NotTo(HaveOccurred())
	Expect(raw.StatusCode()).To(Equal(status), "unexpected status, body: %s", raw.String())
}

// ExpectErrorBody checks the response carries an error with a title.
func ExpectErrorBody(response client.Wrapper) {
	GinkgoHelper()

	body, err := client.ReadError[openapi.ErrorBody](response)
	Expect(err).NotTo(HaveOccurred())
	Expect(body.Title).NotTo(BeEmpty())
}

// ExpectNoSuchUser checks the response carries a no such user body.
func ExpectNoSuchUser(response client.Wrapper) {
	GinkgoHelper()

	body, err := client.ReadError[openapi.NoSuchUserBody](response)
	Expect(err).NotTo(HaveOccurred())
	Expect(body.Title).NotTo(BeEmpty())
}

// SchemaMatcher is implemented by every typed response.
type SchemaMatcher interface {
	MatchesSchema(ctx context.Context, v client.SchemaValidator) error
}

// ExpectSchema checks the response against the service description.
func ExpectSchema(ctx context.Context, response SchemaMatcher, validator client.SchemaValidator) {
	GinkgoHelper()

	Expect(response.MatchesSchema(ctx, validator)).To(Succeed())
}
