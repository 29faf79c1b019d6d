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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/player/pkg/fixtures"
	"github.com/unikorn-cloud/player/pkg/openapi"
	"github.com/unikorn-cloud/player/test/api"
)

var _ = Describe("Player Creation", func() {
	Context("When creating a player with valid data", func() {
		Describe("Given the supervisor as editor", func() {
			It("should return the created player", func() {
				p := generator.ValidPlayer()

				response, err := client.CreatePlayer(ctx, config.SupervisorLogin, p)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectSchema(ctx, response, validator)

				created, err := response.Expect(http.StatusOK)
				Expect(err).NotTo(HaveOccurred())
				tracker.Track(created.PlayerID)

				api.ExpectPlayerMatches(created, p)
			})

			It("should be retrievable by ID", func() {
				p := generator.ValidPlayer()
				created := api.CreatePlayerWithCleanup(ctx, client, tracker, config.SupervisorLogin, p)

				response, err := client.GetPlayer(ctx, &created.PlayerID)
				Expect(err).NotTo(HaveOccurred())

				fetched, err := response.Expect(http.StatusOK)
				Expect(err).NotTo(HaveOccurred())
				Expect(fetched.PlayerID).To(Equal(created.PlayerID))
				api.ExpectPlayerMatches(fetched, p)
			})
		})

		Describe("Given the admin as editor", func() {
			It("should create a player", func() {
				p := generator.ValidPlayer()
				created := api.CreatePlayerWithCleanup(ctx, client, tracker, config.AdminLogin, p)

				response, err := client.GetPlayer(ctx, &created.PlayerID)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(response, http.StatusOK)
			})
		})

		DescribeTable("Given a role",
			func(role openapi.Role) {
				p := generator.ValidPlayerWithRole(role)
				created := api.CreatePlayerWithCleanup(ctx, client, tracker, config.SupervisorLogin, p)

				Expect(created.Role).To(HaveValue(Equal(string(role))))
			},
			Entry("admin", openapi.RoleAdmin),
			Entry("user", openapi.RoleUser),
		)
	})

	Context("When creating a player with invalid data", func() {
		DescribeTable("Given a payload breaking a rule",
			func(invalid func(*fixtures.Generator) openapi.Player) {
				response, err := client.CreatePlayer(ctx, config.SupervisorLogin, invalid(generator))
				Expect(err).NotTo(HaveOccurred())

				// Track anything created by mistake so it is cleaned up.
				if id := response.Field("id"); id.Exists() {
					tracker.Track(int(id.Int()))
				}

				api.ExpectStatus(response, http.StatusBadRequest)
				api.ExpectErrorBody(response)
				api.ExpectSchema(ctx, response, validator)
			},
			Entry("age below minimum", (*fixtures.Generator).InvalidAgeYoung),
			Entry("age above maximum", (*fixtures.Generator).InvalidAgeOld),
			Entry("unknown gender", (*fixtures.Generator).InvalidGender),
			Entry("password too short", (*fixtures.Generator).InvalidPasswordShort),
			Entry("password too long", (*fixtures.Generator).InvalidPasswordLong),
			Entry("password without digits", (*fixtures.Generator).InvalidPasswordNoNumbers),
			Entry("password without letters", (*fixtures.Generator).InvalidPasswordNoLetters),
			Entry("unknown role", (*fixtures.Generator).InvalidRole),
			Entry("missing required fields", (*fixtures.Generator).NullFields),
		)
	})

	Context("When the editor is not permitted", func() {
		It("should reject an editor that does not exist", func() {
			response, err := client.CreatePlayer(ctx, nonExistentEditor, generator.ValidPlayer())
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, http.StatusNotFound)
		})

		It("should forbid a user creating other users", func() {
			response, err := client.CreatePlayer(ctx, userEditor, generator.ValidPlayer())
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, http.StatusForbidden)
			api.ExpectErrorBody(response)
		})
	})

	Context("When the player is not unique", func() {
		var existing *openapi.PlayerResponse

		BeforeEach(func() {
			existing = api.CreatePlayerWithCleanup(ctx, client, tracker, config.SupervisorLogin, generator.ValidPlayer())
		})

		It("should reject a duplicate login", func() {
			response, err := client.CreatePlayer(ctx, config.SupervisorLogin, generator.DuplicateLogin(*existing.Login))
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, config.DuplicateLoginStatus)
			api.ExpectErrorBody(response)
			Expect(response.Field("id").Exists()).To(BeFalse())
		})

		It("should reject a duplicate screen name", func() {
			response, err := client.CreatePlayer(ctx, config.SupervisorLogin, generator.DuplicateScreenName(*existing.ScreenName))
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, config.DuplicateLoginStatus)
			Expect(response.Field("id").Exists()).To(BeFalse())
		})
	})
})
