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

var _ = Describe("Player Update", func() {
	var (
		original openapi.Player
		created  *openapi.PlayerResponse
	)

	BeforeEach(func() {
		original = generator.ValidPlayer()
		created = api.CreatePlayerWithCleanup(ctx, client, tracker, config.SupervisorLogin, original)
	})

	Context("When updating a single field", func() {
		It("should update the age and leave everything else alone", func() {
			age := config.MinAge + (config.MaxAge-config.MinAge)/2

			response, err := client.UpdatePlayer(ctx, config.SupervisorLogin, created.PlayerID, fixtures.NewPlayer().WithAge(age).Build())
			Expect(err).NotTo(HaveOccurred())
			api.ExpectSchema(ctx, response, validator)

			updated, err := response.Expect(http.StatusOK)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.PlayerID).To(Equal(created.PlayerID))
			Expect(updated.Age).To(HaveValue(Equal(age)))

			get, err := client.GetPlayer(ctx, &created.PlayerID)
			Expect(err).NotTo(HaveOccurred())

			fetched, err := get.Expect(http.StatusOK)
			Expect(err).NotTo(HaveOccurred())

			api.ExpectPlayerMatches(fetched, fixtures.From(original).WithAge(age).Build())
		})

		It("should update the gender", func() {
			gender := string(openapi.GenderFemale)
			if *original.Gender == gender {
				gender = string(openapi.GenderMale)
			}

			response, err := client.UpdatePlayer(ctx, config.SupervisorLogin, created.PlayerID, fixtures.NewPlayer().WithGender(gender).Build())
			Expect(err).NotTo(HaveOccurred())

			updated, err := response.Expect(http.StatusOK)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.PlayerID).To(Equal(created.PlayerID))
			Expect(updated.Gender).To(HaveValue(Equal(gender)))
		})
	})

	Context("When the update is invalid", func() {
		It("should reject an age out of range", func() {
			response, err := client.UpdatePlayer(ctx, config.SupervisorLogin, created.PlayerID, fixtures.NewPlayer().WithAge(150).Build())
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, http.StatusBadRequest)
			api.ExpectErrorBody(response)
		})

		It("should report a player that does not exist", func() {
			response, err := client.UpdatePlayer(ctx, config.SupervisorLogin, missingPlayerID, fixtures.NewPlayer().WithAge(30).Build())
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, http.StatusNotFound)
			api.ExpectNoSuchUser(response)
		})

		It("should reject an editor that does not exist", func() {
			response, err := client.UpdatePlayer(ctx, nonExistentEditor, created.PlayerID, fixtures.NewPlayer().WithAge(30).Build())
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, http.StatusNotFound)
			api.ExpectErrorBody(response)
		})
	})
})
