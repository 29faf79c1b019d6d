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

	"github.com/unikorn-cloud/player/test/api"

	"k8s.io/utils/ptr"
)

var _ = Describe("Player Retrieval", func() {
	Context("When getting a single player", func() {
		It("should return a player that exists", func() {
			p := generator.ValidPlayer()
			created := api.CreatePlayerWithCleanup(ctx, client, tracker, config.SupervisorLogin, p)

			response, err := client.GetPlayer(ctx, &created.PlayerID)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectSchema(ctx, response, validator)

			fetched, err := response.Expect(http.StatusOK)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.PlayerID).To(Equal(created.PlayerID))
			api.ExpectPlayerMatches(fetched, p)

			// Reading again parses the same body.
			again, err := response.ReadEntity()
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(fetched))
		})

		It("should report a player that does not exist", func() {
			response, err := client.GetPlayer(ctx, ptr.To(missingPlayerID))
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, config.GetMissingStatus)
			api.ExpectNoSuchUser(response)
			api.ExpectSchema(ctx, response, validator)
		})

		It("should reject a null player ID", func() {
			response, err := client.GetPlayer(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, http.StatusBadRequest)
		})
	})

	Context("When listing all players", func() {
		It("should include created players in their short form", func() {
			p := generator.ValidPlayer()
			created := api.CreatePlayerWithCleanup(ctx, client, tracker, config.SupervisorLogin, p)

			response, err := client.GetAllPlayers(ctx)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectSchema(ctx, response, validator)

			players, err := response.Expect(http.StatusOK)
			Expect(err).NotTo(HaveOccurred())
			Expect(players.Players).NotTo(BeEmpty())

			found := false

			for _, short := range players.Players {
				if short.ID != created.PlayerID {
					continue
				}

				found = true

				Expect(short.ScreenName).To(Equal(*p.ScreenName))
				Expect(short.Gender).To(Equal(*p.Gender))
				Expect(short.Age).To(Equal(*p.Age))
			}

			Expect(found).To(BeTrue(), "player %d not listed", created.PlayerID)
		})

		It("should not expose passwords or logins", func() {
			response, err := client.GetAllPlayers(ctx)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(response, http.StatusOK)

			Expect(response.Field("players.#.password").Array()).To(BeEmpty())
			Expect(response.Field("players.#.login").Array()).To(BeEmpty())
		})
	})
})
