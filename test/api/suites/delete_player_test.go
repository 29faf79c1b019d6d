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
)

var _ = Describe("Player Deletion", func() {
	Context("When deleting a player that exists", func() {
		DescribeTable("Given a permitted editor",
			func(editor func() string) {
				created := api.CreatePlayerWithCleanup(ctx, client, tracker, editor(), generator.ValidPlayer())

				response, err := client.DeletePlayer(ctx, editor(), created.PlayerID)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode()).To(Equal(config.DeleteSuccessStatus), "body: %s", response.String())

				tracker.Forget(created.PlayerID)

				get, err := client.GetPlayer(ctx, &created.PlayerID)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(get, config.GetMissingStatus)
				api.ExpectNoSuchUser(get)
			},
			Entry("supervisor", func() string { return config.SupervisorLogin }),
			Entry("admin", func() string { return config.AdminLogin }),
		)
	})

	Context("When the deletion is not possible", func() {
		It("should report a player that does not exist", func() {
			response, err := client.DeletePlayer(ctx, config.SupervisorLogin, missingPlayerID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode()).To(Equal(config.DeleteMissingStatus))
		})

		It("should reject an editor that does not exist", func() {
			created := api.CreatePlayerWithCleanup(ctx, client, tracker, config.SupervisorLogin, generator.ValidPlayer())

			response, err := client.DeletePlayer(ctx, nonExistentEditor, created.PlayerID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode()).To(Equal(http.StatusNotFound))
		})

		It("should forbid deleting the supervisor", func() {
			response, err := client.DeletePlayer(ctx, config.SupervisorLogin, supervisorID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode()).To(Equal(http.StatusForbidden))
		})

		It("should forbid a user deleting other players", func() {
			created := api.CreatePlayerWithCleanup(ctx, client, tracker, config.SupervisorLogin, generator.ValidPlayer())

			response, err := client.DeletePlayer(ctx, userEditor, created.PlayerID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response.StatusCode()).To(Equal(http.StatusForbidden))
		})
	})
})
