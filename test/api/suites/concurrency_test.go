/*
Copyright 2024-2025 the Unikorn Authors.

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
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/player/pkg/openapi"
	"github.com/unikorn-cloud/player/test/api"

	"k8s.io/utils/ptr"
)

var _ = Describe("Concurrency", func() {
	Context("When performing concurrent operations", func() {
		Describe("Given multiple simultaneous creation requests", func() {
			It("should create every player with a unique ID", func() {
				players := make([]openapi.Player, config.ThreadCount)
				for i := range players {
					players[i] = generator.ValidPlayer()
				}

				ids := make([]int, len(players))
				errs := make([]error, len(players))

				var wg sync.WaitGroup

				for i, p := range players {
					wg.Add(1)

					go func() {
						defer GinkgoRecover()
						defer wg.Done()

						response, err := client.CreatePlayer(ctx, config.SupervisorLogin, p)
						if err != nil {
							errs[i] = err
							return
						}

						created, err := response.Expect(http.StatusOK)
						if err != nil {
							errs[i] = err
							return
						}

						tracker.Track(created.PlayerID)
						ids[i] = created.PlayerID
					}()
				}

				wg.Wait()

				for _, err := range errs {
					Expect(err).NotTo(HaveOccurred())
				}

				seen := map[int]bool{}

				for _, id := range ids {
					Expect(seen).NotTo(HaveKey(id))
					seen[id] = true
				}
			})
		})

		Describe("Given concurrent reads of one player", func() {
			It("should return the same player to every reader", func() {
				created := api.CreatePlayerWithCleanup(ctx, client, tracker, config.SupervisorLogin, generator.ValidPlayer())

				results := make([]*openapi.PlayerResponse, config.ThreadCount)
				errs := make([]error, config.ThreadCount)

				var wg sync.WaitGroup

				for i := range results {
					wg.Add(1)

					go func() {
						defer GinkgoRecover()
						defer wg.Done()

						response, err := client.GetPlayer(ctx, ptr.To(created.PlayerID))
						if err != nil {
							errs[i] = err
							return
						}

						results[i], errs[i] = response.Expect(http.StatusOK)
					}()
				}

				wg.Wait()

				for i := range results {
					Expect(errs[i]).NotTo(HaveOccurred())
					api.ExpectPlayerMatches(results[i], created.Player())
				}
			})
		})
	})
})
