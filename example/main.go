// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"log"
	"net/http"

	"rivaas.dev/middleware/apiversion"
	"rivaas.dev/router"
)

// Demonstrates header-negotiated API versioning.
//
// Try it:
//
//	curl localhost:8080/users                          → v1 answers
//	curl -H 'X-API-Version: v0' localhost:8080/users   → v0 answers
//	curl -H 'X-API-Version: v2' localhost:8080/users   → 404
//	curl localhost:8080/v1/users                       → 400 (never send the prefix)
//	curl localhost:8080/                               → probe, no versioning
func main() {
	r := router.MustNew()

	r.GET("/", func(c *router.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/v0/users", func(c *router.Context) {
		c.JSON(http.StatusOK, map[string]any{
			"users": []string{"alice", "bob"},
		})
	})

	r.GET("/v1/users", func(c *router.Context) {
		c.JSON(http.StatusOK, map[string]any{
			"users": []map[string]string{
				{"name": "alice"},
				{"name": "bob"},
			},
		})
	})

	e := apiversion.MustNew(0, 1,
		apiversion.WithResponseHeader(),
		apiversion.WithObserver(
			apiversion.OnResolved(func(v int, source string) {
				log.Printf("serving %s (%s)", apiversion.FormatVersion(v), source)
			}),
			apiversion.OnInvalid(func(attempted string) {
				log.Printf("rejected version %q", attempted)
			}),
		),
	)

	log.Println("listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", e.Wrap(r)))
}
