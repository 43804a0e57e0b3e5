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

//go:build !integration

package apiversion

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rivaas.dev/router"
)

func newBenchHandler() http.Handler {
	r := router.MustNew()
	r.GET("/v0/users", func(c *router.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/v1/users", func(c *router.Context) {
		c.Status(http.StatusOK)
	})
	return MustNew(0, 1).Wrap(r)
}

func BenchmarkAPIVersion_HeaderResolution(b *testing.B) {
	handler := newBenchHandler()

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set(DefaultHeader, "v0")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}
}

func BenchmarkAPIVersion_DefaultResolution(b *testing.B) {
	handler := newBenchHandler()

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}
}

func BenchmarkAPIVersion_ProbeExemption(b *testing.B) {
	r := router.MustNew()
	r.GET("/", func(c *router.Context) {
		c.Status(http.StatusOK)
	})
	handler := MustNew(0, 1).Wrap(r)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}
}
