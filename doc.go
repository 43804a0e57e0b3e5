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

// Package apiversion provides middleware that negotiates an API version
// per request and rewrites the request path to carry it, so a single
// router can serve multiple API versions under version-qualified routes
// ("/v0/...", "/v1/...") while clients never send prefixed paths.
//
// Clients name a version with the X-API-Version header ("v0", "v1", ...);
// without the header, the highest configured version is used. The
// middleware prepends "/v{n}" to the path before route matching, so it
// must wrap the router handler rather than run as in-router middleware.
//
// # Basic Usage
//
//	r := router.MustNew()
//	r.GET("/v0/users", listUsersV0)
//	r.GET("/v1/users", listUsersV1)
//
//	e, err := apiversion.New(0, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(":8080", e.Wrap(r))
//
// A request for /users with header "X-API-Version: v0" is served by
// /v0/users; without the header it is served by /v1/users.
//
// # Version Negotiation
//
// Supported versions form a contiguous inclusive range [min, max] of
// integers between 0 and 99. The header grammar is a strict lowercase
// 'v' followed by the decimal version without leading zeros ("v0", "v7",
// "v42"). Malformed values, values outside the configured range, and a
// header sent more than once reject the request; the downstream handler
// never sees it.
//
// # Exemptions
//
// The readiness probe "/" is always forwarded unmodified, so
// infrastructure health checks never participate in version negotiation.
// WithFilter excludes further requests. Paths that already start with a
// version prefix segment are rejected: routes are registered without
// prefixes, and the guard prevents double-prefixing.
//
// # Errors
//
// Rejections are rendered by the configured error handler. The default
// maps ErrUnsupportedVersion to 404 and ErrInvalidVersionHeader and
// ErrAlreadyVersionedPath to 400. Construction with invalid bounds fails
// with ErrMinAboveMax or ErrVersionOutOfRange.
//
// # Observability
//
// The engine never logs. Attach the embedding application's logging and
// metrics via WithObserver, and echo the resolved version to clients via
// WithResponseHeader.
package apiversion
