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

package apiversion

import (
	"errors"
	"fmt"
	"net/http"
)

// Engine resolves the API version for each request and rewrites the
// request path to carry it as the leading segment.
//
// An Engine holds no per-request state. The VersionSet and configuration
// are immutable after New, so a single Engine serves any number of
// concurrent requests without locking.
type Engine struct {
	versions VersionSet
	cfg      *config
}

// New creates an Engine supporting versions min through max inclusive.
//
// Example:
//
//	e, err := apiversion.New(0, 2)
//	if err != nil {
//	    return err
//	}
//	http.ListenAndServe(":8080", e.Wrap(r))
func New(min, max int, opts ...Option) (*Engine, error) {
	versions, err := NewVersionSet(min, max)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	return &Engine{versions: versions, cfg: cfg}, nil
}

// MustNew is like New but panics on configuration errors. Use for
// static configuration known at compile time.
//
// Example:
//
//	handler := apiversion.MustNew(0, 1).Wrap(r)
func MustNew(min, max int, opts ...Option) *Engine {
	e, err := New(min, max, opts...)
	if err != nil {
		panic(fmt.Sprintf("apiversion: %v", err))
	}
	return e
}

// Versions returns the configured version set.
func (e *Engine) Versions() VersionSet {
	return e.versions
}

// Resolve computes the effective version for a request from its headers.
//
// No header resolves to the highest configured version. A well-formed
// header naming a configured version resolves to that version. Anything
// else fails with ErrInvalidVersionHeader or *UnsupportedVersionError.
func (e *Engine) Resolve(header http.Header) (int, error) {
	v, raw, outcome := readVersionHeader(header, e.cfg.header)
	switch outcome {
	case headerAbsent:
		e.notifyMissing()
		v = e.versions.Default()
		e.notifyResolved(v, "default")
		return v, nil

	case headerMalformed:
		e.notifyInvalid(raw)
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersionHeader, raw)
	}

	if !e.versions.Contains(v) {
		e.notifyInvalid(raw)
		return 0, &UnsupportedVersionError{Version: v}
	}

	e.notifyResolved(v, "header")
	return v, nil
}

// Wrap wraps next with version resolution and path rewriting at the HTTP
// handler level. This must wrap the router rather than run as in-router
// middleware because the rewrite needs to occur BEFORE route matching.
//
// Per request, Wrap forwards "/" untouched, rejects paths that already
// start with a version prefix, skips requests excluded by the filter,
// and otherwise resolves the version and forwards the request with
// "/v{n}" prepended to its path. The query string is preserved. next is
// invoked at most once, and never for a rejected request.
//
// Example:
//
//	r := router.MustNew()
//	r.GET("/v0/users", listUsersV0)
//	r.GET("/v1/users", listUsersV1)
//	handler := apiversion.MustNew(0, 1).Wrap(r)
//	http.ListenAndServe(":8080", handler)
func (e *Engine) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch classifyPath(r.URL.Path) {
		case pathExempt:
			// Always serve the readiness probe unmodified, whatever the
			// header says.
			next.ServeHTTP(w, r)
			return

		case pathAlreadyVersioned:
			e.cfg.errorHandler(w, r, ErrAlreadyVersionedPath)
			return
		}

		if e.cfg.filter != nil && !e.cfg.filter(r) {
			next.ServeHTTP(w, r)
			return
		}

		version, err := e.Resolve(r.Header)
		if err != nil {
			e.cfg.errorHandler(w, r, err)
			return
		}

		if e.cfg.sendResponseHeader {
			w.Header().Set(e.cfg.header, FormatVersion(version))
		}

		next.ServeHTTP(w, e.rewrite(r, version))
	})
}

// rewrite returns a copy of r with the version prefix prepended to the
// path. Handlers must not modify the request they received, so the
// inbound request is cloned rather than mutated.
func (e *Engine) rewrite(r *http.Request, version int) *http.Request {
	prefix := "/" + FormatVersion(version)

	r2 := r.Clone(r.Context())
	r2.URL.Path = prefix + r.URL.Path
	if r.URL.RawPath != "" {
		r2.URL.RawPath = prefix + r.URL.RawPath
	}

	return r2
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, ErrUnsupportedVersion) {
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}

func (e *Engine) notifyResolved(version int, source string) {
	if e.cfg.observer != nil && e.cfg.observer.OnResolved != nil {
		e.cfg.observer.OnResolved(version, source)
	}
}

func (e *Engine) notifyMissing() {
	if e.cfg.observer != nil && e.cfg.observer.OnMissing != nil {
		e.cfg.observer.OnMissing()
	}
}

func (e *Engine) notifyInvalid(attempted string) {
	if e.cfg.observer != nil && e.cfg.observer.OnInvalid != nil {
		e.cfg.observer.OnInvalid(attempted)
	}
}
