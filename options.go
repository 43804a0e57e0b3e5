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

import "net/http"

// Option configures the version rewrite engine.
type Option func(*config) error

type config struct {
	header             string
	filter             func(*http.Request) bool
	observer           *Observer
	sendResponseHeader bool
	errorHandler       func(http.ResponseWriter, *http.Request, error)
}

func defaultConfig() *config {
	return &config{
		header:       DefaultHeader,
		errorHandler: defaultErrorHandler,
	}
}

// Observer holds callbacks for version resolution events. All callbacks
// are optional. Callbacks run on the request goroutine and must be safe
// for concurrent use.
type Observer struct {
	// OnResolved is called when a version is resolved for a request.
	// Source is "header" when the client named the version, "default"
	// when the highest configured version was assumed.
	OnResolved func(version int, source string)

	// OnMissing is called when a request carries no version header.
	OnMissing func()

	// OnInvalid is called when a request is rejected for a malformed
	// header value or an unsupported version. attempted is the offending
	// value as seen on the wire.
	OnInvalid func(attempted string)
}

// ObserverOption configures an Observer callback.
type ObserverOption func(*Observer)

// WithHeader sets the request header name carrying the version.
// Default: "X-API-Version"
//
// Example:
//
//	apiversion.New(0, 1, apiversion.WithHeader("X-Acme-Version"))
func WithHeader(headerName string) Option {
	return func(cfg *config) error {
		if headerName == "" {
			return ErrEmptyHeaderName
		}
		cfg.header = headerName
		return nil
	}
}

// WithFilter restricts which requests are rewritten. Requests for which
// fn returns false are forwarded unmodified, skipping version
// negotiation entirely. The readiness probe "/" and the
// already-versioned guard are evaluated before the filter.
//
// By default every eligible request is rewritten.
//
// Example:
//
//	// Leave /metrics alone
//	apiversion.New(0, 1, apiversion.WithFilter(func(r *http.Request) bool {
//	    return !strings.HasPrefix(r.URL.Path, "/metrics")
//	}))
func WithFilter(fn func(*http.Request) bool) Option {
	return func(cfg *config) error {
		if fn == nil {
			return ErrNilFilter
		}
		cfg.filter = fn
		return nil
	}
}

// WithObserver attaches callbacks for version resolution events. This is
// the hook for the embedding application's logging and metrics; the
// engine itself never logs.
//
// Example:
//
//	apiversion.New(0, 1, apiversion.WithObserver(
//	    apiversion.OnResolved(func(v int, source string) {
//	        log.Printf("api version v%d (%s)", v, source)
//	    }),
//	    apiversion.OnInvalid(func(attempted string) {
//	        log.Printf("rejected version %q", attempted)
//	    }),
//	))
func WithObserver(opts ...ObserverOption) Option {
	return func(cfg *config) error {
		obs := &Observer{}
		for _, opt := range opts {
			opt(obs)
		}
		cfg.observer = obs
		return nil
	}
}

// OnResolved sets the callback for successful version resolution.
func OnResolved(fn func(version int, source string)) ObserverOption {
	return func(o *Observer) {
		o.OnResolved = fn
	}
}

// OnMissing sets the callback for requests without a version header.
func OnMissing(fn func()) ObserverOption {
	return func(o *Observer) {
		o.OnMissing = fn
	}
}

// OnInvalid sets the callback for rejected version values.
func OnInvalid(fn func(attempted string)) ObserverOption {
	return func(o *Observer) {
		o.OnInvalid = fn
	}
}

// WithResponseHeader makes the engine echo the resolved version on the
// response, under the same header name used for requests. Clients that
// omitted the header learn which version actually served them.
//
// Example:
//
//	apiversion.New(0, 1, apiversion.WithResponseHeader())
func WithResponseHeader() Option {
	return func(cfg *config) error {
		cfg.sendResponseHeader = true
		return nil
	}
}

// WithErrorHandler sets the rejection renderer. The engine reports the
// failure kind (ErrInvalidVersionHeader, ErrUnsupportedVersion,
// ErrAlreadyVersionedPath); turning it into a wire response is the
// embedding application's job.
//
// The default handler answers 404 for unsupported versions and 400 for
// everything else, with a plain-text body.
//
// Example:
//
//	apiversion.New(0, 1, apiversion.WithErrorHandler(
//	    func(w http.ResponseWriter, r *http.Request, err error) {
//	        problem.Render(w, http.StatusBadRequest, err)
//	    },
//	))
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) Option {
	return func(cfg *config) error {
		if fn == nil {
			return ErrNilErrorHandler
		}
		cfg.errorHandler = fn
		return nil
	}
}
