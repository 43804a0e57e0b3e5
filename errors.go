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
)

// Static errors for configuration validation.
// These errors should be wrapped with fmt.Errorf and %w when context is needed.
var (
	// Version range errors
	ErrMinAboveMax       = errors.New("minimum version must not exceed maximum version")
	ErrVersionOutOfRange = errors.New("versions must be in the range 0 through 99")

	// Option errors
	ErrEmptyHeaderName = errors.New("header name cannot be empty")
	ErrNilFilter       = errors.New("filter function cannot be nil")
	ErrNilErrorHandler = errors.New("error handler cannot be nil")
)

// Request rejection errors. The engine never forwards a rejected request;
// the configured error handler translates these into HTTP responses.
var (
	// ErrInvalidVersionHeader indicates the version header is present but
	// does not match the "v<digits>" grammar, or occurs more than once.
	ErrInvalidVersionHeader = errors.New("invalid version header")

	// ErrUnsupportedVersion indicates a well-formed version outside the
	// configured range. Use errors.As with *UnsupportedVersionError to
	// recover the requested version.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrAlreadyVersionedPath indicates the request path already starts with
	// a version prefix segment. Routes are registered without version
	// prefixes; the prefix is added by the rewrite, never by the client.
	ErrAlreadyVersionedPath = errors.New("path must not start with a version prefix like '/v0'")
)

// UnsupportedVersionError is returned when a request names a well-formed
// version that is not in the configured range. It wraps ErrUnsupportedVersion
// so callers can match either the kind or the concrete type.
type UnsupportedVersionError struct {
	// Version is the version number the client requested.
	Version int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unknown version %q", FormatVersion(e.Version))
}

func (e *UnsupportedVersionError) Unwrap() error {
	return ErrUnsupportedVersion
}
