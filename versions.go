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
	"fmt"
	"strconv"
)

// MaxVersion is the highest supported version number. The header and path
// encodings reserve two decimal digits, so versions run 0 through 99.
const MaxVersion = 99

// VersionSet is the contiguous inclusive range of supported API versions.
// Versions are assumed contiguous: deprecating version 0 while keeping 1
// and 2 is not modeled. This keeps membership checks to two comparisons
// and the configuration surface to a pair of bounds.
//
// A VersionSet is immutable after construction and safe to share across
// any number of concurrent requests.
type VersionSet struct {
	min int
	max int
}

// NewVersionSet creates a VersionSet covering [min, max].
//
// Both bounds must be in [0, MaxVersion] and min must not exceed max.
// Invalid bounds are a configuration error surfaced at start-up, never
// per request.
func NewVersionSet(min, max int) (VersionSet, error) {
	if min < 0 || min > MaxVersion || max < 0 || max > MaxVersion {
		return VersionSet{}, fmt.Errorf("%w: got [%d, %d]", ErrVersionOutOfRange, min, max)
	}
	if min > max {
		return VersionSet{}, fmt.Errorf("%w: got [%d, %d]", ErrMinAboveMax, min, max)
	}

	return VersionSet{min: min, max: max}, nil
}

// Contains reports whether v is a supported version.
func (s VersionSet) Contains(v int) bool {
	return v >= s.min && v <= s.max
}

// Default returns the version used when a request carries no version
// header: the highest configured version. Omitting the header is not an
// error, it is an implicit request for the newest API surface.
func (s VersionSet) Default() int {
	return s.max
}

// Min returns the lowest supported version.
func (s VersionSet) Min() int {
	return s.min
}

// Max returns the highest supported version.
func (s VersionSet) Max() int {
	return s.max
}

// FormatVersion renders a version number as its wire designator, e.g.
// "v0" or "v42". No leading zeros.
func FormatVersion(v int) string {
	return "v" + strconv.Itoa(v)
}
