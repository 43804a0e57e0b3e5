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

import "strings"

// pathClass is the eligibility verdict for a request path.
type pathClass int

const (
	// pathEligible means the path qualifies for the version rewrite.
	pathEligible pathClass = iota

	// pathExempt means the path bypasses versioning entirely and is
	// forwarded unmodified. Only the readiness probe "/" is exempt.
	pathExempt

	// pathAlreadyVersioned means the first path segment already looks like
	// a version prefix. Rejected before header parsing: routes are
	// registered without prefixes, so a pre-versioned path is a caller
	// contract violation, and rewriting it again would double-prefix.
	pathAlreadyVersioned
)

// classifyPath decides whether the rewrite applies to path.
func classifyPath(path string) pathClass {
	if path == "/" {
		return pathExempt
	}

	if isVersionSegment(firstSegment(path)) {
		return pathAlreadyVersioned
	}

	return pathEligible
}

// firstSegment returns the first "/"-delimited segment of path, without
// the leading slash.
func firstSegment(path string) string {
	seg := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}

	return seg
}

// isVersionSegment reports whether seg matches the version-prefix syntax:
// 'v' followed by one or more decimal digits. The check is purely
// syntactic and independent of the configured VersionSet, so "/v7/x" is
// rejected even when version 7 is not configured. The guard protects
// against double-prefixing, which is a property of the syntax, not of the
// supported range.
func isVersionSegment(seg string) bool {
	if len(seg) < 2 || seg[0] != 'v' {
		return false
	}

	for i := 1; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}

	return true
}
