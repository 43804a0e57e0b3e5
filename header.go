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

// DefaultHeader is the request header carrying the desired API version.
// Lookup is case-insensitive, as for any HTTP header.
const DefaultHeader = "X-API-Version"

// headerOutcome classifies the version header of a single request.
type headerOutcome int

const (
	// headerAbsent means no version header was sent.
	headerAbsent headerOutcome = iota

	// headerParsed means exactly one well-formed version header was sent.
	headerParsed

	// headerMalformed means the header value violates the "v<digits>"
	// grammar, or the header occurs more than once.
	headerMalformed
)

// readVersionHeader reads and parses the version header under name.
// It returns the parsed version number (valid only for headerParsed) and
// the raw value seen (valid for headerParsed and headerMalformed).
//
// A header sent more than once is malformed rather than first-wins:
// negotiation stays deterministic no matter how proxies reorder values.
func readVersionHeader(h http.Header, name string) (int, string, headerOutcome) {
	values := h.Values(name)
	switch len(values) {
	case 0:
		return 0, "", headerAbsent
	case 1:
		// Handled below.
	default:
		return 0, values[0], headerMalformed
	}

	value := values[0]
	v, ok := parseVersionValue(value)
	if !ok {
		return 0, value, headerMalformed
	}

	return v, value, headerParsed
}

// parseVersionValue parses a version designator: a strict lowercase 'v'
// followed by one or two decimal digits, with no leading zero unless the
// value is exactly "v0". Trailing characters of any kind are rejected.
//
// The 'v' is deliberately case-sensitive. The wire format stays
// unambiguous and cheap to validate without case-folding.
func parseVersionValue(s string) (int, bool) {
	if len(s) < 2 || len(s) > 3 || s[0] != 'v' {
		return 0, false
	}

	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	if len(digits) > 1 && digits[0] == '0' {
		return 0, false
	}

	v := 0
	for i := 0; i < len(digits); i++ {
		v = v*10 + int(digits[i]-'0')
	}

	return v, true
}
