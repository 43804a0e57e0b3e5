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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersionValue(t *testing.T) {
	tests := []struct {
		value string
		want  int
		ok    bool
	}{
		{value: "v0", want: 0, ok: true},
		{value: "v1", want: 1, ok: true},
		{value: "v9", want: 9, ok: true},
		{value: "v10", want: 10, ok: true},
		{value: "v42", want: 42, ok: true},
		{value: "v99", want: 99, ok: true},

		{value: ""},
		{value: "v"},
		{value: "1"},
		{value: "V1"},
		{value: "v00"},
		{value: "v01"},
		{value: "v1a"},
		{value: "vv"},
		{value: "v100"},
		{value: "v-1"},
		{value: " v1"},
		{value: "v1 "},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := parseVersionValue(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReadVersionHeader(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		_, _, outcome := readVersionHeader(http.Header{}, DefaultHeader)
		assert.Equal(t, headerAbsent, outcome)
	})

	t.Run("single well-formed value", func(t *testing.T) {
		h := http.Header{}
		h.Set(DefaultHeader, "v7")

		v, raw, outcome := readVersionHeader(h, DefaultHeader)
		assert.Equal(t, headerParsed, outcome)
		assert.Equal(t, 7, v)
		assert.Equal(t, "v7", raw)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		h := http.Header{}
		h.Set("x-api-version", "v3")

		v, _, outcome := readVersionHeader(h, DefaultHeader)
		assert.Equal(t, headerParsed, outcome)
		assert.Equal(t, 3, v)
	})

	t.Run("malformed value", func(t *testing.T) {
		h := http.Header{}
		h.Set(DefaultHeader, "vv")

		_, raw, outcome := readVersionHeader(h, DefaultHeader)
		assert.Equal(t, headerMalformed, outcome)
		assert.Equal(t, "vv", raw)
	})

	t.Run("multiple occurrences are malformed", func(t *testing.T) {
		h := http.Header{}
		h.Add(DefaultHeader, "v0")
		h.Add(DefaultHeader, "v1")

		_, _, outcome := readVersionHeader(h, DefaultHeader)
		assert.Equal(t, headerMalformed, outcome)
	})
}
