// Copyright 2026 The Relay Authors
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

package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("the quick brown fox "), 64)

	for _, token := range []string{GzipValue, DeflateValue, BrotliValue, ZstdValue} {
		token := token
		t.Run(token, func(t *testing.T) {
			t.Parallel()

			encoded, err := Encode(token, payload)
			require.NoError(t, err)
			assert.Less(t, len(encoded), len(payload))

			decoded, err := Decode(token, encoded)
			require.NoError(t, err)
			assert.Equal(t, payload, decoded)
		})
	}
}

func TestRoundTrip_Empty(t *testing.T) {
	t.Parallel()

	for _, token := range []string{GzipValue, DeflateValue, BrotliValue, ZstdValue} {
		encoded, err := Encode(token, nil)
		require.NoError(t, err, token)

		decoded, err := Decode(token, encoded)
		require.NoError(t, err, token)
		assert.Empty(t, decoded, token)
	}
}

func TestUnknownEncoding(t *testing.T) {
	t.Parallel()

	_, err := Encode("lzma", []byte("x"))
	assert.ErrorIs(t, err, ErrUnknownEncoding)

	_, err = Decode("lzma", []byte("x"))
	assert.ErrorIs(t, err, ErrUnknownEncoding)

	assert.False(t, Supported("lzma"))
	assert.True(t, Supported(GzipValue))
}

func TestAccepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		token  string
		want   bool
	}{
		{"gzip", "gzip", true},
		{"gzip, deflate, br", "br", true},
		{"gzip;q=0.8, br", "gzip", true},
		{"GZIP", "gzip", true},
		{"gzip;q=0", "gzip", false},
		{"gzip;q=0.0", "gzip", false},
		{"deflate", "gzip", false},
		{"", "gzip", false},
		{"gzipped", "gzip", false},
		{"*", "gzip", true},
		{"*;q=1", "zstd", true},
		{"identity;q=1, *;q=0", "gzip", false},
		{"deflate, *", "br", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Accepts(tt.header, tt.token),
			"Accepts(%q, %q)", tt.header, tt.token)
	}
}
