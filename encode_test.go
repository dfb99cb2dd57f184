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

package relay

import (
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgerelay/relay/encoding"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code int
	}{
		{"OK", 200},
		{"CREATED", 201},
		{"EMPTY", 204},
		{"FOUND", 302},
		{"NOK", 400},
		{"FORBIDDEN", 403},
		{"NOT_FOUND", 404},
		{"METHOD_NOT_ALLOWED", 405},
		{"CONFLICT", 409},
		{"ERROR", 500},
		{"SOMETHING_ELSE", 500},
		{"", 500},
		{"ok", 500}, // the table is exact, not case-folded
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, StatusCode(tt.name), tt.name)
	}
}

func TestEncode_CORSHeadersOnEveryOutcome(t *testing.T) {
	t.Parallel()

	app := MustNew("test-api", WithoutDocs())
	app.MustRoute("/maybe/<id>", func(c *Context) (Result, error) {
		if c.Param("id") == "known" {
			return Text("OK", "found"), nil
		}
		return Text("NOT_FOUND", "missing"), nil
	}, WithCORS(), WithMethods("GET", "POST"))

	for _, id := range []string{"known", "unknown"} {
		resp := app.Dispatch(newRequest("GET", "/maybe/"+id, nil))
		assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"], id)
		assert.Equal(t, "GET,POST", resp.Headers["Access-Control-Allow-Methods"], id)
		assert.Equal(t, "true", resp.Headers["Access-Control-Allow-Credentials"], id)
	}
}

func TestEncode_CORSExplicitMethodList(t *testing.T) {
	t.Parallel()

	app := MustNew("test-api", WithoutDocs())
	app.MustRoute("/x", okHandler("ok"),
		WithMethods("GET", "POST", "DELETE"),
		WithCORS("GET"),
	)

	resp := app.Dispatch(newRequest("GET", "/x", nil))
	assert.Equal(t, "GET", resp.Headers["Access-Control-Allow-Methods"])
}

func TestEncode_CacheControl(t *testing.T) {
	t.Parallel()

	const directive = "public,max-age=3600"

	app := MustNew("test-api", WithoutDocs())
	app.MustRoute("/c/<status>", func(c *Context) (Result, error) {
		return Text(c.Param("status"), "body"), nil
	}, WithCacheControl(directive))
	app.MustRoute("/plain", okHandler("ok"))

	// "OK" carries the literal directive.
	resp := app.Dispatch(newRequest("GET", "/c/OK", nil))
	assert.Equal(t, directive, resp.Headers["Cache-Control"])

	// Any other status forces no-cache so stale caches never serve errors.
	resp = app.Dispatch(newRequest("GET", "/c/NOT_FOUND", nil))
	assert.Equal(t, "no-cache", resp.Headers["Cache-Control"])

	// No directive configured: no header at all.
	resp = app.Dispatch(newRequest("GET", "/plain", nil))
	assert.NotContains(t, resp.Headers, "Cache-Control")
}

func TestEncode_CompressionRequiresAcceptEncoding(t *testing.T) {
	t.Parallel()

	body := make([]byte, 0, 2048)
	for i := 0; i < 128; i++ {
		body = append(body, []byte("repetitive data ")...)
	}

	app := MustNew("test-api", WithoutDocs())
	app.MustRoute("/data", func(*Context) (Result, error) {
		return Binary("OK", body), nil
	}, WithCompression(CompressionGzip))

	// Client does not advertise gzip: body passes through unmodified.
	resp := app.Dispatch(newRequest("GET", "/data", nil))
	assert.Equal(t, body, resp.Body)
	assert.NotContains(t, resp.Headers, "Content-Encoding")

	// Client advertises gzip.
	req := newRequest("GET", "/data", nil)
	req.Headers.Set("Accept-Encoding", "br, gzip;q=0.8")
	resp = app.Dispatch(req)
	assert.Equal(t, "gzip", resp.Headers["Content-Encoding"])
	assert.Less(t, len(resp.Body), len(body))

	decoded, err := encoding.Decode(encoding.GzipValue, resp.Body)
	require.NoError(t, err)
	assert.Equal(t, body, decoded)
}

func TestEncode_CompressThenBase64RoundTrip(t *testing.T) {
	t.Parallel()

	original := []byte("payload that compresses and transcodes payload payload payload")

	for _, comp := range []Compression{CompressionGzip, CompressionDeflate, CompressionBrotli, CompressionZstd} {
		app := MustNew("test-api", WithoutDocs())
		app.MustRoute("/bin", func(*Context) (Result, error) {
			return Binary("OK", original), nil
		}, WithCompression(comp), WithBinary())

		req := newRequest("GET", "/bin", nil)
		req.Headers.Set("Accept-Encoding", "gzip, deflate, br, zstd")
		resp := app.Dispatch(req)

		require.True(t, resp.IsBase64Encoded, string(comp))
		assert.Equal(t, string(comp), resp.Headers["Content-Encoding"], string(comp))

		// Base64-decoding yields exactly the compressed bytes; inflating
		// those recovers the handler's original body.
		compressed, err := base64.StdEncoding.DecodeString(string(resp.Body))
		require.NoError(t, err, string(comp))
		decoded, err := encoding.Decode(string(comp), compressed)
		require.NoError(t, err, string(comp))
		assert.Equal(t, original, decoded, string(comp))
	}
}

func TestEncode_Base64WithoutCompression(t *testing.T) {
	t.Parallel()

	original := []byte{0x00, 0x01, 0xff, 0xfe}

	app := MustNew("test-api", WithoutDocs())
	app.MustRoute("/raw", func(*Context) (Result, error) {
		return Binary("OK", original), nil
	}, WithBinary())

	resp := app.Dispatch(newRequest("GET", "/raw", nil))
	require.True(t, resp.IsBase64Encoded)

	decoded, err := base64.StdEncoding.DecodeString(string(resp.Body))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncode_HandlerHeadersTakePrecedence(t *testing.T) {
	t.Parallel()

	app := MustNew("test-api", WithoutDocs())
	app.MustRoute("/h", func(c *Context) (Result, error) {
		c.SetHeader("X-Custom", "yes")
		c.SetHeader("Cache-Control", "handler-says-so")
		return Text("OK", "ok"), nil
	}, WithCacheControl("public,max-age=60"))

	resp := app.Dispatch(newRequest("GET", "/h", nil))

	assert.Equal(t, "yes", resp.Headers["X-Custom"])
	// The handler's explicit header wins the collision.
	assert.Equal(t, "handler-says-so", resp.Headers["Cache-Control"])
}

func TestEncode_ContentTypeHeader(t *testing.T) {
	t.Parallel()

	app := MustNew("test-api", WithoutDocs())
	app.MustRoute("/t", func(*Context) (Result, error) {
		return JSON("OK", map[string]int{"n": 1}), nil
	})

	resp := app.Dispatch(newRequest("GET", "/t", url.Values{}))
	assert.Equal(t, "application/json", resp.ContentType)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.JSONEq(t, `{"n":1}`, string(resp.Body))
}
