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
	"strings"

	"github.com/edgerelay/relay/encoding"
)

// encodeResult is the response encoder. It applies, in fixed order:
// status mapping, cache-control, compression, base64 transcoding, and
// header assembly. Route options are honored when a route was selected;
// a nil route (404/405 outcomes) encodes with zero options.
func (a *API) encodeResult(res Result, route *Route, req Request, handlerHeaders map[string]string) Response {
	var opts Options
	methods := []string{"GET"}
	if route != nil {
		opts = route.opts
		methods = route.methods
	}

	body := res.Body
	headers := make(map[string]string, 6)
	isBase64 := false

	// Cache-Control: the literal directive is attached only to "OK"
	// responses. Any other status forces no-cache regardless of the
	// configured value, so a stale cache never serves an error body.
	if opts.CacheControl != "" {
		if res.Status == "OK" {
			headers["Cache-Control"] = opts.CacheControl
		} else {
			headers["Cache-Control"] = "no-cache"
		}
	}

	// Compression: applied only when the client advertises the codec.
	// A codec failure passes the body through unmodified.
	if opts.Compression != CompressionNone &&
		encoding.Accepts(req.Header("Accept-Encoding"), string(opts.Compression)) {
		compressed, err := encoding.Encode(string(opts.Compression), body)
		if err != nil {
			a.logger.Error("compression failed", "codec", string(opts.Compression), "error", err)
		} else {
			body = compressed
			headers["Content-Encoding"] = string(opts.Compression)
		}
	}

	// Base64 transcoding happens strictly after compression.
	if opts.BinaryBase64 {
		body = []byte(base64.StdEncoding.EncodeToString(body))
		isBase64 = true
	}

	if opts.CORS {
		allow := opts.CORSMethods
		if len(allow) == 0 {
			allow = methods
		}
		headers["Access-Control-Allow-Origin"] = "*"
		headers["Access-Control-Allow-Methods"] = strings.Join(allow, ",")
		headers["Access-Control-Allow-Credentials"] = "true"
	}

	if res.ContentType != "" {
		headers["Content-Type"] = res.ContentType
	}

	// Handler-level headers take precedence on key collision.
	for k, v := range handlerHeaders {
		headers[k] = v
	}

	return Response{
		StatusCode:      StatusCode(res.Status),
		ContentType:     res.ContentType,
		Body:            body,
		Headers:         headers,
		IsBase64Encoded: isBase64,
	}
}
