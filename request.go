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
	"net/http"
	"net/url"
)

// Request is the normalized inbound event constructed by a platform
// adapter. Query preserves repeated keys; Headers is case-insensitive
// through http.Header semantics. PlatformContext and Event carry the raw
// hosting-platform pair for routes registered with WithPassthrough.
type Request struct {
	Method          string
	Path            string
	Query           url.Values
	Headers         http.Header
	Body            []byte
	IsBase64Encoded bool

	PlatformContext any
	Event           any
}

// Header returns the first value for the named header, case-insensitively.
func (r *Request) Header(name string) string {
	return r.Headers.Get(name)
}

// QueryValue returns the last value for the named query key, matching the
// duplicates-resolve-last-wins rule. The bool reports presence.
func (r *Request) QueryValue(name string) (string, bool) {
	vs, ok := r.Query[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// BodyBytes returns the request body, decoding it when the adapter marked
// it base64-encoded. A decode failure returns the raw body unchanged.
func (r *Request) BodyBytes() []byte {
	if !r.IsBase64Encoded {
		return r.Body
	}
	decoded, err := base64.StdEncoding.DecodeString(string(r.Body))
	if err != nil {
		return r.Body
	}
	return decoded
}
