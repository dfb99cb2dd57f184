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

import "encoding/json"

// Result is the literal triple a handler returns: a status name, a
// content type, and a body. The response encoder maps the status name to
// a numeric code and applies the route's option behaviors.
type Result struct {
	Status      string
	ContentType string
	Body        []byte
}

// Text builds a text/plain result.
func Text(status, body string) Result {
	return Result{Status: status, ContentType: "text/plain", Body: []byte(body)}
}

// JSON builds an application/json result by marshaling v. A marshal
// failure degrades to an ERROR result rather than a malformed body.
func JSON(status string, v any) Result {
	b, err := json.Marshal(v)
	if err != nil {
		return Result{
			Status:      "ERROR",
			ContentType: "application/json",
			Body:        []byte(`{"errorMessage":"response serialization failed"}`),
		}
	}
	return Result{Status: status, ContentType: "application/json", Body: b}
}

// Binary builds an application/octet-stream result.
func Binary(status string, body []byte) Result {
	return Result{Status: status, ContentType: "application/octet-stream", Body: body}
}

// HTML builds a text/html result.
func HTML(status, body string) Result {
	return Result{Status: status, ContentType: "text/html", Body: []byte(body)}
}

// Response is the normalized response envelope produced by the response
// encoder. The external adapter translates it into whatever shape the
// hosting platform requires, including conveying IsBase64Encoded.
type Response struct {
	StatusCode      int
	ContentType     string
	Body            []byte
	Headers         map[string]string
	IsBase64Encoded bool
}

// statusCodes is the fixed table translating known status names to
// numeric codes. The mapping is total: unknown names fall back to 500 in
// StatusCode rather than being accepted as 200.
var statusCodes = map[string]int{
	"OK":                 200,
	"CREATED":            201,
	"ACCEPTED":           202,
	"EMPTY":              204,
	"MOVED":              301,
	"FOUND":              302,
	"NOK":                400,
	"UNAUTHORIZED":       401,
	"FORBIDDEN":          403,
	"NOT_FOUND":          404,
	"METHOD_NOT_ALLOWED": 405,
	"CONFLICT":           409,
	"TOO_MANY_REQUESTS":  429,
	"ERROR":              500,
	"NOT_IMPLEMENTED":    501,
}

// StatusCode maps a status name to its numeric code. Unknown names map
// to 500.
func StatusCode(name string) int {
	if code, ok := statusCodes[name]; ok {
		return code
	}
	return 500
}
