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

// Package relay routes proxied HTTP events to handler functions.
//
// An API engine owns an ordered, append-only route table. Each route
// binds a compiled path template (see package template) and a per-route
// option bag to a handler. Dispatch tests every matcher against the
// request path in registration order and the first route accepting both
// path and method wins; callers control precedence purely via
// registration order, so more specific templates must be registered
// before more general ones.
//
// Handlers return a literal (status name, content type, body) triple.
// The response encoder maps the status name to a numeric code and
// applies, in fixed order, cache-control, compression, base64
// transcoding, and CORS header assembly, per the route's options.
//
// The engine is built for one-request-per-invocation hosts. The route
// table freezes at the first dispatch; after that, concurrent dispatches
// share only immutable state and need no locking. Translating a hosting
// platform's event envelope to and from the normalized Request/Response
// pair is an adapter's job; see package apigw for AWS API Gateway.
//
//	app := relay.MustNew("thumbnailer", relay.WithAccessToken(secret))
//	app.MustRoute("/images/<uuid:key>", getImage,
//	    relay.WithToken(),
//	    relay.WithCompression(relay.CompressionGzip),
//	    relay.WithBinary(),
//	)
//	resp := app.Dispatch(req)
package relay
