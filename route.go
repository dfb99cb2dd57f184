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
	"github.com/edgerelay/relay/template"
)

// Compression names the codec a route applies to its response body when
// the client's Accept-Encoding allows it.
type Compression string

// Supported compression codecs. CompressionNone disables compression.
const (
	CompressionNone    Compression = ""
	CompressionGzip    Compression = "gzip"
	CompressionDeflate Compression = "deflate"
	CompressionBrotli  Compression = "br"
	CompressionZstd    Compression = "zstd"
)

// QueryParam declares a query parameter a handler consumes. Parameters
// with a default are optional; a required parameter absent from the
// request is a binding failure. Declared parameters also feed the
// documentation generator, so the parameter list is fixed at
// registration and never re-introspected per dispatch.
type QueryParam struct {
	Name        string
	Kind        template.Kind
	Required    bool
	Default     string
	Description string
}

// Options is the per-route behavior bag applied by the dispatcher and the
// response encoder.
type Options struct {
	CORS          bool
	CORSMethods   []string // explicit Allow-Methods list; nil means the route's methods
	TokenRequired bool
	Compression   Compression
	BinaryBase64  bool
	CacheControl  string
	Description   string
	Tags          []string
	Passthrough   bool
	Queries       []QueryParam
}

// Route binds one compiled template and its options to a handler. A
// handler may be registered under several Routes (stacked registration),
// each with an independent template and option bag. Routes are immutable
// once registered.
type Route struct {
	template *template.Template
	methods  []string
	handler  HandlerFunc
	opts     Options
}

// Template returns the route's compiled template.
func (r *Route) Template() *template.Template {
	return r.template
}

// Methods returns the route's accepted HTTP methods.
func (r *Route) Methods() []string {
	return r.methods
}

// Options returns the route's option bag.
func (r *Route) Options() Options {
	return r.opts
}

// allowsMethod reports whether the route accepts the method.
func (r *Route) allowsMethod(method string) bool {
	for _, m := range r.methods {
		if m == method {
			return true
		}
	}
	return false
}

// RouteOption defines functional options for route registration.
type RouteOption func(*Route)

// WithMethods sets the HTTP methods the route accepts. The default is GET
// only.
func WithMethods(methods ...string) RouteOption {
	return func(r *Route) {
		r.methods = methods
	}
}

// WithCORS enables the CORS response headers for the route. When explicit
// methods are given they are advertised in Access-Control-Allow-Methods
// instead of the route's own method list.
func WithCORS(methods ...string) RouteOption {
	return func(r *Route) {
		r.opts.CORS = true
		r.opts.CORSMethods = methods
	}
}

// WithToken requires the shared-secret access token on the route. The
// token is carried in the "access_token" query parameter and validated
// against the engine's configured secret before the handler runs.
func WithToken() RouteOption {
	return func(r *Route) {
		r.opts.TokenRequired = true
	}
}

// WithCompression compresses the response body with the given codec when
// the request's Accept-Encoding contains its token. Compression happens
// strictly before base64 transcoding.
func WithCompression(c Compression) RouteOption {
	return func(r *Route) {
		r.opts.Compression = c
	}
}

// WithBinary base64-encodes the (possibly compressed) response body and
// sets the response's base64 flag for the platform adapter.
func WithBinary() RouteOption {
	return func(r *Route) {
		r.opts.BinaryBase64 = true
	}
}

// WithCacheControl attaches the literal Cache-Control directive to "OK"
// responses. Any other status forces "no-cache" so a stale cache can
// never serve an error body.
func WithCacheControl(directive string) RouteOption {
	return func(r *Route) {
		r.opts.CacheControl = directive
	}
}

// WithDescription sets the route description used by the documentation
// generator.
func WithDescription(desc string) RouteOption {
	return func(r *Route) {
		r.opts.Description = desc
	}
}

// WithTags sets the documentation tags for the route.
func WithTags(tags ...string) RouteOption {
	return func(r *Route) {
		r.opts.Tags = tags
	}
}

// WithPassthrough exposes the raw platform context/event pair on the
// handler's Context. It is purely additive and independent of token
// validation.
func WithPassthrough() RouteOption {
	return func(r *Route) {
		r.opts.Passthrough = true
	}
}

// WithQuery declares a required query parameter of the given kind.
func WithQuery(name string, kind template.Kind) RouteOption {
	return func(r *Route) {
		r.opts.Queries = append(r.opts.Queries, QueryParam{
			Name:     name,
			Kind:     kind,
			Required: true,
		})
	}
}

// WithOptionalQuery declares an optional query parameter with a default
// value bound when the request omits the key. The default must satisfy
// the parameter's converter; Route rejects the registration otherwise.
func WithOptionalQuery(name string, kind template.Kind, def string) RouteOption {
	return func(r *Route) {
		r.opts.Queries = append(r.opts.Queries, QueryParam{
			Name:    name,
			Kind:    kind,
			Default: def,
		})
	}
}
