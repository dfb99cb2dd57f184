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
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/edgerelay/relay/template"
)

// HandlerFunc is the handler signature. Handlers read bound parameters
// from the Context and return the literal result triple; a non-nil error
// (or a panic) surfaces as a 500-equivalent response.
type HandlerFunc func(c *Context) (Result, error)

// Context carries one dispatch's bound parameters, the normalized
// request, and the response headers set by the handler. A Context is
// created per dispatch and discarded after the call completes.
type Context struct {
	request *Request
	route   *Route
	params  map[string]template.Value
	headers map[string]string

	platformCtx any
	event       any
	logger      *slog.Logger
}

// Request returns the normalized request being dispatched.
func (c *Context) Request() *Request {
	return c.request
}

// Route returns the route that matched.
func (c *Context) Route() *Route {
	return c.route
}

// Logger returns the engine's structured logger.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Param returns the raw string for a bound path or query parameter, or
// "" when the name is unbound.
func (c *Context) Param(name string) string {
	return c.params[name].Raw
}

// Has reports whether the name is bound.
func (c *Context) Has(name string) bool {
	_, ok := c.params[name]
	return ok
}

// ParamInt returns a bound parameter as an int64.
// Returns an error if the parameter is missing or was not bound as an integer.
func (c *Context) ParamInt(name string) (int64, error) {
	v, ok := c.params[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrParamMissing, name)
	}
	if v.Kind != template.KindInt {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrParamInvalid, name)
	}
	return v.Int, nil
}

// ParamFloat returns a bound parameter as a float64.
// Returns an error if the parameter is missing or was not bound as a float.
func (c *Context) ParamFloat(name string) (float64, error) {
	v, ok := c.params[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrParamMissing, name)
	}
	if v.Kind != template.KindFloat {
		return 0, fmt.Errorf("%w: %s is not a float", ErrParamInvalid, name)
	}
	return v.Float, nil
}

// ParamUUID returns a bound parameter as a uuid.UUID.
// Returns an error if the parameter is missing or was not bound as a UUID.
func (c *Context) ParamUUID(name string) (uuid.UUID, error) {
	v, ok := c.params[name]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrParamMissing, name)
	}
	if v.Kind != template.KindUUID {
		return uuid.Nil, fmt.Errorf("%w: %s is not a UUID", ErrParamInvalid, name)
	}
	return v.UUID, nil
}

// QueryValues returns every raw value for the named query key, repeated
// keys included, bypassing declared-parameter binding.
func (c *Context) QueryValues(name string) []string {
	return c.request.Query[name]
}

// SetHeader sets a response header. Handler-level headers take precedence
// over encoder-generated headers on key collision.
func (c *Context) SetHeader(key, value string) {
	if c.headers == nil {
		c.headers = make(map[string]string, 4)
	}
	c.headers[key] = value
}

// Event returns the raw platform event for routes registered with
// WithPassthrough, else nil.
func (c *Context) Event() any {
	return c.event
}

// PlatformContext returns the raw platform context for routes registered
// with WithPassthrough, else nil.
func (c *Context) PlatformContext() any {
	return c.platformCtx
}
