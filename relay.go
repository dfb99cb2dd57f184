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
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/edgerelay/relay/template"
)

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// tokenEnvVar is the environment variable the shared-secret access token
// is read from when WithAccessToken is not supplied.
const tokenEnvVar = "TOKEN"

// Option defines functional options for engine configuration.
type Option func(*API)

// WithAccessToken sets the process-wide shared secret validated by routes
// registered with WithToken. It overrides the TOKEN environment variable.
func WithAccessToken(token string) Option {
	return func(a *API) {
		a.token = token
	}
}

// WithStrictQuery rejects requests carrying query keys that match no
// declared parameter with a 400-equivalent response. The default policy
// silently ignores unknown keys.
func WithStrictQuery() Option {
	return func(a *API) {
		a.strictQuery = true
	}
}

// WithoutDocs suppresses the automatic registration of the /openapi.json,
// /docs, and /redoc routes.
func WithoutDocs() Option {
	return func(a *API) {
		a.docs = false
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *API) {
		a.logger = logger
	}
}

// WithVersion sets the API version string emitted in the generated
// documentation. The default is "0.0.1".
func WithVersion(version string) Option {
	return func(a *API) {
		a.version = version
	}
}

// API is the engine: it owns the route table and the process-wide
// configuration, and dispatches normalized requests to handlers.
//
// The route table is append-only during the registration phase and frozen
// at the first dispatch. After freezing, concurrent dispatches need no
// locking: every lookup reads immutable state.
//
// Example:
//
//	app := relay.MustNew("my-api")
//	app.MustRoute("/users/<int:id>", getUser,
//	    relay.WithCORS(),
//	    relay.WithCacheControl("public,max-age=3600"),
//	)
//	resp := app.Dispatch(req)
type API struct {
	name    string
	version string
	routes  []*Route

	token       string
	strictQuery bool
	docs        bool
	logger      *slog.Logger

	frozen atomic.Bool
}

// New creates an engine. The access token defaults to the TOKEN
// environment variable; documentation routes are registered unless
// WithoutDocs is given.
func New(name string, opts ...Option) (*API, error) {
	a := &API{
		name:    name,
		version: "0.0.1",
		token:   os.Getenv(tokenEnvVar),
		docs:    true,
		logger:  noopLogger,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.docs {
		if err := a.registerDocs(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// MustNew is like New but panics on error.
func MustNew(name string, opts ...Option) *API {
	a, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the application name.
func (a *API) Name() string {
	return a.name
}

// Route compiles the template and appends a route to the table. Template
// compilation failures propagate as *template.Error; they are fatal to
// startup and must not be skipped. Registration order is the only
// precedence rule at dispatch time, so more specific templates must be
// registered before more general ones.
//
// Registering the same handler under several templates (stacked
// registration) is supported; each Route is independent.
func (a *API) Route(path string, handler HandlerFunc, opts ...RouteOption) (*Route, error) {
	if a.frozen.Load() {
		return nil, ErrTableFrozen
	}

	tmpl, err := template.Compile(path)
	if err != nil {
		return nil, err
	}

	r := &Route{
		template: tmpl,
		methods:  []string{"GET"},
		handler:  handler,
	}
	for _, opt := range opts {
		opt(r)
	}

	// A default that its own converter rejects is a configuration defect,
	// surfaced here rather than as a 400 on every request that omits the
	// parameter.
	for _, q := range r.opts.Queries {
		if q.Required {
			continue
		}
		if _, err := template.CoerceAs(q.Kind, q.Default); err != nil {
			return nil, fmt.Errorf("route %q: default for query parameter %q: %w", path, q.Name, err)
		}
	}

	a.routes = append(a.routes, r)
	return r, nil
}

// MustRoute is like Route but panics on error. A malformed route table is
// an unrecoverable configuration defect, so panicking at startup is the
// intended failure mode.
func (a *API) MustRoute(path string, handler HandlerFunc, opts ...RouteOption) *Route {
	r, err := a.Route(path, handler, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Routes returns the route table in registration order.
func (a *API) Routes() []*Route {
	return a.routes
}
