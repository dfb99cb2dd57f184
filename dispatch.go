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
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/edgerelay/relay/template"
)

// accessTokenParam is the designated query parameter carrying the shared
// secret for routes registered with WithToken.
const accessTokenParam = "access_token"

// Dispatch matches the request to a route, binds parameters, invokes the
// handler, and encodes the result. Every failure is converted to a
// well-formed Response at this boundary; the caller never sees a raw
// error. The first dispatch freezes the route table.
func (a *API) Dispatch(req Request) Response {
	a.frozen.Store(true)
	a.logger.Debug("dispatch", "method", req.Method, "path", req.Path)

	route, captures, err := a.find(req.Method, req.Path)
	if err != nil {
		return a.errorResponse(err, nil, req)
	}

	c, err := a.bind(route, captures, req)
	if err != nil {
		return a.errorResponse(err, route, req)
	}

	if route.opts.TokenRequired && !a.validateToken(req) {
		return a.errorResponse(&AuthError{}, route, req)
	}

	res, err := a.invoke(c, route)
	if err != nil {
		a.logger.Error("handler failed", "path", req.Path, "error", err)
		return a.errorResponse(&HandlerError{Err: err}, route, req)
	}

	return a.encodeResult(res, route, req, c.headers)
}

// find scans the route table in registration order. Every matcher is
// tested against the path; the first route that accepts both path and
// method wins. When only method checks fail, the union of accepted
// methods across path-matching routes feeds the 405 Allow header.
func (a *API) find(method, path string) (*Route, []string, error) {
	var allowed []string
	pathMatched := false

	for _, r := range a.routes {
		captures, ok := r.template.Match(path)
		if !ok {
			continue
		}
		pathMatched = true
		if !r.allowsMethod(method) {
			for _, m := range r.methods {
				if !slices.Contains(allowed, m) {
					allowed = append(allowed, m)
				}
			}
			continue
		}
		return r, captures, nil
	}

	if pathMatched {
		return nil, nil, &MethodNotAllowedError{Method: method, Path: path, Allowed: allowed}
	}
	return nil, nil, &NotFoundError{Path: path}
}

// bind coerces the captured path values and resolves the route's declared
// query parameters into a fresh Context.
func (a *API) bind(route *Route, captures []string, req Request) (*Context, error) {
	vars := route.template.Vars()
	params := make(map[string]template.Value, len(vars)+len(route.opts.Queries))

	for i, seg := range vars {
		v, err := seg.Coerce(captures[i])
		if err != nil {
			return nil, &BindingError{Param: seg.Name, Reason: "path value rejected by converter", Coercion: true, Err: err}
		}
		params[seg.Name] = v
	}

	for _, q := range route.opts.Queries {
		raw, ok := req.QueryValue(q.Name)
		if !ok {
			if q.Required {
				return nil, &BindingError{Param: q.Name, Reason: "required query parameter missing"}
			}
			raw = q.Default
		}
		v, err := template.CoerceAs(q.Kind, raw)
		if err != nil {
			return nil, &BindingError{Param: q.Name, Reason: "query value rejected by converter", Err: err}
		}
		params[q.Name] = v
	}

	if a.strictQuery {
		if err := route.checkUnknownQuery(req); err != nil {
			return nil, err
		}
	}

	c := &Context{
		request: &req,
		route:   route,
		params:  params,
		logger:  a.logger,
	}
	if route.opts.Passthrough {
		c.platformCtx = req.PlatformContext
		c.event = req.Event
	}
	return c, nil
}

// checkUnknownQuery enforces the strict query policy: every request query
// key must name a declared parameter. The access token parameter is
// always admitted.
func (r *Route) checkUnknownQuery(req Request) error {
	for key := range req.Query {
		if key == accessTokenParam {
			continue
		}
		known := false
		for _, q := range r.opts.Queries {
			if q.Name == key {
				known = true
				break
			}
		}
		if !known {
			return &BindingError{Param: key, Reason: "unexpected query parameter"}
		}
	}
	return nil
}

// validateToken compares the request's access token against the
// configured secret. Absence of either side fails closed.
func (a *API) validateToken(req Request) bool {
	token, ok := req.QueryValue(accessTokenParam)
	if !ok || token == "" || a.token == "" {
		return false
	}
	return token == a.token
}

// invoke runs the handler, converting panics into errors so a misbehaving
// handler cannot take down the dispatch boundary.
func (a *API) invoke(c *Context, route *Route) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return route.handler(c)
}

// errorResponse converts a dispatch failure into a well-formed Response.
// Route options still apply when a route had been selected, so CORS and
// cache-control behave identically on error and success paths. Auth
// failures report a fixed message body; everything else reports an
// errorMessage field.
func (a *API) errorResponse(err error, route *Route, req Request) Response {
	se, ok := err.(StatusError)
	if !ok {
		se = &HandlerError{Err: err}
	}

	res := JSON(se.StatusName(), map[string]string{"errorMessage": se.Error()})
	if _, isAuth := se.(*AuthError); isAuth {
		res = JSON(se.StatusName(), map[string]string{"message": "Invalid access token"})
	}

	resp := a.encodeResult(res, route, req, nil)
	var mna *MethodNotAllowedError
	if errors.As(err, &mna) && len(mna.Allowed) > 0 {
		resp.Headers["Allow"] = strings.Join(mna.Allowed, ",")
	}
	return resp
}
