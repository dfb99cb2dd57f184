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
	"strings"
)

var (
	// ErrParamMissing is returned when a required parameter is not found.
	ErrParamMissing = errors.New("parameter not found")

	// ErrParamInvalid is returned when a parameter cannot be parsed.
	ErrParamInvalid = errors.New("invalid parameter value")

	// ErrTableFrozen is returned when a route is registered after the
	// first dispatch. The route table is read-only once dispatching starts.
	ErrTableFrozen = errors.New("route table is frozen after first dispatch")
)

// StatusError is implemented by every dispatch failure. The dispatcher
// converts any StatusError into a well-formed Response; callers never see
// a raw failure.
type StatusError interface {
	error

	// StatusName returns the literal status name fed to the response
	// encoder (e.g. "NOT_FOUND").
	StatusName() string

	// HTTPStatus returns the numeric-equivalent status code.
	HTTPStatus() int
}

// NotFoundError reports that no template matched the request path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no route matches path %q", e.Path)
}

// StatusName implements StatusError.
func (e *NotFoundError) StatusName() string { return "NOT_FOUND" }

// HTTPStatus implements StatusError.
func (e *NotFoundError) HTTPStatus() int { return 404 }

// MethodNotAllowedError reports that at least one template matched the
// path but none of the matching routes accepts the request method.
// Allowed carries the union of accepted methods across all path-matching
// routes, for the Allow header.
type MethodNotAllowedError struct {
	Method  string
	Path    string
	Allowed []string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method %s not allowed for path %q (allowed: %s)",
		e.Method, e.Path, strings.Join(e.Allowed, ","))
}

// StatusName implements StatusError.
func (e *MethodNotAllowedError) StatusName() string { return "METHOD_NOT_ALLOWED" }

// HTTPStatus implements StatusError.
func (e *MethodNotAllowedError) HTTPStatus() int { return 405 }

// BindingError reports a parameter binding failure. A missing required
// parameter is a caller error (400). A coercion failure on a captured
// path value is a server error (500): the matcher's character classes
// should have prevented it, so reaching the coercion step with an
// unparsable value means the route's pattern is looser than its type.
type BindingError struct {
	Param    string
	Reason   string
	Coercion bool
	Err      error
}

func (e *BindingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parameter %q: %s: %v", e.Param, e.Reason, e.Err)
	}
	return fmt.Sprintf("parameter %q: %s", e.Param, e.Reason)
}

// Unwrap returns the underlying error.
func (e *BindingError) Unwrap() error { return e.Err }

// StatusName implements StatusError.
func (e *BindingError) StatusName() string {
	if e.Coercion {
		return "ERROR"
	}
	return "NOK"
}

// HTTPStatus implements StatusError.
func (e *BindingError) HTTPStatus() int {
	if e.Coercion {
		return 500
	}
	return 400
}

// AuthError reports a missing or invalid access token on a route that
// requires one. The handler is never invoked.
type AuthError struct{}

func (e *AuthError) Error() string { return "invalid access token" }

// StatusName implements StatusError.
func (e *AuthError) StatusName() string { return "FORBIDDEN" }

// HTTPStatus implements StatusError.
func (e *AuthError) HTTPStatus() int { return 403 }

// HandlerError wraps a failure raised by a handler, including recovered
// panics.
type HandlerError struct {
	Err error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error { return e.Err }

// StatusName implements StatusError.
func (e *HandlerError) StatusName() string { return "ERROR" }

// HTTPStatus implements StatusError.
func (e *HandlerError) HTTPStatus() int { return 500 }
