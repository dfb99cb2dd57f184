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

// Package apigw adapts AWS API Gateway proxy events to the normalized
// relay request/response pair. Both the REST (payload format 1.0) and
// HTTP API (payload format 2.0) envelopes are supported. The adapter
// preserves HTTP method, full path, repeated query keys, header names
// case-insensitively, and the body's base64 flag in both directions.
//
// The envelope structs mirror the wire format directly so the adapter
// has no dependency on any AWS SDK.
package apigw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/edgerelay/relay"
)

// Event is the REST API proxy integration envelope (payload format 1.0).
type Event struct {
	Resource                        string              `json:"resource"`
	Path                            string              `json:"path"`
	HTTPMethod                      string              `json:"httpMethod"`
	Headers                         map[string]string   `json:"headers"`
	MultiValueHeaders               map[string][]string `json:"multiValueHeaders"`
	QueryStringParameters           map[string]string   `json:"queryStringParameters"`
	MultiValueQueryStringParameters map[string][]string `json:"multiValueQueryStringParameters"`
	Body                            string              `json:"body"`
	IsBase64Encoded                 bool                `json:"isBase64Encoded"`
}

// EventV2 is the HTTP API proxy integration envelope (payload format 2.0).
type EventV2 struct {
	Version         string            `json:"version"`
	RawPath         string            `json:"rawPath"`
	RawQueryString  string            `json:"rawQueryString"`
	Headers         map[string]string `json:"headers"`
	Cookies         []string          `json:"cookies"`
	RequestContext  RequestContextV2  `json:"requestContext"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// RequestContextV2 carries the HTTP description of a format 2.0 event.
type RequestContextV2 struct {
	HTTP HTTPDescription `json:"http"`
}

// HTTPDescription is the http block of a format 2.0 request context.
type HTTPDescription struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// ProxyResponse is the envelope returned to API Gateway.
type ProxyResponse struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// NewRequest translates a REST proxy event. The event itself rides along
// for routes registered with relay.WithPassthrough.
func NewRequest(ctx context.Context, e Event) relay.Request {
	query := make(url.Values, len(e.MultiValueQueryStringParameters)+len(e.QueryStringParameters))
	for k, vs := range e.MultiValueQueryStringParameters {
		query[k] = vs
	}
	// Single-value params fill any keys the multi-value map omitted.
	for k, v := range e.QueryStringParameters {
		if _, ok := query[k]; !ok {
			query[k] = []string{v}
		}
	}

	headers := make(http.Header, len(e.MultiValueHeaders)+len(e.Headers))
	for k, vs := range e.MultiValueHeaders {
		for _, v := range vs {
			headers.Add(k, v)
		}
	}
	for k, v := range e.Headers {
		if headers.Get(k) == "" {
			headers.Set(k, v)
		}
	}

	return relay.Request{
		Method:          e.HTTPMethod,
		Path:            e.Path,
		Query:           query,
		Headers:         headers,
		Body:            []byte(e.Body),
		IsBase64Encoded: e.IsBase64Encoded,
		PlatformContext: ctx,
		Event:           e,
	}
}

// NewRequestV2 translates an HTTP API (format 2.0) proxy event.
func NewRequestV2(ctx context.Context, e EventV2) relay.Request {
	query, _ := url.ParseQuery(e.RawQueryString)

	headers := make(http.Header, len(e.Headers)+1)
	for k, v := range e.Headers {
		// Format 2.0 joins repeated headers with commas already.
		headers.Set(k, v)
	}
	if len(e.Cookies) > 0 {
		headers.Set("Cookie", strings.Join(e.Cookies, "; "))
	}

	return relay.Request{
		Method:          e.RequestContext.HTTP.Method,
		Path:            e.RawPath,
		Query:           query,
		Headers:         headers,
		Body:            []byte(e.Body),
		IsBase64Encoded: e.IsBase64Encoded,
		PlatformContext: ctx,
		Event:           e,
	}
}

// NewProxyResponse translates a normalized response into the API Gateway
// envelope, conveying the base64 flag the platform requires.
func NewProxyResponse(r relay.Response) ProxyResponse {
	return ProxyResponse{
		StatusCode:      r.StatusCode,
		Headers:         r.Headers,
		Body:            string(r.Body),
		IsBase64Encoded: r.IsBase64Encoded,
	}
}

// Handler builds a Lambda-shaped entry point for an engine. The raw
// payload is sniffed for its format version, translated, dispatched, and
// re-enveloped. Unparsable payloads yield a 400 envelope rather than an
// error, keeping failures inside the response contract.
func Handler(app *relay.API) func(ctx context.Context, raw json.RawMessage) (ProxyResponse, error) {
	return func(ctx context.Context, raw json.RawMessage) (ProxyResponse, error) {
		req, err := parseEvent(ctx, raw)
		if err != nil {
			return ProxyResponse{
				StatusCode:      400,
				Headers:         map[string]string{"Content-Type": "application/json"},
				Body:            fmt.Sprintf(`{"errorMessage":%q}`, err.Error()),
				IsBase64Encoded: false,
			}, nil
		}
		return NewProxyResponse(app.Dispatch(req)), nil
	}
}

// parseEvent sniffs the payload format version and translates the event.
func parseEvent(ctx context.Context, raw json.RawMessage) (relay.Request, error) {
	var probe struct {
		Version    string `json:"version"`
		HTTPMethod string `json:"httpMethod"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return relay.Request{}, fmt.Errorf("unparsable event: %w", err)
	}

	switch {
	case strings.HasPrefix(probe.Version, "2."):
		var e EventV2
		if err := json.Unmarshal(raw, &e); err != nil {
			return relay.Request{}, fmt.Errorf("unparsable v2 event: %w", err)
		}
		return NewRequestV2(ctx, e), nil
	case probe.HTTPMethod != "":
		var e Event
		if err := json.Unmarshal(raw, &e); err != nil {
			return relay.Request{}, fmt.Errorf("unparsable v1 event: %w", err)
		}
		return NewRequest(ctx, e), nil
	default:
		return relay.Request{}, fmt.Errorf("event is neither a v1 nor a v2 proxy payload")
	}
}
