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
	"github.com/edgerelay/relay/openapi"
	"github.com/edgerelay/relay/template"
)

// Documentation endpoint paths. These are ordinary routes through the
// dispatcher, not a separate code path.
const (
	openAPIPath = "/openapi.json"
	docsPath    = "/docs"
	redocPath   = "/redoc"
)

// registerDocs auto-registers the machine-readable document endpoint and
// the two static viewer pages.
func (a *API) registerDocs() error {
	endpoints := []struct {
		path    string
		handler HandlerFunc
		desc    string
	}{
		{openAPIPath, a.openAPIHandler, "Machine-readable API description"},
		{docsPath, a.swaggerHandler, "Swagger UI documentation"},
		{redocPath, a.redocHandler, "ReDoc documentation"},
	}

	for _, e := range endpoints {
		if _, err := a.Route(e.path, e.handler,
			WithTags("documentation"),
			WithCORS(),
			WithDescription(e.desc),
		); err != nil {
			return err
		}
	}
	return nil
}

func (a *API) openAPIHandler(_ *Context) (Result, error) {
	body, err := a.OpenAPI().JSON()
	if err != nil {
		return Result{}, err
	}
	return Result{Status: "OK", ContentType: "application/json", Body: body}, nil
}

func (a *API) swaggerHandler(_ *Context) (Result, error) {
	return HTML("OK", openapi.SwaggerUI(a.name, openAPIPath)), nil
}

func (a *API) redocHandler(_ *Context) (Result, error) {
	return HTML("OK", openapi.ReDoc(a.name, openAPIPath)), nil
}

// OpenAPI generates the API description from the route table. It is a
// pure read of route metadata and parameter descriptors; no handler is
// invoked.
func (a *API) OpenAPI() *openapi.Document {
	infos := make([]openapi.RouteInfo, 0, len(a.routes))
	for _, r := range a.routes {
		infos = append(infos, routeInfo(r))
	}
	return openapi.Generate(a.name, a.version, infos)
}

// routeInfo derives one route's descriptor: path parameters from the
// template's variable segments, query parameters from the declared list.
func routeInfo(r *Route) openapi.RouteInfo {
	info := openapi.RouteInfo{
		Path:        r.template.Display(),
		Methods:     r.methods,
		Description: r.opts.Description,
		Tags:        r.opts.Tags,
	}

	for _, seg := range r.template.Vars() {
		info.Params = append(info.Params, openapi.Param{
			Name:     seg.Name,
			In:       "path",
			Kind:     paramKind(seg.Kind),
			Required: true,
			Pattern:  seg.Pattern,
		})
	}
	for _, q := range r.opts.Queries {
		info.Params = append(info.Params, openapi.Param{
			Name:        q.Name,
			In:          "query",
			Kind:        paramKind(q.Kind),
			Required:    q.Required,
			Default:     q.Default,
			Description: q.Description,
		})
	}

	return info
}

func paramKind(k template.Kind) openapi.Kind {
	switch k {
	case template.KindInt:
		return openapi.KindInt
	case template.KindFloat:
		return openapi.KindFloat
	case template.KindUUID:
		return openapi.KindUUID
	case template.KindRegex:
		return openapi.KindRegex
	default:
		return openapi.KindString
	}
}
