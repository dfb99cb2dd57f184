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

package openapi

import "strings"

// openAPIVersion is the document version emitted by Generate.
const openAPIVersion = "3.0.2"

// Generate builds the document from route descriptors, in registration
// order. Colliding path+method pairs are overwritten so the
// last-registered route owns the displayed entry.
func Generate(title, version string, routes []RouteInfo) *Document {
	doc := &Document{
		OpenAPI: openAPIVersion,
		Info:    Info{Title: title, Version: version},
		Paths:   make(map[string]PathItem, len(routes)),
	}

	for _, r := range routes {
		item, ok := doc.Paths[r.Path]
		if !ok {
			item = make(PathItem, len(r.Methods))
			doc.Paths[r.Path] = item
		}
		op := buildOperation(r)
		for _, m := range r.Methods {
			item[strings.ToLower(m)] = op
		}
	}

	return doc
}

// buildOperation converts one route descriptor to an operation.
func buildOperation(r RouteInfo) Operation {
	op := Operation{
		Description: r.Description,
		Tags:        r.Tags,
		Responses: map[string]ResponseObject{
			"200": {Description: "Successful Response"},
		},
	}

	for _, p := range r.Params {
		op.Parameters = append(op.Parameters, Parameter{
			Name:        p.Name,
			In:          p.In,
			Required:    p.Required,
			Description: p.Description,
			Schema:      schemaFor(p),
		})
	}

	return op
}

// schemaFor maps a converter kind onto its OpenAPI schema.
func schemaFor(p Param) Schema {
	s := Schema{Type: "string", Default: p.Default}
	switch p.Kind {
	case KindInt:
		s.Type = "integer"
		s.Format = "int64"
	case KindFloat:
		s.Type = "number"
		s.Format = "double"
	case KindUUID:
		s.Format = "uuid"
	case KindRegex:
		s.Pattern = p.Pattern
	}
	return s
}
