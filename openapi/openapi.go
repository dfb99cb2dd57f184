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

// Package openapi generates an OpenAPI document from route descriptors.
//
// Generation is a pure function of the route table: handlers are never
// invoked, and the parameter lists come from the descriptors captured at
// registration time. Routes are keyed by their canonical display path, in
// which regex converters collapse to bare placeholders; when two routes
// collide on display path and method, the last-registered one wins the
// displayed entry. That is the documented behavior, deliberately distinct
// from the dispatcher's first-registered-wins matching.
package openapi

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Kind mirrors the path converter types without importing the router, so
// the generator stays framework-agnostic.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindUUID
	KindRegex
)

// Param describes one handler parameter: its name, where it is sourced
// from ("path" or "query"), its converter-implied type, and its optional
// default. A parameter with a default is optional; one without is
// required.
type Param struct {
	Name        string
	In          string
	Kind        Kind
	Required    bool
	Default     string
	Pattern     string
	Description string
}

// RouteInfo is one route's contribution to the document: the canonical
// display path, its methods, metadata, and parameter descriptors.
type RouteInfo struct {
	Path        string
	Methods     []string
	Description string
	Tags        []string
	Params      []Param
}

// Info carries the document's title and version.
type Info struct {
	Title   string `json:"title" yaml:"title"`
	Version string `json:"version" yaml:"version"`
}

// Schema is the subset of JSON Schema the converters map onto.
type Schema struct {
	Type    string `json:"type" yaml:"type"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// Parameter is an OpenAPI parameter object.
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	In          string `json:"in" yaml:"in"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      Schema `json:"schema" yaml:"schema"`
}

// ResponseObject is an OpenAPI response object.
type ResponseObject struct {
	Description string `json:"description" yaml:"description"`
}

// Operation is an OpenAPI operation object.
type Operation struct {
	Summary     string                    `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                    `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string                  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Parameters  []Parameter               `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses   map[string]ResponseObject `json:"responses" yaml:"responses"`
}

// PathItem maps lowercase HTTP methods to operations.
type PathItem map[string]Operation

// Document is the generated OpenAPI document.
type Document struct {
	OpenAPI string              `json:"openapi" yaml:"openapi"`
	Info    Info                `json:"info" yaml:"info"`
	Paths   map[string]PathItem `json:"paths" yaml:"paths"`
}

// JSON serializes the document as JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// YAML serializes the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
