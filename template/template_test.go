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

package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Literal(t *testing.T) {
	t.Parallel()

	tmpl, err := Compile("/users/profile")
	require.NoError(t, err)

	assert.Equal(t, "/users/profile", tmpl.Raw())
	assert.Equal(t, "/users/profile", tmpl.Display())
	assert.Empty(t, tmpl.Vars())

	_, ok := tmpl.Match("/users/profile")
	assert.True(t, ok)
	_, ok = tmpl.Match("/users/profile/extra")
	assert.False(t, ok)
	_, ok = tmpl.Match("/users")
	assert.False(t, ok)
}

func TestCompile_Root(t *testing.T) {
	t.Parallel()

	tmpl, err := Compile("/")
	require.NoError(t, err)

	_, ok := tmpl.Match("/")
	assert.True(t, ok)
	_, ok = tmpl.Match("/x")
	assert.False(t, ok)
}

func TestCompile_DefaultConverterIsString(t *testing.T) {
	t.Parallel()

	tmpl, err := Compile("/test/<id>")
	require.NoError(t, err)

	require.Len(t, tmpl.Vars(), 1)
	assert.Equal(t, "id", tmpl.Vars()[0].Name)
	assert.Equal(t, KindString, tmpl.Vars()[0].Kind)

	caps, ok := tmpl.Match("/test/42")
	require.True(t, ok)
	assert.Equal(t, []string{"42"}, caps)

	// String converter never crosses a path separator.
	_, ok = tmpl.Match("/test/a/b")
	assert.False(t, ok)
}

func TestCompile_Converters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		match    string
		captured string
		reject   []string
	}{
		{
			name:     "int",
			template: "/items/<int:id>",
			match:    "/items/123",
			captured: "123",
			reject:   []string{"/items/abc", "/items/12.5", "/items/-3"},
		},
		{
			name:     "float",
			template: "/points/<float:lng>",
			match:    "/points/-12.75",
			captured: "-12.75",
			reject:   []string{"/points/abc", "/points/."},
		},
		{
			name:     "float without fraction",
			template: "/points/<float:lng>",
			match:    "/points/12",
			captured: "12",
		},
		{
			name:     "uuid",
			template: "/assets/<uuid:key>",
			match:    "/assets/6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			captured: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			reject:   []string{"/assets/6ba7b810", "/assets/zzz7b810-9dad-11d1-80b4-00c04fd430c8"},
		},
		{
			name:     "regex",
			template: `/files/<regex([a-z]+\.jpg):name>`,
			match:    "/files/photo.jpg",
			captured: "photo.jpg",
			reject:   []string{"/files/photo.png", "/files/PHOTO.jpg"},
		},
		{
			name:     "explicit string",
			template: "/users/<string:name>",
			match:    "/users/alice",
			captured: "alice",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := Compile(tt.template)
			require.NoError(t, err)

			caps, ok := tmpl.Match(tt.match)
			require.True(t, ok, "expected %q to match", tt.match)
			assert.Equal(t, []string{tt.captured}, caps)

			for _, path := range tt.reject {
				_, ok := tmpl.Match(path)
				assert.False(t, ok, "expected %q not to match", path)
			}
		})
	}
}

// A regex body is inserted verbatim, so it may carry capture groups of
// its own. Those must not shift the values bound to later variables.
func TestCompile_RegexWithInnerGroups(t *testing.T) {
	t.Parallel()

	tmpl, err := Compile(`/files/<regex((a|b)c):name>/<int:id>`)
	require.NoError(t, err)

	caps, ok := tmpl.Match("/files/ac/5")
	require.True(t, ok)
	assert.Equal(t, []string{"ac", "5"}, caps)

	caps, ok = tmpl.Match("/files/bc/12")
	require.True(t, ok)
	assert.Equal(t, []string{"bc", "12"}, caps)

	_, ok = tmpl.Match("/files/cc/5")
	assert.False(t, ok)

	// Several groups inside one body, including a named one.
	tmpl, err = Compile(`/v/<regex((?P<maj>[0-9]+)\.([0-9]+)):ver>/<tag>`)
	require.NoError(t, err)

	caps, ok = tmpl.Match("/v/1.2/stable")
	require.True(t, ok)
	assert.Equal(t, []string{"1.2", "stable"}, caps)
}

func TestCompile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
	}{
		{"missing leading slash", "users/<id>"},
		{"unknown converter", "/users/<number:id>"},
		{"bad regex pattern", "/files/<regex([):name>"},
		{"duplicate variable", "/pair/<id>/<id>"},
		{"invalid variable name", "/users/<int:1id>"},
		{"stray bracket", "/users/<id"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Compile(tt.template)
			require.Error(t, err)

			var terr *Error
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tt.template, terr.Template)
		})
	}
}

func TestCompile_MultipleVars(t *testing.T) {
	t.Parallel()

	tmpl, err := Compile("/users/<int:uid>/files/<name>")
	require.NoError(t, err)

	caps, ok := tmpl.Match("/users/7/files/report")
	require.True(t, ok)
	assert.Equal(t, []string{"7", "report"}, caps)

	vars := tmpl.Vars()
	require.Len(t, vars, 2)
	assert.Equal(t, "uid", vars[0].Name)
	assert.Equal(t, "name", vars[1].Name)
}

// Display must contain exactly the original literal segments and {name}
// placeholders, in order, for every converter.
func TestDisplay_Canonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		template string
		display  string
	}{
		{"/test/<id>", "/test/{id}"},
		{"/items/<int:id>", "/items/{id}"},
		{"/points/<float:lng>/<float:lat>", "/points/{lng}/{lat}"},
		{"/assets/<uuid:key>", "/assets/{key}"},
		{`/files/<regex([a-z]+):name>`, "/files/{name}"},
		{"/static", "/static"},
	}

	for _, tt := range tests {
		tt := tt
		tmpl, err := Compile(tt.template)
		require.NoError(t, err)
		assert.Equal(t, tt.display, tmpl.Display())
	}
}

// Two templates that differ only in the regex body of a same-named
// variable collapse to the same display path.
func TestDisplay_RegexCollapse(t *testing.T) {
	t.Parallel()

	a := MustCompile(`/files/<regex([a-z]+):name>`)
	b := MustCompile(`/files/<regex([0-9]+):name>`)

	assert.Equal(t, a.Display(), b.Display())
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	intSeg := Segment{Name: "id", Kind: KindInt}
	v, err := intSeg.Coerce("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Int)
	assert.Equal(t, "42", v.Raw)

	_, err = intSeg.Coerce("abc")
	require.Error(t, err)

	floatSeg := Segment{Name: "lng", Kind: KindFloat}
	v, err = floatSeg.Coerce("-12.75")
	require.NoError(t, err)
	assert.InDelta(t, -12.75, v.Float, 1e-9)

	uuidSeg := Segment{Name: "key", Kind: KindUUID}
	v, err = uuidSeg.Coerce("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", v.UUID.String())

	// A regex capture feeding a stricter downstream check can still fail.
	_, err = uuidSeg.Coerce("not-a-uuid")
	require.Error(t, err)

	strSeg := Segment{Name: "name", Kind: KindString}
	v, err = strSeg.Coerce("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", v.Raw)
}

func TestMustCompile_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustCompile("/users/<bogus:id>")
	})
}
