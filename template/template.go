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

// Package template compiles route templates into anchored path matchers.
//
// A template is a slash-delimited path whose segments are either literal
// text or a variable wrapped in angle brackets. A variable segment may
// carry a converter prefix selecting the type of value it accepts:
//
//	/users/<id>                  string (default), any chars except '/'
//	/users/<int:id>              digit run
//	/points/<float:lng>          digit run with optional decimal part
//	/assets/<uuid:key>           canonical UUID form
//	/files/<regex([a-z]+\.jpg):name>  explicit pattern, verbatim
//
// Compilation produces a single anchored regular expression binding one
// captured value per declared variable segment, in order, plus a
// canonical display form used for documentation. In the display form every
// converter collapses to a bare "{name}" placeholder, so two templates that
// differ only in the regex body of a same-named variable render as one
// logical path. That collapse is a documented property of the display form,
// not of matching.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies the converter applied to a variable segment.
type Kind uint8

const (
	// KindString matches any characters except the path separator.
	KindString Kind = iota
	// KindInt matches a digit run.
	KindInt
	// KindFloat matches a digit run with an optional decimal part.
	KindFloat
	// KindUUID matches the canonical 8-4-4-4-12 hex UUID form.
	KindUUID
	// KindRegex matches a caller-supplied pattern verbatim.
	KindRegex
)

// String returns the converter name as written in templates.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindUUID:
		return "uuid"
	case KindRegex:
		return "regex"
	default:
		return "string"
	}
}

// pattern returns the character class the converter substitutes into the
// compiled matcher. KindRegex is handled by the caller since its pattern
// is per-segment.
func (k Kind) pattern() string {
	switch k {
	case KindInt:
		return `[0-9]+`
	case KindFloat:
		return `[+-]?[0-9]+(?:\.[0-9]+)?`
	case KindUUID:
		return `[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`
	default:
		return `[^/]+`
	}
}

// Segment is one slash-delimited element of a compiled template: either a
// literal or a named, typed variable.
type Segment struct {
	Literal string // literal text, empty for variable segments
	Name    string // variable name, empty for literal segments
	Kind    Kind   // converter, meaningful for variable segments only
	Pattern string // regex body for KindRegex segments
}

// Variable reports whether the segment binds a value from the path.
func (s Segment) Variable() bool {
	return s.Name != ""
}

// Error describes a malformed route template. It is returned at
// registration time and is the only failure the compiler produces.
type Error struct {
	Template string // the raw template that failed to compile
	Reason   string // human-readable cause
	Err      error  // underlying error, if any (e.g. a regexp parse error)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("template %q: %s: %v", e.Template, e.Reason, e.Err)
	}
	return fmt.Sprintf("template %q: %s", e.Template, e.Reason)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Template is a compiled route template. It is immutable after Compile
// and safe for concurrent use.
type Template struct {
	raw      string
	segments []Segment
	vars     []Segment
	matcher  *regexp.Regexp
	groups   []int // matcher group index per variable, in declaration order
	display  string
}

// identRe validates variable names. Names must be unique within one
// template; that invariant is enforced during compilation.
var identRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Compile parses and compiles a route template. It fails with *Error when
// the template does not start with '/', a variable segment references an
// unknown converter, a regex converter carries an unparsable pattern, or a
// variable name repeats within the template.
func Compile(raw string) (*Template, error) {
	if !strings.HasPrefix(raw, "/") {
		return nil, &Error{Template: raw, Reason: "must start with '/'"}
	}

	t := &Template{raw: raw}
	seen := make(map[string]bool)

	for _, part := range strings.Split(strings.TrimPrefix(raw, "/"), "/") {
		seg, err := parseSegment(raw, part)
		if err != nil {
			return nil, err
		}
		if seg.Variable() {
			if seen[seg.Name] {
				return nil, &Error{Template: raw, Reason: fmt.Sprintf("duplicate variable name %q", seg.Name)}
			}
			seen[seg.Name] = true
			t.vars = append(t.vars, seg)
		}
		t.segments = append(t.segments, seg)
	}

	matcher, err := t.compileMatcher()
	if err != nil {
		return nil, &Error{Template: raw, Reason: "invalid regex pattern", Err: err}
	}
	t.matcher = matcher
	t.display = t.compileDisplay()

	return t, nil
}

// MustCompile is like Compile but panics on error. It is intended for
// templates known to be well-formed at build time.
func MustCompile(raw string) *Template {
	t, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// parseSegment classifies a single path segment. Variable segments take
// the form <name> or <converter:name>; the converter may be the literal
// prefix "regex(...)" whose body can itself contain ':'.
func parseSegment(raw, part string) (Segment, error) {
	if !strings.HasPrefix(part, "<") || !strings.HasSuffix(part, ">") {
		if strings.ContainsAny(part, "<>") {
			return Segment{}, &Error{Template: raw, Reason: fmt.Sprintf("malformed segment %q", part)}
		}
		return Segment{Literal: part}, nil
	}

	inner := part[1 : len(part)-1]

	// The variable name cannot contain ':', so splitting at the last colon
	// keeps regex bodies with embedded colons intact.
	conv, name := "", inner
	if i := strings.LastIndex(inner, ":"); i >= 0 {
		conv, name = inner[:i], inner[i+1:]
	}
	if !identRe.MatchString(name) {
		return Segment{}, &Error{Template: raw, Reason: fmt.Sprintf("invalid variable name %q", name)}
	}

	seg := Segment{Name: name}
	switch {
	case conv == "" || conv == "string":
		seg.Kind = KindString
	case conv == "int":
		seg.Kind = KindInt
	case conv == "float":
		seg.Kind = KindFloat
	case conv == "uuid":
		seg.Kind = KindUUID
	case strings.HasPrefix(conv, "regex(") && strings.HasSuffix(conv, ")"):
		seg.Kind = KindRegex
		seg.Pattern = conv[len("regex(") : len(conv)-1]
	default:
		return Segment{}, &Error{Template: raw, Reason: fmt.Sprintf("unknown converter %q", conv)}
	}

	return seg, nil
}

// compileMatcher builds the anchored whole-path expression. Each variable
// segment is wrapped in its own capture group. A regex converter body is
// inserted verbatim and may contain capture groups of its own, so the
// group index belonging to each variable is recorded and Match reads its
// captures through that mapping rather than by position.
func (t *Template) compileMatcher() (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	group := 0
	for _, seg := range t.segments {
		b.WriteString("/")
		if !seg.Variable() {
			b.WriteString(regexp.QuoteMeta(seg.Literal))
			continue
		}
		group++
		t.groups = append(t.groups, group)
		b.WriteString("(")
		if seg.Kind == KindRegex {
			inner, err := regexp.Compile(seg.Pattern)
			if err != nil {
				return nil, err
			}
			group += inner.NumSubexp()
			b.WriteString(seg.Pattern)
		} else {
			b.WriteString(seg.Kind.pattern())
		}
		b.WriteString(")")
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

// compileDisplay renders the canonical display form: literal segments
// verbatim, every variable as "{name}" regardless of converter.
func (t *Template) compileDisplay() string {
	var b strings.Builder
	for _, seg := range t.segments {
		b.WriteString("/")
		if seg.Variable() {
			b.WriteString("{")
			b.WriteString(seg.Name)
			b.WriteString("}")
		} else {
			b.WriteString(seg.Literal)
		}
	}
	return b.String()
}

// Raw returns the template string as written at registration.
func (t *Template) Raw() string {
	return t.raw
}

// Display returns the canonical display form used for documentation and
// ambiguity comparisons.
func (t *Template) Display() string {
	return t.display
}

// Segments returns the ordered segment list.
func (t *Template) Segments() []Segment {
	return t.segments
}

// Vars returns the variable segments in declaration order. Its length
// equals the number of values returned by Match.
func (t *Template) Vars() []Segment {
	return t.vars
}

// Match tests the path against the compiled matcher. On success it
// returns the captured raw strings, one per variable segment, in order.
func (t *Template) Match(path string) ([]string, bool) {
	m := t.matcher.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	out := make([]string, len(t.groups))
	for i, g := range t.groups {
		out[i] = m[g]
	}
	return out, true
}
