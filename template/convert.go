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
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Value holds a path or query value coerced by a converter. Raw always
// carries the captured string; the typed fields are populated according
// to Kind.
type Value struct {
	Kind  Kind
	Raw   string
	Int   int64
	Float float64
	UUID  uuid.UUID
}

// Coerce converts a captured string into the segment's typed value.
//
// The matcher's character classes make failures unlikely for the built-in
// converters, but regex converters can capture content that fails the
// stricter typed parse (e.g. a looser pattern feeding a UUID downstream),
// so errors are reported rather than defaulted.
func (s Segment) Coerce(raw string) (Value, error) {
	return coerce(s.Kind, raw)
}

func coerce(kind Kind, raw string) (Value, error) {
	v := Value{Kind: kind, Raw: raw}
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("value %q is not an integer: %w", raw, err)
		}
		v.Int = n
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("value %q is not a float: %w", raw, err)
		}
		v.Float = f
	case KindUUID:
		u, err := uuid.Parse(raw)
		if err != nil {
			return Value{}, fmt.Errorf("value %q is not a UUID: %w", raw, err)
		}
		v.UUID = u
	}
	return v, nil
}

// CoerceAs converts a raw string using an arbitrary converter kind. It is
// used for declared query parameters, which carry a Kind but no Segment.
func CoerceAs(kind Kind, raw string) (Value, error) {
	return coerce(kind, raw)
}
