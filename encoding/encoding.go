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

// Package encoding provides byte-slice compression codecs for the
// response encoder. Each codec is an Encode/Decode pair keyed by its
// Content-Encoding token.
package encoding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Content-Encoding tokens for the supported codecs.
const (
	GzipValue    = "gzip"
	DeflateValue = "deflate"
	BrotliValue  = "br"
	ZstdValue    = "zstd"
)

// ErrUnknownEncoding is returned when a token names no registered codec.
var ErrUnknownEncoding = errors.New("unknown content encoding")

type codec struct {
	encode func([]byte) ([]byte, error)
	decode func([]byte) ([]byte, error)
}

var codecs = map[string]codec{
	GzipValue:    {encodeGzip, decodeGzip},
	DeflateValue: {encodeDeflate, decodeDeflate},
	BrotliValue:  {encodeBrotli, decodeBrotli},
	ZstdValue:    {encodeZstd, decodeZstd},
}

// Supported reports whether the token names a registered codec.
func Supported(token string) bool {
	_, ok := codecs[token]
	return ok
}

// Encode compresses in with the codec named by token.
func Encode(token string, in []byte) ([]byte, error) {
	c, ok := codecs[token]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, token)
	}
	return c.encode(in)
}

// Decode decompresses in with the codec named by token.
func Decode(token string, in []byte) ([]byte, error) {
	c, ok := codecs[token]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, token)
	}
	return c.decode(in)
}

// Accepts reports whether an Accept-Encoding header value admits the
// given token, either by name or through the "*" wildcard. Quality values
// are honored only to the extent that q=0 rejects a token; server-driven
// ranking is not performed since routes declare a single codec.
func Accepts(header, token string) bool {
	for _, part := range strings.Split(header, ",") {
		name, params, hasParams := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.TrimSpace(name)
		if name != "*" && !strings.EqualFold(name, token) {
			continue
		}
		if hasParams {
			if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
				if q, err := strconv.ParseFloat(v, 64); err == nil && q == 0 {
					return false
				}
			}
		}
		return true
	}
	return false
}
