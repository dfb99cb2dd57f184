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

package encoding

import (
	"bytes"
	"compress/flate"
	"io"
)

func encodeDeflate(in []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(in)))
	// NewWriter only fails for levels below -2
	dw, _ := flate.NewWriter(buf, flate.DefaultCompression)
	if _, err := dw.Write(in); err != nil {
		dw.Close()
		return nil, err
	}
	if err := dw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeDeflate(in []byte) ([]byte, error) {
	dr := flate.NewReader(bytes.NewReader(in))
	defer dr.Close()
	return io.ReadAll(dr)
}
