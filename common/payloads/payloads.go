// Copyright (c) 2024 Chronoflow Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package payloads encodes user values into the opaque payloads attached
// to failure details and decodes them back. The failure types themselves
// never interpret payload contents; this is the layer that does.
package payloads

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"

	failurev1 "github.com/chronoflow/chronoflow-go/api/failure/v1"
)

const (
	// MetadataEncoding is the payload metadata key naming the encoding.
	MetadataEncoding = "encoding"

	// EncodingJSON marks a payload whose data is plain JSON.
	EncodingJSON = "json/plain"
)

// Encode converts values into payloads, one per value, preserving order.
// Encoding failures are collected per value and returned together; no
// payloads are returned if any value fails.
func Encode(values ...interface{}) ([]*failurev1.Payload, error) {
	var errs error
	result := make([]*failurev1.Payload, 0, len(values))
	for i, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("encode value %d: %w", i, err))
			continue
		}
		result = append(result, &failurev1.Payload{
			Metadata: map[string][]byte{MetadataEncoding: []byte(EncodingJSON)},
			Data:     data,
		})
	}
	if errs != nil {
		return nil, errs
	}
	return result, nil
}

// Decode unmarshals payloads into the given pointers, by position.
// Callers may pass fewer pointers than there are payloads to read a
// prefix; passing more is an error. Per-payload failures are collected
// and returned together.
func Decode(payloads []*failurev1.Payload, valuePtrs ...interface{}) error {
	if len(valuePtrs) > len(payloads) {
		return fmt.Errorf("decoding %d values from %d payloads", len(valuePtrs), len(payloads))
	}
	var errs error
	for i, ptr := range valuePtrs {
		p := payloads[i]
		if p == nil {
			errs = multierr.Append(errs, fmt.Errorf("decode payload %d: payload is nil", i))
			continue
		}
		if encoding := string(p.Metadata[MetadataEncoding]); encoding != "" && encoding != EncodingJSON {
			errs = multierr.Append(errs, fmt.Errorf("decode payload %d: unsupported encoding %q", i, encoding))
			continue
		}
		if err := json.Unmarshal(p.Data, ptr); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("decode payload %d: %w", i, err))
		}
	}
	return errs
}
