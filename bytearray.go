// Copyright 2026 Blink Labs Software
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

package wirestruct

import (
	"bytes"
	"fmt"
)

// ByteArray is a fixed-length raw byte formatter. Bytes are copied verbatim
// in both directions; a value whose length differs from the declared length
// is rejected at encode time with no implicit truncation or padding.
type ByteArray struct {
	length       int
	defaultValue []byte
}

// Bytes returns a byte-array formatter of the given fixed length. The
// default value is zero-filled unless a fill byte is given.
func Bytes(length int, fill ...byte) *ByteArray {
	b := &ByteArray{
		length:       length,
		defaultValue: make([]byte, length),
	}
	if len(fill) > 0 {
		for i := range b.defaultValue {
			b.defaultValue[i] = fill[0]
		}
	}
	return b
}

// BytesWithDefault returns a byte-array formatter whose length and default
// are taken from the given value
func BytesWithDefault(defaultValue []byte) *ByteArray {
	return &ByteArray{
		length:       len(defaultValue),
		defaultValue: bytes.Clone(defaultValue),
	}
}

func (b *ByteArray) Width() int {
	return b.length
}

func (b *ByteArray) DefaultValue() any {
	return b.defaultValue
}

func (b *ByteArray) Encode(value any, ctx Context) ([]byte, error) {
	v, ok := value.([]byte)
	if !ok {
		return nil, &FormatError{
			Message: fmt.Sprintf("value %v (%T) is not a byte slice", value, value),
		}
	}
	if len(v) != b.length {
		return nil, &FormatError{
			Message: fmt.Sprintf(
				"byte array length %d, expected %d",
				len(v),
				b.length,
			),
		}
	}
	return bytes.Clone(v), nil
}

func (b *ByteArray) Decode(data []byte, ctx Context) (any, int, error) {
	if len(data) < b.length {
		return nil, 0, &FormatError{
			Message: fmt.Sprintf(
				"need %d bytes, have %d",
				b.length,
				len(data),
			),
		}
	}
	return bytes.Clone(data[:b.length]), b.length, nil
}

func (b *ByteArray) CheckSchema() error {
	if b.length <= 0 {
		return fmt.Errorf("byte array length must be positive, got %d", b.length)
	}
	return nil
}

func (b *ByteArray) describeLayout() any {
	return []any{"bytes", b.length}
}
