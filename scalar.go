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
	"encoding/binary"
	"fmt"
)

// Scalar is a fixed-width integer formatter. Unsigned scalars decode as
// uint64 and signed scalars as int64, regardless of width. An optional
// explicitly declared byte order outranks every other byte-order setting.
type Scalar struct {
	width        int
	signed       bool
	order        binary.ByteOrder
	defaultValue any
}

func newScalar(
	width int,
	signed bool,
	defaultValue any,
	order []binary.ByteOrder,
) *Scalar {
	s := &Scalar{
		width:        width,
		signed:       signed,
		defaultValue: defaultValue,
	}
	if len(order) > 0 {
		s.order = order[0]
	}
	return s
}

// Uint8 returns a 1-byte unsigned scalar formatter
func Uint8(defaultValue uint8, order ...binary.ByteOrder) *Scalar {
	return newScalar(1, false, uint64(defaultValue), order)
}

// Int8 returns a 1-byte signed scalar formatter
func Int8(defaultValue int8, order ...binary.ByteOrder) *Scalar {
	return newScalar(1, true, int64(defaultValue), order)
}

// Uint16 returns a 2-byte unsigned scalar formatter
func Uint16(defaultValue uint16, order ...binary.ByteOrder) *Scalar {
	return newScalar(2, false, uint64(defaultValue), order)
}

// Int16 returns a 2-byte signed scalar formatter
func Int16(defaultValue int16, order ...binary.ByteOrder) *Scalar {
	return newScalar(2, true, int64(defaultValue), order)
}

// Uint32 returns a 4-byte unsigned scalar formatter
func Uint32(defaultValue uint32, order ...binary.ByteOrder) *Scalar {
	return newScalar(4, false, uint64(defaultValue), order)
}

// Int32 returns a 4-byte signed scalar formatter
func Int32(defaultValue int32, order ...binary.ByteOrder) *Scalar {
	return newScalar(4, true, int64(defaultValue), order)
}

// Uint64 returns an 8-byte unsigned scalar formatter
func Uint64(defaultValue uint64, order ...binary.ByteOrder) *Scalar {
	return newScalar(8, false, defaultValue, order)
}

// Int64 returns an 8-byte signed scalar formatter
func Int64(defaultValue int64, order ...binary.ByteOrder) *Scalar {
	return newScalar(8, true, defaultValue, order)
}

func (s *Scalar) Width() int {
	return s.width
}

func (s *Scalar) DefaultValue() any {
	return s.defaultValue
}

func (s *Scalar) Encode(value any, ctx Context) ([]byte, error) {
	order := s.effectiveOrder(ctx)
	var bits uint64
	if s.signed {
		v, ok := toInt64(value)
		if !ok {
			return nil, &FormatError{
				Message: fmt.Sprintf("value %v (%T) is not a valid integer", value, value),
			}
		}
		if s.width < 8 {
			minVal := int64(-1) << (8*s.width - 1)
			maxVal := int64(1)<<(8*s.width-1) - 1
			if v < minVal || v > maxVal {
				return nil, &FormatError{
					Message: fmt.Sprintf(
						"value %d does not fit in %d-byte signed field",
						v,
						s.width,
					),
				}
			}
		}
		bits = uint64(v)
	} else {
		v, ok := toUint64(value)
		if !ok {
			return nil, &FormatError{
				Message: fmt.Sprintf("value %v (%T) is not a valid unsigned integer", value, value),
			}
		}
		if s.width < 8 && v > (uint64(1)<<(8*s.width))-1 {
			return nil, &FormatError{
				Message: fmt.Sprintf(
					"value %d does not fit in %d-byte unsigned field",
					v,
					s.width,
				),
			}
		}
		bits = v
	}
	buf := make([]byte, s.width)
	putBits(buf, bits, order)
	return buf, nil
}

func (s *Scalar) Decode(data []byte, ctx Context) (any, int, error) {
	if len(data) < s.width {
		return nil, 0, &FormatError{
			Message: fmt.Sprintf(
				"need %d bytes, have %d",
				s.width,
				len(data),
			),
		}
	}
	bits := getBits(data[:s.width], s.effectiveOrder(ctx))
	if s.signed {
		// Sign-extend to 64 bits
		shift := 64 - 8*s.width
		return int64(bits<<shift) >> shift, s.width, nil
	}
	return bits, s.width, nil
}

func (s *Scalar) effectiveOrder(ctx Context) binary.ByteOrder {
	if s.order != nil {
		return s.order
	}
	if ctx.ByteOrder != nil {
		return ctx.ByteOrder
	}
	return DefaultByteOrder()
}

func (s *Scalar) describeLayout() any {
	return []any{"scalar", s.width, s.signed, orderName(s.order)}
}

func putBits(buf []byte, bits uint64, order binary.ByteOrder) {
	switch len(buf) {
	case 1:
		buf[0] = byte(bits)
	case 2:
		order.PutUint16(buf, uint16(bits))
	case 4:
		order.PutUint32(buf, uint32(bits))
	case 8:
		order.PutUint64(buf, bits)
	}
}

func getBits(data []byte, order binary.ByteOrder) uint64 {
	switch len(data) {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(order.Uint16(data))
	case 4:
		return uint64(order.Uint32(data))
	case 8:
		return order.Uint64(data)
	}
	return 0
}

func orderName(order binary.ByteOrder) string {
	if order == nil {
		return ""
	}
	// ByteOrder includes String(), and the name distinguishes custom
	// implementations in layout fingerprints
	return order.String()
}
