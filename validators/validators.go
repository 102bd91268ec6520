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

// Package validators provides the predicate capability evaluated against
// decoded field values, plus the built-in rules. Any bare predicate can
// serve as a validator through the Func adapter.
package validators

import (
	"bytes"
	"math"
	"math/bits"
)

// Validator checks whether a decoded field value satisfies a rule
type Validator interface {
	Check(value any) bool
}

// Func adapts a bare predicate into a Validator
type Func func(value any) bool

func (f Func) Check(value any) bool {
	return f(value)
}

type rangeValidator struct {
	min int64
	max int64
}

// Range returns a validator that passes values v with min <= v <= max
// (inclusive). Non-integer values never pass.
func Range(minValue int64, maxValue int64) Validator {
	return &rangeValidator{
		min: minValue,
		max: maxValue,
	}
}

func (r *rangeValidator) Check(value any) bool {
	v, ok := toInt64(value)
	if !ok {
		// Unsigned values above MaxInt64 exceed any int64 bound
		return false
	}
	return v >= r.min && v <= r.max
}

type exactValueValidator struct {
	expected any
}

// ExactValue returns a validator that passes only values equal to expected.
// Integers compare numerically across Go integer kinds; byte slices compare
// by content.
func ExactValue(expected any) Validator {
	return &exactValueValidator{
		expected: expected,
	}
}

func (e *exactValueValidator) Check(value any) bool {
	if expected, ok := e.expected.([]byte); ok {
		v, ok := value.([]byte)
		return ok && bytes.Equal(expected, v)
	}
	if eq, ok := numericEqual(e.expected, value); ok {
		return eq
	}
	return e.expected == value
}

type bitSizeValidator struct {
	maxBits int
}

// BitSize returns a validator that passes values whose minimal unsigned or
// two's-complement bit width is at most maxBits
func BitSize(maxBits int) Validator {
	return &bitSizeValidator{
		maxBits: maxBits,
	}
}

func (b *bitSizeValidator) Check(value any) bool {
	width, ok := bitWidth(value)
	return ok && width <= b.maxBits
}

type constantValidator bool

func (c constantValidator) Check(value any) bool {
	return bool(c)
}

// True returns a validator that always passes, useful for disabling a check
// in place
func True() Validator {
	return constantValidator(true)
}

// False returns a validator that always fails, useful for forcing a
// validation failure
func False() Validator {
	return constantValidator(false)
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

func toUint64(value any) (uint64, bool) {
	if v, ok := toInt64(value); ok {
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	}
	if v, ok := value.(uint64); ok {
		return v, true
	}
	if v, ok := value.(uint); ok {
		return uint64(v), true
	}
	return 0, false
}

func numericEqual(a any, b any) (bool, bool) {
	aU, aUOk := toUint64(a)
	bU, bUOk := toUint64(b)
	if aUOk && bUOk {
		return aU == bU, true
	}
	aI, aIOk := toInt64(a)
	bI, bIOk := toInt64(b)
	if aIOk && bIOk {
		return aI == bI, true
	}
	if (aUOk || aIOk) && (bUOk || bIOk) {
		return false, true
	}
	return false, false
}

// bitWidth returns the minimal number of bits needed to represent value:
// the unsigned width for non-negative values, the two's-complement width
// (including the sign bit) for negative ones
func bitWidth(value any) (int, bool) {
	if v, ok := toUint64(value); ok {
		return bits.Len64(v), true
	}
	if v, ok := toInt64(value); ok {
		// v is negative here
		return bits.Len64(^uint64(v)) + 1, true
	}
	return 0, false
}
