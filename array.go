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
	"fmt"
)

// FixedArray is a fixed-count array of another fixed-width formatter. The
// element formatter may be a scalar, byte array, or nested structure, but
// not a variable array. Values decode as []any; any slice kind with
// matching element values is accepted on encode.
type FixedArray struct {
	count int
	elem  Formatter
}

// Array returns a formatter for count consecutive elements encoded by elem
func Array(count int, elem Formatter) *FixedArray {
	return &FixedArray{
		count: count,
		elem:  elem,
	}
}

func (a *FixedArray) Width() int {
	return a.count * a.elem.Width()
}

func (a *FixedArray) DefaultValue() any {
	out := make([]any, a.count)
	for i := range out {
		out[i] = a.elem.DefaultValue()
	}
	return out
}

func (a *FixedArray) Encode(value any, ctx Context) ([]byte, error) {
	elems, ok := toAnySlice(value)
	if !ok {
		return nil, &FormatError{
			Message: fmt.Sprintf("value %v (%T) is not a slice", value, value),
		}
	}
	if len(elems) != a.count {
		return nil, &FormatError{
			Message: fmt.Sprintf(
				"array has %d elements, expected %d",
				len(elems),
				a.count,
			),
		}
	}
	return encodeElems(elems, a.elem, ctx)
}

func (a *FixedArray) Decode(data []byte, ctx Context) (any, int, error) {
	if len(data) < a.Width() {
		return nil, 0, &FormatError{
			Message: fmt.Sprintf(
				"need %d bytes, have %d",
				a.Width(),
				len(data),
			),
		}
	}
	return decodeElems(data, a.count, a.elem, ctx)
}

func (a *FixedArray) CheckSchema() error {
	if a.count <= 0 {
		return fmt.Errorf("array count must be positive, got %d", a.count)
	}
	return checkElemSchema(a.elem)
}

func (a *FixedArray) describeLayout() any {
	return []any{"array", a.count, describeFormatter(a.elem)}
}

// VarArray is a bounded variable-count array of a fixed-width element
// formatter. It is only valid as the last field of a definition: its encoded
// width depends on the assigned value, and decoding consumes all remaining
// input. Width() reports the minimum width and the default value holds
// minCount element defaults.
type VarArray struct {
	minCount int
	maxCount int
	elem     Formatter
}

// VariableArray returns a formatter for between minCount and maxCount
// (inclusive) consecutive elements encoded by elem
func VariableArray(minCount int, maxCount int, elem Formatter) *VarArray {
	return &VarArray{
		minCount: minCount,
		maxCount: maxCount,
		elem:     elem,
	}
}

func (a *VarArray) Width() int {
	return a.minCount * a.elem.Width()
}

func (a *VarArray) DefaultValue() any {
	out := make([]any, a.minCount)
	for i := range out {
		out[i] = a.elem.DefaultValue()
	}
	return out
}

func (a *VarArray) Encode(value any, ctx Context) ([]byte, error) {
	elems, ok := toAnySlice(value)
	if !ok {
		return nil, &FormatError{
			Message: fmt.Sprintf("value %v (%T) is not a slice", value, value),
		}
	}
	if len(elems) < a.minCount || len(elems) > a.maxCount {
		return nil, &FormatError{
			Message: fmt.Sprintf(
				"array has %d elements, expected between %d and %d",
				len(elems),
				a.minCount,
				a.maxCount,
			),
		}
	}
	return encodeElems(elems, a.elem, ctx)
}

// Decode consumes all remaining input, which must hold a whole number of
// elements within the declared bounds
func (a *VarArray) Decode(data []byte, ctx Context) (any, int, error) {
	elemWidth := a.elem.Width()
	if len(data)%elemWidth != 0 {
		return nil, 0, &FormatError{
			Message: fmt.Sprintf(
				"%d remaining bytes is not a whole number of %d-byte elements",
				len(data),
				elemWidth,
			),
		}
	}
	count := len(data) / elemWidth
	if count < a.minCount || count > a.maxCount {
		return nil, 0, &FormatError{
			Message: fmt.Sprintf(
				"input holds %d elements, expected between %d and %d",
				count,
				a.minCount,
				a.maxCount,
			),
		}
	}
	return decodeElems(data, count, a.elem, ctx)
}

func (a *VarArray) CheckSchema() error {
	if a.minCount < 0 || a.maxCount < a.minCount {
		return fmt.Errorf(
			"invalid variable array bounds [%d, %d]",
			a.minCount,
			a.maxCount,
		)
	}
	if a.elem.Width() <= 0 {
		return fmt.Errorf("variable array elements must have a positive width")
	}
	return checkElemSchema(a.elem)
}

func (a *VarArray) describeLayout() any {
	return []any{"vararray", a.minCount, a.maxCount, describeFormatter(a.elem)}
}

func encodeElems(elems []any, elem Formatter, ctx Context) ([]byte, error) {
	out := make([]byte, 0, len(elems)*elem.Width())
	for i, e := range elems {
		encoded, err := elem.Encode(e, ctx)
		if err != nil {
			return nil, prefixElemError(err, i)
		}
		out = append(out, encoded...)
	}
	return out, nil
}

func decodeElems(
	data []byte,
	count int,
	elem Formatter,
	ctx Context,
) (any, int, error) {
	out := make([]any, count)
	offset := 0
	for i := range out {
		val, n, err := elem.Decode(data[offset:], ctx)
		if err != nil {
			return nil, 0, prefixElemError(err, i)
		}
		out[i] = val
		offset += n
	}
	return out, offset, nil
}

func prefixElemError(err error, index int) error {
	if fErr, ok := err.(*FormatError); ok && fErr.Structure == "" {
		fErr.Message = fmt.Sprintf("element %d: %s", index, fErr.Message)
	}
	return err
}

func checkElemSchema(elem Formatter) error {
	if _, ok := elem.(*VarArray); ok {
		return fmt.Errorf("variable arrays cannot be array elements")
	}
	if c, ok := elem.(schemaChecker); ok {
		return c.CheckSchema()
	}
	return nil
}
