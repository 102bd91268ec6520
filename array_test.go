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

package wirestruct_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/wirestruct"
	"github.com/blinklabs-io/wirestruct/internal/test"
	"github.com/stretchr/testify/require"
)

func TestFixedArray(t *testing.T) {
	def, err := wirestruct.Define("Arr", []wirestruct.Field{
		{Name: "Values", Formatter: wirestruct.Array(3, wirestruct.Uint16(7))},
	})
	require.NoError(t, err)
	require.Equal(t, 6, def.Size())

	// Defaults repeat the element default
	data, err := def.New().Serialize()
	require.NoError(t, err)
	require.Equal(t, "070007000700", test.EncodeHexString(data))

	// Plain typed slices are accepted on encode
	inst := def.New()
	inst.MustSet("Values", []uint16{1, 2, 3})
	data, err = inst.Serialize()
	require.NoError(t, err)
	require.Equal(t, "010002000300", test.EncodeHexString(data))

	decoded, err := def.Deserialize(data)
	require.NoError(t, err)
	require.True(t, decoded.Equal(inst))
}

func TestFixedArrayWrongCount(t *testing.T) {
	def, err := wirestruct.Define("Arr", []wirestruct.Field{
		{Name: "Values", Formatter: wirestruct.Array(3, wirestruct.Uint8(0))},
	})
	require.NoError(t, err)
	inst := def.New()
	inst.MustSet("Values", []int{1, 2})
	_, err = inst.Serialize()
	var fErr *wirestruct.FormatError
	if !errors.As(err, &fErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestVariableArrayDefaults(t *testing.T) {
	varr := wirestruct.VariableArray(5, 7, wirestruct.Uint8(0))
	require.Equal(t, 5, varr.Width())
	require.Equal(t, []any{
		uint64(0), uint64(0), uint64(0), uint64(0), uint64(0),
	}, varr.DefaultValue())
}

func newVarArrayDef(t *testing.T) *wirestruct.Definition {
	t.Helper()
	def, err := wirestruct.Define("Vla", []wirestruct.Field{
		{Name: "Kind", Formatter: wirestruct.Uint8(1)},
		{
			Name:      "Items",
			Formatter: wirestruct.VariableArray(1, 4, wirestruct.Uint16(0)),
		},
	})
	require.NoError(t, err)
	return def
}

func TestVariableArrayRoundTrip(t *testing.T) {
	def := newVarArrayDef(t)
	// Minimum width: one element
	require.Equal(t, 3, def.Size())

	for count := 1; count <= 4; count++ {
		items := make([]uint16, count)
		for i := range items {
			items[i] = uint16(i + 1)
		}
		inst := def.New()
		inst.MustSet("Items", items)
		data, err := inst.Serialize()
		require.NoError(t, err)
		require.Equal(t, 1+2*count, len(data))

		decoded, err := def.Deserialize(data)
		require.NoError(t, err)
		require.True(t, decoded.Equal(inst))
	}
}

func TestVariableArrayEncodeBounds(t *testing.T) {
	def := newVarArrayDef(t)
	for _, count := range []int{0, 5} {
		inst := def.New()
		inst.MustSet("Items", make([]uint16, count))
		_, err := inst.Serialize()
		var fErr *wirestruct.FormatError
		if !errors.As(err, &fErr) {
			t.Fatalf("count %d: expected FormatError, got %v", count, err)
		}
	}
}

func TestVariableArrayDecodeBounds(t *testing.T) {
	def := newVarArrayDef(t)

	// Zero elements is below the minimum
	_, err := def.Deserialize(test.DecodeHexString("01"))
	var fErr *wirestruct.FormatError
	if !errors.As(err, &fErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}

	// Five elements is above the maximum
	_, err = def.Deserialize(test.DecodeHexString("0101000200030004000500"))
	if !errors.As(err, &fErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}

	// Not a whole number of 2-byte elements
	_, err = def.Deserialize(test.DecodeHexString("01010002"))
	if !errors.As(err, &fErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestVariableArrayOfNestedRejected(t *testing.T) {
	// Variable arrays cannot themselves be array elements
	_, err := wirestruct.Define("Bad", []wirestruct.Field{
		{
			Name: "Items",
			Formatter: wirestruct.Array(
				2,
				wirestruct.VariableArray(0, 4, wirestruct.Uint8(0)),
			),
		},
	})
	var sErr *wirestruct.SchemaError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestArrayOfNestedStructs(t *testing.T) {
	point, err := wirestruct.Define("Point", []wirestruct.Field{
		{Name: "X", Formatter: wirestruct.Int16(0)},
		{Name: "Y", Formatter: wirestruct.Int16(0)},
	})
	require.NoError(t, err)
	path, err := wirestruct.Define("Path", []wirestruct.Field{
		{Name: "Points", Formatter: wirestruct.Array(2, wirestruct.Nested(point))},
	})
	require.NoError(t, err)

	inst := path.New()
	first := point.New()
	first.MustSet("X", -1)
	first.MustSet("Y", 2)
	second := point.New()
	second.MustSet("X", 3)
	second.MustSet("Y", -4)
	inst.MustSet("Points", []any{first, second})

	data, err := inst.Serialize()
	require.NoError(t, err)
	require.Equal(t, "ffff02000300fcff", test.EncodeHexString(data))

	decoded, err := path.Deserialize(data)
	require.NoError(t, err)
	require.True(t, decoded.Equal(inst))
}
