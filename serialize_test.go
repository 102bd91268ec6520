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
	"bytes"
	"errors"
	"testing"

	"github.com/blinklabs-io/wirestruct"
	"github.com/blinklabs-io/wirestruct/internal/test"
	"github.com/stretchr/testify/require"
)

// newSimpleDef mirrors a three-field structure with non-trivial defaults
func newSimpleDef(t *testing.T) *wirestruct.Definition {
	t.Helper()
	def, err := wirestruct.Define("Simple", []wirestruct.Field{
		{Name: "First", Formatter: wirestruct.Uint8(0xde)},
		{Name: "Second", Formatter: wirestruct.Uint16(0xcafe)},
		{Name: "Third", Formatter: wirestruct.Uint8(0xad)},
	})
	require.NoError(t, err)
	return def
}

func TestSerializeSimple(t *testing.T) {
	def := newSimpleDef(t)
	data, err := def.New().Serialize()
	require.NoError(t, err)
	require.Equal(t, "defecaad", test.EncodeHexString(data))
}

func TestSerializeFieldOrderIsDeclarationOrder(t *testing.T) {
	def := newSimpleDef(t)
	inst := def.New()
	// Assign in reverse declaration order; wire order must not change
	inst.MustSet("Third", 0x01)
	inst.MustSet("Second", 0x0203)
	inst.MustSet("First", 0x04)
	data, err := inst.Serialize()
	require.NoError(t, err)
	require.Equal(t, "04030201", test.EncodeHexString(data))
}

func TestSerializeBigEndianDefinition(t *testing.T) {
	def, err := wirestruct.Define(
		"BigEndian",
		[]wirestruct.Field{
			{Name: "Value", Formatter: wirestruct.Uint16(0xff00)},
		},
		wirestruct.WithDefinitionByteOrder(wirestruct.BigEndian),
	)
	require.NoError(t, err)
	data, err := def.New().Serialize()
	require.NoError(t, err)
	require.Equal(t, "ff00", test.EncodeHexString(data))

	// A per-call byte order override outranks the definition-level order
	data, err = def.New().Serialize(wirestruct.WithByteOrder(wirestruct.LittleEndian))
	require.NoError(t, err)
	require.Equal(t, "00ff", test.EncodeHexString(data))
}

func TestSerializeExplicitFieldOrderWins(t *testing.T) {
	def, err := wirestruct.Define("Mixed", []wirestruct.Field{
		{Name: "Big", Formatter: wirestruct.Uint16(0x1234, wirestruct.BigEndian)},
		{Name: "Inherited", Formatter: wirestruct.Uint16(0x1234)},
	})
	require.NoError(t, err)
	data, err := def.New().Serialize(wirestruct.WithByteOrder(wirestruct.LittleEndian))
	require.NoError(t, err)
	require.Equal(t, "12343412", test.EncodeHexString(data))
}

func TestNestedInheritsDefinitionByteOrder(t *testing.T) {
	// The inner definition declares no order of its own, so its fields
	// follow the enclosing structure's effective order when nested
	inner, err := wirestruct.Define("Inner", []wirestruct.Field{
		{Name: "Value", Formatter: wirestruct.Uint16(0xff00)},
	})
	require.NoError(t, err)
	outer, err := wirestruct.Define(
		"Outer",
		[]wirestruct.Field{
			{Name: "Inner", Formatter: wirestruct.Nested(inner)},
		},
		wirestruct.WithDefinitionByteOrder(wirestruct.BigEndian),
	)
	require.NoError(t, err)

	data, err := outer.New().Serialize()
	require.NoError(t, err)
	require.Equal(t, "ff00", test.EncodeHexString(data))

	// Stand-alone, the inner definition still follows the process default
	data, err = inner.New().Serialize()
	require.NoError(t, err)
	require.Equal(t, "00ff", test.EncodeHexString(data))

	// Decoding resolves the same way
	decoded, err := outer.Deserialize(test.DecodeHexString("ff00"))
	require.NoError(t, err)
	innerInst := decoded.MustGet("Inner").(*wirestruct.Instance)
	require.Equal(t, uint64(0xff00), innerInst.MustGet("Value"))
}

func TestSerializeHooks(t *testing.T) {
	var beforeCalls, afterCalls int
	var afterBytes []byte
	def, err := wirestruct.Define(
		"Hooked",
		[]wirestruct.Field{
			{Name: "Value", Formatter: wirestruct.Uint16(0xcafe)},
		},
		wirestruct.WithBeforeSerialize(func(inst *wirestruct.Instance) {
			beforeCalls++
		}),
		wirestruct.WithAfterSerialize(func(inst *wirestruct.Instance, data []byte) {
			afterCalls++
			afterBytes = data
		}),
	)
	require.NoError(t, err)
	inst := def.New()

	data, err := inst.Serialize()
	require.NoError(t, err)
	require.Equal(t, 1, beforeCalls)
	require.Equal(t, 1, afterCalls)
	require.True(t, bytes.Equal(data, afterBytes))
}

func TestSerializeDryRunSuppressesHooks(t *testing.T) {
	var hookCalls int
	def, err := wirestruct.Define(
		"Hooked",
		[]wirestruct.Field{
			{Name: "Value", Formatter: wirestruct.Uint16(0xcafe)},
		},
		wirestruct.WithBeforeSerialize(func(inst *wirestruct.Instance) {
			hookCalls++
		}),
		wirestruct.WithAfterSerialize(func(inst *wirestruct.Instance, data []byte) {
			hookCalls++
		}),
	)
	require.NoError(t, err)
	inst := def.New()

	dryData, err := inst.Serialize(wirestruct.WithDryRun(true))
	require.NoError(t, err)
	require.Equal(t, 0, hookCalls)

	// Bytes must match a non-dry-run serialize of the same values
	data, err := inst.Serialize()
	require.NoError(t, err)
	require.Equal(t, data, dryData)
	require.Equal(t, 2, hookCalls)
}

func TestSerializeDryRunFromSettings(t *testing.T) {
	var hookCalls int
	def, err := wirestruct.Define(
		"Hooked",
		[]wirestruct.Field{
			{Name: "Value", Formatter: wirestruct.Uint8(0)},
		},
		wirestruct.WithBeforeSerialize(func(inst *wirestruct.Instance) {
			hookCalls++
		}),
	)
	require.NoError(t, err)
	inst := def.New()

	wirestruct.SetDryRun(true)
	defer wirestruct.SetDryRun(false)
	_, err = inst.Serialize()
	require.NoError(t, err)
	require.Equal(t, 0, hookCalls)

	// An explicit option overrides the process-wide setting
	_, err = inst.Serialize(wirestruct.WithDryRun(false))
	require.NoError(t, err)
	require.Equal(t, 1, hookCalls)
}

func TestSerializeByteArrayLengthMismatch(t *testing.T) {
	def, err := wirestruct.Define("Padded", []wirestruct.Field{
		{Name: "Data", Formatter: wirestruct.Bytes(128)},
	})
	require.NoError(t, err)
	inst := def.New()
	inst.MustSet("Data", make([]byte, 127))
	_, err = inst.Serialize()
	var fErr *wirestruct.FormatError
	if !errors.As(err, &fErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	require.Equal(t, "Padded", fErr.Structure)
	require.Equal(t, "Data", fErr.Field)
}

func TestSerializedSize(t *testing.T) {
	def := newSimpleDef(t)
	size, err := def.New().SerializedSize()
	require.NoError(t, err)
	require.Equal(t, def.Size(), size)
	require.Equal(t, 4, size)
}
