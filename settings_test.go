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
	"testing"

	"github.com/blinklabs-io/wirestruct"
	"github.com/blinklabs-io/wirestruct/internal/test"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	s := wirestruct.CurrentSettings()
	require.True(t, s.ValidateEnabled)
	require.False(t, s.DryRun)
	require.Equal(t, wirestruct.LittleEndian, s.ByteOrder)
}

func TestSettingsSwap(t *testing.T) {
	prev := wirestruct.Swap(wirestruct.Settings{
		ValidateEnabled: false,
		DryRun:          true,
		ByteOrder:       wirestruct.BigEndian,
	})
	defer wirestruct.Swap(prev)

	require.False(t, wirestruct.ValidateEnabled())
	require.True(t, wirestruct.DryRun())
	require.Equal(t, wirestruct.BigEndian, wirestruct.DefaultByteOrder())
}

func TestDefaultByteOrderAppliesToSerialize(t *testing.T) {
	def, err := wirestruct.Define("Plain", []wirestruct.Field{
		{Name: "Value", Formatter: wirestruct.Uint16(0xff00)},
	})
	require.NoError(t, err)

	wirestruct.SetDefaultByteOrder(wirestruct.BigEndian)
	defer wirestruct.SetDefaultByteOrder(nil)

	data, err := def.New().Serialize()
	require.NoError(t, err)
	require.Equal(t, "ff00", test.EncodeHexString(data))
}

func TestSetDefaultByteOrderNilRestoresLittleEndian(t *testing.T) {
	wirestruct.SetDefaultByteOrder(nil)
	require.Equal(t, wirestruct.LittleEndian, wirestruct.DefaultByteOrder())
}
