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
	"sync"
	"testing"

	"github.com/blinklabs-io/wirestruct"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// A frozen definition is read-only and safe to share across concurrent
// callers, each owning its own instances
func TestConcurrentCodecSharedDefinition(t *testing.T) {
	def := wirestruct.MustDefine("Shared", []wirestruct.Field{
		{Name: "Id", Formatter: wirestruct.Uint32(0)},
		{Name: "Payload", Formatter: wirestruct.Bytes(8)},
	})
	// Freeze before sharing
	_ = def.New()

	runConcurrentCodec(t, def)
}

// The freeze on first use must also be safe when the first uses are
// themselves concurrent
func TestConcurrentCodecFreezeOnFirstUse(t *testing.T) {
	def := wirestruct.MustDefine("FirstUse", []wirestruct.Field{
		{Name: "Id", Formatter: wirestruct.Uint32(0)},
		{Name: "Payload", Formatter: wirestruct.Bytes(8)},
	})
	runConcurrentCodec(t, def)
}

func runConcurrentCodec(t *testing.T, def *wirestruct.Definition) {
	t.Helper()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id uint32) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				inst := def.New()
				if err := inst.Set("Id", id); err != nil {
					t.Errorf("set failed: %s", err)
					return
				}
				data, err := inst.Serialize()
				if err != nil {
					t.Errorf("serialize failed: %s", err)
					return
				}
				decoded, err := def.Deserialize(data)
				if err != nil {
					t.Errorf("deserialize failed: %s", err)
					return
				}
				if !decoded.Equal(inst) {
					t.Errorf("round trip mismatch for id %d", id)
					return
				}
			}
		}(uint32(i))
	}
	wg.Wait()
}
