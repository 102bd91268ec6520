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
)

// Convenience aliases so callers don't need to import encoding/binary
var (
	LittleEndian binary.ByteOrder = binary.LittleEndian
	BigEndian    binary.ByteOrder = binary.BigEndian
)

// Settings holds the process-wide defaults consulted by Serialize and
// Deserialize when no per-call option overrides them.
//
// The package-level settings are plain shared mutable state with no
// synchronization. Concurrent writers racing on them is a caller
// responsibility; tests and callers that need a scoped change should use
// Swap to save and restore the previous values.
type Settings struct {
	// ValidateEnabled controls whether Deserialize runs the validate hook
	ValidateEnabled bool
	// DryRun suppresses the before/after serialize hooks when true
	DryRun bool
	// ByteOrder is the byte order used by formatters that don't declare
	// one and whose definition doesn't either
	ByteOrder binary.ByteOrder
}

var globalSettings = Settings{
	ValidateEnabled: true,
	DryRun:          false,
	ByteOrder:       binary.LittleEndian,
}

// CurrentSettings returns a copy of the process-wide settings
func CurrentSettings() Settings {
	return globalSettings
}

// Swap replaces the process-wide settings and returns the previous values,
// allowing a caller to restore them afterward
func Swap(s Settings) Settings {
	prev := globalSettings
	if s.ByteOrder == nil {
		s.ByteOrder = binary.LittleEndian
	}
	globalSettings = s
	return prev
}

// ValidateEnabled reports whether decode-time validation is enabled
func ValidateEnabled() bool {
	return globalSettings.ValidateEnabled
}

// SetValidateEnabled enables or disables decode-time validation
func SetValidateEnabled(enabled bool) {
	globalSettings.ValidateEnabled = enabled
}

// DryRun reports whether serialize hooks are suppressed by default
func DryRun() bool {
	return globalSettings.DryRun
}

// SetDryRun sets the default dry-run mode for Serialize
func SetDryRun(dryRun bool) {
	globalSettings.DryRun = dryRun
}

// DefaultByteOrder returns the process-wide default byte order
func DefaultByteOrder() binary.ByteOrder {
	return globalSettings.ByteOrder
}

// SetDefaultByteOrder sets the process-wide default byte order. Passing nil
// restores the little-endian default
func SetDefaultByteOrder(order binary.ByteOrder) {
	if order == nil {
		order = binary.LittleEndian
	}
	globalSettings.ByteOrder = order
}

// CodecOption adjusts a single Serialize or Deserialize call
type CodecOption func(*codecConfig)

type codecConfig struct {
	dryRun    *bool
	byteOrder binary.ByteOrder
}

// WithDryRun overrides the process-wide dry-run setting for one Serialize
// call. It has no effect on Deserialize
func WithDryRun(dryRun bool) CodecOption {
	return func(c *codecConfig) {
		c.dryRun = &dryRun
	}
}

// WithByteOrder overrides the byte order for one call. The override applies
// to every field without an explicitly declared order, including fields of
// nested structures, and takes precedence over definition-level orders
func WithByteOrder(order binary.ByteOrder) CodecOption {
	return func(c *codecConfig) {
		c.byteOrder = order
	}
}

func buildCodecConfig(opts []CodecOption) codecConfig {
	var cfg codecConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c codecConfig) effectiveDryRun() bool {
	if c.dryRun != nil {
		return *c.dryRun
	}
	return globalSettings.DryRun
}
