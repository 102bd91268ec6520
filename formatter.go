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

// Formatter encodes and decodes a single field value at a fixed wire width.
// Encode must produce exactly Width() bytes and Decode must consume exactly
// Width() bytes; the one exception is VariableArray, whose Width() reports
// its minimum and which consumes all remaining input when decoding.
type Formatter interface {
	// Width returns the encoded width in bytes
	Width() int
	// DefaultValue returns the prototype default for the field. Callers
	// must not mutate the returned value; the engine deep-copies it into
	// each new instance
	DefaultValue() any
	// Encode converts a field value to its wire bytes
	Encode(value any, ctx Context) ([]byte, error)
	// Decode converts wire bytes back to a field value, returning the
	// number of bytes consumed
	Decode(data []byte, ctx Context) (any, int, error)
}

// Context carries the resolved per-call state down through nested encodes
// and decodes.
type Context struct {
	// ByteOrder is the effective byte order for the enclosing structure.
	// Formatters with an explicitly declared order ignore it
	ByteOrder binary.ByteOrder
	// DryRun reports whether serialize hooks are suppressed for this
	// operation
	DryRun bool
	// Validate reports whether validate hooks run for this operation
	Validate bool

	// Per-call byte order override, which outranks definition-level
	// orders all the way down the nesting chain
	callOrder binary.ByteOrder
}

// schemaChecker is implemented by formatters that can only verify their
// configuration once they are attached to a definition
type schemaChecker interface {
	CheckSchema() error
}

// layoutDescriber is implemented by the built-in formatters to contribute
// their canonical layout description to a definition fingerprint
type layoutDescriber interface {
	describeLayout() any
}

// describeFormatter returns the canonical layout description for a
// formatter. Externally implemented formatters are described only by their
// width.
func describeFormatter(f Formatter) any {
	if d, ok := f.(layoutDescriber); ok {
		return d.describeLayout()
	}
	return []any{"opaque", f.Width()}
}
