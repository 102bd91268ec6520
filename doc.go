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

// Package wirestruct lets callers declare binary wire formats as ordered
// collections of typed fields and derive bidirectional byte-level codecs
// for them.
//
// A structure is declared once as a [Definition] holding an ordered list of
// [Field] entries, each binding a name to a fixed-width [Formatter] (scalar,
// fixed-length byte array, typed array, or nested structure). Instances are
// created from a definition with every field deep-copied from its default,
// mutated freely, and serialized by walking the fields in declaration order.
// Deserialization walks the same fields, consumes the input exactly, and
// runs the definition's validate hook before the instance is returned.
//
// The wire format is the plain concatenation of each field's fixed-width
// encoding with no framing, length prefixes, or type tags. Both sides must
// share the same compiled definition out of band; [Definition.Fingerprint]
// gives a stable digest for asserting that agreement.
//
// Basic usage:
//
//	header := wirestruct.MustDefine("Header", []wirestruct.Field{
//		{Name: "Magic", Formatter: wirestruct.Uint16(0xcafe)},
//		{Name: "DataLength", Formatter: wirestruct.Uint32(0)},
//	})
//
//	msg := header.New()
//	msg.Set("DataLength", 128)
//	data, err := msg.Serialize()
//	...
//	decoded, err := header.Deserialize(data)
package wirestruct
