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

// Deserialize decodes a new instance from data, walking the declared fields
// in order. It is all-or-nothing: short input, trailing bytes, or any field
// decode failure returns a FormatError and no instance. When validation is
// enabled in the process settings the definition's validate hook runs on
// the decoded instance and a failure returns a ValidationError, discarding
// the instance. There is no per-call validation override; WithDryRun has no
// effect on decoding.
func (d *Definition) Deserialize(
	data []byte,
	opts ...CodecOption,
) (*Instance, error) {
	cfg := buildCodecConfig(opts)
	ctx := Context{
		Validate:  ValidateEnabled(),
		callOrder: cfg.byteOrder,
	}
	inst, consumed, err := d.decode(data, ctx)
	if err != nil {
		return nil, err
	}
	if consumed != len(data) {
		return nil, &FormatError{
			Structure: d.name,
			Message: fmt.Sprintf(
				"%d trailing bytes after decoding %d",
				len(data)-consumed,
				consumed,
			),
		}
	}
	return inst, nil
}

// decode builds an instance from the start of data, returning the number of
// bytes consumed. Nested structure formatters call it recursively, so the
// validate hook of every decoded structure runs when validation is enabled.
func (d *Definition) decode(data []byte, ctx Context) (*Instance, int, error) {
	d.freeze()
	fieldCtx := ctx
	fieldCtx.ByteOrder = d.resolveOrder(ctx)
	values := make(map[string]any, len(d.fields))
	offset := 0
	for _, f := range d.fields {
		// Each formatter consumes exactly its width; a trailing variable
		// array consumes whatever is left
		val, n, err := f.formatter.Decode(data[offset:], fieldCtx)
		if err != nil {
			return nil, 0, annotateFormatError(err, d.name, f.name)
		}
		values[f.name] = val
		offset += n
	}
	inst := &Instance{
		def:    d,
		values: values,
	}
	if ctx.Validate {
		if err := d.runValidate(inst); err != nil {
			return nil, 0, err
		}
	}
	return inst, offset, nil
}
