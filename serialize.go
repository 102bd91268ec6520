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

// Serialize encodes the instance's current field values in declaration
// order and returns the concatenated bytes. Under the effective dry-run
// mode (the WithDryRun option, else the process setting) the before/after
// serialize hooks are suppressed while the bytes are still produced, so
// callers can query the encoded form without triggering side effects.
func (inst *Instance) Serialize(opts ...CodecOption) ([]byte, error) {
	cfg := buildCodecConfig(opts)
	ctx := Context{
		DryRun:    cfg.effectiveDryRun(),
		callOrder: cfg.byteOrder,
	}
	return inst.encode(ctx)
}

// SerializedSize returns the exact number of bytes Serialize would produce
// for the instance's current values. For fixed-width definitions this
// equals Definition.Size().
func (inst *Instance) SerializedSize() (int, error) {
	data, err := inst.Serialize(WithDryRun(true))
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

func (inst *Instance) encode(ctx Context) ([]byte, error) {
	def := inst.def
	def.freeze()
	if !ctx.DryRun && def.hooks.BeforeSerialize != nil {
		def.hooks.BeforeSerialize(inst)
	}
	fieldCtx := ctx
	fieldCtx.ByteOrder = def.resolveOrder(ctx)
	out := make([]byte, 0, def.Size())
	for _, f := range def.fields {
		encoded, err := f.formatter.Encode(inst.values[f.name], fieldCtx)
		if err != nil {
			return nil, annotateFormatError(err, def.name, f.name)
		}
		out = append(out, encoded...)
	}
	if !ctx.DryRun && def.hooks.AfterSerialize != nil {
		def.hooks.AfterSerialize(inst, out)
	}
	return out, nil
}
