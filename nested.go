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

// NestedStruct embeds one structure definition as a field of another. It
// delegates encode/decode to the inner definition's engine, consuming
// exactly that structure's total width. An override table may replace inner
// field defaults for this nesting only; it is consulted when the outer
// structure is default-constructed and never affects the inner definition's
// own stand-alone defaults.
type NestedStruct struct {
	def       *Definition
	overrides map[string]any
}

// NestedOption adjusts a NestedStruct formatter
type NestedOption func(*NestedStruct)

// WithFieldDefault overrides the default value of one inner field for this
// nesting
func WithFieldDefault(name string, value any) NestedOption {
	return func(n *NestedStruct) {
		n.overrides[name] = value
	}
}

// Nested returns a formatter that embeds def as a single field
func Nested(def *Definition, opts ...NestedOption) *NestedStruct {
	n := &NestedStruct{
		def:       def,
		overrides: map[string]any{},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *NestedStruct) Width() int {
	return n.def.Size()
}

// DefaultValue builds a fresh inner instance with this nesting's overrides
// applied
func (n *NestedStruct) DefaultValue() any {
	inst := n.def.New()
	for name, value := range n.overrides {
		inst.values[name] = deepCopyValue(value)
	}
	return inst
}

func (n *NestedStruct) Encode(value any, ctx Context) ([]byte, error) {
	inst, ok := value.(*Instance)
	if !ok {
		return nil, &FormatError{
			Message: fmt.Sprintf(
				"value %v (%T) is not a structure instance",
				value,
				value,
			),
		}
	}
	if inst.def != n.def {
		return nil, &FormatError{
			Message: fmt.Sprintf(
				"instance of %q where %q expected",
				inst.def.name,
				n.def.name,
			),
		}
	}
	return inst.encode(ctx)
}

func (n *NestedStruct) Decode(data []byte, ctx Context) (any, int, error) {
	width := n.def.Size()
	if len(data) < width {
		return nil, 0, &FormatError{
			Message: fmt.Sprintf(
				"need %d bytes for nested %s, have %d",
				width,
				n.def.name,
				len(data),
			),
		}
	}
	inst, consumed, err := n.def.decode(data[:width], ctx)
	if err != nil {
		return nil, 0, err
	}
	return inst, consumed, nil
}

func (n *NestedStruct) CheckSchema() error {
	if n.def == nil {
		return fmt.Errorf("nested structure definition is nil")
	}
	if n.def.variable() {
		return fmt.Errorf(
			"structure %q has a variable-width field and cannot be nested",
			n.def.name,
		)
	}
	for name := range n.overrides {
		if _, ok := n.def.fieldsByName[name]; !ok {
			return fmt.Errorf(
				"default override for unknown field %q of %s",
				name,
				n.def.name,
			)
		}
	}
	return nil
}

func (n *NestedStruct) describeLayout() any {
	return []any{"struct", n.def.describeLayout()}
}
