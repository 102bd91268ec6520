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
	"fmt"
	"sync/atomic"

	"github.com/blinklabs-io/wirestruct/validators"
)

// Field declares one field of a structure definition. Validator is optional
// and only meaningful on scalar and byte-array fields; nested structure
// fields delegate validation to the inner definition's validate hook.
type Field struct {
	Name      string
	Formatter Formatter
	Validator validators.Validator
}

type fieldDef struct {
	name      string
	index     int
	formatter Formatter
	validator validators.Validator
}

// FieldInfo describes one declared field of a definition
type FieldInfo struct {
	Name   string
	Index  int
	Width  int
	Offset int
}

// Definition is the ordered schema shared by all instances of one structure
// kind. It is built once, before any instance exists, and becomes read-only
// the first time an instance is constructed or decoded from it. A frozen
// definition is safe to share across concurrent callers.
type Definition struct {
	name         string
	fields       []*fieldDef
	fieldsByName map[string]*fieldDef
	byteOrder    binary.ByteOrder
	hooks        Hooks
	frozen       atomic.Bool
}

// DefinitionOption adjusts a structure definition at declaration time
type DefinitionOption func(*Definition)

// WithDefinitionByteOrder sets the byte order used by this definition's
// fields when they don't declare one explicitly. A per-call byte order
// override still outranks it
func WithDefinitionByteOrder(order binary.ByteOrder) DefinitionOption {
	return func(d *Definition) {
		d.byteOrder = order
	}
}

// WithBeforeSerialize sets the hook invoked before a non-dry-run serialize
func WithBeforeSerialize(hook func(*Instance)) DefinitionOption {
	return func(d *Definition) {
		d.hooks.BeforeSerialize = hook
	}
}

// WithAfterSerialize sets the hook invoked after a non-dry-run serialize,
// with the produced bytes
func WithAfterSerialize(hook func(*Instance, []byte)) DefinitionOption {
	return func(d *Definition) {
		d.hooks.AfterSerialize = hook
	}
}

// WithValidateHook replaces the default post-decode validation. The hook
// fully replaces the per-field checks; implementations that want them too
// must call CheckFields explicitly
func WithValidateHook(hook func(*Instance) error) DefinitionOption {
	return func(d *Definition) {
		d.hooks.Validate = hook
	}
}

// Define declares a new structure kind from an ordered list of fields.
// Field order is fixed at declaration time and alone determines wire order.
func Define(
	name string,
	fields []Field,
	opts ...DefinitionOption,
) (*Definition, error) {
	d := &Definition{
		name:         name,
		fieldsByName: map[string]*fieldDef{},
	}
	for _, opt := range opts {
		opt(d)
	}
	for _, f := range fields {
		if err := d.AddField(f); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// MustDefine is like Define but panics on schema errors. It is intended for
// static schema declarations.
func MustDefine(name string, fields []Field, opts ...DefinitionOption) *Definition {
	d, err := Define(name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// AddField appends one field declaration. It fails once the definition is
// frozen by its first instance.
func (d *Definition) AddField(f Field) error {
	if d.frozen.Load() {
		return &SchemaError{
			Structure: d.name,
			Field:     f.Name,
			Message:   "definition is frozen and cannot be modified",
		}
	}
	if f.Name == "" {
		return &SchemaError{
			Structure: d.name,
			Message:   "field name must not be empty",
		}
	}
	if f.Formatter == nil {
		return &SchemaError{
			Structure: d.name,
			Field:     f.Name,
			Message:   "field has no formatter",
		}
	}
	if _, ok := d.fieldsByName[f.Name]; ok {
		return &SchemaError{
			Structure: d.name,
			Field:     f.Name,
			Message:   "duplicate field name",
		}
	}
	if d.variable() {
		return &SchemaError{
			Structure: d.name,
			Field:     f.Name,
			Message:   "variable array must be the last field",
		}
	}
	if c, ok := f.Formatter.(schemaChecker); ok {
		if err := c.CheckSchema(); err != nil {
			return &SchemaError{
				Structure: d.name,
				Field:     f.Name,
				Message:   err.Error(),
			}
		}
	}
	fd := &fieldDef{
		name:      f.Name,
		index:     len(d.fields),
		formatter: f.Formatter,
		validator: f.Validator,
	}
	d.fields = append(d.fields, fd)
	d.fieldsByName[f.Name] = fd
	return nil
}

// Name returns the structure kind name
func (d *Definition) Name() string {
	return d.name
}

// Size returns the total wire width in bytes: the sum of all field widths,
// recursing through nested structures. For a definition ending in a
// variable array this is the minimum width.
func (d *Definition) Size() int {
	size := 0
	for _, f := range d.fields {
		size += f.formatter.Width()
	}
	return size
}

// Fields returns the declared fields in wire order with their widths and
// byte offsets
func (d *Definition) Fields() []FieldInfo {
	out := make([]FieldInfo, len(d.fields))
	offset := 0
	for i, f := range d.fields {
		out[i] = FieldInfo{
			Name:   f.name,
			Index:  f.index,
			Width:  f.formatter.Width(),
			Offset: offset,
		}
		offset += f.formatter.Width()
	}
	return out
}

// CheckFields runs the per-field validators against an instance's current
// values. Fields without a validator always pass. This is the default
// validate hook; a custom hook may call it explicitly to combine the
// built-in checks with its own logic.
func (d *Definition) CheckFields(inst *Instance) error {
	var failed []string
	for _, f := range d.fields {
		if f.validator == nil {
			continue
		}
		if !f.validator.Check(inst.values[f.name]) {
			failed = append(failed, f.name)
		}
	}
	if len(failed) > 0 {
		return &ValidationError{
			Structure: d.name,
			Fields:    failed,
		}
	}
	return nil
}

func (d *Definition) variable() bool {
	if len(d.fields) == 0 {
		return false
	}
	_, ok := d.fields[len(d.fields)-1].formatter.(*VarArray)
	return ok
}

// freeze marks the definition read-only. Called on first instance
// construction or decode; concurrent callers sharing a frozen definition
// must not race on the flag, so it only ever transitions false to true
// atomically.
func (d *Definition) freeze() {
	d.frozen.CompareAndSwap(false, true)
}

// resolveOrder determines the effective byte order for this definition's
// fields: per-call override, then definition-level order, then the order
// inherited from the enclosing structure, then the process default.
func (d *Definition) resolveOrder(ctx Context) binary.ByteOrder {
	if ctx.callOrder != nil {
		return ctx.callOrder
	}
	if d.byteOrder != nil {
		return d.byteOrder
	}
	if ctx.ByteOrder != nil {
		return ctx.ByteOrder
	}
	return DefaultByteOrder()
}

func (d *Definition) runValidate(inst *Instance) error {
	hook := d.hooks.Validate
	if hook == nil {
		return d.CheckFields(inst)
	}
	if err := hook(inst); err != nil {
		if _, ok := err.(*ValidationError); ok {
			return err
		}
		return &ValidationError{
			Structure: d.name,
			Message:   err.Error(),
		}
	}
	return nil
}

func (d *Definition) describeLayout() any {
	fields := make([]any, len(d.fields))
	for i, f := range d.fields {
		fields[i] = []any{f.name, describeFormatter(f.formatter)}
	}
	return []any{d.name, fields}
}

func (d *Definition) String() string {
	return fmt.Sprintf("%s (%d fields, %d bytes)", d.name, len(d.fields), d.Size())
}
