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
	"bytes"
	"fmt"

	"github.com/jinzhu/copier"
)

// Instance is a mutable value conforming to a Definition. Every declared
// field is always populated, and an instance owns its storage exclusively:
// no field value is shared with another instance or with the definition's
// defaults. An instance is safe for concurrent use only while a single
// owner mutates it.
type Instance struct {
	def    *Definition
	values map[string]any
}

// New builds a default-constructed instance: every field is deep-copied
// from its effective default in declaration order. It freezes the
// definition.
func (d *Definition) New() *Instance {
	d.freeze()
	inst := &Instance{
		def:    d,
		values: make(map[string]any, len(d.fields)),
	}
	for _, f := range d.fields {
		inst.values[f.name] = deepCopyValue(f.formatter.DefaultValue())
	}
	return inst
}

// Definition returns the structure definition this instance conforms to
func (inst *Instance) Definition() *Definition {
	return inst.def
}

// Get returns the current value of a field
func (inst *Instance) Get(name string) (any, error) {
	v, ok := inst.values[name]
	if !ok {
		return nil, &SchemaError{
			Structure: inst.def.name,
			Field:     name,
			Message:   "no such field",
		}
	}
	return v, nil
}

// MustGet is like Get but panics on unknown field names
func (inst *Instance) MustGet(name string) any {
	v, err := inst.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Set assigns a field value. No validation happens at assignment time;
// malformed values surface from Serialize (FormatError) or the validators
// surface them after a decode.
func (inst *Instance) Set(name string, value any) error {
	if _, ok := inst.def.fieldsByName[name]; !ok {
		return &SchemaError{
			Structure: inst.def.name,
			Field:     name,
			Message:   "no such field",
		}
	}
	inst.values[name] = value
	return nil
}

// MustSet is like Set but panics on unknown field names
func (inst *Instance) MustSet(name string, value any) {
	if err := inst.Set(name, value); err != nil {
		panic(err)
	}
}

// Duplicate returns a deep copy of the instance
func (inst *Instance) Duplicate() *Instance {
	out := &Instance{
		def:    inst.def,
		values: make(map[string]any, len(inst.values)),
	}
	for name, v := range inst.values {
		out.values[name] = deepCopyValue(v)
	}
	return out
}

// Equal reports whether two instances are of the same kind and hold
// field-by-field equal values. Integer values compare numerically across
// Go integer kinds.
func (inst *Instance) Equal(other *Instance) bool {
	if other == nil || inst.def != other.def {
		return false
	}
	for name, v := range inst.values {
		if !valueEqual(v, other.values[name]) {
			return false
		}
	}
	return true
}

func (inst *Instance) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s{", inst.def.name)
	for i, f := range inst.def.fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %v", f.name, inst.values[f.name])
	}
	buf.WriteString("}")
	return buf.String()
}

// deepCopyValue copies a field value so that no mutable storage is shared
// between instances or with definition defaults
func deepCopyValue(value any) any {
	switch v := value.(type) {
	case *Instance:
		return v.Duplicate()
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = deepCopyValue(e)
		}
		return out
	case []byte:
		var out []byte
		_ = copier.CopyWithOption(&out, &v, copier.Option{DeepCopy: true})
		return out
	default:
		return v
	}
}

// valueEqual compares two field values of matching logical type
func valueEqual(a any, b any) bool {
	switch av := a.(type) {
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av.Equal(bv)
	case []byte:
		bv, ok := b.([]byte)
		return ok && bytes.Equal(av, bv)
	}
	if aSlice, ok := toAnySlice(a); ok {
		bSlice, ok := toAnySlice(b)
		if !ok || len(aSlice) != len(bSlice) {
			return false
		}
		for i := range aSlice {
			if !valueEqual(aSlice[i], bSlice[i]) {
				return false
			}
		}
		return true
	}
	if eq, ok := numericEqual(a, b); ok {
		return eq
	}
	return a == b
}
