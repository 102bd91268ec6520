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
	"strings"
)

// SchemaError reports a problem with a structure definition itself, such as
// a duplicate field name or an invalid nesting. It is surfaced at definition
// time and is fatal to that declaration.
type SchemaError struct {
	Structure string
	Field     string
	Message   string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf(
			"schema error: %s.%s: %s",
			e.Structure,
			e.Field,
			e.Message,
		)
	}
	return fmt.Sprintf("schema error: %s: %s", e.Structure, e.Message)
}

// FormatError reports a width or length mismatch while encoding or decoding,
// such as a wrong-length byte array value or an input that is too short or
// has trailing bytes. It is never suppressed.
type FormatError struct {
	Structure string
	Field     string
	Message   string
}

func (e *FormatError) Error() string {
	switch {
	case e.Structure != "" && e.Field != "":
		return fmt.Sprintf(
			"format error: %s.%s: %s",
			e.Structure,
			e.Field,
			e.Message,
		)
	case e.Structure != "":
		return fmt.Sprintf("format error: %s: %s", e.Structure, e.Message)
	default:
		return fmt.Sprintf("format error: %s", e.Message)
	}
}

// ValidationError reports that a decoded instance failed its validate hook.
// Fields names the failing fields when the default per-field checks produced
// the failure.
type ValidationError struct {
	Structure string
	Fields    []string
	Message   string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf(
			"validation error: %s: field(s) %s failed validation",
			e.Structure,
			strings.Join(e.Fields, ", "),
		)
	}
	if e.Message != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Structure, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Structure)
}

// annotateFormatError fills in structure/field context on a FormatError
// returned by a formatter. Context already present is left alone so that
// errors from nested structures keep naming the inner structure.
func annotateFormatError(err error, structure string, field string) error {
	fErr, ok := err.(*FormatError)
	if !ok {
		return err
	}
	if fErr.Structure == "" {
		fErr.Structure = structure
		if fErr.Field == "" {
			fErr.Field = field
		}
	}
	return fErr
}
