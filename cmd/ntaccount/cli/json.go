// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"io"
	"reflect"
)

// Output is where a command writes its result. Commands that declare
// [Command.JSON] get one from [Invocation.Output] with JSON set from
// the --json flag.
//
//	return invocation.Output().Emit(entries, func(w io.Writer) error {
//	    return writeTable(w, entries)
//	})
type Output struct {
	Writer io.Writer
	JSON   bool
}

// Emit writes value as indented JSON when o.JSON is set, and otherwise
// calls text to render the human-readable form. A nil slice is written
// as [] rather than null.
func (o Output) Emit(value any, text func(w io.Writer) error) error {
	if o.JSON {
		return WriteJSON(o.Writer, normalizeNilSlice(value))
	}
	return text(o.Writer)
}

// WriteJSON marshals value as indented JSON and writes it to w.
func WriteJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
