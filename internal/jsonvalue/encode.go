// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonvalue

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// EncodeOptions controls [Marshal] output.
type EncodeOptions struct {
	// Indent is the number of spaces per nesting level. Zero produces compact
	// output with no insignificant whitespace.
	Indent int
	// SortKeys emits object keys in lexicographic order instead of source
	// order.
	SortKeys bool
}

// Marshal serializes v. HTML characters and forward slashes are written
// verbatim.
func Marshal(v Value, opts EncodeOptions) (string, error) {
	e := encoder{opts: opts}
	if err := e.value(v, 0); err != nil {
		return "", err
	}
	return e.b.String(), nil
}

type encoder struct {
	b    strings.Builder
	opts EncodeOptions
}

func (e *encoder) value(v Value, depth int) error {
	switch v.kind {
	case KindNull:
		e.b.WriteString("null")
	case KindBool:
		if v.b {
			e.b.WriteString("true")
		} else {
			e.b.WriteString("false")
		}
	case KindNumber:
		e.b.WriteString(v.s)
	case KindString:
		return e.str(v.s)
	case KindArray:
		return e.array(v.arr, depth)
	case KindObject:
		return e.object(v.obj, depth)
	default:
		return fmt.Errorf("unknown value kind %d", v.kind)
	}
	return nil
}

func (e *encoder) str(s string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode string: %w", err)
	}
	e.b.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return nil
}

func (e *encoder) array(items []Value, depth int) error {
	if len(items) == 0 {
		e.b.WriteString("[]")
		return nil
	}

	e.b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			e.b.WriteByte(',')
		}
		e.newline(depth + 1)
		if err := e.value(item, depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.b.WriteByte(']')
	return nil
}

func (e *encoder) object(obj *Object, depth int) error {
	if obj.Len() == 0 {
		e.b.WriteString("{}")
		return nil
	}

	keys := obj.Keys()
	if e.opts.SortKeys {
		keys = obj.SortedKeys()
	}

	e.b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			e.b.WriteByte(',')
		}
		e.newline(depth + 1)
		if err := e.str(k); err != nil {
			return err
		}
		e.b.WriteByte(':')
		if e.opts.Indent > 0 {
			e.b.WriteByte(' ')
		}
		v, _ := obj.Get(k)
		if err := e.value(v, depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.b.WriteByte('}')
	return nil
}

func (e *encoder) newline(depth int) {
	if e.opts.Indent <= 0 {
		return
	}
	e.b.WriteByte('\n')
	e.b.WriteString(strings.Repeat(" ", depth*e.opts.Indent))
}
