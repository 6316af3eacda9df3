// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonvalue

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrEmptyDocument is returned by [Parse] when the input holds no value.
	ErrEmptyDocument = errors.New("unexpected end of JSON input")

	// ErrTrailingData is returned by [Parse] when a second value follows the
	// top-level value.
	ErrTrailingData = errors.New("unexpected data after top-level value")
)

// Parse decodes text as exactly one JSON value.
//
// The returned error carries the decoder's diagnostic (for example
// "invalid character '}' looking for beginning of object key string" or
// "unexpected EOF").
func Parse(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, ErrEmptyDocument
		}
		return Value{}, err
	}

	v, err := parseToken(dec, tok)
	if err != nil {
		return Value{}, err
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return Value{}, ErrTrailingData
		}
		return Value{}, err
	}

	return v, nil
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return Value{}, fmt.Errorf("invalid character '%c' looking for beginning of value", rune(t))
		}
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unsupported token %T", tok)
	}
}

func parseObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return ObjectValue(obj), nil
		}

		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("expected string for object key, got %v", tok)
		}

		tok, err = nextToken(dec)
		if err != nil {
			return Value{}, err
		}
		v, err := parseToken(dec, tok)
		if err != nil {
			return Value{}, err
		}
		obj.Set(key, v)
	}
}

func parseArray(dec *json.Decoder) (Value, error) {
	items := make([]Value, 0)
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return Array(items...), nil
		}

		v, err := parseToken(dec, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
}

// nextToken reads a token inside a container, where running out of input is
// always a truncated document.
func nextToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}
