// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package jsonvalue implements a tagged-union representation of JSON
// documents.
//
// A [Value] is one of Null, Bool, Number, String, Array or Object. Objects are
// ordered mappings: they remember the order in which keys appeared in the
// source text, so a document can be re-serialized either in source order
// (minify) or with keys sorted (pretty-print). Numbers keep their original
// literal, which means a parse/serialize round trip never changes precision.
package jsonvalue
