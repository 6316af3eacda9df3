// Package transform implements the pure text transforms behind the tool
// tabs: Base64 encode/decode, JSON format/minify/validate and JWT decoding.
//
// Every function here is total. It never panics on user input and always
// returns either a result or a typed failure; empty input yields the neutral
// state described on [models.TransformResult].
package transform
