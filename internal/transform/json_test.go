package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dev-utils/internal/jsonvalue"
	"github.com/MKhiriev/go-dev-utils/models"
)

var sampleDocs = []string{
	`{"name":"devutils","tags":["a","b"],"nested":{"z":1,"a":[{"y":null,"x":true}]},"url":"https://x.io/p"}`,
	`[1, 2.50, -3e2, "s", false, null, {}, []]`,
	`"plain"`,
	`{"b":{},"a":[]}`,
}

func opts(width int) models.TransformOptions {
	return models.TransformOptions{IndentWidth: width}
}

func TestFormatJSON_SortsKeysAndIndents(t *testing.T) {
	res := FormatJSON(`{"b":1,"a":{"d":[1,2],"c":"x/y"}}`, opts(2))
	require.True(t, res.Succeeded)

	want := "{\n" +
		"  \"a\": {\n" +
		"    \"c\": \"x/y\",\n" +
		"    \"d\": [\n" +
		"      1,\n" +
		"      2\n" +
		"    ]\n" +
		"  },\n" +
		"  \"b\": 1\n" +
		"}"
	assert.Equal(t, want, res.Output)
}

func TestFormatJSON_Widths(t *testing.T) {
	in := `{"a":[1]}`

	tests := []struct {
		width int
		want  string
	}{
		{0, "{\n  \"a\": [\n    1\n  ]\n}"},
		{2, "{\n  \"a\": [\n    1\n  ]\n}"},
		{4, "{\n    \"a\": [\n        1\n    ]\n}"},
		{IndentTab, "{\n        \"a\": [\n                1\n        ]\n}"},
	}

	for _, tt := range tests {
		res := FormatJSON(in, opts(tt.width))
		require.True(t, res.Succeeded)
		assert.Equal(t, tt.want, res.Output, "width %d", tt.width)
	}
}

func TestFormatJSON_Idempotent(t *testing.T) {
	for _, doc := range sampleDocs {
		once := FormatJSON(doc, opts(2))
		require.True(t, once.Succeeded)

		twice := FormatJSON(once.Output, opts(2))
		require.True(t, twice.Succeeded)
		assert.Equal(t, once.Output, twice.Output)

		min := MinifyJSON(once.Output, opts(0))
		require.True(t, min.Succeeded)
		again := FormatJSON(min.Output, opts(2))
		assert.Equal(t, once.Output, again.Output)
	}
}

func TestTransforms_PreserveSemantics(t *testing.T) {
	for _, doc := range sampleDocs {
		orig, err := jsonvalue.Parse(doc)
		require.NoError(t, err)

		min := MinifyJSON(doc, opts(0))
		require.True(t, min.Succeeded)
		parsed, err := jsonvalue.Parse(min.Output)
		require.NoError(t, err)
		assert.True(t, jsonvalue.Equal(orig, parsed))

		for _, w := range IndentPresets {
			f := FormatJSON(doc, opts(w))
			require.True(t, f.Succeeded)
			parsed, err = jsonvalue.Parse(f.Output)
			require.NoError(t, err)
			assert.True(t, jsonvalue.Equal(orig, parsed), "width %d", w)
		}
	}
}

func TestMinifyJSON_KeepsSourceOrder(t *testing.T) {
	res := MinifyJSON("{\n  \"zeta\": 1,\n  \"alpha\": [ 1, 2 ]\n}", opts(0))

	require.True(t, res.Succeeded)
	assert.Equal(t, `{"zeta":1,"alpha":[1,2]}`, res.Output)
}

func TestValidateJSON(t *testing.T) {
	ok := ValidateJSON(`{"a":1}`, opts(0))
	assert.True(t, ok.Succeeded)
	assert.Equal(t, ValidJSONMessage, ok.Output)

	bad := ValidateJSON(`{"a":}`, opts(0))
	assert.False(t, bad.Succeeded)
	assert.True(t, errors.Is(bad.Err, ErrInvalidJSON))
}

func TestJSON_MalformedInput(t *testing.T) {
	transforms := map[string]func(string, models.TransformOptions) models.TransformResult{
		"format":   FormatJSON,
		"minify":   MinifyJSON,
		"validate": ValidateJSON,
	}

	for name, fn := range transforms {
		t.Run(name, func(t *testing.T) {
			res := fn("{", opts(2))
			assert.False(t, res.Succeeded)
			assert.Empty(t, res.Output)
			assert.Contains(t, res.ErrorMessage, msgInvalidJSONPrefix)
			assert.Greater(t, len(res.ErrorMessage), len(msgInvalidJSONPrefix))
			assert.True(t, errors.Is(res.Err, ErrInvalidJSON))
		})
	}
}

func TestJSON_BlankInputIsNeutral(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t "} {
		for _, res := range []models.TransformResult{
			FormatJSON(in, opts(2)),
			MinifyJSON(in, opts(0)),
			ValidateJSON(in, opts(0)),
		} {
			assert.False(t, res.Succeeded)
			assert.True(t, res.Neutral())
			assert.Nil(t, res.Err)
		}
	}
}

func TestJSON_Lenient(t *testing.T) {
	in := "{\n  // comment\n  \"a\": 1, /* block */\n}"

	strict := FormatJSON(in, models.TransformOptions{IndentWidth: 2})
	assert.False(t, strict.Succeeded)

	lenient := FormatJSON(in, models.TransformOptions{IndentWidth: 2, Lenient: true})
	require.True(t, lenient.Succeeded)
	assert.Equal(t, "{\n  \"a\": 1\n}", lenient.Output)
}

func TestReindent(t *testing.T) {
	in := "{\n  \"a\": {\n    \"b\": 1\n  },\n\n  \"c\": 2\n}"

	assert.Equal(t, "{\n    \"a\": {\n        \"b\": 1\n    },\n\n    \"c\": 2\n}", Reindent(in, 4))
	assert.Equal(t, in, Reindent(in, 2))
	assert.Equal(t, "{\n\"a\": {\n\"b\": 1\n},\n\n\"c\": 2\n}", Reindent(in, 0))
}
