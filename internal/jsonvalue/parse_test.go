package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
	}{
		{"null", "null", KindNull},
		{"true", "true", KindBool},
		{"false", " false ", KindBool},
		{"integer", "42", KindNumber},
		{"float", "-1.5e10", KindNumber},
		{"string", `"héllo"`, KindString},
		{"empty array", "[]", KindArray},
		{"empty object", "{}", KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParse_KeepsKeyOrder(t *testing.T) {
	v, err := Parse(`{"zeta":1,"alpha":2,"mid":{"b":true,"a":false}}`)
	require.NoError(t, err)

	obj, ok := v.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, obj.SortedKeys())

	mid, ok := obj.Get("mid")
	require.True(t, ok)
	inner, ok := mid.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, inner.Keys())
}

func TestParse_NumberLiteralPreserved(t *testing.T) {
	v, err := Parse(`[1.10, 12345678901234567890]`)
	require.NoError(t, err)

	items, ok := v.AsArray()
	require.True(t, ok)
	require.Len(t, items, 2)

	n, ok := items[0].AsNumber()
	require.True(t, ok)
	assert.Equal(t, "1.10", n.String())

	n, ok = items[1].AsNumber()
	require.True(t, ok)
	assert.Equal(t, "12345678901234567890", n.String())
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	v, err := Parse(`{"a":1,"b":2,"a":3}`)
	require.NoError(t, err)

	obj, _ := v.AsObject()
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	a, _ := obj.Get("a")
	n, _ := a.AsNumber()
	assert.Equal(t, "3", n.String())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"empty", "", ErrEmptyDocument.Error()},
		{"whitespace", "  \n ", ErrEmptyDocument.Error()},
		{"truncated object", "{", "unexpected EOF"},
		{"truncated array", "[1,", "unexpected EOF"},
		{"trailing value", "{} {}", ErrTrailingData.Error()},
		{"bad literal", "nulx", "invalid character"},
		{"truncated literal", "nul", "unexpected EOF"},
		{"trailing comma", `{"a":1,}`, "invalid character"},
		{"missing colon", `{"a" 1}`, "invalid character"},
		{"numeric key", `{1:2}`, "invalid character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestEqual(t *testing.T) {
	a, err := Parse(`{"x":[1,2,{"k":null}],"y":"s","z":1.0}`)
	require.NoError(t, err)
	b, err := Parse(`{"z":1,"y":"s","x":[1,2,{"k":null}]}`)
	require.NoError(t, err)
	c, err := Parse(`{"z":1,"y":"s","x":[2,1,{"k":null}]}`)
	require.NoError(t, err)

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(String("1"), Number("1")))
}

func TestValue_Interface(t *testing.T) {
	v, err := Parse(`{"aud":["a","b"],"exp":10,"ok":true,"n":null}`)
	require.NoError(t, err)

	m, ok := v.Interface().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, m["aud"])
	assert.Equal(t, true, m["ok"])
	assert.Nil(t, m["n"])
	assert.Contains(t, m, "exp")
}
