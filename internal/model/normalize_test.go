package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArrayField_Identity(t *testing.T) {
	in := []string{"Yes", "No"}
	assert.Equal(t, in, NormalizeArrayField[string](in))

	anyIn := []any{"0.4", 0.6}
	assert.Equal(t, anyIn, NormalizeArrayField[any](anyIn))
}

func TestNormalizeArrayField_EncodedText(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  []string
	}{
		{"plain string", `["Yes","No"]`, []string{"Yes", "No"}},
		{"raw message array", json.RawMessage(`["A","B","C"]`), []string{"A", "B", "C"}},
		{"raw message encoded string", json.RawMessage(`"[\"Yes\",\"No\"]"`), []string{"Yes", "No"}},
		{"bytes", []byte(` ["x"] `), []string{"x"}},
		{"empty array text", `[]`, []string{}},
		{"mixed any slice", []any{"a", "b"}, []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeArrayField[string](tc.value))
		})
	}
}

func TestNormalizeArrayField_InvalidNeverPanics(t *testing.T) {
	inputs := []any{
		nil,
		"",
		"not json",
		`{"a":1}`,
		`["unterminated"`,
		json.RawMessage(`null`),
		json.RawMessage(`"not an array"`),
		json.RawMessage(`"\"[\\\"too deep\\\"]\""`),
		42,
		3.14,
		true,
		map[string]any{"a": 1},
		[]any{map[string]any{"a": 1}},
	}
	for _, in := range inputs {
		out := NormalizeArrayField[string](in)
		assert.NotNil(t, out, "input %#v", in)
		assert.Empty(t, out, "input %#v", in)
	}
}

func TestNormalizeTextList_NumbersBecomeText(t *testing.T) {
	assert.Equal(t, []string{"0.753", "0.247"}, normalizeTextList(json.RawMessage(`[0.753, "0.247"]`)))
	assert.Equal(t, []string{"0.5", "0.5"}, normalizeTextList(json.RawMessage(`"[\"0.5\",\"0.5\"]"`)))
	assert.Empty(t, normalizeTextList(nil))
}

func TestLooseNumber(t *testing.T) {
	v := looseNumber(json.RawMessage(`"1234.5"`))
	if assert.NotNil(t, v) {
		assert.Equal(t, 1234.5, *v)
	}
	v = looseNumber(json.RawMessage(`987`))
	if assert.NotNil(t, v) {
		assert.Equal(t, 987.0, *v)
	}
	assert.Nil(t, looseNumber(nil))
	assert.Nil(t, looseNumber(json.RawMessage(`null`)))
	assert.Nil(t, looseNumber(json.RawMessage(`""`)))
	assert.Nil(t, looseNumber(json.RawMessage(`"n/a"`)))
}
