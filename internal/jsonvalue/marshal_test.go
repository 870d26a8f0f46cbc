package jsonvalue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Marshal ───────────────────────────────────────────────────────────────────

func TestMarshal_PreservesCarriedKeyOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("z", String("last letter"))
	obj.Set("a", Number("1"))
	obj.Set("m", Array{Bool(true), Null{}})

	data, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last letter","a":1,"m":[true,null]}`, string(data))
}

func TestMarshal_DoesNotEscapeHTML(t *testing.T) {
	data, err := Marshal(String("<b>Tom & Jerry</b>"))
	require.NoError(t, err)
	assert.Equal(t, `"<b>Tom & Jerry</b>"`, string(data))
}

func TestMarshal_RoundTripKeepsNumberLiterals(t *testing.T) {
	const src = `{"price":1.50,"big":12345678901234567890,"exp":1E+2}`

	data, err := Marshal(MustParse(src))
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}

func TestMarshal_InvalidNumber(t *testing.T) {
	for _, n := range []Number{"", "abc", "1/2", ".5", "1."} {
		_, err := Marshal(Array{n})
		assert.ErrorIs(t, err, ErrInvalidNumber, "literal %q", string(n))
	}
}

func TestMarshal_NilValuesEncodeAsNull(t *testing.T) {
	data, err := Marshal(Array{nil})
	require.NoError(t, err)
	assert.Equal(t, `[null]`, string(data))
}

func TestMarshalIndent(t *testing.T) {
	v := MustParse(`{"greeting":{"hello":"Hi"},"tags":["en"],"empty":{}}`)

	data, err := MarshalIndent(v, "", "  ")
	require.NoError(t, err)

	want := "{\n" +
		"  \"greeting\": {\n" +
		"    \"hello\": \"Hi\"\n" +
		"  },\n" +
		"  \"tags\": [\n" +
		"    \"en\"\n" +
		"  ],\n" +
		"  \"empty\": {}\n" +
		"}"
	assert.Equal(t, want, string(data))
}

// TestMarshalJSON_StdlibInterop verifies that values nested inside ordinary Go
// structures are encoded through their MarshalJSON methods.
func TestMarshalJSON_StdlibInterop(t *testing.T) {
	payload := map[string]Value{"doc": MustParse(`{"b":1,"a":2}`)}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Equal(t, `{"doc":{"b":1,"a":2}}`, string(data))
}
