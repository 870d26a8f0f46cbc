package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-json-localization/internal/jsonvalue"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// treeDiff reports a structural difference between two documents, or "" when
// they are equal. Key order is checked separately where it matters.
func treeDiff(want, got jsonvalue.Value) string {
	return cmp.Diff(want, got, cmp.Comparer(jsonvalue.Equal))
}

func marshal(t *testing.T, v jsonvalue.Value) string {
	t.Helper()
	data, err := jsonvalue.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

var allPolicies = []Policy{
	{Arrays: ArrayUnion, Nulls: NullMerge},
	{Arrays: ArrayUnion, Nulls: NullOverwrite},
	{Arrays: ArrayReplace, Nulls: NullMerge},
	{Arrays: ArrayReplace, Nulls: NullOverwrite},
}

// ── type checks ───────────────────────────────────────────────────────────────

func TestMerge_TopLevelMustBeObjects(t *testing.T) {
	tests := []struct {
		name     string
		base     jsonvalue.Value
		overlay  jsonvalue.Value
		wantSide string
		wantKind jsonvalue.Kind
	}{
		{name: "array base", base: jsonvalue.Array{}, overlay: jsonvalue.NewObject(), wantSide: "base", wantKind: jsonvalue.KindArray},
		{name: "string overlay", base: jsonvalue.NewObject(), overlay: jsonvalue.String("x"), wantSide: "overlay", wantKind: jsonvalue.KindString},
		{name: "null overlay", base: jsonvalue.NewObject(), overlay: jsonvalue.Null{}, wantSide: "overlay", wantKind: jsonvalue.KindNull},
		{name: "nil base", base: nil, overlay: jsonvalue.NewObject(), wantSide: "base", wantKind: jsonvalue.KindNull},
		{name: "typed nil object", base: (*jsonvalue.Object)(nil), overlay: jsonvalue.NewObject(), wantSide: "base", wantKind: jsonvalue.KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge(tt.base, tt.overlay, DefaultPolicy())
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrTypeMismatch)

			var mismatch *TypeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.wantSide, mismatch.Side)
			assert.Equal(t, tt.wantKind, mismatch.Got)
			assert.Contains(t, err.Error(), tt.wantSide)
		})
	}
}

// ── documented examples ───────────────────────────────────────────────────────

func TestMerge_Examples(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
		policy  Policy
		want    string
	}{
		{
			name:    "null merge keeps base",
			base:    `{"a":"x"}`,
			overlay: `{"a":null}`,
			policy:  Policy{Nulls: NullMerge},
			want:    `{"a":"x"}`,
		},
		{
			name:    "null overwrite",
			base:    `{"a":"x"}`,
			overlay: `{"a":null}`,
			policy:  Policy{Nulls: NullOverwrite},
			want:    `{"a":null}`,
		},
		{
			name:    "null merge over null base",
			base:    `{"a":null}`,
			overlay: `{"a":null}`,
			policy:  Policy{Nulls: NullMerge},
			want:    `{"a":null}`,
		},
		{
			name:    "null for a new key is inserted",
			base:    `{}`,
			overlay: `{"a":null}`,
			policy:  Policy{Nulls: NullMerge},
			want:    `{"a":null}`,
		},
		{
			name:    "array union",
			base:    `{"tags":["en","us"]}`,
			overlay: `{"tags":["us","fr"]}`,
			policy:  Policy{Arrays: ArrayUnion},
			want:    `{"tags":["en","us","fr"]}`,
		},
		{
			name:    "array union deduplicates overlay and compares structurally",
			base:    `{"list":[{"id":1,"v":"a"},1]}`,
			overlay: `{"list":[{"v":"a","id":1.0},"x","x",1e0]}`,
			policy:  Policy{Arrays: ArrayUnion},
			want:    `{"list":[{"id":1,"v":"a"},1,"x"]}`,
		},
		{
			name:    "array union keeps base duplicates",
			base:    `{"list":["a","a"]}`,
			overlay: `{"list":["b"]}`,
			policy:  Policy{Arrays: ArrayUnion},
			want:    `{"list":["a","a","b"]}`,
		},
		{
			name:    "array replace",
			base:    `{"tags":["en","us"]}`,
			overlay: `{"tags":["us","fr"]}`,
			policy:  Policy{Arrays: ArrayReplace},
			want:    `{"tags":["us","fr"]}`,
		},
		{
			name:    "nested object merge",
			base:    `{"greeting":{"hello":"Hi","bye":"Bye"}}`,
			overlay: `{"greeting":{"hello":"Hello!"}}`,
			policy:  DefaultPolicy(),
			want:    `{"greeting":{"hello":"Hello!","bye":"Bye"}}`,
		},
		{
			name:    "new keys are appended after existing ones",
			base:    `{"b":1,"a":2}`,
			overlay: `{"c":3,"a":4}`,
			policy:  DefaultPolicy(),
			want:    `{"b":1,"a":4,"c":3}`,
		},
		{
			name:    "overlay scalar replaces base object",
			base:    `{"k":{"x":1}}`,
			overlay: `{"k":"flat"}`,
			policy:  DefaultPolicy(),
			want:    `{"k":"flat"}`,
		},
		{
			name:    "overlay object replaces base scalar",
			base:    `{"k":"flat"}`,
			overlay: `{"k":{"x":1}}`,
			policy:  DefaultPolicy(),
			want:    `{"k":{"x":1}}`,
		},
		{
			name:    "overlay array replaces base object",
			base:    `{"k":{"x":1}}`,
			overlay: `{"k":[1]}`,
			policy:  DefaultPolicy(),
			want:    `{"k":[1]}`,
		},
		{
			name:    "overlay scalar replaces base scalar",
			base:    `{"n":1,"s":"a","b":true}`,
			overlay: `{"n":2,"s":"b","b":false}`,
			policy:  DefaultPolicy(),
			want:    `{"n":2,"s":"b","b":false}`,
		},
		{
			name:    "deep nesting",
			base:    `{"a":{"b":{"c":{"d":"base","e":"keep"}}}}`,
			overlay: `{"a":{"b":{"c":{"d":"overlay"},"f":[1]}}}`,
			policy:  DefaultPolicy(),
			want:    `{"a":{"b":{"c":{"d":"overlay","e":"keep"},"f":[1]}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge(jsonvalue.MustParse(tt.base), jsonvalue.MustParse(tt.overlay), tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, marshal(t, got))
		})
	}
}

// ── properties ────────────────────────────────────────────────────────────────

var sampleDocs = []string{
	`{}`,
	`{"a":"x"}`,
	`{"greeting":{"hello":"Hi","bye":"Bye"},"tags":["en","us"],"n":null}`,
	`{"list":[{"id":1},[1,2],null,true],"deep":{"x":{"y":{"z":1.5}}}}`,
}

func TestMerge_EmptyOverlayReturnsCopyOfBase(t *testing.T) {
	for _, src := range sampleDocs {
		for _, p := range allPolicies {
			base := jsonvalue.MustParse(src)

			got, err := Merge(base, jsonvalue.NewObject(), p)
			require.NoError(t, err)
			assert.Empty(t, treeDiff(base, got), "doc %s policy %s", src, p)
			assert.Equal(t, src, marshal(t, got), "key order must be kept")
			assert.NotSame(t, base, got)
		}
	}
}

func TestMerge_EmptyBaseReturnsCopyOfOverlay(t *testing.T) {
	for _, src := range sampleDocs {
		for _, p := range allPolicies {
			overlay := jsonvalue.MustParse(src)

			got, err := Merge(jsonvalue.NewObject(), overlay, p)
			require.NoError(t, err)
			assert.Empty(t, treeDiff(overlay, got), "doc %s policy %s", src, p)
			assert.Equal(t, src, marshal(t, got))
			assert.NotSame(t, overlay, got)
		}
	}
}

func TestMerge_ReapplyingOverlayIsNoOp(t *testing.T) {
	pairs := [][2]string{
		{`{"a":"x","tags":["en"]}`, `{"a":null,"tags":["en","fr","fr"]}`},
		{`{"greeting":{"hello":"Hi"}}`, `{"greeting":{"hello":"Hello!","new":"n"},"k":[1]}`},
		{`{"k":{"x":1}}`, `{"k":"flat","m":null}`},
		{`{"list":[1,2]}`, `{"list":[2,3,{"o":1}]}`},
	}

	for _, pair := range pairs {
		for _, p := range allPolicies {
			base, overlay := jsonvalue.MustParse(pair[0]), jsonvalue.MustParse(pair[1])

			once, err := Merge(base, overlay, p)
			require.NoError(t, err)
			twice, err := Merge(once, overlay, p)
			require.NoError(t, err)

			assert.Empty(t, treeDiff(once, twice), "base %s overlay %s policy %s", pair[0], pair[1], p)
		}
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	const baseSrc = `{"greeting":{"hello":"Hi"},"tags":["en"],"k":"v"}`
	const overlaySrc = `{"greeting":{"hello":"Hello!","extra":{"x":1}},"tags":["fr"],"k":null}`
	base, overlay := jsonvalue.MustParse(baseSrc), jsonvalue.MustParse(overlaySrc)

	got, err := Merge(base, overlay, DefaultPolicy())
	require.NoError(t, err)

	// mutate the result everywhere it could alias an input
	greeting, _ := got.Get("greeting")
	greeting.(*jsonvalue.Object).Set("hello", jsonvalue.String("changed"))
	extra, _ := greeting.(*jsonvalue.Object).Get("extra")
	extra.(*jsonvalue.Object).Set("x", jsonvalue.Number("2"))
	tags, _ := got.Get("tags")
	tags.(jsonvalue.Array)[0] = jsonvalue.String("changed")

	assert.Equal(t, baseSrc, marshal(t, base))
	assert.Equal(t, overlaySrc, marshal(t, overlay))
}

func TestMerge_ZeroPolicyIsDefault(t *testing.T) {
	assert.Equal(t, DefaultPolicy(), Policy{})
}
