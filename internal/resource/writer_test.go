package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-json-localization/internal/jsonvalue"
	"github.com/MKhiriev/go-json-localization/internal/logger"
)

func TestWrite_IndentedInCarriedKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en-US.json")
	doc := jsonvalue.MustParse(`{"zeta":"z","alpha":{"b":1,"a":[true]}}`)

	require.NoError(t, NewWriter(WriterOptions{}, logger.Nop()).Write(doc, path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "{\n" +
		"  \"zeta\": \"z\",\n" +
		"  \"alpha\": {\n" +
		"    \"b\": 1,\n" +
		"    \"a\": [\n" +
		"      true\n" +
		"    ]\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, want, string(got))
}

func TestWrite_CustomIndentAndMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en-US.json")
	w := NewWriter(WriterOptions{Indent: "\t", Mode: 0o600}, logger.Nop())

	require.NoError(t, w.Write(jsonvalue.MustParse(`{"a":"b"}`), path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": \"b\"\n}\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWrite_ReplacesExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "en-US.json", `{"a very long existing document": "that must be fully replaced"}`)

	require.NoError(t, NewWriter(WriterOptions{}, logger.Nop()).Write(jsonvalue.MustParse(`{}`), path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))
	assertNoTempFiles(t, dir)
}

func TestWrite_RoundTripThroughLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr-FR.json")
	doc := jsonvalue.MustParse(`{"msg":"<b>Ça & là</b>","n":1.50,"list":[null,{"k":"v"}]}`)

	require.NoError(t, NewWriter(WriterOptions{}, logger.Nop()).Write(doc, path))
	loaded, err := NewLoader(nil, logger.Nop()).LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, mustMarshal(t, doc), mustMarshal(t, loaded))
}

func TestWrite_IOErrors(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(WriterOptions{}, logger.Nop())
	doc := jsonvalue.MustParse(`{"a":"b"}`)

	t.Run("missing parent directory", func(t *testing.T) {
		err := w.Write(doc, filepath.Join(dir, "missing", "en-US.json"))
		assert.ErrorIs(t, err, ErrIO)
	})

	t.Run("destination is a directory", func(t *testing.T) {
		target := filepath.Join(dir, "taken")
		require.NoError(t, os.Mkdir(target, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0o644))

		err := w.Write(doc, target)
		assert.ErrorIs(t, err, ErrIO)
		assertNoTempFiles(t, dir)
	})

	t.Run("unencodable document", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		err := w.Write(jsonvalue.Array{jsonvalue.Number("NaN")}, path)
		assert.ErrorIs(t, err, ErrIO)
		assert.ErrorIs(t, err, jsonvalue.ErrInvalidNumber)
		assert.NoFileExists(t, path)
	})
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
