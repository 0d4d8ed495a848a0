package fsutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-renderer/internal/apperr"
)

func TestValidateName(t *testing.T) {
	valid := []string{"acme", "client_1", "my-shop", "ABC123", strings.Repeat("a", MaxNameLength)}
	for _, name := range valid {
		assert.NoError(t, ValidateName(name), "expected %q to be accepted", name)
	}

	invalid := []string{
		"",
		"../escape",
		"a/b",
		`a\b`,
		"has space",
		"dot.dot",
		strings.Repeat("a", MaxNameLength+1),
	}
	for _, name := range invalid {
		err := ValidateName(name)
		require.Error(t, err, "expected %q to be rejected", name)
		assert.True(t, apperr.IsValidation(err))
	}
}

func TestReadJSONMissingFileIsEmptyMap(t *testing.T) {
	data, err := ReadJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestReadJSONMalformedIsValidationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0644))

	_, err := ReadJSON(path)
	assert.True(t, apperr.IsValidation(err))
}

func TestWriteAndReadJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	require.NoError(t, EnsureDir(filepath.Dir(path)))
	require.NoError(t, WriteJSON(path, map[string]any{"a": 1, "b": "x"}))

	data, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, float64(1), data["a"])
	assert.Equal(t, "x", data["b"])
}

func TestReadTextMissingIsNotFound(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "nope.tmpl"))
	assert.True(t, apperr.IsNotFound(err))
}

func TestListDirMissingIsEmpty(t *testing.T) {
	entries, err := ListDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveFileIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, RemoveFile(path))
	require.NoError(t, RemoveFile(path))
	assert.False(t, FileExists(path))
}
