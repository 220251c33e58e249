package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate-table/internal/errors"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rate-table.json")

	require.NoError(t, WriteFileAtomic(path, []byte(`{"prefixes":[],"rates":[]}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"prefixes":[],"rates":[]}`, string(data))

	// No temporary file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFileAtomicReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rate-table.json")

	require.NoError(t, WriteFileAtomic(path, []byte("old")))
	require.NoError(t, WriteFileAtomic(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileAtomicUnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "rate-table.json")

	err := WriteFileAtomic(path, []byte("data"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeIO), "got %v", err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial output may exist")
}
