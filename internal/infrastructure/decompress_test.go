package infrastructure

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompressGzip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "comps.xml.gz")

	file, err := os.Create(src)
	require.NoError(t, err)
	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte("<comps/>"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, file.Close())

	dst := filepath.Join(dir, "comps.xml")
	require.NoError(t, NewFileDecompressor().Decompress(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<comps/>", string(data))
}

func TestDecompressPlainPassthrough(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "comps.xml")
	require.NoError(t, os.WriteFile(src, []byte("<comps/>"), 0o644))

	dst := filepath.Join(dir, "out.xml")
	require.NoError(t, NewFileDecompressor().Decompress(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<comps/>", string(data))
}

func TestDecompressMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := NewFileDecompressor().Decompress(filepath.Join(dir, "nope.gz"), filepath.Join(dir, "out"))
	assert.Error(t, err)
}
