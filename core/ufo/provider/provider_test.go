package provider

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/ufogleaner/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileProviderReadsFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.ufo")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "glyphs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "glyphs", "test.txt"), []byte("Hello, world!"), 0o644))
	//
	p := NewFileProvider(dir)
	assert.Equal(t, dir, p.Root())
	data, err := p.Read("glyphs/test.txt")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", string(data))
}

func TestFileProviderFileNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.ufo")
	defer teardown()
	//
	p := NewFileProvider(t.TempDir())
	_, err := p.Read("missing.txt")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.True(t, core.IsIOError(err))
	assert.Contains(t, core.Path(err), "missing.txt")
}

func TestFileProviderReadingDirectoryIsIOError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.ufo")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "glyphs"), 0o755))
	_, err := NewFileProvider(dir).Read("glyphs")
	require.Error(t, err)
	assert.Equal(t, core.EIO, core.Code(err))
}

func TestFileProviderRejectsEscapingPaths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.ufo")
	defer teardown()
	//
	p := NewFileProvider(t.TempDir())
	for _, rel := range []string{"../secret", "glyphs/../../secret"} {
		_, err := p.Read(rel)
		require.Error(t, err, rel)
		assert.Equal(t, core.EIO, core.Code(err), rel)
	}
}

func TestMemProvider(t *testing.T) {
	p := NewMemProvider("mem")
	p.WithFile("foo.txt", []byte("123")).WithFile("bar.txt", []byte("xyz"))
	//
	data, err := p.Read("foo.txt")
	require.NoError(t, err)
	assert.Equal(t, "123", string(data))
	data[0] = 'X' // must not alter the stored file
	data, err = p.Read("./foo.txt")
	require.NoError(t, err)
	assert.Equal(t, "123", string(data))
	//
	_, err = p.Read("missing.txt")
	assert.Equal(t, core.EMISSING, core.Code(err))
	p.Remove("bar.txt")
	_, err = p.Read("bar.txt")
	assert.True(t, core.IsIOError(err))
	assert.Equal(t, "mem", p.Root())
}

func TestFSProvider(t *testing.T) {
	fsys := fstest.MapFS{
		"glyphs/contents.plist": &fstest.MapFile{Data: []byte("<plist/>")},
	}
	p := NewFSProvider(fsys, "embedded")
	data, err := p.Read("glyphs/contents.plist")
	require.NoError(t, err)
	assert.Equal(t, "<plist/>", string(data))
	//
	_, err = p.Read("glyphs/a.glif")
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = p.Read("../outside")
	assert.Equal(t, core.EIO, core.Code(err))
}
