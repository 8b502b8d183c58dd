package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFs(t *testing.T) {
	m := NewMemoryFs()

	f, err := m.OpenFile("dir/a.stats.tmp")
	require.NoError(t, err)
	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, m.Rename("dir/a.stats.tmp", "dir/a.stats"))

	exist, err := m.Exist("dir/a.stats")
	require.NoError(t, err)
	assert.True(t, exist)
	exist, err = m.Exist("dir/a.stats.tmp")
	require.NoError(t, err)
	assert.False(t, exist)

	data, err := m.ReadFile("dir/a.stats")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	entries, err := m.List("dir")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "dir/a.stats", entries[0].Path)

	require.NoError(t, m.DeleteFile("dir/a.stats"))
	_, err = m.ReadFile("dir/a.stats")
	assert.Error(t, err)
}

func TestLocalFs(t *testing.T) {
	l := NewLocalFs()
	root := t.TempDir()
	dir := filepath.Join(root, "stats")
	require.NoError(t, l.CreateDir(dir))

	path := filepath.Join(dir, "v1.stats.tmp")
	f, err := l.OpenFile(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("content"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	dst := filepath.Join(dir, "v1.stats")
	require.NoError(t, l.Rename(path, dst))

	data, err := l.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	entries, err := l.List(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, dst, entries[0].Path)

	exist, err := l.Exist(dst)
	require.NoError(t, err)
	assert.True(t, exist)

	require.NoError(t, l.DeleteFile(dst))
	exist, err = l.Exist(dst)
	require.NoError(t, err)
	assert.False(t, exist)
}

func TestBuildFileSystem(t *testing.T) {
	f, err := BuildFileSystem("memory://segment")
	require.NoError(t, err)
	assert.IsType(t, &MemoryFs{}, f)

	f, err = BuildFileSystem("file:///tmp/segment")
	require.NoError(t, err)
	assert.IsType(t, &LocalFs{}, f)

	_, err = BuildFileSystem("ftp://host/segment")
	assert.Error(t, err)
}
