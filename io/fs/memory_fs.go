package fs

import (
	"os"
	"strings"
	"sync"

	"github.com/blockstore-io/blockstore/go/io/fs/file"
)

// MemoryFs keeps everything in process memory. Used for tests and
// throwaway segments.
type MemoryFs struct {
	mu    sync.RWMutex
	files map[string]*file.MemoryFile
}

func NewMemoryFs() *MemoryFs {
	return &MemoryFs{
		files: make(map[string]*file.MemoryFile),
	}
}

func (m *MemoryFs) OpenFile(path string) (file.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.files[path]; ok {
		return file.NewMemoryFile(f.Bytes()), nil
	}
	f := file.NewMemoryFile(nil)
	m.files[path] = f
	return f, nil
}

func (m *MemoryFs) Rename(src string, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[src]; !ok {
		return nil
	}
	m.files[dst] = m.files[src]
	delete(m.files, src)
	return nil
}

func (m *MemoryFs) DeleteFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	return nil
}

func (m *MemoryFs) CreateDir(path string) error {
	return nil
}

func (m *MemoryFs) List(path string) ([]FileEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ret := make([]FileEntry, 0)
	for p := range m.files {
		if strings.HasPrefix(p, path) {
			ret = append(ret, FileEntry{Path: p})
		}
	}
	return ret, nil
}

func (m *MemoryFs) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return f.Bytes(), nil
}

func (m *MemoryFs) Exist(path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[path]
	return ok, nil
}
