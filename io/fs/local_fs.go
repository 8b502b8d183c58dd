package fs

import (
	"os"
	"path/filepath"

	"github.com/blockstore-io/blockstore/go/io/fs/file"
)

type LocalFs struct{}

func NewLocalFs() *LocalFs {
	return &LocalFs{}
}

func (l *LocalFs) OpenFile(path string) (file.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		return nil, err
	}
	return file.NewLocalFile(f), nil
}

func (l *LocalFs) Rename(src string, dst string) error {
	return os.Rename(src, dst)
}

func (l *LocalFs) DeleteFile(path string) error {
	return os.Remove(path)
}

func (l *LocalFs) CreateDir(path string) error {
	return os.MkdirAll(path, 0755)
}

func (l *LocalFs) List(path string) ([]FileEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	ret := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ret = append(ret, FileEntry{Path: filepath.Join(path, e.Name())})
	}
	return ret, nil
}

func (l *LocalFs) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (l *LocalFs) Exist(path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
