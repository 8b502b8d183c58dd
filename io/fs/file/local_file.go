package file

import "os"

type LocalFile struct {
	file *os.File
}

func NewLocalFile(f *os.File) *LocalFile {
	return &LocalFile{file: f}
}

func (l *LocalFile) Read(p []byte) (int, error) {
	return l.file.Read(p)
}

func (l *LocalFile) Write(p []byte) (int, error) {
	return l.file.Write(p)
}

func (l *LocalFile) Close() error {
	return l.file.Close()
}
