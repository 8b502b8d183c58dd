package file

import "io"

type MemoryFile struct {
	b []byte
	i int
}

func NewMemoryFile(b []byte) *MemoryFile {
	return &MemoryFile{b: b}
}

func (f *MemoryFile) Read(p []byte) (int, error) {
	if f.i >= len(f.b) {
		return 0, io.EOF
	}
	n := copy(p, f.b[f.i:])
	f.i += n
	return n, nil
}

func (f *MemoryFile) Write(p []byte) (int, error) {
	f.b = append(f.b, p...)
	return len(p), nil
}

func (f *MemoryFile) Close() error {
	return nil
}

func (f *MemoryFile) Bytes() []byte {
	return f.b
}
