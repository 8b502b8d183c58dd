package file

import "io"

type File interface {
	io.Writer
	io.Reader
	io.Closer
}
