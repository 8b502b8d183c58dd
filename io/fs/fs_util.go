package fs

import (
	"net/url"

	"github.com/pkg/errors"

	cerrors "github.com/blockstore-io/blockstore/go/common/errors"
)

// BuildFileSystem dispatches on the uri scheme: file://, memory://,
// or s3:// for object storage.
func BuildFileSystem(uri string) (Fs, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrapf(cerrors.ErrInvalidPath, "parse uri %s", uri)
	}
	switch parsed.Scheme {
	case "file":
		return NewLocalFs(), nil
	case "memory":
		return NewMemoryFs(), nil
	case "s3":
		return NewMinioFs(parsed)
	default:
		return nil, errors.Wrapf(cerrors.ErrInvalidPath, "unknown fs scheme %s", parsed.Scheme)
	}
}
