package fs

import (
	"context"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"github.com/blockstore-io/blockstore/go/common/constant"
	cerrors "github.com/blockstore-io/blockstore/go/common/errors"
	"github.com/blockstore-io/blockstore/go/common/log"
	"github.com/blockstore-io/blockstore/go/io/fs/file"
)

type MinioFs struct {
	client     *minio.Client
	bucketName string
	path       string
}

// NewMinioFs expects s3://username:password@bucket/path?endpoint_override=localhost%3A9000
func NewMinioFs(uri *url.URL) (*MinioFs, error) {
	accessKey := uri.User.Username()
	secretAccessKey, set := uri.User.Password()
	if !set {
		log.Warn("secret access key not set")
	}

	endpoints, ok := uri.Query()[constant.EndpointOverride]
	if !ok || len(endpoints) == 0 {
		return nil, cerrors.ErrNoEndpoint
	}

	cli, err := minio.New(endpoints[0], &minio.Options{
		BucketLookup: minio.BucketLookupAuto,
		Creds:        credentials.NewStaticV4(accessKey, secretAccessKey, ""),
	})
	if err != nil {
		return nil, err
	}

	bucket := uri.Host
	path := uri.Path

	log.Info("minio fs infos", log.String("endpoint", endpoints[0]), log.String("bucket", bucket), log.String("path", path))

	exist, err := cli.BucketExists(context.TODO(), bucket)
	if err != nil {
		return nil, err
	}
	if !exist {
		if err = cli.MakeBucket(context.TODO(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinioFs{
		client:     cli,
		bucketName: bucket,
		path:       path,
	}, nil
}

func (fs *MinioFs) OpenFile(path string) (file.File, error) {
	return file.NewMinioFile(fs.client, path, fs.bucketName)
}

func (fs *MinioFs) Rename(src string, dst string) error {
	_, err := fs.client.CopyObject(context.TODO(),
		minio.CopyDestOptions{Bucket: fs.bucketName, Object: dst},
		minio.CopySrcOptions{Bucket: fs.bucketName, Object: src})
	if err != nil {
		return err
	}
	if err = fs.client.RemoveObject(context.TODO(), fs.bucketName, src, minio.RemoveObjectOptions{}); err != nil {
		log.Warn("failed to remove source object", log.String("source", src), log.Err(err))
	}
	return nil
}

func (fs *MinioFs) DeleteFile(path string) error {
	return fs.client.RemoveObject(context.TODO(), fs.bucketName, path, minio.RemoveObjectOptions{})
}

func (fs *MinioFs) CreateDir(path string) error {
	return nil
}

func (fs *MinioFs) List(path string) ([]FileEntry, error) {
	ret := make([]FileEntry, 0)
	for objInfo := range fs.client.ListObjects(context.TODO(), fs.bucketName, minio.ListObjectsOptions{Prefix: path, Recursive: true}) {
		if objInfo.Err != nil {
			log.Warn("list object error", log.Err(objInfo.Err))
			return nil, objInfo.Err
		}
		ret = append(ret, FileEntry{Path: objInfo.Key})
	}
	return ret, nil
}

func (fs *MinioFs) ReadFile(path string) ([]byte, error) {
	obj, err := fs.client.GetObject(context.TODO(), fs.bucketName, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	stat, err := obj.Stat()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, stat.Size)
	n, err := io.ReadFull(obj, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	if int64(n) != stat.Size {
		return nil, errors.Errorf("failed to read full object, expect: %d, actual: %d", stat.Size, n)
	}
	return buf, nil
}

func (fs *MinioFs) Exist(path string) (bool, error) {
	_, err := fs.client.StatObject(context.TODO(), fs.bucketName, path, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (fs *MinioFs) Path() string {
	return fs.path
}
