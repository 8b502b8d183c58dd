package file

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
)

var _ File = (*MinioFile)(nil)

// MinioFile reads an existing object directly and buffers writes in
// memory until Close uploads them.
type MinioFile struct {
	object     *minio.Object
	writer     *MemoryFile
	client     *minio.Client
	fileName   string
	bucketName string
}

func NewMinioFile(client *minio.Client, fileName string, bucketName string) (*MinioFile, error) {
	_, err := client.StatObject(context.TODO(), bucketName, fileName, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code != "NoSuchKey" {
			return nil, err
		}
		return &MinioFile{
			writer:     NewMemoryFile(nil),
			client:     client,
			fileName:   fileName,
			bucketName: bucketName,
		}, nil
	}

	object, err := client.GetObject(context.TODO(), bucketName, fileName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return &MinioFile{
		object:     object,
		client:     client,
		fileName:   fileName,
		bucketName: bucketName,
	}, nil
}

func (f *MinioFile) Read(p []byte) (int, error) {
	return f.object.Read(p)
}

func (f *MinioFile) Write(p []byte) (int, error) {
	return f.writer.Write(p)
}

func (f *MinioFile) Close() error {
	if f.writer == nil {
		if f.object != nil {
			return f.object.Close()
		}
		return nil
	}
	b := f.writer.Bytes()
	_, err := f.client.PutObject(context.TODO(), f.bucketName, f.fileName, bytes.NewReader(b), int64(len(b)), minio.PutObjectOptions{})
	return err
}
