package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Folder string

const (
	LogoFolder           Folder = "logos"
	ResumeFolder         Folder = "resumes"
	ResumeSnapshotFolder Folder = "application-resumes"
)

const maxFileSize = 5 << 20

var ErrStorageDisabled = errors.New("file storage is not configured")

type Provider interface {
	Upload(ctx context.Context, folder Folder, fileName, contentType string, data []byte) (key string, err error)
	Get(ctx context.Context, key string) (data []byte, contentType string, err error)
	Copy(ctx context.Context, srcKey string, folder Folder) (key string, err error)
	Delete(ctx context.Context, key string) error
}

var Instance Provider

type impl struct {
	client     *minio.Client
	bucketName string
}

func NewInstance(client *minio.Client, bucketName string) {
	Instance = &impl{
		client:     client,
		bucketName: bucketName,
	}
}

func (i impl) Upload(ctx context.Context, folder Folder, fileName, contentType string, data []byte) (key string, err error) {
	if i.client == nil {
		return "", ErrStorageDisabled
	}
	if len(data) == 0 {
		return "", errors.New("file is empty")
	}
	if len(data) > maxFileSize {
		return "", errors.New("file is too large")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key = ObjectKey(folder, fileName)
	_, err = i.client.PutObject(ctx, i.bucketName, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "upload file")
	}
	return key, nil
}

func (i impl) Get(ctx context.Context, key string) (data []byte, contentType string, err error) {
	if i.client == nil {
		return nil, "", ErrStorageDisabled
	}
	obj, err := i.client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "get file")
	}
	defer obj.Close()
	info, err := obj.Stat()
	if err != nil {
		return nil, "", errors.Wrap(err, "get file info")
	}
	data, err = io.ReadAll(obj)
	if err != nil {
		return nil, "", errors.Wrap(err, "read file")
	}
	return data, info.ContentType, nil
}

func (i impl) Copy(ctx context.Context, srcKey string, folder Folder) (key string, err error) {
	if i.client == nil {
		return "", ErrStorageDisabled
	}
	key = ObjectKey(folder, filepath.Base(srcKey))
	_, err = i.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: i.bucketName, Object: key},
		minio.CopySrcOptions{Bucket: i.bucketName, Object: srcKey})
	if err != nil {
		return "", errors.Wrap(err, "copy file")
	}
	return key, nil
}

func (i impl) Delete(ctx context.Context, key string) error {
	if i.client == nil {
		return ErrStorageDisabled
	}
	return i.client.RemoveObject(ctx, i.bucketName, key, minio.RemoveObjectOptions{})
}

// ObjectKey keeps the original extension and prefixes the name with a fresh uuid.
func ObjectKey(folder Folder, fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(base))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if len(name) > 64 {
		name = name[:64]
	}
	if name == "" || name == "." || name == "/" {
		name = "file"
	}
	return fmt.Sprintf("%s/%s_%s%s", folder, uuid.NewString(), name, ext)
}
