package minio

import (
	"context"
	"io"
)

// Store 以方法集形式暴露本包能力，供 service 层按接口注入
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	return UploadFile(ctx, objectName, reader, size, contentType)
}

func (s *Store) PublicURL(objectName string) string {
	return GetPublicURL(objectName)
}

func (s *Store) Delete(ctx context.Context, objectName string) error {
	return DeleteFile(ctx, objectName)
}
