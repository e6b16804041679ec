package service

import (
	"context"
	"io"
)

// BlobStore 对象存储抽象。每次调用独立原子：要么返回可用的对象 Key，
// 要么什么都没存下；本层不做任何重试。
type BlobStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	PublicURL(objectName string) string
	Delete(ctx context.Context, objectName string) error
}
