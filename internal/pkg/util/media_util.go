package util

import (
	"Snapwall/internal/pkg/consts"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// GetSafeContentType 读取文件头部嗅探真实的 Content-Type，不信任客户端声明。
// 嗅探完成后将读取位置复位，调用方可继续完整读取。
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(reader, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("failed to read file header: %w", err)
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind file: %w", err)
	}

	return http.DetectContentType(buf[:n]), nil
}

// MediaTypeOf 按嗅探到的 MIME 前缀归类媒体类型
func MediaTypeOf(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, consts.MimePrefixImage):
		return consts.MediaTypeImage
	case strings.HasPrefix(contentType, consts.MimePrefixVideo):
		return consts.MediaTypeVideo
	case strings.HasPrefix(contentType, consts.MimePrefixAudio):
		return consts.MediaTypeAudio
	default:
		return consts.MediaTypeOther
	}
}
