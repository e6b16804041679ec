package util_test

import (
	"Snapwall/internal/pkg/util"
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestGetSafeContentType(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}, "image/jpeg"},
		{"png", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, "image/png"},
		{"gif", []byte("GIF89a......"), "image/gif"},
		{"plain text", []byte("hello world"), "text/plain; charset=utf-8"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reader := bytes.NewReader(tc.data)
			got, err := util.GetSafeContentType(reader)
			if err != nil {
				t.Fatalf("GetSafeContentType: %v", err)
			}
			if got != tc.want {
				t.Errorf("content type = %q, want %q", got, tc.want)
			}

			// 嗅探后读取位置必须复位，后续的完整读取不能丢字节
			rest, _ := io.ReadAll(reader)
			if !bytes.Equal(rest, tc.data) {
				t.Errorf("reader not rewound: got %d bytes, want %d", len(rest), len(tc.data))
			}
		})
	}
}

func TestGetSafeContentType_LargePayload(t *testing.T) {
	data := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x00}, 4096)...)
	reader := bytes.NewReader(data)

	got, err := util.GetSafeContentType(reader)
	if err != nil {
		t.Fatalf("GetSafeContentType: %v", err)
	}
	if got != "image/jpeg" {
		t.Errorf("content type = %q, want image/jpeg", got)
	}

	rest, _ := io.ReadAll(reader)
	if len(rest) != len(data) {
		t.Errorf("reader not rewound: got %d bytes, want %d", len(rest), len(data))
	}
}

func TestMediaTypeOf(t *testing.T) {
	cases := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", "image"},
		{"image/png", "image"},
		{"video/mp4", "video"},
		{"audio/mpeg", "audio"},
		{"application/pdf", "other"},
		{"text/plain; charset=utf-8", "other"},
	}

	for _, tc := range cases {
		t.Run(strings.ReplaceAll(tc.contentType, "/", "_"), func(t *testing.T) {
			if got := util.MediaTypeOf(tc.contentType); got != tc.want {
				t.Errorf("MediaTypeOf(%q) = %q, want %q", tc.contentType, got, tc.want)
			}
		})
	}
}
