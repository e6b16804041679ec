package dto

// MediaPendingMetadata 已上传但尚未落库的对象元信息，存于 Redis 供清理任务判定
type MediaPendingMetadata struct {
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	CreatedAt int64  `json:"created_at"`
}
