package consts

const (
	// MediaPendingKey 记录已上传但尚未落库的对象，供孤儿清理任务扫描
	MediaPendingKey = "media:pending"
)
