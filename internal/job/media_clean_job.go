package job

import (
	"Snapwall/internal/api/config"
	"Snapwall/internal/api/dto"
	"Snapwall/internal/pkg/consts"
	"Snapwall/internal/pkg/minio"
	"Snapwall/internal/pkg/redis"
	"Snapwall/internal/repository"
	"context"
	"encoding/json"
	log "log/slog"
	"time"
)

// MediaCleanupJob 回收孤儿对象：上传成功但帖子始终没有落库的媒体文件。
// 摄取路径本身不做补偿删除，统一由这里兜底。
type MediaCleanupJob struct {
	postRepo repository.PostRepo
}

func NewMediaCleanupJob(postRepo repository.PostRepo) *MediaCleanupJob {
	return &MediaCleanupJob{postRepo: postRepo}
}

func (s *MediaCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start media cleanup job")

	pending, err := redis.HGetAll(ctx, consts.MediaPendingKey)
	if err != nil {
		log.Error("failed to get media pending hash", "err", err)
		return
	}

	now := time.Now().Unix()
	ttl := config.Cfg.Upload.OrphanTTL
	count := 0

	for fileKey, val := range pending {
		var meta dto.MediaPendingMetadata
		if err := json.Unmarshal([]byte(val), &meta); err != nil {
			log.Warn("invalid pending media meta format", "fileKey", fileKey)
			continue
		}

		if now-meta.CreatedAt <= ttl {
			continue
		}

		// 登记项可能因异步清除失败而残留，删除前确认确实没有帖子引用它
		exists, err := s.postRepo.ExistsByMediaURL(ctx, minio.GetPublicURL(fileKey))
		if err != nil {
			log.Error("failed to check post reference", "fileKey", fileKey, "err", err)
			continue
		}
		if exists {
			_ = redis.HDel(ctx, consts.MediaPendingKey, fileKey)
			continue
		}

		if err = minio.DeleteFile(ctx, fileKey); err != nil {
			log.Error("failed to delete orphan file from minio", "fileKey", fileKey, "err", err)
			continue
		}

		if err = redis.HDel(ctx, consts.MediaPendingKey, fileKey); err != nil {
			log.Error("failed to remove pending entry from redis", "fileKey", fileKey, "err", err)
		}

		count++
		log.Info("cleanup orphan media resource", "fileKey", fileKey, "mime", meta.MimeType)
	}

	if count > 0 {
		log.Info("media cleanup job finished", "cleaned_count", count)
	}
}
