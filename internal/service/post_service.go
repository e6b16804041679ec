package service

import (
	"Snapwall/internal/api/config"
	"Snapwall/internal/api/dto"
	"Snapwall/internal/model"
	"Snapwall/internal/pkg/consts"
	"Snapwall/internal/pkg/redis"
	"Snapwall/internal/pkg/util"
	"Snapwall/internal/repository"
	"context"
	"errors"
	"io"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type PostService interface {
	CreateFromUpload(ctx context.Context, file io.ReadSeeker, size int64, ext string) (*dto.PostDTO, error)
	ListPosts(ctx context.Context) ([]*dto.PostDTO, error)
	ResolveDownload(ctx context.Context, postID uint64) (string, error)
}

type postServiceImpl struct {
	postRepo  repository.PostRepo
	blobStore BlobStore
}

func NewPostService(postRepo repository.PostRepo, blobStore BlobStore) PostService {
	return &postServiceImpl{
		postRepo:  postRepo,
		blobStore: blobStore,
	}
}

// CreateFromUpload 先写对象存储，成功后再落元数据。
// 两个系统之间没有事务耦合：对象写入后落库失败会留下孤儿对象，
// 这里不做补偿删除，只在 Redis 登记待清理项，交给定时任务回收。
// 同样的字节上传两次会产生两个帖子和两个对象，接口不幂等。
func (s *postServiceImpl) CreateFromUpload(ctx context.Context, file io.ReadSeeker, size int64, ext string) (*dto.PostDTO, error) {
	if file == nil || size <= 0 {
		return nil, ErrFileMissing
	}

	contentType, err := util.GetSafeContentType(file)
	if err != nil {
		return nil, ErrFileMissing
	}
	mediaType := util.MediaTypeOf(contentType)

	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	meta := dto.MediaPendingMetadata{
		MimeType:  contentType,
		Size:      size,
		CreatedAt: time.Now().Unix(),
	}
	metaBytes, _ := json.Marshal(meta)
	_ = redis.HSet(ctx, consts.MediaPendingKey, objectName, string(metaBytes))

	// 上传受超时约束，超时后不会再走落库步骤
	uploadCtx, cancel := context.WithTimeout(ctx, time.Duration(config.Cfg.Upload.Timeout)*time.Second)
	defer cancel()

	fileKey, err := s.blobStore.Upload(uploadCtx, objectName, file, size, contentType)
	if err != nil {
		log.ErrorContext(ctx, "blob upload failed", "objectName", objectName, "err", err)
		return nil, ErrStorageFailed
	}

	post := &model.Post{
		MediaURL:  s.blobStore.PublicURL(fileKey),
		MediaType: mediaType,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		// 对象已存在而帖子未写入：孤儿窗口，由清理任务按登记项回收
		log.ErrorContext(ctx, "post persist failed after upload, blob orphaned", "fileKey", fileKey, "err", err)
		return nil, ErrPersistFailed
	}

	go func() {
		_ = redis.HDel(context.Background(), consts.MediaPendingKey, objectName)
	}()

	log.InfoContext(ctx, "media ingested", "postID", post.ID, "fileKey", fileKey, "type", mediaType)
	return convertToPostDTO(post), nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, convertToPostDTO(post))
	}
	return list, nil
}

func (s *postServiceImpl) ResolveDownload(ctx context.Context, postID uint64) (string, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrPostNotFound
		}
		return "", err
	}
	return post.MediaURL, nil
}

func convertToPostDTO(post *model.Post) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)
	item.CreatedAt = post.CreatedAt.Format("2006-01-02 15:04:05")
	return item
}
