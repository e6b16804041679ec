package repository

import (
	"Snapwall/internal/model"
	"context"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, error)
	ExistsByMediaURL(ctx context.Context, mediaURL string) (bool, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) ExistsByMediaURL(ctx context.Context, mediaURL string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("media_url = ?", mediaURL).
		Count(&count).Error
	return count > 0, err
}

// ListPosts 按 ID 倒序返回全部帖子，最新的排在最前
func (s *PostRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Order("id DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
