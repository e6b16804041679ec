package repository

import (
	"Snapwall/internal/model"
	"context"

	"gorm.io/gorm"
)

type PostActionRepo interface {
	CreateLike(ctx context.Context, like *model.Like) (*model.Post, error)
	CheckLikeExists(ctx context.Context, postID uint64, userIP string) (bool, error)
	GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error)

	CreateComment(ctx context.Context, comment *model.Comment) (*model.Post, error)
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error)
	GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

// CreateLike 在一个事务内写入点赞并原子累加计数。
// 点赞去重完全依赖 (post_id, user_ip) 联合主键，并发下第二次插入
// 以唯一键冲突失败；计数更新 0 行说明帖子不存在，事务整体回滚。
func (s *PostActionRepoImpl) CreateLike(ctx context.Context, like *model.Like) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			return err
		}

		res := tx.Model(&model.Post{}).
			Where("id = ?", like.PostID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.First(&post, like.PostID).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostActionRepoImpl) CheckLikeExists(ctx context.Context, postID uint64, userIP string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ? AND user_ip = ?", postID, userIP).
		Count(&count).Error
	return count > 0, err
}

func (s *PostActionRepoImpl) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// CreateComment 在一个事务内写入评论并原子累加计数，消除计数偏差窗口
func (s *PostActionRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		res := tx.Model(&model.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.First(&post, comment.PostID).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetCommentsByPostID 返回帖子的评论列表，最新的排在最前
func (s *PostActionRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id DESC").
		Find(&comments).Error
	return comments, err
}

func (s *PostActionRepoImpl) GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
