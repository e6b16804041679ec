package service

import (
	"Snapwall/internal/api/dto"
	"Snapwall/internal/model"
	"Snapwall/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type PostActionService interface {
	LikePost(ctx context.Context, postID uint64, userIP string) (*dto.PostDTO, error)
	IsLiked(ctx context.Context, postID uint64, userIP string) (bool, error)

	CreateComment(ctx context.Context, postID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
}

type postActionServiceImpl struct {
	actionRepo repository.PostActionRepo
}

func NewPostActionService(actionRepo repository.PostActionRepo) PostActionService {
	return &postActionServiceImpl{
		actionRepo: actionRepo,
	}
}

// LikePost 点赞帖子。先做一次快速查重，真正的并发去重依赖
// likes 表的联合主键：并发请求中第二个插入以 1062 冲突失败，
// 统一映射为重复点赞错误，计数不会被多加。
func (s *postActionServiceImpl) LikePost(ctx context.Context, postID uint64, userIP string) (*dto.PostDTO, error) {
	if postID == 0 || userIP == "" {
		return nil, ErrParamInvalid
	}

	exists, err := s.actionRepo.CheckLikeExists(ctx, postID, userIP)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyLiked
	}

	post, err := s.actionRepo.CreateLike(ctx, &model.Like{
		PostID:    postID,
		UserIP:    userIP,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if isDuplicateError(err) {
			return nil, ErrAlreadyLiked
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return convertToPostDTO(post), nil
}

func (s *postActionServiceImpl) IsLiked(ctx context.Context, postID uint64, userIP string) (bool, error) {
	if userIP == "" {
		return false, nil
	}
	return s.actionRepo.CheckLikeExists(ctx, postID, userIP)
}

func (s *postActionServiceImpl) CreateComment(ctx context.Context, postID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	if postID == 0 {
		return nil, ErrParamInvalid
	}
	if req == nil || strings.TrimSpace(req.Content) == "" {
		return nil, ErrCommentEmpty
	}

	comment := &model.Comment{
		PostID:    postID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	_, err := s.actionRepo.CreateComment(ctx, comment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return convertToCommentDTO(comment), nil
}

func (s *postActionServiceImpl) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	comments, err := s.actionRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		res = append(res, convertToCommentDTO(c))
	}
	return res, nil
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

func convertToCommentDTO(comment *model.Comment) *dto.CommentDTO {
	dtoItem := &dto.CommentDTO{}
	_ = copier.Copy(dtoItem, comment)
	dtoItem.CreatedAt = comment.CreatedAt.Format("2006-01-02 15:04:05")
	return dtoItem
}
