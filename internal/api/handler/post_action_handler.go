package handler

import (
	"Snapwall/internal/api/dto"
	"Snapwall/internal/pkg/response"
	"Snapwall/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{
		actionSvc: actionSvc,
	}
}

// LikePost 点赞帖子，以请求方网络地址作为去重身份。
// 同一 NAT 后的用户共享地址，该身份信号天然偏弱，按产品预期接受。
func (s *PostActionHandler) LikePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.actionSvc.LikePost(c.Request.Context(), postID, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// CreateComment 发布评论
func (s *PostActionHandler) CreateComment(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrCommentEmpty)
		return
	}

	comment, err := s.actionSvc.CreateComment(c.Request.Context(), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// GetComments 获取帖子的评论列表，最新的排在最前
func (s *PostActionHandler) GetComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.actionSvc.GetCommentsByPostID(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
