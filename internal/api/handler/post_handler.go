package handler

import (
	"Snapwall/internal/pkg/response"
	"Snapwall/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// ListPosts 获取全部帖子，按 ID 倒序
func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// Download 重定向到帖子媒体的存储地址
func (s *PostHandler) Download(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	url, err := s.postSvc.ResolveDownload(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Redirect(http.StatusFound, url)
}
