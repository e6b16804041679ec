package handler

import (
	"Snapwall/internal/api/config"
	"Snapwall/internal/pkg/response"
	"Snapwall/internal/service"
	"path"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	postSvc service.PostService
}

func NewMediaHandler(postSvc service.PostService) *MediaHandler {
	return &MediaHandler{
		postSvc: postSvc,
	}
}

// Upload 接收 multipart 文件并走「先存对象、后落元数据」的摄取流程
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file.Size == 0 {
		response.Error(c, service.ErrFileMissing)
		return
	}

	if file.Size > config.Cfg.Upload.MaxSize {
		response.Error(c, service.ErrFileTooLarge)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrFileMissing)
		return
	}
	defer func() { _ = reader.Close() }()

	post, err := s.postSvc.CreateFromUpload(c.Request.Context(), reader, file.Size, path.Ext(file.Filename))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}
