package dto

// CommentCreateDTO 创建评论请求
type CommentCreateDTO struct {
	Content string `json:"text" binding:"required,max=1000"`
}

// CommentDTO 评论返回详情
type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	Content   string `json:"text"`
	CreatedAt string `json:"created_at"`
}
