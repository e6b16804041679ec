package dto

// PostDTO 帖子
type PostDTO struct {
	ID            uint64 `json:"id"`
	MediaURL      string `json:"url"`
	MediaType     string `json:"media_type"`
	LikesCount    int    `json:"likes_count"`
	CommentsCount int    `json:"comments_count"`
	CreatedAt     string `json:"created_at"`
}
