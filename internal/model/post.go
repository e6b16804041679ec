package model

import (
	"time"
)

type Post struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	MediaURL      string    `gorm:"type:varchar(512);not null" json:"media_url"`
	MediaType     string    `gorm:"type:varchar(16);not null" json:"media_type"` // image, video, audio, other
	LikesCount    int       `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int       `gorm:"not null;default:0" json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
