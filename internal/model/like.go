package model

import (
	"time"
)

// Like 的主键为 (post_id, user_ip) 联合主键，唯一约束即点赞去重的全部手段
type Like struct {
	PostID    uint64    `gorm:"primaryKey" json:"postId"`
	UserIP    string    `gorm:"primaryKey;type:varchar(64)" json:"userIp"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
