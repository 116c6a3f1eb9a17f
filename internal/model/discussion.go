package model

import (
	"time"
)

// Discussion 社区讨论帖，agree_count/disagree_count 是投票表的派生缓存，
// 每次投票后从 discussion_votes 全量重算，客户端永远不直接写入
type Discussion struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	AnimeID       *int64    `json:"anime_id"`
	AgreeCount    int       `gorm:"not null;default:0" json:"agree_count"`
	DisagreeCount int       `gorm:"not null;default:0" json:"disagree_count"`
	CreatedAt     time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Discussion) TableName() string {
	return "discussions"
}
