package model

import (
	"time"
)

type DiscussionComment struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	DiscussionID uint64    `gorm:"not null;index:idx_discussion_id" json:"discussion_id"`
	UserID       uint64    `gorm:"not null" json:"user_id"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (DiscussionComment) TableName() string {
	return "discussion_comments"
}
