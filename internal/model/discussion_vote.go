package model

import (
	"time"
)

// DiscussionVote 每个用户对每个讨论至多一票
type DiscussionVote struct {
	DiscussionID uint64    `gorm:"primaryKey" json:"discussion_id"`
	UserID       uint64    `gorm:"primaryKey" json:"user_id"`
	VoteType     string    `gorm:"type:varchar(10);not null" json:"vote_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func (DiscussionVote) TableName() string {
	return "discussion_votes"
}
