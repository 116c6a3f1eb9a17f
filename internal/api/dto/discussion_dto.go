package dto

import "time"

type DiscussionCreateDTO struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
	AnimeID *int64 `json:"animeId"`
}

type VoteDTO struct {
	VoteType string `json:"voteType" binding:"required,oneof=agree disagree"`
}

type DiscussionDTO struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	Username      string    `json:"username"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	AnimeID       *int64    `json:"anime_id"`
	AgreeCount    int       `json:"agree_count"`
	DisagreeCount int       `json:"disagree_count"`
	CreatedAt     time.Time `json:"created_at"`
	UserVote      *string   `json:"userVote"`
}

type CommentCreateDTO struct {
	Content string `json:"content" binding:"required"`
}

type CommentDTO struct {
	ID           uint64    `json:"id"`
	DiscussionID uint64    `json:"discussion_id"`
	UserID       uint64    `json:"user_id"`
	Username     string    `json:"username"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}
