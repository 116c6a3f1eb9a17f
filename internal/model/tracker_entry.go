package model

import (
	"time"
)

// TrackerEntry 用户的个人追番记录，(user_id, anime_id) 全局唯一
type TrackerEntry struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_anime" json:"user_id"`
	AnimeID   int64     `gorm:"not null;uniqueIndex:idx_user_anime" json:"anime_id"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"`
	Progress  int       `gorm:"not null;default:0" json:"progress"`
	Rating    *int16    `json:"rating"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TrackerEntry) TableName() string {
	return "tracker"
}
