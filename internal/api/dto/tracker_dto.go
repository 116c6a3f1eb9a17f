package dto

import "time"

type TrackerAddDTO struct {
	AnimeID  int64  `json:"animeId" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=watching completed on-hold dropped plan-to-watch"`
	Progress int    `json:"progress" binding:"omitempty,min=0"`
}

// TrackerUpdateDTO 所有字段均可选，缺省字段保留原值（rating 例外，见 service 层）
type TrackerUpdateDTO struct {
	Status   *string `json:"status" binding:"omitempty,oneof=watching completed on-hold dropped plan-to-watch"`
	Progress *int    `json:"progress" binding:"omitempty,min=0"`
	Rating   *int16  `json:"rating" binding:"omitempty,min=1,max=10"`
	Notes    *string `json:"notes"`
}

type TrackerDTO struct {
	ID        uint64    `json:"id"`
	AnimeID   int64     `json:"anime_id"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	Rating    *int16    `json:"rating"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
