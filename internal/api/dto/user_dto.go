package dto

import "time"

type RegisterDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required,min=3,max=20"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileStatsDTO 用户追番统计
type ProfileStatsDTO struct {
	TotalAnime  int     `json:"total_anime"`
	Completed   int     `json:"completed"`
	Watching    int     `json:"watching"`
	PlanToWatch int     `json:"plan_to_watch"`
	MeanScore   float64 `json:"mean_score"`
}
