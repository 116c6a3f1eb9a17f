package model

import (
	"time"
)

// Platform 正版观看平台的参考数据，应用侧只读
type Platform struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(50);not null" json:"name"`
	DisplayName string `gorm:"type:varchar(100);not null" json:"display_name"`
	WebsiteURL  string `gorm:"type:varchar(255)" json:"website_url"`
	LogoURL     string `gorm:"type:varchar(255)" json:"logo_url"`
	Region      string `gorm:"type:varchar(10);not null;default:'US'" json:"region"`
	IsActive    bool   `gorm:"type:tinyint(1);not null;default:1" json:"-"`
}

func (Platform) TableName() string {
	return "platforms"
}

// AnimePlatform 番剧与平台的可用性映射
type AnimePlatform struct {
	ID                 uint64    `gorm:"primaryKey" json:"id"`
	AnimeID            int64     `gorm:"not null;uniqueIndex:idx_anime_platform_region" json:"anime_id"`
	PlatformID         uint64    `gorm:"not null;uniqueIndex:idx_anime_platform_region" json:"platform_id"`
	AvailabilityStatus string    `gorm:"type:varchar(20);not null;default:'available'" json:"availability_status"`
	URL                string    `gorm:"type:varchar(255)" json:"url"`
	Region             string    `gorm:"type:varchar(10);not null;default:'US';uniqueIndex:idx_anime_platform_region" json:"region"`
	UpdatedAt          time.Time `json:"updated_at"`

	Platform Platform `gorm:"foreignKey:PlatformID;references:ID" json:"-"`
}

func (AnimePlatform) TableName() string {
	return "anime_platforms"
}
