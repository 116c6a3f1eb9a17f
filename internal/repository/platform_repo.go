package repository

import (
	"AniHub/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlatformRepo interface {
	GetAll(ctx context.Context, region string) ([]*model.Platform, error)
	GetForAnime(ctx context.Context, animeID int64, region string) ([]*model.AnimePlatform, error)
	CreatePlatform(ctx context.Context, platform *model.Platform) error
	UpsertAnimePlatform(ctx context.Context, ap *model.AnimePlatform) error
}

type PlatformRepoImpl struct {
	db *gorm.DB
}

func NewPlatformRepo(db *gorm.DB) PlatformRepo {
	return &PlatformRepoImpl{db}
}

func (s *PlatformRepoImpl) GetAll(ctx context.Context, region string) ([]*model.Platform, error) {
	var platforms []*model.Platform
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND region = ?", true, region).
		Order("display_name").
		Find(&platforms).Error
	return platforms, err
}

// GetForAnime 关联查询某部番剧在指定地区的正版观看渠道
func (s *PlatformRepoImpl) GetForAnime(ctx context.Context, animeID int64, region string) ([]*model.AnimePlatform, error) {
	var entries []*model.AnimePlatform
	err := s.db.WithContext(ctx).
		Preload("Platform").
		Joins("JOIN platforms ON platforms.id = anime_platforms.platform_id").
		Where("anime_platforms.anime_id = ? AND anime_platforms.region = ? AND platforms.is_active = ?",
			animeID, region, true).
		Order("platforms.display_name").
		Find(&entries).Error
	return entries, err
}

func (s *PlatformRepoImpl) CreatePlatform(ctx context.Context, platform *model.Platform) error {
	return s.db.WithContext(ctx).Create(platform).Error
}

// UpsertAnimePlatform 种子/运营写入口，冲突时覆盖可用状态与直达链接
func (s *PlatformRepoImpl) UpsertAnimePlatform(ctx context.Context, ap *model.AnimePlatform) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "anime_id"}, {Name: "platform_id"}, {Name: "region"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"availability_status", "url", "updated_at"}),
		}).
		Create(ap).Error
}
