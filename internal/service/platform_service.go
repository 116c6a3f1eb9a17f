package service

import (
	"AniHub/internal/api/dto"
	"AniHub/internal/model"
	"AniHub/internal/pkg/consts"
	"AniHub/internal/pkg/redis"
	"AniHub/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const platformCacheExpiration = 24 * time.Hour

type PlatformService interface {
	GetAll(ctx context.Context, region string) ([]*dto.PlatformDTO, error)
	GetForAnime(ctx context.Context, animeID int64, region string) ([]*dto.AnimePlatformDTO, error)
	SeedPlatform(ctx context.Context, platform *model.Platform) error
	SeedAnimePlatform(ctx context.Context, ap *model.AnimePlatform) error
}

type PlatformServiceImpl struct {
	platformRepo repository.PlatformRepo
}

func NewPlatformService(platformRepo repository.PlatformRepo) PlatformService {
	return &PlatformServiceImpl{platformRepo: platformRepo}
}

func (s *PlatformServiceImpl) GetAll(ctx context.Context, region string) ([]*dto.PlatformDTO, error) {
	key := consts.PlatformListKey + region
	cached, err := redis.GetValue(ctx, key)
	if err == nil && cached != "" {
		var result []*dto.PlatformDTO
		if err = json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	platforms, err := s.platformRepo.GetAll(ctx, region)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.PlatformDTO, 0, len(platforms))
	for _, platform := range platforms {
		item := &dto.PlatformDTO{}
		if err = copier.Copy(item, platform); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if encoded, err := json.Marshal(result); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(encoded), platformCacheExpiration)
	}
	return result, nil
}

func (s *PlatformServiceImpl) GetForAnime(ctx context.Context, animeID int64, region string) ([]*dto.AnimePlatformDTO, error) {
	key := consts.AnimePlatformKey + strconv.FormatInt(animeID, 10) + ":" + region
	cached, err := redis.GetValue(ctx, key)
	if err == nil && cached != "" {
		var result []*dto.AnimePlatformDTO
		if err = json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	links, err := s.platformRepo.GetForAnime(ctx, animeID, region)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.AnimePlatformDTO, 0, len(links))
	for _, link := range links {
		result = append(result, &dto.AnimePlatformDTO{
			ID:                 link.Platform.ID,
			Name:               link.Platform.Name,
			DisplayName:        link.Platform.DisplayName,
			WebsiteURL:         link.Platform.WebsiteURL,
			LogoURL:            link.Platform.LogoURL,
			AvailabilityStatus: link.AvailabilityStatus,
			DirectURL:          link.URL,
			Region:             link.Region,
		})
	}

	if encoded, err := json.Marshal(result); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(encoded), platformCacheExpiration)
	}
	return result, nil
}

func (s *PlatformServiceImpl) SeedPlatform(ctx context.Context, platform *model.Platform) error {
	return s.platformRepo.CreatePlatform(ctx, platform)
}

func (s *PlatformServiceImpl) SeedAnimePlatform(ctx context.Context, ap *model.AnimePlatform) error {
	return s.platformRepo.UpsertAnimePlatform(ctx, ap)
}
