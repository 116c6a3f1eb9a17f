package main

import (
	"AniHub/internal/api/config"
	"AniHub/internal/model"
	"AniHub/internal/pkg/database"
	"AniHub/internal/pkg/logger"
	"AniHub/internal/repository"
	"context"
	log "log/slog"
)

// 初始化表结构并写入内置的流媒体平台数据
func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	logger.InitLogger()

	db, err := database.NewGormDB(&config.Cfg.DB)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}

	if err = database.Migrate(db); err != nil {
		log.Error("Fatal error: failed to migrate schema", "err", err)
		panic(err)
	}

	ctx := context.Background()
	platformRepo := repository.NewPlatformRepo(db)

	existing, err := platformRepo.GetAll(ctx, "US")
	if err != nil {
		log.Error("Fatal error: failed to query platforms", "err", err)
		panic(err)
	}
	if len(existing) > 0 {
		log.Info("Platforms already seeded, nothing to do", "count", len(existing))
		return
	}

	platforms := []*model.Platform{
		{Name: "crunchyroll", DisplayName: "Crunchyroll", WebsiteURL: "https://www.crunchyroll.com", LogoURL: "/logos/crunchyroll.svg", Region: "US", IsActive: true},
		{Name: "netflix", DisplayName: "Netflix", WebsiteURL: "https://www.netflix.com", LogoURL: "/logos/netflix.svg", Region: "US", IsActive: true},
		{Name: "hulu", DisplayName: "Hulu", WebsiteURL: "https://www.hulu.com", LogoURL: "/logos/hulu.svg", Region: "US", IsActive: true},
		{Name: "hidive", DisplayName: "HIDIVE", WebsiteURL: "https://www.hidive.com", LogoURL: "/logos/hidive.svg", Region: "US", IsActive: true},
		{Name: "prime-video", DisplayName: "Amazon Prime Video", WebsiteURL: "https://www.primevideo.com", LogoURL: "/logos/prime-video.svg", Region: "US", IsActive: true},
	}
	for _, platform := range platforms {
		if err = platformRepo.CreatePlatform(ctx, platform); err != nil {
			log.Error("Fatal error: failed to seed platform", "name", platform.Name, "err", err)
			panic(err)
		}
	}

	log.Info("Seed finished", "platforms", len(platforms))
}
