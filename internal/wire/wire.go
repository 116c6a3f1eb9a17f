package wire

import (
	"AniHub/internal/api"
	"AniHub/internal/api/config"
	"AniHub/internal/api/handler"
	"AniHub/internal/job"
	"AniHub/internal/pkg/cron"
	"AniHub/internal/pkg/jikan"
	"AniHub/internal/repository"
	"AniHub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	trackerRepo := repository.NewTrackerRepo(db)
	discussionRepo := repository.NewDiscussionRepo(db)
	platformRepo := repository.NewPlatformRepo(db)

	jikanClient := jikan.NewClient(cfg.Jikan)

	userService := service.NewUserService(userRepo, trackerRepo)
	trackerService := service.NewTrackerService(trackerRepo)
	discussionService := service.NewDiscussionService(discussionRepo)
	platformService := service.NewPlatformService(platformRepo)
	animeService := service.NewAnimeService(jikanClient)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		TrackerHandler:    handler.NewTrackerHandler(trackerService),
		DiscussionHandler: handler.NewDiscussionHandler(discussionService),
		PlatformHandler:   handler.NewPlatformHandler(platformService),
		AnimeHandler:      handler.NewAnimeHandler(animeService),
	}

	router := api.SetupRouter(handlers)

	voteRecountJob := job.NewVoteRecountJob(discussionRepo)
	cronMgr := cron.NewCronManager(voteRecountJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
