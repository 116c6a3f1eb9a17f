package api

import "AniHub/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	TrackerHandler    *handler.TrackerHandler
	DiscussionHandler *handler.DiscussionHandler
	PlatformHandler   *handler.PlatformHandler
	AnimeHandler      *handler.AnimeHandler
}
