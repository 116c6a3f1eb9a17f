package api

import (
	"AniHub/internal/api/middleware"
	"AniHub/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "pong",
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.UserHandler.Logout)
				loggedGroup.GET("/me", group.UserHandler.GetProfile)
			}
		}

		trackerGroup := apiGroup.Group("/tracker")
		trackerGroup.Use(middleware.AuthMiddleware())
		{
			trackerGroup.GET("", group.TrackerHandler.List)
			trackerGroup.POST("", group.TrackerHandler.Add)
			trackerGroup.PUT("/:id", group.TrackerHandler.Update)
			trackerGroup.DELETE("/:id", group.TrackerHandler.Remove)
		}

		discussionGroup := apiGroup.Group("/discussions")
		{
			discussionGroup.GET("", group.DiscussionHandler.GetAll)
			discussionGroup.GET("/:id/comments", group.DiscussionHandler.GetComments)

			authOptGroup := discussionGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:id", group.DiscussionHandler.GetByID)
			}

			loggedGroup := discussionGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("", group.DiscussionHandler.Create)
				loggedGroup.POST("/:id/vote", group.DiscussionHandler.Vote)
				loggedGroup.POST("/:id/comments", group.DiscussionHandler.CreateComment)
				loggedGroup.DELETE("/:id/comments/:comment_id", group.DiscussionHandler.DeleteComment)
			}
		}

		platformGroup := apiGroup.Group("/platforms")
		{
			platformGroup.GET("", group.PlatformHandler.GetAll)
			platformGroup.GET("/:anime_id", group.PlatformHandler.GetForAnime)
		}

		animeGroup := apiGroup.Group("/anime")
		{
			animeGroup.GET("/search", group.AnimeHandler.Search)
			animeGroup.GET("/:id", group.AnimeHandler.GetByID)
		}
	}

	return r
}
