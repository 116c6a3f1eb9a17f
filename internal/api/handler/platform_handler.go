package handler

import (
	"AniHub/internal/pkg/consts"
	"AniHub/internal/pkg/response"
	"AniHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	platformSvc service.PlatformService
}

func NewPlatformHandler(platformSvc service.PlatformService) *PlatformHandler {
	return &PlatformHandler{
		platformSvc: platformSvc,
	}
}

func (s *PlatformHandler) GetAll(c *gin.Context) {
	region := c.DefaultQuery("region", consts.DefaultRegion)

	platforms, err := s.platformSvc.GetAll(c.Request.Context(), region)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"region":    region,
		"platforms": platforms,
	})
}

// GetForAnime 某部番剧在指定地区的可观看平台
func (s *PlatformHandler) GetForAnime(c *gin.Context) {
	animeID, err := strconv.ParseInt(c.Param("anime_id"), 10, 64)
	if err != nil || animeID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	region := c.DefaultQuery("region", consts.DefaultRegion)

	platforms, err := s.platformSvc.GetForAnime(c.Request.Context(), animeID, region)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"animeId":   animeID,
		"region":    region,
		"platforms": platforms,
	})
}
