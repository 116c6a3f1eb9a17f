package handler

import (
	"AniHub/internal/pkg/response"
	"AniHub/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 25
)

// AnimeHandler 番剧目录查询，透传 Jikan 的原始响应
type AnimeHandler struct {
	animeSvc service.AnimeService
}

func NewAnimeHandler(animeSvc service.AnimeService) *AnimeHandler {
	return &AnimeHandler{
		animeSvc: animeSvc,
	}
}

func (s *AnimeHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)))
	if err != nil || limit <= 0 || limit > maxSearchLimit {
		limit = defaultSearchLimit
	}
	orderBy := c.Query("order_by")
	sort := c.Query("sort")

	body, err := s.animeSvc.Search(c.Request.Context(), query, limit, orderBy, sort)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func (s *AnimeHandler) GetByID(c *gin.Context) {
	animeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || animeID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	body, err := s.animeSvc.GetByID(c.Request.Context(), animeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
