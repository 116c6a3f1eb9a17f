package handler

import (
	"AniHub/internal/api/dto"
	"AniHub/internal/pkg/response"
	"AniHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TrackerHandler struct {
	trackerSvc service.TrackerService
}

func NewTrackerHandler(trackerSvc service.TrackerService) *TrackerHandler {
	return &TrackerHandler{
		trackerSvc: trackerSvc,
	}
}

func (s *TrackerHandler) List(c *gin.Context) {
	userID := c.GetUint64("user_id")

	entries, err := s.trackerSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"count": len(entries),
		"data":  entries,
	})
}

func (s *TrackerHandler) Add(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.TrackerAddDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	entry, err := s.trackerSvc.Add(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, gin.H{
		"data": entry,
	})
}

func (s *TrackerHandler) Update(c *gin.Context) {
	trackerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || trackerID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.TrackerUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	entry, err := s.trackerSvc.Update(c.Request.Context(), userID, trackerID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"data": entry,
	})
}

func (s *TrackerHandler) Remove(c *gin.Context) {
	trackerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || trackerID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err = s.trackerSvc.Remove(c.Request.Context(), userID, trackerID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"message": "Anime removed from tracker",
	})
}
