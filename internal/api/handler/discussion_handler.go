package handler

import (
	"AniHub/internal/api/dto"
	"AniHub/internal/pkg/response"
	"AniHub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DiscussionHandler struct {
	discussionSvc service.DiscussionService
}

func NewDiscussionHandler(discussionSvc service.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{
		discussionSvc: discussionSvc,
	}
}

func (s *DiscussionHandler) GetAll(c *gin.Context) {
	discussions, err := s.discussionSvc.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"count":       len(discussions),
		"discussions": discussions,
	})
}

func (s *DiscussionHandler) GetByID(c *gin.Context) {
	discussionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || discussionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	discussion, err := s.discussionSvc.GetByID(c.Request.Context(), discussionID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"discussion": discussion,
	})
}

func (s *DiscussionHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.DiscussionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	discussion, err := s.discussionSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, gin.H{
		"discussion": discussion,
	})
}

// Vote 赞成/反对切换，重复同类投票即撤销
func (s *DiscussionHandler) Vote(c *gin.Context) {
	discussionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || discussionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.VoteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	discussion, err := s.discussionSvc.Vote(c.Request.Context(), discussionID, userID, req.VoteType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"discussion": discussion,
	})
}

func (s *DiscussionHandler) GetComments(c *gin.Context) {
	discussionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || discussionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.discussionSvc.GetComments(c.Request.Context(), discussionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"count":    len(comments),
		"comments": comments,
	})
}

func (s *DiscussionHandler) CreateComment(c *gin.Context) {
	discussionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || discussionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comment, err := s.discussionSvc.CreateComment(c.Request.Context(), discussionID, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, gin.H{
		"comment": comment,
	})
}

func (s *DiscussionHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err = s.discussionSvc.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"message": "Comment deleted",
	})
}
