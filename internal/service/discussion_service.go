package service

import (
	"AniHub/internal/api/dto"
	"AniHub/internal/model"
	"AniHub/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type DiscussionService interface {
	Create(ctx context.Context, userID uint64, req *dto.DiscussionCreateDTO) (*dto.DiscussionDTO, error)
	GetAll(ctx context.Context) ([]*dto.DiscussionDTO, error)
	GetByID(ctx context.Context, id, userID uint64) (*dto.DiscussionDTO, error)
	Vote(ctx context.Context, id, userID uint64, voteType string) (*dto.DiscussionDTO, error)

	CreateComment(ctx context.Context, discussionID, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	GetComments(ctx context.Context, discussionID uint64) ([]*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, commentID, userID uint64) error
}

type DiscussionServiceImpl struct {
	discussionRepo repository.DiscussionRepo
}

func NewDiscussionService(discussionRepo repository.DiscussionRepo) DiscussionService {
	return &DiscussionServiceImpl{discussionRepo: discussionRepo}
}

func (s *DiscussionServiceImpl) Create(ctx context.Context, userID uint64, req *dto.DiscussionCreateDTO) (*dto.DiscussionDTO, error) {
	discussion := &model.Discussion{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		AnimeID: req.AnimeID,
	}
	if err := s.discussionRepo.Create(ctx, discussion); err != nil {
		return nil, err
	}

	// 回读以带出作者信息
	created, err := s.discussionRepo.GetByID(ctx, discussion.ID)
	if err != nil {
		return nil, err
	}
	return toDiscussionDTO(created, nil)
}

func (s *DiscussionServiceImpl) GetAll(ctx context.Context) ([]*dto.DiscussionDTO, error) {
	discussions, err := s.discussionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.DiscussionDTO, 0, len(discussions))
	for _, discussion := range discussions {
		item, err := toDiscussionDTO(discussion, nil)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// GetByID userID 为 0 表示匿名访问，不带 userVote
func (s *DiscussionServiceImpl) GetByID(ctx context.Context, id, userID uint64) (*dto.DiscussionDTO, error) {
	discussion, err := s.discussionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, ErrDiscussionNotFound
	}

	var userVote *string
	if userID > 0 {
		vote, err := s.discussionRepo.GetVote(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		if vote != nil {
			userVote = &vote.VoteType
		}
	}
	return toDiscussionDTO(discussion, userVote)
}

func (s *DiscussionServiceImpl) Vote(ctx context.Context, id, userID uint64, voteType string) (*dto.DiscussionDTO, error) {
	discussion, err := s.discussionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, ErrDiscussionNotFound
	}

	action, err := s.discussionRepo.ApplyVote(ctx, id, userID, voteType)
	if err != nil {
		return nil, err
	}

	discussion, err = s.discussionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 撤销后 userVote 为 null，否则为落库后的实际值
	var userVote *string
	if action != repository.VoteActionRemoved {
		userVote = &voteType
	}
	return toDiscussionDTO(discussion, userVote)
}

func (s *DiscussionServiceImpl) CreateComment(ctx context.Context, discussionID, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	discussion, err := s.discussionRepo.GetByID(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, ErrDiscussionNotFound
	}

	comment := &model.DiscussionComment{
		DiscussionID: discussionID,
		UserID:       userID,
		Content:      req.Content,
	}
	if err = s.discussionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	created, err := s.discussionRepo.GetCommentByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	return toCommentDTO(created)
}

func (s *DiscussionServiceImpl) GetComments(ctx context.Context, discussionID uint64) ([]*dto.CommentDTO, error) {
	discussion, err := s.discussionRepo.GetByID(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, ErrDiscussionNotFound
	}

	comments, err := s.discussionRepo.GetCommentsByDiscussion(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		item, err := toCommentDTO(comment)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *DiscussionServiceImpl) DeleteComment(ctx context.Context, commentID, userID uint64) error {
	comment, err := s.discussionRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return ErrNotCommentAuthor
	}

	rows, err := s.discussionRepo.DeleteComment(ctx, commentID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func toDiscussionDTO(discussion *model.Discussion, userVote *string) (*dto.DiscussionDTO, error) {
	item := &dto.DiscussionDTO{}
	if err := copier.Copy(item, discussion); err != nil {
		return nil, err
	}
	item.Username = discussion.User.Username
	item.UserVote = userVote
	return item, nil
}

func toCommentDTO(comment *model.DiscussionComment) (*dto.CommentDTO, error) {
	item := &dto.CommentDTO{}
	if err := copier.Copy(item, comment); err != nil {
		return nil, err
	}
	item.Username = comment.User.Username
	return item, nil
}
