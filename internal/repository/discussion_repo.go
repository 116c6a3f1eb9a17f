package repository

import (
	"AniHub/internal/model"
	"AniHub/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

// 投票落库后的三种动作
const (
	VoteActionAdded   = "added"
	VoteActionChanged = "changed"
	VoteActionRemoved = "removed"
)

type DiscussionRepo interface {
	Create(ctx context.Context, discussion *model.Discussion) error
	GetAll(ctx context.Context) ([]*model.Discussion, error)
	GetByID(ctx context.Context, id uint64) (*model.Discussion, error)
	GetAllIDs(ctx context.Context) ([]uint64, error)

	GetVote(ctx context.Context, discussionID, userID uint64) (*model.DiscussionVote, error)
	ApplyVote(ctx context.Context, discussionID, userID uint64, voteType string) (string, error)
	RecountVotes(ctx context.Context, discussionID uint64) error

	CreateComment(ctx context.Context, comment *model.DiscussionComment) error
	GetCommentByID(ctx context.Context, commentID uint64) (*model.DiscussionComment, error)
	GetCommentsByDiscussion(ctx context.Context, discussionID uint64) ([]*model.DiscussionComment, error)
	DeleteComment(ctx context.Context, commentID uint64) (int64, error)
}

type DiscussionRepoImpl struct {
	db *gorm.DB
}

func NewDiscussionRepo(db *gorm.DB) DiscussionRepo {
	return &DiscussionRepoImpl{db}
}

func (s *DiscussionRepoImpl) Create(ctx context.Context, discussion *model.Discussion) error {
	return s.db.WithContext(ctx).Create(discussion).Error
}

func (s *DiscussionRepoImpl) GetAll(ctx context.Context) ([]*model.Discussion, error) {
	var discussions []*model.Discussion
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&discussions).Error
	return discussions, err
}

func (s *DiscussionRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Discussion, error) {
	var discussion model.Discussion
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&discussion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &discussion, nil
}

func (s *DiscussionRepoImpl) GetAllIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Discussion{}).
		Pluck("id", &ids).Error
	return ids, err
}

func (s *DiscussionRepoImpl) GetVote(ctx context.Context, discussionID, userID uint64) (*model.DiscussionVote, error) {
	var vote model.DiscussionVote
	err := s.db.WithContext(ctx).
		Where("discussion_id = ? AND user_id = ?", discussionID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

// ApplyVote 在单个事务内完成投票状态迁移并从投票表重算两个计数：
// 无票则插入，同类型则删除（再次点击取消），异类型则改写类型。
// 计数永远整体重算而不做增减，保证与源数据行严格一致。
func (s *DiscussionRepoImpl) ApplyVote(ctx context.Context, discussionID, userID uint64, voteType string) (string, error) {
	var action string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vote model.DiscussionVote
		err := tx.Where("discussion_id = ? AND user_id = ?", discussionID, userID).
			First(&vote).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			action = VoteActionAdded
			if err := tx.Create(&model.DiscussionVote{
				DiscussionID: discussionID,
				UserID:       userID,
				VoteType:     voteType,
			}).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		case vote.VoteType == voteType:
			action = VoteActionRemoved
			if err := tx.Where("discussion_id = ? AND user_id = ?", discussionID, userID).
				Delete(&model.DiscussionVote{}).Error; err != nil {
				return err
			}
		default:
			action = VoteActionChanged
			if err := tx.Model(&model.DiscussionVote{}).
				Where("discussion_id = ? AND user_id = ?", discussionID, userID).
				Update("vote_type", voteType).Error; err != nil {
				return err
			}
		}

		return recountVotes(tx, discussionID)
	})
	if err != nil {
		return "", err
	}

	return action, nil
}

// RecountVotes 单独暴露给对账任务使用
func (s *DiscussionRepoImpl) RecountVotes(ctx context.Context, discussionID uint64) error {
	return recountVotes(s.db.WithContext(ctx), discussionID)
}

func recountVotes(tx *gorm.DB, discussionID uint64) error {
	return tx.Exec(`UPDATE discussions SET
		agree_count = (SELECT COUNT(*) FROM discussion_votes WHERE discussion_id = ? AND vote_type = ?),
		disagree_count = (SELECT COUNT(*) FROM discussion_votes WHERE discussion_id = ? AND vote_type = ?)
		WHERE id = ?`,
		discussionID, consts.VoteTypeAgree,
		discussionID, consts.VoteTypeDisagree,
		discussionID).Error
}

func (s *DiscussionRepoImpl) CreateComment(ctx context.Context, comment *model.DiscussionComment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *DiscussionRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.DiscussionComment, error) {
	var comment model.DiscussionComment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", commentID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s *DiscussionRepoImpl) GetCommentsByDiscussion(ctx context.Context, discussionID uint64) ([]*model.DiscussionComment, error) {
	var comments []*model.DiscussionComment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("discussion_id = ?", discussionID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (s *DiscussionRepoImpl) DeleteComment(ctx context.Context, commentID uint64) (int64, error) {
	tx := s.db.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&model.DiscussionComment{})
	return tx.RowsAffected, tx.Error
}
