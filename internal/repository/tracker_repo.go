package repository

import (
	"AniHub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TrackerRepo interface {
	ListByUser(ctx context.Context, userID uint64) ([]*model.TrackerEntry, error)
	FindByUserAndAnime(ctx context.Context, userID uint64, animeID int64) (*model.TrackerEntry, error)
	Create(ctx context.Context, entry *model.TrackerEntry) error
	GetByIDAndUser(ctx context.Context, id, userID uint64) (*model.TrackerEntry, error)
	UpdateByIDAndUser(ctx context.Context, id, userID uint64, updates map[string]interface{}) error
	DeleteByIDAndUser(ctx context.Context, id, userID uint64) (int64, error)
}

type TrackerRepoImpl struct {
	db *gorm.DB
}

func NewTrackerRepo(db *gorm.DB) TrackerRepo {
	return &TrackerRepoImpl{db}
}

func (s *TrackerRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.TrackerEntry, error) {
	var entries []*model.TrackerEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *TrackerRepoImpl) FindByUserAndAnime(ctx context.Context, userID uint64, animeID int64) (*model.TrackerEntry, error) {
	var entry model.TrackerEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND anime_id = ?", userID, animeID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (s *TrackerRepoImpl) Create(ctx context.Context, entry *model.TrackerEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *TrackerRepoImpl) GetByIDAndUser(ctx context.Context, id, userID uint64) (*model.TrackerEntry, error) {
	var entry model.TrackerEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// UpdateByIDAndUser 归属校验下的字段更新，updates 中的 nil 值会写成 NULL
func (s *TrackerRepoImpl) UpdateByIDAndUser(ctx context.Context, id, userID uint64, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.TrackerEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates).Error
}

func (s *TrackerRepoImpl) DeleteByIDAndUser(ctx context.Context, id, userID uint64) (int64, error) {
	tx := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TrackerEntry{})
	return tx.RowsAffected, tx.Error
}
