package service

import (
	"AniHub/internal/api/dto"
	"AniHub/internal/model"
	"AniHub/internal/repository"
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
)

type TrackerService interface {
	List(ctx context.Context, userID uint64) ([]*dto.TrackerDTO, error)
	Add(ctx context.Context, userID uint64, req *dto.TrackerAddDTO) (*dto.TrackerDTO, error)
	Update(ctx context.Context, userID, trackerID uint64, req *dto.TrackerUpdateDTO) (*dto.TrackerDTO, error)
	Remove(ctx context.Context, userID, trackerID uint64) error
}

type TrackerServiceImpl struct {
	trackerRepo repository.TrackerRepo
}

func NewTrackerService(trackerRepo repository.TrackerRepo) TrackerService {
	return &TrackerServiceImpl{trackerRepo: trackerRepo}
}

func (s *TrackerServiceImpl) List(ctx context.Context, userID uint64) ([]*dto.TrackerDTO, error) {
	entries, err := s.trackerRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TrackerDTO, 0, len(entries))
	for _, entry := range entries {
		item, err := toTrackerDTO(entry)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *TrackerServiceImpl) Add(ctx context.Context, userID uint64, req *dto.TrackerAddDTO) (*dto.TrackerDTO, error) {
	existing, err := s.trackerRepo.FindByUserAndAnime(ctx, userID, req.AnimeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTrackerDuplicate
	}

	entry := &model.TrackerEntry{
		UserID:   userID,
		AnimeID:  req.AnimeID,
		Status:   req.Status,
		Progress: req.Progress,
	}
	if err = s.trackerRepo.Create(ctx, entry); err != nil {
		// 并发写入时唯一索引兜底
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrTrackerDuplicate
		}
		return nil, err
	}
	return toTrackerDTO(entry)
}

func (s *TrackerServiceImpl) Update(ctx context.Context, userID, trackerID uint64, req *dto.TrackerUpdateDTO) (*dto.TrackerDTO, error) {
	entry, err := s.trackerRepo.GetByIDAndUser(ctx, trackerID, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrTrackerNotFound
	}

	// status/progress/notes 缺省保留原值；rating 总是整体覆盖，缺省即清空
	updates := map[string]interface{}{
		"rating": req.Rating,
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Progress != nil {
		updates["progress"] = *req.Progress
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if err = s.trackerRepo.UpdateByIDAndUser(ctx, trackerID, userID, updates); err != nil {
		return nil, err
	}

	entry, err = s.trackerRepo.GetByIDAndUser(ctx, trackerID, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrTrackerNotFound
	}
	return toTrackerDTO(entry)
}

func (s *TrackerServiceImpl) Remove(ctx context.Context, userID, trackerID uint64) error {
	rows, err := s.trackerRepo.DeleteByIDAndUser(ctx, trackerID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTrackerNotFound
	}
	return nil
}

func toTrackerDTO(entry *model.TrackerEntry) (*dto.TrackerDTO, error) {
	item := &dto.TrackerDTO{}
	if err := copier.Copy(item, entry); err != nil {
		return nil, err
	}
	return item, nil
}
