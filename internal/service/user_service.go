package service

import (
	"AniHub/internal/api/dto"
	"AniHub/internal/model"
	"AniHub/internal/pkg/consts"
	"AniHub/internal/pkg/redis"
	"AniHub/internal/pkg/security"
	"AniHub/internal/repository"
	"context"
	"errors"
	"math"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (string, *dto.UserDTO, error)
	Login(ctx context.Context, req *dto.LoginDTO) (string, *dto.UserDTO, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, id uint64) (*dto.UserDTO, *dto.ProfileStatsDTO, error)
}

type UserServiceImpl struct {
	userRepo    repository.UserRepo
	trackerRepo repository.TrackerRepo
}

func NewUserService(userRepo repository.UserRepo, trackerRepo repository.TrackerRepo) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		trackerRepo: trackerRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (string, *dto.UserDTO, error) {
	emailTaken, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}
	if emailTaken {
		return "", nil, ErrEmailExist
	}

	usernameTaken, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return "", nil, err
	}
	if usernameTaken {
		return "", nil, ErrUsernameExist
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: passwordHash,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 并发注册穿过了前置检查，由唯一索引兜底
		if dup := duplicateKeyError(err); dup != nil {
			return "", nil, dup
		}
		return "", nil, err
	}

	token, err := security.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return "", nil, err
	}
	return token, userDTO, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (string, *dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrCredentialsInvalid
	}
	if err = security.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		return "", nil, ErrCredentialsInvalid
	}

	token, err := security.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return "", nil, err
	}
	return token, userDTO, nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, security.TokenTTL())
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, id uint64) (*dto.UserDTO, *dto.ProfileStatsDTO, error) {
	var (
		user    *model.User
		entries []*model.TrackerEntry
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.userRepo.GetUserByID(gCtx, id)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.trackerRepo.ListByUser(gCtx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, nil, err
	}
	return userDTO, buildProfileStats(entries), nil
}

func buildProfileStats(entries []*model.TrackerEntry) *dto.ProfileStatsDTO {
	stats := &dto.ProfileStatsDTO{TotalAnime: len(entries)}
	var ratingSum, ratingCount int
	for _, entry := range entries {
		switch entry.Status {
		case consts.TrackerStatusCompleted:
			stats.Completed++
		case consts.TrackerStatusWatching:
			stats.Watching++
		case consts.TrackerStatusPlanToWatch:
			stats.PlanToWatch++
		}
		if entry.Rating != nil && *entry.Rating > 0 {
			ratingSum += int(*entry.Rating)
			ratingCount++
		}
	}
	if ratingCount > 0 {
		// 均分保留一位小数
		stats.MeanScore = math.Round(float64(ratingSum)/float64(ratingCount)*10) / 10
	}
	return stats
}

// duplicateKeyError 将 MySQL 1062 映射为对应的冲突错误
func duplicateKeyError(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != 1062 {
		return nil
	}
	if strings.Contains(mysqlErr.Message, "idx_username") {
		return ErrUsernameExist
	}
	return ErrEmailExist
}
