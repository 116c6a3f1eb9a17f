package service

import (
	"AniHub/internal/pkg/consts"
	"AniHub/internal/pkg/jikan"
	"AniHub/internal/pkg/redis"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

const (
	animeSearchExpiration = 30 * time.Minute
	animeDetailExpiration = 6 * time.Hour
)

// AnimeService 番剧目录代理，数据来自 Jikan，带 Redis 读穿缓存
type AnimeService interface {
	Search(ctx context.Context, query string, limit int, orderBy, sort string) (json.RawMessage, error)
	GetByID(ctx context.Context, id int64) (json.RawMessage, error)
}

type AnimeServiceImpl struct {
	client *jikan.Client
}

func NewAnimeService(client *jikan.Client) AnimeService {
	return &AnimeServiceImpl{client: client}
}

func (s *AnimeServiceImpl) Search(ctx context.Context, query string, limit int, orderBy, sort string) (json.RawMessage, error) {
	key := fmt.Sprintf("%s%s:%d:%s:%s", consts.AnimeSearchKey, query, limit, orderBy, sort)
	cached, err := redis.GetValue(ctx, key)
	if err == nil && cached != "" {
		return json.RawMessage(cached), nil
	}

	body, err := s.client.SearchAnime(ctx, query, limit, orderBy, sort)
	if err != nil {
		return nil, err
	}

	_ = redis.SetWithExpiration(ctx, key, string(body), animeSearchExpiration)
	return body, nil
}

func (s *AnimeServiceImpl) GetByID(ctx context.Context, id int64) (json.RawMessage, error) {
	key := consts.AnimeDetailKey + strconv.FormatInt(id, 10)
	cached, err := redis.GetValue(ctx, key)
	if err == nil && cached != "" {
		return json.RawMessage(cached), nil
	}

	body, err := s.client.GetAnimeByID(ctx, id)
	if err != nil {
		if errors.Is(err, jikan.ErrNotFound) {
			return nil, ErrAnimeNotFound
		}
		return nil, err
	}

	_ = redis.SetWithExpiration(ctx, key, string(body), animeDetailExpiration)
	return body, nil
}
