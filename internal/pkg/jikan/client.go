package jikan

import (
	"AniHub/internal/api/config"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://api.jikan.moe/v4"
	defaultTimeout = 10 * time.Second
)

// ErrNotFound 上游返回 404
var ErrNotFound = errors.New("anime not found")

// Client Jikan (MyAnimeList) 目录 API 客户端
type Client struct {
	http *resty.Client
}

func NewClient(cfg config.JikanConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(time.Second)

	return &Client{http: httpClient}
}

// SearchAnime 关键词检索，返回上游的原始 JSON
func (s *Client) SearchAnime(ctx context.Context, query string, limit int, orderBy, sort string) ([]byte, error) {
	req := s.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetQueryParam("limit", strconv.Itoa(limit))
	if orderBy != "" {
		req.SetQueryParam("order_by", orderBy)
	}
	if sort != "" {
		req.SetQueryParam("sort", sort)
	}

	resp, err := req.Get("/anime")
	if err != nil {
		return nil, fmt.Errorf("jikan search request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("jikan search returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

// GetAnimeByID 按 MAL ID 获取番剧详情，返回上游的原始 JSON
func (s *Client) GetAnimeByID(ctx context.Context, id int64) ([]byte, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/anime/%d", id))
	if err != nil {
		return nil, fmt.Errorf("jikan detail request failed: %w", err)
	}
	if resp.StatusCode() == 404 {
		return nil, ErrNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("jikan detail returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
