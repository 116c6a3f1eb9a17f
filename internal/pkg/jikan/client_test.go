package jikan

import (
	"AniHub/internal/api/config"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.JikanConfig{BaseURL: server.URL, Timeout: 2})
}

func TestSearchAnime(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/anime" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "frieren" {
			t.Fatalf("unexpected query %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Fatalf("unexpected limit %q", got)
		}
		_, _ = w.Write([]byte(`{"data":[{"mal_id":52991,"title":"Sousou no Frieren"}]}`))
	})

	body, err := client.SearchAnime(context.Background(), "frieren", 5, "score", "desc")
	if err != nil {
		t.Fatalf("SearchAnime: %v", err)
	}

	var envelope struct {
		Data []struct {
			MalID int64 `json:"mal_id"`
		} `json:"data"`
	}
	if err = json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].MalID != 52991 {
		t.Fatalf("unexpected payload: %+v", envelope)
	}
}

func TestGetAnimeByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/anime/52991" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":{"mal_id":52991}}`))
	})

	if _, err := client.GetAnimeByID(context.Background(), 52991); err != nil {
		t.Fatalf("GetAnimeByID: %v", err)
	}
}

func TestGetAnimeByIDNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetAnimeByID(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
