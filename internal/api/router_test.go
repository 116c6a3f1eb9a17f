package api_test

import (
	"AniHub/internal/api"
	"AniHub/internal/api/config"
	"AniHub/internal/api/handler"
	"AniHub/internal/model"
	"AniHub/internal/pkg/database"
	"AniHub/internal/pkg/jikan"
	"AniHub/internal/repository"
	"AniHub/internal/service"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{Secret: "api-test-secret", ExpireHours: 1},
	}
	os.Exit(m.Run())
}

var dbSeq int

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err = database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	trackerRepo := repository.NewTrackerRepo(db)
	discussionRepo := repository.NewDiscussionRepo(db)
	platformRepo := repository.NewPlatformRepo(db)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(service.NewUserService(userRepo, trackerRepo)),
		TrackerHandler:    handler.NewTrackerHandler(service.NewTrackerService(trackerRepo)),
		DiscussionHandler: handler.NewDiscussionHandler(service.NewDiscussionService(discussionRepo)),
		PlatformHandler:   handler.NewPlatformHandler(service.NewPlatformService(platformRepo)),
		AnimeHandler:      handler.NewAnimeHandler(service.NewAnimeService(jikan.NewClient(config.Cfg.Jikan))),
	}
	return api.SetupRouter(handlers), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	payload := map[string]interface{}{}
	if recorder.Body.Len() > 0 {
		if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode response %q: %v", recorder.Body.String(), err)
		}
	}
	return recorder, payload
}

func registerAndLogin(t *testing.T, router *gin.Engine, email, username string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":"secret123","username":%q}`, email, username)
	recorder, payload := doJSON(t, router, http.MethodPost, "/api/auth/register", "", body)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("register status %d: %s", recorder.Code, recorder.Body.String())
	}
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatalf("register response missing token: %v", payload)
	}
	return token
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)
	recorder, payload := doJSON(t, router, http.MethodGet, "/api/ping", "", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status %d", recorder.Code)
	}
	if payload["message"] != "pong" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestRegisterValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []string{
		`{"email":"not-an-email","password":"secret123","username":"alice"}`,
		`{"email":"alice@example.com","password":"short","username":"alice"}`,
		`{"email":"alice@example.com","password":"secret123","username":"al"}`,
	}
	for _, body := range cases {
		recorder, payload := doJSON(t, router, http.MethodPost, "/api/auth/register", "", body)
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, recorder.Code)
		}
		if payload["success"] != false {
			t.Fatalf("failure response should carry success=false: %v", payload)
		}
	}
}

func TestRegisterConflict(t *testing.T) {
	router, _ := newTestRouter(t)
	registerAndLogin(t, router, "alice@example.com", "alice")

	recorder, _ := doJSON(t, router, http.MethodPost, "/api/auth/register", "",
		`{"email":"alice@example.com","password":"secret123","username":"alice2"}`)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", recorder.Code)
	}

	recorder, _ = doJSON(t, router, http.MethodPost, "/api/auth/register", "",
		`{"email":"alice2@example.com","password":"secret123","username":"alice"}`)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", recorder.Code)
	}
}

func TestLoginFlow(t *testing.T) {
	router, _ := newTestRouter(t)
	registerAndLogin(t, router, "alice@example.com", "alice")

	recorder, payload := doJSON(t, router, http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"secret123"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("login status %d", recorder.Code)
	}
	if payload["token"] == "" {
		t.Fatalf("login missing token: %v", payload)
	}

	recorder, _ = doJSON(t, router, http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"wrong-password"}`)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", recorder.Code)
	}
}

func TestTrackerRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder, _ := doJSON(t, router, http.MethodGet, "/api/tracker", "", "")
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", recorder.Code)
	}

	recorder, _ = doJSON(t, router, http.MethodGet, "/api/tracker", "garbage-token", "")
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", recorder.Code)
	}
}

func TestTrackerCRUD(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router, "alice@example.com", "alice")

	recorder, payload := doJSON(t, router, http.MethodPost, "/api/tracker", token,
		`{"animeId":100,"status":"watching","progress":3}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("add status %d: %s", recorder.Code, recorder.Body.String())
	}
	entry := payload["data"].(map[string]interface{})
	entryID := int64(entry["id"].(float64))

	// 同一部番剧重复添加
	recorder, _ = doJSON(t, router, http.MethodPost, "/api/tracker", token,
		`{"animeId":100,"status":"completed"}`)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate anime, got %d", recorder.Code)
	}

	// 非法状态值
	recorder, _ = doJSON(t, router, http.MethodPost, "/api/tracker", token,
		`{"animeId":101,"status":"binging"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", recorder.Code)
	}

	recorder, payload = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/tracker/%d", entryID), token,
		`{"status":"completed","rating":9}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("update status %d: %s", recorder.Code, recorder.Body.String())
	}
	updated := payload["data"].(map[string]interface{})
	if updated["status"] != "completed" || updated["rating"].(float64) != 9 {
		t.Fatalf("unexpected updated entry: %v", updated)
	}

	recorder, payload = doJSON(t, router, http.MethodGet, "/api/tracker", token, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("list status %d", recorder.Code)
	}
	if payload["count"].(float64) != 1 {
		t.Fatalf("expected one entry, got %v", payload["count"])
	}

	recorder, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tracker/%d", entryID), token, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("delete status %d", recorder.Code)
	}
	recorder, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tracker/%d", entryID), token, "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", recorder.Code)
	}
}

func TestDiscussionAndVoteFlow(t *testing.T) {
	router, _ := newTestRouter(t)
	aliceToken := registerAndLogin(t, router, "alice@example.com", "alice")
	bobToken := registerAndLogin(t, router, "bob@example.com", "bob")

	recorder, payload := doJSON(t, router, http.MethodPost, "/api/discussions", aliceToken,
		`{"title":"Underrated gems?","content":"Drop your picks."}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create status %d: %s", recorder.Code, recorder.Body.String())
	}
	discussion := payload["discussion"].(map[string]interface{})
	discussionID := int64(discussion["id"].(float64))

	// 匿名可读
	recorder, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/discussions/%d", discussionID), "", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("anonymous detail status %d", recorder.Code)
	}

	// 未登录不可投票
	recorder, _ = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/discussions/%d/vote", discussionID), "",
		`{"voteType":"agree"}`)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 voting logged out, got %d", recorder.Code)
	}

	recorder, payload = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/discussions/%d/vote", discussionID), bobToken,
		`{"voteType":"agree"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("vote status %d: %s", recorder.Code, recorder.Body.String())
	}
	voted := payload["discussion"].(map[string]interface{})
	if voted["agree_count"].(float64) != 1 {
		t.Fatalf("expected agree_count 1: %v", voted)
	}

	// 非法投票类型
	recorder, _ = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/discussions/%d/vote", discussionID), bobToken,
		`{"voteType":"meh"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid vote type, got %d", recorder.Code)
	}

	// 不存在的讨论
	recorder, _ = doJSON(t, router, http.MethodPost, "/api/discussions/9999/vote", bobToken,
		`{"voteType":"agree"}`)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown discussion, got %d", recorder.Code)
	}

	// 评论与作者限定删除
	recorder, payload = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/discussions/%d/comments", discussionID), bobToken,
		`{"content":"Nice thread"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("comment status %d: %s", recorder.Code, recorder.Body.String())
	}
	comment := payload["comment"].(map[string]interface{})
	commentID := int64(comment["id"].(float64))

	recorder, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/discussions/%d/comments/%d", discussionID, commentID), aliceToken, "")
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403 deleting another user's comment, got %d", recorder.Code)
	}
	recorder, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/discussions/%d/comments/%d", discussionID, commentID), bobToken, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected author delete to succeed, got %d", recorder.Code)
	}
}

func TestPlatforms(t *testing.T) {
	router, db := newTestRouter(t)

	platform := &model.Platform{Name: "crunchyroll", DisplayName: "Crunchyroll", Region: "US", IsActive: true}
	if err := db.Create(platform).Error; err != nil {
		t.Fatalf("seed platform: %v", err)
	}
	link := &model.AnimePlatform{AnimeID: 100, PlatformID: platform.ID, AvailabilityStatus: "available", Region: "US"}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("seed anime platform: %v", err)
	}

	recorder, payload := doJSON(t, router, http.MethodGet, "/api/platforms", "", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("platforms status %d", recorder.Code)
	}
	if len(payload["platforms"].([]interface{})) != 1 {
		t.Fatalf("expected one platform: %v", payload)
	}

	recorder, payload = doJSON(t, router, http.MethodGet, "/api/platforms/100", "", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("anime platforms status %d", recorder.Code)
	}
	if payload["animeId"].(float64) != 100 {
		t.Fatalf("expected animeId echo: %v", payload)
	}

	recorder, payload = doJSON(t, router, http.MethodGet, "/api/platforms/999", "", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unknown anime platforms status %d", recorder.Code)
	}
	if len(payload["platforms"].([]interface{})) != 0 {
		t.Fatalf("expected empty platform list: %v", payload)
	}
}

func TestProfileEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router, "alice@example.com", "alice")

	if recorder, _ := doJSON(t, router, http.MethodPost, "/api/tracker", token,
		`{"animeId":1,"status":"completed"}`); recorder.Code != http.StatusCreated {
		t.Fatalf("seed tracker failed: %d", recorder.Code)
	}

	recorder, payload := doJSON(t, router, http.MethodGet, "/api/auth/me", token, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("me status %d: %s", recorder.Code, recorder.Body.String())
	}
	stats := payload["stats"].(map[string]interface{})
	if stats["total_anime"].(float64) != 1 || stats["completed"].(float64) != 1 {
		t.Fatalf("unexpected stats: %v", stats)
	}
}

func TestLogoutWithoutRedisFailsButTokenStaysValid(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router, "alice@example.com", "alice")

	// Redis 未初始化时注销返回 500，但 Token 校验本身不受影响
	recorder, _ := doJSON(t, router, http.MethodPost, "/api/auth/logout", token, "")
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without redis, got %d", recorder.Code)
	}

	recorder, _ = doJSON(t, router, http.MethodGet, "/api/auth/me", token, "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("token should remain valid, got %d", recorder.Code)
	}
}
