package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chaekdam/chaekdam-backend/config"
	"github.com/chaekdam/chaekdam-backend/internal/app/controller"
	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/internal/app/service"
	"github.com/chaekdam/chaekdam-backend/internal/db"
	"github.com/chaekdam/chaekdam-backend/internal/middleware"
	"github.com/chaekdam/chaekdam-backend/internal/storage"
	"github.com/chaekdam/chaekdam-backend/pkg/naver"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubBookProvider 외부 검색 API 대역 (라우팅 테스트에서는 호출되지 않음)
type stubBookProvider struct{}

func (stubBookProvider) Search(ctx context.Context, query string, display, start int, sort string) (*naver.SearchResult, error) {
	return &naver.SearchResult{Items: []naver.BookItem{}}, nil
}

func (stubBookProvider) SearchByISBN(ctx context.Context, isbn string) (*naver.BookItem, error) {
	return nil, nil
}

type routerFixture struct {
	engine      *gin.Engine
	db          *gorm.DB
	authService service.AuthService
}

func setupRouterTest(t *testing.T) *routerFixture {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	bookRepo := repository.NewBookRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	tagRepo := repository.NewTagRepository(testDB)
	reviewRepo := repository.NewReviewRepository(testDB)
	draftRepo := repository.NewDraftRepository(testDB)
	ratingRepo := repository.NewRatingRepository(testDB)
	replyRepo := repository.NewReplyRepository(testDB)
	commentRepo := repository.NewCommentRepository(testDB)

	authService := service.NewAuthService(userRepo, "test-secret", 15*time.Minute, 7*24*time.Hour)
	userService := service.NewUserService(userRepo, bookRepo)
	bookService := service.NewBookService(bookRepo, categoryRepo, stubBookProvider{})
	categoryService := service.NewCategoryService(categoryRepo)
	tagService := service.NewTagService(tagRepo)
	reviewService := service.NewReviewService(reviewRepo, bookRepo, userRepo, tagRepo, ratingRepo, userService)
	draftService := service.NewDraftService(draftRepo, bookRepo, tagRepo, reviewService)
	ratingService := service.NewRatingService(ratingRepo, reviewRepo, bookRepo)
	replyService := service.NewReplyService(replyRepo, reviewRepo)
	commentService := service.NewCommentService(commentRepo, replyRepo)

	s3Storage := storage.NewS3Storage("ap-northeast-2", "test-bucket", "test", "test", "")

	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: gin.TestMode},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	engine := NewRouter(
		controller.NewAuthController(authService),
		controller.NewUserController(userService),
		controller.NewBookController(bookService),
		controller.NewCategoryController(categoryService),
		controller.NewTagController(tagService),
		controller.NewReviewController(reviewService),
		controller.NewDraftController(draftService),
		controller.NewRatingController(ratingService),
		controller.NewReplyController(replyService),
		controller.NewCommentController(commentService),
		controller.NewUploadController(s3Storage),
		middleware.NewAuthMiddleware("test-secret"),
		cfg,
	).Setup()

	return &routerFixture{engine: engine, db: testDB, authService: authService}
}

func (f *routerFixture) registerUser(t *testing.T, email string, role model.UserRole) string {
	user, tokens, err := f.authService.Register(email, "password123", "책벌레")
	require.NoError(t, err)

	if role != model.RoleUser {
		require.NoError(t, f.db.Model(&model.User{}).
			Where("id = ?", user.ID).
			Update("role", role).Error)
		// 토큰에 역할이 들어가므로 변경 후 다시 로그인
		_, tokens, err = f.authService.Login(email, "password123")
		require.NoError(t, err)
	}
	return tokens.AccessToken
}

func (f *routerFixture) postJSON(t *testing.T, path, token string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_CreateTag_RequiresAdmin(t *testing.T) {
	f := setupRouterTest(t)
	token := f.registerUser(t, "reader@example.com", model.RoleUser)

	w := f.postJSON(t, "/api/v1/tags", token, model.CreateTagRequest{Name: "한국문학"})

	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, f.db.Model(&model.Tag{}).Where("name = ?", "한국문학").Count(&count).Error)
	assert.Zero(t, count)
}

func TestRouter_CreateTag_AdminAllowed(t *testing.T) {
	f := setupRouterTest(t)
	token := f.registerUser(t, "admin@example.com", model.RoleAdmin)

	w := f.postJSON(t, "/api/v1/tags", token, model.CreateTagRequest{Name: "한국문학"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	tagMap := response["tag"].(map[string]interface{})
	assert.Equal(t, "한국문학", tagMap["name"])
}

func TestRouter_CreateTag_Unauthenticated(t *testing.T) {
	f := setupRouterTest(t)

	w := f.postJSON(t, "/api/v1/tags", "", model.CreateTagRequest{Name: "한국문학"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_Health(t *testing.T) {
	f := setupRouterTest(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
