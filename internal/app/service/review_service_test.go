package service

import (
	"testing"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type reviewServiceFixture struct {
	db      *gorm.DB
	service *ReviewService
	user    *model.User
	other   *model.User
	book    *model.Book
}

func setupReviewServiceTest(t *testing.T) reviewServiceFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	category := &model.Category{Name: model.DefaultCategoryName}
	require.NoError(t, testDB.Create(category).Error)

	user := &model.User{Email: "reader@example.com", Username: "책벌레", PasswordHash: "x", Role: model.RoleUser}
	require.NoError(t, testDB.Create(user).Error)

	other := &model.User{Email: "other@example.com", Username: "딴사람", PasswordHash: "x", Role: model.RoleUser}
	require.NoError(t, testDB.Create(other).Error)

	book := &model.Book{Title: "데미안", ISBN: "9788937460449", CategoryID: category.ID}
	require.NoError(t, testDB.Create(book).Error)

	userRepo := repository.NewUserRepository(testDB)
	bookRepo := repository.NewBookRepository(testDB)
	reviewRepo := repository.NewReviewRepository(testDB)
	tagRepo := repository.NewTagRepository(testDB)
	ratingRepo := repository.NewRatingRepository(testDB)
	userSvc := NewUserService(userRepo, bookRepo)

	service := NewReviewService(reviewRepo, bookRepo, userRepo, tagRepo, ratingRepo, userSvc)

	return reviewServiceFixture{
		db:      testDB,
		service: service,
		user:    user,
		other:   other,
		book:    book,
	}
}

func TestReviewService_CreateReview(t *testing.T) {
	f := setupReviewServiceTest(t)

	review, err := f.service.CreateReview(f.user.ID, &model.CreateReviewRequest{
		BookID:      f.book.ID,
		Title:       "인생 책",
		Description: "꼭 읽어보세요",
		Rating:      5,
		Tags:        []string{"성장소설", "인생책"},
	})
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, review.Author.ID)
	assert.Len(t, review.Tags, 2)

	// 평점은 별도 행으로 저장됨
	require.NotNil(t, review.Rating)
	assert.Equal(t, 5, review.Rating.Rating)
	assert.Equal(t, f.book.ID, review.Rating.BookID)
}

func TestReviewService_CreateReview_Validation(t *testing.T) {
	f := setupReviewServiceTest(t)

	tests := []struct {
		name    string
		req     *model.CreateReviewRequest
		wantErr error
	}{
		{
			name: "Unknown book",
			req: &model.CreateReviewRequest{
				BookID:      9999,
				Title:       "제목",
				Description: "내용",
				Rating:      3,
			},
			wantErr: ErrBookNotFound,
		},
		{
			name: "Rating out of range",
			req: &model.CreateReviewRequest{
				BookID:      f.book.ID,
				Title:       "제목",
				Description: "내용",
				Rating:      6,
			},
			wantErr: ErrInvalidRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateReview(f.user.ID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReviewService_UpdateReview(t *testing.T) {
	f := setupReviewServiceTest(t)

	review, err := f.service.CreateReview(f.user.ID, &model.CreateReviewRequest{
		BookID:      f.book.ID,
		Title:       "처음 제목",
		Description: "처음 내용",
		Rating:      3,
		Tags:        []string{"성장소설"},
	})
	require.NoError(t, err)

	newTitle := "고친 제목"
	newRating := 5
	updated, err := f.service.UpdateReview(review.ID, f.user.ID, &model.UpdateReviewRequest{
		Title:  &newTitle,
		Rating: &newRating,
		Tags:   []string{"고전"},
	})
	require.NoError(t, err)
	assert.Equal(t, "고친 제목", updated.Title)
	assert.Equal(t, "처음 내용", updated.Description)

	// 평점은 새 행 생성이 아니라 기존 행 갱신
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 5, updated.Rating.Rating)
	var ratingCount int64
	require.NoError(t, f.db.Model(&model.Rating{}).Where("review_id = ?", review.ID).Count(&ratingCount).Error)
	assert.Equal(t, int64(1), ratingCount)

	// 태그 전체 교체
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "고전", updated.Tags[0].Name)
}

func TestReviewService_UpdateReview_NotOwner(t *testing.T) {
	f := setupReviewServiceTest(t)

	review, err := f.service.CreateReview(f.user.ID, &model.CreateReviewRequest{
		BookID:      f.book.ID,
		Title:       "제목",
		Description: "내용",
		Rating:      3,
	})
	require.NoError(t, err)

	newTitle := "남의 글 고치기"
	_, err = f.service.UpdateReview(review.ID, f.other.ID, &model.UpdateReviewRequest{
		Title: &newTitle,
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestReviewService_DeleteReview(t *testing.T) {
	f := setupReviewServiceTest(t)

	review, err := f.service.CreateReview(f.user.ID, &model.CreateReviewRequest{
		BookID:      f.book.ID,
		Title:       "제목",
		Description: "내용",
		Rating:      4,
	})
	require.NoError(t, err)

	// 작성자가 아니면 삭제 불가
	err = f.service.DeleteReview(review.ID, f.other.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// 작성자는 삭제 가능, 평점 행도 함께 삭제
	require.NoError(t, f.service.DeleteReview(review.ID, f.user.ID))

	_, err = f.service.GetReview(review.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	var ratingCount int64
	require.NoError(t, f.db.Model(&model.Rating{}).Where("review_id = ?", review.ID).Count(&ratingCount).Error)
	assert.Zero(t, ratingCount)
}

func TestReviewService_FirstReviewBadge(t *testing.T) {
	f := setupReviewServiceTest(t)

	badge := &model.Badge{Name: "첫 리뷰", Image: "/badges/first-review.png"}
	require.NoError(t, f.db.Create(badge).Error)

	_, err := f.service.CreateReview(f.user.ID, &model.CreateReviewRequest{
		BookID:      f.book.ID,
		Title:       "첫 리뷰",
		Description: "내용",
		Rating:      5,
	})
	require.NoError(t, err)

	var user model.User
	require.NoError(t, f.db.Preload("Badges").First(&user, f.user.ID).Error)
	require.Len(t, user.Badges, 1)
	assert.Equal(t, "첫 리뷰", user.Badges[0].Name)
}
