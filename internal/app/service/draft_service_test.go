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

type draftServiceFixture struct {
	db      *gorm.DB
	service *DraftService
	user    *model.User
	other   *model.User
	book    *model.Book
}

func setupDraftServiceTest(t *testing.T) draftServiceFixture {
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
	draftRepo := repository.NewDraftRepository(testDB)
	userSvc := NewUserService(userRepo, bookRepo)
	reviewSvc := NewReviewService(reviewRepo, bookRepo, userRepo, tagRepo, ratingRepo, userSvc)

	service := NewDraftService(draftRepo, bookRepo, tagRepo, reviewSvc)

	return draftServiceFixture{
		db:      testDB,
		service: service,
		user:    user,
		other:   other,
		book:    book,
	}
}

func TestDraftService_CreateDraft(t *testing.T) {
	f := setupDraftServiceTest(t)

	draft, err := f.service.CreateDraft(f.user.ID, &model.CreateDraftRequest{
		BookID:      f.book.ID,
		Title:       "쓰다 만 리뷰",
		Description: "나중에 이어서",
		Rating:      4,
		Tags:        []string{"성장소설"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, draft.Rating)
	assert.Len(t, draft.Tags, 1)

	// 임시 저장은 평점 행을 만들지 않음
	var ratingCount int64
	require.NoError(t, f.db.Model(&model.Rating{}).Count(&ratingCount).Error)
	assert.Zero(t, ratingCount)
}

func TestDraftService_UpdateDraft_OnlyTouchesDraft(t *testing.T) {
	f := setupDraftServiceTest(t)

	draft, err := f.service.CreateDraft(f.user.ID, &model.CreateDraftRequest{
		BookID:      f.book.ID,
		Title:       "쓰다 만 리뷰",
		Description: "내용",
		Rating:      2,
	})
	require.NoError(t, err)

	// 같은 책의 발행된 리뷰 (평점 행 보유)
	published := &model.Review{BookID: f.book.ID, AuthorID: f.user.ID, Title: "발행된 리뷰", Description: "내용"}
	require.NoError(t, f.db.Create(published).Error)
	require.NoError(t, f.db.Create(&model.Rating{BookID: f.book.ID, ReviewID: published.ID, Rating: 5}).Error)

	newRating := 3
	updated, err := f.service.UpdateDraft(draft.ID, f.user.ID, &model.UpdateDraftRequest{
		Rating: &newRating,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Rating)

	// 발행된 리뷰의 평점 행은 그대로
	var rating model.Rating
	require.NoError(t, f.db.Where("review_id = ?", published.ID).First(&rating).Error)
	assert.Equal(t, 5, rating.Rating)
}

func TestDraftService_OwnerOnly(t *testing.T) {
	f := setupDraftServiceTest(t)

	draft, err := f.service.CreateDraft(f.user.ID, &model.CreateDraftRequest{
		BookID:      f.book.ID,
		Title:       "쓰다 만 리뷰",
		Description: "내용",
		Rating:      4,
	})
	require.NoError(t, err)

	_, err = f.service.GetDraft(draft.ID, f.other.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	newTitle := "남의 초안"
	_, err = f.service.UpdateDraft(draft.ID, f.other.ID, &model.UpdateDraftRequest{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotOwner)

	err = f.service.DeleteDraft(draft.ID, f.other.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestDraftService_PublishDraft(t *testing.T) {
	f := setupDraftServiceTest(t)

	draft, err := f.service.CreateDraft(f.user.ID, &model.CreateDraftRequest{
		BookID:      f.book.ID,
		Title:       "완성된 초안",
		Description: "이제 발행",
		Rating:      5,
		Tags:        []string{"인생책"},
	})
	require.NoError(t, err)

	review, err := f.service.PublishDraft(draft.ID, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "완성된 초안", review.Title)
	require.NotNil(t, review.Rating)
	assert.Equal(t, 5, review.Rating.Rating)
	require.Len(t, review.Tags, 1)

	// 발행 후 초안은 삭제됨
	_, err = f.service.GetDraft(draft.ID, f.user.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
