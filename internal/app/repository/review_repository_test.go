package repository

import (
	"testing"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type reviewTestFixture struct {
	user *model.User
	book *model.Book
}

func setupReviewTest(t *testing.T) (*gorm.DB, *ReviewRepository, reviewTestFixture) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	category := &model.Category{Name: model.DefaultCategoryName}
	require.NoError(t, testDB.Create(category).Error)

	user := &model.User{
		Email:        "reader@example.com",
		Username:     "책벌레",
		PasswordHash: "hashedpassword",
		Role:         model.RoleUser,
	}
	require.NoError(t, testDB.Create(user).Error)

	book := &model.Book{
		Title:      "데미안",
		ISBN:       "9788937460449",
		CategoryID: category.ID,
	}
	require.NoError(t, testDB.Create(book).Error)

	repo := NewReviewRepository(testDB)
	return testDB, repo, reviewTestFixture{user: user, book: book}
}

func TestReviewRepository_CreateReview(t *testing.T) {
	testDB, repo, f := setupReviewTest(t)
	defer db.CleanupTestDB(testDB)

	review := &model.Review{
		BookID:      f.book.ID,
		AuthorID:    f.user.ID,
		Title:       "인생 책을 만났다",
		Description: "싱클레어의 성장이 내 이야기 같았다.",
		Tags:        []model.Tag{{Name: "성장소설"}, {Name: "인생책"}},
	}

	err := repo.CreateReview(review)
	require.NoError(t, err)
	assert.NotZero(t, review.ID)

	found, err := repo.GetReviewByID(review.ID)
	require.NoError(t, err)
	assert.Equal(t, "인생 책을 만났다", found.Title)
	assert.Equal(t, f.user.ID, found.Author.ID)
	assert.Len(t, found.Tags, 2)
}

func TestReviewRepository_GetReviewsByBookID(t *testing.T) {
	testDB, repo, f := setupReviewTest(t)
	defer db.CleanupTestDB(testDB)

	for i := 0; i < 3; i++ {
		review := &model.Review{
			BookID:      f.book.ID,
			AuthorID:    f.user.ID,
			Title:       "리뷰",
			Description: "내용",
		}
		require.NoError(t, repo.CreateReview(review))
	}

	reviews, total, err := repo.GetReviewsByBookID(f.book.ID, 0, 2)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, int64(3), total)

	// 다른 책에는 리뷰 없음
	reviews, total, err = repo.GetReviewsByBookID(9999, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Zero(t, total)
}

func TestReviewRepository_ReplaceTags(t *testing.T) {
	testDB, repo, f := setupReviewTest(t)
	defer db.CleanupTestDB(testDB)

	review := &model.Review{
		BookID:      f.book.ID,
		AuthorID:    f.user.ID,
		Title:       "리뷰",
		Description: "내용",
		Tags:        []model.Tag{{Name: "성장소설"}},
	}
	require.NoError(t, repo.CreateReview(review))

	newTag := model.Tag{Name: "고전"}
	require.NoError(t, testDB.Create(&newTag).Error)

	err := repo.ReplaceTags(review, []model.Tag{newTag})
	require.NoError(t, err)

	found, err := repo.GetReviewByID(review.ID)
	require.NoError(t, err)
	require.Len(t, found.Tags, 1)
	assert.Equal(t, "고전", found.Tags[0].Name)
}

func TestReviewRepository_DeleteReview(t *testing.T) {
	testDB, repo, f := setupReviewTest(t)
	defer db.CleanupTestDB(testDB)

	review := &model.Review{
		BookID:      f.book.ID,
		AuthorID:    f.user.ID,
		Title:       "리뷰",
		Description: "내용",
		Tags:        []model.Tag{{Name: "성장소설"}},
	}
	require.NoError(t, repo.CreateReview(review))

	rating := &model.Rating{
		BookID:   f.book.ID,
		ReviewID: review.ID,
		Rating:   5,
	}
	require.NoError(t, testDB.Create(rating).Error)

	err := repo.DeleteReview(review.ID)
	require.NoError(t, err)

	// 리뷰 삭제 확인
	_, err = repo.GetReviewByID(review.ID)
	assert.Error(t, err)

	// 평점 행도 함께 삭제됨
	var ratingCount int64
	require.NoError(t, testDB.Model(&model.Rating{}).Where("review_id = ?", review.ID).Count(&ratingCount).Error)
	assert.Zero(t, ratingCount)

	// 태그 자체는 남아있음 (연결만 해제)
	var tagCount int64
	require.NoError(t, testDB.Model(&model.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount)
}

func TestReviewRepository_CountByAuthorID(t *testing.T) {
	testDB, repo, f := setupReviewTest(t)
	defer db.CleanupTestDB(testDB)

	for i := 0; i < 2; i++ {
		review := &model.Review{
			BookID:      f.book.ID,
			AuthorID:    f.user.ID,
			Title:       "리뷰",
			Description: "내용",
		}
		require.NoError(t, repo.CreateReview(review))
	}

	count, err := repo.CountByAuthorID(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
