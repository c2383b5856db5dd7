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

func setupCategoryServiceTest(t *testing.T) (*gorm.DB, *CategoryService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	categoryRepo := repository.NewCategoryRepository(testDB)
	return testDB, NewCategoryService(categoryRepo)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	testDB, service := setupCategoryServiceTest(t)

	withBooks, err := service.CreateCategory("소설")
	require.NoError(t, err)
	empty, err := service.CreateCategory("에세이")
	require.NoError(t, err)

	require.NoError(t, testDB.Create(&model.Book{
		Title:      "데미안",
		ISBN:       "9788937460449",
		CategoryID: withBooks.ID,
	}).Error)

	// 책이 소속된 카테고리는 삭제 불가
	err = service.DeleteCategory(withBooks.ID)
	assert.ErrorIs(t, err, ErrCategoryHasBooks)

	// 빈 카테고리는 삭제 가능
	require.NoError(t, service.DeleteCategory(empty.ID))

	// 없는 카테고리
	err = service.DeleteCategory(9999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	_, service := setupCategoryServiceTest(t)

	category, err := service.CreateCategory("소설")
	require.NoError(t, err)

	updated, err := service.UpdateCategory(category.ID, "한국 소설")
	require.NoError(t, err)
	assert.Equal(t, "한국 소설", updated.Name)

	_, err = service.UpdateCategory(9999, "없는 카테고리")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
