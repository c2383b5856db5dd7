package repository

import (
	"testing"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCategoryTest(t *testing.T) (*gorm.DB, *CategoryRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewCategoryRepository(testDB)
	return testDB, repo
}

func TestCategoryRepository_FindOrCreateByName(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	// 처음 호출은 생성
	first, err := repo.FindOrCreateByName("소설")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	// 같은 이름으로 다시 호출하면 같은 행 반환
	second, err := repo.FindOrCreateByName("소설")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, testDB.Model(&model.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCategoryRepository_CountBooks(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	category, err := repo.FindOrCreateByName("소설")
	require.NoError(t, err)

	empty, err := repo.FindOrCreateByName("에세이")
	require.NoError(t, err)

	require.NoError(t, testDB.Create(&model.Book{
		Title:      "데미안",
		ISBN:       "9788937460449",
		CategoryID: category.ID,
	}).Error)

	count, err := repo.CountBooks(category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountBooks(empty.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	testDB, repo := setupCategoryTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.CreateCategory(&model.Category{Name: "소설"}))

	err := repo.CreateCategory(&model.Category{Name: "소설"})
	assert.Error(t, err)
}

func TestTagRepository_FindOrCreateByNames(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewTagRepository(testDB)

	tags, err := repo.FindOrCreateByNames([]string{"성장소설", "인생책", "성장소설", ""})
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	// 기존 태그 재사용 확인
	again, err := repo.FindOrCreateByNames([]string{"인생책"})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, tags[1].ID, again[0].ID)
}
