package repository

import (
	"testing"
	"time"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBookTest(t *testing.T) (*gorm.DB, BookRepository, *model.Category) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	category := &model.Category{Name: model.DefaultCategoryName}
	require.NoError(t, testDB.Create(category).Error)

	repo := NewBookRepository(testDB)
	return testDB, repo, category
}

func TestBookRepository_Create(t *testing.T) {
	testDB, repo, category := setupBookTest(t)
	defer db.CleanupTestDB(testDB)

	tests := []struct {
		name    string
		book    *model.Book
		wantErr bool
	}{
		{
			name: "Valid book",
			book: &model.Book{
				Title:      "데미안",
				Author:     "헤르만 헤세",
				Publisher:  "민음사",
				ISBN:       "9788937460449",
				PubDate:    time.Date(2000, 12, 20, 0, 0, 0, 0, time.UTC),
				CategoryID: category.ID,
			},
			wantErr: false,
		},
		{
			name: "Duplicate ISBN",
			book: &model.Book{
				Title:      "데미안 (다른 판)",
				ISBN:       "9788937460449",
				CategoryID: category.ID,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.book)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.book.ID)
			}
		})
	}
}

func TestBookRepository_FindByISBN(t *testing.T) {
	testDB, repo, category := setupBookTest(t)
	defer db.CleanupTestDB(testDB)

	book := &model.Book{
		Title:      "데미안",
		ISBN:       "9788937460449",
		CategoryID: category.ID,
	}
	require.NoError(t, repo.Create(book))

	found, err := repo.FindByISBN("9788937460449")
	require.NoError(t, err)
	assert.Equal(t, book.ID, found.ID)
	assert.Equal(t, model.DefaultCategoryName, found.Category.Name)

	notFound, err := repo.FindByISBN("0000000000000")
	assert.Error(t, err)
	assert.Nil(t, notFound)
}

func TestBookRepository_List(t *testing.T) {
	testDB, repo, category := setupBookTest(t)
	defer db.CleanupTestDB(testDB)

	novel := &model.Category{Name: "소설"}
	require.NoError(t, testDB.Create(novel).Error)

	books := []*model.Book{
		{Title: "데미안", Author: "헤르만 헤세", ISBN: "9788937460449", CategoryID: novel.ID},
		{Title: "수레바퀴 아래서", Author: "헤르만 헤세", ISBN: "9788937460821", CategoryID: novel.ID},
		{Title: "코스모스", Author: "칼 세이건", ISBN: "9788983711892", CategoryID: category.ID},
	}
	for _, b := range books {
		require.NoError(t, repo.Create(b))
	}

	tests := []struct {
		name       string
		categoryID uint
		keyword    string
		wantCount  int
		wantTotal  int64
	}{
		{
			name:      "All books",
			wantCount: 3,
			wantTotal: 3,
		},
		{
			name:       "Filter by category",
			categoryID: novel.ID,
			wantCount:  2,
			wantTotal:  2,
		},
		{
			name:      "Filter by author keyword",
			keyword:   "헤세",
			wantCount: 2,
			wantTotal: 2,
		},
		{
			name:      "No match",
			keyword:   "없는책",
			wantCount: 0,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, total, err := repo.List(0, 20, tt.categoryID, tt.keyword)
			require.NoError(t, err)
			assert.Len(t, found, tt.wantCount)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestBookRepository_ListAllISBNs(t *testing.T) {
	testDB, repo, category := setupBookTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(&model.Book{Title: "데미안", ISBN: "9788937460449", CategoryID: category.ID}))
	require.NoError(t, repo.Create(&model.Book{Title: "코스모스", ISBN: "9788983711892", CategoryID: category.ID}))

	isbns, err := repo.ListAllISBNs()
	require.NoError(t, err)
	assert.Equal(t, []string{"9788937460449", "9788983711892"}, isbns)
}
