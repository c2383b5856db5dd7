package repository

import (
	"testing"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserTest(t *testing.T) (*gorm.DB, UserRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewUserRepository(testDB)
	return testDB, repo
}

func TestUserRepository_Create(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	tests := []struct {
		name    string
		user    *model.User
		wantErr bool
	}{
		{
			name: "Valid user",
			user: &model.User{
				Email:        "reader@example.com",
				Username:     "책벌레",
				PasswordHash: "hashedpassword",
				Role:         model.RoleUser,
			},
			wantErr: false,
		},
		{
			name: "Duplicate email",
			user: &model.User{
				Email:        "reader@example.com",
				Username:     "다른닉네임",
				PasswordHash: "hashedpassword",
				Role:         model.RoleUser,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.user)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
			}
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Email:        "reader@example.com",
		Username:     "책벌레",
		PasswordHash: "hashedpassword",
		Role:         model.RoleUser,
	}
	err := repo.Create(user)
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      uint
		wantErr bool
	}{
		{
			name:    "Existing user",
			id:      user.ID,
			wantErr: false,
		},
		{
			name:    "Non-existing user",
			id:      9999,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByID(tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				require.NotNil(t, found)
				assert.Equal(t, user.Email, found.Email)
				assert.Equal(t, user.Username, found.Username)
			}
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Email:        "reader@example.com",
		Username:     "책벌레",
		PasswordHash: "hashedpassword",
		Role:         model.RoleUser,
	}
	err := repo.Create(user)
	require.NoError(t, err)

	found, err := repo.FindByEmail("reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	notFound, err := repo.FindByEmail("nobody@example.com")
	assert.Error(t, err)
	assert.Nil(t, notFound)
}

func TestUserRepository_AddBadge(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Email:        "reader@example.com",
		Username:     "책벌레",
		PasswordHash: "hashedpassword",
		Role:         model.RoleUser,
	}
	require.NoError(t, repo.Create(user))

	badge := &model.Badge{Name: "첫 리뷰", Image: "/badges/first-review.png"}
	require.NoError(t, testDB.Create(badge).Error)

	err := repo.AddBadge(user.ID, badge.ID)
	require.NoError(t, err)

	found, err := repo.FindByIDWithProfile(user.ID)
	require.NoError(t, err)
	require.Len(t, found.Badges, 1)
	assert.Equal(t, "첫 리뷰", found.Badges[0].Name)
}

func TestUserRepository_FindByIDWithProfile(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	// 인생책으로 지정할 책 준비
	category := &model.Category{Name: model.DefaultCategoryName}
	require.NoError(t, testDB.Create(category).Error)
	book := &model.Book{
		Title:      "어린 왕자",
		ISBN:       "9788932917245",
		CategoryID: category.ID,
	}
	require.NoError(t, testDB.Create(book).Error)

	user := &model.User{
		Email:          "reader@example.com",
		Username:       "책벌레",
		PasswordHash:   "hashedpassword",
		Role:           model.RoleUser,
		FavoriteBookID: &book.ID,
	}
	require.NoError(t, repo.Create(user))

	found, err := repo.FindByIDWithProfile(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.FavoriteBook)
	assert.Equal(t, "어린 왕자", found.FavoriteBook.Title)
}
