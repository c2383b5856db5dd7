package repository

import (
	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByIDWithProfile(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
	AddBadge(userID, badgeID uint) error
	FindBadgeByID(id uint) (*model.Badge, error)
	FindBadgeByName(name string) (*model.Badge, error)
	FindAllBadges() ([]model.Badge, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"email": user.Email,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	logger.Debug("Finding user by ID in database", map[string]interface{}{
		"user_id": id,
	})

	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		logger.Error("Failed to find user by ID in database", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}

	return &user, nil
}

// FindByIDWithProfile 대표 배지, 인생책, 획득 배지를 함께 조회
func (r *userRepository) FindByIDWithProfile(id uint) (*model.User, error) {
	logger.Debug("Finding user by ID with profile in database", map[string]interface{}{
		"user_id": id,
	})

	var user model.User
	err := r.db.
		Preload("PrimaryBadge").
		Preload("FavoriteBook").
		Preload("FavoriteBook.Category").
		Preload("Badges").
		First(&user, id).Error
	if err != nil {
		logger.Error("Failed to find user by ID with profile in database", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}

	logger.Debug("User with profile found in database", map[string]interface{}{
		"user_id":     user.ID,
		"email":       user.Email,
		"badge_count": len(user.Badges),
	})
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	logger.Debug("Finding user by email in database", map[string]interface{}{
		"email": email,
	})

	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		logger.Error("Failed to find user by email in database", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		logger.Error("Failed to update user in database", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return err
	}
	return nil
}

func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&model.User{}, id).Error
}

// AddBadge 사용자에게 배지 부여 (이미 보유 중이면 무시)
func (r *userRepository) AddBadge(userID, badgeID uint) error {
	user := model.User{ID: userID}
	badge := model.Badge{ID: badgeID}
	return r.db.Model(&user).Association("Badges").Append(&badge)
}

func (r *userRepository) FindBadgeByID(id uint) (*model.Badge, error) {
	var badge model.Badge
	err := r.db.First(&badge, id).Error
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *userRepository) FindBadgeByName(name string) (*model.Badge, error) {
	var badge model.Badge
	err := r.db.Where("name = ?", name).First(&badge).Error
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *userRepository) FindAllBadges() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.db.Order("id ASC").Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}
