package service

import (
	"errors"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"github.com/chaekdam/chaekdam-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrBadgeNotFound = errors.New("badge not found")
	ErrBadgeNotOwned = errors.New("badge not owned by user")
)

// 리뷰 개수에 따라 자동 부여되는 배지
var reviewBadgeThresholds = []struct {
	Count int64
	Name  string
}{
	{Count: 1, Name: "첫 리뷰"},
	{Count: 10, Name: "리뷰 10권"},
	{Count: 50, Name: "리뷰 50권"},
}

type UserService interface {
	GetProfile(userID uint) (*model.User, error)
	UpdateProfile(userID uint, req *model.UpdateUserRequest) (*model.User, error)
	DeleteAccount(userID uint) error
	ChangePrimaryBadge(userID, badgeID uint) (*model.User, error)
	ChangeFavoriteBook(userID, bookID uint) (*model.User, error)
	ListMyBadges(userID uint) ([]model.Badge, error)
	ListBadges() ([]model.Badge, error)
	AwardReviewBadges(userID uint, reviewCount int64) error
}

type userService struct {
	userRepo repository.UserRepository
	bookRepo repository.BookRepository
}

func NewUserService(userRepo repository.UserRepository, bookRepo repository.BookRepository) UserService {
	return &userService{
		userRepo: userRepo,
		bookRepo: bookRepo,
	}
}

// GetProfile 배지와 인생책을 포함한 프로필 조회
func (s *userService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByIDWithProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(userID uint, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Image != nil {
		user.Image = *req.Image
	}
	if req.Password != nil {
		hashed, err := util.HashPassword(*req.Password)
		if err != nil {
			logger.Error("Failed to hash new password", err, map[string]interface{}{
				"user_id": userID,
			})
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("User profile updated", map[string]interface{}{
		"user_id": userID,
	})
	return s.userRepo.FindByIDWithProfile(userID)
}

// DeleteAccount 회원 탈퇴 (소프트 삭제)
func (s *userService) DeleteAccount(userID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return err
	}

	logger.Info("User account deleted", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}

// ChangePrimaryBadge 대표 배지 변경 (획득한 배지만 지정 가능)
func (s *userService) ChangePrimaryBadge(userID, badgeID uint) (*model.User, error) {
	user, err := s.userRepo.FindByIDWithProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.userRepo.FindBadgeByID(badgeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadgeNotFound
		}
		return nil, err
	}

	owned := false
	for _, badge := range user.Badges {
		if badge.ID == badgeID {
			owned = true
			break
		}
	}
	if !owned {
		logger.Warn("Primary badge change rejected: badge not owned", map[string]interface{}{
			"user_id":  userID,
			"badge_id": badgeID,
		})
		return nil, ErrBadgeNotOwned
	}

	user.PrimaryBadgeID = &badgeID
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.userRepo.FindByIDWithProfile(userID)
}

// ChangeFavoriteBook 인생책 변경
func (s *userService) ChangeFavoriteBook(userID, bookID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.bookRepo.FindByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	user.FavoriteBookID = &bookID
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.userRepo.FindByIDWithProfile(userID)
}

// ListMyBadges 내가 획득한 배지 목록
func (s *userService) ListMyBadges(userID uint) ([]model.Badge, error) {
	user, err := s.userRepo.FindByIDWithProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.Badges, nil
}

func (s *userService) ListBadges() ([]model.Badge, error) {
	return s.userRepo.FindAllBadges()
}

// AwardReviewBadges 리뷰 개수 기준 배지 부여
// 배지 시드가 없는 환경에서도 리뷰 작성은 막지 않음
func (s *userService) AwardReviewBadges(userID uint, reviewCount int64) error {
	for _, threshold := range reviewBadgeThresholds {
		if reviewCount != threshold.Count {
			continue
		}

		badge, err := s.userRepo.FindBadgeByName(threshold.Name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Review badge not seeded, skipping award", map[string]interface{}{
					"badge": threshold.Name,
				})
				return nil
			}
			return err
		}

		if err := s.userRepo.AddBadge(userID, badge.ID); err != nil {
			return err
		}

		logger.Info("Badge awarded", map[string]interface{}{
			"user_id": userID,
			"badge":   badge.Name,
		})
	}
	return nil
}
