package service

import (
	"errors"

	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"github.com/chaekdam/chaekdam-backend/internal/app/repository"
	"github.com/chaekdam/chaekdam-backend/pkg/logger"
	"gorm.io/gorm"
)

// ErrCategoryHasBooks 소속 책이 있는 카테고리 삭제 시도
var ErrCategoryHasBooks = errors.New("category has books")

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListCategories 전체 카테고리 목록 조회
func (s *CategoryService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.GetAllCategories()
}

// GetCategory 카테고리 조회
func (s *CategoryService) GetCategory(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// CreateCategory 카테고리 생성
func (s *CategoryService) CreateCategory(name string) (*model.Category, error) {
	category := &model.Category{Name: name}
	if err := s.categoryRepo.CreateCategory(category); err != nil {
		return nil, err
	}

	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"name":        name,
	})
	return category, nil
}

// UpdateCategory 카테고리 이름 변경
func (s *CategoryService) UpdateCategory(id uint, name string) (*model.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	category.Name = name
	if err := s.categoryRepo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory 카테고리 삭제
// 소속 책이 하나라도 있으면 삭제 불가
func (s *CategoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetCategoryByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	count, err := s.categoryRepo.CountBooks(id)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Warn("Category delete rejected: books exist", map[string]interface{}{
			"category_id": id,
			"book_count":  count,
		})
		return ErrCategoryHasBooks
	}

	return s.categoryRepo.DeleteCategory(id)
}
