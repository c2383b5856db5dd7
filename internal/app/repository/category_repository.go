package repository

import (
	"github.com/chaekdam/chaekdam-backend/internal/app/model"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// CreateCategory 카테고리 생성
func (r *CategoryRepository) CreateCategory(category *model.Category) error {
	return r.db.Create(category).Error
}

// GetCategoryByID ID로 카테고리 조회
func (r *CategoryRepository) GetCategoryByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoryByName 이름으로 카테고리 조회
func (r *CategoryRepository) GetCategoryByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindOrCreateByName 이름으로 카테고리를 찾고 없으면 생성
// name 컬럼의 유니크 인덱스가 동시 생성 경합을 막아줌
func (r *CategoryRepository) FindOrCreateByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("name = ?", name).
		FirstOrCreate(&category, model.Category{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAllCategories 전체 카테고리 목록 조회
func (r *CategoryRepository) GetAllCategories() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateCategory 카테고리 수정
func (r *CategoryRepository) UpdateCategory(category *model.Category) error {
	return r.db.Save(category).Error
}

// DeleteCategory 카테고리 삭제
func (r *CategoryRepository) DeleteCategory(id uint) error {
	return r.db.Delete(&model.Category{}, id).Error
}

// CountBooks 카테고리에 소속된 책 개수 조회
func (r *CategoryRepository) CountBooks(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Book{}).Where("category_id = ?", categoryID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
