package model

import (
	"time"

	"gorm.io/gorm"
)

// DefaultCategoryName 분류 정보가 없는 책이 소속되는 기본 카테고리
const DefaultCategoryName = "기타"

// Category 책 카테고리 모델
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"` // 카테고리 이름 (예: "소설", "기타")
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Books []Book `gorm:"foreignKey:CategoryID" json:"books,omitempty"` // 소속 책 목록
}

func (Category) TableName() string {
	return "categories"
}

// CreateCategoryRequest 카테고리 생성 요청
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// UpdateCategoryRequest 카테고리 수정 요청
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}
