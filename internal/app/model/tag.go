package model

import (
	"time"

	"gorm.io/gorm"
)

// Tag represents a free-form tag attached to reviews
// 리뷰에 붙는 태그. 이름이 같으면 같은 태그를 공유함
type Tag struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"` // 태그 이름 (예: "인생책")
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tag) TableName() string {
	return "tags"
}

// CreateTagRequest 태그 생성 요청
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// UpdateTagRequest 태그 수정 요청
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}
