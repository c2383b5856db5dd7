package model

import (
	"time"

	"gorm.io/gorm"
)

// Book 책 모델
// 외부 검색 API에서 가져오거나 관리자가 직접 등록함
type Book struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 책 기본 정보
	Title       string    `gorm:"not null" json:"title"`                // 제목
	Link        string    `json:"link"`                                 // 상세 페이지 링크
	Image       string    `json:"image"`                                // 표지 이미지 URL
	Author      string    `json:"author"`                               // 저자
	Publisher   string    `json:"publisher"`                            // 출판사
	PubDate     time.Time `json:"pub_date"`                             // 출간일
	ISBN        string    `gorm:"uniqueIndex;not null" json:"isbn"`     // ISBN (13자리, 전역 유일)
	Description string    `gorm:"type:text" json:"description"`         // 책 소개

	// 카테고리
	CategoryID uint     `gorm:"not null;index" json:"category_id"`              // 카테고리 ID
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 카테고리 정보

	// 관계
	Reviews []Review `gorm:"foreignKey:BookID" json:"-"` // 리뷰 목록
}

func (Book) TableName() string {
	return "books"
}

// UpdateBookRequest 책 수정 요청 (관리자, 부분 수정)
type UpdateBookRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1"`
	Link        *string `json:"link,omitempty"`
	Image       *string `json:"image,omitempty"`
	Author      *string `json:"author,omitempty"`
	Publisher   *string `json:"publisher,omitempty"`
	PubDate     *string `json:"pub_date,omitempty"` // "2006-01-02"
	Description *string `json:"description,omitempty"`
	CategoryID  *uint   `json:"category_id,omitempty"`
}
