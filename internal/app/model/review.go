package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Review 책 리뷰 모델
// 평점은 별도의 Rating 행으로 저장됨
type Review struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 리뷰 기본 정보
	BookID      uint   `gorm:"not null;index" json:"book_id"`            // 책 ID
	Book        Book   `gorm:"foreignKey:BookID" json:"book,omitempty"`  // 책 정보
	AuthorID    uint   `gorm:"not null;index" json:"author_id"`          // 작성자 ID
	Author      User   `gorm:"foreignKey:AuthorID" json:"author"`        // 작성자 정보
	Title       string `gorm:"not null" json:"title"`                    // 리뷰 제목
	Description string `gorm:"type:text;not null" json:"description"`    // 리뷰 내용

	// 이미지
	ImageURLs pq.StringArray `gorm:"type:text[]" json:"image_urls,omitempty"` // 리뷰 이미지 URL 배열

	// 관계
	Tags   []Tag   `gorm:"many2many:review_tags" json:"tags"`              // 태그 목록
	Rating *Rating `gorm:"foreignKey:ReviewID" json:"rating,omitempty"`    // 평점
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewDraft 임시 저장 리뷰 모델
// 발행 전 상태라 평점을 별도 행이 아닌 자체 컬럼으로 가짐
type ReviewDraft struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookID      uint   `gorm:"not null;index" json:"book_id"`
	Book        Book   `gorm:"foreignKey:BookID" json:"book,omitempty"`
	AuthorID    uint   `gorm:"not null;index" json:"author_id"`
	Author      User   `gorm:"foreignKey:AuthorID" json:"author"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Rating      int    `gorm:"not null" json:"rating"` // 평점 (1-5)

	Tags []Tag `gorm:"many2many:review_draft_tags" json:"tags"` // 태그 목록
}

func (ReviewDraft) TableName() string {
	return "review_drafts"
}

// Rating 평점 모델
// 리뷰당 하나씩 생성되며 리뷰 삭제 시 함께 삭제됨
type Rating struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BookID   uint `gorm:"not null;index" json:"book_id"`   // 책 ID
	ReviewID uint `gorm:"not null;index" json:"review_id"` // 리뷰 ID
	Rating   int  `gorm:"not null" json:"rating"`          // 평점 (1-5)
}

func (Rating) TableName() string {
	return "ratings"
}

// CreateReviewRequest 리뷰 작성 요청
type CreateReviewRequest struct {
	BookID      uint     `json:"book_id" binding:"required"`
	Title       string   `json:"title" binding:"required,min=1"`
	Description string   `json:"description" binding:"required,min=1"`
	Rating      int      `json:"rating" binding:"required,min=1,max=5"`
	Tags        []string `json:"tags"`
	ImageURLs   []string `json:"image_urls"`
}

// UpdateReviewRequest 리뷰 수정 요청
// 태그를 보내면 기존 태그 연결을 전부 교체함
type UpdateReviewRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,min=1"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1"`
	Rating      *int     `json:"rating,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

// CreateDraftRequest 리뷰 임시 저장 요청
type CreateDraftRequest struct {
	BookID      uint     `json:"book_id" binding:"required"`
	Title       string   `json:"title" binding:"required,min=1"`
	Description string   `json:"description" binding:"required,min=1"`
	Rating      int      `json:"rating" binding:"required,min=1,max=5"`
	Tags        []string `json:"tags"`
}

// UpdateDraftRequest 임시 저장 리뷰 수정 요청
type UpdateDraftRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,min=1"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1"`
	Rating      *int     `json:"rating,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// CreateRatingRequest 평점 생성 요청
type CreateRatingRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	ReviewID uint `json:"review_id" binding:"required"`
	Rating   int  `json:"rating" binding:"required,min=1,max=5"`
}

// UpdateRatingRequest 평점 수정 요청
type UpdateRatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}
