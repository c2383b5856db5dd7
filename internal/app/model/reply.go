package model

import (
	"time"

	"gorm.io/gorm"
)

// Reply 리뷰에 달리는 의견 모델
type Reply struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Reply string `gorm:"type:text;not null" json:"reply"` // 내용

	// 작성자 정보
	AuthorID uint `gorm:"not null;index" json:"author_id"` // 작성자 ID
	Author   User `gorm:"foreignKey:AuthorID" json:"author"`

	// 리뷰 정보
	ReviewID uint   `gorm:"not null;index" json:"review_id"` // 리뷰 ID
	Review   Review `gorm:"foreignKey:ReviewID" json:"review,omitempty"`

	Comments []Comment `gorm:"foreignKey:ReplyID" json:"comments,omitempty"` // 댓글 목록
}

func (Reply) TableName() string {
	return "replies"
}

// Comment 의견에 달리는 댓글 모델
type Comment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Comment string `gorm:"type:text;not null" json:"comment"` // 내용

	AuthorID uint `gorm:"not null;index" json:"author_id"` // 작성자 ID
	Author   User `gorm:"foreignKey:AuthorID" json:"author"`

	ReplyID uint  `gorm:"not null;index" json:"reply_id"` // 의견 ID
	Reply   Reply `gorm:"foreignKey:ReplyID" json:"reply,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

// CreateReplyRequest 의견 작성 요청
type CreateReplyRequest struct {
	Reply    string `json:"reply" binding:"required,min=1"`
	ReviewID uint   `json:"review_id" binding:"required"`
}

// UpdateReplyRequest 의견 수정 요청
type UpdateReplyRequest struct {
	Reply string `json:"reply" binding:"required,min=1"`
}

// CreateCommentRequest 댓글 작성 요청
type CreateCommentRequest struct {
	Comment string `json:"comment" binding:"required,min=1"`
	ReplyID uint   `json:"reply_id" binding:"required"`
}

// UpdateCommentRequest 댓글 수정 요청
type UpdateCommentRequest struct {
	Comment string `json:"comment" binding:"required,min=1"`
}
