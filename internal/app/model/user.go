package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string // 사용자 권한 타입

const (
	RoleUser  UserRole = "user"  // 일반 사용자 권한
	RoleAdmin UserRole = "admin" // 관리자 권한
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                        // 사용자 ID
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`           // 이메일
	Username     string         `gorm:"not null" json:"username"`                    // 닉네임
	PasswordHash string         `gorm:"not null" json:"-"`                           // 비밀번호 해시
	Image        string         `json:"image"`                                       // 프로필 이미지 URL
	Role         UserRole       `gorm:"type:varchar(20);default:'user'" json:"role"` // 권한
	PrimaryBadgeID *uint        `gorm:"index" json:"primary_badge_id,omitempty"`     // 대표 배지 ID
	FavoriteBookID *uint        `gorm:"index" json:"favorite_book_id,omitempty"`     // 인생책 ID
	CreatedAt    time.Time      `json:"created_at"`                                  // 생성 시각
	UpdatedAt    time.Time      `json:"updated_at"`                                  // 수정 시각
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                              // 삭제 시각(소프트 삭제)

	PrimaryBadge *Badge  `gorm:"foreignKey:PrimaryBadgeID" json:"primary_badge,omitempty"` // 대표 배지
	FavoriteBook *Book   `gorm:"foreignKey:FavoriteBookID" json:"favorite_book,omitempty"` // 인생책
	Badges       []Badge `gorm:"many2many:user_badges" json:"badges,omitempty"`            // 획득 배지 목록
}

func (User) TableName() string {
	return "users"
}

// Badge 활동 배지 모델
type Badge struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"` // 배지 이름 (예: "첫 리뷰")
	Image     string         `json:"image"`                                             // 배지 이미지 URL
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Badge) TableName() string {
	return "badges"
}

// UpdateUserRequest 내 정보 수정 요청
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=1"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
	Image    *string `json:"image,omitempty"`
}

// ChangePrimaryBadgeRequest 대표 배지 변경 요청
type ChangePrimaryBadgeRequest struct {
	PrimaryBadgeID uint `json:"primary_badge_id" binding:"required"`
}

// ChangeFavoriteBookRequest 인생책 변경 요청
type ChangeFavoriteBookRequest struct {
	FavoriteBookID uint `json:"favorite_book_id" binding:"required"`
}
