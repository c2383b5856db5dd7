package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError 에러를 파싱하여 사용자 친화적인 메시지와 코드로 변환
// 보안상 민감한 정보는 숨기되, 사용자가 문제를 해결할 수 있는 정보 제공
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "서버 오류가 발생했습니다",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM 기본 에러
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    notFoundCode(context),
			Message: getNotFoundMessage(context),
		}
	}

	// 2. PostgreSQL 에러 파싱

	// 2-1. Unique constraint violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// 2-2. Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "연결된 데이터가 있어 처리할 수 없습니다",
		}
	}

	// 2-3. Not null constraint violation (23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "필수 항목이 누락되었습니다",
		}
	}

	// 3. 네트워크/연결 에러 (외부 검색 API 포함)
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "외부 서비스 연결에 실패했습니다. 잠시 후 다시 시도해주세요",
		}
	}

	// 4. 기본 내부 서버 오류
	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

// parseDuplicateKeyError Unique constraint 위반 에러 파싱
func parseDuplicateKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	// ISBN 중복
	if strings.Contains(errLower, "isbn") {
		return ErrorInfo{
			Code:    BookIsbnExists,
			Message: "이미 등록된 ISBN입니다",
		}
	}

	// 이메일 중복
	if strings.Contains(errLower, "email") || strings.Contains(errLower, "idx_users_email") {
		return ErrorInfo{
			Code:    AuthEmailAlreadyExists,
			Message: "이미 사용 중인 이메일입니다",
		}
	}

	// 카테고리 이름 중복
	if strings.Contains(errLower, "categories") {
		return ErrorInfo{
			Code:    CategoryNameTaken,
			Message: "이미 존재하는 카테고리 이름입니다",
		}
	}

	// 태그 이름 중복
	if strings.Contains(errLower, "tags") {
		return ErrorInfo{
			Code:    TagNameTaken,
			Message: "이미 존재하는 태그 이름입니다",
		}
	}

	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "이미 존재하는 데이터입니다",
	}
}

func notFoundCode(context string) string {
	switch context {
	case "book":
		return BookNotFound
	case "category":
		return CategoryNotFound
	case "tag":
		return TagNotFound
	case "review":
		return ReviewNotFound
	case "draft":
		return ReviewDraftNotFound
	case "rating":
		return RatingNotFound
	case "reply":
		return ReplyNotFound
	case "comment":
		return CommentNotFound
	case "user":
		return UserNotFound
	case "badge":
		return BadgeNotFound
	default:
		return ResourceNotFound
	}
}

func getNotFoundMessage(context string) string {
	switch context {
	case "book":
		return "책을 찾을 수 없습니다"
	case "category":
		return "카테고리를 찾을 수 없습니다"
	case "tag":
		return "태그를 찾을 수 없습니다"
	case "review":
		return "리뷰를 찾을 수 없습니다"
	case "draft":
		return "임시 저장된 리뷰를 찾을 수 없습니다"
	case "rating":
		return "평점을 찾을 수 없습니다"
	case "reply":
		return "의견을 찾을 수 없습니다"
	case "comment":
		return "댓글을 찾을 수 없습니다"
	case "user":
		return "사용자를 찾을 수 없습니다"
	case "badge":
		return "배지를 찾을 수 없습니다"
	default:
		return "요청한 데이터를 찾을 수 없습니다"
	}
}

// ParseAndRespond 에러를 파싱하여 응답 반환 (헬퍼 함수)
// controller에서 간편하게 사용할 수 있도록
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}

func getDefaultErrorMessage(context string) string {
	switch context {
	case "search":
		return "책 검색에 실패했습니다. 잠시 후 다시 시도해주세요"
	default:
		return "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	}
}
