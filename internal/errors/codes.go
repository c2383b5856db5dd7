package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 이메일/비밀번호
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // 토큰 만료
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // 잘못된 토큰
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"       // 토큰 폐기됨
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // 이메일 중복

	// ==================== 인가/권한 (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // 접근 권한 없음
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // 권한 정보 없음
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"     // 관리자만 가능
	AuthzOwnerOnly    = "AUTHZ_OWNER_ONLY"     // 작성자만 가능

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 잘못된 입력
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // 잘못된 ID
	ValidationRequired     = "VALIDATION_REQUIRED"      // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재

	// ==================== 책 (BOOK_) ====================
	BookNotFound    = "BOOK_NOT_FOUND"    // 책 없음
	BookIsbnExists  = "BOOK_ISBN_EXISTS"  // ISBN 중복
	BookQueryNeeded = "BOOK_QUERY_NEEDED" // 검색어 누락

	// ==================== 카테고리/태그 (CATEGORY_/TAG_) ====================
	CategoryNotFound  = "CATEGORY_NOT_FOUND"  // 카테고리 없음
	CategoryHasBooks  = "CATEGORY_HAS_BOOKS"  // 책이 남아 있어 삭제 불가
	CategoryNameTaken = "CATEGORY_NAME_TAKEN" // 이름 중복
	TagNotFound       = "TAG_NOT_FOUND"       // 태그 없음
	TagNameTaken      = "TAG_NAME_TAKEN"      // 이름 중복

	// ==================== 리뷰/평점 (REVIEW_/RATING_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"       // 리뷰 없음
	ReviewDraftNotFound = "REVIEW_DRAFT_NOT_FOUND" // 임시 리뷰 없음
	RatingNotFound      = "RATING_NOT_FOUND"       // 평점 없음
	RatingInvalidRange  = "RATING_INVALID_RANGE"   // 평점 범위 초과 (1-5)

	// ==================== 의견/댓글 (REPLY_/COMMENT_) ====================
	ReplyNotFound   = "REPLY_NOT_FOUND"   // 의견 없음
	CommentNotFound = "COMMENT_NOT_FOUND" // 댓글 없음

	// ==================== 사용자 (USER_) ====================
	UserNotFound  = "USER_NOT_FOUND"  // 사용자 없음
	BadgeNotFound = "BADGE_NOT_FOUND" // 배지 없음

	// ==================== 업로드 (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // 잘못된 파일 형식
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"    // 파일 너무 큼
	UploadFailed          = "UPLOAD_FAILED"            // 업로드 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"   // 외부 API 오류
)
