package service

import "errors"

// ErrNotOwner 리소스 소유자가 아닌 사용자의 변경 시도
var ErrNotOwner = errors.New("not the resource owner")

// assertOwner 작성자 본인인지 확인
// 관리자라도 남의 글은 수정/삭제할 수 없음
func assertOwner(ownerID, actorID uint) error {
	if ownerID != actorID {
		return ErrNotOwner
	}
	return nil
}
