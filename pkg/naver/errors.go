package naver

import "errors"

var (
	// ErrInvalidRequest is returned when the request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrBookNotFound is returned when the API has no result for the query
	ErrBookNotFound = errors.New("book not found")

	// ErrUnauthorized is returned when the API credentials are rejected
	ErrUnauthorized = errors.New("unauthorized: invalid API credentials")
)
