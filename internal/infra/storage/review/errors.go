package review

import "errors"

var (
	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("review.repository: review not found")
)
