package review

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("user has already reviewed this entity")
	ErrAlreadyVoted    = errors.New("user has already voted on this review")
	ErrInvalidRating   = errors.New("invalid rating")
	ErrOwnReview       = errors.New("users cannot vote on their own review")
)
