package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
)

// Content is the user-authored part of a review. Text fields are expected to
// be sanitized before they reach the domain.
type Content struct {
	Rating  int
	Quality *int
	Service *int
	Price   *int
	Title   string
	Text    string
	Pros    string
	Cons    string
}

func validScore(v int) bool {
	return v >= svo.MinReviewScore && v <= svo.MaxReviewScore
}

func (c Content) validate() error {
	if !validScore(c.Rating) {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidRating, svo.MinReviewScore, svo.MaxReviewScore)
	}
	for name, sub := range map[string]*int{"quality": c.Quality, "service": c.Service, "price": c.Price} {
		if sub != nil && !validScore(*sub) {
			return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidRating, name, svo.MinReviewScore, svo.MaxReviewScore)
		}
	}
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("review text is required")
	}
	if len(c.Title) > 200 {
		return fmt.Errorf("review title exceeds maximum length of 200 characters")
	}
	return nil
}

// Review is a user's rating of an exhibition or company. Only reviews that
// are both approved and published count toward the target's rating.
type Review struct {
	id              uint
	target          lifecycle.EntityRef
	userID          uint
	content         Content
	isApproved      bool
	isPublished     bool
	moderatedBy     *uint
	moderatedAt     *time.Time
	helpfulCount    int64
	notHelpfulCount int64
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReview creates a pending review. With autoPublish the review skips
// moderation and is visible at once.
func NewReview(target lifecycle.EntityRef, author user.Principal, content Content, autoPublish bool, now time.Time) (*Review, error) {
	if target.IsZero() {
		return nil, fmt.Errorf("review target is required")
	}
	if !user.HasCapability(author, user.CapabilityWriteReview) {
		return nil, lifecycle.ErrUnauthorized
	}
	content.Title = strings.TrimSpace(content.Title)
	if err := content.validate(); err != nil {
		return nil, err
	}
	return &Review{
		target:      target,
		userID:      author.UserID,
		content:     content,
		isApproved:  autoPublish,
		isPublished: autoPublish,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructReview rebuilds a Review from persistence.
func ReconstructReview(
	id uint,
	target lifecycle.EntityRef,
	userID uint,
	content Content,
	isApproved, isPublished bool,
	moderatedBy *uint,
	moderatedAt *time.Time,
	helpfulCount, notHelpfulCount int64,
	createdAt, updatedAt time.Time,
) (*Review, error) {
	if isPublished && !isApproved {
		return nil, fmt.Errorf("review %d is published without approval", id)
	}
	return &Review{
		id:              id,
		target:          target,
		userID:          userID,
		content:         content,
		isApproved:      isApproved,
		isPublished:     isPublished,
		moderatedBy:     moderatedBy,
		moderatedAt:     moderatedAt,
		helpfulCount:    helpfulCount,
		notHelpfulCount: notHelpfulCount,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (r *Review) ID() uint                    { return r.id }
func (r *Review) Target() lifecycle.EntityRef { return r.target }
func (r *Review) UserID() uint                { return r.userID }
func (r *Review) Content() Content            { return r.content }
func (r *Review) Rating() int                 { return r.content.Rating }
func (r *Review) IsApproved() bool            { return r.isApproved }
func (r *Review) IsPublished() bool           { return r.isPublished }
func (r *Review) ModeratedBy() *uint          { return r.moderatedBy }
func (r *Review) ModeratedAt() *time.Time     { return r.moderatedAt }
func (r *Review) HelpfulCount() int64         { return r.helpfulCount }
func (r *Review) NotHelpfulCount() int64      { return r.notHelpfulCount }
func (r *Review) CreatedAt() time.Time        { return r.createdAt }
func (r *Review) UpdatedAt() time.Time        { return r.updatedAt }

// SetID sets the review ID (only for persistence layer use)
func (r *Review) SetID(id uint) {
	r.id = id
}

// Counts reports whether the review takes part in the target's rating.
func (r *Review) Counts() bool {
	return r.isApproved && r.isPublished
}

// Approve accepts and publishes the review.
func (r *Review) Approve(moderator user.Principal, now time.Time) error {
	if err := r.markModerated(moderator, now); err != nil {
		return err
	}
	r.isApproved = true
	r.isPublished = true
	return nil
}

// Reject withdraws approval; a rejected review is never published.
func (r *Review) Reject(moderator user.Principal, now time.Time) error {
	if err := r.markModerated(moderator, now); err != nil {
		return err
	}
	r.isApproved = false
	r.isPublished = false
	return nil
}

// Unpublish hides an approved review without revoking its approval.
func (r *Review) Unpublish(moderator user.Principal, now time.Time) error {
	if err := r.markModerated(moderator, now); err != nil {
		return err
	}
	r.isPublished = false
	return nil
}

// CanDelete reports whether p may delete the review.
func (r *Review) CanDelete(p user.Principal) bool {
	return p.UserID != 0 && (p.UserID == r.userID || user.HasCapability(p, user.CapabilityModerate))
}

func (r *Review) markModerated(moderator user.Principal, now time.Time) error {
	if !user.HasCapability(moderator, user.CapabilityModerate) {
		return lifecycle.ErrUnauthorized
	}
	id := moderator.UserID
	r.moderatedBy = &id
	r.moderatedAt = &now
	r.updatedAt = now
	return nil
}
