package models

import (
	"time"

	"github.com/expohub/expohub/internal/shared/constants"
)

// ReviewModel stores a rating of an exhibition or company.
type ReviewModel struct {
	ID              uint   `gorm:"primarykey"`
	EntityKind      string `gorm:"not null;size:20;uniqueIndex:idx_review_user_entity;index:idx_review_entity"`
	EntityID        uint   `gorm:"not null;uniqueIndex:idx_review_user_entity;index:idx_review_entity"`
	UserID          uint   `gorm:"not null;uniqueIndex:idx_review_user_entity"`
	Rating          int    `gorm:"not null"`
	QualityRating   *int
	ServiceRating   *int
	PriceRating     *int
	Title           string `gorm:"size:200"`
	Text            string `gorm:"type:text"`
	Pros            string `gorm:"type:text"`
	Cons            string `gorm:"type:text"`
	IsApproved      bool   `gorm:"not null;default:false"`
	IsPublished     bool   `gorm:"not null;default:false"`
	ModeratedBy     *uint
	ModeratedAt     *time.Time
	HelpfulCount    int64 `gorm:"not null;default:0"`
	NotHelpfulCount int64 `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User      *UserModel `gorm:"constraint:OnDelete:CASCADE"`
	Moderator *UserModel `gorm:"foreignKey:ModeratedBy;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for GORM
func (ReviewModel) TableName() string {
	return constants.TableReviews
}

// ReviewVoteModel is one helpfulness vote.
type ReviewVoteModel struct {
	ID        uint `gorm:"primarykey"`
	ReviewID  uint `gorm:"not null;uniqueIndex:idx_review_vote_user"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_review_vote_user"`
	IsHelpful bool `gorm:"not null"`
	CreatedAt time.Time

	Review *ReviewModel `gorm:"constraint:OnDelete:CASCADE"`
	User   *UserModel   `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ReviewVoteModel) TableName() string {
	return constants.TableReviewVotes
}
