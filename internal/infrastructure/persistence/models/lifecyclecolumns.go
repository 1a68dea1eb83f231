package models

import "time"

// LifecycleColumns are the moderation columns shared by every moderated table.
type LifecycleColumns struct {
	Status          string `gorm:"not null;size:20;default:draft;index"`
	PublishedAt     *time.Time
	ModeratedBy     *uint `gorm:"index"`
	ModeratedAt     *time.Time
	ModeratorNotes  string `gorm:"type:text"`
	RejectionReason string `gorm:"type:text"`
}

// StatsColumns are the denormalized counters shared by every moderated table.
type StatsColumns struct {
	ViewsCount     int64   `gorm:"not null;default:0"`
	FavoritesCount int64   `gorm:"not null;default:0"`
	Rating         float64 `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewsCount   int64   `gorm:"not null;default:0"`
}
