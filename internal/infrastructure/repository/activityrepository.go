package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/activity"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/db"
)

// ActivityRepository implements activity.Repository
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity log repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Record(ctx context.Context, e activity.Entry) error {
	var metadata datatypes.JSON
	if len(e.Metadata) > 0 {
		raw, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal activity metadata: %w", err)
		}
		metadata = datatypes.JSON(raw)
	}
	model := &models.ActivityLogModel{
		UserID:      e.UserID,
		Type:        string(e.Type),
		Description: e.Description,
		Metadata:    metadata,
		IPAddress:   e.IPAddress,
		UserAgent:   e.UserAgent,
		CreatedAt:   e.CreatedAt,
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*activity.Entry, error) {
	var modelList []*models.ActivityLogModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	entries := make([]*activity.Entry, 0, len(modelList))
	for _, m := range modelList {
		entry := &activity.Entry{
			ID:          m.ID,
			UserID:      m.UserID,
			Type:        activity.Type(m.Type),
			Description: m.Description,
			IPAddress:   m.IPAddress,
			UserAgent:   m.UserAgent,
			CreatedAt:   m.CreatedAt,
		}
		if len(m.Metadata) > 0 {
			if err := json.Unmarshal(m.Metadata, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal activity metadata: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
