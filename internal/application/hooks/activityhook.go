package hooks

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/domain/activity"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
)

// ActivityHook appends one activity entry per lifecycle event.
type ActivityHook struct {
	sink activity.Sink
}

func NewActivityHook(sink activity.Sink) *ActivityHook {
	return &ActivityHook{sink: sink}
}

func (h *ActivityHook) Name() string { return "activity" }

func (h *ActivityHook) Handle(ctx context.Context, e lifecycle.Event) error {
	entry := activity.Entry{
		Type:        activityType(e),
		Description: describe(e),
		Metadata: map[string]any{
			"event":       string(e.Type),
			"entity_type": e.Ref.Kind().String(),
			"entity_id":   e.Ref.ID(),
			"from":        e.From.String(),
			"to":          e.To.String(),
		},
		CreatedAt: e.OccurredAt,
	}
	if e.ActorID != 0 {
		actorID := e.ActorID
		entry.UserID = &actorID
	}
	if e.Decision != "" {
		entry.Metadata["decision"] = e.Decision.String()
	}
	if e.Notes != "" {
		entry.Metadata["notes"] = e.Notes
	}
	return h.sink.Record(ctx, entry)
}

func activityType(e lifecycle.Event) activity.Type {
	switch e.Type {
	case lifecycle.EventModerated, lifecycle.EventSuspended:
		return activity.TypeModeration
	case lifecycle.EventCreated:
		if e.Ref.Kind() == lvo.KindCompany {
			return activity.TypeCompanyCreate
		}
		return activity.TypeExhibitionCreate
	default:
		return activity.TypeLifecycle
	}
}

func describe(e lifecycle.Event) string {
	switch e.Type {
	case lifecycle.EventCreated:
		return fmt.Sprintf("Created %s %q", e.Ref.Kind(), e.Title)
	case lifecycle.EventModerated:
		return fmt.Sprintf("Moderated %s %q: %s", e.Ref.Kind(), e.Title, e.Decision)
	default:
		return fmt.Sprintf("%s %q moved from %s to %s", e.Ref.Kind(), e.Title, e.From, e.To)
	}
}
