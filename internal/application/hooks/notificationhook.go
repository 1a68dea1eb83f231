package hooks

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/domain/user"
)

var notifiedEvents = map[lifecycle.EventType]bool{
	lifecycle.EventModerated: true,
	lifecycle.EventSuspended: true,
	lifecycle.EventCompleted: true,
}

// NotificationHook emails the owner when someone else changed the status of
// their listing.
type NotificationHook struct {
	users  user.Repository
	emails common.EmailService
}

func NewNotificationHook(users user.Repository, emails common.EmailService) *NotificationHook {
	return &NotificationHook{users: users, emails: emails}
}

func (h *NotificationHook) Name() string { return "notification" }

func (h *NotificationHook) Handle(ctx context.Context, e lifecycle.Event) error {
	if !notifiedEvents[e.Type] || e.OwnerID == 0 || e.ActorID == e.OwnerID {
		return nil
	}
	owner, err := h.users.GetByID(ctx, e.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to load owner %d: %w", e.OwnerID, err)
	}
	if !owner.IsActive() {
		return nil
	}
	return h.emails.SendLifecycleNotice(owner.Email().String(), common.LifecycleNotice{
		RecipientName: owner.FullName(),
		Kind:          e.Ref.Kind().String(),
		Title:         e.Title,
		Event:         string(e.Type),
		Status:        e.To.String(),
		Notes:         e.Notes,
	})
}

func (h *NotificationHook) Warning(err error) string {
	return fmt.Sprintf("notification email was not sent: %v", err)
}
