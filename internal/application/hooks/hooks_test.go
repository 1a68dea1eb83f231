package hooks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/activity"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	uvo "github.com/expohub/expohub/internal/domain/user/valueobjects"
	"github.com/expohub/expohub/internal/shared/logger"
)

type recordingSink struct {
	entries []activity.Entry
}

func (s *recordingSink) Record(_ context.Context, e activity.Entry) error {
	s.entries = append(s.entries, e)
	return nil
}

type mockUserRepository struct {
	user.Repository
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.GetByIDFunc(ctx, id)
}

type mockEmailService struct {
	common.EmailService
	notices []common.LifecycleNotice
	err     error
}

func (m *mockEmailService) SendLifecycleNotice(_ string, n common.LifecycleNotice) error {
	if m.err != nil {
		return m.err
	}
	m.notices = append(m.notices, n)
	return nil
}

func newOwner(t *testing.T) *user.User {
	t.Helper()
	email, err := uvo.NewEmail("owner@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "Anna", "Petrova", user.RoleOrganizer, time.Now())
	require.NoError(t, err)
	require.NoError(t, u.SetID(4))
	return u
}

func moderatedEvent() lifecycle.Event {
	return lifecycle.Event{
		Type:       lifecycle.EventModerated,
		Ref:        lifecycle.ExhibitionRef(10),
		OwnerID:    4,
		Title:      "Build Expo",
		ActorID:    1,
		From:       lvo.StatusPending,
		To:         lvo.StatusRejected,
		Decision:   lvo.DecisionReject,
		Notes:      "missing venue",
		OccurredAt: time.Now(),
	}
}

func TestActivityHook_RecordsModeration(t *testing.T) {
	sink := &recordingSink{}
	hook := NewActivityHook(sink)

	require.NoError(t, hook.Handle(context.Background(), moderatedEvent()))

	require.Len(t, sink.entries, 1)
	entry := sink.entries[0]
	assert.Equal(t, activity.TypeModeration, entry.Type)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, uint(1), *entry.UserID)
	assert.Equal(t, "reject", entry.Metadata["decision"])
	assert.Equal(t, "exhibition", entry.Metadata["entity_type"])
}

func TestActivityHook_SystemEventHasNoUser(t *testing.T) {
	sink := &recordingSink{}
	hook := NewActivityHook(sink)
	e := lifecycle.Event{
		Type: lifecycle.EventCompleted,
		Ref:  lifecycle.ExhibitionRef(2),
		From: lvo.StatusPublished,
		To:   lvo.StatusCompleted,
	}

	require.NoError(t, hook.Handle(context.Background(), e))
	assert.Nil(t, sink.entries[0].UserID)
	assert.Equal(t, activity.TypeLifecycle, sink.entries[0].Type)
}

func TestNotificationHook(t *testing.T) {
	owner := newOwner(t)
	users := &mockUserRepository{
		GetByIDFunc: func(context.Context, uint) (*user.User, error) { return owner, nil },
	}

	t.Run("notifies owner", func(t *testing.T) {
		emails := &mockEmailService{}
		hook := NewNotificationHook(users, emails)

		require.NoError(t, hook.Handle(context.Background(), moderatedEvent()))
		require.Len(t, emails.notices, 1)
		assert.Equal(t, "rejected", emails.notices[0].Status)
		assert.Equal(t, "Build Expo", emails.notices[0].Title)
	})

	t.Run("skips self action and quiet events", func(t *testing.T) {
		emails := &mockEmailService{}
		hook := NewNotificationHook(users, emails)

		self := moderatedEvent()
		self.ActorID = 4
		require.NoError(t, hook.Handle(context.Background(), self))

		submitted := moderatedEvent()
		submitted.Type = lifecycle.EventSubmitted
		require.NoError(t, hook.Handle(context.Background(), submitted))

		assert.Empty(t, emails.notices)
	})
}

func TestDispatcher_CollectsWarningsAndContinues(t *testing.T) {
	sink := &recordingSink{}
	owner := newOwner(t)
	users := &mockUserRepository{
		GetByIDFunc: func(context.Context, uint) (*user.User, error) { return owner, nil },
	}
	emails := &mockEmailService{err: errors.New("smtp timeout")}
	d := NewDispatcher(logger.NewNopLogger(), NewNotificationHook(users, emails), NewActivityHook(sink))

	var c Collector
	d.DispatchAfterCommit(context.Background(), []lifecycle.Event{moderatedEvent()}, &c)

	assert.Len(t, sink.entries, 1)
	require.Len(t, c.Warnings, 1)
	assert.Contains(t, c.First(), "smtp timeout")
}
