package lifecycle

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
)

// Transition is one recorded status change, pulled by the use case after a
// successful command and turned into an Event.
type Transition struct {
	From      vo.Status
	To        vo.Status
	ActorID   uint
	Decision  vo.Decision
	Notes     string
	Timestamp time.Time
}

// State is the moderation lifecycle shared by every entity family. Entities
// embed it and expose it through Lifecycle().
type State struct {
	kind            vo.Kind
	status          vo.Status
	publishedAt     *time.Time
	moderatedBy     *uint
	moderatedAt     *time.Time
	moderatorNotes  string
	rejectionReason string

	transitions []Transition
}

// NewState starts a lifecycle in draft.
func NewState(kind vo.Kind) State {
	return State{kind: kind, status: vo.StatusDraft}
}

// ReconstructState rebuilds a lifecycle from persistence.
func ReconstructState(
	kind vo.Kind,
	status vo.Status,
	publishedAt *time.Time,
	moderatedBy *uint,
	moderatedAt *time.Time,
	moderatorNotes string,
	rejectionReason string,
) (State, error) {
	if !kind.HasStatus(status) {
		return State{}, fmt.Errorf("invalid %s status: %s", kind, status)
	}
	return State{
		kind:            kind,
		status:          status,
		publishedAt:     publishedAt,
		moderatedBy:     moderatedBy,
		moderatedAt:     moderatedAt,
		moderatorNotes:  moderatorNotes,
		rejectionReason: rejectionReason,
	}, nil
}

func (s *State) Kind() vo.Kind            { return s.kind }
func (s *State) Status() vo.Status        { return s.status }
func (s *State) PublishedAt() *time.Time  { return s.publishedAt }
func (s *State) ModeratedBy() *uint       { return s.moderatedBy }
func (s *State) ModeratedAt() *time.Time  { return s.moderatedAt }
func (s *State) ModeratorNotes() string   { return s.moderatorNotes }
func (s *State) RejectionReason() string  { return s.rejectionReason }
func (s *State) IsPublished() bool        { return s.status == s.kind.PublishedStatus() }
func (s *State) IsTerminal() bool         { return s.kind.IsTerminal(s.status) }

// EffectiveStatus is the status shown to readers. A published time-bounded
// entity whose end has passed reads as completed; nothing is persisted.
func (s *State) EffectiveStatus(now time.Time, endsAt time.Time) vo.Status {
	if s.kind.IsTimeBounded() && s.status == vo.StatusPublished && !endsAt.IsZero() && now.After(endsAt) {
		return vo.StatusCompleted
	}
	return s.status
}

// PullTransitions returns and clears the transitions recorded since the last call.
func (s *State) PullTransitions() []Transition {
	out := s.transitions
	s.transitions = nil
	return out
}

func (s *State) moveTo(to vo.Status, t Transition) error {
	if !s.kind.CanTransition(s.status, to) {
		return &TransitionError{Kind: s.kind, From: s.status, To: to}
	}
	t.From = s.status
	t.To = to
	s.status = to
	s.transitions = append(s.transitions, t)
	return nil
}

// SubmitForReview moves a draft, rejected or requires_changes entity to pending.
func (s *State) SubmitForReview(actorID uint, now time.Time) error {
	switch s.status {
	case vo.StatusDraft, vo.StatusRequiresChanges, vo.StatusRejected:
	default:
		return &TransitionError{Kind: s.kind, From: s.status, To: vo.StatusPending}
	}
	return s.moveTo(vo.StatusPending, Transition{ActorID: actorID, Timestamp: now})
}

// Moderate applies a moderator decision to a pending entity. Rejections need
// a reason; notes are stored for every decision.
func (s *State) Moderate(decision vo.Decision, moderator user.Principal, notes, reason string, now time.Time) error {
	if !user.HasCapability(moderator, user.CapabilityModerate) {
		return ErrUnauthorized
	}
	if !decision.IsValid() {
		return fmt.Errorf("invalid moderation decision: %s", decision)
	}
	if s.status != vo.StatusPending {
		return &TransitionError{Kind: s.kind, From: s.status, To: decision.TargetStatus()}
	}
	reason = strings.TrimSpace(reason)
	if decision == vo.DecisionReject && reason == "" {
		return ErrRejectionReasonRequired
	}

	if err := s.moveTo(decision.TargetStatus(), Transition{
		ActorID:   moderator.UserID,
		Decision:  decision,
		Notes:     notes,
		Timestamp: now,
	}); err != nil {
		return err
	}

	moderatorID := moderator.UserID
	s.moderatedBy = &moderatorID
	s.moderatedAt = &now
	s.moderatorNotes = strings.TrimSpace(notes)
	if decision == vo.DecisionReject {
		s.rejectionReason = reason
	} else {
		s.rejectionReason = ""
	}
	return nil
}

// Publish moves an approved entity to its published state. Calling it on an
// already published entity is a no-op. publishedAt is written only once.
func (s *State) Publish(actorID uint, now time.Time) error {
	if s.IsPublished() {
		return nil
	}
	if s.status != vo.StatusApproved {
		return &TransitionError{Kind: s.kind, From: s.status, To: s.kind.PublishedStatus()}
	}
	if err := s.moveTo(s.kind.PublishedStatus(), Transition{ActorID: actorID, Timestamp: now}); err != nil {
		return err
	}
	if s.publishedAt == nil {
		s.publishedAt = &now
	}
	return nil
}

// Complete persists the end of a published time-bounded entity.
func (s *State) Complete(now time.Time) error {
	return s.moveTo(vo.StatusCompleted, Transition{Timestamp: now})
}

// Cancel withdraws an entity.
func (s *State) Cancel(actorID uint, reason string, now time.Time) error {
	return s.moveTo(vo.StatusCancelled, Transition{ActorID: actorID, Notes: reason, Timestamp: now})
}

// Suspend takes an active entity down. Requires the moderation capability.
func (s *State) Suspend(moderator user.Principal, reason string, now time.Time) error {
	if !user.HasCapability(moderator, user.CapabilityModerate) {
		return ErrUnauthorized
	}
	if err := s.moveTo(vo.StatusSuspended, Transition{ActorID: moderator.UserID, Notes: reason, Timestamp: now}); err != nil {
		return err
	}
	moderatorID := moderator.UserID
	s.moderatedBy = &moderatorID
	s.moderatedAt = &now
	s.moderatorNotes = strings.TrimSpace(reason)
	return nil
}
