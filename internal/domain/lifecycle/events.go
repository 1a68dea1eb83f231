package lifecycle

import (
	"time"

	vo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
)

type EventType string

const (
	EventCreated   EventType = "entity.created"
	EventSubmitted EventType = "entity.submitted"
	EventModerated EventType = "entity.moderated"
	EventPublished EventType = "entity.published"
	EventCompleted EventType = "entity.completed"
	EventCancelled EventType = "entity.cancelled"
	EventSuspended EventType = "entity.suspended"
)

// Event is delivered to post-commit hooks after a lifecycle command.
type Event struct {
	Type       EventType
	Ref        EntityRef
	OwnerID    uint
	Title      string
	ActorID    uint
	From       vo.Status
	To         vo.Status
	Decision   vo.Decision
	Notes      string
	OccurredAt time.Time
}

// EventTypeFor maps a recorded transition to the event it produces.
func EventTypeFor(t Transition) EventType {
	switch {
	case t.Decision != "":
		return EventModerated
	case t.To == vo.StatusPending:
		return EventSubmitted
	case t.To == vo.StatusPublished || t.To == vo.StatusActive:
		return EventPublished
	case t.To == vo.StatusCompleted:
		return EventCompleted
	case t.To == vo.StatusCancelled:
		return EventCancelled
	case t.To == vo.StatusSuspended:
		return EventSuspended
	default:
		return EventType("entity." + string(t.To))
	}
}

// EventsFrom converts transitions into events about one entity.
func EventsFrom(ref EntityRef, ownerID uint, title string, transitions []Transition) []Event {
	events := make([]Event, 0, len(transitions))
	for _, t := range transitions {
		events = append(events, Event{
			Type:       EventTypeFor(t),
			Ref:        ref,
			OwnerID:    ownerID,
			Title:      title,
			ActorID:    t.ActorID,
			From:       t.From,
			To:         t.To,
			Decision:   t.Decision,
			Notes:      t.Notes,
			OccurredAt: t.Timestamp,
		})
	}
	return events
}

// Subject is implemented by every entity that carries a lifecycle.
type Subject interface {
	Ref() EntityRef
	OwnerID() uint
	DisplayName() string
	Lifecycle() *State
	Version() int
	// Touch bumps updatedAt and the optimistic lock version after a
	// lifecycle change.
	Touch(now time.Time)
}
