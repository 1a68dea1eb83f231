package valueobjects

import "fmt"

type Status string

const (
	StatusDraft           Status = "draft"
	StatusPending         Status = "pending"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusRequiresChanges Status = "requires_changes"
	StatusPublished       Status = "published"
	StatusActive          Status = "active"
	StatusCompleted       Status = "completed"
	StatusCancelled       Status = "cancelled"
	StatusSuspended       Status = "suspended"
)

// Kind identifies an entity family that shares the moderation lifecycle.
type Kind string

const (
	KindExhibition Kind = "exhibition"
	KindCompany    Kind = "company"
)

// Kinds lists every entity family in a stable order.
var Kinds = []Kind{KindExhibition, KindCompany}

var statusTransitions = map[Kind]map[Status][]Status{
	KindExhibition: {
		StatusDraft:           {StatusPending, StatusCancelled},
		StatusPending:         {StatusApproved, StatusRejected, StatusRequiresChanges},
		StatusApproved:        {StatusPublished, StatusCancelled},
		StatusRejected:        {StatusPending},
		StatusRequiresChanges: {StatusPending},
		StatusPublished:       {StatusCompleted, StatusCancelled},
		StatusCompleted:       {},
		StatusCancelled:       {},
	},
	KindCompany: {
		StatusDraft:           {StatusPending},
		StatusPending:         {StatusApproved, StatusRejected, StatusRequiresChanges},
		StatusApproved:        {StatusActive},
		StatusRejected:        {StatusPending},
		StatusRequiresChanges: {StatusPending},
		StatusActive:          {StatusSuspended},
		StatusSuspended:       {},
	},
}

func (s Status) String() string {
	return string(s)
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	_, ok := statusTransitions[k]
	return ok
}

// HasStatus reports whether s belongs to the state set of this family.
func (k Kind) HasStatus(s Status) bool {
	_, ok := statusTransitions[k][s]
	return ok
}

func (k Kind) CanTransition(from, to Status) bool {
	for _, allowed := range statusTransitions[k][from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PublishedStatus is the family's terminal-success state.
func (k Kind) PublishedStatus() Status {
	if k == KindCompany {
		return StatusActive
	}
	return StatusPublished
}

// IsTimeBounded reports whether entities of this family end on a date and
// therefore complete on their own.
func (k Kind) IsTimeBounded() bool {
	return k == KindExhibition
}

// IsTerminal reports whether no transition leaves s.
func (k Kind) IsTerminal(s Status) bool {
	next, ok := statusTransitions[k][s]
	return ok && len(next) == 0
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid entity kind: %s", s)
	}
	return k, nil
}

func NewStatus(kind Kind, s string) (Status, error) {
	st := Status(s)
	if !kind.HasStatus(st) {
		return "", fmt.Errorf("invalid %s status: %s", kind, s)
	}
	return st, nil
}
