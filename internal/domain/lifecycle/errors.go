package lifecycle

import (
	"errors"
	"fmt"

	vo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
)

var (
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrUnauthorized            = errors.New("actor lacks the required capability")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrUnknownKind             = errors.New("unknown entity kind")
)

// TransitionError describes a refused transition. It matches
// ErrInvalidTransition with errors.Is.
type TransitionError struct {
	Kind vo.Kind
	From vo.Status
	To   vo.Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %s to %s", e.Kind, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
