// Package hooks delivers lifecycle events to post-commit side effects.
package hooks

import (
	"context"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/shared/db"
	"github.com/expohub/expohub/internal/shared/logger"
)

// Hook reacts to a committed lifecycle event.
type Hook interface {
	Name() string
	Handle(ctx context.Context, e lifecycle.Event) error
}

// WarningHook marks hooks whose failures are reported back to the caller.
type WarningHook interface {
	Hook
	Warning(err error) string
}

// Dispatcher runs every registered hook in order. A failing hook never stops
// the others.
type Dispatcher struct {
	hooks  []Hook
	logger logger.Interface
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(logger logger.Interface, hooks ...Hook) *Dispatcher {
	return &Dispatcher{hooks: hooks, logger: logger}
}

// Dispatch delivers events now and returns the warnings raised by hooks.
func (d *Dispatcher) Dispatch(ctx context.Context, events []lifecycle.Event) []string {
	if d == nil {
		return nil
	}
	var warnings []string
	for _, e := range events {
		for _, h := range d.hooks {
			err := h.Handle(ctx, e)
			if err == nil {
				continue
			}
			d.logger.Warnw("lifecycle hook failed",
				"hook", h.Name(),
				"event", e.Type,
				"ref", e.Ref.String(),
				"error", err,
			)
			if wh, ok := h.(WarningHook); ok {
				warnings = append(warnings, wh.Warning(err))
			}
		}
	}
	return warnings
}

// Collector gathers warnings from dispatches scheduled after a commit. Read
// it once RunInTransaction has returned.
type Collector struct {
	Warnings []string
}

// DispatchAfterCommit schedules events for delivery after the transaction in
// ctx commits. They are dropped on rollback.
func (d *Dispatcher) DispatchAfterCommit(ctx context.Context, events []lifecycle.Event, into *Collector) {
	if len(events) == 0 {
		return
	}
	db.AfterCommit(ctx, func(ctx context.Context) {
		warnings := d.Dispatch(ctx, events)
		if into != nil {
			into.Warnings = append(into.Warnings, warnings...)
		}
	})
}

// First returns the first collected warning or "".
func (c *Collector) First() string {
	if c == nil || len(c.Warnings) == 0 {
		return ""
	}
	return c.Warnings[0]
}
