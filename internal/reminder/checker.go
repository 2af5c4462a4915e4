// Package reminder runs the periodic due-reminder check. The check is
// idempotent: a reminder fires once, and re-running after it is marked
// notified does nothing.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/plumenote/plume/internal/note"
)

// Store is the slice of the database the checker needs.
type Store interface {
	DueReminders(now time.Time) ([]note.Reminder, error)
	MarkNotified(id string) error
	RescheduleReminder(id string, next time.Time) error
}

const DefaultInterval = 60 * time.Second

type Checker struct {
	store    Store
	interval time.Duration
}

func New(store Store, interval time.Duration) *Checker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Checker{store: store, interval: interval}
}

// Run re-evaluates due reminders on the checker's interval until ctx is
// canceled, invoking notify for each firing.
func (c *Checker) Run(ctx context.Context, notify func(note.Reminder)) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			// A failed sweep is retried on the next tick.
			c.CheckOnce(now, notify)
		}
	}
}

// CheckOnce fires every due un-notified reminder exactly once.
// Non-repeating reminders are marked notified; repeating ones advance to
// their next occurrence past now and stay armed.
func (c *Checker) CheckOnce(now time.Time, notify func(note.Reminder)) error {
	due, err := c.store.DueReminders(now)
	if err != nil {
		return fmt.Errorf("failed to check reminders: %w", err)
	}

	for _, r := range due {
		if notify != nil {
			notify(r)
		}
		if next, ok := nextOccurrence(r, now); ok {
			if err := c.store.RescheduleReminder(r.ID, next); err != nil {
				return err
			}
			continue
		}
		if err := c.store.MarkNotified(r.ID); err != nil {
			return err
		}
	}
	return nil
}

// nextOccurrence advances a repeating reminder's time until it is after
// now. Unknown repeat values behave like one-shot reminders.
func nextOccurrence(r note.Reminder, now time.Time) (time.Time, bool) {
	next := r.At
	for !next.After(now) {
		switch r.Repeat {
		case "daily":
			next = next.AddDate(0, 0, 1)
		case "weekly":
			next = next.AddDate(0, 0, 7)
		case "monthly":
			next = next.AddDate(0, 1, 0)
		default:
			return time.Time{}, false
		}
	}
	return next, true
}
