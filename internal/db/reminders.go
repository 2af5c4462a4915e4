package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plumenote/plume/internal/note"
)

func (db *DB) AddReminder(noteID string, at time.Time, repeat string) (*note.Reminder, error) {
	r := &note.Reminder{
		ID:        uuid.NewString(),
		NoteID:    noteID,
		At:        at,
		Repeat:    repeat,
		CreatedAt: time.Now(),
	}
	_, err := db.conn.Exec(`
		INSERT INTO reminders (id, note_id, remind_at, repeat, notified, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`, r.ID, r.NoteID, r.At, r.Repeat, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add reminder: %w", err)
	}
	return r, nil
}

func (db *DB) ListReminders(noteID string) ([]note.Reminder, error) {
	rows, err := db.conn.Query(`
		SELECT id, note_id, remind_at, repeat, notified, created_at
		FROM reminders WHERE note_id = ? ORDER BY remind_at ASC
	`, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()
	return collectReminders(rows)
}

// DueReminders returns un-notified reminders due at or before now.
func (db *DB) DueReminders(now time.Time) ([]note.Reminder, error) {
	rows, err := db.conn.Query(`
		SELECT id, note_id, remind_at, repeat, notified, created_at
		FROM reminders WHERE notified = 0 AND remind_at <= ? ORDER BY remind_at ASC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer rows.Close()
	return collectReminders(rows)
}

func collectReminders(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]note.Reminder, error) {
	var reminders []note.Reminder
	for rows.Next() {
		var r note.Reminder
		var notified int
		if err := rows.Scan(&r.ID, &r.NoteID, &r.At, &r.Repeat, &notified, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		r.Notified = notified == 1
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

// MarkNotified flags a reminder as fired. Re-marking is a no-op, which
// keeps the due-check idempotent.
func (db *DB) MarkNotified(id string) error {
	_, err := db.conn.Exec(`UPDATE reminders SET notified = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder notified: %w", err)
	}
	return nil
}

// RescheduleReminder sets the next occurrence for a repeating reminder
// and clears the notified flag.
func (db *DB) RescheduleReminder(id string, next time.Time) error {
	_, err := db.conn.Exec(`UPDATE reminders SET remind_at = ?, notified = 0 WHERE id = ?`, next, id)
	if err != nil {
		return fmt.Errorf("failed to reschedule reminder: %w", err)
	}
	return nil
}

func (db *DB) DeleteReminder(id string) error {
	_, err := db.conn.Exec(`DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}
