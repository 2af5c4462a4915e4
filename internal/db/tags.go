package db

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/plumenote/plume/internal/note"
)

// CreateTag registers a tag for color lookup. Names are case-normalized
// and unique; re-creating an existing tag updates its color instead.
func (db *DB) CreateTag(name, color string) (*note.Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("tag name is empty")
	}

	t := &note.Tag{ID: uuid.NewString(), Name: name, Color: color}
	_, err := db.conn.Exec(`
		INSERT INTO tags (id, name, color) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET color = excluded.color
	`, t.ID, t.Name, t.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return t, nil
}

func (db *DB) ListTags() ([]note.Tag, error) {
	rows, err := db.conn.Query(`SELECT id, name, color FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []note.Tag
	for rows.Next() {
		var t note.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// DeleteTag removes the tag row only. Notes keep the orphaned name and
// render it with the default color.
func (db *DB) DeleteTag(id string) error {
	_, err := db.conn.Exec(`DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

// TagColor resolves a tag name to its color, case-insensitively, falling
// back to the default for orphaned names.
func TagColor(tags []note.Tag, name string) string {
	for _, t := range tags {
		if strings.EqualFold(t.Name, name) && t.Color != "" {
			return t.Color
		}
	}
	return note.DefaultTagColor
}
