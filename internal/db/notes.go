package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plumenote/plume/internal/note"
)

const noteColumns = `id, title, content, note_type, note_data, tags, folder_id,
	pinned, starred, archived, deleted, sort_order,
	created_at, updated_at, archived_at, deleted_at`

func scanNote(row interface{ Scan(...any) error }) (*note.Note, error) {
	var n note.Note
	var noteType string
	var noteData, tagsJSON, folderID sql.NullString
	var pinned, starred, archived, deleted int
	var sortOrder sql.NullInt64
	var archivedAt, deletedAt sql.NullTime

	err := row.Scan(&n.ID, &n.Title, &n.Content, &noteType, &noteData, &tagsJSON, &folderID,
		&pinned, &starred, &archived, &deleted, &sortOrder,
		&n.CreatedAt, &n.UpdatedAt, &archivedAt, &deletedAt)
	if err != nil {
		return nil, err
	}

	n.Type = note.ParseType(noteType)
	if noteData.Valid {
		// A payload that fails to decode degrades to the default shape
		// rather than poisoning the whole list.
		if data, err := note.DecodePayload(n.Type, []byte(noteData.String)); err == nil {
			n.Data = data
		} else {
			n.Data = note.DefaultPayload(n.Type)
		}
	} else if n.Type != note.Standard {
		n.Data = note.DefaultPayload(n.Type)
	}

	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &n.Tags); err != nil {
			n.Tags = []string{}
		}
	}
	if folderID.Valid {
		n.FolderID = folderID.String
	}
	n.Pinned = pinned == 1
	n.Starred = starred == 1
	n.Archived = archived == 1
	n.Deleted = deleted == 1
	if sortOrder.Valid {
		v := int(sortOrder.Int64)
		n.Order = &v
	}
	if archivedAt.Valid {
		t := archivedAt.Time
		n.ArchivedAt = &t
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		n.DeletedAt = &t
	}

	return &n, nil
}

// CreateNote inserts a new note. A specialized type gets its payload
// populated from the registry's default shape unless data is given.
func (db *DB) CreateNote(title string, noteType note.NoteType, folderID string) (*note.Note, error) {
	if title == "" {
		title = "Untitled note"
	}
	noteType = note.ParseType(string(noteType))

	n := &note.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Type:      noteType,
		FolderID:  folderID,
		Tags:      []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	n.Data = note.DefaultPayload(noteType)

	dataJSON, err := note.EncodePayload(n.Data)
	if err != nil {
		return nil, err
	}

	var folder any
	if folderID != "" {
		folder = folderID
	}
	var payload any
	if dataJSON != nil {
		payload = string(dataJSON)
	}

	_, err = db.conn.Exec(`
		INSERT INTO notes (id, title, content, note_type, note_data, tags, folder_id, created_at, updated_at)
		VALUES (?, ?, '', ?, ?, '[]', ?, ?, ?)
	`, n.ID, n.Title, string(noteType), payload, folder, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return n, nil
}

func (db *DB) GetNote(id string) (*note.Note, error) {
	n, err := scanNote(db.conn.QueryRow(`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return n, nil
}

// ListNotes returns the whole collection, every lifecycle state included.
// Filtering and ordering happen in the engine, not in SQL, so the view
// logic stays in one testable place.
func (db *DB) ListNotes() ([]note.Note, error) {
	rows, err := db.conn.Query(`SELECT ` + noteColumns + ` FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

// UpdateNote replaces title, content, payload and tags, refreshing
// updated_at.
func (db *DB) UpdateNote(n *note.Note) error {
	dataJSON, err := note.EncodePayload(n.Data)
	if err != nil {
		return err
	}
	tagsJSON, err := json.Marshal(n.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	var payload any
	if dataJSON != nil {
		payload = string(dataJSON)
	}

	n.UpdatedAt = time.Now()
	_, err = db.conn.Exec(`
		UPDATE notes
		SET title = ?, content = ?, note_data = ?, tags = ?, updated_at = ?
		WHERE id = ?
	`, n.Title, n.Content, payload, string(tagsJSON), n.UpdatedAt, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}

// SetType changes a note's type. Switching to a specialized type
// populates the default payload; switching to standard clears it.
func (db *DB) SetType(id string, t note.NoteType) error {
	t = note.ParseType(string(t))
	payload := note.DefaultPayload(t)
	dataJSON, err := note.EncodePayload(payload)
	if err != nil {
		return err
	}
	var data any
	if dataJSON != nil {
		data = string(dataJSON)
	}

	_, err = db.conn.Exec(`
		UPDATE notes SET note_type = ?, note_data = ?, updated_at = ? WHERE id = ?
	`, string(t), data, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set note type: %w", err)
	}
	return nil
}

func (db *DB) SetPinned(id string, pinned bool) error {
	_, err := db.conn.Exec(`UPDATE notes SET pinned = ? WHERE id = ?`, boolInt(pinned), id)
	if err != nil {
		return fmt.Errorf("failed to set pinned: %w", err)
	}
	return nil
}

func (db *DB) SetStarred(id string, starred bool) error {
	_, err := db.conn.Exec(`UPDATE notes SET starred = ? WHERE id = ?`, boolInt(starred), id)
	if err != nil {
		return fmt.Errorf("failed to set starred: %w", err)
	}
	return nil
}

// SetOrder assigns the manual sort position. A nil order clears it, so
// the note sorts last under manual mode.
func (db *DB) SetOrder(id string, order *int) error {
	var v any
	if order != nil {
		v = *order
	}
	_, err := db.conn.Exec(`UPDATE notes SET sort_order = ? WHERE id = ?`, v, id)
	if err != nil {
		return fmt.Errorf("failed to set order: %w", err)
	}
	return nil
}

func (db *DB) MoveToFolder(id, folderID string) error {
	var v any
	if folderID != "" {
		v = folderID
	}
	_, err := db.conn.Exec(`UPDATE notes SET folder_id = ?, updated_at = ? WHERE id = ?`, v, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to move note: %w", err)
	}
	return nil
}

// DeleteNote soft-deletes: the note moves to the trash view and stays
// recoverable until permanently deleted.
func (db *DB) DeleteNote(id string) error {
	now := time.Now()
	_, err := db.conn.Exec(`
		UPDATE notes SET deleted = 1, deleted_at = ?, updated_at = ? WHERE id = ?
	`, now, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (db *DB) RestoreNote(id string) error {
	_, err := db.conn.Exec(`
		UPDATE notes SET deleted = 0, deleted_at = NULL, updated_at = ? WHERE id = ?
	`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to restore note: %w", err)
	}
	return nil
}

func (db *DB) ArchiveNote(id string) error {
	now := time.Now()
	_, err := db.conn.Exec(`
		UPDATE notes SET archived = 1, archived_at = ?, updated_at = ? WHERE id = ?
	`, now, now, id)
	if err != nil {
		return fmt.Errorf("failed to archive note: %w", err)
	}
	return nil
}

func (db *DB) UnarchiveNote(id string) error {
	_, err := db.conn.Exec(`
		UPDATE notes SET archived = 0, archived_at = NULL, updated_at = ? WHERE id = ?
	`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to unarchive note: %w", err)
	}
	return nil
}

// PermanentlyDelete removes a note for good. Only trashed notes qualify.
func (db *DB) PermanentlyDelete(id string) error {
	res, err := db.conn.Exec(`DELETE FROM notes WHERE id = ? AND deleted = 1`, id)
	if err != nil {
		return fmt.Errorf("failed to permanently delete note: %w", err)
	}
	if count, err := res.RowsAffected(); err == nil && count == 0 {
		return fmt.Errorf("note %s is not in the trash", id)
	}
	return nil
}

// EmptyTrash removes trashed notes whose deletion is older than cutoff.
// The 30-day retention sweep calls it with time.Now().AddDate(0, 0, -30).
func (db *DB) EmptyTrash(cutoff time.Time) (int64, error) {
	res, err := db.conn.Exec(`DELETE FROM notes WHERE deleted = 1 AND deleted_at <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to empty trash: %w", err)
	}
	return res.RowsAffected()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
