package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plumenote/plume/internal/note"
)

func (db *DB) CreateFolder(name, icon, color string) (*note.Folder, error) {
	f := &note.Folder{
		ID:        uuid.NewString(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_, err := db.conn.Exec(`
		INSERT INTO folders (id, name, icon, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, f.ID, f.Name, f.Icon, f.Color, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return f, nil
}

func (db *DB) GetFolder(id string) (*note.Folder, error) {
	var f note.Folder
	err := db.conn.QueryRow(`
		SELECT id, name, icon, color, created_at, updated_at FROM folders WHERE id = ?
	`, id).Scan(&f.ID, &f.Name, &f.Icon, &f.Color, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}
	return &f, nil
}

func (db *DB) ListFolders() ([]note.Folder, error) {
	rows, err := db.conn.Query(`
		SELECT id, name, icon, color, created_at, updated_at FROM folders ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	var folders []note.Folder
	for rows.Next() {
		var f note.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.Icon, &f.Color, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

func (db *DB) UpdateFolder(f *note.Folder) error {
	f.UpdatedAt = time.Now()
	_, err := db.conn.Exec(`
		UPDATE folders SET name = ?, icon = ?, color = ?, updated_at = ? WHERE id = ?
	`, f.Name, f.Icon, f.Color, f.UpdatedAt, f.ID)
	if err != nil {
		return fmt.Errorf("failed to update folder: %w", err)
	}
	return nil
}

// DeleteFolder removes the folder and clears folder_id on its notes.
// Member notes survive; there is no cascade delete.
func (db *DB) DeleteFolder(id string) error {
	if _, err := db.conn.Exec(`UPDATE notes SET folder_id = NULL WHERE folder_id = ?`, id); err != nil {
		return fmt.Errorf("failed to detach notes from folder: %w", err)
	}
	if _, err := db.conn.Exec(`DELETE FROM folders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	return nil
}

func (db *DB) CountNotesInFolder(id string) (int, error) {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*) FROM notes WHERE folder_id = ? AND deleted = 0
	`, id).Scan(&count)
	return count, err
}
