package note

import "time"

// NoteType selects which of Content or Data carries a note's body.
// Standard notes use Content (rich markup); every other type uses Data.
type NoteType string

const (
	Standard   NoteType = "standard"
	Todo       NoteType = "todo"
	Project    NoteType = "project"
	Meeting    NoteType = "meeting"
	Journal    NoteType = "journal"
	Brainstorm NoteType = "brainstorm"
	Shopping   NoteType = "shopping"
	Weekly     NoteType = "weekly"
)

// ParseType normalizes a stored type string. Unknown values degrade to
// Standard rather than failing.
func ParseType(s string) NoteType {
	switch NoteType(s) {
	case Todo, Project, Meeting, Journal, Brainstorm, Shopping, Weekly:
		return NoteType(s)
	}
	return Standard
}

type Note struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Type       NoteType   `json:"note_type"`
	Data       Payload    `json:"note_data,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	FolderID   string     `json:"folder_id,omitempty"`
	Pinned     bool       `json:"pinned"`
	Starred    bool       `json:"starred"`
	Archived   bool       `json:"archived"`
	Deleted    bool       `json:"deleted"`
	Order      *int       `json:"order,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	Reminders  []Reminder `json:"reminders,omitempty"`
}

type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tag carries display metadata for a tag name. Notes reference tags by
// name; a note tag with no matching Tag row renders with DefaultTagColor.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

const DefaultTagColor = "#888888"

type Reminder struct {
	ID        string    `json:"id"`
	NoteID    string    `json:"note_id"`
	At        time.Time `json:"datetime"`
	Repeat    string    `json:"repeat"` // "", "daily", "weekly", "monthly"
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"created_at"`
}
