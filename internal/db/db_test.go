package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumenote/plume/internal/note"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGetNote(t *testing.T) {
	db := testDB(t)

	created, err := db.CreateNote("Hello", note.Standard, "")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := db.GetNote(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, note.Standard, got.Type)
	assert.Nil(t, got.Data)
	assert.False(t, got.Pinned)
}

func TestCreateNoteEmptyTitle(t *testing.T) {
	db := testDB(t)

	n, err := db.CreateNote("", note.Standard, "")
	require.NoError(t, err)
	assert.Equal(t, "Untitled note", n.Title)
}

func TestCreateTypedNoteGetsDefaultPayload(t *testing.T) {
	db := testDB(t)

	created, err := db.CreateNote("Board", note.Project, "")
	require.NoError(t, err)

	got, err := db.GetNote(created.ID)
	require.NoError(t, err)

	project, ok := got.Data.(note.ProjectData)
	require.True(t, ok)
	require.Len(t, project.Columns, 3)
	assert.Equal(t, "To Do", project.Columns[0].Name)
}

func TestGetNoteMissing(t *testing.T) {
	db := testDB(t)

	got, err := db.GetNote("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateNoteRoundTrip(t *testing.T) {
	db := testDB(t)

	n, err := db.CreateNote("Todos", note.Todo, "")
	require.NoError(t, err)

	n.Title = "Renamed"
	n.Tags = []string{"work"}
	n.Data = note.TodoData{Tasks: []note.Task{{ID: "t1", Text: "ship", Completed: true}}}
	require.NoError(t, err)
	require.NoError(t, db.UpdateNote(n))

	got, err := db.GetNote(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, []string{"work"}, got.Tags)

	todo, ok := got.Data.(note.TodoData)
	require.True(t, ok)
	require.Len(t, todo.Tasks, 1)
	assert.True(t, todo.Tasks[0].Completed)
}

func TestSetTypeRepopulatesPayload(t *testing.T) {
	db := testDB(t)

	n, err := db.CreateNote("x", note.Todo, "")
	require.NoError(t, err)

	require.NoError(t, db.SetType(n.ID, note.Shopping))
	got, err := db.GetNote(n.ID)
	require.NoError(t, err)
	assert.Equal(t, note.Shopping, got.Type)
	_, ok := got.Data.(note.ShoppingData)
	assert.True(t, ok)

	// Back to standard clears the payload.
	require.NoError(t, db.SetType(n.ID, note.Standard))
	got, err = db.GetNote(n.ID)
	require.NoError(t, err)
	assert.Equal(t, note.Standard, got.Type)
	assert.Nil(t, got.Data)
}

func TestPinStarOrder(t *testing.T) {
	db := testDB(t)

	n, err := db.CreateNote("x", note.Standard, "")
	require.NoError(t, err)

	require.NoError(t, db.SetPinned(n.ID, true))
	require.NoError(t, db.SetStarred(n.ID, true))
	pos := 7
	require.NoError(t, db.SetOrder(n.ID, &pos))

	got, err := db.GetNote(n.ID)
	require.NoError(t, err)
	assert.True(t, got.Pinned)
	assert.True(t, got.Starred)
	require.NotNil(t, got.Order)
	assert.Equal(t, 7, *got.Order)

	require.NoError(t, db.SetOrder(n.ID, nil))
	got, err = db.GetNote(n.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Order)
}

func TestNoteLifecycle(t *testing.T) {
	db := testDB(t)

	n, err := db.CreateNote("x", note.Standard, "")
	require.NoError(t, err)

	require.NoError(t, db.ArchiveNote(n.ID))
	got, err := db.GetNote(n.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived)
	assert.NotNil(t, got.ArchivedAt)

	require.NoError(t, db.UnarchiveNote(n.ID))
	got, err = db.GetNote(n.ID)
	require.NoError(t, err)
	assert.False(t, got.Archived)
	assert.Nil(t, got.ArchivedAt)

	// Soft delete keeps the row.
	require.NoError(t, db.DeleteNote(n.ID))
	got, err = db.GetNote(n.ID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.NotNil(t, got.DeletedAt)

	require.NoError(t, db.RestoreNote(n.ID))
	got, err = db.GetNote(n.ID)
	require.NoError(t, err)
	assert.False(t, got.Deleted)
	assert.Nil(t, got.DeletedAt)
}

func TestPermanentlyDeleteRequiresTrash(t *testing.T) {
	db := testDB(t)

	n, err := db.CreateNote("x", note.Standard, "")
	require.NoError(t, err)

	// Not trashed yet: refused.
	require.Error(t, db.PermanentlyDelete(n.ID))

	require.NoError(t, db.DeleteNote(n.ID))
	require.NoError(t, db.PermanentlyDelete(n.ID))

	got, err := db.GetNote(n.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmptyTrashHonorsCutoff(t *testing.T) {
	db := testDB(t)

	old, err := db.CreateNote("old", note.Standard, "")
	require.NoError(t, err)
	fresh, err := db.CreateNote("fresh", note.Standard, "")
	require.NoError(t, err)

	require.NoError(t, db.DeleteNote(old.ID))
	require.NoError(t, db.DeleteNote(fresh.ID))

	// Backdate one deletion past the retention window.
	_, err = db.conn.Exec(`UPDATE notes SET deleted_at = ? WHERE id = ?`,
		time.Now().AddDate(0, 0, -40), old.ID)
	require.NoError(t, err)

	removed, err := db.EmptyTrash(time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	gone, err := db.GetNote(old.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	kept, err := db.GetNote(fresh.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.True(t, kept.Deleted)
}

func TestListNotesIncludesAllStates(t *testing.T) {
	db := testDB(t)

	a, err := db.CreateNote("a", note.Standard, "")
	require.NoError(t, err)
	_, err = db.CreateNote("b", note.Standard, "")
	require.NoError(t, err)
	require.NoError(t, db.DeleteNote(a.ID))

	notes, err := db.ListNotes()
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestFolders(t *testing.T) {
	db := testDB(t)

	f, err := db.CreateFolder("Work", "💼", "#ff0000")
	require.NoError(t, err)

	got, err := db.GetFolder(f.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Work", got.Name)
	assert.Equal(t, "💼", got.Icon)

	got.Name = "Office"
	require.NoError(t, db.UpdateFolder(got))
	got, err = db.GetFolder(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Office", got.Name)

	missing, err := db.GetFolder("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListFoldersSorted(t *testing.T) {
	db := testDB(t)

	_, err := db.CreateFolder("beta", "", "")
	require.NoError(t, err)
	_, err = db.CreateFolder("alpha", "", "")
	require.NoError(t, err)

	folders, err := db.ListFolders()
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "alpha", folders[0].Name)
}

func TestDeleteFolderDetachesNotes(t *testing.T) {
	db := testDB(t)

	f, err := db.CreateFolder("Work", "", "")
	require.NoError(t, err)
	n, err := db.CreateNote("x", note.Standard, f.ID)
	require.NoError(t, err)

	count, err := db.CountNotesInFolder(f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, db.DeleteFolder(f.ID))

	// The note survives without a folder.
	got, err := db.GetNote(n.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.FolderID)
}

func TestCreateTagUpsert(t *testing.T) {
	db := testDB(t)

	_, err := db.CreateTag("Work", "#111111")
	require.NoError(t, err)
	// Same name, different case: updates the color, no duplicate row.
	_, err = db.CreateTag("WORK", "#222222")
	require.NoError(t, err)

	tags, err := db.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "work", tags[0].Name)
	assert.Equal(t, "#222222", tags[0].Color)
}

func TestCreateTagEmptyName(t *testing.T) {
	db := testDB(t)
	_, err := db.CreateTag("   ", "#fff")
	require.Error(t, err)
}

func TestTagColorFallback(t *testing.T) {
	tags := []note.Tag{{Name: "work", Color: "#123456"}}
	assert.Equal(t, "#123456", TagColor(tags, "Work"))
	assert.Equal(t, note.DefaultTagColor, TagColor(tags, "orphan"))
}

func TestReminders(t *testing.T) {
	db := testDB(t)

	n, err := db.CreateNote("x", note.Standard, "")
	require.NoError(t, err)

	due := time.Now().Add(-time.Minute)
	r, err := db.AddReminder(n.ID, due, "")
	require.NoError(t, err)

	future := time.Now().Add(time.Hour)
	_, err = db.AddReminder(n.ID, future, "daily")
	require.NoError(t, err)

	all, err := db.ListReminders(n.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Only the past one is due.
	dueNow, err := db.DueReminders(time.Now())
	require.NoError(t, err)
	require.Len(t, dueNow, 1)
	assert.Equal(t, r.ID, dueNow[0].ID)

	require.NoError(t, db.MarkNotified(r.ID))
	dueNow, err = db.DueReminders(time.Now())
	require.NoError(t, err)
	assert.Empty(t, dueNow)

	// Rescheduling rearms the reminder.
	require.NoError(t, db.RescheduleReminder(r.ID, time.Now().Add(-time.Second)))
	dueNow, err = db.DueReminders(time.Now())
	require.NoError(t, err)
	require.Len(t, dueNow, 1)
	assert.False(t, dueNow[0].Notified)
}

func TestDeleteReminder(t *testing.T) {
	db := testDB(t)

	n, err := db.CreateNote("x", note.Standard, "")
	require.NoError(t, err)
	r, err := db.AddReminder(n.ID, time.Now(), "")
	require.NoError(t, err)

	require.NoError(t, db.DeleteReminder(r.ID))
	all, err := db.ListReminders(n.ID)
	require.NoError(t, err)
	assert.Empty(t, all)
}
