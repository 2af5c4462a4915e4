package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumenote/plume/internal/note"
)

func typed(data note.Payload) *note.Note {
	return &note.Note{ID: "n1", Title: "t", Type: data.NoteType(), Data: data}
}

func TestPreviewTodo(t *testing.T) {
	n := typed(note.TodoData{Tasks: []note.Task{
		{Text: "buy milk", Completed: true},
		{Text: "walk dog"},
	}})

	s, ok := Preview(n, 100)
	require.True(t, ok)
	assert.Equal(t, "1/2 done • ✓ buy milk ○ walk dog", s)
}

func TestPreviewTodoEmpty(t *testing.T) {
	s, ok := Preview(typed(note.TodoData{}), 100)
	require.True(t, ok)
	assert.Equal(t, "No tasks yet", s)
}

func TestPreviewTodoFirstThreeOnly(t *testing.T) {
	n := typed(note.TodoData{Tasks: []note.Task{
		{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"},
	}})
	s, ok := Preview(n, 200)
	require.True(t, ok)
	assert.Contains(t, s, "0/4 done")
	assert.Contains(t, s, "○ c")
	assert.NotContains(t, s, "○ d")
}

func TestPreviewShopping(t *testing.T) {
	n := typed(note.ShoppingData{Items: []note.ShoppingItem{
		{Name: "milk", Price: 2.50, Quantity: 2, Checked: true},
		{Name: "bread", Price: 1.00},
	}})

	s, ok := Preview(n, 100)
	require.True(t, ok)
	assert.Equal(t, "1/2 checked • $6.00 • milk, bread", s)
}

func TestPreviewShoppingNoPrices(t *testing.T) {
	n := typed(note.ShoppingData{Items: []note.ShoppingItem{{Name: "eggs"}}})
	s, ok := Preview(n, 100)
	require.True(t, ok)
	// A zero total is omitted.
	assert.Equal(t, "0/1 checked • eggs", s)
}

func TestPreviewProject(t *testing.T) {
	n := typed(note.ProjectData{Columns: []note.ProjectColumn{
		{Name: "To Do", Tasks: []note.Task{{Text: "a"}, {Text: "b"}, {Text: "c"}}},
		{Name: "Done", Tasks: []note.Task{{Text: "d"}}},
	}})

	s, ok := Preview(n, 100)
	require.True(t, ok)
	assert.Equal(t, "25% complete • To Do: 3, Done: 1", s)
}

func TestPreviewProjectEmpty(t *testing.T) {
	s, ok := Preview(typed(note.ProjectData{}), 100)
	require.True(t, ok)
	assert.Equal(t, "Empty board", s)
}

func TestPreviewMeeting(t *testing.T) {
	n := typed(note.MeetingData{
		Date:      "2026-09-01",
		StartTime: "10:00",
		Attendees: []string{"ann", "bo"},
		Agenda:    []string{"roadmap"},
	})

	s, ok := Preview(n, 100)
	require.True(t, ok)
	assert.Equal(t, "2026-09-01 • 10:00 • 2 attendees • 1 agenda items", s)
}

func TestPreviewMeetingOmitsEmptyFields(t *testing.T) {
	s, ok := Preview(typed(note.MeetingData{StartTime: "14:00"}), 100)
	require.True(t, ok)
	assert.Equal(t, "14:00", s)

	s, ok = Preview(typed(note.MeetingData{}), 100)
	require.True(t, ok)
	assert.Equal(t, "Meeting", s)
}

func TestPreviewJournal(t *testing.T) {
	n := typed(note.JournalData{
		Mood:       4,
		Gratitude:  []string{"coffee", "", "  "},
		Highlights: []string{"shipped"},
	})

	s, ok := Preview(n, 100)
	require.True(t, ok)
	assert.Equal(t, "🙂 • 1 gratitude • 1 highlights", s)
}

func TestPreviewJournalInvalidMood(t *testing.T) {
	s, ok := Preview(typed(note.JournalData{Mood: 9, FreeWrite: "long day"}), 100)
	require.True(t, ok)
	assert.Equal(t, "long day", s)
}

func TestPreviewBrainstorm(t *testing.T) {
	n := typed(note.BrainstormData{Ideas: []note.Idea{
		{Text: "solar"}, {Text: "wind"},
	}})
	s, ok := Preview(n, 100)
	require.True(t, ok)
	assert.Equal(t, "2 ideas • solar, wind", s)
}

func TestPreviewWeekly(t *testing.T) {
	n := typed(note.WeeklyData{
		WeeklyGoals: []string{"run", "read"},
		Monday:      note.WeeklyDay{Tasks: []note.Task{{Text: "a", Completed: true}}},
		Friday:      note.WeeklyDay{Tasks: []note.Task{{Text: "b"}}},
	})
	s, ok := Preview(n, 100)
	require.True(t, ok)
	assert.Equal(t, "1/2 done • 2 goals", s)
}

func TestPreviewStandardFallsBack(t *testing.T) {
	n := &note.Note{Type: note.Standard, Content: "<p>hello</p>"}
	_, ok := Preview(n, 100)
	assert.False(t, ok)

	assert.Equal(t, "hello", Excerpt(n.Content, 100))
}

func TestPreviewNil(t *testing.T) {
	_, ok := Preview(nil, 100)
	assert.False(t, ok)
}

func TestExcerptCollapsesWhitespace(t *testing.T) {
	got := Excerpt("<p>one</p>\n<p>two   three</p>", 100)
	assert.Equal(t, "one two three", got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hell…", Truncate("hello", 4))
	assert.Equal(t, "", Truncate("hello", 0))

	// Rune-safe: cutting multi-byte text never splits a character.
	got := Truncate("héllo wörld", 6)
	assert.Equal(t, "héllo …", got)
	assert.True(t, len([]rune(got)) == 7)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestPreviewTruncatesLongSummaries(t *testing.T) {
	n := typed(note.TodoData{Tasks: []note.Task{
		{Text: strings.Repeat("x", 50)},
	}})
	s, ok := Preview(n, 20)
	require.True(t, ok)
	assert.Len(t, []rune(s), 21)
	assert.True(t, strings.HasSuffix(s, "…"))
}
