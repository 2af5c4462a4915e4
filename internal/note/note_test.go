package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	assert.Equal(t, Todo, ParseType("todo"))
	assert.Equal(t, Weekly, ParseType("weekly"))
	assert.Equal(t, Standard, ParseType("standard"))

	// Unknown and stale values degrade instead of failing.
	assert.Equal(t, Standard, ParseType("recipe"))
	assert.Equal(t, Standard, ParseType(""))
	assert.Equal(t, Standard, ParseType("TODO"))
}

func TestDefaultPayload(t *testing.T) {
	todo, ok := DefaultPayload(Todo).(TodoData)
	require.True(t, ok)
	assert.NotNil(t, todo.Tasks)
	assert.Empty(t, todo.Tasks)
	assert.Equal(t, "all", todo.Filter)

	project, ok := DefaultPayload(Project).(ProjectData)
	require.True(t, ok)
	require.Len(t, project.Columns, 3)
	assert.Equal(t, "To Do", project.Columns[0].Name)
	assert.Equal(t, "In Progress", project.Columns[1].Name)
	assert.Equal(t, "Done", project.Columns[2].Name)

	journal, ok := DefaultPayload(Journal).(JournalData)
	require.True(t, ok)
	assert.Len(t, journal.Gratitude, 3)

	shopping, ok := DefaultPayload(Shopping).(ShoppingData)
	require.True(t, ok)
	assert.Equal(t, "$", shopping.Currency)

	assert.Nil(t, DefaultPayload(Standard))
}

func TestPayloadNoteType(t *testing.T) {
	cases := []struct {
		payload Payload
		want    NoteType
	}{
		{TodoData{}, Todo},
		{ShoppingData{}, Shopping},
		{ProjectData{}, Project},
		{MeetingData{}, Meeting},
		{JournalData{}, Journal},
		{BrainstormData{}, Brainstorm},
		{WeeklyData{}, Weekly},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.payload.NoteType())
	}
}

func TestEncodeDecodePayload(t *testing.T) {
	in := TodoData{
		Tasks: []Task{
			{ID: "1", Text: "buy milk", Completed: true, Priority: "high"},
			{ID: "2", Text: "walk dog", Subtasks: []Task{{ID: "2a", Text: "find leash"}}},
		},
		Filter: "active",
	}

	data, err := EncodePayload(in)
	require.NoError(t, err)

	out, err := DecodePayload(Todo, data)
	require.NoError(t, err)

	decoded, ok := out.(TodoData)
	require.True(t, ok)
	assert.Equal(t, in, decoded)
}

func TestEncodePayloadNil(t *testing.T) {
	data, err := EncodePayload(nil)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestDecodePayloadEmptyData(t *testing.T) {
	p, err := DecodePayload(Shopping, nil)
	require.NoError(t, err)

	shopping, ok := p.(ShoppingData)
	require.True(t, ok)
	assert.Equal(t, "$", shopping.Currency)
}

func TestDecodePayloadStandard(t *testing.T) {
	p, err := DecodePayload(Standard, []byte(`{"tasks":[]}`))
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestDecodePayloadUnknownType(t *testing.T) {
	// Unknown types normalize to Standard, so stored data is ignored.
	p, err := DecodePayload(NoteType("recipe"), []byte(`{"whatever":1}`))
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestDecodePayloadBadJSON(t *testing.T) {
	_, err := DecodePayload(Todo, []byte(`{not json`))
	require.Error(t, err)
}

func TestHasPreview(t *testing.T) {
	assert.False(t, HasPreview(Standard))
	assert.False(t, HasPreview(NoteType("bogus")))
	assert.True(t, HasPreview(Todo))
	assert.True(t, HasPreview(Weekly))
}

func TestMoodEmoji(t *testing.T) {
	e, ok := MoodEmoji(5)
	assert.True(t, ok)
	assert.Equal(t, "😄", e)

	_, ok = MoodEmoji(0)
	assert.False(t, ok)
	_, ok = MoodEmoji(6)
	assert.False(t, ok)
}

func TestWeeklyDays(t *testing.T) {
	w := WeeklyData{Monday: WeeklyDay{Note: "mon"}, Sunday: WeeklyDay{Note: "sun"}}
	days := w.Days()
	require.Len(t, days, 7)
	assert.Equal(t, "mon", days[0].Note)
	assert.Equal(t, "sun", days[6].Note)
	assert.Len(t, DayNames, 7)
}
