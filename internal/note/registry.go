package note

import (
	"encoding/json"
	"fmt"
)

// DefaultPayload returns the empty payload shape for a note type, or nil
// for Standard and anything unrecognized.
func DefaultPayload(t NoteType) Payload {
	switch t {
	case Todo:
		return TodoData{Tasks: []Task{}, Filter: "all", SortBy: "created"}
	case Shopping:
		return ShoppingData{Items: []ShoppingItem{}, Currency: "$"}
	case Project:
		return ProjectData{Columns: []ProjectColumn{
			{ID: "todo", Name: "To Do", Tasks: []Task{}},
			{ID: "doing", Name: "In Progress", Tasks: []Task{}},
			{ID: "done", Name: "Done", Tasks: []Task{}},
		}}
	case Meeting:
		return MeetingData{}
	case Journal:
		return JournalData{Gratitude: make([]string, 3)}
	case Brainstorm:
		return BrainstormData{Ideas: []Idea{}}
	case Weekly:
		return WeeklyData{}
	}
	return nil
}

// HasPreview reports whether a type carries a typed payload the preview
// generator knows how to summarize.
func HasPreview(t NoteType) bool {
	return ParseType(string(t)) != Standard
}

var moodEmoji = map[int]string{1: "😢", 2: "😕", 3: "😐", 4: "🙂", 5: "😄"}

// MoodEmoji maps the 1–5 journal mood scale to its display glyph.
func MoodEmoji(mood int) (string, bool) {
	e, ok := moodEmoji[mood]
	return e, ok
}

// EncodePayload serializes a payload for storage. A nil payload encodes
// to nil.
func EncodePayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return data, nil
}

// DecodePayload rebuilds the concrete payload for a note type from its
// stored JSON. Missing or blank data falls back to the default shape;
// a Standard type always decodes to nil.
func DecodePayload(t NoteType, data []byte) (Payload, error) {
	t = ParseType(string(t))
	if t == Standard {
		return nil, nil
	}
	if len(data) == 0 {
		return DefaultPayload(t), nil
	}

	var p Payload
	var err error
	switch t {
	case Todo:
		var v TodoData
		err = json.Unmarshal(data, &v)
		p = v
	case Shopping:
		var v ShoppingData
		err = json.Unmarshal(data, &v)
		p = v
	case Project:
		var v ProjectData
		err = json.Unmarshal(data, &v)
		p = v
	case Meeting:
		var v MeetingData
		err = json.Unmarshal(data, &v)
		p = v
	case Journal:
		var v JournalData
		err = json.Unmarshal(data, &v)
		p = v
	case Brainstorm:
		var v BrainstormData
		err = json.Unmarshal(data, &v)
		p = v
	case Weekly:
		var v WeeklyData
		err = json.Unmarshal(data, &v)
		p = v
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", t, err)
	}
	return p, nil
}
