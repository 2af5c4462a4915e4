// Package preview builds the one-line summaries shown next to each note
// in the list. Typed notes summarize their payload; standard notes fall
// back to a plain-text excerpt of their content.
package preview

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/plumenote/plume/internal/markup"
	"github.com/plumenote/plume/internal/note"
)

const ellipsis = "…"

// Preview summarizes a note's typed payload in at most maxLen characters
// (runes, plus the trailing ellipsis when truncated). ok is false when
// the note has no typed payload to summarize and the caller should use
// Excerpt on the note's content instead.
func Preview(n *note.Note, maxLen int) (string, bool) {
	if n == nil || n.Data == nil {
		return "", false
	}

	var s string
	switch d := n.Data.(type) {
	case note.TodoData:
		s = todoPreview(d)
	case note.ShoppingData:
		s = shoppingPreview(d)
	case note.ProjectData:
		s = projectPreview(d)
	case note.MeetingData:
		s = meetingPreview(d)
	case note.JournalData:
		s = journalPreview(d)
	case note.BrainstormData:
		s = brainstormPreview(d)
	case note.WeeklyData:
		s = weeklyPreview(d)
	default:
		return "", false
	}
	return Truncate(s, maxLen), true
}

var spaceRe = regexp.MustCompile(`\s+`)

// Excerpt is the standard-note fallback: extracted text, collapsed
// whitespace, truncated.
func Excerpt(content string, maxLen int) string {
	text := spaceRe.ReplaceAllString(markup.ToPlainText(content), " ")
	return Truncate(strings.TrimSpace(text), maxLen)
}

// Truncate cuts a string to max runes and appends an ellipsis. Counting
// runes keeps the cut from landing inside a multi-byte character.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + ellipsis
}

func todoPreview(d note.TodoData) string {
	if len(d.Tasks) == 0 {
		return "No tasks yet"
	}
	done := 0
	for _, t := range d.Tasks {
		if t.Completed {
			done++
		}
	}
	var items []string
	for _, t := range d.Tasks[:minInt(3, len(d.Tasks))] {
		glyph := "○"
		if t.Completed {
			glyph = "✓"
		}
		items = append(items, glyph+" "+t.Text)
	}
	return fmt.Sprintf("%d/%d done • %s", done, len(d.Tasks), strings.Join(items, " "))
}

func shoppingPreview(d note.ShoppingData) string {
	if len(d.Items) == 0 {
		return "Empty list"
	}
	checked := 0
	var total float64
	var names []string
	for i, it := range d.Items {
		if it.Checked {
			checked++
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += it.Price * qty
		if i < 3 {
			names = append(names, it.Name)
		}
	}
	parts := []string{fmt.Sprintf("%d/%d checked", checked, len(d.Items))}
	if total > 0 {
		parts = append(parts, fmt.Sprintf("$%.2f", total))
	}
	parts = append(parts, strings.Join(names, ", "))
	return strings.Join(parts, " • ")
}

func projectPreview(d note.ProjectData) string {
	total, done := 0, 0
	var cols []string
	for _, col := range d.Columns {
		total += len(col.Tasks)
		if strings.Contains(strings.ToLower(col.Name), "done") {
			done += len(col.Tasks)
		}
		if len(col.Tasks) > 0 {
			cols = append(cols, fmt.Sprintf("%s: %d", col.Name, len(col.Tasks)))
		}
	}
	if total == 0 {
		return "Empty board"
	}
	percent := int(float64(done)/float64(total)*100 + 0.5)
	return fmt.Sprintf("%d%% complete • %s", percent, strings.Join(cols, ", "))
}

func meetingPreview(d note.MeetingData) string {
	var parts []string
	if d.Date != "" {
		parts = append(parts, d.Date)
	}
	if d.StartTime != "" {
		parts = append(parts, d.StartTime)
	}
	if n := len(d.Attendees); n > 0 {
		parts = append(parts, fmt.Sprintf("%d attendees", n))
	}
	if n := len(d.Agenda); n > 0 {
		parts = append(parts, fmt.Sprintf("%d agenda items", n))
	}
	if n := len(d.ActionItems); n > 0 {
		parts = append(parts, fmt.Sprintf("%d actions", n))
	}
	if len(parts) == 0 {
		return "Meeting"
	}
	return strings.Join(parts, " • ")
}

func journalPreview(d note.JournalData) string {
	var parts []string
	if emoji, ok := note.MoodEmoji(d.Mood); ok {
		parts = append(parts, emoji)
	}
	gratitude := 0
	for _, g := range d.Gratitude {
		if strings.TrimSpace(g) != "" {
			gratitude++
		}
	}
	if gratitude > 0 {
		parts = append(parts, fmt.Sprintf("%d gratitude", gratitude))
	}
	if n := len(d.Highlights); n > 0 {
		parts = append(parts, fmt.Sprintf("%d highlights", n))
	}
	if text := strings.TrimSpace(d.FreeWrite); text != "" {
		parts = append(parts, Truncate(text, 40))
	}
	if len(parts) == 0 {
		return "Journal entry"
	}
	return strings.Join(parts, " • ")
}

func brainstormPreview(d note.BrainstormData) string {
	if len(d.Ideas) == 0 {
		return "No ideas yet"
	}
	var texts []string
	for _, idea := range d.Ideas[:minInt(3, len(d.Ideas))] {
		texts = append(texts, idea.Text)
	}
	return fmt.Sprintf("%d ideas • %s", len(d.Ideas), strings.Join(texts, ", "))
}

func weeklyPreview(d note.WeeklyData) string {
	total, done := 0, 0
	for _, day := range d.Days() {
		for _, t := range day.Tasks {
			total++
			if t.Completed {
				done++
			}
		}
	}
	goals := len(d.WeeklyGoals)
	switch {
	case total == 0 && goals == 0:
		return "Empty week"
	case total == 0:
		return fmt.Sprintf("%d goals", goals)
	}
	return fmt.Sprintf("%d/%d done • %d goals", done, total, goals)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
