package markup

import (
	"fmt"
	"html"
	"strings"

	"github.com/plumenote/plume/internal/note"
)

const noContent = "<p>No content</p>"

// Glyphs used by the export renderers. Fixed so exports are stable.
const (
	glyphChecked   = "✓"
	glyphUnchecked = "☐"
)

func priorityGlyph(p string) string {
	switch strings.ToLower(p) {
	case "high":
		return "🔴"
	case "medium":
		return "🟡"
	case "low":
		return "🟢"
	}
	return ""
}

func checkGlyph(done bool) string {
	if done {
		return glyphChecked
	}
	return glyphUnchecked
}

// RenderPayload renders a typed payload as a self-contained markup
// fragment for export. Empty or missing sub-collections render a
// placeholder or are omitted; it never fails.
func RenderPayload(t note.NoteType, p note.Payload) string {
	if p == nil {
		return noContent
	}
	switch d := p.(type) {
	case note.TodoData:
		return renderTodo(d)
	case note.ShoppingData:
		return renderShopping(d)
	case note.ProjectData:
		return renderProject(d)
	case note.MeetingData:
		return renderMeeting(d)
	case note.JournalData:
		return renderJournal(d)
	case note.BrainstormData:
		return renderBrainstorm(d)
	case note.WeeklyData:
		return renderWeekly(d)
	}
	return noContent
}

func esc(s string) string { return html.EscapeString(s) }

func renderTodo(d note.TodoData) string {
	if len(d.Tasks) == 0 {
		return "<p>No tasks</p>"
	}
	var b strings.Builder
	b.WriteString("<h2>Tasks</h2>\n<table>\n<tr><th></th><th>Task</th><th>Priority</th><th>Due</th></tr>\n")
	for _, t := range d.Tasks {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s %s</td><td>%s</td></tr>\n",
			checkGlyph(t.Completed), esc(t.Text), priorityGlyph(t.Priority), esc(t.Priority), esc(t.DueDate))
		for _, st := range t.Subtasks {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>&nbsp;&nbsp;%s</td><td></td><td></td></tr>\n",
				checkGlyph(st.Completed), esc(st.Text))
		}
	}
	b.WriteString("</table>\n")
	return b.String()
}

func renderShopping(d note.ShoppingData) string {
	if len(d.Items) == 0 {
		return "<p>No items</p>"
	}
	currency := d.Currency
	if currency == "" {
		currency = "$"
	}

	byCategory := map[string][]note.ShoppingItem{}
	var order []string
	for _, it := range d.Items {
		cat := it.Category
		if cat == "" {
			cat = "Other"
		}
		if _, ok := byCategory[cat]; !ok {
			order = append(order, cat)
		}
		byCategory[cat] = append(byCategory[cat], it)
	}

	var b strings.Builder
	b.WriteString("<h2>Shopping List</h2>\n")
	var total float64
	for _, cat := range order {
		fmt.Fprintf(&b, "<h3>%s</h3>\n<table>\n<tr><th></th><th>Item</th><th>Qty</th><th>Price</th></tr>\n", esc(cat))
		for _, it := range byCategory[cat] {
			qty := it.Quantity
			if qty <= 0 {
				qty = 1
			}
			line := it.Price * qty
			total += line
			price := ""
			if it.Price > 0 {
				price = fmt.Sprintf("%s%.2f", currency, line)
			}
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s %s</td><td>%s</td></tr>\n",
				checkGlyph(it.Checked), esc(it.Name), trimFloat(qty), esc(it.Unit), price)
		}
		b.WriteString("</table>\n")
	}
	if total > 0 {
		fmt.Fprintf(&b, "<p><strong>Total: %s%.2f</strong></p>\n", currency, total)
	}
	if d.Budget > 0 {
		fmt.Fprintf(&b, "<p>Budget: %s%.2f</p>\n", currency, d.Budget)
	}
	return b.String()
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	return s
}

func renderProject(d note.ProjectData) string {
	var b strings.Builder
	if len(d.Columns) == 0 {
		b.WriteString("<p>No columns</p>\n")
	}
	for _, col := range d.Columns {
		fmt.Fprintf(&b, "<h2>%s (%d)</h2>\n", esc(col.Name), len(col.Tasks))
		if len(col.Tasks) == 0 {
			b.WriteString("<p>No tasks</p>\n")
			continue
		}
		b.WriteString("<ul>\n")
		for _, t := range col.Tasks {
			fmt.Fprintf(&b, "<li>%s %s %s</li>\n", checkGlyph(t.Completed), priorityGlyph(t.Priority), esc(t.Text))
		}
		b.WriteString("</ul>\n")
	}
	if len(d.Milestones) > 0 {
		b.WriteString("<h2>Milestones</h2>\n<ul>\n")
		for _, m := range d.Milestones {
			fmt.Fprintf(&b, "<li>%s %s %s</li>\n", checkGlyph(m.Done), esc(m.Name), esc(m.DueDate))
		}
		b.WriteString("</ul>\n")
	}
	if len(d.Team) > 0 {
		fmt.Fprintf(&b, "<h2>Team</h2>\n<p>%s</p>\n", esc(strings.Join(d.Team, ", ")))
	}
	return b.String()
}

func renderMeeting(d note.MeetingData) string {
	var b strings.Builder
	if d.Title != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", esc(d.Title))
	}
	when := strings.TrimSpace(d.Date + " " + d.StartTime)
	if when != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", esc(when))
	}
	if len(d.Attendees) > 0 {
		fmt.Fprintf(&b, "<h3>Attendees</h3>\n<p>%s</p>\n", esc(strings.Join(d.Attendees, ", ")))
	}
	if len(d.Agenda) > 0 {
		b.WriteString("<h3>Agenda</h3>\n<ol>\n")
		for _, item := range d.Agenda {
			fmt.Fprintf(&b, "<li>%s</li>\n", esc(item))
		}
		b.WriteString("</ol>\n")
	}
	if d.Notes != "" {
		fmt.Fprintf(&b, "<h3>Notes</h3>\n<p>%s</p>\n", esc(d.Notes))
	}
	if len(d.ActionItems) > 0 {
		b.WriteString("<h3>Action Items</h3>\n<ul>\n")
		for _, a := range d.ActionItems {
			owner := ""
			if a.Owner != "" {
				owner = " — " + esc(a.Owner)
			}
			fmt.Fprintf(&b, "<li>%s %s%s</li>\n", checkGlyph(a.Done), esc(a.Text), owner)
		}
		b.WriteString("</ul>\n")
	}
	if len(d.Decisions) > 0 {
		b.WriteString("<h3>Decisions</h3>\n<ul>\n")
		for _, dec := range d.Decisions {
			fmt.Fprintf(&b, "<li>%s</li>\n", esc(dec))
		}
		b.WriteString("</ul>\n")
	}
	if b.Len() == 0 {
		return noContent
	}
	return b.String()
}

func renderJournal(d note.JournalData) string {
	var b strings.Builder
	if d.Date != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", esc(d.Date))
	}
	if emoji, ok := note.MoodEmoji(d.Mood); ok {
		fmt.Fprintf(&b, "<p>Mood: %s (%d/5)</p>\n", emoji, d.Mood)
	}
	if d.Energy >= 1 && d.Energy <= 5 {
		fmt.Fprintf(&b, "<p>Energy: %d/5</p>\n", d.Energy)
	}
	gratitude := nonBlank(d.Gratitude)
	if len(gratitude) > 0 {
		b.WriteString("<h3>Gratitude</h3>\n<ul>\n")
		for _, g := range gratitude {
			fmt.Fprintf(&b, "<li>%s</li>\n", esc(g))
		}
		b.WriteString("</ul>\n")
	}
	if highlights := nonBlank(d.Highlights); len(highlights) > 0 {
		b.WriteString("<h3>Highlights</h3>\n<ul>\n")
		for _, h := range highlights {
			fmt.Fprintf(&b, "<li>%s</li>\n", esc(h))
		}
		b.WriteString("</ul>\n")
	}
	for _, section := range []struct{ title, body string }{
		{"Challenges", d.Challenges},
		{"Lessons", d.Lessons},
		{"Free Write", d.FreeWrite},
	} {
		if strings.TrimSpace(section.body) != "" {
			fmt.Fprintf(&b, "<h3>%s</h3>\n<p>%s</p>\n", section.title, esc(section.body))
		}
	}
	if b.Len() == 0 {
		return noContent
	}
	return b.String()
}

func renderBrainstorm(d note.BrainstormData) string {
	var b strings.Builder
	if d.Topic != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", esc(d.Topic))
	}
	if len(d.Ideas) == 0 {
		b.WriteString("<p>No ideas yet</p>\n")
		return b.String()
	}
	b.WriteString("<ol>\n")
	for _, idea := range d.Ideas {
		star := ""
		if idea.Starred {
			star = " ★"
		}
		votes := ""
		if idea.Votes > 0 {
			votes = fmt.Sprintf(" (%d votes)", idea.Votes)
		}
		fmt.Fprintf(&b, "<li>%s%s%s</li>\n", esc(idea.Text), votes, star)
	}
	b.WriteString("</ol>\n")
	return b.String()
}

func renderWeekly(d note.WeeklyData) string {
	var b strings.Builder
	if d.WeekStart != "" {
		fmt.Fprintf(&b, "<h2>Week of %s</h2>\n", esc(d.WeekStart))
	}
	if goals := nonBlank(d.WeeklyGoals); len(goals) > 0 {
		b.WriteString("<h3>Goals</h3>\n<ul>\n")
		for _, g := range goals {
			fmt.Fprintf(&b, "<li>%s</li>\n", esc(g))
		}
		b.WriteString("</ul>\n")
	}
	for i, day := range d.Days() {
		if len(day.Tasks) == 0 && len(day.Events) == 0 && day.Note == "" {
			continue
		}
		fmt.Fprintf(&b, "<h3>%s</h3>\n", note.DayNames[i])
		if len(day.Tasks) > 0 {
			b.WriteString("<ul>\n")
			for _, t := range day.Tasks {
				fmt.Fprintf(&b, "<li>%s %s</li>\n", checkGlyph(t.Completed), esc(t.Text))
			}
			b.WriteString("</ul>\n")
		}
		for _, ev := range day.Events {
			fmt.Fprintf(&b, "<p>📅 %s</p>\n", esc(ev))
		}
		if day.Note != "" {
			fmt.Fprintf(&b, "<p>%s</p>\n", esc(day.Note))
		}
	}
	if d.Review != "" {
		fmt.Fprintf(&b, "<h3>Review</h3>\n<p>%s</p>\n", esc(d.Review))
	}
	if b.Len() == 0 {
		return noContent
	}
	return b.String()
}

func nonBlank(ss []string) []string {
	var out []string
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
