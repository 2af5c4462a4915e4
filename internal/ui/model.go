package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plumenote/plume/internal/config"
	"github.com/plumenote/plume/internal/db"
	"github.com/plumenote/plume/internal/engine"
	"github.com/plumenote/plume/internal/i18n"
	"github.com/plumenote/plume/internal/markup"
	"github.com/plumenote/plume/internal/note"
	"github.com/plumenote/plume/internal/preview"
	"github.com/plumenote/plume/internal/reminder"
	"github.com/plumenote/plume/internal/transfer"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeSearch
	ModeNewNote
	ModeNewType
	ModeConfirmDelete
	ModeEditTags
	ModeRemind
	ModeImport
	ModeHelp
)

type Panel int

const (
	PanelList Panel = iota
	PanelContent
	PanelMetadata
)

// noteTypeChoices is the order offered in the new-note type picker.
var noteTypeChoices = []note.NoteType{
	note.Standard, note.Todo, note.Shopping, note.Project,
	note.Meeting, note.Journal, note.Brainstorm, note.Weekly,
}

type Model struct {
	db      *db.DB
	config  *config.Config
	engine  *engine.Engine
	checker *reminder.Checker

	notes     []note.Note // full collection
	visible   []note.Note // engine output for the current query
	tags      []note.Tag
	folders   []note.Folder
	reminders []note.Reminder // for the selected note
	query     engine.Query

	cursor     int
	listOffset int

	mode        Mode
	activePanel Panel

	textarea  textarea.Model
	textinput textinput.Model

	width  int
	height int

	keys KeyMap

	dirty     bool
	lastSweep time.Time

	status       string
	newTitle     string
	typeCursor   int
	deleteTarget *note.Note

	err error
}

type tickMsg time.Time
type notesLoadedMsg []note.Note
type tagsLoadedMsg []note.Tag
type foldersLoadedMsg []note.Folder
type remindersLoadedMsg []note.Reminder
type errMsg error
type statusMsg string

func NewModel(database *db.DB, eng *engine.Engine, checker *reminder.Checker, cfg *config.Config) Model {
	t := i18n.T()

	ti := textinput.New()
	ti.Placeholder = t.TitlePlaceholder
	ti.CharLimit = 256

	ta := textarea.New()
	ta.ShowLineNumbers = false

	return Model{
		db:          database,
		config:      cfg,
		engine:      eng,
		checker:     checker,
		keys:        NewKeyMap(),
		textinput:   ti,
		textarea:    ta,
		activePanel: PanelList,
		query: engine.Query{
			View: engine.ViewActive,
			Sort: engine.SortMode(cfg.DefaultSort),
		},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadNotes(), m.loadTags(), m.loadFolders(), m.tickCmd())
}

func (m Model) tickCmd() tea.Cmd {
	interval := m.config.AutoSaveInterval
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadNotes() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.db.ListNotes()
		if err != nil {
			return errMsg(err)
		}
		return notesLoadedMsg(notes)
	}
}

func (m Model) loadTags() tea.Cmd {
	return func() tea.Msg {
		tags, err := m.db.ListTags()
		if err != nil {
			return errMsg(err)
		}
		return tagsLoadedMsg(tags)
	}
}

func (m Model) loadFolders() tea.Cmd {
	return func() tea.Msg {
		folders, err := m.db.ListFolders()
		if err != nil {
			return errMsg(err)
		}
		return foldersLoadedMsg(folders)
	}
}

func (m Model) loadReminders() tea.Cmd {
	n := m.current()
	if n == nil {
		return func() tea.Msg { return remindersLoadedMsg(nil) }
	}
	id := n.ID
	return func() tea.Msg {
		reminders, err := m.db.ListReminders(id)
		if err != nil {
			return errMsg(err)
		}
		return remindersLoadedMsg(reminders)
	}
}

func (m Model) checkReminders() tea.Cmd {
	return func() tea.Msg {
		var fired []string
		err := m.checker.CheckOnce(time.Now(), func(r note.Reminder) {
			fired = append(fired, r.NoteID)
		})
		if err != nil {
			return errMsg(err)
		}
		if len(fired) == 0 {
			return nil
		}
		return statusMsg(fmt.Sprintf("🔔 %d reminder(s) due", len(fired)))
	}
}

// refresh recomputes the visible slice from the full collection.
func (m *Model) refresh() {
	m.visible = m.engine.Apply(m.notes, m.query)
	if m.cursor >= len(m.visible) {
		m.cursor = 0
		m.listOffset = 0
	}
}

func (m Model) current() *note.Note {
	if m.cursor >= 0 && m.cursor < len(m.visible) {
		return &m.visible[m.cursor]
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(m.contentWidth() - 4)
		m.textarea.SetHeight(m.contentHeight() - 2)

	case tickMsg:
		if m.dirty && m.mode == ModeEditing {
			cmds = append(cmds, m.saveCurrent())
		}
		interval := m.config.ReminderInterval
		if interval <= 0 {
			interval = reminder.DefaultInterval
		}
		if now := time.Time(msg); now.Sub(m.lastSweep) >= interval {
			m.lastSweep = now
			cmds = append(cmds, m.checkReminders())
		}
		cmds = append(cmds, m.tickCmd())

	case notesLoadedMsg:
		m.notes = msg
		m.dirty = false
		m.refresh()
		cmds = append(cmds, m.loadReminders())

	case tagsLoadedMsg:
		m.tags = msg

	case remindersLoadedMsg:
		m.reminders = msg

	case foldersLoadedMsg:
		m.folders = msg

	case statusMsg:
		m.status = string(msg)

	case errMsg:
		m.err = msg

	case tea.KeyMsg:
		switch m.mode {
		case ModeEditing:
			return m.handleEditingKeys(msg)
		case ModeSearch, ModeNewNote, ModeEditTags, ModeRemind, ModeImport:
			return m.handleInputKeys(msg)
		case ModeNewType:
			return m.handleNewTypeKeys(msg)
		case ModeConfirmDelete:
			return m.handleConfirmDeleteKeys(msg)
		case ModeHelp:
			if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) {
				m.mode = ModeNormal
			}
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := i18n.T()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, m.keys.Up):
		if m.activePanel == PanelList && m.cursor > 0 {
			m.cursor--
			if m.cursor < m.listOffset {
				m.listOffset = m.cursor
			}
			return m, m.loadReminders()
		}

	case key.Matches(msg, m.keys.Down):
		if m.activePanel == PanelList && m.cursor < len(m.visible)-1 {
			m.cursor++
			listHeight := m.contentHeight() - 2
			if m.cursor >= m.listOffset+listHeight {
				m.listOffset = m.cursor - listHeight + 1
			}
			return m, m.loadReminders()
		}

	case key.Matches(msg, m.keys.Edit):
		if n := m.current(); n != nil && n.Type == note.Standard && !n.Deleted {
			m.mode = ModeEditing
			m.textarea.SetValue(n.Content)
			m.textarea.Focus()
		}

	case key.Matches(msg, m.keys.New):
		m.mode = ModeNewNote
		m.textinput.SetValue("")
		m.textinput.Placeholder = t.TitlePlaceholder
		m.textinput.Focus()

	case key.Matches(msg, m.keys.Delete):
		if n := m.current(); n != nil {
			m.deleteTarget = n
			m.mode = ModeConfirmDelete
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.textinput.SetValue(m.query.Search)
		m.textinput.Placeholder = t.Search + "..."
		m.textinput.Focus()

	case key.Matches(msg, m.keys.Pin):
		if n := m.current(); n != nil {
			return m, m.togglePinned(n)
		}

	case key.Matches(msg, m.keys.Star):
		if n := m.current(); n != nil {
			return m, m.toggleStarred(n)
		}

	case key.Matches(msg, m.keys.Archive):
		if n := m.current(); n != nil && !n.Deleted {
			return m, m.toggleArchived(n)
		}

	case key.Matches(msg, m.keys.Restore):
		if n := m.current(); n != nil && n.Deleted {
			return m, m.restore(n)
		}

	case key.Matches(msg, m.keys.View):
		m.query.View = (m.query.View + 1) % 3
		m.cursor = 0
		m.listOffset = 0
		m.refresh()

	case key.Matches(msg, m.keys.Sort):
		m.query.Sort = nextSortMode(m.query.Sort)
		m.refresh()

	case key.Matches(msg, m.keys.EditTags):
		if n := m.current(); n != nil {
			m.mode = ModeEditTags
			var parts []string
			for _, tag := range n.Tags {
				parts = append(parts, "#"+tag)
			}
			m.textinput.SetValue(strings.Join(parts, ";"))
			m.textinput.Focus()
		}

	case key.Matches(msg, m.keys.Remind):
		if n := m.current(); n != nil && !n.Deleted {
			m.mode = ModeRemind
			m.textinput.SetValue("")
			m.textinput.Placeholder = "2026-01-02 15:04"
			m.textinput.Focus()
		}

	case key.Matches(msg, m.keys.Export):
		if n := m.current(); n != nil {
			return m, m.exportNote(n)
		}

	case key.Matches(msg, m.keys.Import):
		m.mode = ModeImport
		m.textinput.SetValue("")
		m.textinput.Placeholder = t.ImportPrompt + "..."
		m.textinput.Focus()

	case key.Matches(msg, m.keys.Tab):
		m.activePanel = (m.activePanel + 1) % 3
	}

	return m, nil
}

func nextSortMode(cur engine.SortMode) engine.SortMode {
	for i, mode := range engine.SortModes {
		if mode == cur {
			return engine.SortModes[(i+1)%len(engine.SortModes)]
		}
	}
	return engine.SortModes[0]
}

func (m Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.textarea.Blur()
		return m, m.saveCurrent()

	case key.Matches(msg, m.keys.Save):
		return m, m.saveCurrent()

	default:
		m.textarea, cmd = m.textarea.Update(msg)
		m.dirty = true
	}

	return m, cmd
}

// handleInputKeys covers every single-line input dialog: search, new
// note title, tag editing and import path.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		mode := m.mode
		m.mode = ModeNormal
		m.textinput.Blur()
		if mode == ModeSearch {
			m.query.Search = ""
			m.refresh()
		}

	case key.Matches(msg, m.keys.Enter):
		value := m.textinput.Value()
		mode := m.mode
		m.mode = ModeNormal
		m.textinput.Blur()

		switch mode {
		case ModeSearch:
			m.query.Search = value
			m.cursor = 0
			m.listOffset = 0
			m.refresh()
		case ModeNewNote:
			if value != "" {
				m.newTitle = value
				m.typeCursor = 0
				m.mode = ModeNewType
			}
		case ModeEditTags:
			return m, m.saveTags(value)
		case ModeRemind:
			if value != "" {
				return m, m.addReminder(value)
			}
		case ModeImport:
			if value != "" {
				return m, m.importFiles(strings.Fields(value))
			}
		}

	default:
		m.textinput, cmd = m.textinput.Update(msg)
	}

	return m, cmd
}

func (m Model) handleNewTypeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal

	case key.Matches(msg, m.keys.Up):
		if m.typeCursor > 0 {
			m.typeCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.typeCursor < len(noteTypeChoices)-1 {
			m.typeCursor++
		}

	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		return m, m.createNote(m.newTitle, noteTypeChoices[m.typeCursor])
	}
	return m, nil
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		target := m.deleteTarget
		m.deleteTarget = nil
		if target == nil {
			return m, nil
		}
		if target.Deleted {
			return m, m.purge(target)
		}
		return m, m.trash(target)
	case "n", "N", "esc":
		m.mode = ModeNormal
		m.deleteTarget = nil
	}
	return m, nil
}

func (m Model) createNote(title string, t note.NoteType) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.db.CreateNote(title, t, m.query.FolderID); err != nil {
			return errMsg(err)
		}
		return m.loadNotes()()
	}
}

func (m Model) saveCurrent() tea.Cmd {
	n := m.current()
	content := m.textarea.Value()
	return func() tea.Msg {
		if n == nil {
			return nil
		}
		updated := *n
		updated.Content = content
		if err := m.db.UpdateNote(&updated); err != nil {
			return errMsg(err)
		}
		return m.loadNotes()()
	}
}

func (m Model) saveTags(tagsStr string) tea.Cmd {
	n := m.current()
	return func() tea.Msg {
		if n == nil {
			return nil
		}
		var tags []string
		for _, t := range strings.Split(tagsStr, ";") {
			t = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "#"))
			if t != "" {
				tags = append(tags, t)
			}
		}
		updated := *n
		updated.Tags = tags
		if err := m.db.UpdateNote(&updated); err != nil {
			return errMsg(err)
		}
		return m.loadNotes()()
	}
}

// addReminder parses "YYYY-MM-DD HH:MM [daily|weekly|monthly]".
func (m Model) addReminder(input string) tea.Cmd {
	n := m.current()
	return func() tea.Msg {
		if n == nil {
			return nil
		}
		fields := strings.Fields(input)
		if len(fields) < 2 {
			return errMsg(fmt.Errorf("invalid reminder %q", input))
		}
		at, err := time.ParseInLocation("2006-01-02 15:04", fields[0]+" "+fields[1], time.Local)
		if err != nil {
			return errMsg(fmt.Errorf("invalid reminder time: %w", err))
		}
		repeat := ""
		if len(fields) > 2 {
			switch fields[2] {
			case "daily", "weekly", "monthly":
				repeat = fields[2]
			default:
				return errMsg(fmt.Errorf("invalid repeat %q", fields[2]))
			}
		}
		if _, err := m.db.AddReminder(n.ID, at, repeat); err != nil {
			return errMsg(err)
		}
		return tea.BatchMsg{
			func() tea.Msg { return statusMsg(fmt.Sprintf(i18n.T().ReminderSet, at.Format("2006-01-02 15:04"))) },
			m.loadReminders(),
		}
	}
}

func (m Model) togglePinned(n *note.Note) tea.Cmd {
	id, next := n.ID, !n.Pinned
	return func() tea.Msg {
		if err := m.db.SetPinned(id, next); err != nil {
			return errMsg(err)
		}
		return m.loadNotes()()
	}
}

func (m Model) toggleStarred(n *note.Note) tea.Cmd {
	id, next := n.ID, !n.Starred
	return func() tea.Msg {
		if err := m.db.SetStarred(id, next); err != nil {
			return errMsg(err)
		}
		return m.loadNotes()()
	}
}

func (m Model) toggleArchived(n *note.Note) tea.Cmd {
	id, archived := n.ID, n.Archived
	return func() tea.Msg {
		var err error
		if archived {
			err = m.db.UnarchiveNote(id)
		} else {
			err = m.db.ArchiveNote(id)
		}
		if err != nil {
			return errMsg(err)
		}
		return m.loadNotes()()
	}
}

func (m Model) restore(n *note.Note) tea.Cmd {
	id := n.ID
	return func() tea.Msg {
		if err := m.db.RestoreNote(id); err != nil {
			return errMsg(err)
		}
		return m.loadNotes()()
	}
}

func (m Model) trash(n *note.Note) tea.Cmd {
	id := n.ID
	return func() tea.Msg {
		if err := m.db.DeleteNote(id); err != nil {
			return errMsg(err)
		}
		return m.loadNotes()()
	}
}

func (m Model) purge(n *note.Note) tea.Cmd {
	id := n.ID
	return func() tea.Msg {
		if err := m.db.PermanentlyDelete(id); err != nil {
			return errMsg(err)
		}
		return m.loadNotes()()
	}
}

func (m Model) exportNote(n *note.Note) tea.Cmd {
	exported := *n
	return func() tea.Msg {
		name := transfer.Filename(exported.Title, "md")
		if err := os.WriteFile(name, []byte(transfer.Markdown(&exported)), 0644); err != nil {
			return errMsg(fmt.Errorf("failed to export note: %w", err))
		}
		return statusMsg(fmt.Sprintf(i18n.T().Exported, name))
	}
}

func (m Model) importFiles(paths []string) tea.Cmd {
	folderID := m.query.FolderID
	return func() tea.Msg {
		var files []transfer.File
		for _, p := range paths {
			data, err := os.ReadFile(p)
			if err != nil {
				// Unreadable files count against the tally below.
				continue
			}
			files = append(files, transfer.File{Name: p, Data: data})
		}

		ok := 0
		for _, res := range transfer.ImportAll(files) {
			if res.Err != nil || res.Draft == nil {
				continue
			}
			n, err := m.db.CreateNote(res.Draft.Title, note.Standard, folderID)
			if err != nil {
				continue
			}
			n.Content = res.Draft.Content
			n.Tags = res.Draft.Tags
			if err := m.db.UpdateNote(n); err != nil {
				continue
			}
			ok++
		}

		// The reload shows whatever succeeded; the status line reports
		// the per-file tally instead of failing the whole batch.
		notes, err := m.db.ListNotes()
		if err != nil {
			return errMsg(err)
		}
		return tea.BatchMsg{
			func() tea.Msg { return notesLoadedMsg(notes) },
			func() tea.Msg { return statusMsg(fmt.Sprintf(i18n.T().Imported, ok, len(paths))) },
		}
	}
}

func (m Model) listWidth() int     { return int(float64(m.width) * 0.30) }
func (m Model) contentWidth() int  { return int(float64(m.width) * 0.45) }
func (m Model) metadataWidth() int { return m.width - m.listWidth() - m.contentWidth() }
func (m Model) contentHeight() int { return m.height - 5 }

func (m Model) View() string {
	t := i18n.T()

	if m.width == 0 {
		return t.Loading
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), m.renderContent(), m.renderMetadata())
	status := m.renderStatus()

	switch m.mode {
	case ModeSearch, ModeNewNote, ModeEditTags, ModeRemind, ModeImport:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderInputDialog())
	case ModeNewType:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderTypeDialog())
	case ModeConfirmDelete:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderConfirmDialog())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func viewTitle(v engine.View) string {
	t := i18n.T()
	switch v {
	case engine.ViewArchive:
		return t.ViewArchive
	case engine.ViewTrash:
		return t.ViewTrash
	}
	return t.ViewActive
}

func (m Model) renderHeader() string {
	title := viewTitle(m.query.View)
	if m.query.Search != "" {
		title += " /" + m.query.Search
	}
	return HeaderStyle.Width(m.width - 2).Render(TitleStyle.Render(title))
}

func (m Model) renderList() string {
	style := PanelStyle
	if m.activePanel == PanelList {
		style = ActivePanelStyle
	}

	var items []string
	listHeight := m.contentHeight() - 2
	maxLen := m.listWidth() - 12

	for i := m.listOffset; i < len(m.visible) && i < m.listOffset+listHeight; i++ {
		n := m.visible[i]

		marker := "  "
		if n.Pinned {
			marker = PinGlyph
		} else if n.Starred {
			marker = StarGlyph + " "
		}

		line := fmt.Sprintf("%s %s", marker, preview.Truncate(n.Title, maxLen))
		if i == m.cursor {
			line = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.Color("#000000")).
				Render("▶ " + line)
		} else {
			line = "  " + line
		}
		items = append(items, line)
	}

	for len(items) < listHeight {
		items = append(items, "")
	}

	return style.Width(m.listWidth() - 2).Height(m.contentHeight()).Render(strings.Join(items, "\n"))
}

func (m Model) renderContent() string {
	t := i18n.T()

	style := PanelStyle
	if m.activePanel == PanelContent {
		style = ActivePanelStyle
	}

	var content string
	if m.mode == ModeEditing {
		content = m.textarea.View()
	} else if n := m.current(); n != nil {
		if n.Type != note.Standard {
			content = markup.ToPlainText(markup.RenderPayload(n.Type, n.Data))
		} else {
			content = markup.ToPlainText(n.Content)
		}
	} else {
		content = MutedStyle.Render(t.NoNoteSelected)
	}

	return style.Width(m.contentWidth() - 2).Height(m.contentHeight()).Render(content)
}

func (m Model) renderMetadata() string {
	t := i18n.T()

	style := PanelStyle
	if m.activePanel == PanelMetadata {
		style = ActivePanelStyle
	}

	var lines []string
	if n := m.current(); n != nil {
		if summary, ok := preview.Preview(n, 60); ok {
			lines = append(lines, MutedStyle.Render(summary), "")
		}

		lines = append(lines, LabelStyle.Render(t.Tags))
		if len(n.Tags) > 0 {
			for _, tag := range n.Tags {
				lines = append(lines, TagStyle.Render("  "+tag))
			}
		} else {
			lines = append(lines, MutedStyle.Render("  "+t.None))
		}

		if n.FolderID != "" {
			for _, f := range m.folders {
				if f.ID == n.FolderID {
					lines = append(lines, "", LabelStyle.Render(t.Folder), MutedStyle.Render("  "+f.Icon+" "+f.Name))
				}
			}
		}

		if len(m.reminders) > 0 {
			lines = append(lines, "", LabelStyle.Render(t.Reminders))
			for _, r := range m.reminders {
				line := "  🔔 " + r.At.Format("2006-01-02 15:04")
				if r.Repeat != "" {
					line += " (" + r.Repeat + ")"
				}
				if r.Notified {
					line = MutedStyle.Render(line)
				}
				lines = append(lines, line)
			}
		}

		lines = append(lines, "", LabelStyle.Render(t.CreatedAt),
			MutedStyle.Render("  "+n.CreatedAt.Format("2006-01-02 15:04")))
		lines = append(lines, "", LabelStyle.Render(t.ModifiedAt),
			MutedStyle.Render("  "+n.UpdatedAt.Format("2006-01-02 15:04")))
	}

	return style.Width(m.metadataWidth() - 2).Height(m.contentHeight()).Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	t := i18n.T()

	left := fmt.Sprintf(" %d %s | %s: %s", len(m.visible), t.Notes, t.SortBy, m.query.Sort)
	if m.status != "" {
		left += " | " + m.status
	}
	if m.err != nil {
		left += " | " + ErrorStyle.Render(m.err.Error())
	}

	right := fmt.Sprintf("Ctrl+H %s | Ctrl+Q %s", t.Help, t.Exit)
	if m.dirty {
		right = "* " + t.Unsaved + " | " + right
	}

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return StatusBarStyle.Render(left + strings.Repeat(" ", padding) + right)
}

func (m Model) renderInputDialog() string {
	t := i18n.T()

	title := t.NewNote
	hint := ""
	switch m.mode {
	case ModeSearch:
		title = t.Search
	case ModeEditTags:
		title = t.Tags
		hint = t.TagsExample
	case ModeRemind:
		title = t.RemindPrompt
		hint = t.RemindExample
	case ModeImport:
		title = t.ImportPrompt
	}

	parts := []string{TitleStyle.Render(title), ""}
	if hint != "" {
		parts = append(parts, MutedStyle.Render(hint), "")
	}
	parts = append(parts, m.textinput.View(), "", MutedStyle.Render(t.EnterConfirm+"  "+t.EscCancel))

	return DialogStyle.Width(50).Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

func (m Model) renderTypeDialog() string {
	t := i18n.T()

	var rows []string
	rows = append(rows, TitleStyle.Render(t.ChooseType), "")
	for i, typ := range noteTypeChoices {
		line := string(typ)
		if i == m.typeCursor {
			line = SelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	rows = append(rows, "", MutedStyle.Render(t.EnterConfirm+"  "+t.EscCancel))

	return DialogStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderConfirmDialog() string {
	t := i18n.T()

	format := t.DeleteConfirm
	if m.deleteTarget != nil && m.deleteTarget.Deleted {
		format = t.PurgeConfirm
	}
	title := ""
	if m.deleteTarget != nil {
		title = m.deleteTarget.Title
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		TitleStyle.Render(t.DeleteNote),
		"",
		fmt.Sprintf(format, title),
		"",
		MutedStyle.Render("[Y] "+t.Yes+"  [N] "+t.No),
	)

	return DialogStyle.Width(44).Render(content)
}

func (m Model) renderHelp() string {
	var b strings.Builder
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(fmt.Sprintf("  %-12s %s\n", binding.Help().Key, binding.Help().Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(MutedStyle.Render("Esc"))

	helpStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlight).
		Padding(1, 2).
		Align(lipgloss.Left)

	return helpStyle.Render(b.String())
}
