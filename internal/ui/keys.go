package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/plumenote/plume/internal/i18n"
)

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Edit     key.Binding
	Escape   key.Binding
	Save     key.Binding
	New      key.Binding
	Delete   key.Binding
	Search   key.Binding
	Pin      key.Binding
	Star     key.Binding
	Archive  key.Binding
	Restore  key.Binding
	View     key.Binding
	Sort     key.Binding
	EditTags key.Binding
	Remind   key.Binding
	Export   key.Binding
	Import   key.Binding
	Quit     key.Binding
	Help     key.Binding
	Tab      key.Binding
}

func NewKeyMap() KeyMap {
	t := i18n.T()
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", t.KeyUp),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", t.KeyDown),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", t.KeyEnter),
		),
		Edit: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", t.KeyEdit),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", t.KeyEscape),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", t.KeySave),
		),
		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("Ctrl+N", t.KeyNew),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", t.KeyDelete),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f", "/"),
			key.WithHelp("Ctrl+F//", t.KeySearch),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", t.KeyPin),
		),
		Star: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", t.KeyStar),
		),
		Archive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", t.KeyArchive),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", t.KeyRestore),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", t.KeyView),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", t.KeySort),
		),
		EditTags: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", t.KeyTags),
		),
		Remind: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", t.KeyRemind),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("Ctrl+E", t.KeyExport),
		),
		Import: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("Ctrl+O", t.KeyImport),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("Ctrl+Q", t.KeyQuit),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h", "?"),
			key.WithHelp("Ctrl+H/?", t.KeyHelp),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next panel"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Edit, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Edit, k.Escape},
		{k.New, k.Delete, k.Save, k.Search, k.EditTags},
		{k.Pin, k.Star, k.Archive, k.Restore, k.View},
		{k.Sort, k.Remind, k.Export, k.Import, k.Quit},
	}
}
