package i18n

type Language string

const (
	English Language = "en"
	Italian Language = "it"
)

var currentLang = English

type Messages struct {
	// General
	Loading        string
	Error          string
	Yes            string
	No             string
	None           string
	Notes          string
	Help           string
	Exit           string
	NoNoteSelected string

	// Views
	ViewActive  string
	ViewArchive string
	ViewTrash   string

	// Metadata
	Tags       string
	Folder     string
	CreatedAt  string
	ModifiedAt string
	Reminders  string

	// Dialogs
	NewNote          string
	ChooseType       string
	DeleteNote       string
	DeleteConfirm    string
	PurgeConfirm     string
	Search           string
	ImportPrompt     string
	RemindPrompt     string
	RemindExample    string
	TitlePlaceholder string
	TagsExample      string
	EnterConfirm     string
	EscCancel        string

	// Status
	Unsaved     string
	Exported    string
	Imported    string
	ReminderSet string
	SortBy      string

	// Key help
	KeyUp      string
	KeyDown    string
	KeyEnter   string
	KeyEdit    string
	KeyEscape  string
	KeySave    string
	KeyNew     string
	KeyDelete  string
	KeySearch  string
	KeyPin     string
	KeyStar    string
	KeyArchive string
	KeyRestore string
	KeyView    string
	KeySort    string
	KeyTags    string
	KeyRemind  string
	KeyExport  string
	KeyImport  string
	KeyQuit    string
	KeyHelp    string
}

var english = Messages{
	Loading:        "Loading...",
	Error:          "Error",
	Yes:            "Yes",
	No:             "No",
	None:           "none",
	Notes:          "notes",
	Help:           "help",
	Exit:           "quit",
	NoNoteSelected: "No note selected",

	ViewActive:  "Notes",
	ViewArchive: "Archive",
	ViewTrash:   "Trash",

	Tags:       "Tags",
	Folder:     "Folder",
	CreatedAt:  "Created",
	ModifiedAt: "Modified",
	Reminders:  "Reminders",

	NewNote:          "New note",
	ChooseType:       "Note type",
	DeleteNote:       "Delete note",
	DeleteConfirm:    "Move %q to the trash?",
	PurgeConfirm:     "Permanently delete %q? This cannot be undone.",
	Search:           "Search",
	ImportPrompt:     "File to import",
	RemindPrompt:     "Remind at",
	RemindExample:    "Example: 2026-09-02 09:00 daily",
	TitlePlaceholder: "Title...",
	TagsExample:      "Example: #tag1;#tag2",
	EnterConfirm:     "[Enter] Confirm",
	EscCancel:        "[Esc] Cancel",

	Unsaved:     "unsaved",
	Exported:    "exported to %s",
	Imported:    "imported %d of %d files",
	ReminderSet: "reminder set for %s",
	SortBy:      "sort",

	KeyUp:      "up",
	KeyDown:    "down",
	KeyEnter:   "open",
	KeyEdit:    "edit",
	KeyEscape:  "back",
	KeySave:    "save",
	KeyNew:     "new note",
	KeyDelete:  "delete",
	KeySearch:  "search",
	KeyPin:     "pin",
	KeyStar:    "star",
	KeyArchive: "archive",
	KeyRestore: "restore",
	KeyView:    "switch view",
	KeySort:    "cycle sort",
	KeyTags:    "edit tags",
	KeyRemind:  "set reminder",
	KeyExport:  "export",
	KeyImport:  "import",
	KeyQuit:    "quit",
	KeyHelp:    "help",
}

var italian = Messages{
	Loading:        "Caricamento...",
	Error:          "Errore",
	Yes:            "Sì",
	No:             "No",
	None:           "nessuno",
	Notes:          "note",
	Help:           "aiuto",
	Exit:           "esci",
	NoNoteSelected: "Nessuna nota selezionata",

	ViewActive:  "Note",
	ViewArchive: "Archivio",
	ViewTrash:   "Cestino",

	Tags:       "Tag",
	Folder:     "Cartella",
	CreatedAt:  "Creata",
	ModifiedAt: "Modificata",
	Reminders:  "Promemoria",

	NewNote:          "Nuova nota",
	ChooseType:       "Tipo di nota",
	DeleteNote:       "Elimina nota",
	DeleteConfirm:    "Spostare %q nel cestino?",
	PurgeConfirm:     "Eliminare definitivamente %q? Non si può annullare.",
	Search:           "Cerca",
	ImportPrompt:     "File da importare",
	RemindPrompt:     "Promemoria alle",
	RemindExample:    "Esempio: 2026-09-02 09:00 daily",
	TitlePlaceholder: "Titolo...",
	TagsExample:      "Esempio: #tag1;#tag2",
	EnterConfirm:     "[Enter] Conferma",
	EscCancel:        "[Esc] Annulla",

	Unsaved:     "non salvato",
	Exported:    "esportato in %s",
	Imported:    "importati %d file su %d",
	ReminderSet: "promemoria impostato per %s",
	SortBy:      "ordina",

	KeyUp:      "su",
	KeyDown:    "giù",
	KeyEnter:   "apri",
	KeyEdit:    "modifica",
	KeyEscape:  "indietro",
	KeySave:    "salva",
	KeyNew:     "nuova nota",
	KeyDelete:  "elimina",
	KeySearch:  "cerca",
	KeyPin:     "fissa",
	KeyStar:    "preferita",
	KeyArchive: "archivia",
	KeyRestore: "ripristina",
	KeyView:    "cambia vista",
	KeySort:    "ordinamento",
	KeyTags:    "modifica tag",
	KeyRemind:  "imposta promemoria",
	KeyExport:  "esporta",
	KeyImport:  "importa",
	KeyQuit:    "esci",
	KeyHelp:    "aiuto",
}

func SetLanguage(lang Language) {
	currentLang = lang
}

func T() Messages {
	if currentLang == Italian {
		return italian
	}
	return english
}
