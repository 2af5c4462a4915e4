package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/plumenote/plume/internal/config"
	"github.com/plumenote/plume/internal/db"
	"github.com/plumenote/plume/internal/engine"
	"github.com/plumenote/plume/internal/i18n"
	"github.com/plumenote/plume/internal/note"
	"github.com/plumenote/plume/internal/reminder"
	"github.com/plumenote/plume/internal/transfer"
	"github.com/plumenote/plume/internal/ui"
)

// trashRetention is how long a trashed note is kept before the startup
// sweep removes it for good.
const trashRetention = 30 * 24 * time.Hour

func main() {
	configPath := config.DefaultConfigPath()

	if !config.ConfigExists(configPath) {
		if err := firstTimeSetup(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Setup error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Language != "" {
		i18n.SetLanguage(i18n.Language(cfg.Language))
	}

	database, err := db.New(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T().Error, err)
		os.Exit(1)
	}
	defer database.Close()

	// Expired trash is swept once per launch.
	if _, err := database.EmptyTrash(time.Now().Add(-trashRetention)); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T().Error, err)
	}

	if len(os.Args) > 1 {
		if err := runCommand(database, cfg, os.Args[1], os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T().Error, err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "plume: standard output is not a terminal (see 'plume help' for non-interactive commands)")
		os.Exit(1)
	}

	printLogo()

	eng := engine.New(collationTag(cfg.Language))
	checker := reminder.New(database, cfg.ReminderInterval)

	m := ui.NewModel(database, eng, checker, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T().Error, err)
		os.Exit(1)
	}
}

func collationTag(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und
	}
	return tag
}

func runCommand(database *db.DB, cfg *config.Config, cmd string, args []string) error {
	switch cmd {
	case "import":
		return runImport(database, args)
	case "export":
		return runExport(database, args)
	case "watch":
		return runWatch(database, cfg)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printUsage() {
	fmt.Println("Usage: plume [command]")
	fmt.Println()
	fmt.Println("Without a command, plume starts the interactive interface.")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  import FILE...       import markdown, text or HTML files as notes")
	fmt.Println("  export ID [FORMAT]   print a note as md (default), txt or html")
	fmt.Println("  watch                run the reminder checker in the foreground")
	fmt.Println("  help                 show this help")
}

func runImport(database *db.DB, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no files given")
	}

	var files []transfer.File
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", p, err)
			continue
		}
		files = append(files, transfer.File{Name: p, Data: data})
	}

	ok := 0
	for _, res := range transfer.ImportAll(files) {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Name, res.Err)
			continue
		}
		n, err := database.CreateNote(res.Draft.Title, note.Standard, "")
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}
		n.Content = res.Draft.Content
		n.Tags = res.Draft.Tags
		if err := database.UpdateNote(n); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}
		fmt.Printf("%s -> %s\n", res.Name, n.ID)
		ok++
	}

	fmt.Printf(i18n.T().Imported+"\n", ok, len(paths))
	return nil
}

func runExport(database *db.DB, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no note id given")
	}

	n, err := database.GetNote(args[0])
	if err != nil {
		return err
	}
	if n == nil {
		return fmt.Errorf("note %q not found", args[0])
	}

	format := "md"
	if len(args) > 1 {
		format = args[1]
	}

	switch format {
	case "md", "markdown":
		fmt.Print(transfer.Markdown(n))
	case "txt", "text":
		fmt.Print(transfer.Text(n))
	case "html":
		fmt.Print(transfer.HTML(n))
	default:
		return fmt.Errorf("unknown format %q (want md, txt or html)", format)
	}
	return nil
}

// runWatch keeps the reminder checker running until interrupted,
// printing each firing. Meant for running plume headless.
func runWatch(database *db.DB, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checker := reminder.New(database, cfg.ReminderInterval)

	fmt.Println("watching reminders, Ctrl+C to stop")
	checker.Run(ctx, func(r note.Reminder) {
		n, err := database.GetNote(r.NoteID)
		title := r.NoteID
		if err == nil && n != nil {
			title = n.Title
		}
		fmt.Printf("[%s] 🔔 %s\n", time.Now().Format("15:04"), title)
	})
	return nil
}

func printLogo() {
	fmt.Println()
	fmt.Println("  ██████╗ ██╗     ██╗   ██╗███╗   ███╗███████╗")
	fmt.Println("  ██╔══██╗██║     ██║   ██║████╗ ████║██╔════╝")
	fmt.Println("  ██████╔╝██║     ██║   ██║██╔████╔██║█████╗  ")
	fmt.Println("  ██╔═══╝ ██║     ██║   ██║██║╚██╔╝██║██╔══╝  ")
	fmt.Println("  ██║     ███████╗╚██████╔╝██║ ╚═╝ ██║███████╗")
	fmt.Println("  ╚═╝     ╚══════╝ ╚═════╝ ╚═╝     ╚═╝╚══════╝")
	fmt.Println()
}

func firstTimeSetup(configPath string) error {
	fmt.Println("  Welcome to Plume! / Benvenuto in Plume!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("  Select language / Seleziona lingua:")
	fmt.Println("  [1] English")
	fmt.Println("  [2] Italiano")
	fmt.Print("  > ")

	choice, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	choice = strings.TrimSpace(choice)

	lang := "en"
	if choice == "2" {
		lang = "it"
	}

	i18n.SetLanguage(i18n.Language(lang))

	cfg := &config.Config{
		DBPath:   config.DefaultDBPath(),
		Language: lang,
		Theme:    "dark",
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	if lang == "it" {
		fmt.Println("  Configurazione creata!")
		fmt.Println("  Modifica config.yml per personalizzare.")
	} else {
		fmt.Println("  Configuration created!")
		fmt.Println("  Edit config.yml to customize.")
	}
	fmt.Println()

	return nil
}
