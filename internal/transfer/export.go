package transfer

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/plumenote/plume/internal/markup"
	"github.com/plumenote/plume/internal/note"
)

// body resolves a note's exportable markup: typed notes render their
// payload, standard notes use their content directly.
func body(n *note.Note) string {
	if n.Type != note.Standard && n.Data != nil {
		return markup.RenderPayload(n.Type, n.Data)
	}
	return n.Content
}

// Markdown assembles the Markdown export document.
func Markdown(n *note.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", n.Title)
	if len(n.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: #%s\n\n", strings.Join(n.Tags, " #"))
	}
	b.WriteString("---\n\n")
	b.WriteString(markup.ToMarkdown(body(n)))
	b.WriteString("\n")
	return b.String()
}

// Text assembles the plain-text export document.
func Text(n *note.Note) string {
	var b strings.Builder
	b.WriteString(n.Title + "\n")
	b.WriteString(strings.Repeat("=", len([]rune(n.Title))) + "\n\n")
	if len(n.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(n.Tags, ", "))
	}
	b.WriteString(markup.ToPlainText(body(n)))
	b.WriteString("\n")
	return b.String()
}

// HTML assembles a standalone document with inline styling. The PDF
// export path feeds this same document to the host's print facility.
func HTML(n *note.Note) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(n.Title))
	b.WriteString(`<style>
body { font-family: sans-serif; max-width: 720px; margin: 2em auto; color: #1a1a1a; }
.tag { display: inline-block; background: #eee; border-radius: 3px; padding: 2px 8px; margin-right: 4px; font-size: 0.85em; }
.content { margin-top: 1.5em; line-height: 1.6; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
</style>
`)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(n.Title))
	for _, tag := range n.Tags {
		fmt.Fprintf(&b, `<span class="tag">%s</span>`, html.EscapeString(tag))
	}
	if len(n.Tags) > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "<div class=\"content\">%s</div>\n", body(n))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9]+`)

const maxFilenameLen = 50

// Filename derives an export filename from the note title: unsafe runs
// become underscores and the stem is capped at 50 characters.
func Filename(title, ext string) string {
	stem := unsafeFilenameRe.ReplaceAllString(title, "_")
	stem = strings.Trim(stem, "_")
	if stem == "" {
		stem = "note"
	}
	if len(stem) > maxFilenameLen {
		stem = stem[:maxFilenameLen]
	}
	return stem + "." + strings.TrimPrefix(ext, ".")
}
