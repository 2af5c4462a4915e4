// Package transfer handles moving notes in and out of the app as files.
package transfer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/plumenote/plume/internal/markup"
)

const maxImportTitle = 100

// Draft is an imported note before it is stored. The caller assigns the
// current folder context.
type Draft struct {
	Title   string
	Content string
	Tags    []string
}

// Result is the per-file outcome of a batch import. One bad file never
// aborts the rest.
type Result struct {
	Name  string
	Draft *Draft
	Err   error
}

// File pairs a filename with its raw contents, as handed over by the
// host's file picker or CLI args.
type File struct {
	Name string
	Data []byte
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ImportAll imports a batch; each file gets its own success or error.
func ImportAll(files []File) []Result {
	results := make([]Result, 0, len(files))
	for _, f := range files {
		draft, err := ImportFile(f.Name, f.Data)
		results = append(results, Result{Name: f.Name, Draft: draft, Err: err})
	}
	return results
}

// ImportFile parses one file by extension. Unsupported extensions fail
// with an error scoped to that file.
func ImportFile(name string, data []byte) (*Draft, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	text := string(data)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return importMarkdown(name, text), nil
	case ".txt":
		return importText(name, text), nil
	case ".html", ".htm":
		return importHTML(name, text), nil
	}
	return nil, fmt.Errorf("unsupported format %q", filepath.Ext(name))
}

var (
	hashTagRe      = regexp.MustCompile(`#([\w-]+)`)
	underlineRowRe = regexp.MustCompile(`^[=-]{2,}$`)
)

func importMarkdown(name, text string) *Draft {
	d := &Draft{Title: defaultTitle(name)}

	var body []string
	titleFound := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !titleFound && strings.HasPrefix(trimmed, "# ") {
			d.Title = clampTitle(strings.TrimPrefix(trimmed, "# "))
			titleFound = true
			continue
		}
		if strings.HasPrefix(trimmed, "Tags:") && len(d.Tags) == 0 {
			for _, m := range hashTagRe.FindAllStringSubmatch(trimmed, -1) {
				d.Tags = append(d.Tags, m[1])
			}
			if len(d.Tags) > 0 {
				continue
			}
		}
		body = append(body, line)
	}

	d.Content = markup.FromMarkdown(strings.TrimSpace(strings.Join(body, "\n")))
	return d
}

func importText(name, text string) *Draft {
	d := &Draft{Title: defaultTitle(name)}

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
		d.Title = clampTitle(strings.TrimLeft(strings.TrimSpace(lines[0]), "=-# \t"))
		lines = lines[1:]
		// A setext-style underline row belongs to the title.
		if len(lines) > 0 && underlineRowRe.MatchString(strings.TrimSpace(lines[0])) {
			lines = lines[1:]
		}
	}

	var body []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Tags:") && len(d.Tags) == 0 {
			for _, t := range strings.Split(strings.TrimPrefix(trimmed, "Tags:"), ",") {
				if t = strings.TrimSpace(t); t != "" {
					d.Tags = append(d.Tags, t)
				}
			}
			continue
		}
		body = append(body, line)
	}

	// Blank-line separated paragraphs, each wrapped in a paragraph tag.
	var b strings.Builder
	for _, para := range strings.Split(strings.TrimSpace(strings.Join(body, "\n")), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(para))
		b.WriteString("</p>\n")
	}
	d.Content = strings.TrimSpace(b.String())
	return d
}

var (
	docWrapperRe = regexp.MustCompile(`(?is)<!doctype[^>]*>|</?html[^>]*>|<head[^>]*>.*?</head>|</?body[^>]*>`)
	dataTagsRe   = regexp.MustCompile(`(?i)data-tags="([^"]*)"`)
)

func importHTML(name, text string) *Draft {
	d := &Draft{Title: defaultTitle(name)}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		// Parser failure: strip the document wrapper and keep the rest.
		d.Content = strings.TrimSpace(docWrapperRe.ReplaceAllString(text, ""))
		return d
	}

	if title := findTitle(doc); title != "" {
		d.Title = clampTitle(title)
	}
	if m := dataTagsRe.FindStringSubmatch(text); m != nil {
		for _, t := range strings.Split(m[1], ",") {
			if t = strings.TrimSpace(t); t != "" {
				d.Tags = append(d.Tags, t)
			}
		}
	}

	if body := findNode(doc, "body"); body != nil {
		var b strings.Builder
		for c := body.FirstChild; c != nil; c = c.NextSibling {
			html.Render(&b, c)
		}
		d.Content = strings.TrimSpace(b.String())
	} else {
		d.Content = strings.TrimSpace(docWrapperRe.ReplaceAllString(text, ""))
	}
	return d
}

// findTitle prefers <title>, then the first <h1>.
func findTitle(doc *html.Node) string {
	if n := findNode(doc, "title"); n != nil {
		if t := strings.TrimSpace(textOf(n)); t != "" {
			return t
		}
	}
	if n := findNode(doc, "h1"); n != nil {
		return strings.TrimSpace(textOf(n))
	}
	return ""
}

func findNode(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func defaultTitle(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" {
		return "Imported note"
	}
	return clampTitle(base)
}

func clampTitle(title string) string {
	title = strings.TrimSpace(title)
	runes := []rune(title)
	if len(runes) > maxImportTitle {
		return string(runes[:maxImportTitle])
	}
	return title
}
