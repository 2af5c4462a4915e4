package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "blockquote": true, "pre": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "br": true, "hr": true, "ul": true, "ol": true, "table": true,
}

var multiBlank = regexp.MustCompile(`\n{2,}`)

// ToPlainText parses rich markup and returns only its text content.
// Malformed markup never fails: the parser recovers, and in the worst
// case the text comes back unstyled but intact.
func ToPlainText(markup string) string {
	if markup == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		// html.Parse only errors on reader failure, not bad markup.
		return strings.TrimSpace(regexp.MustCompile(`<[^>]+>`).ReplaceAllString(markup, ""))
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteString("\n")
		}
	}
	walk(doc)

	return strings.TrimSpace(multiBlank.ReplaceAllString(b.String(), "\n"))
}
