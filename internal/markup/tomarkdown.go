package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// A pass is one named rewrite step. ToMarkdown runs the passes in slice
// order; several of them only work because an earlier pass already ran
// (task-list items must go before generic list items, tag stripping must
// go last), so the order is part of the contract and tested as such.
type pass struct {
	name  string
	apply func(string) string
}

func rewrite(pattern, repl string) func(string) string {
	re := regexp.MustCompile(pattern)
	return func(s string) string { return re.ReplaceAllString(s, repl) }
}

var blockquoteRe = regexp.MustCompile(`(?is)<blockquote[^>]*>(.*?)</blockquote>`)

var toMarkdownPasses = []pass{
	{"headings", func(s string) string {
		for level := 1; level <= 6; level++ {
			re := regexp.MustCompile(fmt.Sprintf(`(?is)<h%d[^>]*>(.*?)</h%d>`, level, level))
			s = re.ReplaceAllString(s, "\n"+strings.Repeat("#", level)+" $1\n\n")
		}
		return s
	}},
	{"code-blocks", rewrite(`(?is)<pre[^>]*>\s*(?:<code[^>]*>)?(.*?)(?:</code>)?\s*</pre>`, "\n```\n$1\n```\n\n")},
	{"inline-code", rewrite(`(?is)<code[^>]*>(.*?)</code>`, "`$1`")},
	{"bold", rewrite(`(?is)<(?:b|strong)[^>]*>(.*?)</(?:b|strong)>`, "**$1**")},
	{"italic", rewrite(`(?is)<(?:i|em)[^>]*>(.*?)</(?:i|em)>`, "*$1*")},
	{"underline", rewrite(`(?is)<u[^>]*>(.*?)</u>`, "_$1_")},
	{"strikethrough", rewrite(`(?is)<(?:s|strike|del)[^>]*>(.*?)</(?:s|strike|del)>`, "~~$1~~")},
	{"images", func(s string) string {
		imgRe := regexp.MustCompile(`(?i)<img\b[^>]*>`)
		return imgRe.ReplaceAllStringFunc(s, func(tag string) string {
			return fmt.Sprintf("![%s](%s)", attr(tag, "alt"), attr(tag, "src"))
		})
	}},
	{"links", func(s string) string {
		linkRe := regexp.MustCompile(`(?is)<a\b[^>]*>(.*?)</a>`)
		return linkRe.ReplaceAllStringFunc(s, func(m string) string {
			openEnd := strings.Index(m, ">")
			text := linkRe.FindStringSubmatch(m)[1]
			return fmt.Sprintf("[%s](%s)", text, attr(m[:openEnd+1], "href"))
		})
	}},
	// Checked state comes from a data-checked attribute on the item, the
	// form the editor stores for task lists.
	{"task-items", func(s string) string {
		s = regexp.MustCompile(`(?is)<li[^>]*data-checked="true"[^>]*>(.*?)</li>`).ReplaceAllString(s, "- [x] $1\n")
		s = regexp.MustCompile(`(?is)<li[^>]*data-checked="false"[^>]*>(.*?)</li>`).ReplaceAllString(s, "- [ ] $1\n")
		return s
	}},
	{"list-items", rewrite(`(?is)<li[^>]*>(.*?)</li>`, "- $1\n")},
	{"list-wrappers", rewrite(`(?i)</?(?:ul|ol)[^>]*>`, "\n")},
	{"blockquotes", func(s string) string {
		return blockquoteRe.ReplaceAllStringFunc(s, func(m string) string {
			inner := blockquoteRe.FindStringSubmatch(m)[1]
			var b strings.Builder
			for _, line := range strings.Split(strings.TrimSpace(inner), "\n") {
				b.WriteString("> ")
				b.WriteString(strings.TrimSpace(line))
				b.WriteString("\n")
			}
			b.WriteString("\n")
			return b.String()
		})
	}},
	{"horizontal-rules", rewrite(`(?i)<hr[^>]*/?>`, "\n---\n\n")},
	{"paragraphs", rewrite(`(?is)<p[^>]*>(.*?)</p>`, "$1\n\n")},
	{"line-breaks", rewrite(`(?i)<br[^>]*/?>`, "\n")},
	{"divs", rewrite(`(?i)</?div[^>]*>`, "\n")},
	{"strip-tags", rewrite(`<[^>]+>`, "")},
	{"entities", unescapeEntities},
	{"collapse-blanks", rewrite(`\n{3,}`, "\n\n")},
}

// ToMarkdown rewrites rich markup into Markdown. It is intentionally
// lossy: anything without a Markdown equivalent is stripped.
func ToMarkdown(markup string) string {
	if markup == "" {
		return ""
	}
	s := markup
	for _, p := range toMarkdownPasses {
		s = p.apply(s)
	}
	return strings.TrimSpace(s)
}

var attrRe = regexp.MustCompile(`(?i)\b(src|alt|href)\s*=\s*"([^"]*)"`)

// attr extracts a double-quoted attribute value from a single tag.
func attr(tag, name string) string {
	for _, m := range attrRe.FindAllStringSubmatch(tag, -1) {
		if strings.EqualFold(m[1], name) {
			return m[2]
		}
	}
	return ""
}

var entities = []struct{ from, to string }{
	{"&nbsp;", " "},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&amp;", "&"}, // last, so "&amp;lt;" stays "&lt;"
}

func unescapeEntities(s string) string {
	for _, e := range entities {
		s = strings.ReplaceAll(s, e.from, e.to)
	}
	return s
}
