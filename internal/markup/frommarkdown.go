package markup

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	fencedCodeRe = regexp.MustCompile("(?s)```([a-zA-Z0-9+-]*)\\n(.*?)\\n?```")
	inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")

	// Triple before double before single, or the greedy shorter forms
	// would eat the longer delimiters.
	boldItalicRe = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^*]+)\*`)
	underBoldRe  = regexp.MustCompile(`___([^_]+)___`)
	strongAltRe  = regexp.MustCompile(`__([^_]+)__`)
	underlineRe  = regexp.MustCompile(`_([^_]+)_`)
	strikeRe     = regexp.MustCompile(`~~([^~]+)~~`)

	// Image syntax is link syntax with a leading bang, so it must be
	// rewritten first.
	imageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkRe  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	hrLineRe        = regexp.MustCompile(`^\s*(-{3,}|\*{3,}|_{3,})\s*$`)
	checkedItemRe   = regexp.MustCompile(`^\s*[-*+] \[[xX]\] (.*)$`)
	uncheckedItemRe = regexp.MustCompile(`^\s*[-*+] \[ \] (.*)$`)
	bulletItemRe    = regexp.MustCompile(`^\s*[-*+] (.*)$`)
	orderedItemRe   = regexp.MustCompile(`^\s*\d+[.)] (.*)$`)
	headingLineRe   = regexp.MustCompile(`^(#{1,6}) (.*)$`)
	// Quote markers were entity-escaped with the rest of the text.
	quoteLineRe = regexp.MustCompile(`^&gt; ?(.*)$`)

	placeholderRe = regexp.MustCompile("\x00[0-9]+\x00")
)

// FromMarkdown converts Markdown into rich markup for import. Best
// effort: unknown constructs pass through as escaped text.
func FromMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}

	s := md
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")

	// Code segments are stashed behind placeholders so the inline
	// passes below cannot restyle their contents, and restored before
	// block assembly.
	var stash []string
	keep := func(markup string) string {
		stash = append(stash, markup)
		return fmt.Sprintf("\x00%d\x00", len(stash)-1)
	}
	s = fencedCodeRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := fencedCodeRe.FindStringSubmatch(m)
		if sub[1] != "" {
			return keep(fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`, sub[1], sub[2]))
		}
		return keep(fmt.Sprintf("<pre><code>%s</code></pre>", sub[2]))
	})
	s = inlineCodeRe.ReplaceAllStringFunc(s, func(m string) string {
		return keep("<code>" + inlineCodeRe.FindStringSubmatch(m)[1] + "</code>")
	})

	s = boldItalicRe.ReplaceAllString(s, "<strong><em>$1</em></strong>")
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	s = underBoldRe.ReplaceAllString(s, "<u><strong>$1</strong></u>")
	s = strongAltRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = underlineRe.ReplaceAllString(s, "<u>$1</u>")
	s = strikeRe.ReplaceAllString(s, "<s>$1</s>")

	s = imageRe.ReplaceAllString(s, `<img src="$2" alt="$1">`)
	s = linkRe.ReplaceAllString(s, `<a href="$2">$1</a>`)

	s = placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		var i int
		fmt.Sscanf(m, "\x00%d\x00", &i)
		return stash[i]
	})

	return assembleBlocks(strings.Split(s, "\n"))
}

// assembleBlocks turns rewritten lines into block-level markup: headings,
// rules, quote runs, grouped lists, and paragraphs for everything else.
func assembleBlocks(lines []string) string {
	var out strings.Builder
	var listItems []string
	var listTag string
	var quoteLines []string

	flushList := func() {
		if len(listItems) == 0 {
			return
		}
		out.WriteString("<" + listTag + ">")
		for _, it := range listItems {
			out.WriteString(it)
		}
		out.WriteString("</" + listTag + ">\n")
		listItems = nil
	}
	flushQuote := func() {
		if len(quoteLines) == 0 {
			return
		}
		// Adjacent quote lines merge into one blockquote with breaks.
		out.WriteString("<blockquote>" + strings.Join(quoteLines, "<br>") + "</blockquote>\n")
		quoteLines = nil
	}

	startList := func(tag string) {
		if listTag != tag {
			flushList()
			listTag = tag
		}
	}

	inPre := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Fenced blocks were rewritten to <pre> markup that still spans
		// multiple raw lines; pass them through untouched.
		if inPre {
			out.WriteString(line + "\n")
			if strings.Contains(line, "</pre>") {
				inPre = false
			}
			continue
		}
		if strings.Contains(trimmed, "<pre>") && !strings.Contains(trimmed, "</pre>") {
			flushList()
			flushQuote()
			out.WriteString(line + "\n")
			inPre = true
			continue
		}

		switch {
		case quoteLineRe.MatchString(trimmed):
			flushList()
			quoteLines = append(quoteLines, quoteLineRe.FindStringSubmatch(trimmed)[1])

		case hrLineRe.MatchString(trimmed):
			flushList()
			flushQuote()
			out.WriteString("<hr>\n")

		case checkedItemRe.MatchString(line):
			flushQuote()
			startList("ul")
			listItems = append(listItems, `<li data-checked="true">`+checkedItemRe.FindStringSubmatch(line)[1]+"</li>")

		case uncheckedItemRe.MatchString(line):
			flushQuote()
			startList("ul")
			listItems = append(listItems, `<li data-checked="false">`+uncheckedItemRe.FindStringSubmatch(line)[1]+"</li>")

		case bulletItemRe.MatchString(line):
			flushQuote()
			startList("ul")
			listItems = append(listItems, "<li>"+bulletItemRe.FindStringSubmatch(line)[1]+"</li>")

		case orderedItemRe.MatchString(line):
			flushQuote()
			startList("ol")
			listItems = append(listItems, "<li>"+orderedItemRe.FindStringSubmatch(line)[1]+"</li>")

		case headingLineRe.MatchString(trimmed):
			flushList()
			flushQuote()
			sub := headingLineRe.FindStringSubmatch(trimmed)
			level := len(sub[1])
			fmt.Fprintf(&out, "<h%d>%s</h%d>\n", level, sub[2], level)

		case trimmed == "":
			flushList()
			flushQuote()

		case strings.HasPrefix(trimmed, "<pre>") || strings.HasPrefix(trimmed, "<hr"):
			flushList()
			flushQuote()
			out.WriteString(trimmed + "\n")

		default:
			flushList()
			flushQuote()
			out.WriteString("<p>" + trimmed + "</p>\n")
		}
	}
	flushList()
	flushQuote()

	return strings.TrimSpace(out.String())
}
