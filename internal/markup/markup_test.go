package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumenote/plume/internal/note"
)

func TestToMarkdownBasics(t *testing.T) {
	assert.Equal(t, "# Hi\n\nthere", ToMarkdown("<h1>Hi</h1><p>there</p>"))
	assert.Equal(t, "### Deep", ToMarkdown("<h3>Deep</h3>"))
	assert.Equal(t, "", ToMarkdown(""))
}

func TestToMarkdownInline(t *testing.T) {
	assert.Equal(t, "**b** *i* _u_ ~~s~~",
		ToMarkdown(`<p><strong>b</strong> <em>i</em> <u>u</u> <s>s</s></p>`))
	assert.Equal(t, "**b** *i*", ToMarkdown("<p><b>b</b> <i>i</i></p>"))
	assert.Equal(t, "`x := 1`", ToMarkdown("<p><code>x := 1</code></p>"))
}

func TestToMarkdownCodeBlock(t *testing.T) {
	got := ToMarkdown("<pre><code>x := 1\ny := 2</code></pre>")
	assert.Equal(t, "```\nx := 1\ny := 2\n```", got)
}

func TestToMarkdownLinksAndImages(t *testing.T) {
	assert.Equal(t, "[docs](https://example.com)",
		ToMarkdown(`<p><a href="https://example.com">docs</a></p>`))
	assert.Equal(t, "![pic](a.png)",
		ToMarkdown(`<p><img src="a.png" alt="pic"></p>`))
	// Attribute order within the tag does not matter.
	assert.Equal(t, "![pic](a.png)",
		ToMarkdown(`<p><img alt="pic" class="x" src="a.png"/></p>`))
}

func TestToMarkdownTaskList(t *testing.T) {
	// Checked items must keep their state instead of degrading to
	// plain bullets.
	got := ToMarkdown(`<ul><li data-checked="true">done</li><li data-checked="false">open</li></ul>`)
	assert.Equal(t, "- [x] done\n- [ ] open", got)
}

func TestToMarkdownPlainList(t *testing.T) {
	got := ToMarkdown("<ul><li>a</li><li>b</li></ul>")
	assert.Equal(t, "- a\n- b", got)
}

func TestToMarkdownBlockquote(t *testing.T) {
	got := ToMarkdown("<blockquote>first\nsecond</blockquote>")
	assert.Equal(t, "> first\n> second", got)
}

func TestToMarkdownHorizontalRule(t *testing.T) {
	got := ToMarkdown("<p>a</p><hr><p>b</p>")
	assert.Equal(t, "a\n\n---\n\nb", got)
}

func TestToMarkdownStripsUnknownTags(t *testing.T) {
	got := ToMarkdown(`<p><span style="color:red">text</span></p>`)
	assert.Equal(t, "text", got)
}

func TestToMarkdownEntities(t *testing.T) {
	assert.Equal(t, `a < b & "c"`, ToMarkdown("<p>a &lt; b &amp; &quot;c&quot;</p>"))
	// Double-escaped text unescapes exactly one level.
	assert.Equal(t, "&lt;", ToMarkdown("<p>&amp;lt;</p>"))
}

func TestToMarkdownCollapsesBlankRuns(t *testing.T) {
	got := ToMarkdown("<p>a</p><div></div><div></div><p>b</p>")
	assert.NotContains(t, got, "\n\n\n")
}

func TestFromMarkdownBasics(t *testing.T) {
	assert.Equal(t, "<h1>Hi</h1>\n<p>there</p>", FromMarkdown("# Hi\n\nthere"))
	assert.Equal(t, "<h2>Sub</h2>", FromMarkdown("## Sub"))
	assert.Equal(t, "", FromMarkdown("   \n"))
}

func TestFromMarkdownEscapesFirst(t *testing.T) {
	assert.Equal(t, "<p>a &lt; b &amp; c</p>", FromMarkdown("a < b & c"))
	// Raw markup in the source stays inert text.
	assert.Equal(t, "<p>&lt;script&gt;x&lt;/script&gt;</p>", FromMarkdown("<script>x</script>"))
}

func TestFromMarkdownEmphasis(t *testing.T) {
	assert.Equal(t, "<p><strong>b</strong> and <em>i</em></p>", FromMarkdown("**b** and *i*"))
	assert.Equal(t, "<p><strong><em>both</em></strong></p>", FromMarkdown("***both***"))
	assert.Equal(t, "<p><u><strong>ub</strong></u></p>", FromMarkdown("___ub___"))
	assert.Equal(t, "<p><u>u</u></p>", FromMarkdown("_u_"))
	assert.Equal(t, "<p><s>gone</s></p>", FromMarkdown("~~gone~~"))
}

func TestFromMarkdownCode(t *testing.T) {
	assert.Equal(t, "<p><code>x</code></p>", FromMarkdown("`x`"))

	got := FromMarkdown("```go\nx := 1\n```")
	assert.Equal(t, `<pre><code class="language-go">x := 1</code></pre>`, got)
}

func TestFromMarkdownMultilineCode(t *testing.T) {
	got := FromMarkdown("```\nline1\n\nline2\n```")
	assert.Equal(t, "<pre><code>line1\n\nline2</code></pre>", got)
	// Interior lines must not be wrapped as paragraphs.
	assert.NotContains(t, got, "<p>")
}

func TestFromMarkdownCodeContentNotStyled(t *testing.T) {
	got := FromMarkdown("```\n**not bold**\n```")
	assert.Contains(t, got, "**not bold**")
	assert.NotContains(t, got, "<strong>")
}

func TestFromMarkdownImagesBeforeLinks(t *testing.T) {
	assert.Equal(t, `<p><img src="i.png" alt="a"></p>`, FromMarkdown("![a](i.png)"))
	assert.Equal(t, `<p><a href="https://x">t</a></p>`, FromMarkdown("[t](https://x)"))
}

func TestFromMarkdownTaskList(t *testing.T) {
	got := FromMarkdown("- [x] done\n- [ ] open\n- plain")
	assert.Equal(t, `<ul><li data-checked="true">done</li><li data-checked="false">open</li><li>plain</li></ul>`, got)
}

func TestFromMarkdownOrderedList(t *testing.T) {
	assert.Equal(t, "<ol><li>a</li><li>b</li></ol>", FromMarkdown("1. a\n2. b"))
}

func TestFromMarkdownListGrouping(t *testing.T) {
	// Switching marker kind closes the open list.
	got := FromMarkdown("- a\n1. b")
	assert.Equal(t, "<ul><li>a</li></ul>\n<ol><li>b</li></ol>", got)

	// A blank line splits two lists of the same kind.
	got = FromMarkdown("- a\n\n- b")
	assert.Equal(t, "<ul><li>a</li></ul>\n<ul><li>b</li></ul>", got)
}

func TestFromMarkdownBlockquote(t *testing.T) {
	assert.Equal(t, "<blockquote>one<br>two</blockquote>", FromMarkdown("> one\n> two"))
	// Separated quotes stay separate.
	assert.Equal(t, "<blockquote>one</blockquote>\n<blockquote>two</blockquote>",
		FromMarkdown("> one\n\n> two"))
}

func TestFromMarkdownHorizontalRule(t *testing.T) {
	assert.Equal(t, "<p>a</p>\n<hr>\n<p>b</p>", FromMarkdown("a\n\n---\n\nb"))
}

func TestToPlainText(t *testing.T) {
	assert.Equal(t, "Hi\nthere", ToPlainText("<h1>Hi</h1><p>there</p>"))
	assert.Equal(t, "", ToPlainText(""))
	assert.Equal(t, "a\nb", ToPlainText("<p>a</p><script>var x;</script><p>b</p>"))
	assert.Equal(t, "a\nb", ToPlainText("<p>a</p><style>.x{}</style><p>b</p>"))
}

func TestToPlainTextMalformed(t *testing.T) {
	// The parser recovers; text survives.
	assert.Equal(t, "unclosed", ToPlainText("<p>unclosed"))
	assert.Equal(t, "mixed up", ToPlainText("<b><p>mixed up</b></p>"))
}

func TestToPlainTextEntities(t *testing.T) {
	assert.Equal(t, "a < b & c", ToPlainText("<p>a &lt; b &amp; c</p>"))
}

func TestRenderPayloadNil(t *testing.T) {
	assert.Equal(t, "<p>No content</p>", RenderPayload(note.Todo, nil))
}

func TestRenderPayloadTodo(t *testing.T) {
	got := RenderPayload(note.Todo, note.TodoData{Tasks: []note.Task{
		{Text: "buy milk", Completed: true, Priority: "high"},
		{Text: "walk dog", Subtasks: []note.Task{{Text: "find leash"}}},
	}})
	assert.Contains(t, got, "✓")
	assert.Contains(t, got, "☐")
	assert.Contains(t, got, "🔴")
	assert.Contains(t, got, "buy milk")
	assert.Contains(t, got, "find leash")
}

func TestRenderPayloadShoppingGroupsAndTotals(t *testing.T) {
	got := RenderPayload(note.Shopping, note.ShoppingData{
		Currency: "€",
		Budget:   50,
		Items: []note.ShoppingItem{
			{Name: "milk", Category: "Dairy", Price: 2, Quantity: 2},
			{Name: "bread", Price: 1.5},
		},
	})
	assert.Contains(t, got, "<h3>Dairy</h3>")
	assert.Contains(t, got, "<h3>Other</h3>")
	assert.Contains(t, got, "Total: €5.50")
	assert.Contains(t, got, "Budget: €50.00")
}

func TestRenderPayloadEscapesText(t *testing.T) {
	got := RenderPayload(note.Todo, note.TodoData{Tasks: []note.Task{
		{Text: "a < b & c"},
	}})
	assert.Contains(t, got, "a &lt; b &amp; c")
	assert.NotContains(t, got, "a < b")
}

func TestRenderPayloadJournal(t *testing.T) {
	got := RenderPayload(note.Journal, note.JournalData{
		Date: "2026-08-31", Mood: 5, Energy: 3,
		Gratitude: []string{"sun", ""},
	})
	assert.Contains(t, got, "Mood: 😄 (5/5)")
	assert.Contains(t, got, "Energy: 3/5")
	assert.Contains(t, got, "<li>sun</li>")
}

func TestRenderPayloadWeeklySkipsEmptyDays(t *testing.T) {
	got := RenderPayload(note.Weekly, note.WeeklyData{
		Wednesday: note.WeeklyDay{Note: "midweek"},
	})
	assert.Contains(t, got, "<h3>Wednesday</h3>")
	assert.NotContains(t, got, "<h3>Monday</h3>")
}

// Rendering a payload and flattening it must keep every piece of user
// text, even though layout is lost.
func TestRenderPayloadLossyButComplete(t *testing.T) {
	d := note.TodoData{Tasks: []note.Task{
		{Text: "first task"},
		{Text: "second task", Subtasks: []note.Task{{Text: "nested one"}}},
	}}

	text := ToPlainText(RenderPayload(note.Todo, d))
	for _, want := range []string{"first task", "second task", "nested one"} {
		require.Contains(t, text, want)
	}
}

func TestMarkdownRoundTripKeepsStructure(t *testing.T) {
	md := "# Title\n\nSome **bold** text.\n\n- [x] done\n- [ ] open\n\n> quoted"
	back := ToMarkdown(FromMarkdown(md))

	assert.Contains(t, back, "# Title")
	assert.Contains(t, back, "**bold**")
	assert.Contains(t, back, "- [x] done")
	assert.Contains(t, back, "- [ ] open")
	assert.Contains(t, back, "> quoted")
}
