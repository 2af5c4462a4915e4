// Package engine turns the full note collection into the ordered,
// filtered view the list shows. Apply is a pure function over its inputs
// so it can be tested without a store or UI.
package engine

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/plumenote/plume/internal/markup"
	"github.com/plumenote/plume/internal/note"
)

// View selects which lifecycle slice of the collection is visible.
// Active excludes archived and trashed notes; the other two invert that.
type View int

const (
	ViewActive View = iota
	ViewArchive
	ViewTrash
)

type SortMode string

const (
	SortManual      SortMode = "manual"
	SortUpdatedDesc SortMode = "updated-desc"
	SortUpdatedAsc  SortMode = "updated-asc"
	SortCreatedDesc SortMode = "created-desc"
	SortCreatedAsc  SortMode = "created-asc"
	SortTitleAsc    SortMode = "title-asc"
	SortTitleDesc   SortMode = "title-desc"
	SortSizeDesc    SortMode = "size-desc"
	SortSizeAsc     SortMode = "size-asc"
)

// SortModes lists every mode in the order the UI cycles through them.
var SortModes = []SortMode{
	SortManual,
	SortUpdatedDesc, SortUpdatedAsc,
	SortCreatedDesc, SortCreatedAsc,
	SortTitleAsc, SortTitleDesc,
	SortSizeDesc, SortSizeAsc,
}

// TagStarred is the sentinel tag filter that selects starred notes
// instead of a tag name.
const TagStarred = "starred"

type Query struct {
	View     View
	Tag      string // "" = no filter, TagStarred = starred only
	FolderID string // "" = no filter
	Search   string
	Sort     SortMode
}

type Engine struct {
	collator *collate.Collator
}

// New builds an engine whose title comparisons follow lang's collation
// rules. An undefined tag falls back to Unicode default ordering.
func New(lang language.Tag) *Engine {
	return &Engine{collator: collate.New(lang, collate.IgnoreCase)}
}

// Apply filters and sorts notes for q. It never mutates its input, is
// deterministic, and keeps the input order for equal-rank notes (the
// manual mode depends on that for notes without an order value).
func (e *Engine) Apply(notes []note.Note, q Query) []note.Note {
	out := make([]note.Note, 0, len(notes))
	searchLower := strings.ToLower(q.Search)

	for _, n := range notes {
		if !inView(n, q.View) {
			continue
		}
		if q.Tag != "" && !matchesTag(n, q.Tag) {
			continue
		}
		if q.FolderID != "" && n.FolderID != q.FolderID {
			continue
		}
		if searchLower != "" && !matchesSearch(n, searchLower) {
			continue
		}
		out = append(out, n)
	}

	less := e.comparator(q.Sort)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		// Pinned-then-starred precedence applies identically to every
		// sort mode, before the mode's own comparator.
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		if a.Starred != b.Starred {
			return a.Starred
		}
		return less(a, b)
	})
	return out
}

func inView(n note.Note, v View) bool {
	switch v {
	case ViewTrash:
		return n.Deleted
	case ViewArchive:
		return n.Archived && !n.Deleted
	default:
		return !n.Deleted && !n.Archived
	}
}

func matchesTag(n note.Note, tag string) bool {
	if tag == TagStarred {
		return n.Starred
	}
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func matchesSearch(n note.Note, queryLower string) bool {
	if strings.Contains(strings.ToLower(n.Title), queryLower) {
		return true
	}
	if n.Content != "" &&
		strings.Contains(strings.ToLower(markup.ToPlainText(n.Content)), queryLower) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), queryLower) {
			return true
		}
	}
	return false
}

func (e *Engine) comparator(mode SortMode) func(a, b note.Note) bool {
	switch mode {
	case SortManual:
		return func(a, b note.Note) bool {
			// Unset order sorts last.
			if a.Order == nil {
				return false
			}
			if b.Order == nil {
				return true
			}
			return *a.Order < *b.Order
		}
	case SortUpdatedAsc:
		return func(a, b note.Note) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case SortCreatedDesc:
		return func(a, b note.Note) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortCreatedAsc:
		return func(a, b note.Note) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortTitleAsc:
		return func(a, b note.Note) bool { return e.collator.CompareString(a.Title, b.Title) < 0 }
	case SortTitleDesc:
		return func(a, b note.Note) bool { return e.collator.CompareString(a.Title, b.Title) > 0 }
	case SortSizeDesc:
		return func(a, b note.Note) bool { return len(a.Content) > len(b.Content) }
	case SortSizeAsc:
		return func(a, b note.Note) bool { return len(a.Content) < len(b.Content) }
	default: // SortUpdatedDesc
		return func(a, b note.Note) bool { return a.UpdatedAt.After(b.UpdatedAt) }
	}
}
