// Package render turns a view's phase and rows into text or HTML.
package render

import "github.com/mesh-intelligence/octofit/pkg/types"

// Panel is everything a front end needs to draw one view in its current phase.
type Panel struct {
	View     string // lower-case view name, used in status lines
	Title    string
	Subtitle string
	Phase    types.Phase
	Empty    EmptyState

	// Exactly one of Table or Cards is used for a loaded, non-empty view.
	Table *Table
	Cards []Card
}

// EmptyState is shown for a loaded view with no records.
type EmptyState struct {
	Title string
	Hint  string
}

// Table is a header row plus one keyed row per entity.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row is one table row.
type Row struct {
	Key   string
	Cells []Cell
}

// Cell is a single value. Style is a presentation hint for HTML (a badge
// class); Tag is an extra classification both renderers show. Avatar is a
// short mark drawn before the text.
type Cell struct {
	Text   string
	Style  string
	Tag    string
	Avatar string
}

// Card is one entity rendered as a card.
type Card struct {
	Key    string
	Title  string
	Body   string
	Fields []Field
	Note   string
}

// Field is a labeled value on a card.
type Field struct {
	Label string
	Value Cell
}

// Count returns the number of records the panel holds.
func (p Panel) Count() int {
	if p.Table != nil {
		return len(p.Table.Rows)
	}
	return len(p.Cards)
}

// IsEmpty reports whether the panel is loaded with no records.
func (p Panel) IsEmpty() bool {
	_, loaded := p.Phase.(types.Loaded)
	return loaded && p.Count() == 0
}
