package document

import (
	"errors"
	"iter"
	"strings"
)

// ErrMaterialized is returned when Materialize is called more than once.
var ErrMaterialized = errors.New("document already materialized")

// Document owns an ordered sequence of text lines plus the edits scheduled
// against them. One pass owns one Document: created from a text body at
// pass start, scanned once top to bottom, then materialized exactly once.
type Document struct {
	// lines holds current content per original index. Replace mutates it
	// in place; inserted lines never join it.
	lines        []string
	inserts      map[int][]string
	deleted      map[int]bool
	materialized bool
}

// New creates a Document from a text body.
func New(text string) *Document {
	return &Document{
		lines:   strings.Split(text, "\n"),
		inserts: map[int][]string{},
		deleted: map[int]bool{},
	}
}

// Scan yields (original index, current content) for exactly the lines
// present at pass start, in order. Replacements at not-yet-visited indices
// are visible; inserted lines are not. Forward-only, not restartable
// mid-pass.
func (d *Document) Scan() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := range d.lines {
			if !yield(i, d.lines[i]) {
				return
			}
		}
	}
}

// InsertBefore schedules text to appear immediately before the line at
// index i. The text may span multiple lines. Original-index addressing is
// unaffected; multiple inserts at the same index keep their scheduled order.
func (d *Document) InsertBefore(i int, text string) {
	d.inserts[i] = append(d.inserts[i], strings.Split(text, "\n")...)
}

// Replace overwrites the content at index i in place.
func (d *Document) Replace(i int, text string) {
	d.lines[i] = text
}

// Delete removes the line at index i from the eventual output. Addressing
// for the remainder of the scan is unchanged.
func (d *Document) Delete(i int) {
	d.deleted[i] = true
}

// Line returns the current content at index i.
func (d *Document) Line(i int) string {
	return d.lines[i]
}

// Span returns a copy of the current content from start through end
// inclusive.
func (d *Document) Span(start, end int) []string {
	out := make([]string, end-start+1)
	copy(out, d.lines[start:end+1])

	return out
}

// Len returns the number of original lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Materialize serializes the edited content: scheduled inserts are applied
// in original-index order, then the (possibly replaced) line itself unless
// deleted. Must be called exactly once, after the scan completes.
func (d *Document) Materialize() (string, error) {
	if d.materialized {
		return "", ErrMaterialized
	}

	d.materialized = true

	out := make([]string, 0, len(d.lines))

	for i, line := range d.lines {
		out = append(out, d.inserts[i]...)

		if !d.deleted[i] {
			out = append(out, line)
		}
	}

	// Inserts scheduled past the last line land at the end.
	out = append(out, d.inserts[len(d.lines)]...)

	return strings.Join(out, "\n"), nil
}
