// Package search finds text in a buffer and produces the highlight
// rects the render boundary stores. Matches are reported in reading
// order, so the flattened rect set arrives sorted by top row the way
// the highlight store expects.
package search

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dshills/termview/internal/grid"
	"github.com/dshills/termview/internal/term"
)

// Sentinel errors for the search package.
var (
	// ErrEmptyQuery is returned when the query is empty.
	ErrEmptyQuery = errors.New("empty search query")
)

// Options configures a search.
type Options struct {
	// CaseSensitive matches exact case when true.
	CaseSensitive bool

	// Regex treats the query as a regular expression instead of a
	// literal.
	Regex bool
}

// Match is one search hit: one rect per buffer row it touches, top to
// bottom. A hit inside a single row has exactly one rect.
type Match struct {
	Rects []grid.Rect
}

// Results holds every hit of one search.
type Results struct {
	matches []Match
	rects   []grid.Rect
}

// Find searches the whole buffer. Wrapped rows are searched as one
// logical run, so hits may cross row boundaries.
func Find(buf *term.Buffer, query string, opts Options) (*Results, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	expr := query
	if !opts.Regex {
		expr = regexp.QuoteMeta(query)
	}
	if !opts.CaseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile search pattern: %w", err)
	}

	res := &Results{}
	for row := 0; row < buf.TotalRows(); {
		text, origins, rows := buf.RowRunText(row)
		for _, m := range re.FindAllStringIndex(text, -1) {
			if m[0] == m[1] {
				continue
			}
			match := matchFromRange(buf, origins, m[0], m[1])
			if len(match.Rects) == 0 {
				continue
			}
			res.matches = append(res.matches, match)
			res.rects = append(res.rects, match.Rects...)
		}
		row += rows
	}
	return res, nil
}

// Len returns the number of hits.
func (r *Results) Len() int {
	if r == nil {
		return 0
	}
	return len(r.matches)
}

// Match returns the rects of hit i, front to back.
func (r *Results) Match(i int) []grid.Rect {
	if r == nil || i < 0 || i >= len(r.matches) {
		return nil
	}
	return r.matches[i].Rects
}

// HighlightSet returns every hit's rects flattened in reading order.
func (r *Results) HighlightSet() []grid.Rect {
	if r == nil {
		return nil
	}
	return r.rects
}

// matchFromRange splits a byte range of run text into per-row rects.
func matchFromRange(buf *term.Buffer, origins []grid.Point, start, end int) Match {
	if start >= end || end > len(origins) {
		return Match{}
	}

	var match Match
	cur := grid.Rect{Top: -1}
	for i := start; i < end; i++ {
		p := origins[i]
		right := p.Col
		if cell, ok := buf.CellAt(p); ok && cell.Width == 2 {
			right = p.Col + 1
		}

		if cur.Top != p.Row {
			if cur.Top >= 0 {
				match.Rects = append(match.Rects, cur)
			}
			cur = grid.Rect{Top: p.Row, Left: p.Col, Bottom: p.Row, Right: right}
			continue
		}
		if right > cur.Right {
			cur.Right = right
		}
	}
	if cur.Top >= 0 {
		match.Rects = append(match.Rects, cur)
	}
	return match
}
