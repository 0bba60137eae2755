package render

import (
	"github.com/dshills/termview/internal/grid"
)

// selectionState holds the selection anchors in absolute buffer
// coordinates. The anchor is where selection began; end tracks the
// moving edge and may precede the anchor in reading order.
type selectionState struct {
	anchor grid.Point
	end    grid.Point
	active bool
	block  bool
}

// selectionRectsLocked expands the selection into per-row rects, top
// to bottom. Stream selections cover full rows between the
// endpoints; block selections cover the same column band on every
// row. Edges are widened so wide characters are never half covered.
func (s *Source) selectionRectsLocked() []grid.Rect {
	if !s.sel.active {
		return nil
	}

	start, end := s.sel.anchor, s.sel.end
	if end.Before(start) {
		start, end = end, start
	}

	width := s.buf.Width()
	lastRow := s.buf.TotalRows() - 1
	firstRow := clampInt(start.Row, 0, lastRow)
	finalRow := clampInt(end.Row, 0, lastRow)

	var rects []grid.Rect
	for row := firstRow; row <= finalRow; row++ {
		var left, right int
		if s.sel.block {
			left = minInt(start.Col, end.Col)
			right = maxInt(start.Col, end.Col)
		} else {
			left = 0
			right = width - 1
			if row == start.Row {
				left = start.Col
			}
			if row == end.Row {
				right = end.Col
			}
		}

		left = clampInt(left, 0, width-1)
		right = clampInt(right, left, width-1)
		rects = append(rects, s.snapToGlyphsLocked(grid.Rect{
			Top:    row,
			Left:   left,
			Bottom: row,
			Right:  right,
		}))
	}
	return rects
}

// snapToGlyphsLocked widens a single-row rect so it never splits a
// wide character.
func (s *Source) snapToGlyphsLocked(r grid.Rect) grid.Rect {
	if cell, ok := s.buf.CellAt(grid.Point{Row: r.Top, Col: r.Left}); ok && cell.IsContinuation() {
		r.Left--
	}
	if cell, ok := s.buf.CellAt(grid.Point{Row: r.Top, Col: r.Right}); ok && cell.Width == 2 {
		r.Right++
	}
	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
