// Package backend paints render boundary state onto a tcell screen.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termview/internal/grid"
	"github.com/dshills/termview/internal/render"
	"github.com/dshills/termview/internal/term"
)

// Painter draws frames from a render source onto a tcell screen. One
// frame is one Acquire/Release window: the painter reads everything
// the frame needs while holding the view, then flushes.
type Painter struct {
	screen tcell.Screen
	src    *render.Source
}

// NewPainter creates a painter over the given screen and source. The
// screen must already be initialized.
func NewPainter(screen tcell.Screen, src *render.Source) *Painter {
	return &Painter{screen: screen, src: src}
}

// Paint draws one full frame and flushes it to the screen.
func (p *Painter) Paint() {
	view := p.src.Acquire()
	defer view.Release()

	vp := view.Viewport()
	selection := view.SelectionRects()
	highlights := view.VisibleSearchHighlights()
	focused := view.FocusedSearchHighlight()
	settings := view.Settings()

	for row := vp.Top; row < vp.BottomExclusive(); row++ {
		line := view.Line(row)
		y := row - vp.Top
		for col := vp.Left; col < vp.RightExclusive(); col++ {
			cell := term.EmptyCell()
			if line != nil && col >= 0 && col < len(line.Cells) {
				cell = line.Cells[col]
			}
			if cell.IsContinuation() {
				// tcell places the trailing half of a wide rune
				// itself.
				continue
			}

			fg, bg := view.AttributeColors(cell.Attr)
			flags := view.AttributeFlags(cell.Attr)

			pt := grid.Point{Row: row, Col: col}
			switch {
			case rectsContain(focused, pt):
				bg = settings.FocusedSearchBackground()
				fg = settings.HighlightForeground()
			case rectsContain(highlights, pt):
				bg = settings.SearchBackground()
				fg = settings.HighlightForeground()
			case rectsContain(selection, pt):
				bg = settings.SelectionBackground()
				fg = settings.HighlightForeground()
			}

			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			p.screen.SetContent(col-vp.Left, y, r, nil, convertStyle(fg, bg, flags))
		}
	}

	p.placeCursor(view, vp)
	p.screen.Show()
}

// placeCursor positions the hardware cursor, hiding it when it is
// invisible, in its blink-off phase, or scrolled out of view.
func (p *Painter) placeCursor(view *render.View, vp grid.Viewport) {
	pos := view.CursorPosition()
	if !view.CursorVisible() || !view.CursorOn() || !vp.Contains(pos) {
		p.screen.HideCursor()
		return
	}
	p.screen.SetCursorStyle(convertCursorStyle(view.CursorStyle(), view.CursorBlinking()))
	p.screen.ShowCursor(pos.Col-vp.Left, pos.Row-vp.Top)
}

// rectsContain reports whether any rect in the run covers p. Overlay
// runs are a handful of rects per frame, so a linear scan is fine.
func rectsContain(rects []grid.Rect, p grid.Point) bool {
	for _, r := range rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
