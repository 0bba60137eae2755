package render

import (
	"github.com/dshills/termview/internal/grid"
	"github.com/dshills/termview/internal/pattern"
	"github.com/dshills/termview/internal/style"
	"github.com/dshills/termview/internal/term"
)

// Viewport returns the window of buffer rows currently visible.
func (v *View) Viewport() grid.Viewport {
	v.guard.assertHeld()
	return v.src.viewportLocked()
}

// ScrollOffset returns how many rows the viewport is shifted up from
// the live edge.
func (v *View) ScrollOffset() int {
	v.guard.assertHeld()
	return v.src.scrollOffset
}

// MaxScroll returns the largest offset ScrollTo will accept: the
// number of retained history rows.
func (v *View) MaxScroll() int {
	v.guard.assertHeld()
	return v.src.buf.ScreenTop()
}

// AtLiveEdge reports whether the viewport is pinned to the most
// recent content.
func (v *View) AtLiveEdge() bool {
	v.guard.assertHeld()
	return v.src.scrollOffset == 0
}

// TextBufferEnd returns the last cell of the screen region. It moves
// with written text and marks where content ends.
func (v *View) TextBufferEnd() grid.Point {
	v.guard.assertHeld()
	return grid.Point{
		Row: v.src.buf.TotalRows() - 1,
		Col: v.src.buf.Width() - 1,
	}
}

// Line returns the line at the given absolute row, or nil if the row
// is out of range. The line is owned by the buffer and is only valid
// while the view is held.
func (v *View) Line(row int) *term.Line {
	v.guard.assertHeld()
	return v.src.buf.Line(row)
}

// CellAt returns the cell at the given absolute position.
func (v *View) CellAt(p grid.Point) (term.Cell, bool) {
	v.guard.assertHeld()
	return v.src.buf.CellAt(p)
}

// CursorPosition returns the cursor position in absolute buffer
// coordinates.
func (v *View) CursorPosition() grid.Point {
	v.guard.assertHeld()
	return v.src.buf.CursorPosition()
}

// CursorVisible reports whether the cursor should be drawn at all.
func (v *View) CursorVisible() bool {
	v.guard.assertHeld()
	return v.src.buf.Cursor().Visible
}

// CursorOn reports the blink phase: false during the off half of a
// blink.
func (v *View) CursorOn() bool {
	v.guard.assertHeld()
	return v.src.buf.Cursor().On
}

// CursorBlinking reports whether the cursor blinks at all.
func (v *View) CursorBlinking() bool {
	v.guard.assertHeld()
	return v.src.buf.Cursor().Blinking
}

// CursorHeight returns the cursor height as a percentage of the cell
// (1-100).
func (v *View) CursorHeight() int {
	v.guard.assertHeld()
	return v.src.buf.Cursor().Size
}

// CursorPixelWidth returns the width of the cursor outline in pixels.
func (v *View) CursorPixelWidth() int {
	v.guard.assertHeld()
	return 1
}

// CursorStyle returns the cursor shape.
func (v *View) CursorStyle() term.CursorStyle {
	v.guard.assertHeld()
	return v.src.buf.Cursor().Style
}

// CursorDoubleWidth reports whether the cursor sits on either half of
// a wide character.
func (v *View) CursorDoubleWidth() bool {
	v.guard.assertHeld()
	return v.src.buf.IsWideAt(v.src.buf.CursorPosition())
}

// Title returns the reported title.
func (v *View) Title() string {
	v.guard.assertHeld()
	return v.src.buf.Title()
}

// SetTitle sets the reported title and queues a title change event.
func (v *View) SetTitle(title string) {
	v.guard.assertHeld()
	v.src.buf.SetTitle(title)
	v.pending.Title(title, v.src.id)
}

// HyperlinkURI returns the URI for a hyperlink id, or "" if unknown.
func (v *View) HyperlinkURI(id term.HyperlinkID) string {
	v.guard.assertHeld()
	return v.src.buf.HyperlinkURI(id)
}

// HyperlinkCustomID returns the custom id for a hyperlink id, or ""
// if the link has none.
func (v *View) HyperlinkCustomID(id term.HyperlinkID) string {
	v.guard.assertHeld()
	return v.src.buf.HyperlinkCustomID(id)
}

// AttributeColors resolves an attribute set to the concrete
// foreground and background a painter draws with.
func (v *View) AttributeColors(attr term.Attr) (fg, bg style.RGB) {
	v.guard.assertHeld()
	return v.src.settings.Colors(attr)
}

// AttributeFlags returns the attribute flags a painter should honor
// for the given attribute set.
func (v *View) AttributeFlags(attr term.Attr) term.CellAttributes {
	v.guard.assertHeld()
	return v.src.settings.Flags(attr)
}

// Settings returns the active color settings. The settings are owned
// by the source and are only valid while the view is held.
func (v *View) Settings() *style.Settings {
	v.guard.assertHeld()
	return v.src.settings
}

// PatternsAt returns the ids of every pattern interval covering the
// cell at p. The result is nil when nothing matches or no pattern
// tree is installed.
func (v *View) PatternsAt(p grid.Point) []uint64 {
	v.guard.assertHeld()
	return v.src.patterns.IDsAt(p)
}

// SetPatternTree swaps in a freshly built pattern tree. Build the
// tree before acquiring the view; the swap itself is cheap.
func (v *View) SetPatternTree(t *pattern.Tree) {
	v.guard.assertHeld()
	v.src.patterns = t
}

// SelectionRects returns the selection as per-row rects in absolute
// buffer coordinates, top to bottom, or nil when nothing is
// selected. An internal failure degrades to nil so a paint pass can
// finish without a selection overlay.
func (v *View) SelectionRects() (rects []grid.Rect) {
	v.guard.assertHeld()
	defer func() {
		if r := recover(); r != nil {
			v.src.reportFault("SelectionRects", r)
			rects = nil
		}
	}()
	return v.src.selectionRectsLocked()
}

// HasSelection reports whether a selection is active.
func (v *View) HasSelection() bool {
	v.guard.assertHeld()
	return v.src.sel.active
}

// SelectRegion scrolls the range between start and end into view and
// selects it.
func (v *View) SelectRegion(start, end grid.Point) {
	v.guard.assertHeld()
	v.src.scrollToRangeLocked(start, end, v.pending)
	v.src.sel.anchor = start
	v.src.sel.end = end
	v.src.sel.active = true
}

// SetBlockSelection switches between stream and rectangular
// selection.
func (v *View) SetBlockSelection(block bool) {
	v.guard.assertHeld()
	v.src.sel.block = block
}

// ClearSelection deactivates the selection.
func (v *View) ClearSelection() {
	v.guard.assertHeld()
	v.src.sel.active = false
}

// VisibleSearchHighlights returns the search highlights whose top row
// falls inside the viewport, in stored order. An internal failure
// degrades to nil so a paint pass can finish with a blank overlay.
func (v *View) VisibleSearchHighlights() (rects []grid.Rect) {
	v.guard.assertHeld()
	defer func() {
		if r := recover(); r != nil {
			v.src.reportFault("VisibleSearchHighlights", r)
			rects = nil
		}
	}()
	return v.src.visibleHighlightsLocked()
}

// SetSearchHighlights replaces the search highlight set wholesale.
// The rects must be sorted ascending by top row; the store trusts
// the order. Passing nil clears the set.
func (v *View) SetSearchHighlights(rects []grid.Rect) {
	v.guard.assertHeld()
	v.src.setHighlightsLocked(rects)
	v.pending.Highlights(len(v.src.highlights), v.src.id)
}

// SearchHighlightCount returns the size of the full highlight set,
// visible or not.
func (v *View) SearchHighlightCount() int {
	v.guard.assertHeld()
	return len(v.src.highlights)
}

// SetFocusedSearchHighlight replaces the focused search highlight.
// A non-empty highlight is brought into view: its rects are expected
// front to back, top to bottom, and the viewport scrolls so the span
// from the first rect's top-left to the last rect's bottom-right is
// visible. An empty highlight clears the focus with no scrolling.
func (v *View) SetFocusedSearchHighlight(rects []grid.Rect) {
	v.guard.assertHeld()
	if len(rects) > 0 {
		start, end := boundingRange(rects)
		v.src.scrollToRangeLocked(start, end, v.pending)
	}
	v.src.focused = copyRects(rects)
}

// FocusedSearchHighlight returns the focused search highlight, or
// nil when no match is focused.
func (v *View) FocusedSearchHighlight() []grid.Rect {
	v.guard.assertHeld()
	return v.src.focused
}

// ScrollTo moves the viewport to the given offset, clamped to
// [0, MaxScroll]. Returns the offset in effect afterwards.
func (v *View) ScrollTo(offset int) int {
	v.guard.assertHeld()
	return v.src.setOffsetLocked(offset, v.pending)
}

// ScrollBy shifts the viewport by delta rows: positive scrolls up
// into history, negative back toward the live edge. Returns the
// offset in effect afterwards.
func (v *View) ScrollBy(delta int) int {
	v.guard.assertHeld()
	return v.src.setOffsetLocked(v.src.scrollOffset+delta, v.pending)
}

// WriteString writes text into the buffer at the cursor. When the
// viewport is scrolled back, it stays anchored on the same content
// as rows move into history; at the live edge it follows new output.
func (v *View) WriteString(s string) {
	v.guard.assertHeld()
	before := v.src.buf.ScreenTop()
	v.src.buf.WriteString(s)
	v.anchorAfterGrowth(before)
}

// Resize changes the screen dimensions, keeping the scroll offset
// inside the retained history.
func (v *View) Resize(cols, rows int) error {
	v.guard.assertHeld()
	prev := v.src.scrollOffset
	if err := v.src.buf.Resize(cols, rows); err != nil {
		return err
	}
	v.src.clampOffsetLocked()
	if v.src.scrollOffset != prev {
		v.pending.Scroll(v.src.scrollOffset, v.src.id)
	}
	return nil
}

// anchorAfterGrowth grows a scrolled-back offset by the number of
// rows the screen region shifted down, so the visible content holds
// still while new output arrives below it.
func (v *View) anchorAfterGrowth(screenTopBefore int) {
	if v.src.scrollOffset == 0 {
		return
	}
	grown := v.src.buf.ScreenTop() - screenTopBefore
	if grown <= 0 {
		return
	}
	v.src.scrollOffset += grown
	v.src.clampOffsetLocked()
	v.pending.Scroll(v.src.scrollOffset, v.src.id)
}
