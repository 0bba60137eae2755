// Package grid provides buffer-coordinate geometry shared by the
// terminal subsystems. This package breaks import cycles between the
// buffer, render, and backend packages.
//
// All coordinates are absolute buffer coordinates: row 0 is the oldest
// retained scrollback row, columns are 0-indexed cells. Rect bounds are
// inclusive on all four sides, matching how selection and highlight
// regions address their first and last cells. Viewport bounds are
// half-open on the bottom and right.
package grid

import "fmt"

// Point identifies a single cell in buffer coordinates.
type Point struct {
	Row int
	Col int
}

// NewPoint creates a point.
func NewPoint(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Add returns a new point offset by the given delta.
func (p Point) Add(dRow, dCol int) Point {
	return Point{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Equals returns true if two points are the same cell.
func (p Point) Equals(other Point) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Before returns true if p comes before other in reading order.
func (p Point) Before(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// After returns true if p comes after other in reading order.
func (p Point) After(other Point) bool {
	return other.Before(p)
}

// Compare returns -1, 0, or 1 ordering p against other in reading order.
func (p Point) Compare(other Point) int {
	switch {
	case p.Before(other):
		return -1
	case p.Equals(other):
		return 0
	default:
		return 1
	}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Rect is a rectangular region of buffer cells.
// All four bounds are inclusive: a single cell is Top==Bottom, Left==Right.
type Rect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// NewRect creates a rect from inclusive bounds.
func NewRect(top, left, bottom, right int) Rect {
	return Rect{Top: top, Left: left, Bottom: bottom, Right: right}
}

// RectFromPoints creates the rect spanning two corner cells.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Top:    min(a.Row, b.Row),
		Left:   min(a.Col, b.Col),
		Bottom: max(a.Row, b.Row),
		Right:  max(a.Col, b.Col),
	}
}

// Width returns the number of columns the rect covers.
func (r Rect) Width() int {
	if r.Right < r.Left {
		return 0
	}
	return r.Right - r.Left + 1
}

// Height returns the number of rows the rect covers.
func (r Rect) Height() int {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top + 1
}

// IsEmpty returns true if the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Bottom < r.Top || r.Right < r.Left
}

// TopLeft returns the first cell of the rect in reading order.
func (r Rect) TopLeft() Point {
	return Point{Row: r.Top, Col: r.Left}
}

// BottomRight returns the last cell of the rect in reading order.
func (r Rect) BottomRight() Point {
	return Point{Row: r.Bottom, Col: r.Right}
}

// Contains returns true if the cell at p is within the rect.
func (r Rect) Contains(p Point) bool {
	return p.Row >= r.Top && p.Row <= r.Bottom &&
		p.Col >= r.Left && p.Col <= r.Right
}

// Intersects returns true if two rects share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.Left <= other.Right && r.Right >= other.Left &&
		r.Top <= other.Bottom && r.Bottom >= other.Top
}

// Intersection returns the cells shared by both rects.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{Top: 0, Left: 0, Bottom: -1, Right: -1}
	}
	return Rect{
		Top:    max(r.Top, other.Top),
		Left:   max(r.Left, other.Left),
		Bottom: min(r.Bottom, other.Bottom),
		Right:  min(r.Right, other.Right),
	}
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		Top:    min(r.Top, other.Top),
		Left:   min(r.Left, other.Left),
		Bottom: max(r.Bottom, other.Bottom),
		Right:  max(r.Right, other.Right),
	}
}

// Equals returns true if two rects are identical.
func (r Rect) Equals(other Rect) bool {
	return r.Top == other.Top && r.Left == other.Left &&
		r.Bottom == other.Bottom && r.Right == other.Right
}

// String returns a string representation of the rect.
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d..%d,%d]", r.Top, r.Left, r.Bottom, r.Right)
}

// Viewport is a window onto the buffer: a top-left origin plus
// dimensions. Unlike Rect, its bottom and right edges are exclusive.
type Viewport struct {
	Top    int
	Left   int
	Height int
	Width  int
}

// ViewportFromDimensions creates a viewport from origin and size.
func ViewportFromDimensions(top, left, height, width int) Viewport {
	return Viewport{Top: top, Left: left, Height: height, Width: width}
}

// BottomExclusive returns the first row below the viewport.
func (v Viewport) BottomExclusive() int {
	return v.Top + v.Height
}

// BottomInclusive returns the last row inside the viewport.
func (v Viewport) BottomInclusive() int {
	return v.Top + v.Height - 1
}

// RightExclusive returns the first column right of the viewport.
func (v Viewport) RightExclusive() int {
	return v.Left + v.Width
}

// Contains returns true if the cell at p is visible in the viewport.
func (v Viewport) Contains(p Point) bool {
	return p.Row >= v.Top && p.Row < v.BottomExclusive() &&
		p.Col >= v.Left && p.Col < v.RightExclusive()
}

// ContainsRow returns true if the given buffer row is visible.
func (v Viewport) ContainsRow(row int) bool {
	return row >= v.Top && row < v.BottomExclusive()
}

// ToRect returns the viewport as an inclusive rect.
func (v Viewport) ToRect() Rect {
	return Rect{
		Top:    v.Top,
		Left:   v.Left,
		Bottom: v.BottomInclusive(),
		Right:  v.RightExclusive() - 1,
	}
}

// Clip returns the part of r visible in the viewport and whether any
// cell survived.
func (v Viewport) Clip(r Rect) (Rect, bool) {
	clipped := r.Intersection(v.ToRect())
	return clipped, !clipped.IsEmpty()
}

// Equals returns true if two viewports are identical.
func (v Viewport) Equals(other Viewport) bool {
	return v.Top == other.Top && v.Left == other.Left &&
		v.Height == other.Height && v.Width == other.Width
}

// String returns a string representation of the viewport.
func (v Viewport) String() string {
	return fmt.Sprintf("viewport{top=%d left=%d %dx%d}", v.Top, v.Left, v.Width, v.Height)
}
