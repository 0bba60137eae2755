package term

// CursorStyle represents the cursor appearance.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// DefaultCursorSize is the default cursor height as a percentage of
// the cell.
const DefaultCursorSize = 25

// Cursor holds the position and presentation state of the cursor.
// X and Y are screen-relative: Y counts rows from the top of the
// mutable screen region, so the cursor keeps its place when rows
// scroll out into history.
type Cursor struct {
	X int
	Y int

	// Visible is false while the application has hidden the cursor.
	Visible bool

	// On is the blink phase: false during the off half of a blink.
	On bool

	// Blinking reports whether the cursor blinks at all.
	Blinking bool

	Style CursorStyle

	// Size is the cursor height as a percentage of the cell (1-100).
	Size int
}

// NewCursor returns a cursor in its initial state.
func NewCursor() Cursor {
	return Cursor{
		Visible:  true,
		On:       true,
		Blinking: true,
		Style:    CursorBlock,
		Size:     DefaultCursorSize,
	}
}
