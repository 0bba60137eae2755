package term

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/termview/internal/grid"
)

const tabWidth = 8

// Options configures a new buffer.
type Options struct {
	// Cols is the screen width in cells (default 80).
	Cols int

	// Rows is the screen height in cells (default 24).
	Rows int

	// Scrollback is the maximum number of history rows (default 10000).
	Scrollback int

	// StartingTitle is reported until a title is explicitly set.
	StartingTitle string

	// OnInvalidate is called whenever buffer content scrolls and any
	// cached presentation of it should be repainted.
	OnInvalidate func()
}

// Buffer fuses scrollback history with the mutable screen region in
// one absolute row space. Rows [0, ScreenTop) are history, rows
// [ScreenTop, TotalRows) are the screen.
//
// Buffer is not safe for concurrent use; the owning render boundary
// serializes access.
type Buffer struct {
	width  int
	height int

	history    []*Line
	screen     []*Line
	maxHistory int

	cursor Cursor
	pen    Attr

	links *hyperlinkStore

	title         string
	titleSet      bool
	startingTitle string

	onInvalidate func()
}

// NewBuffer creates a buffer with the given options.
func NewBuffer(opts Options) (*Buffer, error) {
	if opts.Cols == 0 {
		opts.Cols = 80
	}
	if opts.Rows == 0 {
		opts.Rows = 24
	}
	if opts.Cols < 1 || opts.Rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Cols, opts.Rows)
	}
	if opts.Scrollback <= 0 {
		opts.Scrollback = 10000
	}

	b := &Buffer{
		width:         opts.Cols,
		height:        opts.Rows,
		history:       make([]*Line, 0, 64),
		screen:        make([]*Line, opts.Rows),
		maxHistory:    opts.Scrollback,
		cursor:        NewCursor(),
		pen:           DefaultAttr(),
		links:         newHyperlinkStore(),
		startingTitle: opts.StartingTitle,
		onInvalidate:  opts.OnInvalidate,
	}
	for i := range b.screen {
		b.screen[i] = NewLine(opts.Cols)
	}
	return b, nil
}

// Width returns the screen width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the screen height in rows.
func (b *Buffer) Height() int { return b.height }

// HistoryLen returns the number of retained scrollback rows.
func (b *Buffer) HistoryLen() int { return len(b.history) }

// ScreenTop returns the absolute row of the top of the screen region.
func (b *Buffer) ScreenTop() int { return len(b.history) }

// TotalRows returns the total number of addressable rows.
func (b *Buffer) TotalRows() int { return len(b.history) + b.height }

// Line returns the line at the given absolute row, or nil if the row
// is out of range.
func (b *Buffer) Line(row int) *Line {
	if row < 0 || row >= b.TotalRows() {
		return nil
	}
	if row < len(b.history) {
		return b.history[row]
	}
	return b.screen[row-len(b.history)]
}

// CellAt returns the cell at the given absolute position.
func (b *Buffer) CellAt(p grid.Point) (Cell, bool) {
	line := b.Line(p.Row)
	if line == nil || p.Col < 0 || p.Col >= len(line.Cells) {
		return Cell{}, false
	}
	return line.Cells[p.Col], true
}

// IsWideAt returns true if the cell at p is either half of a wide
// character.
func (b *Buffer) IsWideAt(p grid.Point) bool {
	cell, ok := b.CellAt(p)
	if !ok {
		return false
	}
	return cell.Width == 2 || cell.IsContinuation()
}

// Cursor returns a copy of the cursor state.
func (b *Buffer) Cursor() Cursor { return b.cursor }

// CursorPosition returns the cursor position in absolute buffer
// coordinates.
func (b *Buffer) CursorPosition() grid.Point {
	return grid.Point{Row: b.ScreenTop() + b.cursor.Y, Col: b.cursor.X}
}

// MoveCursorTo moves the cursor to a screen-relative position,
// clamped to the screen.
func (b *Buffer) MoveCursorTo(col, row int) {
	b.cursor.X = clamp(col, 0, b.width-1)
	b.cursor.Y = clamp(row, 0, b.height-1)
}

// SetCursorVisible sets cursor visibility.
func (b *Buffer) SetCursorVisible(visible bool) { b.cursor.Visible = visible }

// SetCursorOn sets the blink phase.
func (b *Buffer) SetCursorOn(on bool) { b.cursor.On = on }

// SetCursorBlinking sets whether the cursor blinks.
func (b *Buffer) SetCursorBlinking(blinking bool) { b.cursor.Blinking = blinking }

// SetCursorStyle sets the cursor shape.
func (b *Buffer) SetCursorStyle(style CursorStyle) { b.cursor.Style = style }

// SetCursorSize sets the cursor height percentage, clamped to 1-100.
func (b *Buffer) SetCursorSize(size int) { b.cursor.Size = clamp(size, 1, 100) }

// Pen returns the attribute set applied to newly written cells.
func (b *Buffer) Pen() Attr { return b.pen }

// SetPen replaces the attribute set applied to newly written cells.
func (b *Buffer) SetPen(attr Attr) { b.pen = attr }

// AddHyperlink registers a hyperlink and returns its id. Registering
// the same custom id and URI again returns the existing id.
func (b *Buffer) AddHyperlink(uri, customID string) HyperlinkID {
	return b.links.add(uri, customID)
}

// HyperlinkURI returns the URI for a hyperlink id, or "" if unknown.
func (b *Buffer) HyperlinkURI(id HyperlinkID) string {
	return b.links.uri(id)
}

// HyperlinkCustomID returns the custom id for a hyperlink id, or ""
// if the link has none.
func (b *Buffer) HyperlinkCustomID(id HyperlinkID) string {
	return b.links.customID(id)
}

// Title returns the explicitly set title, falling back to the
// starting title.
func (b *Buffer) Title() string {
	if b.titleSet {
		return b.title
	}
	return b.startingTitle
}

// StartingTitle returns the title reported before any SetTitle call.
func (b *Buffer) StartingTitle() string { return b.startingTitle }

// SetTitle sets the reported title.
func (b *Buffer) SetTitle(title string) {
	b.title = title
	b.titleSet = true
}

// TriggerScroll reports a content scroll to the invalidation handler.
func (b *Buffer) TriggerScroll() {
	if b.onInvalidate != nil {
		b.onInvalidate()
	}
}

// SetInvalidateHandler replaces the invalidation handler.
func (b *Buffer) SetInvalidateHandler(fn func()) { b.onInvalidate = fn }

// WriteString writes text at the cursor using the current pen.
// Newlines, carriage returns, and tabs are interpreted; other control
// runes are dropped. Lines wrap at the right edge with the wrap
// marker set.
func (b *Buffer) WriteString(s string) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		// CRLF arrives as one grapheme cluster, so control handling
		// walks the cluster's runes.
		if runes[0] < 32 || runes[0] == 0x7F {
			for _, r := range runes {
				switch r {
				case '\n':
					b.carriageReturn()
					b.lineFeed()
				case '\r':
					b.carriageReturn()
				case '\t':
					b.tab()
				}
			}
			continue
		}

		width := g.Width()
		if width < 1 || width > b.width {
			continue
		}

		if b.cursor.X+width > b.width {
			b.currentLine().Wrapped = true
			b.carriageReturn()
			b.lineFeed()
		}

		line := b.currentLine()
		line.Cells[b.cursor.X] = Cell{Rune: runes[0], Width: width, Attr: b.pen}
		if width == 2 {
			line.Cells[b.cursor.X+1] = Cell{Rune: 0, Width: 0, Attr: b.pen}
		}
		b.cursor.X += width
	}
}

// LineFeed moves the cursor down one row, scrolling the screen when
// it is already on the last row.
func (b *Buffer) LineFeed() { b.lineFeed() }

// CarriageReturn moves the cursor to the first column.
func (b *Buffer) CarriageReturn() { b.carriageReturn() }

// Resize changes the screen dimensions. Growing the row count pulls
// rows back out of history so content stays anchored at the bottom;
// shrinking pushes top rows into history.
func (b *Buffer) Resize(cols, rows int) error {
	if cols < 1 || rows < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, cols, rows)
	}

	if cols != b.width {
		for _, line := range b.screen {
			resizeLine(line, cols)
		}
		b.width = cols
	}

	for rows > len(b.screen) {
		if n := len(b.history); n > 0 {
			line := b.history[n-1]
			b.history = b.history[:n-1]
			resizeLine(line, cols)
			b.screen = append([]*Line{line}, b.screen...)
			b.cursor.Y++
		} else {
			b.screen = append(b.screen, NewLine(cols))
		}
	}
	for rows < len(b.screen) {
		b.history = append(b.history, b.screen[0])
		b.screen = b.screen[1:]
		b.cursor.Y--
	}
	b.height = rows
	b.trimHistory()

	b.cursor.X = clamp(b.cursor.X, 0, b.width-1)
	b.cursor.Y = clamp(b.cursor.Y, 0, b.height-1)
	b.TriggerScroll()
	return nil
}

// RowRunText returns the text of the wrap-joined run of rows starting
// at row, the buffer position of the cell behind each byte of the
// text, and the number of rows the run covers. Continuation cells
// contribute no bytes; their leading cell's position covers them.
func (b *Buffer) RowRunText(row int) (string, []grid.Point, int) {
	var sb strings.Builder
	var origins []grid.Point

	rows := 0
	for r := row; r < b.TotalRows(); r++ {
		line := b.Line(r)
		rows++
		for col, cell := range line.Cells {
			if cell.IsContinuation() || cell.Rune == 0 {
				continue
			}
			n := utf8.RuneLen(cell.Rune)
			if n < 0 {
				continue
			}
			sb.WriteRune(cell.Rune)
			for i := 0; i < n; i++ {
				origins = append(origins, grid.Point{Row: r, Col: col})
			}
		}
		if !line.Wrapped {
			break
		}
	}
	return sb.String(), origins, rows
}

func (b *Buffer) currentLine() *Line {
	return b.screen[b.cursor.Y]
}

func (b *Buffer) carriageReturn() {
	b.cursor.X = 0
}

func (b *Buffer) lineFeed() {
	if b.cursor.Y < b.height-1 {
		b.cursor.Y++
		return
	}
	b.scrollOut()
}

func (b *Buffer) tab() {
	next := b.cursor.X - b.cursor.X%tabWidth + tabWidth
	b.cursor.X = clamp(next, 0, b.width-1)
}

// scrollOut pushes the top screen row into history and opens a blank
// row at the bottom.
func (b *Buffer) scrollOut() {
	b.history = append(b.history, b.screen[0])
	copy(b.screen, b.screen[1:])
	b.screen[b.height-1] = NewLine(b.width)
	b.trimHistory()
	b.TriggerScroll()
}

func (b *Buffer) trimHistory() {
	if len(b.history) > b.maxHistory {
		b.history = b.history[len(b.history)-b.maxHistory:]
	}
}

func resizeLine(line *Line, cols int) {
	if len(line.Cells) > cols {
		line.Cells = line.Cells[:cols]
		return
	}
	for len(line.Cells) < cols {
		line.Cells = append(line.Cells, EmptyCell())
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
