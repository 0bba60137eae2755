// Package term provides the terminal-side collaborators for the render
// boundary: cells, lines, colors, the cursor, hyperlink bookkeeping,
// and the text buffer that fuses scrollback history with the mutable
// screen region.
//
// # Architecture
//
// The package is organized around these core types:
//
//   - Buffer: scrollback plus the mutable screen region, addressed by
//     one absolute row space starting at the oldest retained row
//   - Line: a row of cells with a wrap marker
//   - Cell: one character cell with its attributes
//   - Attr: the pen (colors, flags, hyperlink) applied to new cells
//   - Cursor: position and presentation state of the cursor
//
// Rows [0, ScreenTop) live in scrollback and are immutable. Rows
// [ScreenTop, TotalRows) are the screen region where writes land.
// A linefeed on the last screen row pushes the top screen row into
// scrollback, so ScreenTop grows until scrollback trimming begins.
// Once trimming discards the oldest rows, absolute coordinates held
// by callers shift by the discarded count.
//
// Buffer performs no locking of its own. All access, reads and
// writes alike, is serialized by the owning render boundary.
//
// # Usage
//
//	buf, err := term.NewBuffer(term.Options{Cols: 80, Rows: 24})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	buf.WriteString("hello\n")
//
//	line := buf.Line(buf.ScreenTop())
//	_ = line.Text()
//
// There is no escape-sequence parser here. State is driven through
// the programmatic write API only.
package term
