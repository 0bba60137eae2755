package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termview/internal/style"
	"github.com/dshills/termview/internal/term"
)

// convertStyle builds the tcell style for a cell. Reverse, dim, and
// hidden are already folded into the resolved colors, so only the
// attributes tcell must render itself are forwarded.
func convertStyle(fg, bg style.RGB, flags term.CellAttributes) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))

	if flags.Has(term.AttrBold) {
		st = st.Bold(true)
	}
	if flags.Has(term.AttrItalic) {
		st = st.Italic(true)
	}
	if flags.Has(term.AttrUnderline) {
		st = st.Underline(true)
	}
	if flags.Has(term.AttrBlink) {
		st = st.Blink(true)
	}
	if flags.Has(term.AttrStrike) {
		st = st.StrikeThrough(true)
	}
	return st
}

// convertCursorStyle maps a cursor shape and blink mode to the tcell
// cursor style.
func convertCursorStyle(cs term.CursorStyle, blinking bool) tcell.CursorStyle {
	switch cs {
	case term.CursorUnderline:
		if blinking {
			return tcell.CursorStyleBlinkingUnderline
		}
		return tcell.CursorStyleSteadyUnderline
	case term.CursorBar:
		if blinking {
			return tcell.CursorStyleBlinkingBar
		}
		return tcell.CursorStyleSteadyBar
	default:
		if blinking {
			return tcell.CursorStyleBlinkingBlock
		}
		return tcell.CursorStyleSteadyBlock
	}
}
