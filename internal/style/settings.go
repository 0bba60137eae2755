// Package style resolves cell attributes to the concrete colors a
// painter draws with: palette lookup, bold brightening, dim fade,
// reverse video, and the overlay colors for selection and search.
package style

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/termview/internal/term"
)

// RGB is a fully resolved display color.
type RGB struct {
	R, G, B uint8
}

// RGBFromHex parses "#rrggbb" or "#rgb".
func RGBFromHex(hex string) (RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, err
	}
	return fromColorful(c), nil
}

// Hex returns the "#rrggbb" form of the color.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(col colorful.Color) RGB {
	r, g, b := col.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// minContrast is the Lab distance below which foreground and
// background are treated as indistinguishable.
const minContrast = 0.12

// Settings holds the active palette and the knobs that shape
// attribute resolution.
type Settings struct {
	table     [256]RGB
	defaultFg RGB
	defaultBg RGB

	cursorColor RGB
	selectionBg RGB
	searchBg    RGB
	focusedBg   RGB
	highlightFg RGB

	screenReversed  bool
	intenseIsBright bool
	adjustContrast  bool
}

// NewSettings returns settings with the xterm default palette.
func NewSettings() *Settings {
	s := &Settings{
		defaultFg:       RGB{R: 229, G: 229, B: 229},
		defaultBg:       RGB{R: 0, G: 0, B: 0},
		cursorColor:     RGB{R: 255, G: 255, B: 255},
		selectionBg:     RGB{R: 38, G: 79, B: 120},
		searchBg:        RGB{R: 128, G: 94, B: 0},
		focusedBg:       RGB{R: 196, G: 132, B: 0},
		highlightFg:     RGB{R: 255, G: 255, B: 255},
		intenseIsBright: true,
	}
	for i := 0; i < 256; i++ {
		c := term.ColorFromIndex(i)
		s.table[i] = RGB{R: c.R, G: c.G, B: c.B}
	}
	return s
}

// PaletteColor returns the palette entry at index 0-255.
func (s *Settings) PaletteColor(index int) RGB {
	if index < 0 || index > 255 {
		return s.defaultFg
	}
	return s.table[index]
}

// SetPaletteColor replaces the palette entry at index 0-255.
func (s *Settings) SetPaletteColor(index int, c RGB) {
	if index < 0 || index > 255 {
		return
	}
	s.table[index] = c
}

// DefaultColors returns the default foreground and background.
func (s *Settings) DefaultColors() (fg, bg RGB) {
	return s.defaultFg, s.defaultBg
}

// SetDefaultColors replaces the default foreground and background.
func (s *Settings) SetDefaultColors(fg, bg RGB) {
	s.defaultFg = fg
	s.defaultBg = bg
}

// CursorColor returns the cursor fill color.
func (s *Settings) CursorColor() RGB { return s.cursorColor }

// SetCursorColor replaces the cursor fill color.
func (s *Settings) SetCursorColor(c RGB) { s.cursorColor = c }

// SelectionBackground returns the selection overlay background.
func (s *Settings) SelectionBackground() RGB { return s.selectionBg }

// SetSelectionBackground replaces the selection overlay background.
func (s *Settings) SetSelectionBackground(c RGB) { s.selectionBg = c }

// SearchBackground returns the search highlight background.
func (s *Settings) SearchBackground() RGB { return s.searchBg }

// SetSearchBackground replaces the search highlight background.
func (s *Settings) SetSearchBackground(c RGB) { s.searchBg = c }

// FocusedSearchBackground returns the focused search highlight
// background.
func (s *Settings) FocusedSearchBackground() RGB { return s.focusedBg }

// SetFocusedSearchBackground replaces the focused search highlight
// background.
func (s *Settings) SetFocusedSearchBackground(c RGB) { s.focusedBg = c }

// HighlightForeground returns the foreground painted inside selection
// and search overlays.
func (s *Settings) HighlightForeground() RGB { return s.highlightFg }

// SetHighlightForeground replaces the overlay foreground.
func (s *Settings) SetHighlightForeground(c RGB) { s.highlightFg = c }

// SetScreenReversed flips the whole screen's colors.
func (s *Settings) SetScreenReversed(reversed bool) { s.screenReversed = reversed }

// ScreenReversed reports whether the whole screen is reversed.
func (s *Settings) ScreenReversed() bool { return s.screenReversed }

// SetIntenseIsBright controls whether bold text on the first eight
// palette colors uses the bright variants.
func (s *Settings) SetIntenseIsBright(bright bool) { s.intenseIsBright = bright }

// SetAdjustContrast enables nudging foregrounds that are too close to
// their background to stay readable.
func (s *Settings) SetAdjustContrast(adjust bool) { s.adjustContrast = adjust }

// Colors resolves an attribute set to concrete foreground and
// background colors.
func (s *Settings) Colors(attr term.Attr) (fg, bg RGB) {
	fg = s.resolve(attr.Foreground, s.defaultFg)
	bg = s.resolve(attr.Background, s.defaultBg)

	if attr.Attributes.Has(term.AttrBold) && s.intenseIsBright {
		fg = s.brighten(attr.Foreground, fg)
	}
	if attr.Attributes.Has(term.AttrDim) {
		fg = fromColorful(fg.colorful().BlendLab(bg.colorful(), 0.5))
	}
	if attr.Attributes.Has(term.AttrReverse) != s.screenReversed {
		fg, bg = bg, fg
	}
	if attr.Attributes.Has(term.AttrHidden) {
		fg = bg
	}

	if s.adjustContrast {
		fg = ensureContrast(fg, bg)
	}
	return fg, bg
}

// Flags returns the attribute flags a painter should honor, forcing
// an underline on hyperlinked cells.
func (s *Settings) Flags(attr term.Attr) term.CellAttributes {
	flags := attr.Attributes
	if attr.Hyperlink != 0 {
		flags = flags.With(term.AttrUnderline)
	}
	return flags
}

func (s *Settings) resolve(c term.Color, def RGB) RGB {
	if c.Default {
		return def
	}
	if c.Index >= 0 && c.Index < 256 {
		return s.table[c.Index]
	}
	return RGB{R: c.R, G: c.G, B: c.B}
}

// brighten maps the dim palette colors to their bright counterparts
// and lifts the lightness of everything else.
func (s *Settings) brighten(src term.Color, resolved RGB) RGB {
	if !src.Default && src.Index >= 0 && src.Index < 8 {
		return s.table[src.Index+8]
	}
	h, sat, l := resolved.colorful().Hsl()
	l = l*1.2 + 0.05
	if l > 1 {
		l = 1
	}
	return fromColorful(colorful.Hsl(h, sat, l))
}

// ensureContrast pushes the foreground away from the background when
// the two are nearly identical.
func ensureContrast(fg, bg RGB) RGB {
	f := fg.colorful()
	b := bg.colorful()
	if f.DistanceLab(b) >= minContrast {
		return fg
	}
	_, _, l := b.Hsl()
	h, sat, fl := f.Hsl()
	if l > 0.5 {
		fl -= 0.3
	} else {
		fl += 0.3
	}
	if fl < 0 {
		fl = 0
	}
	if fl > 1 {
		fl = 1
	}
	return fromColorful(colorful.Hsl(h, sat, fl))
}
