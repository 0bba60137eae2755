package style

import (
	"testing"

	"github.com/dshills/termview/internal/term"
)

func TestColorsDefaults(t *testing.T) {
	s := NewSettings()

	fg, bg := s.Colors(term.DefaultAttr())
	wantFg, wantBg := s.DefaultColors()
	if fg != wantFg {
		t.Errorf("expected default fg %+v, got %+v", wantFg, fg)
	}
	if bg != wantBg {
		t.Errorf("expected default bg %+v, got %+v", wantBg, bg)
	}
}

func TestColorsIndexedUsesPalette(t *testing.T) {
	s := NewSettings()
	s.SetPaletteColor(1, RGB{R: 1, G: 2, B: 3})

	attr := term.DefaultAttr()
	attr.Foreground = term.ColorRed

	fg, _ := s.Colors(attr)
	if fg != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("expected palette override, got %+v", fg)
	}
}

func TestColorsBoldBrightensLowIndices(t *testing.T) {
	s := NewSettings()

	attr := term.DefaultAttr()
	attr.Foreground = term.ColorRed
	attr.Attributes = term.AttrBold

	fg, _ := s.Colors(attr)
	want := s.PaletteColor(9)
	if fg != want {
		t.Errorf("expected bright red %+v, got %+v", want, fg)
	}

	s.SetIntenseIsBright(false)
	fg, _ = s.Colors(attr)
	if fg != s.PaletteColor(1) {
		t.Errorf("expected plain red with brightening off, got %+v", fg)
	}
}

func TestColorsBoldLiftsRGB(t *testing.T) {
	s := NewSettings()

	attr := term.DefaultAttr()
	attr.Foreground = term.ColorFromRGB(100, 50, 50)
	attr.Attributes = term.AttrBold

	fg, _ := s.Colors(attr)
	plain := RGB{R: 100, G: 50, B: 50}
	if fg == plain {
		t.Errorf("expected brightened color, got unchanged %+v", fg)
	}
	if int(fg.R)+int(fg.G)+int(fg.B) <= int(plain.R)+int(plain.G)+int(plain.B) {
		t.Errorf("expected lighter color than %+v, got %+v", plain, fg)
	}
}

func TestColorsDimFadesTowardBackground(t *testing.T) {
	s := NewSettings()
	s.SetDefaultColors(RGB{R: 255, G: 255, B: 255}, RGB{R: 0, G: 0, B: 0})

	attr := term.DefaultAttr()
	attr.Attributes = term.AttrDim

	fg, _ := s.Colors(attr)
	if fg.R > 220 || fg.R < 30 {
		t.Errorf("expected fg faded between white and black, got %+v", fg)
	}
}

func TestColorsReverseSwaps(t *testing.T) {
	s := NewSettings()

	attr := term.DefaultAttr()
	attr.Attributes = term.AttrReverse

	fg, bg := s.Colors(attr)
	wantFg, wantBg := s.DefaultColors()
	if fg != wantBg || bg != wantFg {
		t.Errorf("expected swapped colors, got fg=%+v bg=%+v", fg, bg)
	}
}

func TestColorsScreenReversedCancelsCellReverse(t *testing.T) {
	s := NewSettings()
	s.SetScreenReversed(true)

	attr := term.DefaultAttr()
	attr.Attributes = term.AttrReverse

	fg, bg := s.Colors(attr)
	wantFg, wantBg := s.DefaultColors()
	if fg != wantFg || bg != wantBg {
		t.Errorf("expected double reverse to cancel, got fg=%+v bg=%+v", fg, bg)
	}
}

func TestColorsHidden(t *testing.T) {
	s := NewSettings()

	attr := term.DefaultAttr()
	attr.Attributes = term.AttrHidden

	fg, bg := s.Colors(attr)
	if fg != bg {
		t.Errorf("expected hidden fg to match bg, got fg=%+v bg=%+v", fg, bg)
	}
}

func TestColorsContrastAdjustment(t *testing.T) {
	s := NewSettings()
	s.SetAdjustContrast(true)

	attr := term.DefaultAttr()
	attr.Foreground = term.ColorFromRGB(10, 10, 10)
	attr.Background = term.ColorFromRGB(12, 12, 12)

	fg, bg := s.Colors(attr)
	if fg == bg {
		t.Errorf("expected contrast nudge, got identical %+v", fg)
	}
}

func TestFlagsForceHyperlinkUnderline(t *testing.T) {
	s := NewSettings()

	attr := term.DefaultAttr()
	attr.Hyperlink = 7

	if !s.Flags(attr).Has(term.AttrUnderline) {
		t.Error("expected hyperlink cell to be underlined")
	}

	attr.Hyperlink = 0
	if s.Flags(attr).Has(term.AttrUnderline) {
		t.Error("expected no underline without hyperlink")
	}
}

func TestRGBHexRoundTrip(t *testing.T) {
	c, err := RGBFromHex("#1a2b3c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (RGB{R: 0x1a, G: 0x2b, B: 0x3c}) {
		t.Errorf("expected parsed components, got %+v", c)
	}
	if got := c.Hex(); got != "#1a2b3c" {
		t.Errorf("expected hex round-trip, got %q", got)
	}

	if _, err := RGBFromHex("nonsense"); err == nil {
		t.Error("expected error for invalid hex")
	}
}
