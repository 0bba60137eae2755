package theme

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/termview/internal/style"
)

// colorKeys maps JSON document keys to their scheme fields.
func colorKeys(s *Scheme) map[string]*style.RGB {
	return map[string]*style.RGB{
		"foreground":     &s.Foreground,
		"background":     &s.Background,
		"cursor":         &s.Cursor,
		"selection":      &s.SelectionBackground,
		"search":         &s.SearchBackground,
		"focused_search": &s.FocusedSearchBackground,
	}
}

// ParseJSON parses a JSON scheme document. The document must carry a
// name; colors it omits keep their defaults. A palette, when present,
// must hold exactly 16 hex entries.
func ParseJSON(data []byte) (*Scheme, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidScheme)
	}
	doc := gjson.ParseBytes(data)

	name := doc.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("%w: missing scheme name", ErrInvalidScheme)
	}

	s := DefaultScheme()
	s.Name = name

	for key, dst := range colorKeys(s) {
		res := doc.Get(key)
		if !res.Exists() {
			continue
		}
		c, err := style.RGBFromHex(res.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidScheme, key, err)
		}
		*dst = c
	}

	if pal := doc.Get("palette"); pal.Exists() {
		entries := pal.Array()
		if len(entries) != len(s.Palette) {
			return nil, fmt.Errorf("%w: palette needs %d entries, got %d",
				ErrInvalidScheme, len(s.Palette), len(entries))
		}
		for i, entry := range entries {
			c, err := style.RGBFromHex(entry.String())
			if err != nil {
				return nil, fmt.Errorf("%w: palette[%d]: %v", ErrInvalidScheme, i, err)
			}
			s.Palette[i] = c
		}
	}

	return s, nil
}

// ExportJSON renders a scheme as a JSON document ParseJSON accepts.
func ExportJSON(s *Scheme) ([]byte, error) {
	out := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, value)
	}

	set("name", s.Name)
	set("foreground", s.Foreground.Hex())
	set("background", s.Background.Hex())
	set("cursor", s.Cursor.Hex())
	set("selection", s.SelectionBackground.Hex())
	set("search", s.SearchBackground.Hex())
	set("focused_search", s.FocusedSearchBackground.Hex())
	for _, c := range s.Palette {
		set("palette.-1", c.Hex())
	}

	if err != nil {
		return nil, fmt.Errorf("encode scheme: %w", err)
	}
	return out, nil
}
