// Package theme loads and applies color schemes: a named 16-color
// palette plus the default, cursor, and overlay colors the render
// boundary resolves attributes against.
//
// Schemes come from three places: compiled-in builtins, JSON scheme
// files, and Lua scheme scripts evaluated in a restricted interpreter.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/termview/internal/style"
	"github.com/dshills/termview/internal/term"
)

// Scheme is a complete color scheme.
type Scheme struct {
	Name string

	// Palette holds the 16 ANSI colors.
	Palette [16]style.RGB

	Foreground style.RGB
	Background style.RGB
	Cursor     style.RGB

	SelectionBackground     style.RGB
	SearchBackground        style.RGB
	FocusedSearchBackground style.RGB
}

// Apply installs the scheme into the given settings.
func (s *Scheme) Apply(settings *style.Settings) {
	for i, c := range s.Palette {
		settings.SetPaletteColor(i, c)
	}
	settings.SetDefaultColors(s.Foreground, s.Background)
	settings.SetCursorColor(s.Cursor)
	settings.SetSelectionBackground(s.SelectionBackground)
	settings.SetSearchBackground(s.SearchBackground)
	settings.SetFocusedSearchBackground(s.FocusedSearchBackground)
}

// DefaultScheme returns the xterm-flavored scheme the render settings
// start with.
func DefaultScheme() *Scheme {
	s := &Scheme{
		Name:                    "default",
		Foreground:              style.RGB{R: 229, G: 229, B: 229},
		Background:              style.RGB{R: 0, G: 0, B: 0},
		Cursor:                  style.RGB{R: 255, G: 255, B: 255},
		SelectionBackground:     style.RGB{R: 38, G: 79, B: 120},
		SearchBackground:        style.RGB{R: 128, G: 94, B: 0},
		FocusedSearchBackground: style.RGB{R: 196, G: 132, B: 0},
	}
	for i := range s.Palette {
		c := term.ColorFromIndex(i)
		s.Palette[i] = style.RGB{R: c.R, G: c.G, B: c.B}
	}
	return s
}

// midnightScheme is a dim blue-on-dark scheme.
func midnightScheme() *Scheme {
	s := DefaultScheme()
	s.Name = "midnight"
	s.Foreground = style.RGB{R: 190, G: 202, B: 220}
	s.Background = style.RGB{R: 11, G: 14, B: 26}
	s.Cursor = style.RGB{R: 255, G: 204, B: 0}
	s.SelectionBackground = style.RGB{R: 31, G: 48, B: 94}
	s.SearchBackground = style.RGB{R: 96, G: 78, B: 10}
	s.FocusedSearchBackground = style.RGB{R: 173, G: 134, B: 0}
	s.Palette[0] = style.RGB{R: 20, G: 24, B: 38}
	s.Palette[4] = style.RGB{R: 80, G: 120, B: 220}
	s.Palette[8] = style.RGB{R: 90, G: 100, B: 120}
	s.Palette[12] = style.RGB{R: 120, G: 160, B: 255}
	return s
}

// paperScheme is a light scheme for bright rooms.
func paperScheme() *Scheme {
	s := DefaultScheme()
	s.Name = "paper"
	s.Foreground = style.RGB{R: 40, G: 40, B: 40}
	s.Background = style.RGB{R: 246, G: 243, B: 236}
	s.Cursor = style.RGB{R: 20, G: 20, B: 20}
	s.SelectionBackground = style.RGB{R: 196, G: 212, B: 232}
	s.SearchBackground = style.RGB{R: 240, G: 220, B: 150}
	s.FocusedSearchBackground = style.RGB{R: 244, G: 192, B: 80}
	s.Palette[7] = style.RGB{R: 90, G: 90, B: 90}
	s.Palette[15] = style.RGB{R: 30, G: 30, B: 30}
	return s
}

// builtins maps scheme names to their constructors.
var builtins = map[string]func() *Scheme{
	"default":  DefaultScheme,
	"midnight": midnightScheme,
	"paper":    paperScheme,
}

// Builtin returns the named compiled-in scheme.
func Builtin(name string) (*Scheme, bool) {
	ctor, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// BuiltinNames returns the names of all compiled-in schemes, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load resolves a scheme by builtin name or by file path. Files
// ending in .json are parsed as JSON schemes, files ending in .lua
// are evaluated as Lua scheme scripts.
func Load(nameOrPath string) (*Scheme, error) {
	if s, ok := Builtin(nameOrPath); ok {
		return s, nil
	}

	switch strings.ToLower(filepath.Ext(nameOrPath)) {
	case ".json":
		data, err := os.ReadFile(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("read scheme file: %w", err)
		}
		return ParseJSON(data)
	case ".lua":
		data, err := os.ReadFile(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("read scheme script: %w", err)
		}
		return LoadLua(string(data))
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, nameOrPath)
}
