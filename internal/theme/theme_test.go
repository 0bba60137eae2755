package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/termview/internal/style"
)

func TestBuiltinSchemes(t *testing.T) {
	for _, name := range BuiltinNames() {
		s, ok := Builtin(name)
		if !ok {
			t.Fatalf("Builtin(%q) not found", name)
		}
		if s.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, s.Name)
		}
	}

	if _, ok := Builtin("no-such-scheme"); ok {
		t.Error("Builtin returned a scheme for an unknown name")
	}
}

func TestApplyInstallsSchemeColors(t *testing.T) {
	s := DefaultScheme()
	s.Foreground = style.RGB{R: 1, G: 2, B: 3}
	s.Background = style.RGB{R: 4, G: 5, B: 6}
	s.SelectionBackground = style.RGB{R: 7, G: 8, B: 9}
	s.Palette[3] = style.RGB{R: 10, G: 11, B: 12}

	settings := style.NewSettings()
	s.Apply(settings)

	fg, bg := settings.DefaultColors()
	if fg != s.Foreground || bg != s.Background {
		t.Errorf("DefaultColors() = %v, %v", fg, bg)
	}
	if got := settings.SelectionBackground(); got != s.SelectionBackground {
		t.Errorf("SelectionBackground() = %v", got)
	}
	if got := settings.PaletteColor(3); got != s.Palette[3] {
		t.Errorf("PaletteColor(3) = %v", got)
	}
}

func TestLoadResolvesBuiltinFirst(t *testing.T) {
	s, err := Load("midnight")
	if err != nil {
		t.Fatalf("Load(midnight): %v", err)
	}
	if s.Name != "midnight" {
		t.Errorf("Name = %q, want midnight", s.Name)
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "scheme.json")
	if err := os.WriteFile(jsonPath, []byte(`{"name":"from-json","cursor":"#ff0000"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	luaPath := filepath.Join(dir, "scheme.lua")
	if err := os.WriteFile(luaPath, []byte(`return { name = "from-lua" }`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Load(json): %v", err)
	}
	if s.Name != "from-json" || s.Cursor != (style.RGB{R: 255}) {
		t.Errorf("json scheme = %q cursor %v", s.Name, s.Cursor)
	}

	s, err = Load(luaPath)
	if err != nil {
		t.Fatalf("Load(lua): %v", err)
	}
	if s.Name != "from-lua" {
		t.Errorf("lua scheme = %q", s.Name)
	}
}

func TestLoadUnknownScheme(t *testing.T) {
	_, err := Load("definitely-not-a-scheme")
	if !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("err = %v, want ErrUnknownScheme", err)
	}
}
