package theme

import (
	"errors"
	"testing"

	"github.com/dshills/termview/internal/style"
)

func TestLoadLuaScheme(t *testing.T) {
	script := `
		local bright = "#ffcc00"
		return {
			name = "lua-test",
			foreground = "#aabbcc",
			cursor = bright,
		}
	`

	s, err := LoadLua(script)
	if err != nil {
		t.Fatalf("LoadLua: %v", err)
	}
	if s.Name != "lua-test" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.Foreground != (style.RGB{R: 0xaa, G: 0xbb, B: 0xcc}) {
		t.Errorf("Foreground = %v", s.Foreground)
	}
	if s.Cursor != (style.RGB{R: 0xff, G: 0xcc, B: 0x00}) {
		t.Errorf("Cursor = %v", s.Cursor)
	}
}

func TestLoadLuaPalette(t *testing.T) {
	script := `
		local pal = {}
		for i = 1, 16 do
			pal[i] = string.format("#%02x0000", i * 10)
		end
		return { name = "computed", palette = pal }
	`

	s, err := LoadLua(script)
	if err != nil {
		t.Fatalf("LoadLua: %v", err)
	}
	if s.Palette[0] != (style.RGB{R: 10}) {
		t.Errorf("Palette[0] = %v", s.Palette[0])
	}
	if s.Palette[15] != (style.RGB{R: 160}) {
		t.Errorf("Palette[15] = %v", s.Palette[15])
	}
}

func TestLoadLuaErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"syntax error", `return {`},
		{"not a table", `return "nope"`},
		{"missing name", `return { foreground = "#ffffff" }`},
		{"bad color", `return { name = "x", cursor = "red" }`},
		{"short palette", `return { name = "x", palette = { "#000000" } }`},
		{"palette not a table", `return { name = "x", palette = "#000000" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadLua(tt.script); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadLuaInvalidSchemeSentinel(t *testing.T) {
	_, err := LoadLua(`return 42`)
	if !errors.Is(err, ErrInvalidScheme) {
		t.Errorf("err = %v, want ErrInvalidScheme", err)
	}
}

func TestLuaSandboxBlocksIO(t *testing.T) {
	scripts := map[string]string{
		"io":         `return { name = io.read() }`,
		"os":         `return { name = os.getenv("HOME") }`,
		"dofile":     `return dofile("/etc/passwd")`,
		"loadstring": `return loadstring("return {}")()`,
	}

	for name, script := range scripts {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadLua(script); err == nil {
				t.Fatal("sandboxed script succeeded")
			}
		})
	}
}
