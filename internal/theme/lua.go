package theme

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/termview/internal/style"
)

// LoadLua evaluates a Lua scheme script and returns the scheme it
// describes. The script runs in a restricted interpreter: only the
// base, table, string, and math libraries are open, and the
// code-loading functions are removed, so a scheme script cannot
// touch files, the environment, or the network. It must return a
// table shaped like the JSON scheme document: a required name,
// optional color fields, and an optional 16-entry palette.
func LoadLua(script string) (*Scheme, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSchemeLibraries(L)

	if err := runScript(L, script); err != nil {
		return nil, fmt.Errorf("run scheme script: %w", err)
	}

	tbl, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: script must return a table", ErrInvalidScheme)
	}
	return schemeFromTable(tbl)
}

// openSchemeLibraries opens the safe subset of the Lua standard
// library and strips the loaders that could pull in more.
func openSchemeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug, and package are never opened. The base library
	// still registers code loaders; remove them too.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// runScript executes the script with panic recovery, since gopher-lua
// surfaces some internal failures as panics.
func runScript(L *lua.LState, script string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return L.DoString(script)
}

func schemeFromTable(tbl *lua.LTable) (*Scheme, error) {
	name, ok := tableString(tbl, "name")
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: missing scheme name", ErrInvalidScheme)
	}

	s := DefaultScheme()
	s.Name = name

	for key, dst := range colorKeys(s) {
		hex, ok := tableString(tbl, key)
		if !ok {
			continue
		}
		c, err := style.RGBFromHex(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidScheme, key, err)
		}
		*dst = c
	}

	switch pal := tbl.RawGetString("palette").(type) {
	case *lua.LNilType:
	case *lua.LTable:
		if pal.Len() != len(s.Palette) {
			return nil, fmt.Errorf("%w: palette needs %d entries, got %d",
				ErrInvalidScheme, len(s.Palette), pal.Len())
		}
		for i := range s.Palette {
			hex, ok := pal.RawGetInt(i + 1).(lua.LString)
			if !ok {
				return nil, fmt.Errorf("%w: palette[%d] is not a string", ErrInvalidScheme, i)
			}
			c, err := style.RGBFromHex(string(hex))
			if err != nil {
				return nil, fmt.Errorf("%w: palette[%d]: %v", ErrInvalidScheme, i, err)
			}
			s.Palette[i] = c
		}
	default:
		return nil, fmt.Errorf("%w: palette must be a table", ErrInvalidScheme)
	}

	return s, nil
}

func tableString(tbl *lua.LTable, key string) (string, bool) {
	if v, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(v), true
	}
	return "", false
}
