// Package main is the entry point for the termview viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termview/internal/backend"
	"github.com/dshills/termview/internal/pattern"
	"github.com/dshills/termview/internal/render"
	"github.com/dshills/termview/internal/search"
	"github.com/dshills/termview/internal/style"
	"github.com/dshills/termview/internal/term"
	"github.com/dshills/termview/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	Theme string
	File  string
	Cols  int
	Rows  int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	scheme, err := theme.Load(opts.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load theme: %v\n", err)
		return 1
	}
	settings := style.NewSettings()
	scheme.Apply(settings)

	content, title, err := loadContent(opts.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	buf, err := term.NewBuffer(term.Options{
		Cols:          opts.Cols,
		Rows:          opts.Rows,
		StartingTitle: title,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create buffer: %v\n", err)
		return 1
	}
	src := render.NewSource(buf, render.WithSettings(settings))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.Fini()
		os.Exit(0)
	}()

	v := &viewer{
		screen:    screen,
		buf:       buf,
		src:       src,
		painter:   backend.NewPainter(screen, src),
		fitScreen: opts.Cols == 0 && opts.Rows == 0,
	}
	v.feed(content)
	v.loop()
	return 0
}

// viewer drives the demo event loop: scrolling, search cycling, and
// pattern inspection over a programmatically fed buffer.
type viewer struct {
	screen  tcell.Screen
	buf     *term.Buffer
	src     *render.Source
	painter *backend.Painter

	// fitScreen tracks the buffer with the screen size; explicit
	// -cols/-rows flags pin it instead.
	fitScreen bool

	searching bool
	query     []rune
	results   *search.Results
	current   int
	status    string
}

// feed writes the content into the buffer, sizes it to the screen,
// and scans it for patterns.
func (v *viewer) feed(content string) {
	view := v.src.Acquire()
	defer view.Release()

	if cols, rows := v.screen.Size(); v.fitScreen && cols > 0 && rows > 0 {
		_ = view.Resize(cols, rows)
	}
	view.WriteString(content)

	det := pattern.NewDetector()
	view.SetPatternTree(pattern.NewTree(det.Scan(v.buf, 0, v.buf.TotalRows())))
}

func (v *viewer) loop() {
	for {
		v.draw()
		if quit := v.handle(v.screen.PollEvent()); quit {
			return
		}
	}
}

func (v *viewer) draw() {
	v.painter.Paint()

	status := v.status
	if v.searching {
		status = "/" + string(v.query)
	}
	if status != "" {
		v.drawStatus(status)
		v.screen.Show()
	}
}

// drawStatus overwrites the bottom screen row with the status text.
// Demo chrome only; the painter knows nothing about it.
func (v *viewer) drawStatus(text string) {
	cols, rows := v.screen.Size()
	st := tcell.StyleDefault.Reverse(true)
	runes := []rune(text)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, rows-1, r, nil, st)
	}
}

func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if cols, rows := ev.Size(); v.fitScreen && cols > 0 && rows > 0 {
			view := v.src.Acquire()
			_ = view.Resize(cols, rows)
			view.Release()
		}
		v.screen.Sync()
	case *tcell.EventKey:
		if v.searching {
			v.handleSearchKey(ev)
			return false
		}
		return v.handleKey(ev)
	}
	return false
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	view := v.src.Acquire()
	defer view.Release()

	height := view.Viewport().Height

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		view.ScrollBy(1)
	case tcell.KeyDown:
		view.ScrollBy(-1)
	case tcell.KeyPgUp:
		view.ScrollBy(height)
	case tcell.KeyPgDn:
		view.ScrollBy(-height)
	case tcell.KeyHome:
		view.ScrollTo(view.MaxScroll())
	case tcell.KeyEnd:
		view.ScrollTo(0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case '/':
			v.searching = true
			v.query = v.query[:0]
		case 'n':
			v.cycleMatch(view, 1)
		case 'p', 'N':
			v.cycleMatch(view, -1)
		case 'c':
			v.results = nil
			v.status = ""
			view.SetSearchHighlights(nil)
			view.SetFocusedSearchHighlight(nil)
			view.ClearSelection()
		case 'u':
			v.inspect(view)
		}
	}
	return false
}

func (v *viewer) handleSearchKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		v.searching = false
	case tcell.KeyEnter:
		v.searching = false
		v.runSearch(string(v.query))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(v.query) > 0 {
			v.query = v.query[:len(v.query)-1]
		}
	case tcell.KeyRune:
		v.query = append(v.query, ev.Rune())
	}
}

// runSearch replaces the highlight set with the hits for query and
// focuses the first one, scrolling it into view.
func (v *viewer) runSearch(query string) {
	view := v.src.Acquire()
	defer view.Release()

	res, err := search.Find(v.buf, query, search.Options{})
	if err != nil {
		v.status = fmt.Sprintf("search: %v", err)
		return
	}

	v.results = res
	v.current = 0
	view.SetSearchHighlights(res.HighlightSet())
	if res.Len() == 0 {
		v.status = fmt.Sprintf("no matches for %q", query)
		view.SetFocusedSearchHighlight(nil)
		return
	}
	view.SetFocusedSearchHighlight(res.Match(0))
	v.status = fmt.Sprintf("match 1/%d  (n/p cycle, c clear)", res.Len())
}

// cycleMatch moves the focus delta hits forward or back, wrapping at
// the ends.
func (v *viewer) cycleMatch(view *render.View, delta int) {
	n := v.results.Len()
	if n == 0 {
		return
	}
	v.current = ((v.current+delta)%n + n) % n
	view.SetFocusedSearchHighlight(v.results.Match(v.current))
	v.status = fmt.Sprintf("match %d/%d  (n/p cycle, c clear)", v.current+1, n)
}

// inspect reports the pattern ids and hyperlink under the cursor.
func (v *viewer) inspect(view *render.View) {
	pos := view.CursorPosition()
	ids := view.PatternsAt(pos)

	var parts []string
	if len(ids) > 0 {
		parts = append(parts, fmt.Sprintf("patterns %v", ids))
	}
	if cell, ok := view.CellAt(pos); ok && cell.Attr.Hyperlink != 0 {
		parts = append(parts, "link "+view.HyperlinkURI(cell.Attr.Hyperlink))
	}
	if len(parts) == 0 {
		v.status = fmt.Sprintf("nothing at %s", pos)
		return
	}
	v.status = fmt.Sprintf("%s: %s", pos, strings.Join(parts, ", "))
}

// loadContent returns the text to feed and the starting title.
func loadContent(path string) (string, string, error) {
	if path == "" {
		return sampleText(), "termview demo", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), filepath.Base(path), nil
}

// sampleText generates enough numbered content to scroll, with a few
// URLs for the pattern detector to find.
func sampleText() string {
	var sb strings.Builder
	sb.WriteString("termview demo buffer\n")
	sb.WriteString("scroll: arrows, PgUp/PgDn, Home/End   search: /   quit: q\n")
	sb.WriteString("docs at https://github.com/gdamore/tcell for the painter\n\n")
	for i := 1; i <= 200; i++ {
		fmt.Fprintf(&sb, "line %3d: the quick brown fox jumps over the lazy dog\n", i)
		if i%40 == 0 {
			fmt.Fprintf(&sb, "marker %d: see https://example.com/section/%d\n", i, i)
		}
	}
	sb.WriteString("end of sample: press / and search for fox\n")
	return sb.String()
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.Theme, "theme", "default", "Color scheme: builtin name or .json/.lua file")
	flag.StringVar(&opts.Theme, "t", "default", "Color scheme (shorthand)")
	flag.StringVar(&opts.File, "f", "", "File to load instead of the sample text")
	flag.IntVar(&opts.Cols, "cols", 0, "Initial buffer width (0 = screen width)")
	flag.IntVar(&opts.Rows, "rows", 0, "Initial buffer height (0 = screen height)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Termview - terminal render-state viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termview [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  termview                    View the built-in sample\n")
		fmt.Fprintf(os.Stderr, "  termview -f notes.txt       View a file\n")
		fmt.Fprintf(os.Stderr, "  termview -theme midnight    Use a builtin scheme\n")
		fmt.Fprintf(os.Stderr, "  termview -theme my.lua      Use a Lua scheme script\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Termview %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
