package pattern

import (
	"regexp"
	"testing"

	"github.com/dshills/termview/internal/grid"
	"github.com/dshills/termview/internal/term"
)

func newBuffer(t *testing.T, cols, rows int) *term.Buffer {
	t.Helper()
	buf, err := term.NewBuffer(term.Options{Cols: cols, Rows: rows})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf
}

func TestScanFindsURL(t *testing.T) {
	buf := newBuffer(t, 60, 4)
	buf.WriteString("see https://example.com/docs for details")

	d := NewDetector()
	intervals := d.Scan(buf, 0, buf.TotalRows())

	if len(intervals) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(intervals))
	}
	iv := intervals[0]
	if iv.ID != URLPatternID {
		t.Errorf("expected URL pattern id, got %d", iv.ID)
	}
	if !iv.Start.Equals(grid.NewPoint(0, 4)) {
		t.Errorf("expected start at col 4, got %v", iv.Start)
	}
	if !iv.End.Equals(grid.NewPoint(0, 28)) {
		t.Errorf("expected end after the URL, got %v", iv.End)
	}
}

func TestScanAcrossWrappedRows(t *testing.T) {
	buf := newBuffer(t, 10, 4)
	buf.WriteString("x https://example.com/long")

	d := NewDetector()
	tree := NewTree(d.Scan(buf, 0, buf.TotalRows()))

	if tree.Empty() {
		t.Fatal("expected a match across the wrap")
	}
	if got := tree.IDsAt(grid.NewPoint(0, 5)); len(got) != 1 {
		t.Errorf("expected coverage on first row, got %v", got)
	}
	if got := tree.IDsAt(grid.NewPoint(1, 3)); len(got) != 1 {
		t.Errorf("expected coverage on wrapped row, got %v", got)
	}
	if got := tree.IDsAt(grid.NewPoint(0, 0)); got != nil {
		t.Errorf("expected no coverage before the URL, got %v", got)
	}
}

func TestScanMultiplePatterns(t *testing.T) {
	buf := newBuffer(t, 60, 4)
	buf.WriteString("error E1234 at https://bugs.example.com/E1234")

	d := NewDetector()
	codeID := d.Register(regexp.MustCompile(`\bE\d{4}\b`))

	tree := NewTree(d.Scan(buf, 0, buf.TotalRows()))

	got := tree.IDsAt(grid.NewPoint(0, 7))
	if len(got) != 1 || got[0] != codeID {
		t.Errorf("expected code pattern at col 7, got %v", got)
	}

	// The URL's trailing path also matches the code pattern, so both
	// ids cover it.
	urlCode := tree.IDsAt(grid.NewPoint(0, 41))
	if len(urlCode) != 2 {
		t.Errorf("expected overlapping url and code ids, got %v", urlCode)
	}
}

func TestScanRowWindow(t *testing.T) {
	buf := newBuffer(t, 40, 6)
	buf.WriteString("https://one.example.com\n\nhttps://two.example.com")

	d := NewDetector()

	all := d.Scan(buf, 0, buf.TotalRows())
	if len(all) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(all))
	}

	windowed := d.Scan(buf, 2, buf.TotalRows())
	if len(windowed) != 1 {
		t.Fatalf("expected 1 interval in window, got %d", len(windowed))
	}
	if windowed[0].Start.Row != 2 {
		t.Errorf("expected match on row 2, got row %d", windowed[0].Start.Row)
	}

	if got := d.Scan(buf, -5, buf.TotalRows()+5); len(got) != 2 {
		t.Errorf("expected clamped scan to find 2 intervals, got %d", len(got))
	}
}
