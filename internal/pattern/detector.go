package pattern

import (
	"regexp"

	"github.com/dshills/termview/internal/grid"
	"github.com/dshills/termview/internal/term"
)

// urlExpr recognizes http and https URLs in buffer text.
const urlExpr = `(?i)\bhttps?://[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b[-a-zA-Z0-9()@:%_+.~#?&/=]*`

// URLPatternID is the id reported for automatically detected URLs.
const URLPatternID uint64 = 0

// Detector scans buffer rows against a set of registered patterns and
// produces the intervals their matches cover.
type Detector struct {
	patterns []*regexp.Regexp
}

// NewDetector creates a detector with URL detection registered under
// URLPatternID.
func NewDetector() *Detector {
	return &Detector{
		patterns: []*regexp.Regexp{regexp.MustCompile(urlExpr)},
	}
}

// Register adds a pattern and returns its id. Ids are assigned in
// registration order.
func (d *Detector) Register(re *regexp.Regexp) uint64 {
	d.patterns = append(d.patterns, re)
	return uint64(len(d.patterns) - 1)
}

// Scan matches every registered pattern against the rows in
// [top, bottom) and returns the covered intervals. Wrapped rows are
// scanned as one logical run, so a match may span rows. The caller
// passes the result to NewTree.
func (d *Detector) Scan(buf *term.Buffer, top, bottom int) []Interval {
	if top < 0 {
		top = 0
	}
	if bottom > buf.TotalRows() {
		bottom = buf.TotalRows()
	}

	var intervals []Interval
	for row := top; row < bottom; {
		text, origins, rows := buf.RowRunText(row)
		for id, re := range d.patterns {
			for _, m := range re.FindAllStringIndex(text, -1) {
				if iv, ok := matchInterval(buf, origins, m[0], m[1], uint64(id)); ok {
					intervals = append(intervals, iv)
				}
			}
		}
		row += rows
	}
	return intervals
}

// matchInterval converts a byte range of run text into a buffer
// interval. The end point is the cell after the last matched cell in
// reading order.
func matchInterval(buf *term.Buffer, origins []grid.Point, start, end int, id uint64) (Interval, bool) {
	if start >= end || end > len(origins) {
		return Interval{}, false
	}

	last := origins[end-1]
	width := 1
	if cell, ok := buf.CellAt(last); ok && cell.Width == 2 {
		width = 2
	}
	endPoint := grid.Point{Row: last.Row, Col: last.Col + width}
	return Interval{Start: origins[start], End: endPoint, ID: id}, true
}
