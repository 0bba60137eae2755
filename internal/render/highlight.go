package render

import (
	"sort"

	"github.com/dshills/termview/internal/grid"
)

// visibleHighlightsLocked returns the contiguous run of highlights
// whose top row falls inside the viewport. The store is kept sorted
// by top row by its producer, so both bounds come from binary
// searches. The result aliases the store, which is safe: replacement
// swaps in a fresh slice and never writes through old ones.
func (s *Source) visibleHighlightsLocked() []grid.Rect {
	if len(s.highlights) == 0 {
		return nil
	}

	vp := s.viewportLocked()
	top := vp.Top
	bottom := vp.BottomExclusive()

	lo := sort.Search(len(s.highlights), func(i int) bool {
		return s.highlights[i].Top >= top
	})
	hi := sort.Search(len(s.highlights), func(i int) bool {
		return s.highlights[i].Top >= bottom
	})
	if lo >= hi {
		return nil
	}
	return s.highlights[lo:hi]
}

// setHighlightsLocked replaces the highlight store. The input is
// copied; order is trusted, not verified.
func (s *Source) setHighlightsLocked(rects []grid.Rect) {
	s.highlights = copyRects(rects)
}

// boundingRange returns the first and last cell covered by an
// ordered, non-empty rect run.
func boundingRange(rects []grid.Rect) (start, end grid.Point) {
	front := rects[0]
	back := rects[len(rects)-1]
	start = grid.Point{Row: front.Top, Col: front.Left}
	end = grid.Point{Row: back.Bottom, Col: back.Right}
	return start, end
}

func copyRects(rects []grid.Rect) []grid.Rect {
	if len(rects) == 0 {
		return nil
	}
	out := make([]grid.Rect, len(rects))
	copy(out, rects)
	return out
}
