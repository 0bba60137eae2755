package render

import (
	"testing"

	"github.com/dshills/termview/internal/grid"
)

func TestScrollToRangeAboveViewport(t *testing.T) {
	// Visible top = unscrolled top = 50. A range starting above the
	// viewport scrolls so its start row becomes exactly the new top.
	src := newTestSource(t, 80, 24, 50)
	pending := src.notifier.NewPending()

	got := src.scrollToRangeLocked(grid.NewPoint(40, 0), grid.NewPoint(60, 0), pending)

	if got != 10 {
		t.Errorf("offset = %d, want 10", got)
	}
	if top := src.viewportLocked().Top; top != 40 {
		t.Errorf("visible top = %d, want 40", top)
	}
	if pending.Len() != 1 {
		t.Errorf("expected 1 queued scroll event, got %d", pending.Len())
	}
}

func TestScrollToRangeFullyVisibleNoOp(t *testing.T) {
	src := newTestSource(t, 80, 24, 50)
	src.scrollOffset = 10 // visible rows [40, 64)
	pending := src.notifier.NewPending()

	got := src.scrollToRangeLocked(grid.NewPoint(45, 0), grid.NewPoint(50, 10), pending)

	if got != 10 {
		t.Errorf("offset = %d, want unchanged 10", got)
	}
	if pending.Len() != 0 {
		t.Errorf("expected no queued events for a visible range, got %d", pending.Len())
	}
}

func TestScrollToRangeBelowViewport(t *testing.T) {
	tests := []struct {
		name       string
		offset     int
		start, end grid.Point
		want       int
	}{
		{
			// Visible rows [20, 44); target still in scrollback.
			name:   "below into history",
			offset: 30,
			start:  grid.NewPoint(45, 0),
			end:    grid.NewPoint(48, 0),
			want:   5, // 50 - 45
		},
		{
			// Target inside the screen region: the computed offset
			// would be negative, so it clamps to the live edge.
			name:   "below into screen region",
			offset: 30,
			start:  grid.NewPoint(55, 0),
			end:    grid.NewPoint(60, 0),
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestSource(t, 80, 24, 50)
			src.scrollOffset = tt.offset
			pending := src.notifier.NewPending()

			got := src.scrollToRangeLocked(tt.start, tt.end, pending)

			if got != tt.want {
				t.Errorf("offset = %d, want %d", got, tt.want)
			}
			if got < 0 {
				t.Error("offset must never be negative")
			}
			if pending.Len() != 1 {
				t.Errorf("expected 1 queued scroll event, got %d", pending.Len())
			}
		})
	}
}

func TestScrollToRangeIdempotent(t *testing.T) {
	src := newTestSource(t, 80, 24, 50)
	pending := src.notifier.NewPending()

	start, end := grid.NewPoint(40, 0), grid.NewPoint(42, 5)
	first := src.scrollToRangeLocked(start, end, pending)
	queued := pending.Len()

	second := src.scrollToRangeLocked(start, end, pending)

	if second != first {
		t.Errorf("second call moved the offset: %d -> %d", first, second)
	}
	if pending.Len() != queued {
		t.Error("second call with a visible range queued an event")
	}
}

func TestScrollToRangeNormalizesReversedPoints(t *testing.T) {
	src := newTestSource(t, 80, 24, 50)
	pending := src.notifier.NewPending()

	got := src.scrollToRangeLocked(grid.NewPoint(60, 0), grid.NewPoint(40, 0), pending)

	if got != 10 {
		t.Errorf("offset = %d, want 10 with reversed endpoints", got)
	}
}

func TestScrollToRangeClampedToHistory(t *testing.T) {
	src := newTestSource(t, 80, 24, 50)
	pending := src.notifier.NewPending()

	// A start row above the retained history would compute an offset
	// past the oldest row; it clamps to the scrollback extent.
	got := src.scrollToRangeLocked(grid.NewPoint(-20, 0), grid.NewPoint(-10, 0), pending)

	if got != 50 {
		t.Errorf("offset = %d, want clamped 50", got)
	}
	if top := src.viewportLocked().Top; top != 0 {
		t.Errorf("visible top = %d, want 0", top)
	}
}

func TestScrollToRangeInvalidatesBuffer(t *testing.T) {
	buf := newTestBuffer(t, 80, 24, 50)
	invalidations := 0
	buf.SetInvalidateHandler(func() { invalidations++ })
	src := NewSource(buf)
	pending := src.notifier.NewPending()

	src.scrollToRangeLocked(grid.NewPoint(40, 0), grid.NewPoint(41, 0), pending)
	if invalidations != 1 {
		t.Errorf("expected 1 invalidation after scroll, got %d", invalidations)
	}

	// Now visible; no further side effects.
	src.scrollToRangeLocked(grid.NewPoint(40, 0), grid.NewPoint(41, 0), pending)
	if invalidations != 1 {
		t.Errorf("expected no invalidation for visible range, got %d", invalidations)
	}
}

func TestViewportDerivation(t *testing.T) {
	src := newTestSource(t, 132, 43, 100)

	vp := src.viewportLocked()
	if vp.Top != 100 || vp.Height != 43 || vp.Width != 132 || vp.Left != 0 {
		t.Errorf("unexpected live viewport %+v", vp)
	}

	src.scrollOffset = 7
	vp = src.viewportLocked()
	if vp.Top != 93 {
		t.Errorf("scrolled viewport top = %d, want 93", vp.Top)
	}
	if vp.BottomExclusive() != 136 {
		t.Errorf("scrolled viewport bottom = %d, want 136", vp.BottomExclusive())
	}
}

func TestScrollToClamps(t *testing.T) {
	src := newTestSource(t, 80, 24, 50)

	view := src.Acquire()
	defer view.Release()

	if got := view.ScrollTo(1000); got != 50 {
		t.Errorf("ScrollTo(1000) = %d, want 50", got)
	}
	if got := view.ScrollTo(-10); got != 0 {
		t.Errorf("ScrollTo(-10) = %d, want 0", got)
	}
	if got := view.MaxScroll(); got != 50 {
		t.Errorf("MaxScroll() = %d, want 50", got)
	}
}

func TestScrollByAccumulates(t *testing.T) {
	src := newTestSource(t, 80, 24, 50)

	view := src.Acquire()
	defer view.Release()

	if got := view.ScrollBy(10); got != 10 {
		t.Errorf("ScrollBy(10) = %d, want 10", got)
	}
	if got := view.ScrollBy(10); got != 20 {
		t.Errorf("second ScrollBy(10) = %d, want 20", got)
	}
	if got := view.ScrollBy(-100); got != 0 {
		t.Errorf("ScrollBy(-100) = %d, want 0", got)
	}
	if !view.AtLiveEdge() {
		t.Error("expected live edge after scrolling fully down")
	}
}
