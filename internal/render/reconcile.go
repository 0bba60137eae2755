package render

import (
	"github.com/dshills/termview/internal/grid"
	"github.com/dshills/termview/internal/notify"
)

// scrollToRangeLocked adjusts the scroll offset so the range between
// start and end is visible, preferring to put start at the top when
// the range sits above the viewport. The points are normalized to
// reading order first. At most one edge test fires; if the offset
// changed, the buffer is told to repaint and a scroll event is
// queued. Returns the offset in effect afterwards.
func (s *Source) scrollToRangeLocked(start, end grid.Point, pending *notify.Pending) int {
	if end.Before(start) {
		start, end = end, start
	}

	screenTop := s.buf.ScreenTop()
	visibleTop := screenTop - s.scrollOffset
	visibleBottom := visibleTop + s.buf.Height() - 1

	changed := false
	if start.Row < visibleTop {
		s.scrollOffset = screenTop - start.Row
		changed = true
	} else if end.Row > visibleBottom {
		offset := screenTop - start.Row
		if offset < 0 {
			offset = 0
		}
		s.scrollOffset = offset
		changed = true
	}

	if changed {
		s.clampOffsetLocked()
		s.buf.TriggerScroll()
		pending.Scroll(s.scrollOffset, s.id)
	}
	return s.scrollOffset
}

// setOffsetLocked moves the viewport to the given offset, clamped to
// the retained history. Returns the offset in effect afterwards.
func (s *Source) setOffsetLocked(offset int, pending *notify.Pending) int {
	prev := s.scrollOffset
	s.scrollOffset = offset
	s.clampOffsetLocked()

	if s.scrollOffset != prev {
		s.buf.TriggerScroll()
		pending.Scroll(s.scrollOffset, s.id)
	}
	return s.scrollOffset
}

// clampOffsetLocked bounds the offset to [0, ScreenTop]: the
// viewport can reach the oldest retained row and no further.
func (s *Source) clampOffsetLocked() {
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
	if top := s.buf.ScreenTop(); s.scrollOffset > top {
		s.scrollOffset = top
	}
}

// viewportLocked derives the visible window from the screen geometry
// and the scroll offset.
func (s *Source) viewportLocked() grid.Viewport {
	return grid.Viewport{
		Top:    s.buf.ScreenTop() - s.scrollOffset,
		Left:   0,
		Height: s.buf.Height(),
		Width:  s.buf.Width(),
	}
}
