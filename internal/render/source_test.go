package render

import (
	"fmt"
	"testing"
	"time"

	"github.com/dshills/termview/internal/grid"
	"github.com/dshills/termview/internal/notify"
	"github.com/dshills/termview/internal/term"
)

// newTestBuffer returns a buffer whose screen region starts at the
// given absolute row, filled with numbered lines.
func newTestBuffer(t *testing.T, cols, rows, screenTop int) *term.Buffer {
	t.Helper()

	buf, err := term.NewBuffer(term.Options{Cols: cols, Rows: rows})
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	for i := 0; i < rows-1+screenTop; i++ {
		buf.WriteString(fmt.Sprintf("line %d\n", i))
	}
	if got := buf.ScreenTop(); got != screenTop {
		t.Fatalf("ScreenTop = %d, want %d", got, screenTop)
	}
	return buf
}

func newTestSource(t *testing.T, cols, rows, screenTop int) *Source {
	t.Helper()
	return NewSource(newTestBuffer(t, cols, rows, screenTop))
}

func rectsEqual(a, b []grid.Rect) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func TestAcquireBlocksUntilRelease(t *testing.T) {
	src := newTestSource(t, 80, 24, 0)

	view := src.Acquire()

	acquired := make(chan struct{})
	go func() {
		other := src.Acquire()
		close(acquired)
		other.Release()
	}()

	select {
	case <-acquired:
		t.Fatal("second Acquire succeeded while the lock was held")
	case <-time.After(20 * time.Millisecond):
	}

	view.Release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Acquire never completed after Release")
	}
}

func TestHighlightReplacementAtomicUnderLock(t *testing.T) {
	src := newTestSource(t, 80, 24, 0)

	oldSet := []grid.Rect{
		grid.NewRect(1, 0, 1, 4),
		grid.NewRect(5, 0, 5, 4),
	}
	newSet := []grid.Rect{
		grid.NewRect(2, 2, 2, 6),
		grid.NewRect(8, 0, 8, 3),
		grid.NewRect(10, 1, 10, 7),
	}

	view := src.Acquire()
	view.SetSearchHighlights(oldSet)
	if got := view.VisibleSearchHighlights(); !rectsEqual(got, oldSet) {
		t.Errorf("after first write got %v, want %v", got, oldSet)
	}

	// Replace and read back within the same critical section: the
	// read must see the entire new set, never a mix.
	view.SetSearchHighlights(newSet)
	if got := view.VisibleSearchHighlights(); !rectsEqual(got, newSet) {
		t.Errorf("after replacement got %v, want %v", got, newSet)
	}
	view.Release()

	view = src.Acquire()
	defer view.Release()
	if got := view.VisibleSearchHighlights(); !rectsEqual(got, newSet) {
		t.Errorf("after release got %v, want %v", got, newSet)
	}
}

func TestSourceIDStable(t *testing.T) {
	src := newTestSource(t, 80, 24, 0)

	if src.ID() == "" {
		t.Fatal("expected non-empty source id")
	}
	if src.ID() != src.ID() {
		t.Error("expected stable source id")
	}

	other := newTestSource(t, 80, 24, 0)
	if src.ID() == other.ID() {
		t.Error("expected distinct ids for distinct sources")
	}
}

func TestNotificationsDeliveredAfterRelease(t *testing.T) {
	src := newTestSource(t, 80, 24, 10)

	var events []notify.Event
	src.Notifier().Subscribe(func(e notify.Event) {
		events = append(events, e)
	})

	view := src.Acquire()
	view.ScrollTo(5)
	view.SetTitle("refreshed")
	if len(events) != 0 {
		t.Fatalf("expected no delivery while the lock is held, got %d events", len(events))
	}
	view.Release()

	if len(events) != 2 {
		t.Fatalf("expected 2 events after release, got %d", len(events))
	}
	if events[0].Type != notify.EventScroll || events[0].Offset != 5 {
		t.Errorf("expected scroll event with offset 5, got %+v", events[0])
	}
	if events[1].Type != notify.EventTitle || events[1].Title != "refreshed" {
		t.Errorf("expected title event, got %+v", events[1])
	}
	if events[0].Source != src.ID() {
		t.Errorf("expected event source %q, got %q", src.ID(), events[0].Source)
	}
}

func TestWithOptions(t *testing.T) {
	n := notify.New()
	var faults []Fault
	buf := newTestBuffer(t, 80, 24, 0)

	src := NewSource(buf,
		WithNotifier(n),
		WithFaultHandler(func(f Fault) { faults = append(faults, f) }),
	)

	if src.Notifier() != n {
		t.Error("expected custom notifier to be installed")
	}

	src.reportFault("op", "boom")
	if len(faults) != 1 || faults[0].Op != "op" {
		t.Fatalf("expected fault handler call, got %v", faults)
	}
	if src.FaultCount() != 1 {
		t.Errorf("expected fault count 1, got %d", src.FaultCount())
	}
}

func TestFaultHandlerPanicContained(t *testing.T) {
	buf := newTestBuffer(t, 80, 24, 0)
	src := NewSource(buf, WithFaultHandler(func(Fault) { panic("handler broke") }))

	src.reportFault("op", "boom")

	if src.FaultCount() != 1 {
		t.Errorf("expected fault counted despite handler panic, got %d", src.FaultCount())
	}
}
