package render

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/termview/internal/grid"
	"github.com/dshills/termview/internal/notify"
	"github.com/dshills/termview/internal/pattern"
	"github.com/dshills/termview/internal/style"
	"github.com/dshills/termview/internal/term"
)

// Buffer is the buffer surface a View reads and writes through.
// *term.Buffer satisfies it; tests substitute their own.
type Buffer interface {
	Width() int
	Height() int
	ScreenTop() int
	TotalRows() int
	Line(row int) *term.Line
	CellAt(p grid.Point) (term.Cell, bool)
	IsWideAt(p grid.Point) bool
	Cursor() term.Cursor
	CursorPosition() grid.Point
	Title() string
	SetTitle(title string)
	HyperlinkURI(id term.HyperlinkID) string
	HyperlinkCustomID(id term.HyperlinkID) string
	TriggerScroll()
	WriteString(s string)
	Resize(cols, rows int) error
}

// Source owns the lock over terminal view state and everything read
// through it: the scroll offset, search highlights, selection, and
// the active pattern tree.
type Source struct {
	mu sync.Mutex

	id  string
	buf Buffer

	settings *style.Settings
	notifier *notify.Notifier

	faultHandler FaultHandler
	faultCount   atomic.Uint64

	// Rows the visible viewport is shifted up from the screen
	// region. 0 is the live edge; never negative, never more than
	// the retained history.
	scrollOffset int

	// Search highlight store. Replaced wholesale; slices handed out
	// by queries stay valid as immutable snapshots.
	highlights []grid.Rect
	focused    []grid.Rect

	patterns *pattern.Tree

	sel selectionState
}

// Option configures a Source.
type Option func(*Source)

// WithSettings sets the color settings the source resolves
// attributes with.
func WithSettings(settings *style.Settings) Option {
	return func(s *Source) {
		if settings != nil {
			s.settings = settings
		}
	}
}

// WithNotifier sets the notifier view change events are delivered
// through.
func WithNotifier(n *notify.Notifier) Option {
	return func(s *Source) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithFaultHandler sets the handler for failures recovered at the
// query boundary.
func WithFaultHandler(h FaultHandler) Option {
	return func(s *Source) {
		s.faultHandler = h
	}
}

// NewSource creates a render source over the given buffer.
func NewSource(buf Buffer, opts ...Option) *Source {
	s := &Source{
		id:       uuid.New().String(),
		buf:      buf,
		settings: style.NewSettings(),
		notifier: notify.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the stable identifier carried in this source's
// notifications.
func (s *Source) ID() string { return s.id }

// Notifier returns the notifier view change events are delivered
// through.
func (s *Source) Notifier() *notify.Notifier { return s.notifier }

// Acquire blocks until the state lock is owned and returns the View
// holding it. Acquire is not reentrant: acquiring again on the same
// goroutine before Release deadlocks.
func (s *Source) Acquire() *View {
	s.mu.Lock()
	v := &View{
		src:     s,
		pending: s.notifier.NewPending(),
	}
	v.guard.arm()
	return v
}

// View is the capability to read and change view state while the
// lock is held. A View is good for exactly one Acquire/Release
// window and must stay on the goroutine that acquired it.
type View struct {
	src     *Source
	pending *notify.Pending
	guard   guardState
}

// Release unlocks the source and delivers the notifications queued
// during the hold.
func (v *View) Release() {
	v.guard.disarm()
	pending := v.pending
	v.src.mu.Unlock()
	pending.Deliver()
}
