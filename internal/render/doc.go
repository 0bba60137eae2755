// Package render is the synchronization and query boundary between
// terminal state and anything that paints it.
//
// # Architecture
//
// The package is organized around two types:
//
//   - Source: owns the mutex, the scroll offset, the search highlight
//     store, the selection, and the active pattern tree, alongside
//     references to the buffer, color settings, and notifier
//   - View: the capability returned by Source.Acquire; every query
//     and state change is a View method, so holding the lock is
//     enforced by the type system rather than by convention
//
// A renderer's paint pass acquires a View once, reads everything it
// needs for the frame, and releases. Mutators acquire the same way;
// there is no reader/writer distinction. The mutex is not reentrant:
// a goroutine that acquires twice deadlocks.
//
//	view := src.Acquire()
//	defer view.Release()
//	vp := view.Viewport()
//	for row := vp.Top; row < vp.BottomExclusive(); row++ {
//	    line := view.Line(row)
//	    // paint line...
//	}
//
// Builds tagged renderdebug add use-after-release checks to every
// View method; release builds carry a zero-sized guard and no checks.
//
// # Degraded reads
//
// VisibleSearchHighlights and SelectionRects recover from internal
// failures: the fault is counted, reported to the configured fault
// handler with its stack, and the call returns an empty result so a
// paint pass can finish with a blank overlay instead of crashing.
//
// # Notifications
//
// Events raised while a View is held (scroll changes, highlight
// replacement, title changes) are queued and delivered through the
// notifier only after Release, so observers never run under the lock.
package render
