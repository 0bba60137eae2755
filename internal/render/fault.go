package render

import (
	"runtime/debug"
)

// Fault describes an internal failure recovered at the query
// boundary.
type Fault struct {
	// Op names the query that failed.
	Op string

	// Value is the recovered panic value.
	Value any

	// Stack is the stack trace captured at recovery.
	Stack []byte
}

// FaultHandler observes recovered faults. Handlers run outside any
// panic path; a handler that itself panics is silently contained.
type FaultHandler func(fault Fault)

// reportFault counts a recovered failure and forwards it to the
// handler.
func (s *Source) reportFault(op string, value any) {
	s.faultCount.Add(1)

	if s.faultHandler == nil {
		return
	}
	stack := debug.Stack()
	func() {
		defer func() {
			// Silently recover if the fault handler itself panics
			_ = recover()
		}()
		s.faultHandler(Fault{Op: op, Value: value, Stack: stack})
	}()
}

// FaultCount returns the number of recovered query failures.
func (s *Source) FaultCount() uint64 {
	return s.faultCount.Load()
}
