// Package notify provides change notification for view state updates.
//
// The notify package implements an observer pattern that allows
// components to subscribe to view changes, such as the viewport
// scrolling or the title changing, and receive callbacks when they
// happen.
package notify

import (
	"sync"
)

// EventType represents the kind of view state change.
type EventType int

const (
	// EventScroll indicates the viewport scroll offset changed.
	EventScroll EventType = iota

	// EventTitle indicates the reported title changed.
	EventTitle

	// EventHighlights indicates the search highlight set was replaced.
	EventHighlights
)

// String returns the event type name.
func (e EventType) String() string {
	switch e {
	case EventScroll:
		return "scroll"
	case EventTitle:
		return "title"
	case EventHighlights:
		return "highlights"
	default:
		return "unknown"
	}
}

// Event represents a view state change.
type Event struct {
	// Type is the kind of change.
	Type EventType

	// Offset is the new scroll offset for scroll events.
	Offset int

	// Title is the new title for title events.
	Title string

	// Count is the highlight count for highlight events.
	Count int

	// Source identifies the view the change came from.
	Source string
}

// Observer is called when view state changes occur.
type Observer func(event Event)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	typed    bool
	typ      EventType
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages view change subscriptions.
type Notifier struct {
	mu sync.RWMutex

	// Global observers that receive all events
	globalObservers map[uint64]Observer

	// Type-specific observers
	typedObservers map[EventType]map[uint64]Observer

	// Next subscription ID
	nextID uint64

	// Whether to notify synchronously or asynchronously
	async bool

	// Buffer for async notifications
	buffer chan Event

	// Done channel for shutdown
	done chan struct{}

	// Wait group for async goroutine
	wg sync.WaitGroup

	// Closed flag for idempotent Close
	closed bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAsync enables asynchronous notification delivery.
func WithAsync(bufferSize int) Option {
	return func(n *Notifier) {
		if bufferSize > 0 {
			n.async = true
			n.buffer = make(chan Event, bufferSize)
		}
	}
}

// New creates a new Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		globalObservers: make(map[uint64]Observer),
		typedObservers:  make(map[EventType]map[uint64]Observer),
		done:            make(chan struct{}),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.async {
		n.wg.Add(1)
		go n.processAsync()
	}

	return n
}

// Subscribe registers an observer for all events.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.globalObservers[id] = observer

	return &Subscription{
		id:       id,
		notifier: n,
	}
}

// SubscribeType registers an observer for one kind of event.
func (n *Notifier) SubscribeType(typ EventType, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	if n.typedObservers[typ] == nil {
		n.typedObservers[typ] = make(map[uint64]Observer)
	}
	n.typedObservers[typ][id] = observer

	return &Subscription{
		id:       id,
		typed:    true,
		typ:      typ,
		notifier: n,
	}
}

// Notify sends an event to all relevant observers.
func (n *Notifier) Notify(event Event) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}
	n.mu.RUnlock()

	if n.async {
		select {
		case n.buffer <- event:
		case <-n.done:
		}
		return
	}

	n.deliverEvent(event)
}

// NotifyScroll is a convenience method for scroll events.
func (n *Notifier) NotifyScroll(offset int, source string) {
	n.Notify(Event{
		Type:   EventScroll,
		Offset: offset,
		Source: source,
	})
}

// NotifyTitle is a convenience method for title events.
func (n *Notifier) NotifyTitle(title, source string) {
	n.Notify(Event{
		Type:   EventTitle,
		Title:  title,
		Source: source,
	})
}

// NotifyHighlights is a convenience method for highlight events.
func (n *Notifier) NotifyHighlights(count int, source string) {
	n.Notify(Event{
		Type:   EventHighlights,
		Count:  count,
		Source: source,
	})
}

// Close shuts down the notifier. It is safe to call Close multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

// unsubscribe removes an observer by ID.
func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.globalObservers, id)

	for typ, observers := range n.typedObservers {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.typedObservers, typ)
		}
	}
}

// deliverEvent sends an event to all matching observers.
func (n *Notifier) deliverEvent(event Event) {
	n.mu.RLock()

	var observers []Observer
	for _, obs := range n.globalObservers {
		observers = append(observers, obs)
	}
	if typedObs, ok := n.typedObservers[event.Type]; ok {
		for _, obs := range typedObs {
			observers = append(observers, obs)
		}
	}

	n.mu.RUnlock()

	// Call observers outside the lock
	for _, obs := range observers {
		obs(event)
	}
}

// processAsync handles asynchronous notification delivery.
func (n *Notifier) processAsync() {
	defer n.wg.Done()

	for {
		select {
		case event := <-n.buffer:
			n.deliverEvent(event)
		case <-n.done:
			// Drain remaining buffered events
			for {
				select {
				case event := <-n.buffer:
					n.deliverEvent(event)
				default:
					return
				}
			}
		}
	}
}

// Pending collects events raised while a lock is held and delivers
// them as a group once the holder lets go, so observers never run
// under the lock.
type Pending struct {
	notifier *Notifier
	events   []Event
	mu       sync.Mutex
}

// NewPending creates an empty pending set bound to this notifier.
func (n *Notifier) NewPending() *Pending {
	return &Pending{
		notifier: n,
		events:   make([]Event, 0),
	}
}

// Add queues an event for later delivery.
func (p *Pending) Add(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

// Scroll queues a scroll event.
func (p *Pending) Scroll(offset int, source string) {
	p.Add(Event{
		Type:   EventScroll,
		Offset: offset,
		Source: source,
	})
}

// Title queues a title event.
func (p *Pending) Title(title, source string) {
	p.Add(Event{
		Type:   EventTitle,
		Title:  title,
		Source: source,
	})
}

// Highlights queues a highlight event.
func (p *Pending) Highlights(count int, source string) {
	p.Add(Event{
		Type:   EventHighlights,
		Count:  count,
		Source: source,
	})
}

// Deliver sends all queued events to observers and empties the set.
func (p *Pending) Deliver() {
	p.mu.Lock()
	events := p.events
	p.events = make([]Event, 0)
	p.mu.Unlock()

	for _, event := range events {
		p.notifier.Notify(event)
	}
}

// Discard clears the set without sending notifications.
func (p *Pending) Discard() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = make([]Event, 0)
}

// Len returns the number of queued events.
func (p *Pending) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}
