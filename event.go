package fontinfo

import "sync"

// Emitter is a payload-less event with a plain list of subscribers.
//
// Fire calls the subscribers registered at the moment it was called, so
// a subscriber may subscribe or cancel from inside its callback.
// Emitter is safe for concurrent use.
type Emitter struct {
	mu     sync.Mutex
	subs   []*subscription
	nextID uint64
	closed bool
}

type subscription struct {
	id uint64
	fn func()
}

// Subscribe registers fn and returns a function that removes it.
// The returned cancel function is idempotent. Subscribing to a closed
// Emitter does nothing.
func (e *Emitter) Subscribe(fn func()) (cancel func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, &subscription{id: id, fn: fn})

	return func() { e.remove(id) }
}

func (e *Emitter) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

// Fire calls every current subscriber in subscription order. Delivery
// stops as soon as the Emitter is closed, even part way through.
func (e *Emitter) Fire() {
	e.mu.Lock()
	snapshot := make([]*subscription, len(e.subs))
	copy(snapshot, e.subs)
	e.mu.Unlock()

	for _, s := range snapshot {
		if e.isClosed() {
			return
		}
		s.fn()
	}
}

func (e *Emitter) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// Len returns the number of subscribers.
func (e *Emitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}

// Reset removes all subscribers.
func (e *Emitter) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = nil
}

// Close removes all subscribers and stops any Fire in progress from
// calling further subscribers. A subscriber that is already running
// finishes. Close is idempotent.
func (e *Emitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.subs = nil
}
