package session

import "sync"

// Broadcaster fans out state snapshots to SSE subscribers.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[chan Snapshot]struct{}
	closed bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan Snapshot]struct{}),
	}
}

// Subscribe registers a new subscriber and returns its channel. After Close
// the returned channel is already closed, so stream readers exit at once.
func (b *Broadcaster) Subscribe() chan Snapshot {
	ch := make(chan Snapshot, 16)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs[ch] = struct{}{}
	}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Broadcaster) Unsubscribe(ch chan Snapshot) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Close drops every subscriber and closes its channel. Publish becomes a
// no-op. Called when the owning session is disposed so attached streams end
// instead of blocking until the client disconnects.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		for ch := range b.subs {
			close(ch)
		}
		b.subs = nil
	}
	b.mu.Unlock()
}

// Publish delivers a snapshot to all subscribers.
func (b *Broadcaster) Publish(snap Snapshot) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- snap:
		default:
			// Drop if the subscriber is lagging; snapshots supersede
			// each other, so the next one catches it up.
		}
	}
	b.mu.Unlock()
}
