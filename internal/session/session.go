// Package session implements the scan session state machine: an Idle/Active
// gate over incoming detection frames, the per-frame derived display state,
// and the debounce timer that clears that state when detections stop.
package session

import (
	"sync"
	"time"

	"scanoverlay/internal/geometry"
	"scanoverlay/internal/models"
)

// DefaultClearDelay is how long after the last non-empty frame the derived
// state survives before the debounce timer clears it.
const DefaultClearDelay = 300 * time.Millisecond

// Snapshot is the observable state the presentation layer reads: whether the
// session accepts detections, the current frame's boxes, and the current
// frame's decoded entries.
type Snapshot struct {
	Scanning bool                  `json:"scanning"`
	Boxes    []models.DisplayBox   `json:"boxes"`
	Codes    []models.ScannedEntry `json:"codes"`
}

// Session owns one scan run's state. Detection events, Start/Stop intents
// and timer expiry may arrive on different goroutines; the mutex plus the
// timer generation counter guarantee that a clear scheduled for an older
// frame never touches state once a newer frame has superseded it.
type Session struct {
	ID string

	metrics    models.DisplayMetrics
	clearDelay time.Duration
	clock      Clock
	updates    *Broadcaster

	mu         sync.Mutex
	scanning   bool
	boxes      []models.DisplayBox
	codes      []models.ScannedEntry
	clearTimer Timer
	timerGen   uint64
	disposed   bool
}

// New creates an Idle session mapping onto the given display. A zero
// clearDelay falls back to DefaultClearDelay; a nil clock falls back to the
// system clock.
func New(metrics models.DisplayMetrics, clearDelay time.Duration, clock Clock) *Session {
	if clearDelay <= 0 {
		clearDelay = DefaultClearDelay
	}
	if clock == nil {
		clock = SystemClock()
	}

	return &Session{
		metrics:    metrics,
		clearDelay: clearDelay,
		clock:      clock,
		updates:    NewBroadcaster(),
	}
}

// Start moves the session to Active. Leftover state from a previous run is
// not cleared. No-op when already Active or disposed.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed || s.scanning {
		return
	}
	s.scanning = true
	s.publishLocked()
}

// Stop moves the session to Idle and clears the derived state. A pending
// clear timer is deliberately left alone: if it fires later it clears
// already-empty state. No-op when already Idle.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed || !s.scanning {
		return
	}
	s.scanning = false
	s.boxes = nil
	s.codes = nil
	s.publishLocked()
}

// OnDetectionFrame processes one detector event. Ignored outright while
// Idle. Otherwise the pending clear is cancelled, the frame's codes are
// mapped into display space, the decoded-value list is rebuilt, and a fresh
// clear is scheduled; an empty frame clears state immediately instead and
// schedules nothing.
func (s *Session) OnDetectionFrame(frame models.DetectionFrame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed || !s.scanning {
		return
	}

	s.cancelClearLocked()

	if len(frame.Codes) == 0 {
		s.boxes = nil
		s.codes = nil
		s.publishLocked()
		return
	}

	start := s.clock.Now()

	s.boxes = geometry.MapFrame(frame, s.metrics)

	entries := make([]models.ScannedEntry, 0, len(frame.Codes))
	for _, code := range frame.Codes {
		if code.Value == nil {
			continue
		}
		entries = append(entries, models.ScannedEntry{
			Value:    *code.Value,
			ScanTime: s.clock.Now().Sub(start).Milliseconds(),
		})
	}
	s.codes = entries

	gen := s.timerGen
	s.clearTimer = s.clock.AfterFunc(s.clearDelay, func() {
		s.clearExpired(gen)
	})

	s.publishLocked()
}

// clearExpired is the debounce timer callback. The generation check makes a
// fire that lost the race against cancellation a no-op.
func (s *Session) clearExpired(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed || gen != s.timerGen {
		return
	}
	s.clearTimer = nil
	s.boxes = nil
	s.codes = nil
	s.publishLocked()
}

// cancelClearLocked releases the pending clear, if any. Bumping the
// generation invalidates a callback that already fired but has not yet
// taken the lock.
func (s *Session) cancelClearLocked() {
	s.timerGen++
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
}

// Dispose releases the timer, shuts down the update fan-out and marks the
// session dead; all later events and intents are no-ops.
func (s *Session) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.disposed = true
	s.cancelClearLocked()
	s.updates.Close()
}

// Scanning reports whether the session currently accepts detections.
func (s *Session) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Boxes returns a copy of the current frame's display boxes.
func (s *Session) Boxes() []models.DisplayBox {
	s.mu.Lock()
	defer s.mu.Unlock()
	boxes := make([]models.DisplayBox, len(s.boxes))
	copy(boxes, s.boxes)
	return boxes
}

// Codes returns a copy of the current frame's decoded entries.
func (s *Session) Codes() []models.ScannedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	codes := make([]models.ScannedEntry, len(s.codes))
	copy(codes, s.codes)
	return codes
}

// Updates exposes the snapshot broadcaster for SSE streaming.
func (s *Session) Updates() *Broadcaster {
	return s.updates
}

// snapshotLocked copies state into non-nil slices so an empty session
// serializes as [] rather than null.
func (s *Session) snapshotLocked() Snapshot {
	boxes := make([]models.DisplayBox, len(s.boxes))
	copy(boxes, s.boxes)
	codes := make([]models.ScannedEntry, len(s.codes))
	copy(codes, s.codes)
	return Snapshot{
		Scanning: s.scanning,
		Boxes:    boxes,
		Codes:    codes,
	}
}

func (s *Session) publishLocked() {
	s.updates.Publish(s.snapshotLocked())
}
