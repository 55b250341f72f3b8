package mem

import (
	"sync"
	"sync/atomic"
)

// Observer receives allocation events from a Tracker.
type Observer interface {
	Reserved(size int)
	Released(size int)
	Refused(size int)
}

// Stats is a snapshot of Tracker counters.
type Stats struct {
	InUse        int64
	Peak         int64
	Reservations int64
	Releases     int64
	Refusals     int64
}

// Tracker wraps an allocator and accounts for every reservation.
type Tracker struct {
	next Allocator

	inUse        atomic.Int64
	peak         atomic.Int64
	reservations atomic.Int64
	releases     atomic.Int64
	refusals     atomic.Int64

	mu        sync.RWMutex
	observers []Observer
}

// NewTracker wraps next. A nil next uses DefaultAllocator.
func NewTracker(next Allocator, observers ...Observer) *Tracker {
	if next == nil {
		next = DefaultAllocator
	}
	return &Tracker{next: next, observers: observers}
}

// Observe registers an additional observer.
func (t *Tracker) Observe(o Observer) {
	if t == nil || o == nil {
		return
	}
	t.mu.Lock()
	t.observers = append(t.observers, o)
	t.mu.Unlock()
}

// Reserve forwards to the wrapped allocator and records the outcome.
func (t *Tracker) Reserve(size int) error {
	if err := t.next.Reserve(size); err != nil {
		t.refusals.Add(1)
		t.notify(func(o Observer) { o.Refused(size) })
		return err
	}
	t.reservations.Add(1)
	cur := t.inUse.Add(int64(size))
	for {
		peak := t.peak.Load()
		if cur <= peak || t.peak.CompareAndSwap(peak, cur) {
			break
		}
	}
	t.notify(func(o Observer) { o.Reserved(size) })
	return nil
}

// Release forwards to the wrapped allocator and records the release.
func (t *Tracker) Release(size int) {
	t.next.Release(size)
	t.releases.Add(1)
	t.inUse.Add(-int64(size))
	t.notify(func(o Observer) { o.Released(size) })
}

// Stats returns the current counters.
func (t *Tracker) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	return Stats{
		InUse:        t.inUse.Load(),
		Peak:         t.peak.Load(),
		Reservations: t.reservations.Load(),
		Releases:     t.releases.Load(),
		Refusals:     t.refusals.Load(),
	}
}

func (t *Tracker) notify(fn func(Observer)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, o := range t.observers {
		fn(o)
	}
}
