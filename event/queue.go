package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/ushitora-anqou/goallegro/handle"
	"github.com/ushitora-anqou/goallegro/util"
)

var (
	ErrQueueDestroyed  = errors.New("event queue destroyed")
	ErrSourceDestroyed = errors.New("registered event source destroyed")
)

// Driver is the native side of a Queue. Implementations deliver events in
// the order the native library enqueued them.
type Driver interface {
	Register(src SourceID)
	Unregister(src SourceID)
	// Wait blocks until an event is available and removes it.
	Wait() Event
	WaitTimeout(d time.Duration) (Event, bool)
	// Next removes the next event without blocking.
	Next() (Event, bool)
	Empty() bool
	Flush()
	Destroy()
}

// Queue aggregates events from registered sources in FIFO order. It does not
// own the sources: destroying a source while it is still registered is a
// programming error, reported as ErrSourceDestroyed by every call that would
// otherwise reach the native queue.
type Queue struct {
	drv     Driver
	h       *handle.Handle
	sources []Source
}

func NewQueue(drv Driver) *Queue {
	return &Queue{
		drv: drv,
		h:   handle.New("event queue", drv.Destroy),
	}
}

// Handle exposes the queue's ownership so that it can be adopted by the
// handle of the subsystem that created it.
func (q *Queue) Handle() *handle.Handle {
	return q.h
}

// Register adds src to the queue. Registering a source twice has no effect.
func (q *Queue) Register(src Source) error {
	if q.h.Released() {
		return ErrQueueDestroyed
	}
	if !src.Alive() {
		return fmt.Errorf("register source %#x: %w", src.EventSource(), ErrSourceDestroyed)
	}
	if q.IsRegistered(src) {
		return nil
	}
	id := src.EventSource()
	for i, s := range q.sources {
		// A destroyed source whose address was reused by src.
		if s.EventSource() == id {
			q.sources = append(q.sources[:i], q.sources[i+1:]...)
			q.drv.Unregister(id)
			break
		}
	}
	q.sources = append(q.sources, src)
	q.drv.Register(src.EventSource())
	util.Trace("event: registered source %#x", src.EventSource())
	return nil
}

func (q *Queue) Unregister(src Source) {
	id := src.EventSource()
	for i, s := range q.sources {
		if s.EventSource() == id {
			q.sources = append(q.sources[:i], q.sources[i+1:]...)
			if !q.h.Released() {
				q.drv.Unregister(id)
			}
			util.Trace("event: unregistered source %#x", id)
			return
		}
	}
}

// IsRegistered reports whether src is registered. A destroyed source does not
// match a live one with the same id.
func (q *Queue) IsRegistered(src Source) bool {
	id := src.EventSource()
	for _, s := range q.sources {
		if s.EventSource() == id && s.Alive() == src.Alive() {
			return true
		}
	}
	return false
}

func (q *Queue) check() error {
	if q.h.Released() {
		return ErrQueueDestroyed
	}
	for _, s := range q.sources {
		if !s.Alive() {
			return fmt.Errorf("source %#x: %w", s.EventSource(), ErrSourceDestroyed)
		}
	}
	return nil
}

// WaitForEvent blocks until one of the registered sources produces an event.
func (q *Queue) WaitForEvent() (Event, error) {
	if err := q.check(); err != nil {
		return nil, err
	}
	return q.drv.Wait(), nil
}

// WaitForEventTimeout is WaitForEvent giving up after d. The boolean is false
// on timeout.
func (q *Queue) WaitForEventTimeout(d time.Duration) (Event, bool, error) {
	if err := q.check(); err != nil {
		return nil, false, err
	}
	ev, ok := q.drv.WaitTimeout(d)
	return ev, ok, nil
}

// NextEvent removes the next event if there is one, without blocking.
func (q *Queue) NextEvent() (Event, bool, error) {
	if err := q.check(); err != nil {
		return nil, false, err
	}
	ev, ok := q.drv.Next()
	return ev, ok, nil
}

// IsEmpty never blocks. A destroyed queue is empty.
func (q *Queue) IsEmpty() bool {
	if q.h.Released() {
		return true
	}
	return q.drv.Empty()
}

func (q *Queue) Flush() {
	if !q.h.Released() {
		q.drv.Flush()
	}
}

// Each waits for events and passes them to fn until fn returns false or the
// queue fails. Calling Each again continues with the next pending event.
func (q *Queue) Each(fn func(Event) bool) error {
	for {
		ev, err := q.WaitForEvent()
		if err != nil {
			return err
		}
		if !fn(ev) {
			return nil
		}
	}
}

// Destroy releases the native queue. The registered sources are left alone.
func (q *Queue) Destroy() {
	q.sources = nil
	q.h.Release()
}
