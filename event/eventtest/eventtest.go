// Package eventtest provides an in-memory event.Driver and synthetic sources
// for testing code that consumes event queues.
package eventtest

import (
	"time"

	"github.com/ushitora-anqou/goallegro/event"
)

// Driver models a native queue. Unlike the Queue adapter it does not
// deduplicate registrations: a source registered n times has each of its
// events delivered n times.
type Driver struct {
	registrations map[event.SourceID]int
	ch            chan event.Event
	Destroyed     int
}

func NewDriver(capacity int) *Driver {
	return &Driver{
		registrations: map[event.SourceID]int{},
		ch:            make(chan event.Event, capacity),
	}
}

func (d *Driver) Register(src event.SourceID) {
	d.registrations[src]++
}

func (d *Driver) Unregister(src event.SourceID) {
	delete(d.registrations, src)
}

func (d *Driver) Registrations(src event.SourceID) int {
	return d.registrations[src]
}

// Emit enqueues ev once per registration of its source. Events from
// unregistered sources are dropped. Emit blocks when the buffer is full.
func (d *Driver) Emit(ev event.Event) {
	for i := 0; i < d.registrations[ev.Source()]; i++ {
		d.ch <- ev
	}
}

func (d *Driver) Wait() event.Event {
	return <-d.ch
}

func (d *Driver) WaitTimeout(timeout time.Duration) (event.Event, bool) {
	select {
	case ev := <-d.ch:
		return ev, true
	case <-time.After(timeout):
		return nil, false
	}
}

func (d *Driver) Next() (event.Event, bool) {
	select {
	case ev := <-d.ch:
		return ev, true
	default:
		return nil, false
	}
}

func (d *Driver) Empty() bool {
	return len(d.ch) == 0
}

func (d *Driver) Pending() int {
	return len(d.ch)
}

func (d *Driver) Flush() {
	for len(d.ch) > 0 {
		<-d.ch
	}
}

func (d *Driver) Destroy() {
	d.Destroyed++
}

// Source is a synthetic event source.
type Source struct {
	ID        event.SourceID
	destroyed bool
}

var nextID event.SourceID = 0x1000

func NewSource() *Source {
	nextID += 0x10
	return &Source{ID: nextID}
}

func (s *Source) EventSource() event.SourceID {
	return s.ID
}

func (s *Source) Alive() bool {
	return !s.destroyed
}

func (s *Source) Destroy() {
	s.destroyed = true
}

// Header builds an event header originating from s.
func (s *Source) Header(t time.Duration) event.Header {
	return event.Header{Src: s.ID, Time: t}
}
