package event_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ushitora-anqou/goallegro/event"
	"github.com/ushitora-anqou/goallegro/event/eventtest"
)

func newQueue() (*event.Queue, *eventtest.Driver) {
	drv := eventtest.NewDriver(16)
	return event.NewQueue(drv), drv
}

func TestWaitForEventOrder(t *testing.T) {
	q, drv := newQueue()
	src := eventtest.NewSource()
	if err := q.Register(src); err != nil {
		t.Fatal(err)
	}

	drv.Emit(event.KeyDown{Header: src.Header(1), KeyCode: event.KeyA})
	drv.Emit(event.TimerTick{Header: src.Header(2), Count: 1})
	drv.Emit(event.MouseButtonDown{Header: src.Header(3), Button: 2})

	ev, err := q.WaitForEvent()
	if err != nil {
		t.Fatal(err)
	}
	if k, ok := ev.(event.KeyDown); !ok || k.KeyCode != event.KeyA {
		t.Fatalf("first event: (got: %#v) (expected: KeyDown A)", ev)
	}
	ev, err = q.WaitForEvent()
	if err != nil {
		t.Fatal(err)
	}
	if tick, ok := ev.(event.TimerTick); !ok || tick.Count != 1 {
		t.Fatalf("second event: (got: %#v) (expected: TimerTick 1)", ev)
	}
	ev, err = q.WaitForEvent()
	if err != nil {
		t.Fatal(err)
	}
	if b, ok := ev.(event.MouseButtonDown); !ok || b.Button != 2 {
		t.Fatalf("third event: (got: %#v) (expected: MouseButtonDown 2)", ev)
	}
	if !q.IsEmpty() {
		t.Fatalf("queue should be empty")
	}
}

func TestInterleavedSourcesKeepArrivalOrder(t *testing.T) {
	q, drv := newQueue()
	a, b := eventtest.NewSource(), eventtest.NewSource()
	for _, s := range []*eventtest.Source{a, b} {
		if err := q.Register(s); err != nil {
			t.Fatal(err)
		}
	}

	order := []event.SourceID{a.ID, b.ID, b.ID, a.ID}
	for i, id := range order {
		drv.Emit(event.Other{Header: event.Header{Src: id, Time: time.Duration(i)}})
	}

	for i, id := range order {
		ev, err := q.WaitForEvent()
		if err != nil {
			t.Fatal(err)
		}
		if ev.Source() != id || ev.Timestamp() != time.Duration(i) {
			t.Fatalf("event %d: (got: %#x@%v) (expected: %#x@%v)", i, ev.Source(), ev.Timestamp(), id, i)
		}
	}
}

func TestRegisterTwiceDoesNotDuplicate(t *testing.T) {
	q, drv := newQueue()
	src := eventtest.NewSource()
	for i := 0; i < 2; i++ {
		if err := q.Register(src); err != nil {
			t.Fatal(err)
		}
	}
	if n := drv.Registrations(src.ID); n != 1 {
		t.Fatalf("native registrations: (got: %v) (expected: %v)", n, 1)
	}

	drv.Emit(event.DisplayClose{Header: src.Header(0)})
	if n := drv.Pending(); n != 1 {
		t.Fatalf("pending events: (got: %v) (expected: %v)", n, 1)
	}
}

func TestUnregister(t *testing.T) {
	q, drv := newQueue()
	src := eventtest.NewSource()
	if err := q.Register(src); err != nil {
		t.Fatal(err)
	}
	q.Unregister(src)
	if q.IsRegistered(src) {
		t.Fatalf("source still registered")
	}

	drv.Emit(event.DisplayClose{Header: src.Header(0)})
	if !q.IsEmpty() {
		t.Fatalf("events from an unregistered source must not be delivered")
	}

	// Destroying an unregistered source is fine.
	src.Destroy()
	if _, ok, err := q.NextEvent(); err != nil || ok {
		t.Fatalf("NextEvent: (got: %v, %v) (expected: false, nil)", ok, err)
	}
}

func TestDestroyedSourceIsReported(t *testing.T) {
	q, drv := newQueue()
	src := eventtest.NewSource()
	if err := q.Register(src); err != nil {
		t.Fatal(err)
	}
	drv.Emit(event.TimerTick{Header: src.Header(0)})
	src.Destroy()

	if _, err := q.WaitForEvent(); !errors.Is(err, event.ErrSourceDestroyed) {
		t.Fatalf("WaitForEvent: (got: %v) (expected: %v)", err, event.ErrSourceDestroyed)
	}
	if _, _, err := q.NextEvent(); !errors.Is(err, event.ErrSourceDestroyed) {
		t.Fatalf("NextEvent: (got: %v) (expected: %v)", err, event.ErrSourceDestroyed)
	}
	if _, _, err := q.WaitForEventTimeout(time.Millisecond); !errors.Is(err, event.ErrSourceDestroyed) {
		t.Fatalf("WaitForEventTimeout: (got: %v) (expected: %v)", err, event.ErrSourceDestroyed)
	}
	if err := q.Register(src); !errors.Is(err, event.ErrSourceDestroyed) {
		t.Fatalf("Register: (got: %v) (expected: %v)", err, event.ErrSourceDestroyed)
	}

	q.Unregister(src)
	if _, ok, err := q.NextEvent(); err != nil || !ok {
		t.Fatalf("NextEvent after unregister: (got: %v, %v) (expected: true, nil)", ok, err)
	}
}

func TestRegisterReusedSourceID(t *testing.T) {
	q, drv := newQueue()
	old := eventtest.NewSource()
	if err := q.Register(old); err != nil {
		t.Fatal(err)
	}
	old.Destroy()

	// The native source behind the new one lives at the same address.
	src := &eventtest.Source{ID: old.ID}
	if q.IsRegistered(src) {
		t.Fatalf("new source matched the destroyed registration")
	}
	if err := q.Register(src); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !q.IsRegistered(src) {
		t.Fatalf("new source not registered")
	}
	if n := drv.Registrations(src.ID); n != 1 {
		t.Fatalf("registrations: (got: %v) (expected: %v)", n, 1)
	}

	drv.Emit(event.TimerTick{Header: src.Header(1), Count: 1})
	ev, err := q.WaitForEvent()
	if err != nil {
		t.Fatalf("WaitForEvent: %v", err)
	}
	if tick, ok := ev.(event.TimerTick); !ok || tick.Count != 1 {
		t.Fatalf("event: (got: %#v) (expected: TimerTick 1)", ev)
	}
	if !q.IsEmpty() {
		t.Fatalf("event delivered more than once")
	}
}

func TestWaitForEventTimeout(t *testing.T) {
	q, drv := newQueue()
	src := eventtest.NewSource()
	if err := q.Register(src); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := q.WaitForEventTimeout(time.Millisecond); err != nil || ok {
		t.Fatalf("empty queue: (got: %v, %v) (expected: false, nil)", ok, err)
	}
	drv.Emit(event.KeyChar{Header: src.Header(0), Unichar: 'x'})
	ev, ok, err := q.WaitForEventTimeout(time.Second)
	if err != nil || !ok {
		t.Fatalf("WaitForEventTimeout: (got: %v, %v) (expected: true, nil)", ok, err)
	}
	if c, _ := ev.(event.KeyChar); c.Unichar != 'x' {
		t.Fatalf("unichar: (got: %q) (expected: %q)", c.Unichar, 'x')
	}
}

func TestEachIsRestartable(t *testing.T) {
	q, drv := newQueue()
	src := eventtest.NewSource()
	if err := q.Register(src); err != nil {
		t.Fatal(err)
	}
	for i := int64(1); i <= 4; i++ {
		drv.Emit(event.TimerTick{Header: src.Header(0), Count: i})
	}

	seen := []int64{}
	collect := func(ev event.Event) bool {
		seen = append(seen, ev.(event.TimerTick).Count)
		return len(seen)%2 != 0
	}
	for i := 0; i < 2; i++ {
		if err := q.Each(collect); err != nil {
			t.Fatal(err)
		}
	}
	for i, c := range seen {
		if c != int64(i+1) {
			t.Fatalf("Each: (got: %v) (expected: [1 2 3 4])", seen)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("Each: (got: %v) (expected: [1 2 3 4])", seen)
	}
}

func TestFlush(t *testing.T) {
	q, drv := newQueue()
	src := eventtest.NewSource()
	if err := q.Register(src); err != nil {
		t.Fatal(err)
	}
	drv.Emit(event.TimerTick{Header: src.Header(0)})
	drv.Emit(event.TimerTick{Header: src.Header(0)})
	q.Flush()
	if !q.IsEmpty() {
		t.Fatalf("queue should be empty after Flush")
	}
}

func TestDestroy(t *testing.T) {
	q, drv := newQueue()
	src := eventtest.NewSource()
	if err := q.Register(src); err != nil {
		t.Fatal(err)
	}
	q.Destroy()
	q.Destroy()

	if drv.Destroyed != 1 {
		t.Fatalf("native destroy count: (got: %v) (expected: %v)", drv.Destroyed, 1)
	}
	if !q.IsEmpty() {
		t.Fatalf("destroyed queue must be empty")
	}
	if _, err := q.WaitForEvent(); !errors.Is(err, event.ErrQueueDestroyed) {
		t.Fatalf("WaitForEvent: (got: %v) (expected: %v)", err, event.ErrQueueDestroyed)
	}
	if err := q.Register(src); !errors.Is(err, event.ErrQueueDestroyed) {
		t.Fatalf("Register: (got: %v) (expected: %v)", err, event.ErrQueueDestroyed)
	}
	if src.Alive() != true {
		t.Fatalf("queue must not destroy its sources")
	}
}

func TestKeyCodeString(t *testing.T) {
	table := []struct {
		key      event.KeyCode
		expected string
	}{
		{event.KeyA, "A"},
		{event.KeyZ, "Z"},
		{event.Key7, "7"},
		{event.KeyPad3, "Pad3"},
		{event.KeyF12, "F12"},
		{event.KeyEscape, "Escape"},
		{event.KeyDownArrow, "Down"},
		{event.KeyLeftArrow, "Left"},
		{event.KeyCode(200), "KeyCode(200)"},
	}
	for _, entry := range table {
		if got := entry.key.String(); got != entry.expected {
			t.Fatalf("String: (got: %v) (expected: %v)", got, entry.expected)
		}
	}
	if event.KeyEscape != 59 {
		t.Fatalf("KeyEscape: (got: %d) (expected: 59)", event.KeyEscape)
	}
}
