package allegro

// #include "goallegro.h"
import "C"
import (
	"github.com/ushitora-anqou/goallegro/event"
	"github.com/ushitora-anqou/goallegro/handle"
)

// Timer emits a TimerTick event every speed seconds once started. Methods of
// a released timer do nothing and report zero values.
type Timer struct {
	ptr *C.ALLEGRO_TIMER
	id  event.SourceID
	h   *handle.Handle
}

func NewTimer(core *Core, speed float64) (*Timer, error) {
	if err := core.h.Check(); err != nil {
		return nil, err
	}
	ptr := C.al_create_timer(C.double(speed))
	if ptr == nil {
		return nil, handle.NewInitError("timer")
	}

	t := &Timer{
		ptr: ptr,
		id:  sourceID(C.al_get_timer_event_source(ptr)),
		h:   handle.New("timer", func() { C.al_destroy_timer(ptr) }),
	}
	core.h.Adopt(t.h)
	return t, nil
}

func (t *Timer) Start() {
	if t.h.Released() {
		return
	}
	C.al_start_timer(t.ptr)
}

func (t *Timer) Stop() {
	if t.h.Released() {
		return
	}
	C.al_stop_timer(t.ptr)
}

func (t *Timer) Started() bool {
	if t.h.Released() {
		return false
	}
	return bool(C.al_get_timer_started(t.ptr))
}

func (t *Timer) Count() int64 {
	if t.h.Released() {
		return 0
	}
	return int64(C.al_get_timer_count(t.ptr))
}

func (t *Timer) SetCount(count int64) {
	if t.h.Released() {
		return
	}
	C.al_set_timer_count(t.ptr, C.int64_t(count))
}

func (t *Timer) Speed() float64 {
	if t.h.Released() {
		return 0
	}
	return float64(C.al_get_timer_speed(t.ptr))
}

func (t *Timer) SetSpeed(speed float64) {
	if t.h.Released() {
		return
	}
	C.al_set_timer_speed(t.ptr, C.double(speed))
}

func (t *Timer) EventSource() event.SourceID {
	return t.id
}

func (t *Timer) Alive() bool {
	return !t.h.Released()
}

func (t *Timer) Destroy() {
	t.h.Release()
}
