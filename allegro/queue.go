package allegro

// #include "goallegro.h"
import "C"
import (
	"time"
	"unsafe"

	"github.com/mattn/go-pointer"

	"github.com/ushitora-anqou/goallegro/event"
	"github.com/ushitora-anqou/goallegro/handle"
)

// NewEventQueue creates a native event queue owned by core.
func NewEventQueue(core *Core) (*event.Queue, error) {
	if err := core.h.Check(); err != nil {
		return nil, err
	}
	ptr := C.al_create_event_queue()
	if ptr == nil {
		return nil, handle.NewInitError("event queue")
	}

	q := event.NewQueue(&nativeQueue{ptr})
	core.h.Adopt(q.Handle())
	return q, nil
}

// nativeQueue implements event.Driver on ALLEGRO_EVENT_QUEUE.
type nativeQueue struct {
	ptr *C.ALLEGRO_EVENT_QUEUE
}

func nativeSource(src event.SourceID) *C.ALLEGRO_EVENT_SOURCE {
	return (*C.ALLEGRO_EVENT_SOURCE)(unsafe.Pointer(uintptr(src)))
}

func (q *nativeQueue) Register(src event.SourceID) {
	C.al_register_event_source(q.ptr, nativeSource(src))
}

func (q *nativeQueue) Unregister(src event.SourceID) {
	C.al_unregister_event_source(q.ptr, nativeSource(src))
}

func (q *nativeQueue) Wait() event.Event {
	var ev C.ALLEGRO_EVENT
	C.al_wait_for_event(q.ptr, &ev)
	return decode(&ev)
}

func (q *nativeQueue) WaitTimeout(d time.Duration) (event.Event, bool) {
	var ev C.ALLEGRO_EVENT
	if !bool(C.al_wait_for_event_timed(q.ptr, &ev, C.float(d.Seconds()))) {
		return nil, false
	}
	return decode(&ev), true
}

func (q *nativeQueue) Next() (event.Event, bool) {
	var ev C.ALLEGRO_EVENT
	if !bool(C.al_get_next_event(q.ptr, &ev)) {
		return nil, false
	}
	return decode(&ev), true
}

func (q *nativeQueue) Empty() bool {
	return bool(C.al_is_event_queue_empty(q.ptr))
}

func (q *nativeQueue) Flush() {
	C.al_flush_event_queue(q.ptr)
}

func (q *nativeQueue) Destroy() {
	C.al_destroy_event_queue(q.ptr)
}

func seconds(ts C.double) time.Duration {
	return time.Duration(float64(ts) * float64(time.Second))
}

func decode(ev *C.ALLEGRO_EVENT) event.Event {
	hdr := event.Header{
		Src:  sourceID(C.ev_source(ev)),
		Time: seconds(C.ev_timestamp(ev)),
	}

	switch typ := C.ev_type(ev); typ {
	case C.ALLEGRO_EVENT_DISPLAY_CLOSE:
		return event.DisplayClose{Header: hdr}

	case C.ALLEGRO_EVENT_DISPLAY_RESIZE:
		return event.DisplayResize{
			Header: hdr,
			X:      int(C.ev_display_x(ev)),
			Y:      int(C.ev_display_y(ev)),
			Width:  int(C.ev_display_width(ev)),
			Height: int(C.ev_display_height(ev)),
		}

	case C.ALLEGRO_EVENT_KEY_DOWN:
		return event.KeyDown{
			Header:  hdr,
			KeyCode: event.KeyCode(C.ev_keycode(ev)),
			Display: sourceID(C.ev_key_display_source(ev)),
		}

	case C.ALLEGRO_EVENT_KEY_UP:
		return event.KeyUp{
			Header:  hdr,
			KeyCode: event.KeyCode(C.ev_keycode(ev)),
			Display: sourceID(C.ev_key_display_source(ev)),
		}

	case C.ALLEGRO_EVENT_KEY_CHAR:
		return event.KeyChar{
			Header:    hdr,
			KeyCode:   event.KeyCode(C.ev_keycode(ev)),
			Unichar:   rune(C.ev_unichar(ev)),
			Modifiers: event.Modifier(C.ev_modifiers(ev)),
			Repeat:    bool(C.ev_repeat(ev)),
			Display:   sourceID(C.ev_key_display_source(ev)),
		}

	case C.ALLEGRO_EVENT_MOUSE_BUTTON_DOWN:
		return event.MouseButtonDown{
			Header: hdr,
			X:      int(C.ev_mouse_x(ev)),
			Y:      int(C.ev_mouse_y(ev)),
			Button: uint(C.ev_mouse_button(ev)),
		}

	case C.ALLEGRO_EVENT_MOUSE_BUTTON_UP:
		return event.MouseButtonUp{
			Header: hdr,
			X:      int(C.ev_mouse_x(ev)),
			Y:      int(C.ev_mouse_y(ev)),
			Button: uint(C.ev_mouse_button(ev)),
		}

	case C.ALLEGRO_EVENT_MOUSE_AXES:
		return event.MouseAxes{
			Header: hdr,
			X:      int(C.ev_mouse_x(ev)),
			Y:      int(C.ev_mouse_y(ev)),
			Z:      int(C.ev_mouse_z(ev)),
			DX:     int(C.ev_mouse_dx(ev)),
			DY:     int(C.ev_mouse_dy(ev)),
			DZ:     int(C.ev_mouse_dz(ev)),
		}

	case C.ALLEGRO_EVENT_TIMER:
		return event.TimerTick{
			Header: hdr,
			Count:  int64(C.ev_timer_count(ev)),
		}

	case C.GOALLEGRO_USER_EVENT_TYPE:
		// The payload reference is dropped by the destructor passed to
		// al_emit_user_event once every queue has unreferenced the event.
		payload := pointer.Restore(unsafe.Pointer(uintptr(C.ev_user_data1(ev))))
		C.ev_unref_user(ev)
		return event.User{Header: hdr, Payload: payload}

	default:
		return event.Other{Header: hdr, Type: uint32(typ)}
	}
}
