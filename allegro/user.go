package allegro

// #include <stdlib.h>
// #include "goallegro.h"
//
// extern void goUserEventDtor(ALLEGRO_USER_EVENT *ev);
//
// static bool emit_user_event(ALLEGRO_EVENT_SOURCE *src, intptr_t data) {
// 	ALLEGRO_EVENT ev;
// 	ev.user.type = GOALLEGRO_USER_EVENT_TYPE;
// 	ev.user.data1 = data;
// 	return al_emit_user_event(src, &ev, goUserEventDtor);
// }
import "C"
import (
	"errors"
	"unsafe"

	"github.com/mattn/go-pointer"

	"github.com/ushitora-anqou/goallegro/event"
	"github.com/ushitora-anqou/goallegro/handle"
)

var ErrNoListener = errors.New("user event source is not registered with any queue")

// UserEventSource delivers arbitrary Go values as event.User events.
type UserEventSource struct {
	ptr *C.ALLEGRO_EVENT_SOURCE
	id  event.SourceID
	h   *handle.Handle
}

func NewUserEventSource(core *Core) (*UserEventSource, error) {
	if err := core.h.Check(); err != nil {
		return nil, err
	}
	ptr := (*C.ALLEGRO_EVENT_SOURCE)(C.calloc(1, C.sizeof_ALLEGRO_EVENT_SOURCE))
	if ptr == nil {
		return nil, handle.NewInitError("user event source")
	}
	C.al_init_user_event_source(ptr)

	s := &UserEventSource{
		ptr: ptr,
		id:  sourceID(ptr),
		h: handle.New("user event source", func() {
			C.al_destroy_user_event_source(ptr)
			C.free(unsafe.Pointer(ptr))
		}),
	}
	core.h.Adopt(s.h)
	return s, nil
}

// Emit queues payload on every queue s is registered with.
func (s *UserEventSource) Emit(payload interface{}) error {
	if err := s.h.Check(); err != nil {
		return err
	}
	p := pointer.Save(payload)
	if !bool(C.emit_user_event(s.ptr, C.intptr_t(uintptr(p)))) {
		// Allegro has already run the destructor.
		return ErrNoListener
	}
	return nil
}

func (s *UserEventSource) EventSource() event.SourceID {
	return s.id
}

func (s *UserEventSource) Alive() bool {
	return !s.h.Released()
}

func (s *UserEventSource) Destroy() {
	s.h.Release()
}
