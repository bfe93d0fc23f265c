package allegro

// #include "goallegro.h"
import "C"
import (
	"unsafe"

	"github.com/ushitora-anqou/goallegro/event"
	"github.com/ushitora-anqou/goallegro/handle"
)

func sourceID(src *C.ALLEGRO_EVENT_SOURCE) event.SourceID {
	return event.SourceID(uintptr(unsafe.Pointer(src)))
}

// Keyboard is the event source of the installed keyboard. It is owned by the
// Core; Destroy uninstalls the keyboard driver.
type Keyboard struct {
	id event.SourceID
	h  *handle.Handle
}

func (k *Keyboard) EventSource() event.SourceID {
	return k.id
}

func (k *Keyboard) Alive() bool {
	return !k.h.Released()
}

func (k *Keyboard) Destroy() {
	k.h.Release()
}

// Mouse is the event source of the installed mouse.
type Mouse struct {
	id event.SourceID
	h  *handle.Handle
}

func (m *Mouse) EventSource() event.SourceID {
	return m.id
}

func (m *Mouse) Alive() bool {
	return !m.h.Released()
}

func (m *Mouse) Destroy() {
	m.h.Release()
}
