package allegro

// #include <stdlib.h>
// #include "goallegro.h"
import "C"
import (
	"unsafe"

	"github.com/ushitora-anqou/goallegro/event"
	"github.com/ushitora-anqou/goallegro/handle"
)

type DisplayFlags int

const (
	Windowed         DisplayFlags = C.ALLEGRO_WINDOWED
	Fullscreen       DisplayFlags = C.ALLEGRO_FULLSCREEN
	OpenGL           DisplayFlags = C.ALLEGRO_OPENGL
	Resizable        DisplayFlags = C.ALLEGRO_RESIZABLE
	Frameless        DisplayFlags = C.ALLEGRO_FRAMELESS
	FullscreenWindow DisplayFlags = C.ALLEGRO_FULLSCREEN_WINDOW
)

// SetNewDisplayFlags sets the flags used by displays created afterwards on
// the calling thread.
func SetNewDisplayFlags(flags DisplayFlags) {
	C.al_set_new_display_flags(C.int(flags))
}

type Display struct {
	ptr        *C.ALLEGRO_DISPLAY
	id         event.SourceID
	h          *handle.Handle
	backbuffer *Bitmap
}

func NewDisplay(core *Core, width, height int) (*Display, error) {
	if err := core.h.Check(); err != nil {
		return nil, err
	}
	ptr := C.al_create_display(C.int(width), C.int(height))
	if ptr == nil {
		return nil, handle.NewInitError("display")
	}

	d := &Display{
		ptr: ptr,
		id:  sourceID(C.al_get_display_event_source(ptr)),
		h:   handle.New("display", func() { C.al_destroy_display(ptr) }),
	}
	core.h.Adopt(d.h)
	d.backbuffer = &Bitmap{
		ptr: C.al_get_backbuffer(ptr),
		h:   handle.New("backbuffer", nil),
	}
	d.h.Adopt(d.backbuffer.h)
	return d, nil
}

func (d *Display) SetWindowTitle(title string) {
	if d.h.Released() {
		return
	}
	cs := C.CString(title)
	defer C.free(unsafe.Pointer(cs))
	C.al_set_window_title(d.ptr, cs)
}

func (d *Display) Width() int {
	if d.h.Released() {
		return 0
	}
	return int(C.al_get_display_width(d.ptr))
}

func (d *Display) Height() int {
	if d.h.Released() {
		return 0
	}
	return int(C.al_get_display_height(d.ptr))
}

// Flip presents the backbuffer of the current display.
func (d *Display) Flip() {
	if d.h.Released() {
		return
	}
	C.al_flip_display()
}

// AcknowledgeResize must be called after a DisplayResize event of a
// resizable display.
func (d *Display) AcknowledgeResize() bool {
	if d.h.Released() {
		return false
	}
	return bool(C.al_acknowledge_resize(d.ptr))
}

// Backbuffer is borrowed from the display and becomes invalid with it.
func (d *Display) Backbuffer() *Bitmap {
	return d.backbuffer
}

func (d *Display) EventSource() event.SourceID {
	return d.id
}

func (d *Display) Alive() bool {
	return !d.h.Released()
}

func (d *Display) Destroy() {
	d.h.Release()
}
