package allegro

// #include <stdlib.h>
// #include "goallegro.h"
import "C"
import (
	"unsafe"

	"github.com/ushitora-anqou/goallegro/handle"
)

type Bitmap struct {
	ptr *C.ALLEGRO_BITMAP
	h   *handle.Handle
}

func newBitmap(owner *handle.Handle, kind string, ptr *C.ALLEGRO_BITMAP) *Bitmap {
	b := &Bitmap{
		ptr: ptr,
		h:   handle.New(kind, func() { C.al_destroy_bitmap(ptr) }),
	}
	owner.Adopt(b.h)
	return b
}

func NewBitmap(core *Core, width, height int) (*Bitmap, error) {
	if err := core.h.Check(); err != nil {
		return nil, err
	}
	ptr := C.al_create_bitmap(C.int(width), C.int(height))
	if ptr == nil {
		return nil, handle.NewInitError("bitmap")
	}
	return newBitmap(core.h, "bitmap", ptr), nil
}

// LoadBitmap needs the image addon for every format but BMP.
func LoadBitmap(core *Core, path string) (*Bitmap, error) {
	if err := core.h.Check(); err != nil {
		return nil, err
	}
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))

	ptr := C.al_load_bitmap(cs)
	if ptr == nil {
		return nil, handle.NewLoadError("bitmap", path)
	}
	return newBitmap(core.h, "bitmap", ptr), nil
}

// CreateSubBitmap shares pixels with b. The sub-bitmap is owned by b and is
// destroyed no later than b.
func (b *Bitmap) CreateSubBitmap(x, y, width, height int) (*Bitmap, error) {
	if err := b.h.Check(); err != nil {
		return nil, err
	}
	ptr := C.al_create_sub_bitmap(b.ptr, C.int(x), C.int(y), C.int(width), C.int(height))
	if ptr == nil {
		return nil, handle.NewInitError("sub-bitmap")
	}
	return newBitmap(b.h, "sub-bitmap", ptr), nil
}

// Width and Height are 0 once b has been released, directly or through its
// owner.
func (b *Bitmap) Width() int {
	if b.h.Released() {
		return 0
	}
	return int(C.al_get_bitmap_width(b.ptr))
}

func (b *Bitmap) Height() int {
	if b.h.Released() {
		return 0
	}
	return int(C.al_get_bitmap_height(b.ptr))
}

func (b *Bitmap) IsSubBitmap() bool {
	if b.h.Released() {
		return false
	}
	return bool(C.al_is_sub_bitmap(b.ptr))
}

func (b *Bitmap) Alive() bool {
	return !b.h.Released()
}

// Destroy releases nothing native for a display backbuffer.
func (b *Bitmap) Destroy() {
	b.h.Release()
}
