// Package font binds the Allegro font addon: the builtin font, bitmap fonts
// and text drawing. TTF fonts are loaded by package ttf and returned as Font.
package font

// #cgo pkg-config: allegro_font-5
// #include <stdlib.h>
// #include <allegro5/allegro.h>
// #include <allegro5/allegro_font.h>
import "C"
import (
	"unsafe"

	"github.com/ushitora-anqou/goallegro/allegro"
	"github.com/ushitora-anqou/goallegro/handle"
)

type Align int

const (
	AlignLeft    Align = C.ALLEGRO_ALIGN_LEFT
	AlignCentre  Align = C.ALLEGRO_ALIGN_CENTRE
	AlignRight   Align = C.ALLEGRO_ALIGN_RIGHT
	AlignInteger Align = C.ALLEGRO_ALIGN_INTEGER
)

type Addon struct {
	h *handle.Handle
}

func Init(core *allegro.Core) (*Addon, error) {
	if err := core.Handle().Check(); err != nil {
		return nil, err
	}
	if !bool(C.al_init_font_addon()) {
		return nil, handle.NewInitError("font addon")
	}

	a := &Addon{
		h: handle.New("font addon", func() { C.al_shutdown_font_addon() }),
	}
	core.Handle().Adopt(a.h)
	return a, nil
}

// Handle owns every font created through the addon, including the ones
// loaded by package ttf.
func (a *Addon) Handle() *handle.Handle {
	return a.h
}

func (a *Addon) Alive() bool {
	return !a.h.Released()
}

func (a *Addon) Destroy() {
	a.h.Release()
}

func (a *Addon) Builtin() (*Font, error) {
	if err := a.h.Check(); err != nil {
		return nil, err
	}
	ptr := C.al_create_builtin_font()
	if ptr == nil {
		return nil, handle.NewInitError("builtin font")
	}
	return Wrap(a.h, unsafe.Pointer(ptr)), nil
}

// Load loads a bitmap font, or any font format registered by other addons.
func (a *Addon) Load(path string, size int) (*Font, error) {
	if err := a.h.Check(); err != nil {
		return nil, err
	}
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))

	ptr := C.al_load_font(cs, C.int(size), 0)
	if ptr == nil {
		return nil, handle.NewLoadError("font", path)
	}
	return Wrap(a.h, unsafe.Pointer(ptr)), nil
}

type Font struct {
	ptr *C.ALLEGRO_FONT
	h   *handle.Handle
}

// Wrap takes ownership of an ALLEGRO_FONT created by another addon. The font
// is destroyed no later than owner.
func Wrap(owner *handle.Handle, ptr unsafe.Pointer) *Font {
	fp := (*C.ALLEGRO_FONT)(ptr)
	f := &Font{
		ptr: fp,
		h:   handle.New("font", func() { C.al_destroy_font(fp) }),
	}
	owner.Adopt(f.h)
	return f
}

// A released font measures as 0 and draws nothing.
func (f *Font) LineHeight() int {
	if f.h.Released() {
		return 0
	}
	return int(C.al_get_font_line_height(f.ptr))
}

func (f *Font) TextWidth(text string) int {
	if f.h.Released() {
		return 0
	}
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	return int(C.al_get_text_width(f.ptr, cs))
}

// DrawText draws onto the current target bitmap.
func (f *Font) DrawText(c allegro.Color, x, y float32, align Align, text string) {
	if f.h.Released() {
		return
	}
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	C.al_draw_text(f.ptr, C.ALLEGRO_COLOR{r: C.float(c.R), g: C.float(c.G), b: C.float(c.B), a: C.float(c.A)},
		C.float(x), C.float(y), C.int(align), cs)
}

func (f *Font) Alive() bool {
	return !f.h.Released()
}

func (f *Font) Destroy() {
	f.h.Release()
}
