// Package ttf binds the Allegro TTF addon.
package ttf

// #cgo pkg-config: allegro_ttf-5
// #include <stdlib.h>
// #include <allegro5/allegro.h>
// #include <allegro5/allegro_ttf.h>
import "C"
import (
	"unsafe"

	"github.com/ushitora-anqou/goallegro/allegro/font"
	"github.com/ushitora-anqou/goallegro/handle"
)

type Flags int

const (
	NoKerning  Flags = C.ALLEGRO_TTF_NO_KERNING
	Monochrome Flags = C.ALLEGRO_TTF_MONOCHROME
	NoAutohint Flags = C.ALLEGRO_TTF_NO_AUTOHINT
)

type Addon struct {
	h *handle.Handle
}

// Init requires the font addon, which owns the TTF addon afterwards.
func Init(fonts *font.Addon) (*Addon, error) {
	if err := fonts.Handle().Check(); err != nil {
		return nil, err
	}
	if !bool(C.al_init_ttf_addon()) {
		return nil, handle.NewInitError("ttf addon")
	}

	a := &Addon{
		h: handle.New("ttf addon", func() { C.al_shutdown_ttf_addon() }),
	}
	fonts.Handle().Adopt(a.h)
	return a, nil
}

func (a *Addon) Alive() bool {
	return !a.h.Released()
}

func (a *Addon) Destroy() {
	a.h.Release()
}

// LoadFont loads a TrueType font. A negative size gives the total glyph
// height in pixels instead of the em size.
func (a *Addon) LoadFont(path string, size int, flags Flags) (*font.Font, error) {
	if err := a.h.Check(); err != nil {
		return nil, err
	}
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))

	ptr := C.al_load_ttf_font(cs, C.int(size), C.int(flags))
	if ptr == nil {
		return nil, handle.NewLoadError("ttf font", path)
	}
	return font.Wrap(a.h, unsafe.Pointer(ptr)), nil
}
