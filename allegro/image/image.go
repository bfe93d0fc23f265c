// Package image binds the Allegro image addon, which registers the bitmap
// loaders used by allegro.LoadBitmap.
package image

// #cgo pkg-config: allegro_image-5
// #include <allegro5/allegro.h>
// #include <allegro5/allegro_image.h>
import "C"
import (
	"github.com/ushitora-anqou/goallegro/allegro"
	"github.com/ushitora-anqou/goallegro/handle"
)

type Addon struct {
	h *handle.Handle
}

func Init(core *allegro.Core) (*Addon, error) {
	if err := core.Handle().Check(); err != nil {
		return nil, err
	}
	if !bool(C.al_init_image_addon()) {
		return nil, handle.NewInitError("image addon")
	}

	a := &Addon{
		h: handle.New("image addon", func() { C.al_shutdown_image_addon() }),
	}
	core.Handle().Adopt(a.h)
	return a, nil
}

func (a *Addon) Alive() bool {
	return !a.h.Released()
}

func (a *Addon) Destroy() {
	a.h.Release()
}
