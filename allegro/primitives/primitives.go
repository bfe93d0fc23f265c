// Package primitives binds the Allegro primitives addon.
package primitives

// #cgo pkg-config: allegro_primitives-5
// #include <allegro5/allegro.h>
// #include <allegro5/allegro_primitives.h>
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
	if !bool(C.al_init_primitives_addon()) {
		return nil, handle.NewInitError("primitives addon")
	}

	a := &Addon{
		h: handle.New("primitives addon", func() { C.al_shutdown_primitives_addon() }),
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

func color(c allegro.Color) C.ALLEGRO_COLOR {
	return C.ALLEGRO_COLOR{r: C.float(c.R), g: C.float(c.G), b: C.float(c.B), a: C.float(c.A)}
}

// A thickness of 0 or less draws a hairline. Nothing is drawn once the
// addon has been shut down.
func (a *Addon) DrawLine(x1, y1, x2, y2 float32, c allegro.Color, thickness float32) {
	if a.h.Released() {
		return
	}
	C.al_draw_line(C.float(x1), C.float(y1), C.float(x2), C.float(y2), color(c), C.float(thickness))
}

func (a *Addon) DrawRectangle(x1, y1, x2, y2 float32, c allegro.Color, thickness float32) {
	if a.h.Released() {
		return
	}
	C.al_draw_rectangle(C.float(x1), C.float(y1), C.float(x2), C.float(y2), color(c), C.float(thickness))
}

func (a *Addon) DrawFilledRectangle(x1, y1, x2, y2 float32, c allegro.Color) {
	if a.h.Released() {
		return
	}
	C.al_draw_filled_rectangle(C.float(x1), C.float(y1), C.float(x2), C.float(y2), color(c))
}

func (a *Addon) DrawCircle(cx, cy, r float32, c allegro.Color, thickness float32) {
	if a.h.Released() {
		return
	}
	C.al_draw_circle(C.float(cx), C.float(cy), C.float(r), color(c), C.float(thickness))
}

func (a *Addon) DrawFilledCircle(cx, cy, r float32, c allegro.Color) {
	if a.h.Released() {
		return
	}
	C.al_draw_filled_circle(C.float(cx), C.float(cy), C.float(r), color(c))
}

func (a *Addon) DrawTriangle(x1, y1, x2, y2, x3, y3 float32, c allegro.Color, thickness float32) {
	if a.h.Released() {
		return
	}
	C.al_draw_triangle(C.float(x1), C.float(y1), C.float(x2), C.float(y2), C.float(x3), C.float(y3),
		color(c), C.float(thickness))
}
