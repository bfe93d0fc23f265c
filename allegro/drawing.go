package allegro

// #include "goallegro.h"
import "C"

type DrawFlags int

const (
	FlipNone       DrawFlags = 0
	FlipHorizontal DrawFlags = C.ALLEGRO_FLIP_HORIZONTAL
	FlipVertical   DrawFlags = C.ALLEGRO_FLIP_VERTICAL
)

// SetTargetBitmap selects the bitmap drawn to by the calling thread.
// Drawing calls involving a released core, bitmap or display do nothing.
func (c *Core) SetTargetBitmap(b *Bitmap) {
	if c.h.Released() || b.h.Released() {
		return
	}
	C.al_set_target_bitmap(b.ptr)
}

func (c *Core) SetTargetBackbuffer(d *Display) {
	if c.h.Released() || d.h.Released() {
		return
	}
	C.al_set_target_backbuffer(d.ptr)
}

func (c *Core) ClearToColor(color Color) {
	if c.h.Released() {
		return
	}
	C.al_clear_to_color(color.native())
}

func (c *Core) DrawBitmap(b *Bitmap, dx, dy float32, flags DrawFlags) {
	if !c.drawable(b) {
		return
	}
	C.al_draw_bitmap(b.ptr, C.float(dx), C.float(dy), C.int(flags))
}

func (c *Core) DrawTintedBitmap(b *Bitmap, tint Color, dx, dy float32, flags DrawFlags) {
	if !c.drawable(b) {
		return
	}
	C.al_draw_tinted_bitmap(b.ptr, tint.native(), C.float(dx), C.float(dy), C.int(flags))
}

// DrawRotatedBitmap draws b rotated by angle radians around its point
// (cx, cy), which ends up at (dx, dy) on the target.
func (c *Core) DrawRotatedBitmap(b *Bitmap, cx, cy, dx, dy, angle float32, flags DrawFlags) {
	if !c.drawable(b) {
		return
	}
	C.al_draw_rotated_bitmap(b.ptr, C.float(cx), C.float(cy), C.float(dx), C.float(dy),
		C.float(angle), C.int(flags))
}

func (c *Core) DrawScaledBitmap(b *Bitmap, sx, sy, sw, sh, dx, dy, dw, dh float32, flags DrawFlags) {
	if !c.drawable(b) {
		return
	}
	C.al_draw_scaled_bitmap(b.ptr, C.float(sx), C.float(sy), C.float(sw), C.float(sh),
		C.float(dx), C.float(dy), C.float(dw), C.float(dh), C.int(flags))
}

func (c *Core) drawable(b *Bitmap) bool {
	return !c.h.Released() && !b.h.Released()
}
