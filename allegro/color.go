package allegro

// #include "goallegro.h"
import "C"

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

func MapRGB(r, g, b uint8) Color {
	return MapRGBA(r, g, b, 255)
}

func MapRGBA(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

func MapRGBF(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

func MapRGBAF(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

func (c Color) UnmapRGBA() (r, g, b, a uint8) {
	conv := func(f float32) uint8 {
		switch {
		case f <= 0:
			return 0
		case f >= 1:
			return 255
		}
		return uint8(f*255 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B), conv(c.A)
}

func (c Color) native() C.ALLEGRO_COLOR {
	return C.ALLEGRO_COLOR{r: C.float(c.R), g: C.float(c.G), b: C.float(c.B), a: C.float(c.A)}
}
