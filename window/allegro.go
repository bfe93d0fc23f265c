//go:build !sdl2

package window

import (
	"log"

	"github.com/ushitora-anqou/goallegro/allegro"
	"github.com/ushitora-anqou/goallegro/allegro/font"
	"github.com/ushitora-anqou/goallegro/allegro/image"
	"github.com/ushitora-anqou/goallegro/allegro/primitives"
	"github.com/ushitora-anqou/goallegro/allegro/ttf"
	"github.com/ushitora-anqou/goallegro/config"
	"github.com/ushitora-anqou/goallegro/constant"
	"github.com/ushitora-anqou/goallegro/demo"
	"github.com/ushitora-anqou/goallegro/event"
	"github.com/ushitora-anqou/goallegro/lifecycle"
)

type AllegroWindow struct {
	seq lifecycle.Sequence

	core  *allegro.Core
	fonts *font.Addon
	ttf   *ttf.Addon
	prim  *primitives.Addon

	disp    *allegro.Display
	timer   *allegro.Timer
	user    *allegro.UserEventSource
	queue   *event.Queue
	bmp     *allegro.Bitmap
	bkg     *allegro.Bitmap
	builtin *font.Font
	ttfFont *font.Font

	white, black allegro.Color
}

// NewAllegroWindow initializes the core and the addons.
func NewAllegroWindow() (*AllegroWindow, error) {
	wind := &AllegroWindow{
		white: allegro.MapRGBF(1, 1, 1),
		black: allegro.MapRGBF(0, 0, 0),
	}
	seq := &wind.seq

	err := seq.Acquire("core", func() (lifecycle.Resource, error) {
		core, err := allegro.Init()
		if err != nil {
			return nil, err
		}
		wind.core = core
		return core, nil
	})
	if err != nil {
		return nil, err
	}
	err = seq.Acquire("image addon", func() (lifecycle.Resource, error) {
		return acquire(image.Init(wind.core))
	})
	if err != nil {
		return nil, err
	}
	err = seq.Acquire("font addon", func() (lifecycle.Resource, error) {
		fonts, err := font.Init(wind.core)
		if err != nil {
			return nil, err
		}
		wind.fonts = fonts
		return fonts, nil
	})
	if err != nil {
		return nil, err
	}
	err = seq.Acquire("ttf addon", func() (lifecycle.Resource, error) {
		addon, err := ttf.Init(wind.fonts)
		if err != nil {
			return nil, err
		}
		wind.ttf = addon
		return addon, nil
	})
	if err != nil {
		return nil, err
	}
	err = seq.Acquire("primitives addon", func() (lifecycle.Resource, error) {
		prim, err := primitives.Init(wind.core)
		if err != nil {
			return nil, err
		}
		wind.prim = prim
		return prim, nil
	})
	if err != nil {
		return nil, err
	}

	return wind, nil
}

func acquire(res lifecycle.Resource, err error) (lifecycle.Resource, error) {
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Open creates the display, input devices, timer and queue, then the assets.
func (wind *AllegroWindow) Open(cfg config.Config) error {
	seq := &wind.seq
	core := wind.core

	err := seq.Acquire("display", func() (lifecycle.Resource, error) {
		disp, err := allegro.NewDisplay(core, cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		disp.SetWindowTitle(constant.WINDOW_TITLE)
		wind.disp = disp
		return disp, nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("keyboard", func() (lifecycle.Resource, error) {
		return acquire(core.InstallKeyboard())
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("mouse", func() (lifecycle.Resource, error) {
		return acquire(core.InstallMouse())
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("timer", func() (lifecycle.Resource, error) {
		timer, err := allegro.NewTimer(core, cfg.TickInterval())
		if err != nil {
			return nil, err
		}
		wind.timer = timer
		return timer, nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("user event source", func() (lifecycle.Resource, error) {
		user, err := allegro.NewUserEventSource(core)
		if err != nil {
			return nil, err
		}
		wind.user = user
		return user, nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("event queue", func() (lifecycle.Resource, error) {
		q, err := allegro.NewEventQueue(core)
		if err != nil {
			return nil, err
		}
		sources := []event.Source{wind.disp, core.Keyboard(), core.Mouse(), wind.timer, wind.user}
		for _, src := range sources {
			if err := q.Register(src); err != nil {
				q.Destroy()
				return nil, err
			}
		}
		wind.queue = q
		return q, nil
	})
	if err != nil {
		return err
	}

	if x1, y1, x2, y2, err := core.MonitorInfo(0); err == nil {
		log.Printf("%d %d %d %d", x1, y1, x2, y2)
	}

	err = seq.Acquire("bitmap", func() (lifecycle.Resource, error) {
		bmp, err := allegro.NewBitmap(core, constant.BITMAP_SIZE, constant.BITMAP_SIZE)
		if err != nil {
			return nil, err
		}
		core.SetTargetBitmap(bmp)
		core.ClearToColor(allegro.MapRGBF(0, 0, 1))

		sub, err := bmp.CreateSubBitmap(
			constant.SUB_BITMAP_POS, constant.SUB_BITMAP_POS,
			constant.SUB_BITMAP_SIZE, constant.SUB_BITMAP_SIZE,
		)
		if err != nil {
			bmp.Destroy()
			return nil, err
		}
		core.SetTargetBitmap(sub)
		core.ClearToColor(allegro.MapRGBF(0, 1, 1))
		core.SetTargetBackbuffer(wind.disp)
		sub.Destroy()

		wind.bmp = bmp
		return bmp, nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("background", func() (lifecycle.Resource, error) {
		bkg, err := allegro.LoadBitmap(core, cfg.Asset(constant.BACKGROUND_IMAGE))
		if err != nil {
			return nil, err
		}
		wind.bkg = bkg
		return bkg, nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("builtin font", func() (lifecycle.Resource, error) {
		f, err := wind.fonts.Builtin()
		if err != nil {
			return nil, err
		}
		wind.builtin = f
		return f, nil
	})
	if err != nil {
		return err
	}
	return seq.Acquire("ttf font", func() (lifecycle.Resource, error) {
		f, err := wind.ttf.LoadFont(cfg.Asset(constant.TTF_FONT), constant.TTF_FONT_SIZE, 0)
		if err != nil {
			return nil, err
		}
		wind.ttfFont = f
		return f, nil
	})
}

func (wind *AllegroWindow) Draw(theta float32) error {
	core := wind.core
	cx := float32(wind.disp.Width() / 2)
	cy := float32(wind.disp.Height() / 2)

	core.ClearToColor(wind.black)
	core.DrawBitmap(wind.bkg, 0, 0, allegro.FlipNone)
	core.DrawRotatedBitmap(wind.bmp, 0, 0, cx, cy, theta, allegro.FlipNone)
	wind.builtin.DrawText(wind.white, cx, constant.WELCOME_Y, font.AlignCentre, constant.WELCOME_TEXT)
	wind.ttfFont.DrawText(wind.white, cx, constant.TTF_Y, font.AlignCentre, constant.TTF_TEXT)
	wind.prim.DrawLine(constant.LINE_X1, constant.LINE_Y, constant.LINE_X2, constant.LINE_Y,
		wind.white, constant.LINE_THICKNESS)
	wind.disp.Flip()
	return nil
}

func (wind *AllegroWindow) Queue() demo.Queue {
	return wind.queue
}

func (wind *AllegroWindow) Display() event.SourceID {
	return wind.disp.EventSource()
}

func (wind *AllegroWindow) Start() {
	wind.timer.Start()
}

func (wind *AllegroWindow) Emit(payload interface{}) error {
	return wind.user.Emit(payload)
}

// Close tears everything down in reverse order of creation.
func (wind *AllegroWindow) Close() {
	wind.seq.Close()
}
