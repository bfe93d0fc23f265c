//go:build sdl2

package window

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/ushitora-anqou/goallegro/config"
	"github.com/ushitora-anqou/goallegro/constant"
	"github.com/ushitora-anqou/goallegro/demo"
	"github.com/ushitora-anqou/goallegro/event"
	"github.com/ushitora-anqou/goallegro/handle"
	"github.com/ushitora-anqou/goallegro/lifecycle"
)

// SDLWindow runs the example on SDL2. It mirrors AllegroWindow so that the
// same loop drives both.
type SDLWindow struct {
	seq lifecycle.Sequence

	timerType, userType uint32
	keyboard, mouse     *sdlSource

	window   *sdl.Window
	renderer *sdl.Renderer
	display  event.SourceID
	timer    *SDLTimer
	user     *SDLUserEventSource
	driver   *sdlQueue
	queue    *event.Queue

	bmp, bkg      *sdl.Texture
	welcome, text *sdl.Texture
}

func resource(release func()) lifecycle.Resource {
	return lifecycle.ReleaseFunc(release)
}

// NewSDLWindow initializes SDL and its image and ttf libraries.
func NewSDLWindow() (*SDLWindow, error) {
	wind := &SDLWindow{}
	seq := &wind.seq

	err := seq.Acquire("sdl", func() (lifecycle.Resource, error) {
		if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
			return nil, &handle.InitError{What: "sdl", Err: err}
		}
		return resource(sdl.Quit), nil
	})
	if err != nil {
		return nil, err
	}
	err = seq.Acquire("image addon", func() (lifecycle.Resource, error) {
		if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
			return nil, &handle.InitError{What: "sdl image", Err: err}
		}
		return resource(img.Quit), nil
	})
	if err != nil {
		return nil, err
	}
	err = seq.Acquire("ttf addon", func() (lifecycle.Resource, error) {
		if err := ttf.Init(); err != nil {
			return nil, &handle.InitError{What: "sdl ttf", Err: err}
		}
		return resource(ttf.Quit), nil
	})
	if err != nil {
		return nil, err
	}

	base := sdl.RegisterEvents(2)
	if base == ^uint32(0) {
		seq.Close()
		return nil, &handle.InitError{What: "sdl user events", Err: sdl.GetError()}
	}
	wind.timerType, wind.userType = base, base+1
	return wind, nil
}

func (wind *SDLWindow) Open(cfg config.Config) error {
	seq := &wind.seq

	err := seq.Acquire("display", func() (lifecycle.Resource, error) {
		window, err := sdl.CreateWindow(
			constant.WINDOW_TITLE,
			sdl.WINDOWPOS_UNDEFINED,
			sdl.WINDOWPOS_UNDEFINED,
			int32(cfg.Width),
			int32(cfg.Height),
			sdl.WINDOW_SHOWN,
		)
		if err != nil {
			return nil, &handle.InitError{What: "display", Err: err}
		}
		renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_TARGETTEXTURE)
		if err != nil {
			window.Destroy()
			return nil, &handle.InitError{What: "renderer", Err: err}
		}
		wind.window, wind.renderer = window, renderer
		wind.display = newSourceID()
		return resource(func() {
			renderer.Destroy()
			window.Destroy()
			wind.window, wind.renderer = nil, nil
		}), nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("keyboard", func() (lifecycle.Resource, error) {
		wind.keyboard = &sdlSource{id: newSourceID(), h: handle.New("sdl keyboard", sdl.StopTextInput)}
		sdl.StartTextInput()
		return wind.keyboard, nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("mouse", func() (lifecycle.Resource, error) {
		wind.mouse = &sdlSource{id: newSourceID(), h: handle.New("sdl mouse", nil)}
		return wind.mouse, nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("timer", func() (lifecycle.Resource, error) {
		wind.timer = NewSDLTimer(wind.timerType, cfg.TickInterval())
		return wind.timer, nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("user event source", func() (lifecycle.Resource, error) {
		wind.user = NewSDLUserEventSource(wind.userType)
		return wind.user, nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("event queue", func() (lifecycle.Resource, error) {
		windowID, err := wind.window.GetID()
		if err != nil {
			return nil, &handle.InitError{What: "event queue", Err: err}
		}
		wind.driver = newSDLQueue(wind.timerType, wind.userType, wind.keyboard.id, wind.mouse.id)
		wind.driver.addWindow(windowID, wind.display)

		q := event.NewQueue(wind.driver)
		sources := []event.Source{displaySource{wind}, wind.keyboard, wind.mouse, wind.timer, wind.user}
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

	if bounds, err := sdl.GetDisplayBounds(0); err == nil {
		log.Printf("%d %d %d %d", bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H)
	}

	err = seq.Acquire("bitmap", func() (lifecycle.Resource, error) {
		bmp, err := wind.createBitmap()
		if err != nil {
			return nil, err
		}
		wind.bmp = bmp
		return resource(func() { bmp.Destroy() }), nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("background", func() (lifecycle.Resource, error) {
		path := cfg.Asset(constant.BACKGROUND_IMAGE)
		surface, err := img.Load(path)
		if err != nil {
			return nil, &handle.LoadError{Kind: "bitmap", Path: path, Err: err}
		}
		defer surface.Free()
		bkg, err := wind.renderer.CreateTextureFromSurface(surface)
		if err != nil {
			return nil, &handle.LoadError{Kind: "bitmap", Path: path, Err: err}
		}
		wind.bkg = bkg
		return resource(func() { bkg.Destroy() }), nil
	})
	if err != nil {
		return err
	}
	err = seq.Acquire("welcome text", func() (lifecycle.Resource, error) {
		tex, err := wind.renderText(cfg.Asset(constant.TTF_FONT), constant.SDL_BUILTIN_FONT_SIZE, constant.WELCOME_TEXT)
		if err != nil {
			return nil, err
		}
		wind.welcome = tex
		return resource(func() { tex.Destroy() }), nil
	})
	if err != nil {
		return err
	}
	return seq.Acquire("ttf text", func() (lifecycle.Resource, error) {
		tex, err := wind.renderText(cfg.Asset(constant.TTF_FONT), -constant.TTF_FONT_SIZE, constant.TTF_TEXT)
		if err != nil {
			return nil, err
		}
		wind.text = tex
		return resource(func() { tex.Destroy() }), nil
	})
}

// displaySource lets the queue check the window without the window itself
// implementing event.Source.
type displaySource struct {
	wind *SDLWindow
}

func (d displaySource) EventSource() event.SourceID {
	return d.wind.display
}

func (d displaySource) Alive() bool {
	return d.wind.window != nil
}

func (wind *SDLWindow) createBitmap() (*sdl.Texture, error) {
	r := wind.renderer
	bmp, err := r.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_TARGET,
		constant.BITMAP_SIZE,
		constant.BITMAP_SIZE,
	)
	if err != nil {
		return nil, &handle.InitError{What: "bitmap", Err: err}
	}

	if err := r.SetRenderTarget(bmp); err != nil {
		bmp.Destroy()
		return nil, &handle.InitError{What: "bitmap", Err: err}
	}
	r.SetDrawColor(0, 0, 0xff, 0xff)
	r.Clear()
	r.SetDrawColor(0, 0xff, 0xff, 0xff)
	r.FillRect(&sdl.Rect{
		X: constant.SUB_BITMAP_POS,
		Y: constant.SUB_BITMAP_POS,
		W: constant.SUB_BITMAP_SIZE,
		H: constant.SUB_BITMAP_SIZE,
	})
	if err := r.SetRenderTarget(nil); err != nil {
		bmp.Destroy()
		return nil, &handle.InitError{What: "bitmap", Err: err}
	}
	return bmp, nil
}

func (wind *SDLWindow) renderText(path string, size int, text string) (*sdl.Texture, error) {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, &handle.LoadError{Kind: "ttf font", Path: path, Err: err}
	}
	defer font.Close()

	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	if err != nil {
		return nil, fmt.Errorf("render %q: %w", text, err)
	}
	defer surface.Free()
	return wind.renderer.CreateTextureFromSurface(surface)
}

func (wind *SDLWindow) copyCentered(tex *sdl.Texture, cx, y int32) error {
	_, _, w, h, err := tex.Query()
	if err != nil {
		return err
	}
	return wind.renderer.Copy(tex, nil, &sdl.Rect{X: cx - w/2, Y: y, W: w, H: h})
}

func (wind *SDLWindow) Draw(theta float32) error {
	r := wind.renderer
	width, height := wind.window.GetSize()
	cx, cy := width/2, height/2

	r.SetDrawColor(0, 0, 0, 0xff)
	if err := r.Clear(); err != nil {
		return err
	}
	if err := r.Copy(wind.bkg, nil, nil); err != nil {
		return err
	}
	// CopyEx rotates clockwise in degrees around a point of dst.
	err := r.CopyEx(
		wind.bmp,
		nil,
		&sdl.Rect{X: cx, Y: cy, W: constant.BITMAP_SIZE, H: constant.BITMAP_SIZE},
		float64(theta)*180/3.141592653589793,
		&sdl.Point{X: 0, Y: 0},
		sdl.FLIP_NONE,
	)
	if err != nil {
		return err
	}
	if err := wind.copyCentered(wind.welcome, cx, constant.WELCOME_Y); err != nil {
		return err
	}
	if err := wind.copyCentered(wind.text, cx, constant.TTF_Y); err != nil {
		return err
	}
	r.SetDrawColor(0xff, 0xff, 0xff, 0xff)
	r.FillRect(&sdl.Rect{
		X: constant.LINE_X1,
		Y: constant.LINE_Y - constant.LINE_THICKNESS/2,
		W: constant.LINE_X2 - constant.LINE_X1,
		H: constant.LINE_THICKNESS,
	})
	r.Present()
	return nil
}

func (wind *SDLWindow) Queue() demo.Queue {
	return wind.queue
}

func (wind *SDLWindow) Display() event.SourceID {
	return wind.display
}

func (wind *SDLWindow) Start() {
	wind.timer.Start()
}

// Emit delivers payload as a user event.
func (wind *SDLWindow) Emit(payload interface{}) error {
	return wind.user.Emit(payload)
}

func (wind *SDLWindow) Close() {
	wind.seq.Close()
}
