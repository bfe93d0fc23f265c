// Package allegro binds the core of the Allegro 5 library.
//
// Every native object is owned by a handle.Handle. Objects created from a
// Core are adopted by it, so Core.Destroy releases them in reverse creation
// order before uninstalling the system. Destroy methods are idempotent.
//
// Allegro keeps per-thread state such as the target bitmap, so all calls must
// come from one OS thread. Programs lock the main goroutine in an init
// function:
//
//	func init() {
//		runtime.LockOSThread()
//	}
package allegro

// #cgo pkg-config: allegro-5
// #include "goallegro.h"
import "C"
import (
	"errors"
	"fmt"

	"github.com/ushitora-anqou/goallegro/handle"
	"github.com/ushitora-anqou/goallegro/util"
)

type Core struct {
	h        *handle.Handle
	keyboard *Keyboard
	mouse    *Mouse
}

// Init installs the Allegro system. Only one Core may exist at a time.
func Init() (*Core, error) {
	if bool(C.al_is_system_installed()) {
		return nil, &handle.InitError{What: "allegro core", Err: errors.New("already installed")}
	}
	if !bool(C.install_system()) {
		return nil, handle.NewInitError("allegro core")
	}

	major, minor, revision, _ := Version()
	util.Trace("allegro: core %d.%d.%d installed", major, minor, revision)

	return &Core{
		h: handle.New("core", func() { C.al_uninstall_system() }),
	}, nil
}

// Version returns the version of the linked library.
func Version() (major, minor, revision, release int) {
	v := uint32(C.al_get_allegro_version())
	return int(v >> 24), int((v >> 16) & 255), int((v >> 8) & 255), int(v & 255)
}

// Handle is the owner of everything created from c. Addon packages adopt
// their handles into it.
func (c *Core) Handle() *handle.Handle {
	return c.h
}

func (c *Core) Alive() bool {
	return !c.h.Released()
}

func (c *Core) Destroy() {
	c.h.Release()
}

func (c *Core) InstallKeyboard() (*Keyboard, error) {
	if err := c.h.Check(); err != nil {
		return nil, err
	}
	if c.keyboard != nil && c.keyboard.Alive() {
		return c.keyboard, nil
	}
	if !bool(C.al_install_keyboard()) {
		return nil, handle.NewInitError("keyboard")
	}

	k := &Keyboard{
		id: sourceID(C.al_get_keyboard_event_source()),
		h:  handle.New("keyboard", func() { C.al_uninstall_keyboard() }),
	}
	c.h.Adopt(k.h)
	c.keyboard = k
	return k, nil
}

func (c *Core) InstallMouse() (*Mouse, error) {
	if err := c.h.Check(); err != nil {
		return nil, err
	}
	if c.mouse != nil && c.mouse.Alive() {
		return c.mouse, nil
	}
	if !bool(C.al_install_mouse()) {
		return nil, handle.NewInitError("mouse")
	}

	m := &Mouse{
		id: sourceID(C.al_get_mouse_event_source()),
		h:  handle.New("mouse", func() { C.al_uninstall_mouse() }),
	}
	c.h.Adopt(m.h)
	c.mouse = m
	return m, nil
}

// Keyboard returns the installed keyboard, or nil.
func (c *Core) Keyboard() *Keyboard {
	if c.keyboard == nil || !c.keyboard.Alive() {
		return nil
	}
	return c.keyboard
}

// Mouse returns the installed mouse, or nil.
func (c *Core) Mouse() *Mouse {
	if c.mouse == nil || !c.mouse.Alive() {
		return nil
	}
	return c.mouse
}

func (c *Core) NumVideoAdapters() int {
	return int(C.al_get_num_video_adapters())
}

// MonitorInfo returns the desktop rectangle of the given adapter.
func (c *Core) MonitorInfo(adapter int) (x1, y1, x2, y2 int, err error) {
	var info C.ALLEGRO_MONITOR_INFO
	if !bool(C.al_get_monitor_info(C.int(adapter), &info)) {
		return 0, 0, 0, 0, fmt.Errorf("no monitor info for adapter %d", adapter)
	}
	return int(info.x1), int(info.y1), int(info.x2), int(info.y2), nil
}

// Time returns the seconds elapsed since the system was installed.
func (c *Core) Time() float64 {
	return float64(C.al_get_time())
}

func (c *Core) Rest(seconds float64) {
	C.al_rest(C.double(seconds))
}
