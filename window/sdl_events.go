//go:build sdl2

package window

import (
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-pointer"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/goallegro/event"
	"github.com/ushitora-anqou/goallegro/handle"
)

// SDL has no per-object event sources, so every source gets a synthetic id.
var lastSourceID uint32

func newSourceID() event.SourceID {
	return event.SourceID(atomic.AddUint32(&lastSourceID, 1))
}

// sdlSource is a source owned by the SDL backend.
type sdlSource struct {
	id event.SourceID
	h  *handle.Handle
}

func (s *sdlSource) EventSource() event.SourceID {
	return s.id
}

func (s *sdlSource) Alive() bool {
	return !s.h.Released()
}

func (s *sdlSource) Destroy() {
	s.h.Release()
}

// SDLTimer pushes a tick event every interval from its own goroutine.
// sdl.PushEvent is safe to call from any thread.
type SDLTimer struct {
	sdlSource
	eventType uint32
	interval  time.Duration
	stop      chan struct{}
}

func NewSDLTimer(eventType uint32, seconds float64) *SDLTimer {
	t := &SDLTimer{
		eventType: eventType,
		interval:  time.Duration(seconds * float64(time.Second)),
	}
	t.id = newSourceID()
	t.h = handle.New("sdl timer", t.Stop)
	return t
}

func (t *SDLTimer) Start() {
	if t.stop != nil {
		return
	}
	t.stop = make(chan struct{})
	go func(stop chan struct{}) {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sdl.PushEvent(&sdl.UserEvent{Type: t.eventType, Code: int32(t.id)})
			case <-stop:
				return
			}
		}
	}(t.stop)
}

func (t *SDLTimer) Stop() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// SDLUserEventSource delivers Go values as event.User through the SDL queue.
type SDLUserEventSource struct {
	sdlSource
	eventType uint32
}

func NewSDLUserEventSource(eventType uint32) *SDLUserEventSource {
	s := &SDLUserEventSource{eventType: eventType}
	s.id = newSourceID()
	s.h = handle.New("sdl user event source", nil)
	return s
}

func (s *SDLUserEventSource) Emit(payload interface{}) error {
	if err := s.h.Check(); err != nil {
		return err
	}
	p := pointer.Save(payload)
	if _, err := sdl.PushEvent(&sdl.UserEvent{Type: s.eventType, Code: int32(s.id), Data1: p}); err != nil {
		pointer.Unref(p)
		return err
	}
	return nil
}

// sdlQueue implements event.Driver on the global SDL event queue. Events of
// sources that are not registered are dropped.
type sdlQueue struct {
	timerType, userType uint32
	keyboard, mouse     event.SourceID
	windows             map[uint32]event.SourceID
	registered          map[event.SourceID]bool
	ticks               map[event.SourceID]int64
	pending             []event.Event

	// Text input carries neither key nor modifiers, so KeyChar takes them
	// from the last key press.
	lastKey event.KeyCode
	lastMod event.Modifier
	// Mouse state reported with every MouseAxes event.
	x, y, z int
}

func newSDLQueue(timerType, userType uint32, keyboard, mouse event.SourceID) *sdlQueue {
	return &sdlQueue{
		timerType:  timerType,
		userType:   userType,
		keyboard:   keyboard,
		mouse:      mouse,
		windows:    map[uint32]event.SourceID{},
		registered: map[event.SourceID]bool{},
		ticks:      map[event.SourceID]int64{},
	}
}

func (q *sdlQueue) addWindow(windowID uint32, src event.SourceID) {
	q.windows[windowID] = src
}

func (q *sdlQueue) Register(src event.SourceID) {
	q.registered[src] = true
}

func (q *sdlQueue) Unregister(src event.SourceID) {
	delete(q.registered, src)
}

func millis(ts uint32) time.Duration {
	return time.Duration(ts) * time.Millisecond
}

// translate appends the events generated by ev to the pending list.
func (q *sdlQueue) translate(ev sdl.Event) {
	emit := func(e event.Event) {
		if q.registered[e.Source()] {
			q.pending = append(q.pending, e)
		}
	}

	switch e := ev.(type) {
	case *sdl.WindowEvent:
		hdr := event.Header{Src: q.windows[e.WindowID], Time: millis(e.Timestamp)}
		switch e.Event {
		case sdl.WINDOWEVENT_CLOSE:
			emit(event.DisplayClose{Header: hdr})
		case sdl.WINDOWEVENT_RESIZED:
			emit(event.DisplayResize{Header: hdr, Width: int(e.Data1), Height: int(e.Data2)})
		default:
			emit(event.Other{Header: hdr, Type: e.Type})
		}

	case *sdl.KeyboardEvent:
		hdr := event.Header{Src: q.keyboard, Time: millis(e.Timestamp)}
		key := translateKey(e.Keysym.Sym)
		mod := translateMod(e.Keysym.Mod)
		display := q.windows[e.WindowID]
		switch e.Type {
		case sdl.KEYDOWN:
			q.lastKey, q.lastMod = key, mod
			if e.Repeat == 0 {
				emit(event.KeyDown{Header: hdr, KeyCode: key, Display: display})
			}
			// Text input reports printable characters; only the keys that
			// produce no text get a KeyChar here.
			if r, ok := controlChars[key]; ok {
				emit(event.KeyChar{
					Header:    hdr,
					KeyCode:   key,
					Unichar:   r,
					Modifiers: mod,
					Repeat:    e.Repeat != 0,
					Display:   display,
				})
			}
		case sdl.KEYUP:
			emit(event.KeyUp{Header: hdr, KeyCode: key, Display: display})
		}

	case *sdl.TextInputEvent:
		hdr := event.Header{Src: q.keyboard, Time: millis(e.Timestamp)}
		text := e.GetText()
		for len(text) > 0 {
			r, size := utf8.DecodeRuneInString(text)
			text = text[size:]
			emit(event.KeyChar{
				Header:    hdr,
				KeyCode:   q.lastKey,
				Unichar:   r,
				Modifiers: q.lastMod,
				Display:   q.windows[e.WindowID],
			})
		}

	case *sdl.MouseButtonEvent:
		hdr := event.Header{Src: q.mouse, Time: millis(e.Timestamp)}
		button := uint(e.Button)
		// SDL numbers the right button 3 and the middle one 2; Allegro the
		// other way around.
		switch e.Button {
		case sdl.BUTTON_RIGHT:
			button = 2
		case sdl.BUTTON_MIDDLE:
			button = 3
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			emit(event.MouseButtonDown{Header: hdr, X: int(e.X), Y: int(e.Y), Button: button})
		} else {
			emit(event.MouseButtonUp{Header: hdr, X: int(e.X), Y: int(e.Y), Button: button})
		}

	case *sdl.MouseMotionEvent:
		q.x, q.y = int(e.X), int(e.Y)
		emit(event.MouseAxes{
			Header: event.Header{Src: q.mouse, Time: millis(e.Timestamp)},
			X:      q.x,
			Y:      q.y,
			Z:      q.z,
			DX:     int(e.XRel),
			DY:     int(e.YRel),
		})

	case *sdl.MouseWheelEvent:
		// SDL reports only the delta; Z is the wheel position since the
		// queue was created.
		dz := int(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dz = -dz
		}
		q.z += dz
		emit(event.MouseAxes{
			Header: event.Header{Src: q.mouse, Time: millis(e.Timestamp)},
			X:      q.x,
			Y:      q.y,
			Z:      q.z,
			DZ:     dz,
		})

	case *sdl.UserEvent:
		src := event.SourceID(e.Code)
		hdr := event.Header{Src: src, Time: millis(e.Timestamp)}
		switch e.Type {
		case q.timerType:
			q.ticks[src]++
			emit(event.TimerTick{Header: hdr, Count: q.ticks[src]})
		case q.userType:
			payload := pointer.Restore(e.Data1)
			pointer.Unref(e.Data1)
			emit(event.User{Header: hdr, Payload: payload})
		}

	case *sdl.QuitEvent:
		// Every window sends its own close event first.
	}
}

func (q *sdlQueue) pop() event.Event {
	ev := q.pending[0]
	q.pending = q.pending[1:]
	return ev
}

func (q *sdlQueue) Wait() event.Event {
	for len(q.pending) == 0 {
		q.translate(sdl.WaitEvent())
	}
	return q.pop()
}

func (q *sdlQueue) WaitTimeout(d time.Duration) (event.Event, bool) {
	deadline := time.Now().Add(d)
	for len(q.pending) == 0 {
		left := time.Until(deadline)
		if left <= 0 {
			return nil, false
		}
		ev := sdl.WaitEventTimeout(int(left / time.Millisecond))
		if ev == nil {
			return nil, false
		}
		q.translate(ev)
	}
	return q.pop(), true
}

func (q *sdlQueue) Next() (event.Event, bool) {
	for len(q.pending) == 0 {
		ev := sdl.PollEvent()
		if ev == nil {
			return nil, false
		}
		q.translate(ev)
	}
	return q.pop(), true
}

func (q *sdlQueue) Empty() bool {
	if len(q.pending) > 0 {
		return false
	}
	return !sdl.HasEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}

func (q *sdlQueue) Flush() {
	q.pending = nil
	sdl.FlushEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}

func (q *sdlQueue) Destroy() {
	q.Flush()
}

var controlChars = map[event.KeyCode]rune{
	event.KeyEscape:    0x1b,
	event.KeyBackspace: '\b',
	event.KeyTab:       '\t',
	event.KeyEnter:     '\r',
	event.KeyDelete:    0x7f,
}

func translateKey(sym sdl.Keycode) event.KeyCode {
	switch {
	case sym >= sdl.K_a && sym <= sdl.K_z:
		return event.KeyA + event.KeyCode(sym-sdl.K_a)
	case sym >= sdl.K_0 && sym <= sdl.K_9:
		return event.Key0 + event.KeyCode(sym-sdl.K_0)
	case sym >= sdl.K_KP_1 && sym <= sdl.K_KP_9:
		return event.KeyPad1 + event.KeyCode(sym-sdl.K_KP_1)
	case sym >= sdl.K_F1 && sym <= sdl.K_F12:
		return event.KeyF1 + event.KeyCode(sym-sdl.K_F1)
	}

	switch sym {
	case sdl.K_KP_0:
		return event.KeyPad0
	case sdl.K_ESCAPE:
		return event.KeyEscape
	case sdl.K_BACKQUOTE:
		return event.KeyTilde
	case sdl.K_MINUS:
		return event.KeyMinus
	case sdl.K_EQUALS:
		return event.KeyEquals
	case sdl.K_BACKSPACE:
		return event.KeyBackspace
	case sdl.K_TAB:
		return event.KeyTab
	case sdl.K_LEFTBRACKET:
		return event.KeyOpenBrace
	case sdl.K_RIGHTBRACKET:
		return event.KeyCloseBrace
	case sdl.K_RETURN:
		return event.KeyEnter
	case sdl.K_SEMICOLON:
		return event.KeySemicolon
	case sdl.K_QUOTE:
		return event.KeyQuote
	case sdl.K_BACKSLASH:
		return event.KeyBackslash
	case sdl.K_COMMA:
		return event.KeyComma
	case sdl.K_PERIOD:
		return event.KeyFullStop
	case sdl.K_SLASH:
		return event.KeySlash
	case sdl.K_SPACE:
		return event.KeySpace
	case sdl.K_INSERT:
		return event.KeyInsert
	case sdl.K_DELETE:
		return event.KeyDelete
	case sdl.K_HOME:
		return event.KeyHome
	case sdl.K_END:
		return event.KeyEnd
	case sdl.K_PAGEUP:
		return event.KeyPgUp
	case sdl.K_PAGEDOWN:
		return event.KeyPgDn
	case sdl.K_LEFT:
		return event.KeyLeftArrow
	case sdl.K_RIGHT:
		return event.KeyRightArrow
	case sdl.K_UP:
		return event.KeyUpArrow
	case sdl.K_DOWN:
		return event.KeyDownArrow
	}
	return 0
}

func translateMod(mod uint16) event.Modifier {
	var m event.Modifier
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= event.ModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= event.ModCtrl
	}
	if mod&sdl.KMOD_LALT != 0 {
		m |= event.ModAlt
	}
	if mod&sdl.KMOD_RALT != 0 {
		m |= event.ModAltGr
	}
	if mod&sdl.KMOD_LGUI != 0 {
		m |= event.ModLWin
	}
	if mod&sdl.KMOD_RGUI != 0 {
		m |= event.ModRWin
	}
	if mod&sdl.KMOD_NUM != 0 {
		m |= event.ModNumLock
	}
	if mod&sdl.KMOD_CAPS != 0 {
		m |= event.ModCapsLock
	}
	return m
}
