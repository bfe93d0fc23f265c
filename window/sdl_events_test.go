//go:build sdl2

package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/goallegro/event"
)

const (
	testTimerType = sdl.USEREVENT + 1
	testUserType  = sdl.USEREVENT + 2
	testKeyboard  = event.SourceID(0x100)
	testMouse     = event.SourceID(0x200)
	testDisplay   = event.SourceID(0x300)
	testWindowID  = 7
)

func newTestQueue() *sdlQueue {
	q := newSDLQueue(testTimerType, testUserType, testKeyboard, testMouse)
	q.addWindow(testWindowID, testDisplay)
	for _, src := range []event.SourceID{testKeyboard, testMouse, testDisplay} {
		q.Register(src)
	}
	return q
}

func textInput(s string) *sdl.TextInputEvent {
	ev := &sdl.TextInputEvent{Type: sdl.TEXTINPUT, WindowID: testWindowID}
	copy(ev.Text[:], s)
	return ev
}

func TestTextInputTakesLastKey(t *testing.T) {
	q := newTestQueue()
	q.translate(&sdl.KeyboardEvent{
		Type:     sdl.KEYDOWN,
		WindowID: testWindowID,
		Keysym:   sdl.Keysym{Sym: sdl.K_a, Mod: sdl.KMOD_LSHIFT},
	})
	q.translate(textInput("A"))

	if len(q.pending) != 2 {
		t.Fatalf("pending: (got: %v) (expected: %v)", len(q.pending), 2)
	}
	if _, ok := q.pop().(event.KeyDown); !ok {
		t.Fatalf("first event is not KeyDown")
	}
	ch, ok := q.pop().(event.KeyChar)
	if !ok {
		t.Fatalf("second event is not KeyChar")
	}
	if ch.Unichar != 'A' || ch.KeyCode != event.KeyA {
		t.Fatalf("KeyChar: (got: %q %v) (expected: 'A' A)", ch.Unichar, ch.KeyCode)
	}
	if ch.Modifiers&event.ModShift == 0 {
		t.Fatalf("KeyChar modifiers: (got: %#x) (expected shift)", ch.Modifiers)
	}
	if ch.Display != testDisplay {
		t.Fatalf("KeyChar display: (got: %#x) (expected: %#x)", ch.Display, testDisplay)
	}
}

func TestWheelPositionAccumulates(t *testing.T) {
	q := newTestQueue()
	q.translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20, XRel: 1, YRel: 2})
	q.translate(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2})
	q.translate(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -3})
	q.translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 11, Y: 20, XRel: 1})

	expected := []event.MouseAxes{
		{X: 10, Y: 20, Z: 0, DX: 1, DY: 2},
		{X: 10, Y: 20, Z: 2, DZ: 2},
		{X: 10, Y: 20, Z: -1, DZ: -3},
		{X: 11, Y: 20, Z: -1, DX: 1},
	}
	for i, exp := range expected {
		got, ok := q.pop().(event.MouseAxes)
		if !ok {
			t.Fatalf("event %d is not MouseAxes", i)
		}
		got.Header = event.Header{}
		if got != exp {
			t.Fatalf("event %d: (got: %+v) (expected: %+v)", i, got, exp)
		}
	}
}

func TestUnregisteredSourceDropped(t *testing.T) {
	q := newTestQueue()
	q.Unregister(testMouse)
	q.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	q.translate(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: testWindowID, Event: sdl.WINDOWEVENT_CLOSE})

	if len(q.pending) != 1 {
		t.Fatalf("pending: (got: %v) (expected: %v)", len(q.pending), 1)
	}
	if ev, ok := q.pop().(event.DisplayClose); !ok || ev.Source() != testDisplay {
		t.Fatalf("expected DisplayClose from the display")
	}
}

func TestTranslateArrowKeys(t *testing.T) {
	table := []struct {
		sym      sdl.Keycode
		expected event.KeyCode
	}{
		{sdl.K_UP, event.KeyUpArrow},
		{sdl.K_DOWN, event.KeyDownArrow},
		{sdl.K_ESCAPE, event.KeyEscape},
		{sdl.K_KP_0, event.KeyPad0},
	}
	for _, entry := range table {
		if got := translateKey(entry.sym); got != entry.expected {
			t.Fatalf("translateKey(%v): (got: %v) (expected: %v)", entry.sym, got, entry.expected)
		}
	}
}
