// Package event defines the events delivered by native event queues and the
// Queue adapter through which they are consumed.
//
// Event is a closed set of variants. Consumers dispatch with a type switch:
//
//	switch ev := ev.(type) {
//	case event.DisplayClose:
//	case event.KeyDown:
//		if ev.KeyCode == event.KeyEscape { ... }
//	}
//
// Events refer to their origin only through a SourceID, so holding an event
// never keeps a native source alive.
package event

import "time"

// SourceID identifies an event source. The zero value means "no source".
type SourceID uintptr

// Source is anything that can be registered with a Queue.
type Source interface {
	EventSource() SourceID
	// Alive reports whether the native source still exists.
	Alive() bool
}

type Event interface {
	Source() SourceID
	Timestamp() time.Duration
	isEvent()
}

// Header is embedded by every variant.
type Header struct {
	Src  SourceID
	Time time.Duration
}

func (h Header) Source() SourceID {
	return h.Src
}

// Timestamp is the time the native library generated the event, relative to
// library initialization.
func (h Header) Timestamp() time.Duration {
	return h.Time
}

func (Header) isEvent() {}

type Modifier uint32

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModLWin
	ModRWin
	ModMenu
	ModAltGr
	ModCommand
	ModScrollLock
	ModNumLock
	ModCapsLock
)

type DisplayClose struct {
	Header
}

type DisplayResize struct {
	Header
	X, Y          int
	Width, Height int
}

type KeyDown struct {
	Header
	KeyCode KeyCode
	Display SourceID
}

type KeyUp struct {
	Header
	KeyCode KeyCode
	Display SourceID
}

// KeyChar is generated for every character typed, including auto-repeat.
type KeyChar struct {
	Header
	KeyCode   KeyCode
	Unichar   rune
	Modifiers Modifier
	Repeat    bool
	Display   SourceID
}

type MouseButtonDown struct {
	Header
	X, Y   int
	Button uint // 1-based
}

type MouseButtonUp struct {
	Header
	X, Y   int
	Button uint
}

type MouseAxes struct {
	Header
	X, Y, Z    int
	DX, DY, DZ int
}

type TimerTick struct {
	Header
	Count int64
}

// User carries a Go value emitted through a user event source.
type User struct {
	Header
	Payload interface{}
}

// Other is any native event without a dedicated variant.
type Other struct {
	Header
	Type uint32
}
