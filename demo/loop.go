// Package demo contains the event loop of the example program, independent
// of the backend that draws the scene.
package demo

import (
	"fmt"
	"log"

	"golang.org/x/text/unicode/runenames"

	"github.com/ushitora-anqou/goallegro/event"
)

// ThetaStep is the rotation added on every timer tick, in radians.
const ThetaStep = 0.01

type Queue interface {
	IsEmpty() bool
	WaitForEvent() (event.Event, error)
}

// Scene draws one frame and presents it.
type Scene interface {
	Draw(theta float32) error
}

type Loop struct {
	queue   Queue
	scene   Scene
	display event.SourceID
	redraw  bool

	Theta  float32
	Frames int
}

// NewLoop creates a loop that stops when display is closed. A zero display
// accepts close events from any source.
func NewLoop(queue Queue, scene Scene, display event.SourceID) *Loop {
	return &Loop{
		queue:   queue,
		scene:   scene,
		display: display,
		redraw:  true,
	}
}

// Run alternates between redrawing (once the queue has been drained after a
// timer tick) and waiting for the next event. It returns nil when the display
// is closed or Escape is pressed.
func (l *Loop) Run() error {
	for {
		if l.redraw && l.queue.IsEmpty() {
			if err := l.scene.Draw(l.Theta); err != nil {
				return err
			}
			l.Frames++
			l.redraw = false
		}

		ev, err := l.queue.WaitForEvent()
		if err != nil {
			return err
		}
		quit, err := l.dispatch(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (l *Loop) dispatch(ev event.Event) (bool, error) {
	switch ev := ev.(type) {
	case event.DisplayClose:
		if l.display != 0 && ev.Source() != l.display {
			return false, fmt.Errorf("close event from unknown display %#x", ev.Source())
		}
		log.Println("Display close event...")
		return true, nil

	case event.KeyDown:
		if ev.KeyCode == event.KeyEscape {
			log.Println("Pressed Escape!")
			return true, nil
		}

	case event.KeyChar:
		log.Printf("Entered a character: %c (%s)", ev.Unichar, runenames.Name(ev.Unichar))

	case event.TimerTick:
		l.redraw = true
		l.Theta += ThetaStep

	case event.MouseButtonDown:
		log.Printf("Mouse button %d pressed", ev.Button)

	case event.User:
		log.Printf("User event: %v", ev.Payload)

	default:
		log.Println("Some other event...")
	}
	return false, nil
}
