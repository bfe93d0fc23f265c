package window

import (
	"github.com/ushitora-anqou/goallegro/config"
	"github.com/ushitora-anqou/goallegro/demo"
	"github.com/ushitora-anqou/goallegro/event"
)

// Window is a backend of the example program. Creating it initializes the
// library and its addons; Open creates the display, input devices, timer,
// event queue and assets.
type Window interface {
	demo.Scene
	Open(cfg config.Config) error
	Queue() demo.Queue
	// Display identifies the source of the close event that ends the loop.
	Display() event.SourceID
	// Start starts the redraw timer.
	Start()
	// Emit delivers payload to the queue as an event.User.
	Emit(payload interface{}) error
	Close()
}
