//go:build !sdl2

package main

import (
	"log"
	"runtime"

	"github.com/ushitora-anqou/goallegro/window"
)

// Allegro must be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	err := run(func() (window.Window, error) {
		return window.NewAllegroWindow()
	})
	if err != nil {
		log.Fatal(err)
	}
}
