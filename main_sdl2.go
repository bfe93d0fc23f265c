//go:build sdl2

package main

import (
	"log"
	"runtime"

	"github.com/ushitora-anqou/goallegro/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	err := run(func() (window.Window, error) {
		return window.NewSDLWindow()
	})
	if err != nil {
		log.Fatal(err)
	}
}
