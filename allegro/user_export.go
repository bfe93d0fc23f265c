package allegro

// #include <allegro5/allegro.h>
import "C"
import (
	"unsafe"

	"github.com/mattn/go-pointer"
)

//export goUserEventDtor
func goUserEventDtor(ev *C.ALLEGRO_USER_EVENT) {
	pointer.Unref(unsafe.Pointer(uintptr(ev.data1)))
}
