package handle

import (
	"errors"
	"fmt"

	"github.com/ushitora-anqou/goallegro/util"
)

var ErrReleased = errors.New("use of released handle")

// Handle owns one native resource. The release function runs at most once,
// either through Release or through the release of the owning parent.
type Handle struct {
	kind     string
	release  func()
	released bool
	parent   *Handle
	children []*Handle
}

func New(kind string, release func()) *Handle {
	return &Handle{
		kind:    kind,
		release: release,
	}
}

func (h *Handle) Kind() string {
	return h.kind
}

func (h *Handle) Released() bool {
	return h.released
}

func (h *Handle) Check() error {
	if h == nil || h.released {
		kind := "<nil>"
		if h != nil {
			kind = h.kind
		}
		return fmt.Errorf("%s: %w", kind, ErrReleased)
	}
	return nil
}

// Adopt makes child owned by h. Children are released before h, in reverse
// adoption order. Adopting into a released handle releases the child at once.
func (h *Handle) Adopt(child *Handle) {
	if child == nil || child.released {
		return
	}
	if child.parent != nil {
		child.parent.detach(child)
	}
	if h.released {
		child.Release()
		return
	}
	child.parent = h
	h.children = append(h.children, child)
}

func (h *Handle) detach(child *Handle) {
	for i, c := range h.children {
		if c == child {
			h.children = append(h.children[:i], h.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Release is idempotent.
func (h *Handle) Release() {
	if h == nil || h.released {
		return
	}
	h.released = true

	for len(h.children) > 0 {
		last := h.children[len(h.children)-1]
		h.children = h.children[:len(h.children)-1]
		last.parent = nil
		last.Release()
	}

	if h.parent != nil {
		h.parent.detach(h)
	}

	util.Trace("handle: release %s", h.kind)
	if h.release != nil {
		h.release()
		h.release = nil
	}
}

// Children returns the number of live handles owned by h.
func (h *Handle) Children() int {
	return len(h.children)
}
