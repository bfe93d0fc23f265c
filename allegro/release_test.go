package allegro

import (
	"errors"
	"runtime"
	"testing"

	"github.com/ushitora-anqou/goallegro/handle"
)

// newCore skips the test where the system cannot be installed.
func newCore(t *testing.T) *Core {
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	core, err := Init()
	if err != nil {
		t.Skipf("allegro unavailable: %v", err)
	}
	return core
}

func TestUseAfterCoreDestroy(t *testing.T) {
	core := newCore(t)

	bmp, err := NewBitmap(core, 32, 16)
	if err != nil {
		core.Destroy()
		t.Fatal(err)
	}
	sub, err := bmp.CreateSubBitmap(0, 0, 8, 8)
	if err != nil {
		core.Destroy()
		t.Fatal(err)
	}
	timer, err := NewTimer(core, 0.5)
	if err != nil {
		core.Destroy()
		t.Fatal(err)
	}
	if bmp.Width() != 32 || bmp.Height() != 16 {
		t.Fatalf("size: (got: %dx%d) (expected: 32x16)", bmp.Width(), bmp.Height())
	}
	if !sub.IsSubBitmap() {
		t.Fatalf("sub-bitmap not reported as such")
	}

	core.Destroy()

	for _, b := range []*Bitmap{bmp, sub} {
		if b.Alive() {
			t.Fatalf("bitmap alive after core destroyed")
		}
		if b.Width() != 0 || b.Height() != 0 || b.IsSubBitmap() {
			t.Fatalf("released bitmap still queried")
		}
	}
	core.SetTargetBitmap(bmp)
	core.ClearToColor(MapRGB(255, 0, 0))
	core.DrawBitmap(sub, 0, 0, FlipNone)
	core.DrawRotatedBitmap(bmp, 0, 0, 10, 10, 1, FlipNone)

	timer.Start()
	timer.SetSpeed(1)
	if timer.Started() || timer.Count() != 0 || timer.Speed() != 0 {
		t.Fatalf("released timer still queried")
	}

	if _, err := NewBitmap(core, 8, 8); !errors.Is(err, handle.ErrReleased) {
		t.Fatalf("NewBitmap: (got: %v) (expected: %v)", err, handle.ErrReleased)
	}
}

func TestUseAfterParentBitmapDestroy(t *testing.T) {
	core := newCore(t)
	defer core.Destroy()

	bmp, err := NewBitmap(core, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	sub, err := bmp.CreateSubBitmap(4, 4, 4, 4)
	if err != nil {
		t.Fatal(err)
	}

	bmp.Destroy()

	if sub.Alive() || sub.Width() != 0 {
		t.Fatalf("sub-bitmap outlived its parent")
	}
	core.DrawScaledBitmap(sub, 0, 0, 4, 4, 0, 0, 8, 8, FlipNone)
	if _, err := sub.CreateSubBitmap(0, 0, 1, 1); !errors.Is(err, handle.ErrReleased) {
		t.Fatalf("CreateSubBitmap: (got: %v) (expected: %v)", err, handle.ErrReleased)
	}
}
