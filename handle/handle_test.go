package handle

import (
	"errors"
	"fmt"
	"testing"
)

func TestReleaseOnce(t *testing.T) {
	cnt := 0
	h := New("bitmap", func() { cnt++ })

	for i := 0; i < 3; i++ {
		h.Release()
	}
	if cnt != 1 {
		t.Fatalf("release count: (got: %v) (expected: %v)", cnt, 1)
	}
	if !h.Released() {
		t.Fatalf("handle not marked as released")
	}
}

func TestReleaseDeferred(t *testing.T) {
	cnt := 0
	use := func(h *Handle) {
		defer h.Release()
	}

	h := New("display", func() { cnt++ })
	use(h)
	use(h)
	defer func() {
		if cnt != 1 {
			t.Fatalf("release count: (got: %v) (expected: %v)", cnt, 1)
		}
	}()
	h.Release()
}

func TestChildrenReleasedFirst(t *testing.T) {
	order := []string{}
	rec := func(name string) func() {
		return func() { order = append(order, name) }
	}

	core := New("core", rec("core"))
	disp := New("display", rec("display"))
	bmp := New("bitmap", rec("bitmap"))
	sub := New("sub-bitmap", rec("sub-bitmap"))
	core.Adopt(disp)
	core.Adopt(bmp)
	bmp.Adopt(sub)

	core.Release()

	expected := []string{"sub-bitmap", "bitmap", "display", "core"}
	if fmt.Sprint(order) != fmt.Sprint(expected) {
		t.Fatalf("release order: (got: %v) (expected: %v)", order, expected)
	}
}

func TestDescendantsReportReleased(t *testing.T) {
	core := New("core", nil)
	bmp := New("bitmap", nil)
	sub := New("sub-bitmap", nil)
	core.Adopt(bmp)
	bmp.Adopt(sub)

	core.Release()

	for _, h := range []*Handle{bmp, sub} {
		if !h.Released() {
			t.Fatalf("%s: not released with its owner", h.Kind())
		}
		if err := h.Check(); !errors.Is(err, ErrReleased) {
			t.Fatalf("%s: Check: (got: %v) (expected: %v)", h.Kind(), err, ErrReleased)
		}
	}
}

func TestChildReleasedAloneDetaches(t *testing.T) {
	cnt := 0
	parent := New("font addon", nil)
	child := New("font", func() { cnt++ })
	parent.Adopt(child)

	child.Release()
	if parent.Children() != 0 {
		t.Fatalf("children: (got: %v) (expected: %v)", parent.Children(), 0)
	}
	parent.Release()
	if cnt != 1 {
		t.Fatalf("release count: (got: %v) (expected: %v)", cnt, 1)
	}
}

func TestAdoptIntoReleased(t *testing.T) {
	cnt := 0
	parent := New("core", nil)
	parent.Release()

	child := New("timer", func() { cnt++ })
	parent.Adopt(child)
	if !child.Released() || cnt != 1 {
		t.Fatalf("child adopted by a released handle must be released")
	}
}

func TestCheck(t *testing.T) {
	h := New("timer", nil)
	if err := h.Check(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Release()
	if err := h.Check(); !errors.Is(err, ErrReleased) {
		t.Fatalf("Check: (got: %v) (expected: %v)", err, ErrReleased)
	}

	var nilHandle *Handle
	if err := nilHandle.Check(); !errors.Is(err, ErrReleased) {
		t.Fatalf("Check on nil: (got: %v) (expected: %v)", err, ErrReleased)
	}
}

func TestErrors(t *testing.T) {
	cause := errors.New("no such file")
	table := []struct {
		err    error
		target error
	}{
		{NewInitError("display"), ErrInit},
		{&InitError{What: "keyboard", Err: cause}, ErrInit},
		{NewLoadError("bitmap", "data/mysha.pcx"), ErrLoad},
		{fmt.Errorf("startup: %w", &LoadError{Kind: "font", Path: "x.ttf", Err: cause}), ErrLoad},
	}

	for _, entry := range table {
		if !errors.Is(entry.err, entry.target) {
			t.Fatalf("errors.Is(%v, %v) is false", entry.err, entry.target)
		}
	}
	if errors.Is(NewInitError("display"), ErrLoad) {
		t.Fatalf("init error must not match ErrLoad")
	}
	if !errors.Is(&InitError{What: "keyboard", Err: cause}, cause) {
		t.Fatalf("init error must unwrap to its cause")
	}
}
