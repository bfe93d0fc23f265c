// Package lifecycle brings up native subsystems in dependency order and tears
// them down in reverse.
package lifecycle

import (
	"errors"
	"fmt"

	"github.com/ushitora-anqou/goallegro/util"
)

var ErrAborted = errors.New("initialization sequence aborted")

type Resource interface {
	Destroy()
}

// ReleaseFunc adapts a plain function to Resource.
type ReleaseFunc func()

func (f ReleaseFunc) Destroy() {
	f()
}

type stage struct {
	name string
	res  Resource
}

// Sequence is not safe for concurrent use. The zero value is ready to use.
type Sequence struct {
	stages  []stage
	aborted bool
}

// Acquire runs acquire and records the resulting resource. If acquire fails,
// every stage acquired so far is released in reverse order and the sequence
// refuses further stages.
func (s *Sequence) Acquire(name string, acquire func() (Resource, error)) error {
	if s.aborted {
		return fmt.Errorf("%s: %w", name, ErrAborted)
	}

	res, err := acquire()
	if err != nil {
		util.Trace("lifecycle: %s failed: %v", name, err)
		s.aborted = true
		s.teardown()
		return fmt.Errorf("%s: %w", name, err)
	}

	util.Trace("lifecycle: acquired %s", name)
	s.stages = append(s.stages, stage{name, res})
	return nil
}

// Stages returns the names of the live stages in acquisition order.
func (s *Sequence) Stages() []string {
	names := make([]string, len(s.stages))
	for i, st := range s.stages {
		names[i] = st.name
	}
	return names
}

func (s *Sequence) teardown() {
	for len(s.stages) > 0 {
		st := s.stages[len(s.stages)-1]
		s.stages = s.stages[:len(s.stages)-1]
		util.Trace("lifecycle: releasing %s", st.name)
		if st.res != nil {
			st.res.Destroy()
		}
	}
}

// Close releases every stage in reverse order. Close is idempotent and the
// sequence cannot be reused afterwards.
func (s *Sequence) Close() {
	s.aborted = true
	s.teardown()
}
