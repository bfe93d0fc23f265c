package handle

import (
	"errors"
	"fmt"
)

var (
	ErrInit = errors.New("initialization failure")
	ErrLoad = errors.New("load failure")
)

// InitError reports a native resource that could not be acquired.
type InitError struct {
	What string
	Err  error
}

func NewInitError(what string) *InitError {
	return &InitError{What: what}
}

func (e *InitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not initialize %s: %v", e.What, e.Err)
	}
	return fmt.Sprintf("could not initialize %s", e.What)
}

func (e *InitError) Is(target error) bool {
	return target == ErrInit
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// LoadError reports an asset that could not be loaded.
type LoadError struct {
	Kind string
	Path string
	Err  error
}

func NewLoadError(kind, path string) *LoadError {
	return &LoadError{Kind: kind, Path: path}
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not load %s %q: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("could not load %s %q", e.Kind, e.Path)
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
