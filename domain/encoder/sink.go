package encoder

import (
	"errors"

	"github.com/soocke/firescreen-go/domain/capture"
	"github.com/soocke/firescreen-go/domain/compositor"
)

var (
	// ErrUnsupportedFormat is returned when the output extension has no codec.
	ErrUnsupportedFormat = errors.New("encoder: unsupported format")
	// ErrSinkOpenFailed is returned when the container cannot be created.
	ErrSinkOpenFailed = errors.New("encoder: cannot open output")
	// ErrWriteFailed is returned when a frame cannot be appended.
	ErrWriteFailed = errors.New("encoder: write failed")
)

// Sink accepts composited frames for one recording session.
//
// Write appends a whole frame or nothing. Close finalises the container and
// is safe to call more than once; Write after Close fails with ErrWriteFailed.
type Sink interface {
	Write(frame compositor.Frame) error
	Close() error
	Frames() int
}

// Opener creates a Sink for path. Implementations reject unknown extensions
// with ErrUnsupportedFormat before touching the filesystem.
type Opener interface {
	Open(path string, frameRate int, dims capture.Dimensions) (Sink, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string, frameRate int, dims capture.Dimensions) (Sink, error)

func (f OpenerFunc) Open(path string, frameRate int, dims capture.Dimensions) (Sink, error) {
	return f(path, frameRate, dims)
}
