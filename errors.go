package img2svg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBuffer is returned when a PixelBuffer's dimensions or byte
	// length cannot describe a row-major RGBA image.
	ErrInvalidBuffer = errors.New("img2svg: invalid pixel buffer")

	// ErrInvalidConfig is returned in strict mode when the pixel size is
	// outside [MinPixelSize, MaxPixelSize].
	ErrInvalidConfig = errors.New("img2svg: invalid configuration")

	// ErrDecode wraps failures of the image decoder.
	ErrDecode = errors.New("img2svg: decode failed")
)

// BufferError describes why a PixelBuffer was rejected.
type BufferError struct {
	Width, Height int
	Len           int
	Reason        string
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("%v: %dx%d with %d bytes: %s",
		ErrInvalidBuffer, e.Width, e.Height, e.Len, e.Reason)
}

func (e *BufferError) Unwrap() error { return ErrInvalidBuffer }

// ConfigError reports a pixel size rejected in strict mode.
type ConfigError struct {
	PixelSize int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: pixel size %d not in [%d, %d]",
		ErrInvalidConfig, e.PixelSize, MinPixelSize, MaxPixelSize)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }
