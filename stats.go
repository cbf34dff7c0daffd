package img2svg

import (
	"fmt"
	"log/slog"
	"time"
)

// Stats summarises one conversion. Elapsed covers the scan and emit pass
// only, never decoding or I/O.
type Stats struct {
	Width          int
	Height         int
	PixelSize      int
	PaletteSize    int
	PrimitiveCount int
	Elapsed        time.Duration
}

// ElapsedMillis returns Elapsed in fractional milliseconds.
func (s Stats) ElapsedMillis() float64 {
	return float64(s.Elapsed) / float64(time.Millisecond)
}

// PixelCount is the number of source pixels.
func (s Stats) PixelCount() int {
	return s.Width * s.Height
}

func (s Stats) String() string {
	return fmt.Sprintf("%dx%d px, scale %d, %d colors, %d rects, %.2fms",
		s.Width, s.Height, s.PixelSize, s.PaletteSize, s.PrimitiveCount,
		s.ElapsedMillis())
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("width", s.Width),
		slog.Int("height", s.Height),
		slog.Int("pixel_size", s.PixelSize),
		slog.Int("palette_size", s.PaletteSize),
		slog.Int("primitives", s.PrimitiveCount),
		slog.Float64("elapsed_ms", s.ElapsedMillis()),
	)
}
