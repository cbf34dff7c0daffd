package img2svg

const (
	// MinPixelSize and MaxPixelSize bound the output scale of one source
	// pixel, in SVG user units.
	MinPixelSize = 1
	MaxPixelSize = 256
)

// Config controls a single conversion.
type Config struct {
	// PixelSize is the edge length of one source pixel in the output.
	PixelSize int

	// IncludeTransparent emits runs for pixels with alpha 0. When false
	// those pixels are skipped and left unpainted.
	IncludeTransparent bool

	// Strict rejects an out-of-range PixelSize with ErrInvalidConfig
	// instead of clamping it.
	Strict bool
}

// DefaultConfig returns a 1:1 conversion that drops fully transparent
// pixels.
func DefaultConfig() Config {
	return Config{PixelSize: 1}
}

// Normalize returns the config with PixelSize clamped to
// [MinPixelSize, MaxPixelSize]. In strict mode an out-of-range size is an
// error and the config is returned unchanged.
func (c Config) Normalize() (Config, error) {
	if c.PixelSize >= MinPixelSize && c.PixelSize <= MaxPixelSize {
		return c, nil
	}
	if c.Strict {
		return c, &ConfigError{PixelSize: c.PixelSize}
	}
	c.PixelSize = ClampPixelSize(c.PixelSize)
	return c, nil
}

// ClampPixelSize forces n into [MinPixelSize, MaxPixelSize].
func ClampPixelSize(n int) int {
	if n < MinPixelSize {
		return MinPixelSize
	}
	if n > MaxPixelSize {
		return MaxPixelSize
	}
	return n
}

// skip reports whether a pixel with key k is excluded from every run.
func (c Config) skip(k ColorKey) bool {
	return !c.IncludeTransparent && k.A == 0
}
