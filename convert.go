package img2svg

import (
	"fmt"
	"image"
	"time"

	"github.com/wbrown/img2svg/imageutil"
)

// Convert encodes buf as a vector document. It fails only on a malformed
// buffer, or on an out-of-range pixel size when cfg.Strict is set; the
// same input always yields the same document.
func Convert(buf PixelBuffer, cfg Config) (Document, Stats, error) {
	if err := buf.Validate(); err != nil {
		Logger().Warn("rejected pixel buffer", "err", err)
		return Document{}, Stats{}, err
	}
	cfg, err := cfg.Normalize()
	if err != nil {
		Logger().Warn("rejected configuration", "err", err)
		return Document{}, Stats{}, err
	}

	start := time.Now()
	runs, pal := ScanRuns(buf, cfg)
	doc := Emit(runs, pal, buf.Width, buf.Height, cfg.PixelSize)
	stats := Stats{
		Width:          buf.Width,
		Height:         buf.Height,
		PixelSize:      cfg.PixelSize,
		PaletteSize:    pal.Len(),
		PrimitiveCount: len(doc.Rects),
		Elapsed:        time.Since(start),
	}

	Logger().Debug("converted", "stats", stats)
	return doc, stats, nil
}

// Converter carries a Config between calls. It holds no per-image state,
// so one Converter may be used from several goroutines.
type Converter struct {
	cfg Config
}

// Option configures a Converter.
type Option func(*Converter)

// NewConverter creates a Converter starting from DefaultConfig.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithPixelSize sets the output edge length of one source pixel.
func WithPixelSize(n int) Option {
	return func(c *Converter) {
		c.cfg.PixelSize = n
	}
}

// WithTransparent controls whether fully transparent pixels are emitted.
func WithTransparent(include bool) Option {
	return func(c *Converter) {
		c.cfg.IncludeTransparent = include
	}
}

// WithStrict makes an out-of-range pixel size an error instead of being
// clamped.
func WithStrict(strict bool) Option {
	return func(c *Converter) {
		c.cfg.Strict = strict
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Converter) {
		c.cfg = cfg
	}
}

// Config returns the converter's configuration as given, before clamping.
func (c *Converter) Config() Config {
	return c.cfg
}

// Convert encodes buf with the converter's configuration.
func (c *Converter) Convert(buf PixelBuffer) (Document, Stats, error) {
	return Convert(buf, c.cfg)
}

// ConvertImage encodes any decoded image. Premultiplied sources are
// converted to straight alpha first.
func (c *Converter) ConvertImage(img image.Image) (Document, Stats, error) {
	var buf PixelBuffer
	if nrgba, ok := img.(*image.NRGBA); ok {
		buf = PixelBufferFromNRGBA(nrgba)
	} else {
		buf = PixelBufferFromNRGBA(imageutil.NRGBAImageFromImage(img).NRGBA)
	}
	return c.Convert(buf)
}

// ConvertFile decodes the image at path and encodes it. Decoder failures
// are wrapped with ErrDecode; Stats never include decoding time.
func (c *Converter) ConvertFile(path string) (Document, Stats, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return Document{}, Stats{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return c.Convert(PixelBufferFromNRGBA(img.NRGBA))
}
