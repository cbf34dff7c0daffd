package img2svg

import (
	"fmt"
	"image"
	"image/color"
)

// MaxDimension bounds the width and height accepted by Convert. At the
// maximum pixel size the canvas still fits comfortably in an int32.
const MaxDimension = 1 << 15

// ColorKey is the exact RGBA byte tuple of a pixel. Two pixels belong to
// the same run or palette class only if their keys are equal.
type ColorKey struct {
	R, G, B, A uint8
}

// NRGBA returns the key as a non-premultiplied color.
func (k ColorKey) NRGBA() color.NRGBA {
	return color.NRGBA{R: k.R, G: k.G, B: k.B, A: k.A}
}

// Transparent reports whether the key is fully transparent.
func (k ColorKey) Transparent() bool {
	return k.A == 0
}

func (k ColorKey) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", k.R, k.G, k.B, k.A)
}

// PixelBuffer is a decoded raster: Width*Height pixels stored row-major as
// non-premultiplied RGBA bytes. The core only reads from Pix.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a zeroed (fully transparent) buffer.
func NewPixelBuffer(width, height int) PixelBuffer {
	return PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// PixelBufferFromNRGBA borrows the pixels of img. The image must be rebased
// to the origin with a tight stride; otherwise the rows are copied.
func PixelBufferFromNRGBA(img *image.NRGBA) PixelBuffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if b.Min == (image.Point{}) && img.Stride == w*4 {
		return PixelBuffer{Width: w, Height: h, Pix: img.Pix[:w*h*4]}
	}
	buf := NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(buf.Pix[y*w*4:(y+1)*w*4], img.Pix[off:off+w*4])
	}
	return buf
}

// Validate checks that the buffer's length matches its dimensions and
// that the dimensions are within MaxDimension.
func (buf PixelBuffer) Validate() error {
	fail := func(reason string) error {
		return &BufferError{
			Width:  buf.Width,
			Height: buf.Height,
			Len:    len(buf.Pix),
			Reason: reason,
		}
	}
	switch {
	case buf.Width < 0 || buf.Height < 0:
		return fail("negative dimension")
	case buf.Width > MaxDimension || buf.Height > MaxDimension:
		return fail(fmt.Sprintf("dimension exceeds %d", MaxDimension))
	case len(buf.Pix) != buf.Width*buf.Height*4:
		return fail(fmt.Sprintf("want %d bytes", buf.Width*buf.Height*4))
	}
	return nil
}

// At returns the ColorKey at (x, y). The caller guarantees bounds.
func (buf PixelBuffer) At(x, y int) ColorKey {
	i := (y*buf.Width + x) * 4
	p := buf.Pix[i : i+4 : i+4]
	return ColorKey{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set writes the ColorKey at (x, y).
func (buf PixelBuffer) Set(x, y int, k ColorKey) {
	i := (y*buf.Width + x) * 4
	buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2], buf.Pix[i+3] = k.R, k.G, k.B, k.A
}

// Image wraps the buffer as an *image.NRGBA sharing its pixels.
func (buf PixelBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    buf.Pix,
		Stride: buf.Width * 4,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
}
