// Package imageutil is the decoding side of img2svg: it loads raster files
// and turns them into non-premultiplied RGBA images whose bytes can be
// handed to the encoder unchanged.
package imageutil

import (
	"image"
	"image/color"
)

// NRGBAImage wraps image.NRGBA with convenience methods for pixel access.
// Pixels are non-premultiplied, so a half transparent red stays (255,0,0,128).
type NRGBAImage struct {
	*image.NRGBA
}

// NewNRGBAImage creates a fully transparent image of the given size.
func NewNRGBAImage(width, height int) *NRGBAImage {
	return &NRGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// NRGBAImageFromImage converts any image.Image to an NRGBAImage rebased to
// the origin. *image.NRGBA sources are copied byte for byte; other sources
// go through color.NRGBAModel, which is exact for straight-alpha colors and
// the best available for premultiplied ones.
func NRGBAImageFromImage(img image.Image) *NRGBAImage {
	bounds := img.Bounds()
	dst := NewNRGBAImage(bounds.Dx(), bounds.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		rowLen := bounds.Dx() * 4
		for y := 0; y < bounds.Dy(); y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], src.Pix[off:off+rowLen])
		}
		return dst
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}
	return dst
}

// Width returns the image width.
func (img *NRGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *NRGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Fill sets every pixel of r to c.
func (img *NRGBAImage) Fill(r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// Clone creates a deep copy of the image.
func (img *NRGBAImage) Clone() *NRGBAImage {
	clone := NewNRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}

// Equal reports whether both images have the same size and bytes.
func (img *NRGBAImage) Equal(other *NRGBAImage) bool {
	if img.Width() != other.Width() || img.Height() != other.Height() {
		return false
	}
	for y := 0; y < img.Height(); y++ {
		a := img.Pix[img.PixOffset(0, y) : img.PixOffset(0, y)+img.Width()*4]
		b := other.Pix[other.PixOffset(0, y) : other.PixOffset(0, y)+other.Width()*4]
		if string(a) != string(b) {
			return false
		}
	}
	return true
}
