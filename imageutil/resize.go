package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationNearest keeps hard pixel edges. The default for pixel art.
	InterpolationNearest Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationArea:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Resize scales img to width x height. The result is an NRGBA image at the
// origin; colors are approximate for anything but nearest-neighbor.
func Resize(img image.Image, width, height int, interp Interpolation) *NRGBAImage {
	dst := NewNRGBAImage(width, height)
	interp.scaler().Scale(dst.NRGBA, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// FitSize returns the largest size no bigger than maxWidth x maxHeight with
// the aspect ratio of w x h. Sizes that already fit are returned unchanged
// and neither edge drops below one pixel.
func FitSize(w, h, maxWidth, maxHeight int) (int, int) {
	if w <= maxWidth && h <= maxHeight {
		return w, h
	}
	scale := min(float64(maxWidth)/float64(w), float64(maxHeight)/float64(h))
	return max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))
}

// Fit shrinks img to fit within maxWidth x maxHeight, keeping its aspect
// ratio. Images that already fit are returned as is.
func Fit(img image.Image, maxWidth, maxHeight int, interp Interpolation) image.Image {
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxWidth, maxHeight)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return Resize(img, w, h, interp)
}
