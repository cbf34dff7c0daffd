package imageutil

import (
	"image"
	"image/color"
)

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c color.NRGBA) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	img.Fill(img.Bounds(), c)
	return img
}

// CreateCheckerboardImage creates a two color checkerboard. Each square is
// squareSize pixels wide, so every row breaks into width/squareSize runs.
func CreateCheckerboardImage(width, height, squareSize int, a, b color.NRGBA) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetNRGBA(x, y, a)
			} else {
				img.SetNRGBA(x, y, b)
			}
		}
	}
	return img
}

// ColorBars are the colors used by CreateColorBarsImage, left to right.
var ColorBars = []color.NRGBA{
	{255, 255, 255, 255}, // White
	{255, 255, 0, 255},   // Yellow
	{0, 255, 255, 255},   // Cyan
	{0, 255, 0, 255},     // Green
	{255, 0, 255, 255},   // Magenta
	{255, 0, 0, 255},     // Red
	{0, 0, 255, 255},     // Blue
	{0, 0, 0, 255},       // Black
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	barWidth := width / len(ColorBars)
	if barWidth == 0 {
		barWidth = 1
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := x / barWidth
			if colorIdx >= len(ColorBars) {
				colorIdx = len(ColorBars) - 1
			}
			img.SetNRGBA(x, y, ColorBars[colorIdx])
		}
	}
	return img
}

// CreateSpriteImage draws a small pixel-art sprite: a transparent
// background, an opaque outlined square and a half transparent window in
// its middle. Useful for exercising the transparency policy.
func CreateSpriteImage(width, height int) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	outline := color.NRGBA{R: 20, G: 20, B: 40, A: 255}
	body := color.NRGBA{R: 200, G: 60, B: 60, A: 255}
	glass := color.NRGBA{R: 120, G: 200, B: 255, A: 128}

	rx1, ry1 := width/4, height/4
	rx2, ry2 := 3*width/4, 3*height/4
	img.Fill(image.Rect(rx1, ry1, rx2, ry2), outline)
	img.Fill(image.Rect(rx1+1, ry1+1, rx2-1, ry2-1), body)
	cx, cy := width/2, height/2
	img.Fill(image.Rect(cx-1, cy-1, cx+1, cy+1), glass)
	return img
}

// CreateNoiseImage fills an image with a deterministic pseudo-random
// pattern drawn from n distinct colors, including fully transparent ones
// when withAlpha is set.
func CreateNoiseImage(width, height, n int, withAlpha bool) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	state := uint32(2463534242)
	next := func() uint32 {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		return state
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := int(next() % uint32(n))
			c := color.NRGBA{R: uint8(i * 37), G: uint8(i * 91), B: uint8(i * 13), A: 255}
			if withAlpha {
				c.A = uint8(i * 85)
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
