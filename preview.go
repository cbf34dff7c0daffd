package img2svg

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wbrown/img2svg/imageutil"
)

const (
	// CaptionHeight is the height of the stats strip under the preview.
	CaptionHeight = 18
	// MinPreviewWidth keeps the caption readable for tiny canvases.
	MinPreviewWidth = 240
	// MaxPreviewSize bounds both edges of the rendered canvas. Larger
	// documents are shrunk with nearest-neighbor sampling.
	MaxPreviewSize = 2048

	captionFontSize = 11
	checkerSize     = 8
)

var (
	checkerLight = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	checkerDark  = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	captionBG    = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}

	captionFontOnce sync.Once
	captionFont     *truetype.Font
	captionFontErr  error
)

func loadCaptionFont() (*truetype.Font, error) {
	captionFontOnce.Do(func() {
		captionFont, captionFontErr = freetype.ParseFont(goregular.TTF)
	})
	return captionFont, captionFontErr
}

// RenderPreview rasterises doc over a checkerboard, so unpainted and
// translucent pixels stay visible, and writes stats into a caption strip
// below the canvas.
func RenderPreview(doc Document, stats Stats) (*image.RGBA, error) {
	raster := imageutil.Fit(doc.Image(), MaxPreviewSize, MaxPreviewSize,
		imageutil.InterpolationNearest)
	canvas := raster.Bounds()
	width := max(canvas.Dx(), MinPreviewWidth)
	caption := image.Rect(0, canvas.Max.Y, width, canvas.Max.Y+CaptionHeight)
	dst := image.NewRGBA(image.Rect(0, 0, width, caption.Max.Y))

	for y := 0; y < canvas.Max.Y; y += checkerSize {
		for x := 0; x < canvas.Max.X; x += checkerSize {
			c := checkerLight
			if (x/checkerSize+y/checkerSize)%2 == 1 {
				c = checkerDark
			}
			cell := image.Rect(x, y, x+checkerSize, y+checkerSize).Intersect(canvas)
			draw.Draw(dst, cell, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	draw.Draw(dst, canvas, raster, image.Point{}, draw.Over)
	draw.Draw(dst, caption, image.NewUniform(captionBG), image.Point{}, draw.Src)

	f, err := loadCaptionFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load caption font: %w", err)
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(captionFontSize)
	ctx.SetClip(caption)
	ctx.SetDst(dst)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	pt := freetype.Pt(4, caption.Min.Y+CaptionHeight-5)
	if _, err := ctx.DrawString(stats.String(), pt); err != nil {
		return nil, fmt.Errorf("failed to draw caption: %w", err)
	}
	return dst, nil
}

// SavePreview renders the preview of doc and writes it as PNG.
func SavePreview(path string, doc Document, stats Stats) error {
	img, err := RenderPreview(doc, stats)
	if err != nil {
		return err
	}
	return imageutil.SavePNG(img, path)
}
