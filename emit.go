package img2svg

import (
	"image"
	"image/color"
	"sort"
	"strings"
)

// Rect is one scaled drawing primitive filled with a palette class.
type Rect struct {
	X, Y          int
	Width, Height int
	Class         int
}

// Bounds returns the rectangle in canvas coordinates.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Document is the vector form of a converted raster: a canvas envelope,
// the style table in palette order and one rectangle per run.
type Document struct {
	CanvasWidth  int
	CanvasHeight int
	Styles       []StyleRule
	Rects        []Rect
}

// Emit scales runs by pixelSize and assembles them with the palette's
// style table. Rects keep the order of runs. width and height are the
// source dimensions in pixels.
func Emit(runs []Run, pal *Palette, width, height, pixelSize int) Document {
	doc := Document{
		CanvasWidth:  width * pixelSize,
		CanvasHeight: height * pixelSize,
		Styles:       pal.Rules(),
		Rects:        make([]Rect, len(runs)),
	}
	for i, run := range runs {
		doc.Rects[i] = Rect{
			X:      run.StartX * pixelSize,
			Y:      run.Row * pixelSize,
			Width:  run.Length * pixelSize,
			Height: pixelSize,
			Class:  run.Class,
		}
	}
	return doc
}

// Stylesheet renders the style table, one rule per line.
func (d Document) Stylesheet() string {
	var sb strings.Builder
	for i, rule := range d.Styles {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(rule.Declaration())
	}
	return sb.String()
}

// Rasterize replays the document into a canvas-sized image. Pixels not
// covered by any rectangle stay fully transparent.
func (d Document) Rasterize() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d.CanvasWidth, d.CanvasHeight))
	for _, r := range d.Rects {
		k := d.Styles[r.Class].Color
		px := [4]byte{k.R, k.G, k.B, k.A}
		b := r.Bounds().Intersect(img.Rect)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
			for i := 0; i < len(row); i += 4 {
				copy(row[i:i+4], px[:])
			}
		}
	}
	return img
}

// Image returns a read-only view of the document that resolves each pixel
// on demand, so sampling a huge canvas never allocates it. Rects must be
// in emission order.
func (d Document) Image() image.Image {
	return documentImage{doc: d}
}

type documentImage struct {
	doc Document
}

func (im documentImage) ColorModel() color.Model { return color.NRGBAModel }

func (im documentImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.doc.CanvasWidth, im.doc.CanvasHeight)
}

// At finds the rect covering (x, y) by binary search. Rects are ordered by
// row band, then by x within a band.
func (im documentImage) At(x, y int) color.Color {
	rects := im.doc.Rects
	i := sort.Search(len(rects), func(i int) bool {
		r := rects[i]
		return r.Y > y || (r.Y+r.Height > y && r.X+r.Width > x)
	})
	if i < len(rects) && (image.Point{X: x, Y: y}).In(rects[i].Bounds()) {
		return im.doc.Styles[rects[i].Class].Color.NRGBA()
	}
	return color.NRGBA{}
}
