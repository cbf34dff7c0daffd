package img2svg

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// errWriter remembers the first write error so the svgo canvas, which
// discards errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// WriteSVG serialises the document as SVG: the canvas envelope, a CSS
// style block with one rule per palette class, then one rect per
// primitive. The output is byte-identical for identical documents.
func (d Document) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(d.CanvasWidth, d.CanvasHeight,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, d.CanvasWidth, d.CanvasHeight),
		`shape-rendering="crispEdges"`)
	if len(d.Styles) > 0 {
		rules := make([]string, len(d.Styles))
		for i, rule := range d.Styles {
			rules[i] = rule.Declaration()
		}
		canvas.Style("text/css", rules...)
	}
	for _, r := range d.Rects {
		canvas.Rect(r.X, r.Y, r.Width, r.Height,
			`class="`+ClassName(r.Class)+`"`)
	}
	canvas.End()
	return ew.err
}

// SVG returns the serialised document.
func (d Document) SVG() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteSVG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
