package img2svg

// Run is a maximal horizontal stretch of identically colored pixels in one
// row. Class is the palette identifier of Color.
type Run struct {
	Row    int
	StartX int
	Length int
	Color  ColorKey
	Class  int
}

// End returns the x coordinate one past the last pixel of the run.
func (r Run) End() int {
	return r.StartX + r.Length
}

// ScanRuns walks buf row by row and returns its runs together with the
// palette built while scanning. The buffer must already be valid.
func ScanRuns(buf PixelBuffer, cfg Config) ([]Run, *Palette) {
	pal := NewPalette()
	return scanRuns(buf, cfg, pal), pal
}

// scanRuns merges each row left to right. Each color is interned as its
// run is appended, so class identifiers follow first appearance in
// row-major order.
func scanRuns(buf PixelBuffer, cfg Config, pal *Palette) []Run {
	var runs []Run
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; {
			k := buf.At(x, y)
			if cfg.skip(k) {
				x++
				continue
			}
			start := x
			x++
			for x < buf.Width && buf.At(x, y) == k {
				x++
			}
			runs = append(runs, Run{
				Row:    y,
				StartX: start,
				Length: x - start,
				Color:  k,
				Class:  pal.Intern(k),
			})
		}
	}
	return runs
}
