package img2svg

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/wbrown/img2svg/imageutil"
)

func TestConvertScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		buf        PixelBuffer
		cfg        Config
		rects      []Rect
		paletteLen int
	}{
		{
			name:       "red pair",
			buf:        bufferOf(2, 1, ColorKey{255, 0, 0, 255}, ColorKey{255, 0, 0, 255}),
			cfg:        Config{PixelSize: 1, IncludeTransparent: true},
			rects:      []Rect{{X: 0, Y: 0, Width: 2, Height: 1, Class: 0}},
			paletteLen: 1,
		},
		{
			name:       "transparent pair",
			buf:        bufferOf(2, 1),
			cfg:        Config{PixelSize: 1},
			rects:      []Rect{},
			paletteLen: 0,
		},
		{
			name: "split by a different color",
			buf:  bufferOf(3, 1, ColorKey{1, 1, 1, 255}, ColorKey{2, 2, 2, 255}, ColorKey{1, 1, 1, 255}),
			cfg:  Config{PixelSize: 1},
			rects: []Rect{
				{X: 0, Y: 0, Width: 1, Height: 1, Class: 0},
				{X: 1, Y: 0, Width: 1, Height: 1, Class: 1},
				{X: 2, Y: 0, Width: 1, Height: 1, Class: 0},
			},
			paletteLen: 2,
		},
		{
			name:       "zero width",
			buf:        PixelBuffer{Width: 0, Height: 4},
			cfg:        Config{PixelSize: 3, IncludeTransparent: true},
			rects:      []Rect{},
			paletteLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, stats, err := Convert(tt.buf, tt.cfg)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if !reflect.DeepEqual(doc.Rects, tt.rects) {
				t.Errorf("rects = %+v, want %+v", doc.Rects, tt.rects)
			}
			if len(doc.Styles) != tt.paletteLen || stats.PaletteSize != tt.paletteLen {
				t.Errorf("palette size %d (stats %d), want %d", len(doc.Styles), stats.PaletteSize, tt.paletteLen)
			}
			if stats.PrimitiveCount != len(tt.rects) {
				t.Errorf("stats.PrimitiveCount = %d, want %d", stats.PrimitiveCount, len(tt.rects))
			}
			if doc.CanvasWidth != tt.buf.Width*tt.cfg.PixelSize || doc.CanvasHeight != tt.buf.Height*tt.cfg.PixelSize {
				t.Errorf("canvas %dx%d", doc.CanvasWidth, doc.CanvasHeight)
			}
		})
	}
}

func TestConvertHalfAlpha(t *testing.T) {
	t.Parallel()

	doc, _, err := Convert(bufferOf(1, 1, ColorKey{10, 20, 30, 128}), DefaultConfig())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(doc.Styles) != 1 || doc.Styles[0].CSS != "rgba(10,20,30,0.502)" {
		t.Errorf("Expected rgba(10,20,30,0.502), got %+v", doc.Styles)
	}
}

func TestConvertRejectsInvalidBuffer(t *testing.T) {
	t.Parallel()

	_, _, err := Convert(PixelBuffer{Width: 3, Height: 3, Pix: make([]byte, 35)}, DefaultConfig())
	if !errors.Is(err, ErrInvalidBuffer) {
		t.Fatalf("Expected ErrInvalidBuffer, got %v", err)
	}
	if !strings.Contains(err.Error(), "want 36 bytes") {
		t.Errorf("Error should name the expected length: %v", err)
	}

	_, _, err = Convert(PixelBuffer{Width: MaxDimension + 1, Height: 0}, DefaultConfig())
	if !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("Expected ErrInvalidBuffer for oversized buffer, got %v", err)
	}
}

func TestConvertPixelSize(t *testing.T) {
	t.Parallel()

	buf := bufferOf(2, 2, ColorKey{1, 1, 1, 255}, ColorKey{1, 1, 1, 255}, ColorKey{2, 2, 2, 255})
	tests := []struct {
		name     string
		cfg      Config
		wantSize int
		wantErr  bool
	}{
		{"in range", Config{PixelSize: 7}, 7, false},
		{"zero clamps up", Config{PixelSize: 0}, 1, false},
		{"negative clamps up", Config{PixelSize: -5}, 1, false},
		{"large clamps down", Config{PixelSize: 1000}, 256, false},
		{"strict in range", Config{PixelSize: 256, Strict: true}, 256, false},
		{"strict zero", Config{PixelSize: 0, Strict: true}, 0, true},
		{"strict too large", Config{PixelSize: 257, Strict: true}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, stats, err := Convert(buf, tt.cfg)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("Expected ErrInvalidConfig, got %v", err)
				}
				var ce *ConfigError
				if !errors.As(err, &ce) || ce.PixelSize != tt.cfg.PixelSize {
					t.Errorf("Expected ConfigError for %d, got %v", tt.cfg.PixelSize, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if stats.PixelSize != tt.wantSize {
				t.Errorf("stats.PixelSize = %d, want %d", stats.PixelSize, tt.wantSize)
			}
			if doc.CanvasWidth != 2*tt.wantSize {
				t.Errorf("canvas width %d, want %d", doc.CanvasWidth, 2*tt.wantSize)
			}
			for _, r := range doc.Rects {
				if r.Height != tt.wantSize {
					t.Errorf("rect height %d, want %d", r.Height, tt.wantSize)
				}
			}
		})
	}
}

func TestConvertDeterministic(t *testing.T) {
	t.Parallel()

	buf := PixelBufferFromNRGBA(imageutil.CreateNoiseImage(40, 30, 7, true).NRGBA)
	for _, include := range []bool{false, true} {
		cfg := Config{PixelSize: 3, IncludeTransparent: include}
		a, _, err := Convert(buf, cfg)
		if err != nil {
			t.Fatal(err)
		}
		b, _, err := Convert(buf, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("include=%v: documents differ between runs", include)
		}
	}
}

func TestConvertDoesNotModifyBuffer(t *testing.T) {
	t.Parallel()

	buf := PixelBufferFromNRGBA(imageutil.CreateSpriteImage(12, 12).NRGBA)
	before := append([]byte(nil), buf.Pix...)
	if _, _, err := Convert(buf, Config{PixelSize: 4, IncludeTransparent: true}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, buf.Pix) {
		t.Error("Convert modified its input")
	}
}

func TestConvertStats(t *testing.T) {
	t.Parallel()

	buf := PixelBufferFromNRGBA(imageutil.CreateColorBarsImage(32, 4).NRGBA)
	_, stats, err := Convert(buf, Config{PixelSize: 2})
	if err != nil {
		t.Fatal(err)
	}
	want := Stats{Width: 32, Height: 4, PixelSize: 2, PaletteSize: 8, PrimitiveCount: 32}
	got := stats
	got.Elapsed = 0
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
	if stats.Elapsed < 0 {
		t.Errorf("negative elapsed time %v", stats.Elapsed)
	}
	if stats.PixelCount() != 128 {
		t.Errorf("PixelCount() = %d", stats.PixelCount())
	}
}

func TestStatsString(t *testing.T) {
	t.Parallel()

	s := Stats{Width: 4, Height: 2, PixelSize: 8, PaletteSize: 3, PrimitiveCount: 5, Elapsed: 1500 * time.Microsecond}
	if got, want := s.String(), "4x2 px, scale 8, 3 colors, 5 rects, 1.50ms"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if s.ElapsedMillis() != 1.5 {
		t.Errorf("ElapsedMillis() = %v", s.ElapsedMillis())
	}
}

func TestConverterOptions(t *testing.T) {
	t.Parallel()

	c := NewConverter()
	if c.Config() != DefaultConfig() {
		t.Errorf("NewConverter() config = %+v, want defaults", c.Config())
	}

	c = NewConverter(WithPixelSize(12), WithTransparent(true), WithStrict(true))
	want := Config{PixelSize: 12, IncludeTransparent: true, Strict: true}
	if c.Config() != want {
		t.Errorf("config = %+v, want %+v", c.Config(), want)
	}

	c = NewConverter(WithPixelSize(12), WithConfig(Config{PixelSize: 3}))
	if c.Config() != (Config{PixelSize: 3}) {
		t.Errorf("WithConfig should replace earlier options, got %+v", c.Config())
	}

	_, _, err := NewConverter(WithPixelSize(0), WithStrict(true)).Convert(bufferOf(1, 1))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestConverterConvertImage(t *testing.T) {
	t.Parallel()

	c := NewConverter(WithPixelSize(2))

	src := imageutil.CreateSpriteImage(10, 10)
	want, _, err := c.Convert(PixelBufferFromNRGBA(src.NRGBA))
	if err != nil {
		t.Fatal(err)
	}

	// *image.NRGBA, an offset sub-image and a paletted image of the same pixels.
	offset := image.NewNRGBA(image.Rect(5, 5, 15, 15))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			offset.SetNRGBA(x+5, y+5, src.NRGBAAt(x, y))
		}
	}
	for name, img := range map[string]image.Image{
		"nrgba":  src.NRGBA,
		"offset": offset,
	} {
		got, _, err := c.ConvertImage(img)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: document differs from direct conversion", name)
		}
	}

	gray := image.NewGray(image.Rect(0, 0, 3, 1))
	gray.Pix = []byte{50, 50, 60}
	doc, _, err := c.ConvertImage(gray)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Rects) != 2 || doc.Styles[0].Color != (ColorKey{50, 50, 50, 255}) {
		t.Errorf("gray conversion = %+v", doc)
	}
}

func TestConverterConvertFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")
	img := imageutil.CreateCheckerboardImage(8, 8, 4,
		color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 64})
	if err := imageutil.SavePNG(img, path); err != nil {
		t.Fatal(err)
	}

	doc, stats, err := NewConverter().ConvertFile(path)
	if err != nil {
		t.Fatalf("ConvertFile failed: %v", err)
	}
	if stats.Width != 8 || stats.Height != 8 || stats.PaletteSize != 2 || stats.PrimitiveCount != 16 {
		t.Errorf("stats = %+v", stats)
	}
	if doc.Styles[1].CSS != "rgba(0,0,255,0.251)" {
		t.Errorf("second style = %q", doc.Styles[1].CSS)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("definitely not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := NewConverter().ConvertFile(garbage); !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode, got %v", err)
	}
	if _, _, err := NewConverter().ConvertFile(filepath.Join(dir, "missing.png")); !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode for missing file, got %v", err)
	}
}
