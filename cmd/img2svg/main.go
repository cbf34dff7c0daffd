package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wbrown/img2svg"
	"github.com/wbrown/img2svg/cache"
	"github.com/wbrown/img2svg/imageutil"
)

type result struct {
	doc   img2svg.Document
	stats img2svg.Stats
}

func main() {
	outputPath := flag.String("output", "",
		"Path to save the SVG (a directory, required when several inputs are "+
			"given; if not specified, prints to stdout)")
	pixelSize := flag.Int("pixelsize", 1,
		"Edge length of one source pixel in the output (1-256)")
	transparent := flag.Bool("transparent", false,
		"Emit fully transparent pixels instead of leaving them unpainted")
	strict := flag.Bool("strict", false,
		"Fail on an out-of-range pixel size instead of clamping it")
	previewPath := flag.String("preview", "",
		"Path to save a PNG preview with a stats caption "+
			"(a directory when several inputs are given)")
	printStats := flag.Bool("stats", false,
		"Print conversion statistics to stderr")
	verbose := flag.Bool("v", false,
		"Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] image...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one input image")
		flag.Usage()
		os.Exit(2)
	}
	if err := checkOutput(inputs, *outputPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	img2svg.SetLogger(logger)

	conv := img2svg.NewConverter(
		img2svg.WithPixelSize(*pixelSize),
		img2svg.WithTransparent(*transparent),
		img2svg.WithStrict(*strict),
	)
	results := cache.New[uint64, result](len(inputs))
	multi := len(inputs) > 1

	failed := 0
	for _, input := range inputs {
		res, err := convertFile(conv, results, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", input, err)
			failed++
			continue
		}

		if err := writeSVG(res.doc, targetPath(*outputPath, input, ".svg", multi)); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing SVG for %s: %v\n", input, err)
			failed++
			continue
		}
		if *previewPath != "" {
			path := targetPath(*previewPath, input, ".png", multi)
			if err := savePreview(path, res.doc, res.stats); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing preview for %s: %v\n", input, err)
				failed++
				continue
			}
			logger.Debug("preview written", "input", input, "path", path)
		}
		if *printStats {
			fmt.Fprintf(os.Stderr, "%s: %s\n", input, res.stats)
		}
	}

	cs := results.Stats()
	logger.Debug("conversion cache", "hits", cs.Hits, "misses", cs.Misses)
	if failed > 0 {
		os.Exit(1)
	}
}

// convertFile decodes input and converts it, reusing an earlier result
// when the pixels and configuration are identical.
func convertFile(conv *img2svg.Converter, results *cache.Cache[uint64, result], input string) (result, error) {
	img, err := imageutil.LoadImage(input)
	if err != nil {
		return result{}, fmt.Errorf("%w: %w", img2svg.ErrDecode, err)
	}
	buf := img2svg.PixelBufferFromNRGBA(img.NRGBA)
	key := cache.Fingerprint(buf, conv.Config())
	return results.GetOrCreate(key, func() (result, error) {
		doc, stats, err := conv.Convert(buf)
		if err != nil {
			return result{}, err
		}
		return result{doc: doc, stats: stats}, nil
	})
}

// targetPath resolves where output for input goes. With several inputs
// the flag names a directory and the file takes the input's base name.
func targetPath(flagValue, input, ext string, multi bool) string {
	if flagValue == "" || !multi {
		return flagValue
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(flagValue, base+ext)
}

// checkOutput rejects several inputs without -output, which would
// concatenate complete SVG documents on stdout.
func checkOutput(inputs []string, output string) error {
	if len(inputs) > 1 && output == "" {
		return errors.New("-output directory is required with several inputs")
	}
	return nil
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		return os.MkdirAll(dir, 0o755)
	}
	return nil
}

func savePreview(path string, doc img2svg.Document, stats img2svg.Stats) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return img2svg.SavePreview(path, doc, stats)
}

func writeSVG(doc img2svg.Document, path string) error {
	if path == "" {
		return doc.WriteSVG(os.Stdout)
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.WriteSVG(f); err != nil {
		return errors.Join(err, f.Close())
	}
	return f.Close()
}
