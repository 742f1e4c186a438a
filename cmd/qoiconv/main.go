// Command qoiconv is a thin wrapper around the qoi codec: it reads a raster
// in one supported format and writes it in another. It is not part of the
// codec's public API — the codec core is a pure in-memory transform; this
// command only adds file I/O and file-extension format dispatch around it.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/chromacodec/qoi/qoiimage"
)

func main() {
	in := flag.String("in", "", "input image path (.png, .bmp or .qoi)")
	out := flag.String("out", "", "output image path (.png, .bmp or .qoi)")
	flag.Parse()

	if *in == "" || *out == "" {
		log.Fatalf("usage: qoiconv -in <path> -out <path>")
	}

	if err := convert(*in, *out); err != nil {
		log.Fatalf("qoiconv: %v", err)
	}
}

func convert(inPath, outPath string) error {
	src, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	img, err := decodeAny(inPath, src)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	dst, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer dst.Close()

	if err := encodeAny(outPath, dst, img); err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	return nil
}

func decodeAny(path string, r *os.File) (image.Image, error) {
	switch ext(path) {
	case ".qoi":
		return qoiimage.Decode(r)
	case ".png":
		return png.Decode(r)
	case ".bmp":
		return bmp.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported input extension %q", ext(path))
	}
}

func encodeAny(path string, w *os.File, img image.Image) error {
	switch ext(path) {
	case ".qoi":
		return qoiimage.Encode(w, img)
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output extension %q", ext(path))
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
