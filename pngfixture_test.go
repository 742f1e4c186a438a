package qoi_test

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"testing"

	testdataloader "github.com/peteole/testdata-loader"

	"github.com/chromacodec/qoi"
)

// TestEncodeDecodeAgainstPNGFixtures loads PNG fixtures with the standard
// library, feeds their raw pixels through the core codec directly (bypassing
// the image.Image adapter package entirely), and checks the round trip
// reproduces the original pixels exactly.
func TestEncodeDecodeAgainstPNGFixtures(t *testing.T) {
	for _, name := range []string{"single_black.png", "two_pixel.png", "sample_small.png"} {
		content := testdataloader.GetTestFile("testdata/" + name)
		img, err := png.Decode(bytes.NewReader(content))
		if err != nil {
			t.Fatalf("%s: png.Decode: %v", name, err)
		}

		nrgba := toNRGBA(img)
		w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()

		encoded, err := qoi.Encode(nrgba.Pix, uint32(w), uint32(h), 4, qoi.SRGB)
		if err != nil {
			t.Fatalf("%s: Encode: %v", name, err)
		}
		_, decoded, err := qoi.Decode(encoded, 4)
		if err != nil {
			t.Fatalf("%s: Decode: %v", name, err)
		}
		if !bytes.Equal(nrgba.Pix, decoded) {
			t.Fatalf("%s: round-trip mismatch", name)
		}
	}
}

func toNRGBA(src image.Image) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
