// Package qoiimage adapts the qoi codec to Go's standard image.Image
// ecosystem, so it can be registered with image.RegisterFormat and used
// anywhere a stdlib-style image codec is expected.
package qoiimage

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/chromacodec/qoi"
)

// Image is an image.Image backed directly by a qoi-decoded raster, avoiding
// a second copy into image.NRGBA. Channels is the raster's stride (3 or 4);
// Decode below always produces 4-channel images.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels uint8
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) color.Color {
	off := (y*img.Width + x) * int(img.Channels)
	c := color.NRGBA{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: 255}
	if img.Channels == 4 {
		c.A = img.Pix[off+3]
	}
	return c
}

// Opaque reports whether every pixel's alpha channel is fully opaque,
// matching the optional Opaque() hook the stdlib image/draw fast paths look
// for.
func (img *Image) Opaque() bool {
	if img.Channels == 3 {
		return true
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff {
			return false
		}
	}
	return true
}

// Decode reads a complete qoi stream from r and returns an image.Image with
// 4-channel (RGBA) pixels, matching the decoding convention image.Decode
// expects of registered formats.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	h, raster, err := qoi.Decode(data, 4)
	if err != nil {
		return nil, err
	}
	return &Image{Pix: raster, Width: int(h.Width), Height: int(h.Height), Channels: 4}, nil
}

// DecodeConfig reads only the qoi header and reports the image's dimensions
// and color model, without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, 14)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, err
	}
	h, err := qoi.DecodeHeader(buf)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}

// Encode writes m to w as a complete qoi stream. m is first normalized into
// a zero-based, tightly packed image.NRGBA via image/draw, the same
// conversion shim kriticalflare/qoi and LukiDS/image both use for arbitrary
// image.Image sources — this also takes care of any sub-image whose Stride
// doesn't match width*4.
func Encode(w io.Writer, m image.Image) error {
	nrgba := toNRGBA(m)
	width := nrgba.Bounds().Dx()
	height := nrgba.Bounds().Dy()

	out, err := qoi.Encode(nrgba.Pix, uint32(width), uint32(height), 4, qoi.SRGB)
	if err != nil {
		return fmt.Errorf("qoiimage: %w", err)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(out); err != nil {
		return err
	}
	return bw.Flush()
}

// toNRGBA copies src into a freshly allocated, zero-based NRGBA image so the
// caller can index its Pix slice with plain row*stride arithmetic.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

func init() {
	image.RegisterFormat("qoi", "qoif", Decode, DecodeConfig)
}
