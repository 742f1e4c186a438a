package qoi

// Pixel is an RGBA pixel value. Every pixel handled inside the codec is
// 4-channel; 3-channel rasters carry an implicit, constant A=255 that is
// restored at the raster boundary (see pixelsFromRaster/pixelsToRaster).
type Pixel struct {
	R, G, B, A uint8
}

// opaqueBlack is the decoder/encoder's initial "previous pixel" value.
var opaqueBlack = Pixel{R: 0, G: 0, B: 0, A: 255}

// Hash returns the pixel's index into the 64-entry seen table.
func (p Pixel) Hash() uint8 {
	return (p.R*3 + p.G*5 + p.B*7 + p.A*11) % 64
}

// Equal reports componentwise equality.
func (p Pixel) Equal(o Pixel) bool {
	return p.R == o.R && p.G == o.G && p.B == o.B && p.A == o.A
}

// seenTable is the 64-slot hash-indexed cache of recently produced pixels.
// The zero value is correct: every slot starts at Pixel{0,0,0,0}.
type seenTable [64]Pixel

func (t *seenTable) get(idx uint8) Pixel {
	return t[idx]
}

func (t *seenTable) set(p Pixel) {
	t[p.Hash()] = p
}

// Colorspace is the one-byte header tag. It is carried through the codec
// but never inspected to alter pixel math (see spec's open-question note:
// colorspace is purely informational).
type Colorspace uint8

const (
	SRGB   Colorspace = 0
	Linear Colorspace = 1
)

func (c Colorspace) valid() bool {
	return c == SRGB || c == Linear
}

// pixelsFromRaster decodes a packed row-major raster of the given channel
// stride (3 or 4) into a Pixel slice. 3-channel input gets A=255 throughout.
func pixelsFromRaster(raster []byte, channels int) []Pixel {
	count := len(raster) / channels
	pixels := make([]Pixel, count)
	for i := 0; i < count; i++ {
		off := i * channels
		p := Pixel{R: raster[off], G: raster[off+1], B: raster[off+2], A: 255}
		if channels == 4 {
			p.A = raster[off+3]
		}
		pixels[i] = p
	}
	return pixels
}

// pixelsToRaster packs pixels back into a row-major raster of the given
// channel stride (3 drops A, 4 keeps it).
func pixelsToRaster(pixels []Pixel, channels int) []byte {
	raster := make([]byte, len(pixels)*channels)
	for i, p := range pixels {
		off := i * channels
		raster[off] = p.R
		raster[off+1] = p.G
		raster[off+2] = p.B
		if channels == 4 {
			raster[off+3] = p.A
		}
	}
	return raster
}
