package qoi

import (
	"github.com/chromacodec/qoi/qoierr"
)

// Decode reads a complete qoi byte stream (header, chunks, terminator) and
// returns the recovered header plus a packed raster at targetChannels (3 or
// 4, independent of the header's own channel field, which is only carried
// through as information).
//
// Decode is a pure function of its inputs; on error nothing is returned.
func Decode(data []byte, targetChannels uint8) (Header, []byte, error) {
	if !validChannels(targetChannels) {
		return Header{}, nil, qoierr.New(qoierr.BadChannels, "target channels must be 3 or 4, got %d", targetChannels)
	}

	h, err := decodeHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	want := int(h.Width) * int(h.Height)
	pixels := make([]Pixel, 0, want)

	var tbl seenTable
	prev := opaqueBlack

	pos := headerSize
	for len(pixels) < want {
		if pos >= len(data) {
			return Header{}, nil, qoierr.New(qoierr.UnexpectedEOF, "stream ended after %d of %d pixels", len(pixels), want)
		}
		tag := data[pos]

		switch {
		case tag == tagRGB:
			if pos+4 > len(data) {
				return Header{}, nil, qoierr.New(qoierr.UnexpectedEOF, "truncated rgb chunk at byte %d", pos)
			}
			cur := Pixel{R: data[pos+1], G: data[pos+2], B: data[pos+3], A: prev.A}
			tbl.set(cur)
			pixels = append(pixels, cur)
			prev = cur
			pos += 4

		case tag == tagRGBA:
			if pos+5 > len(data) {
				return Header{}, nil, qoierr.New(qoierr.UnexpectedEOF, "truncated rgba chunk at byte %d", pos)
			}
			cur := Pixel{R: data[pos+1], G: data[pos+2], B: data[pos+3], A: data[pos+4]}
			tbl.set(cur)
			pixels = append(pixels, cur)
			prev = cur
			pos += 5

		default:
			op := tag >> 6
			arg := tag & 0x3F

			switch op {
			case 0: // INDEX
				cur := tbl.get(arg)
				pixels = append(pixels, cur)
				prev = cur
				pos++

			case 1: // DIFF
				dr := int8(arg>>4&3) - 2
				dg := int8(arg>>2&3) - 2
				db := int8(arg&3) - 2
				cur := Pixel{
					R: prev.R + uint8(dr),
					G: prev.G + uint8(dg),
					B: prev.B + uint8(db),
					A: prev.A,
				}
				tbl.set(cur)
				pixels = append(pixels, cur)
				prev = cur
				pos++

			case 2: // LUMA
				if pos+2 > len(data) {
					return Header{}, nil, qoierr.New(qoierr.UnexpectedEOF, "truncated luma chunk at byte %d", pos)
				}
				b1 := data[pos+1]
				dg := int8(arg) - 32
				drDg := int8(b1>>4) - 8
				dbDg := int8(b1&0x0F) - 8
				dr := drDg + dg
				db := dbDg + dg
				cur := Pixel{
					R: prev.R + uint8(dr),
					G: prev.G + uint8(dg),
					B: prev.B + uint8(db),
					A: prev.A,
				}
				tbl.set(cur)
				pixels = append(pixels, cur)
				prev = cur
				pos += 2

			case 3: // RUN
				n := int(arg) + 1
				if len(pixels)+n > want {
					return Header{}, nil, qoierr.New(qoierr.UnexpectedEOF, "run of %d overruns %d remaining pixels", n, want-len(pixels))
				}
				for i := 0; i < n; i++ {
					pixels = append(pixels, prev)
				}
				pos++
			}
		}
	}

	if pos+len(terminator) > len(data) {
		return Header{}, nil, qoierr.New(qoierr.BadTerminator, "missing terminator at byte %d", pos)
	}
	for i, b := range terminator {
		if data[pos+i] != b {
			return Header{}, nil, qoierr.New(qoierr.BadTerminator, "terminator mismatch at byte %d", pos+i)
		}
	}
	pos += len(terminator)
	if pos != len(data) {
		return Header{}, nil, qoierr.New(qoierr.TrailingGarbage, "%d bytes after terminator", len(data)-pos)
	}

	return h, pixelsToRaster(pixels, int(targetChannels)), nil
}
