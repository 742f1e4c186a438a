package qoi

import (
	"github.com/chromacodec/qoi/qoierr"
)

const (
	tagRGB  byte = 0xFE
	tagRGBA byte = 0xFF

	tagIndex byte = 0b00_000000
	tagDiff  byte = 0b01_000000
	tagLuma  byte = 0b10_000000
	tagRun   byte = 0b11_000000

	maxRun = 62
)

// Encode walks raster (row-major, width*height*channels bytes) once and
// returns the complete qoi byte stream: header, chunks, terminator.
//
// Encode is a pure function of its inputs; it keeps no state between calls.
func Encode(raster []byte, width, height uint32, channels uint8, colorspace Colorspace) ([]byte, error) {
	h := Header{Width: width, Height: height, Channels: channels, Colorspace: colorspace}
	if err := h.validate(); err != nil {
		return nil, err
	}

	wantLen := int(width) * int(height) * int(channels)
	if len(raster) != wantLen {
		return nil, qoierr.New(qoierr.ShortInput, "want %d bytes (%dx%dx%d), got %d", wantLen, width, height, channels, len(raster))
	}

	out := make([]byte, 0, headerSize+int(width)*int(height)*(int(channels)+1)+len(terminator))
	out, err := encodeHeader(out, h)
	if err != nil {
		return nil, err
	}

	pixels := pixelsFromRaster(raster, int(channels))

	var tbl seenTable
	prev := opaqueBlack
	run := 0

	flushRun := func() {
		if run > 0 {
			out = append(out, tagRun|byte(run-1))
			run = 0
		}
	}

	for _, cur := range pixels {
		if cur.Equal(prev) {
			run++
			if run == maxRun {
				flushRun()
			}
			continue
		}
		flushRun()

		idx := cur.Hash()
		if tbl.get(idx).Equal(cur) {
			out = append(out, tagIndex|idx)
			prev = cur
			continue
		}
		tbl.set(cur)

		if cur.A == prev.A {
			dr := int8(cur.R - prev.R)
			dg := int8(cur.G - prev.G)
			db := int8(cur.B - prev.B)

			switch {
			case inRange(dr, -2, 1) && inRange(dg, -2, 1) && inRange(db, -2, 1):
				out = append(out, tagDiff|byte(dr+2)<<4|byte(dg+2)<<2|byte(db+2))
			default:
				drDg := int8(dr - dg)
				dbDg := int8(db - dg)
				if inRange(dg, -32, 31) && inRange(drDg, -8, 7) && inRange(dbDg, -8, 7) {
					out = append(out, tagLuma|byte(dg+32))
					out = append(out, byte(drDg+8)<<4|byte(dbDg+8))
				} else {
					out = append(out, tagRGB, cur.R, cur.G, cur.B)
				}
			}
		} else {
			out = append(out, tagRGBA, cur.R, cur.G, cur.B, cur.A)
		}

		prev = cur
	}
	flushRun()

	out = append(out, terminator[:]...)
	return out, nil
}

func inRange(v int8, lo, hi int8) bool {
	return v >= lo && v <= hi
}
