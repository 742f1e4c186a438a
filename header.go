package qoi

import (
	"encoding/binary"

	"github.com/chromacodec/qoi/qoierr"
)

// magicBytes is the fixed 4-byte ASCII signature every qoi stream starts with.
const magicBytes = "qoif"

// headerSize is the fixed size, in bytes, of the qoi header.
const headerSize = 14

// maxPixels bounds width*height to keep buffer sizing safe, matching the
// reference implementation's 400 million pixel cap.
const maxPixels = 400_000_000

// terminator is the mandatory 8-byte end-of-stream marker.
var terminator = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

// Header describes the fixed fields every qoi stream carries.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace Colorspace
}

func validChannels(c uint8) bool {
	return c == 3 || c == 4
}

func (h Header) validate() error {
	if h.Width == 0 || h.Height == 0 {
		return qoierr.New(qoierr.BadDimensions, "width and height must be nonzero, got %dx%d", h.Width, h.Height)
	}
	if uint64(h.Width)*uint64(h.Height) > maxPixels {
		return qoierr.New(qoierr.BadDimensions, "%dx%d exceeds the %d pixel cap", h.Width, h.Height, maxPixels)
	}
	if !validChannels(h.Channels) {
		return qoierr.New(qoierr.BadChannels, "channels must be 3 or 4, got %d", h.Channels)
	}
	if !h.Colorspace.valid() {
		return qoierr.New(qoierr.BadColorspace, "colorspace must be 0 or 1, got %d", h.Colorspace)
	}
	return nil
}

// encodeHeader appends the 14-byte header for h to buf and returns the result.
func encodeHeader(buf []byte, h Header) ([]byte, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}
	buf = append(buf, magicBytes...)
	buf = binary.BigEndian.AppendUint32(buf, h.Width)
	buf = binary.BigEndian.AppendUint32(buf, h.Height)
	buf = append(buf, h.Channels, uint8(h.Colorspace))
	return buf, nil
}

// decodeHeader reads the 14-byte header from the front of data.
func decodeHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, qoierr.New(qoierr.UnexpectedEOF, "need %d header bytes, got %d", headerSize, len(data))
	}
	if string(data[0:4]) != magicBytes {
		return Header{}, qoierr.New(qoierr.BadMagic, "got %q", data[0:4])
	}
	h := Header{
		Width:      binary.BigEndian.Uint32(data[4:8]),
		Height:     binary.BigEndian.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: Colorspace(data[13]),
	}
	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// DecodeHeader reads and validates just the 14-byte header from the front
// of data, without requiring the chunk stream or terminator that would
// follow it in a complete qoi file. Used by callers (like qoiimage's
// DecodeConfig) that want an image's dimensions without decoding its pixels.
func DecodeHeader(data []byte) (Header, error) {
	return decodeHeader(data)
}
