package paa

import (
	"fmt"

	"github.com/woozymasta/lzo"

	"github.com/woozymasta/paa/lzss"
)

// Mipmap is one resolution level of the texture. Level 0 is full resolution;
// each following level halves both dimensions. The encoded payload is kept
// as stored and only expanded when decoding.
type Mipmap struct {
	data      []byte
	Width     int
	Height    int
	lzoPacked bool
}

// Compressed reports whether the payload carries the LZO marker bit.
func (m *Mipmap) Compressed() bool { return m.lzoPacked }

// Data returns a copy of the stored payload, compressed or not.
func (m *Mipmap) Data() []byte {
	out := make([]byte, len(m.data))
	copy(out, m.data)

	return out
}

// expand returns the raw encoded pixel data for the mipmap, inflating LZO
// payloads (marked via the width high bit) and LZSS payloads (bit-packed
// formats whose stored size differs from the raw size).
func (m *Mipmap) expand(format Format) ([]byte, error) {
	expected := expectedDataLength(format, m.Width, m.Height)
	if expected < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if m.lzoPacked {
		out, err := lzo.Decompress(m.data, lzo.DefaultDecompressOptions(expected))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLZO, err)
		}
		return out, nil
	}

	if !format.BlockCompressed() && len(m.data) != expected {
		out, err := lzss.Decompress(m.data, expected)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLZSS, err)
		}
		return out, nil
	}

	return m.data, nil
}

// Decode expands the payload if needed and decodes it according to the given
// format into a flat RGBA buffer (Width*Height*4 bytes, top row first).
// Failures are scoped to this mipmap; other levels stay decodable.
func (m *Mipmap) Decode(format Format) ([]byte, error) {
	raw, err := m.expand(format)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatDXT1:
		return DecodeDXT1(raw, m.Width, m.Height)
	case FormatDXT5:
		return DecodeDXT5(raw, m.Width, m.Height)
	case FormatARGB8888:
		return DecodeARGB8888(raw, m.Width, m.Height)
	case FormatARGB4444:
		return DecodeARGB4444(raw, m.Width, m.Height)
	case FormatARGB1555:
		return DecodeARGB1555(raw, m.Width, m.Height)
	case FormatGray:
		return DecodeAI88(raw, m.Width, m.Height)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
