package paa

import (
	"encoding/binary"
	"fmt"
)

// checkPixelData validates that the encoded span covers exactly width*height
// words of the given stride.
func checkPixelData(name string, data []byte, width, height, stride int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDataSize, width, height)
	}
	if len(data) != width*height*stride {
		return fmt.Errorf("%w: %s %dx%d needs %d bytes, got %d",
			ErrDataSize, name, width, height, width*height*stride, len(data))
	}

	return nil
}

// DecodeARGB8888 decodes 32-bit packed A,R,G,B words into a flat RGBA buffer.
func DecodeARGB8888(data []byte, width, height int) ([]byte, error) {
	if err := checkPixelData("ARGB8888", data, width, height, 4); err != nil {
		return nil, err
	}

	out := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		word := binary.LittleEndian.Uint32(data[i*4:])
		out[i*4] = uint8(word >> 16)
		out[i*4+1] = uint8(word >> 8)
		out[i*4+2] = uint8(word)
		out[i*4+3] = uint8(word >> 24)
	}

	return out, nil
}

// DecodeARGB4444 decodes 16-bit packed A,R,G,B words (4 bits per channel)
// into a flat RGBA buffer. Nibbles expand as v<<4|v, so 0xF maps to 255.
func DecodeARGB4444(data []byte, width, height int) ([]byte, error) {
	if err := checkPixelData("ARGB4444", data, width, height, 2); err != nil {
		return nil, err
	}

	out := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		word := binary.LittleEndian.Uint16(data[i*2:])
		r := uint8(word >> 8 & 0xf)
		g := uint8(word >> 4 & 0xf)
		b := uint8(word & 0xf)
		a := uint8(word >> 12)
		out[i*4] = r<<4 | r
		out[i*4+1] = g<<4 | g
		out[i*4+2] = b<<4 | b
		out[i*4+3] = a<<4 | a
	}

	return out, nil
}

// DecodeARGB1555 decodes 16-bit words with a 1-bit alpha and 5-bit color
// channels into a flat RGBA buffer. Color bits replicate into the low bits;
// the alpha bit maps to 0 or 255.
func DecodeARGB1555(data []byte, width, height int) ([]byte, error) {
	if err := checkPixelData("ARGB1555", data, width, height, 2); err != nil {
		return nil, err
	}

	out := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		word := binary.LittleEndian.Uint16(data[i*2:])
		r := uint8(word >> 10 & 0x1f)
		g := uint8(word >> 5 & 0x1f)
		b := uint8(word & 0x1f)
		out[i*4] = r<<3 | r>>2
		out[i*4+1] = g<<3 | g>>2
		out[i*4+2] = b<<3 | b>>2
		if word&0x8000 != 0 {
			out[i*4+3] = 255
		}
	}

	return out, nil
}

// DecodeAI88 decodes 16-bit words holding 8-bit alpha and 8-bit intensity
// into a flat RGBA buffer, replicating intensity across R, G and B.
func DecodeAI88(data []byte, width, height int) ([]byte, error) {
	if err := checkPixelData("AI88", data, width, height, 2); err != nil {
		return nil, err
	}

	out := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		intensity := data[i*2]
		alpha := data[i*2+1]
		out[i*4] = intensity
		out[i*4+1] = intensity
		out[i*4+2] = intensity
		out[i*4+3] = alpha
	}

	return out, nil
}
