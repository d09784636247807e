package paa

import "fmt"

// Channel names the source feeding an output channel during a swizzle.
type Channel uint8

const (
	// ChannelRed selects the red channel of the source pixel.
	ChannelRed Channel = iota
	// ChannelGreen selects the green channel of the source pixel.
	ChannelGreen
	// ChannelBlue selects the blue channel of the source pixel.
	ChannelBlue
	// ChannelAlpha selects the alpha channel of the source pixel.
	ChannelAlpha
	// ChannelZero selects the constant 0.
	ChannelZero
	// ChannelOne selects the constant 255.
	ChannelOne
)

// Selector resolves one output channel: the source it reads and whether the
// value is inverted (255 - value).
type Selector struct {
	Source Channel
	Invert bool
}

// Swizzle holds one selector per output channel.
type Swizzle struct {
	Red   Selector
	Green Selector
	Blue  Selector
	Alpha Selector
}

// IdentitySwizzle returns the selector set that maps every channel to itself.
func IdentitySwizzle() Swizzle {
	return Swizzle{
		Red:   Selector{Source: ChannelRed},
		Green: Selector{Source: ChannelGreen},
		Blue:  Selector{Source: ChannelBlue},
		Alpha: Selector{Source: ChannelAlpha},
	}
}

// IsIdentity reports whether applying s would leave any buffer unchanged.
func (s Swizzle) IsIdentity() bool {
	return s == IdentitySwizzle()
}

func (sel Selector) resolve(r, g, b, a uint8) uint8 {
	var v uint8
	switch sel.Source {
	case ChannelRed:
		v = r
	case ChannelGreen:
		v = g
	case ChannelBlue:
		v = b
	case ChannelAlpha:
		v = a
	case ChannelZero:
		v = 0
	case ChannelOne:
		v = 255
	}

	if sel.Invert {
		return 255 - v
	}

	return v
}

// SwizzleChannels remaps the channels of an RGBA buffer according to the
// selector set and returns the result as a new buffer of the same length.
func SwizzleChannels(rgba []byte, sw Swizzle) ([]byte, error) {
	if len(rgba)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of RGBA pixels", ErrBufferSize, len(rgba))
	}

	out := make([]byte, len(rgba))
	for i := 0; i < len(rgba); i += 4 {
		r, g, b, a := rgba[i], rgba[i+1], rgba[i+2], rgba[i+3]
		out[i] = sw.Red.resolve(r, g, b, a)
		out[i+1] = sw.Green.resolve(r, g, b, a)
		out[i+2] = sw.Blue.resolve(r, g, b, a)
		out[i+3] = sw.Alpha.resolve(r, g, b, a)
	}

	return out, nil
}

// ReverseRowOrder returns a new buffer with the scanline order flipped.
// Some producers store scanlines bottom-up; this converts between the two.
func ReverseRowOrder(rgba []byte, width, height int) ([]byte, error) {
	if width < 0 || height < 0 || len(rgba) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(rgba), width, height)
	}

	stride := width * 4
	out := make([]byte, len(rgba))
	for row := 0; row < height; row++ {
		src := rgba[row*stride : (row+1)*stride]
		copy(out[(height-row-1)*stride:], src)
	}

	return out, nil
}
