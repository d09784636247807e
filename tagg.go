package paa

import (
	"encoding/binary"
	"fmt"
)

// taggMarker prefixes every TAGG record. Signatures and the marker are stored
// byte-reversed on disk, so "AVGCTAGG" appears as "GGATCGVA".
const taggMarker = "GGAT"

// On-disk TAGG signatures (the 4 bytes following the marker).
const (
	// SignatureAverageColor identifies the average color TAGG ("AVGC").
	SignatureAverageColor = "CGVA"
	// SignatureMaxColor identifies the maximum color TAGG ("MAXC").
	SignatureMaxColor = "CXAM"
	// SignatureFlag identifies the alpha flag TAGG ("FLAG").
	SignatureFlag = "GALF"
	// SignatureSwizzle identifies the channel swizzle TAGG ("SWIZ").
	SignatureSwizzle = "ZIWS"
	// SignatureOffset identifies the mipmap offset table TAGG ("OFFS").
	SignatureOffset = "SFFO"
)

// Tagg is one metadata record from the container's extensible section.
type Tagg interface {
	// Signature returns the 4-byte on-disk signature.
	Signature() string
}

// UnknownTagg preserves a record with an unrecognized signature verbatim.
type UnknownTagg struct {
	Sig  string
	Data []byte
}

// Signature returns the 4-byte on-disk signature.
func (t *UnknownTagg) Signature() string { return t.Sig }

// AverageColorTagg stores the average color of the texture.
type AverageColorTagg struct {
	R, G, B, A uint8
}

// Signature returns the 4-byte on-disk signature.
func (t *AverageColorTagg) Signature() string { return SignatureAverageColor }

// MaxColorTagg stores the maximum color of the texture.
//
// In practice most files store (255, 255, 255, 255) regardless of content.
type MaxColorTagg struct {
	R, G, B, A uint8
}

// Signature returns the 4-byte on-disk signature.
func (t *MaxColorTagg) Signature() string { return SignatureMaxColor }

// AlphaFlag describes how the texture's alpha channel is to be interpreted.
type AlphaFlag uint32

const (
	// AlphaNone means no alpha handling.
	AlphaNone AlphaFlag = 0
	// AlphaInterpolated means smooth alpha.
	AlphaInterpolated AlphaFlag = 1
	// AlphaBinary means on/off alpha.
	AlphaBinary AlphaFlag = 2
)

// String returns the conventional name of the flag.
func (f AlphaFlag) String() string {
	switch f {
	case AlphaNone:
		return "none"
	case AlphaInterpolated:
		return "interpolated"
	case AlphaBinary:
		return "binary"
	default:
		return fmt.Sprintf("AlphaFlag(%d)", uint32(f))
	}
}

// FlagTagg stores the alpha interpretation flag. Textures without it are not
// treated as transparent by consumers.
type FlagTagg struct {
	Value AlphaFlag
}

// Signature returns the 4-byte on-disk signature.
func (t *FlagTagg) Signature() string { return SignatureFlag }

// SwizzleTagg stores the channel remap applied during encoding, so viewers
// can undo it for presentation.
type SwizzleTagg struct {
	Swizzle
}

// Signature returns the 4-byte on-disk signature.
func (t *SwizzleTagg) Signature() string { return SignatureSwizzle }

// OffsetTagg stores byte offsets of the mipmap records from the start of the
// file, enabling seek-based access without parsing preceding levels. Unused
// slots hold zero.
type OffsetTagg struct {
	Offsets []uint32
}

// Signature returns the 4-byte on-disk signature.
func (t *OffsetTagg) Signature() string { return SignatureOffset }

// parseTagg builds the typed variant for a signature and payload. Unrecognized
// signatures yield an UnknownTagg; recognized signatures with a malformed
// payload fail with ErrTaggFormat.
func parseTagg(sig string, payload []byte) (Tagg, error) {
	switch sig {
	case SignatureAverageColor:
		r, g, b, a, err := parseColorPayload(sig, payload)
		if err != nil {
			return nil, err
		}
		return &AverageColorTagg{R: r, G: g, B: b, A: a}, nil

	case SignatureMaxColor:
		r, g, b, a, err := parseColorPayload(sig, payload)
		if err != nil {
			return nil, err
		}
		return &MaxColorTagg{R: r, G: g, B: b, A: a}, nil

	case SignatureFlag:
		if len(payload) != 4 {
			return nil, fmt.Errorf("%w: %s: expected 4 bytes, got %d", ErrTaggLength, sig, len(payload))
		}
		value := AlphaFlag(binary.LittleEndian.Uint32(payload))
		if value > AlphaBinary {
			return nil, fmt.Errorf("%w: %d", ErrAlphaFlagValue, value)
		}
		return &FlagTagg{Value: value}, nil

	case SignatureSwizzle:
		if len(payload) != 4 {
			return nil, fmt.Errorf("%w: %s: expected 4 bytes, got %d", ErrTaggLength, sig, len(payload))
		}
		sw, err := parseSwizzleCommands(payload)
		if err != nil {
			return nil, err
		}
		return &SwizzleTagg{Swizzle: sw}, nil

	case SignatureOffset:
		if len(payload)%4 != 0 {
			return nil, fmt.Errorf("%w: %s: %d bytes is not a whole number of offsets", ErrTaggLength, sig, len(payload))
		}
		offsets := make([]uint32, len(payload)/4)
		for i := range offsets {
			offsets[i] = binary.LittleEndian.Uint32(payload[i*4:])
		}
		return &OffsetTagg{Offsets: offsets}, nil

	default:
		return &UnknownTagg{Sig: sig, Data: payload}, nil
	}
}

// parseColorPayload reads a packed B,G,R,A color sample.
func parseColorPayload(sig string, payload []byte) (r, g, b, a uint8, err error) {
	if len(payload) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("%w: %s: expected 4 bytes, got %d", ErrTaggLength, sig, len(payload))
	}

	return payload[2], payload[1], payload[0], payload[3], nil
}

// Swizzle command bytes as stored on disk. Values 0-3 copy the current
// channel to the named one, 4-7 invert while copying, 8 and 9 blank the
// current channel with white or black.
const (
	swizzleToAlpha   = 0
	swizzleToRed     = 1
	swizzleToGreen   = 2
	swizzleToBlue    = 3
	swizzleInvertBit = 4
	swizzleWhite     = 8
	swizzleBlack     = 9
)

// parseSwizzleCommands converts the packed command bytes (stored in A,R,G,B
// order, each naming a copy target) into per-output-channel selectors.
func parseSwizzleCommands(cmds []byte) (Swizzle, error) {
	sw := IdentitySwizzle()
	// both the payload order and the command target values run A,R,G,B
	channels := [4]Channel{ChannelAlpha, ChannelRed, ChannelGreen, ChannelBlue}

	for i, cmd := range cmds {
		src := channels[i]
		switch {
		case cmd <= swizzleToBlue:
			*sw.selector(channels[cmd]) = Selector{Source: src}
		case cmd < swizzleWhite:
			*sw.selector(channels[cmd&^swizzleInvertBit]) = Selector{Source: src, Invert: true}
		case cmd == swizzleWhite:
			*sw.selector(src) = Selector{Source: ChannelOne}
		case cmd == swizzleBlack:
			*sw.selector(src) = Selector{Source: ChannelZero}
		default:
			return Swizzle{}, fmt.Errorf("%w: %d", ErrSwizzleCommand, cmd)
		}
	}

	return sw, nil
}

// selector returns the selector slot for an output channel.
func (s *Swizzle) selector(ch Channel) *Selector {
	switch ch {
	case ChannelRed:
		return &s.Red
	case ChannelGreen:
		return &s.Green
	case ChannelBlue:
		return &s.Blue
	default:
		return &s.Alpha
	}
}
