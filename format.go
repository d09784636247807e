package paa

import "fmt"

// Format identifies the pixel encoding of every mipmap in a container.
type Format uint16

const (
	// FormatDXT1 is S3TC BC1 block compression.
	FormatDXT1 Format = 0xff01
	// FormatDXT2 is S3TC BC2 with premultiplied alpha.
	FormatDXT2 Format = 0xff02
	// FormatDXT3 is S3TC BC2 block compression.
	FormatDXT3 Format = 0xff03
	// FormatDXT4 is S3TC BC3 with premultiplied alpha.
	FormatDXT4 Format = 0xff04
	// FormatDXT5 is S3TC BC3 block compression.
	FormatDXT5 Format = 0xff05
	// FormatARGB4444 is 4 bits per channel, packed A,R,G,B.
	FormatARGB4444 Format = 0x4444
	// FormatARGB1555 is 5-bit RGB with a 1-bit alpha.
	FormatARGB1555 Format = 0x1555
	// FormatARGB8888 is 8 bits per channel, packed A,R,G,B.
	FormatARGB8888 Format = 0x8888
	// FormatGray is 8-bit intensity with 8-bit alpha (AI88).
	FormatGray Format = 0x8080
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatDXT1:
		return "DXT1"
	case FormatDXT2:
		return "DXT2"
	case FormatDXT3:
		return "DXT3"
	case FormatDXT4:
		return "DXT4"
	case FormatDXT5:
		return "DXT5"
	case FormatARGB4444:
		return "ARGB4444"
	case FormatARGB1555:
		return "ARGB1555"
	case FormatARGB8888:
		return "ARGB8888"
	case FormatGray:
		return "AI88"
	default:
		return fmt.Sprintf("Format(0x%04x)", uint16(f))
	}
}

// Valid reports whether f is a recognized container format code.
func (f Format) Valid() bool {
	switch f {
	case FormatDXT1, FormatDXT2, FormatDXT3, FormatDXT4, FormatDXT5,
		FormatARGB4444, FormatARGB1555, FormatARGB8888, FormatGray:
		return true
	default:
		return false
	}
}

// BlockCompressed reports whether f stores 4x4 texel blocks.
func (f Format) BlockCompressed() bool {
	switch f {
	case FormatDXT1, FormatDXT2, FormatDXT3, FormatDXT4, FormatDXT5:
		return true
	default:
		return false
	}
}

// pixelStride returns the encoded bytes per pixel for bit-packed formats,
// or 0 for block-compressed ones.
func (f Format) pixelStride() int {
	switch f {
	case FormatARGB8888:
		return 4
	case FormatARGB4444, FormatARGB1555, FormatGray:
		return 2
	default:
		return 0
	}
}

// expectedDataLength returns the raw (uncompressed) payload size for the
// format at the given dimensions, or -1 for unrecognized formats.
func expectedDataLength(format Format, width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	switch format {
	case FormatDXT1:
		return blocksW * blocksH * 8
	case FormatDXT2, FormatDXT3, FormatDXT4, FormatDXT5:
		return blocksW * blocksH * 16
	case FormatARGB8888:
		return width * height * 4
	case FormatARGB4444, FormatARGB1555, FormatGray:
		return width * height * 2
	default:
		return -1
	}
}

// mipDimension calculates the dimension of a mipmap level.
func mipDimension(base, level int) int {
	result := base >> level
	if result < 1 {
		return 1
	}

	return result
}
