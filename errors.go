package paa

import (
	"errors"
	"fmt"
)

// Base error kinds. Every error returned by this package wraps exactly one of
// these, so callers can classify failures with errors.Is without matching the
// fine-grained sentinels below.
var (
	// ErrContainerFormat indicates a structural violation in the container.
	ErrContainerFormat = errors.New("invalid PAA container")
	// ErrTaggFormat indicates a malformed payload for a recognized TAGG.
	ErrTaggFormat = errors.New("invalid TAGG payload")
	// ErrDecode indicates a pixel data decode failure for a single mipmap.
	ErrDecode = errors.New("mipmap decode failed")
	// ErrDecompression indicates an LZO or LZSS payload expansion failure.
	ErrDecompression = errors.New("mipmap decompression failed")
)

var (
	// ErrUnknownFormat indicates an unrecognized format code.
	ErrUnknownFormat = fmt.Errorf("%w: unknown format code", ErrContainerFormat)
	// ErrTruncated indicates the byte source ended before a terminator or sentinel.
	ErrTruncated = fmt.Errorf("%w: unexpected end of data", ErrContainerFormat)
	// ErrPalette indicates an indexed palette block, which is not supported.
	ErrPalette = fmt.Errorf("%w: indexed palettes are not supported", ErrContainerFormat)
	// ErrEndMarker indicates a nonzero end marker after the mipmap sentinel.
	ErrEndMarker = fmt.Errorf("%w: nonzero end marker", ErrContainerFormat)

	// ErrTaggLength indicates a recognized TAGG with the wrong payload length.
	ErrTaggLength = fmt.Errorf("%w: unexpected data length", ErrTaggFormat)
	// ErrAlphaFlagValue indicates an out-of-range alpha flag value.
	ErrAlphaFlagValue = fmt.Errorf("%w: unknown alpha flag", ErrTaggFormat)
	// ErrSwizzleCommand indicates an out-of-range swizzle command byte.
	ErrSwizzleCommand = fmt.Errorf("%w: unknown swizzle command", ErrTaggFormat)

	// ErrDataSize indicates encoded data does not match the declared dimensions.
	ErrDataSize = fmt.Errorf("%w: data size mismatch", ErrDecode)
	// ErrUnsupportedFormat indicates a format with no decoder (DXT2, DXT3, DXT4).
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported format", ErrDecode)
	// ErrBufferSize indicates an RGBA buffer inconsistent with the given dimensions.
	ErrBufferSize = fmt.Errorf("%w: buffer size mismatch", ErrDecode)

	// ErrLZO indicates LZO1X expansion of a mipmap payload failed.
	ErrLZO = fmt.Errorf("%w: LZO", ErrDecompression)
	// ErrLZSS indicates LZSS expansion of a mipmap payload failed.
	ErrLZSS = fmt.Errorf("%w: LZSS", ErrDecompression)
)

var (
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrOpenFile indicates PAA file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrMipmapIndex indicates a mipmap level outside the stored chain.
	ErrMipmapIndex = errors.New("no such mipmap level")
	// ErrEmptyMipmaps indicates missing mipmap data.
	ErrEmptyMipmaps = errors.New("empty mipmaps")
	// ErrInvalidFormat indicates a format that cannot be represented as DDS.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrMipmapSizeMismatch indicates mipmap payload size mismatch.
	ErrMipmapSizeMismatch = errors.New("mipmap size mismatch")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrWriteDDSMagic indicates DDS magic write failed.
	ErrWriteDDSMagic = errors.New("writing DDS magic failed")
	// ErrWriteDDSHeader indicates DDS header write failed.
	ErrWriteDDSHeader = errors.New("writing DDS header failed")
	// ErrWriteMipData indicates mipmap payload write failed.
	ErrWriteMipData = errors.New("writing mipmap data failed")
)
