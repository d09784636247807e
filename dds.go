package paa

import (
	"fmt"
	"os"

	"github.com/woozymasta/bcn"
)

// ddsFormat maps a container format to its DDS representation. DXT payloads
// pass through raw; bit-packed formats are decoded to RGBA8 first.
func ddsFormat(format Format) (bcn.Format, bool, error) {
	switch format {
	case FormatDXT1:
		return bcn.FormatDXT1, true, nil
	case FormatDXT2, FormatDXT3:
		return bcn.FormatDXT3, true, nil
	case FormatDXT4, FormatDXT5:
		return bcn.FormatDXT5, true, nil
	case FormatARGB8888, FormatARGB4444, FormatARGB1555, FormatGray:
		return bcn.FormatRGBA8, false, nil
	default:
		return bcn.FormatUnknown, false, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}

// ExportDDS repackages the container as a plain DDS file: header, then all
// mipmap payloads largest first. DXT data is written as stored (after LZO
// expansion where marked); bit-packed levels are written as RGBA8. No block
// encoding takes place.
func ExportDDS(f *File, path string) error {
	if len(f.Mipmaps) == 0 {
		return ErrEmptyMipmaps
	}

	target, passthrough, err := ddsFormat(f.Format)
	if err != nil {
		return err
	}

	payloads := make([][]byte, len(f.Mipmaps))
	for i, mip := range f.Mipmaps {
		var data []byte
		if passthrough {
			data, err = mip.expand(f.Format)
			if err != nil {
				return fmt.Errorf("mipmap %d: %w", i, err)
			}
			expected := expectedDataLength(f.Format, mip.Width, mip.Height)
			if len(data) != expected {
				return fmt.Errorf("%w: mipmap %d: expected %d, got %d", ErrMipmapSizeMismatch, i, expected, len(data))
			}
		} else {
			data, err = mip.Decode(f.Format)
			if err != nil {
				return fmt.Errorf("mipmap %d: %w", i, err)
			}
		}
		payloads[i] = data
	}

	base := f.Mipmaps[0]
	w32, err := u32FromInt(base.Width)
	if err != nil {
		return err
	}
	h32, err := u32FromInt(base.Height)
	if err != nil {
		return err
	}
	mip32, err := u32FromInt(len(f.Mipmaps))
	if err != nil {
		return err
	}

	header, err := makeDDSHeader(w32, h32, mip32, target)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = out.Close() }()

	if err := bcn.WriteDDSMagic(out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSMagic, err)
	}
	if err := bcn.WriteDDSHeader(out, header); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSHeader, err)
	}

	for i, payload := range payloads {
		if _, err := out.Write(payload); err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrWriteMipData, i, err)
		}
	}

	return nil
}

func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

func makeDDSHeader(width, height, mipMapCount uint32, format bcn.Format) (*bcn.DDSHeader, error) {
	flags := uint32(bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat)
	caps := uint32(bcn.DDSCapsTexture)
	if mipMapCount > 1 {
		flags |= bcn.DDSFlagMipmapCount
		caps |= bcn.DDSCapsComplex | bcn.DDSCapsMipmap
	}

	hdr := &bcn.DDSHeader{
		Size:        bcn.DDSHeaderSize,
		Flags:       flags,
		Height:      height,
		Width:       width,
		Depth:       1,
		MipMapCount: mipMapCount,
		Caps:        caps,
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize

	switch format {
	case bcn.FormatDXT1:
		hdr.Flags |= bcn.DDSFlagLinearSize
		hdr.PixelFormat.Flags = bcn.DDSPFFourCC
		hdr.PixelFormat.FourCC = makeFourCC('D', 'X', 'T', '1')
	case bcn.FormatDXT3:
		hdr.Flags |= bcn.DDSFlagLinearSize
		hdr.PixelFormat.Flags = bcn.DDSPFFourCC
		hdr.PixelFormat.FourCC = makeFourCC('D', 'X', 'T', '3')
	case bcn.FormatDXT5:
		hdr.Flags |= bcn.DDSFlagLinearSize
		hdr.PixelFormat.Flags = bcn.DDSPFFourCC
		hdr.PixelFormat.FourCC = makeFourCC('D', 'X', 'T', '5')
	case bcn.FormatRGBA8:
		hdr.Flags |= bcn.DDSFlagPitch
		hdr.PixelFormat.Flags = bcn.DDSPFRGB | bcn.DDSPFAlphaPixels
		hdr.PixelFormat.RGBBitCount = 32
		hdr.PixelFormat.RBitMask = 0x000000ff
		hdr.PixelFormat.GBitMask = 0x0000ff00
		hdr.PixelFormat.BBitMask = 0x00ff0000
		hdr.PixelFormat.ABitMask = 0xff000000
		hdr.PitchOrLinearSize = width * 4
	default:
		return nil, ErrInvalidFormat
	}

	return hdr, nil
}
