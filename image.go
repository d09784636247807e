package paa

import (
	"fmt"
	"image"
)

// Image decodes one mipmap level into an image.RGBA, undoing the stored
// channel swizzle if the container carries one. Results are not cached;
// callers decoding the same level repeatedly should memoize.
func (f *File) Image(level int) (*image.RGBA, error) {
	if level < 0 || level >= len(f.Mipmaps) {
		return nil, fmt.Errorf("%w: level %d of %d", ErrMipmapIndex, level, len(f.Mipmaps))
	}

	mip := f.Mipmaps[level]
	buf, err := mip.Decode(f.Format)
	if err != nil {
		return nil, err
	}

	if sw := f.Swizzle(); sw != nil && !sw.IsIdentity() {
		buf, err = SwizzleChannels(buf, sw.Swizzle)
		if err != nil {
			return nil, err
		}
	}

	return &image.RGBA{
		Pix:    buf,
		Stride: mip.Width * 4,
		Rect:   image.Rect(0, 0, mip.Width, mip.Height),
	}, nil
}
