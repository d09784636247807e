package paa

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// File is a parsed PAA container: the format code shared by all mipmaps, the
// metadata TAGGs and the mipmap chain, all in file order. A File is immutable
// once read and safe for concurrent use; decoding allocates fresh buffers.
type File struct {
	Format  Format
	Taggs   []Tagg
	Mipmaps []*Mipmap
}

// ReadFile parses a PAA container from a file on disk.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Read parses a PAA container from a byte stream. The stream is consumed
// sequentially: format code, TAGG stream, palette length, mipmap records up
// to the zero-dimension sentinel, optional trailing end marker. Mipmap
// payloads are retained as stored; nothing is decoded here.
func Read(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)

	var code uint16
	if err := binary.Read(br, binary.LittleEndian, &code); err != nil {
		return nil, fmt.Errorf("%w: reading format code: %v", ErrTruncated, err)
	}

	format := Format(code)
	if !format.Valid() {
		return nil, fmt.Errorf("%w: 0x%04x", ErrUnknownFormat, code)
	}

	out := &File{Format: format}

	for {
		head, err := br.Peek(8)
		if len(head) >= 4 && string(head[:4]) != taggMarker {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading TAGG stream: %v", ErrTruncated, err)
		}

		tagg, err := readTagg(br, string(head[4:8]))
		if err != nil {
			return nil, err
		}

		out.Taggs = append(out.Taggs, tagg)
	}

	var palette uint16
	if err := binary.Read(br, binary.LittleEndian, &palette); err != nil {
		return nil, fmt.Errorf("%w: reading palette length: %v", ErrTruncated, err)
	}
	if palette != 0 {
		return nil, fmt.Errorf("%w: %d entries", ErrPalette, palette)
	}

	for {
		mip, sentinel, err := readMipmap(br)
		if err != nil {
			return nil, err
		}
		if sentinel {
			break
		}

		out.Mipmaps = append(out.Mipmaps, mip)
	}

	var end uint16
	switch err := binary.Read(br, binary.LittleEndian, &end); {
	case errors.Is(err, io.EOF):
		// stream ending right at the sentinel is accepted
	case err != nil:
		return nil, fmt.Errorf("%w: reading end marker: %v", ErrTruncated, err)
	case end != 0:
		return nil, fmt.Errorf("%w: 0x%04x", ErrEndMarker, end)
	}

	return out, nil
}

// readTagg consumes one TAGG record: marker and signature, declared length,
// payload. The payload never spans past the declared length.
func readTagg(br *bufio.Reader, sig string) (Tagg, error) {
	if _, err := br.Discard(8); err != nil {
		return nil, fmt.Errorf("%w: reading TAGG signature: %v", ErrTruncated, err)
	}

	var length uint32
	if err := binary.Read(br, binary.LittleEndian, &length); err != nil {
		return nil, fmt.Errorf("%w: reading TAGG %q length: %v", ErrTruncated, sig, err)
	}
	if length > maxUint24 {
		return nil, fmt.Errorf("%w: TAGG %q declares %d bytes", ErrTruncated, sig, length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(br, payload); err != nil {
		return nil, fmt.Errorf("%w: reading TAGG %q payload: %v", ErrTruncated, sig, err)
	}

	return parseTagg(sig, payload)
}

// readMipmap consumes one mipmap record. The zero-dimension sentinel is
// reported instead of returned as a mipmap.
func readMipmap(br *bufio.Reader) (mip *Mipmap, sentinel bool, err error) {
	var dims [2]uint16
	if err := binary.Read(br, binary.LittleEndian, &dims); err != nil {
		return nil, false, fmt.Errorf("%w: reading mipmap dimensions: %v", ErrTruncated, err)
	}
	if dims[0] == 0 && dims[1] == 0 {
		return nil, true, nil
	}

	width := dims[0]
	lzoPacked := width&0x8000 != 0
	width &^= 0x8000

	var sizeBytes [3]byte
	if _, err := io.ReadFull(br, sizeBytes[:]); err != nil {
		return nil, false, fmt.Errorf("%w: reading mipmap data length: %v", ErrTruncated, err)
	}
	length := int(sizeBytes[0]) | int(sizeBytes[1])<<8 | int(sizeBytes[2])<<16

	data := make([]byte, length)
	if _, err := io.ReadFull(br, data); err != nil {
		return nil, false, fmt.Errorf("%w: reading mipmap data: %v", ErrTruncated, err)
	}

	return &Mipmap{
		Width:     int(width),
		Height:    int(dims[1]),
		data:      data,
		lzoPacked: lzoPacked,
	}, false, nil
}

// Tagg returns the first record with the given on-disk signature, recognized
// or not, or nil. First occurrence wins if a signature repeats.
func (f *File) Tagg(signature string) Tagg {
	for _, tagg := range f.Taggs {
		if tagg.Signature() == signature {
			return tagg
		}
	}

	return nil
}

// AverageColor returns the average color TAGG, or nil.
func (f *File) AverageColor() *AverageColorTagg {
	for _, tagg := range f.Taggs {
		if t, ok := tagg.(*AverageColorTagg); ok {
			return t
		}
	}

	return nil
}

// MaxColor returns the maximum color TAGG, or nil.
func (f *File) MaxColor() *MaxColorTagg {
	for _, tagg := range f.Taggs {
		if t, ok := tagg.(*MaxColorTagg); ok {
			return t
		}
	}

	return nil
}

// AlphaFlag returns the alpha flag TAGG, or nil.
func (f *File) AlphaFlag() *FlagTagg {
	for _, tagg := range f.Taggs {
		if t, ok := tagg.(*FlagTagg); ok {
			return t
		}
	}

	return nil
}

// Swizzle returns the channel swizzle TAGG, or nil.
func (f *File) Swizzle() *SwizzleTagg {
	for _, tagg := range f.Taggs {
		if t, ok := tagg.(*SwizzleTagg); ok {
			return t
		}
	}

	return nil
}

// Offsets returns the mipmap offset TAGG, or nil.
func (f *File) Offsets() *OffsetTagg {
	for _, tagg := range f.Taggs {
		if t, ok := tagg.(*OffsetTagg); ok {
			return t
		}
	}

	return nil
}

// IsAlpha reports whether the container carries an alpha flag signaling
// transparency.
func (f *File) IsAlpha() bool {
	flag := f.AlphaFlag()

	return flag != nil && flag.Value != AlphaNone
}
