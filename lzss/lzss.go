/*
Package lzss implements the LZSS byte-stream expansion used by Bohemia
Interactive binary formats.

The dialect uses a 4096-byte ring buffer pre-filled with spaces, 8-bit flag
groups (bit set = literal, clear = back-reference), back-references of 3 to 18
bytes, and a trailing little-endian additive checksum of the decompressed
output.
*/
package lzss

import (
	"errors"
	"fmt"
)

const (
	windowSize = 4096
	maxMatch   = 18
	threshold  = 2
	windowFill = 0x20
)

var (
	// ErrTruncated indicates the compressed stream ended prematurely.
	ErrTruncated = errors.New("LZSS stream truncated")
	// ErrChecksum indicates the trailing checksum does not match the output.
	ErrChecksum = errors.New("LZSS checksum mismatch")
	// ErrLength indicates an invalid expected output length.
	ErrLength = errors.New("invalid LZSS output length")
)

// Decompress expands data into exactly expectedLen bytes and verifies the
// trailing checksum.
func Decompress(data []byte, expectedLen int) ([]byte, error) {
	if expectedLen < 0 {
		return nil, fmt.Errorf("%w: %d", ErrLength, expectedLen)
	}

	var window [windowSize]byte
	for i := range window {
		window[i] = windowFill
	}
	wpos := windowSize - maxMatch

	out := make([]byte, 0, expectedLen)
	var checksum uint32
	pos := 0

	emit := func(c byte) {
		out = append(out, c)
		checksum += uint32(c)
		window[wpos] = c
		wpos = (wpos + 1) & (windowSize - 1)
	}

	var flags uint32
	for len(out) < expectedLen {
		flags >>= 1
		if flags&0x100 == 0 {
			if pos >= len(data) {
				return nil, fmt.Errorf("%w: flag byte at offset %d", ErrTruncated, pos)
			}
			flags = uint32(data[pos]) | 0xff00
			pos++
		}

		if flags&1 != 0 {
			if pos >= len(data) {
				return nil, fmt.Errorf("%w: literal at offset %d", ErrTruncated, pos)
			}
			emit(data[pos])
			pos++
			continue
		}

		if pos+2 > len(data) {
			return nil, fmt.Errorf("%w: back-reference at offset %d", ErrTruncated, pos)
		}
		ref := int(data[pos]) | int(data[pos+1]&0xf0)<<4
		length := int(data[pos+1]&0x0f) + threshold
		pos += 2

		for k := 0; k <= length && len(out) < expectedLen; k++ {
			emit(window[(ref+k)&(windowSize-1)])
		}
	}

	if pos+4 > len(data) {
		return nil, fmt.Errorf("%w: checksum at offset %d", ErrTruncated, pos)
	}
	stored := uint32(data[pos]) | uint32(data[pos+1])<<8 | uint32(data[pos+2])<<16 | uint32(data[pos+3])<<24
	if stored != checksum {
		return nil, fmt.Errorf("%w: stored 0x%08x, computed 0x%08x", ErrChecksum, stored, checksum)
	}

	return out, nil
}
