package paa

import (
	"encoding/binary"
	"fmt"
)

// expand565 splits a 16-bit 5:6:5 color into 8-bit channels, replicating the
// high bits into the low ones so that full-scale values map to 255.
func expand565(c uint16) (r, g, b uint8) {
	r5 := uint8(c >> 11)
	g6 := uint8(c >> 5 & 0x3f)
	b5 := uint8(c & 0x1f)

	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// lerp interpolates between a and b with the weight num/den on a, rounding
// to nearest.
func lerp(a, b uint8, num, den uint32) uint8 {
	// #nosec G115 -- result is bounded by max(a, b).
	return uint8((uint32(a)*num + uint32(b)*(den-num) + den/2) / den)
}

// colorTable builds the 4-entry RGB lookup for one block. The opaque variant
// always interpolates both middle entries; otherwise entry 2 is the average
// and entry 3 is transparent black, signaled through the alpha slots.
func colorTable(c0, c1 uint16, opaque bool) (colors [4][3]uint8, alphas [4]uint8) {
	r0, g0, b0 := expand565(c0)
	r1, g1, b1 := expand565(c1)

	colors[0] = [3]uint8{r0, g0, b0}
	colors[1] = [3]uint8{r1, g1, b1}
	alphas = [4]uint8{255, 255, 255, 255}

	if opaque || c0 > c1 {
		colors[2] = [3]uint8{lerp(r0, r1, 2, 3), lerp(g0, g1, 2, 3), lerp(b0, b1, 2, 3)}
		colors[3] = [3]uint8{lerp(r0, r1, 1, 3), lerp(g0, g1, 1, 3), lerp(b0, b1, 1, 3)}
		return colors, alphas
	}

	colors[2] = [3]uint8{lerp(r0, r1, 1, 2), lerp(g0, g1, 1, 2), lerp(b0, b1, 1, 2)}
	colors[3] = [3]uint8{0, 0, 0}
	alphas[3] = 0

	return colors, alphas
}

// writeBlock scatters a decoded 4x4 block into the output buffer, discarding
// texels outside the declared dimensions (tail mip levels can be 2x2 or 1x1
// while still occupying a whole block).
func writeBlock(out []byte, width, height, bx, by int, texels *[16][4]uint8) {
	for ty := 0; ty < 4; ty++ {
		y := by*4 + ty
		if y >= height {
			break
		}
		for tx := 0; tx < 4; tx++ {
			x := bx*4 + tx
			if x >= width {
				break
			}
			idx := (y*width + x) * 4
			copy(out[idx:idx+4], texels[ty*4+tx][:])
		}
	}
}

// DecodeDXT1 decodes DXT1/BC1 block-compressed data into a flat RGBA buffer,
// row-major with the top row first.
func DecodeDXT1(data []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDataSize, width, height)
	}

	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	if len(data) != blocksW*blocksH*8 {
		return nil, fmt.Errorf("%w: DXT1 %dx%d needs %d bytes, got %d",
			ErrDataSize, width, height, blocksW*blocksH*8, len(data))
	}

	out := make([]byte, width*height*4)
	var texels [16][4]uint8

	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			block := data[(by*blocksW+bx)*8:]

			c0 := binary.LittleEndian.Uint16(block[0:2])
			c1 := binary.LittleEndian.Uint16(block[2:4])
			indices := binary.LittleEndian.Uint32(block[4:8])

			colors, alphas := colorTable(c0, c1, false)

			for i := 0; i < 16; i++ {
				code := indices >> (2 * uint(i)) & 0x3
				texels[i] = [4]uint8{colors[code][0], colors[code][1], colors[code][2], alphas[code]}
			}

			writeBlock(out, width, height, bx, by, &texels)
		}
	}

	return out, nil
}

// alphaTable builds the 8-entry alpha lookup for one DXT5 block. With a0 > a1
// all eight codes interpolate between the endpoints; otherwise six codes
// interpolate and the last two are fixed at 0 and 255.
func alphaTable(a0, a1 uint8) [8]uint8 {
	var table [8]uint8

	if a0 > a1 {
		for i := uint32(0); i < 8; i++ {
			table[i] = lerp(a0, a1, 7-i, 7)
		}
		return table
	}

	for i := uint32(0); i < 6; i++ {
		table[i] = lerp(a0, a1, 5-i, 5)
	}
	table[6] = 0
	table[7] = 255

	return table
}

// DecodeDXT5 decodes DXT5/BC3 block-compressed data into a flat RGBA buffer,
// row-major with the top row first.
func DecodeDXT5(data []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDataSize, width, height)
	}

	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	if len(data) != blocksW*blocksH*16 {
		return nil, fmt.Errorf("%w: DXT5 %dx%d needs %d bytes, got %d",
			ErrDataSize, width, height, blocksW*blocksH*16, len(data))
	}

	out := make([]byte, width*height*4)
	var texels [16][4]uint8

	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			block := data[(by*blocksW+bx)*16:]

			a0, a1 := block[0], block[1]
			var acodes uint64
			for i := 0; i < 6; i++ {
				acodes |= uint64(block[2+i]) << (8 * uint(i))
			}

			c0 := binary.LittleEndian.Uint16(block[8:10])
			c1 := binary.LittleEndian.Uint16(block[10:12])
			indices := binary.LittleEndian.Uint32(block[12:16])

			// alpha is carried separately, so the color table never
			// takes the punch-through branch
			colors, _ := colorTable(c0, c1, true)
			alphas := alphaTable(a0, a1)

			for i := 0; i < 16; i++ {
				code := indices >> (2 * uint(i)) & 0x3
				acode := acodes >> (3 * uint(i)) & 0x7
				texels[i] = [4]uint8{colors[code][0], colors[code][1], colors[code][2], alphas[acode]}
			}

			writeBlock(out, width, height, bx, by, &texels)
		}
	}

	return out, nil
}
