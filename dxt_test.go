package paa

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// dxt1Block packs one 8-byte DXT1 block.
func dxt1Block(c0, c1 uint16, indices uint32) []byte {
	block := make([]byte, 8)
	binary.LittleEndian.PutUint16(block[0:], c0)
	binary.LittleEndian.PutUint16(block[2:], c1)
	binary.LittleEndian.PutUint32(block[4:], indices)

	return block
}

// dxt5Block packs one 16-byte DXT5 block. Each texel i gets alpha code
// acodes[i] and color code from the indices word.
func dxt5Block(a0, a1 uint8, acodes [16]uint8, c0, c1 uint16, indices uint32) []byte {
	block := make([]byte, 16)
	block[0] = a0
	block[1] = a1

	var bits uint64
	for i, code := range acodes {
		bits |= uint64(code&0x7) << (3 * uint(i))
	}
	for i := 0; i < 6; i++ {
		block[2+i] = byte(bits >> (8 * uint(i)))
	}

	binary.LittleEndian.PutUint16(block[8:], c0)
	binary.LittleEndian.PutUint16(block[10:], c1)
	binary.LittleEndian.PutUint32(block[12:], indices)

	return block
}

func pixelAt(t *testing.T, rgba []byte, width, x, y int) [4]uint8 {
	t.Helper()

	idx := (y*width + x) * 4
	if idx+4 > len(rgba) {
		t.Fatalf("pixel (%d,%d) out of range", x, y)
	}

	return [4]uint8{rgba[idx], rgba[idx+1], rgba[idx+2], rgba[idx+3]}
}

func TestDecodeDXT1Opaque(t *testing.T) {
	t.Parallel()

	// white > black, so all four codes interpolate and everything is opaque
	block := dxt1Block(0xffff, 0x0000, 0xe4e4e4e4) // codes 0,1,2,3 per texel row
	out, err := DecodeDXT1(block, 4, 4)
	if err != nil {
		t.Fatalf("DecodeDXT1: %v", err)
	}

	want := [4][4]uint8{
		{255, 255, 255, 255},
		{0, 0, 0, 255},
		{170, 170, 170, 255}, // 2/3 white, rounded to nearest
		{85, 85, 85, 255},    // 1/3 white
	}
	for x, px := range want {
		if got := pixelAt(t, out, 4, x, 0); got != px {
			t.Fatalf("texel %d = %v, want %v", x, got, px)
		}
	}
}

func TestDecodeDXT1Transparent(t *testing.T) {
	t.Parallel()

	// color0 < color1 selects the punch-through branch
	block := dxt1Block(0x0000, 0xffff, 0xe4e4e4e4)
	out, err := DecodeDXT1(block, 4, 4)
	if err != nil {
		t.Fatalf("DecodeDXT1: %v", err)
	}

	if got := pixelAt(t, out, 4, 3, 0); got != [4]uint8{0, 0, 0, 0} {
		t.Fatalf("code 3 texel = %v, want transparent black", got)
	}
	if got := pixelAt(t, out, 4, 2, 0); got != [4]uint8{128, 128, 128, 255} {
		t.Fatalf("code 2 texel = %v, want midpoint gray", got)
	}
	if got := pixelAt(t, out, 4, 0, 0); got != [4]uint8{0, 0, 0, 255} {
		t.Fatalf("code 0 texel = %v, want opaque black", got)
	}
}

func TestDecodeDXT1SizeMismatch(t *testing.T) {
	t.Parallel()

	if _, err := DecodeDXT1(make([]byte, 7), 4, 4); !errors.Is(err, ErrDataSize) {
		t.Fatalf("expected ErrDataSize, got %v", err)
	}
	if _, err := DecodeDXT1(make([]byte, 7), 4, 4); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode kind, got %v", err)
	}
}

func TestDecodeDXT1PartialBlock(t *testing.T) {
	t.Parallel()

	// a 2x2 tail mip still occupies a whole 8-byte block
	block := dxt1Block(0xffff, 0x0000, 0)
	out, err := DecodeDXT1(block, 2, 2)
	if err != nil {
		t.Fatalf("DecodeDXT1: %v", err)
	}
	if len(out) != 2*2*4 {
		t.Fatalf("output length = %d, want 16", len(out))
	}
	if got := pixelAt(t, out, 2, 1, 1); got != [4]uint8{255, 255, 255, 255} {
		t.Fatalf("texel (1,1) = %v, want white", got)
	}
}

func TestDecodeDXT5AlphaEightEntry(t *testing.T) {
	t.Parallel()

	var acodes [16]uint8
	for i := range acodes {
		acodes[i] = uint8(i % 8)
	}

	block := dxt5Block(255, 0, acodes, 0xffff, 0xffff, 0)
	out, err := DecodeDXT5(block, 4, 4)
	if err != nil {
		t.Fatalf("DecodeDXT5: %v", err)
	}

	want := [8]uint8{255, 219, 182, 146, 109, 73, 36, 0}
	for i, a := range want {
		got := pixelAt(t, out, 4, i%4, i/4)
		if got[3] != a {
			t.Fatalf("alpha code %d = %d, want %d", i, got[3], a)
		}
	}

	for i := 1; i < 8; i++ {
		if want[i] >= want[i-1] {
			t.Fatalf("alpha table not monotonically decreasing at code %d", i)
		}
	}
}

func TestDecodeDXT5AlphaSixEntry(t *testing.T) {
	t.Parallel()

	var acodes [16]uint8
	for i := range acodes {
		acodes[i] = uint8(i % 8)
	}

	// a0 is not greater than a1: codes 6 and 7 are pinned to 0 and 255
	block := dxt5Block(0, 255, acodes, 0, 0, 0)
	out, err := DecodeDXT5(block, 4, 4)
	if err != nil {
		t.Fatalf("DecodeDXT5: %v", err)
	}

	if got := pixelAt(t, out, 4, 2, 1); got[3] != 0 {
		t.Fatalf("alpha code 6 = %d, want 0", got[3])
	}
	if got := pixelAt(t, out, 4, 3, 1); got[3] != 255 {
		t.Fatalf("alpha code 7 = %d, want 255", got[3])
	}
	for i := 1; i <= 4; i++ {
		got := pixelAt(t, out, 4, i%4, i/4)
		if got[3] == 0 || got[3] == 255 {
			t.Fatalf("interpolated alpha code %d = %d, want strictly between", i, got[3])
		}
	}
}

func TestDecodeDXT5ColorAlwaysInterpolated(t *testing.T) {
	t.Parallel()

	// color0 < color1 must not produce the DXT1 punch-through entry here
	var acodes [16]uint8
	block := dxt5Block(255, 0, acodes, 0x0000, 0xffff, 0xffffffff) // all color code 3
	out, err := DecodeDXT5(block, 4, 4)
	if err != nil {
		t.Fatalf("DecodeDXT5: %v", err)
	}

	got := pixelAt(t, out, 4, 0, 0)
	if got != [4]uint8{170, 170, 170, 255} {
		t.Fatalf("code 3 texel = %v, want interpolated 2/3 white", got)
	}
}

func TestDecodeDXT5SizeMismatch(t *testing.T) {
	t.Parallel()

	if _, err := DecodeDXT5(make([]byte, 15), 4, 4); !errors.Is(err, ErrDataSize) {
		t.Fatalf("expected ErrDataSize, got %v", err)
	}
}

func TestExpand565(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		c       uint16
		r, g, b uint8
	}{
		{name: "white", c: 0xffff, r: 255, g: 255, b: 255},
		{name: "black", c: 0x0000, r: 0, g: 0, b: 0},
		{name: "red-only", c: 0xf800, r: 255, g: 0, b: 0},
		{name: "green-only", c: 0x07e0, r: 0, g: 255, b: 0},
		{name: "blue-only", c: 0x001f, r: 0, g: 0, b: 255},
		{name: "mid-red", c: 0x8000, r: 132, g: 0, b: 0}, // 5-bit 16 replicates to 10000100
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, g, b := expand565(tc.c)
			if r != tc.r || g != tc.g || b != tc.b {
				t.Fatalf("expand565(0x%04x) = (%d,%d,%d), want (%d,%d,%d)", tc.c, r, g, b, tc.r, tc.g, tc.b)
			}
		})
	}
}

func TestDecodeDXT1MultiBlockLayout(t *testing.T) {
	t.Parallel()

	// 8x4: left block white, right block black
	data := bytes.Join([][]byte{
		dxt1Block(0xffff, 0x0000, 0),
		dxt1Block(0x0000, 0xffff, 0),
	}, nil)

	out, err := DecodeDXT1(data, 8, 4)
	if err != nil {
		t.Fatalf("DecodeDXT1: %v", err)
	}

	if got := pixelAt(t, out, 8, 0, 3); got != [4]uint8{255, 255, 255, 255} {
		t.Fatalf("left block texel = %v, want white", got)
	}
	if got := pixelAt(t, out, 8, 7, 3); got != [4]uint8{0, 0, 0, 255} {
		t.Fatalf("right block texel = %v, want black", got)
	}
}
