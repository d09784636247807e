package lzss

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// withChecksum appends the additive checksum of want to the stream.
func withChecksum(stream []byte, want []byte) []byte {
	var sum uint32
	for _, b := range want {
		sum += uint32(b)
	}

	out := make([]byte, len(stream), len(stream)+4)
	copy(out, stream)

	return binary.LittleEndian.AppendUint32(out, sum)
}

func TestDecompressLiterals(t *testing.T) {
	t.Parallel()

	want := []byte("deadbeef")
	stream := append([]byte{0xff}, want...) // eight literal flags

	got, err := Decompress(withChecksum(stream, want), len(want))
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestDecompressOverlappingReference(t *testing.T) {
	t.Parallel()

	// one literal 'a', then a back-reference into the byte just written;
	// the overlapping copy repeats it seven times
	want := bytes.Repeat([]byte{'a'}, 8)
	stream := []byte{0x01, 'a', 0xee, 0xf4}

	got, err := Decompress(withChecksum(stream, want), len(want))
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestDecompressWindowFill(t *testing.T) {
	t.Parallel()

	// a back-reference before anything was written reads the space fill
	want := []byte{0x20, 0x20, 0x20}
	stream := []byte{0x00, 0x00, 0x00}

	got, err := Decompress(withChecksum(stream, want), len(want))
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("output = %v, want spaces", got)
	}
}

func TestDecompressReferenceCappedAtLength(t *testing.T) {
	t.Parallel()

	// the back-reference offers 9 more bytes than requested
	want := bytes.Repeat([]byte{'x'}, 4)
	stream := []byte{0x01, 'x', 0xee, 0xfe}

	got, err := Decompress(withChecksum(stream, want), len(want))
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestDecompressChecksumMismatch(t *testing.T) {
	t.Parallel()

	want := []byte("ab")
	stream := withChecksum(append([]byte{0xff}, want...), want)
	stream[len(stream)-4]++

	if _, err := Decompress(stream, len(want)); !errors.Is(err, ErrChecksum) {
		t.Fatalf("expected ErrChecksum, got %v", err)
	}
}

func TestDecompressTruncated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stream []byte
	}{
		{name: "empty", stream: nil},
		{name: "missing-literal", stream: []byte{0xff}},
		{name: "half-reference", stream: []byte{0x00, 0xee}},
		{name: "missing-checksum", stream: []byte{0xff, 'a', 'b'}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Decompress(tc.stream, 2); !errors.Is(err, ErrTruncated) {
				t.Fatalf("expected ErrTruncated, got %v", err)
			}
		})
	}
}

func TestDecompressBadLength(t *testing.T) {
	t.Parallel()

	if _, err := Decompress([]byte{0xff}, -1); !errors.Is(err, ErrLength) {
		t.Fatalf("expected ErrLength, got %v", err)
	}
}

func TestDecompressEmpty(t *testing.T) {
	t.Parallel()

	got, err := Decompress([]byte{0, 0, 0, 0}, 0)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("output length = %d, want 0", len(got))
	}
}
