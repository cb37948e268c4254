package crt

import (
	"crypto/sha256"
	"encoding/binary"
	"flag"
	"fmt"
	"testing"
)

var update = flag.Bool("update", false, "print golden data to stdout for copy-paste")

// hashUint32Buffer computes the SHA-256 digest of a raster buffer.
func hashUint32Buffer(buf []uint32) [32]byte {
	b := make([]byte, len(buf)*4)
	for i, px := range buf {
		binary.LittleEndian.PutUint32(b[i*4:], px)
	}
	return sha256.Sum256(b)
}

// compareGoldenRaster checks the first N pixels and the full-buffer SHA-256
// hash of a decoded raster against recorded fixtures.
func compareGoldenRaster(t *testing.T, name string, out []uint32, expectedFirst []uint32, expectedHash string) {
	t.Helper()

	hash := hashUint32Buffer(out)
	hashStr := fmt.Sprintf("%x", hash)

	if *update {
		fmt.Printf("=== %s ===\n", name)
		n := 8
		if len(out) < n {
			n = len(out)
		}
		fmt.Printf("expectedFirst := []uint32{")
		for i := 0; i < n; i++ {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Printf("0x%06x", out[i])
		}
		fmt.Printf("}\n")
		fmt.Printf("expectedHash := %q\n\n", hashStr)
		return
	}

	n := len(expectedFirst)
	if len(out) < n {
		t.Fatalf("%s: buffer too short: got %d, want at least %d", name, len(out), n)
	}
	for i := 0; i < n; i++ {
		if out[i] != expectedFirst[i] {
			t.Errorf("%s: pixel[%d] = %#06x, want %#06x", name, i, out[i], expectedFirst[i])
			break
		}
	}

	if hashStr != expectedHash {
		t.Errorf("%s: hash mismatch\n  got:  %s\n  want: %s", name, hashStr, expectedHash)
	}
}

// TestDecodeGolden_SolidBlueSquare pins the full-frame decode of a single
// deterministic scenario: a 16x16 solid 0xaabbcc source encoded into field 0
// with color on, decoded once with noise=10. Any change to the fixed-point
// arithmetic anywhere in the chain shifts this hash.
func TestDecodeGolden_SolidBlueSquare(t *testing.T) {
	v, out := newTestCRT(t)
	s := &Settings{RGB: solidRGB(16, 16, 0xaabbcc), W: 16, H: 16, Field: 0, AsColor: true}
	if err := v.Encode(s); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	v.Decode(10)

	expectedFirst := []uint32{0x000000, 0x5f5e5c, 0x636360, 0x605d5b, 0x636262, 0x60605c, 0x636061, 0x616160}
	expectedHash := "f1e73928d43f0e5eb9e0f67d02a0d234f7a88ac3dd76e7a318f0283cc8a15470"

	compareGoldenRaster(t, "DecodeGolden_SolidBlueSquare", out, expectedFirst, expectedHash)
}
