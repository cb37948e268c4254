package crt

import "fmt"

// CRT is an opaque handle to one NTSC signal chain: an output raster, the
// analog and (noisy) input signal buffers backing it, and the persistent
// filter, equalizer, and sync state the encoder and decoder share across
// calls. A CRT is not safe for concurrent use; independent CRT values are
// fully independent.
type CRT struct {
	outW, outH int
	out        []uint32

	saturation int
	brightness int
	contrast   int
	blackPoint int
	whitePoint int

	hsync int
	vsync int
	rn    int32 // noise LCG state, never reset by Reset
	field int   // field parity recovered by the most recent Decode call

	analog SignalBuffer
	inp    SignalBuffer

	iirY, iirI, iirQ iirLowpass
	eqY, eqI, eqQ    *threeBandEQ
}

// Settings describes one frame to encode: a packed 0xRRGGBB raster, its
// dimensions, the field parity for interlaced output, and whether to emit a
// color burst at all.
type Settings struct {
	RGB     []uint32
	W, H    int
	Field   int // 0 or 1
	AsColor bool
}

// New allocates a CRT targeting an output raster outw x outh backed by out,
// which must have at least outw*outh elements.
func New(outw, outh int, out []uint32) (*CRT, error) {
	v := &CRT{}
	if err := v.Resize(outw, outh, out); err != nil {
		return nil, err
	}
	v.Reset()
	v.rn = 194

	v.eqY = newThreeBandEQ(kHz2L(1500), kHz2L(3000), HRes, 65536, 8192, 9175)
	v.eqI = newThreeBandEQ(kHz2L(80), kHz2L(1150), HRes, 65536, 65536, 1311)
	v.eqQ = newThreeBandEQ(kHz2L(80), kHz2L(1000), HRes, 65536, 65536, 0)

	v.iirY = newIIRLowpass(lFreq, yFreq)
	v.iirI = newIIRLowpass(lFreq, iFreq)
	v.iirQ = newIIRLowpass(lFreq, qFreq)

	return v, nil
}

// Resize points the CRT at a new output raster, validating that out is
// large enough to hold outw*outh pixels.
func (v *CRT) Resize(outw, outh int, out []uint32) error {
	if outw <= 0 || outh <= 0 {
		return fmt.Errorf("crt: output dimensions must be positive, got %dx%d", outw, outh)
	}
	if len(out) < outw*outh {
		return fmt.Errorf("crt: output buffer too small: need %d pixels, got %d", outw*outh, len(out))
	}
	v.outW = outw
	v.outH = outh
	v.out = out
	return nil
}

// Reset restores the CRT's tunable picture parameters and sync state to
// their defaults. It does not touch the noise generator or the output
// buffer binding.
func (v *CRT) Reset() {
	v.saturation = 18
	v.brightness = 0
	v.contrast = 179
	v.blackPoint = 0
	v.whitePoint = 100
	v.hsync = 0
	v.vsync = 0
}
