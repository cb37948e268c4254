package crt

// Fixed raster/signal geometry. These four numbers are the compile-time
// contract between the encoder and decoder: every other offset in this file
// is derived from them and from the nanosecond timings below, purely by
// constant folding, the same way the original C macros did it.
const (
	HRes      = 832 // samples per full horizontal line
	VRes      = 525 // total scan lines per frame, including vblank
	Top       = 21  // first visible scan line
	Bot       = 261 // one past the last visible scan line
	Lines     = Bot - Top
	CBFreq    = 4 // color burst samples per subcarrier cycle
	InputSize = HRes * VRes
)

// Horizontal line timing, in nanoseconds. A full line is front porch, sync
// tip, breezeway, color burst, back porch, then active video.
const (
	fpNS   = 1500  // front porch
	syncNS = 4700  // sync tip
	bwNS   = 600   // breezeway
	cbNS   = 2500  // color burst
	bpNS   = 1600  // back porch
	avNS   = 52600 // active video
	hbNS   = fpNS + syncNS + bwNS + cbNS + bpNS
	lineNS = hbNS + avNS
)

// ns2pos converts a nanosecond offset into its sample position on the line.
func ns2pos(ns int) int { return ns * HRes / lineNS }

// Region start offsets, in samples, within one horizontal line.
const (
	fpBeg   = 0
	syncBeg = fpNS * HRes / lineNS
	bwBeg   = (fpNS + syncNS) * HRes / lineNS
	cbBeg   = (fpNS + syncNS + bwNS) * HRes / lineNS
	bpBeg   = (fpNS + syncNS + bwNS + cbNS) * HRes / lineNS
	avBeg   = hbNS * HRes / lineNS
	avLen   = avNS * HRes / lineNS
)

// CBCycles is the number of color burst cycles transmitted per line,
// somewhere between 7 and 12 cycles in a real signal.
const CBCycles = 10

// Bandlimiting frequencies, in units of 10 Hz.
const (
	lFreq = 1431818 // full line rate
	yFreq = 420000  // luma (Y), 4.2 MHz of the 14.31818 MHz lFreq
	iFreq = 150000  // chroma (I), 1.5 MHz
	qFreq = 55000   // chroma (Q), 0.55 MHz
)

// IRE signal levels (100 = 1.0V, -40 = 0.0V).
const (
	whiteLevel = 100
	burstLevel = 20
	blackLevel = 7
	blankLevel = 0
	syncLevel  = -40
)

// Search windows for sync recovery.
const (
	hsyncWindow = 8 // samples
	vsyncWindow = 8 // lines
)

// ccPhase returns the color carrier phase for scan line ln: 227.5
// subcarrier cycles per line means every other line has reversed phase.
func ccPhase(ln int) int {
	if ln&1 != 0 {
		return -1
	}
	return 1
}

// posmod is modulo that always returns a non-negative result, matching the
// POSMOD macro used throughout sync recovery.
func posmod(x, n int) int {
	return ((x % n) + n) % n
}
