package crt

// Fixed-point filters used to bandlimit and equalize the Y/I/Q channels.
// Each filter is owned by a *CRT value (see crt.go); there are no package-
// level singletons, so independent CRT handles never share filter history.

// iirLowpass is a single-pole IIR low-pass filter, used to bandlimit YIQ
// during encoding.
type iirLowpass struct {
	c int // filter coefficient, Q11
	h int // history
}

// newIIRLowpass builds a low-pass filter for the given total bandwidth and
// cutoff frequency, both in Hz.
func newIIRLowpass(freq, limit int) iirLowpass {
	rate := (freq << 9) / limit
	return iirLowpass{c: expOne - expx(-((expPi << 9) / rate))}
}

func (f *iirLowpass) reset() { f.h = 0 }

func (f *iirLowpass) step(s int) int {
	f.h += expMul(s-f.h, f.c)
	return f.h
}

const (
	histLen  = 3
	histOld  = histLen - 1
	histNew  = 0
	eqP      = 16 // gains are pre-scaled for this shift; keep them in sync if it changes
	eqRound  = 1 << (eqP - 1)
)

// threeBandEQ is a three-band equalizer: two cascaded four-stage one-pole
// low-pass sections at the low and high cutoffs give the low band and, by
// their difference, the mid band; a three-sample delay line minus the high
// cutoff's output gives the high band, and each band has its own gain.
type threeBandEQ struct {
	lf, hf int    // low/high cutoff fractions, Q16
	g      [3]int // low/mid/high gains, Q16
	fL, fH [4]int // cascade history
	h      [histLen]int
}

// newThreeBandEQ builds an equalizer for cutoffs fLo/fHi at the given
// sampling rate, with per-band gains gLo/gMid/gHi in Q16. The cutoffs and
// rate share one unit (callers use kHz2L values against a rate of HRes).
func newThreeBandEQ(fLo, fHi, rate, gLo, gMid, gHi int) *threeBandEQ {
	f := &threeBandEQ{g: [3]int{gLo, gMid, gHi}}

	sn, _ := sincos14(t14Pi * fLo / rate)
	f.lf = 2 * (sn << (eqP - 15))
	sn, _ = sincos14(t14Pi * fHi / rate)
	f.hf = 2 * (sn << (eqP - 15))
	return f
}

func (f *threeBandEQ) reset() {
	f.fL = [4]int{}
	f.fH = [4]int{}
	f.h = [histLen]int{}
}

func (f *threeBandEQ) step(s int) int {
	var r [3]int

	f.fL[0] += (f.lf*(s-f.fL[0]) + eqRound) >> eqP
	f.fH[0] += (f.hf*(s-f.fH[0]) + eqRound) >> eqP

	for i := 1; i < 4; i++ {
		f.fL[i] += (f.lf*(f.fL[i-1]-f.fL[i]) + eqRound) >> eqP
		f.fH[i] += (f.hf*(f.fH[i-1]-f.fH[i]) + eqRound) >> eqP
	}

	r[0] = f.fL[3]
	r[1] = f.fH[3] - f.fL[3]
	r[2] = f.h[histOld] - f.fH[3]

	for i := 0; i < 3; i++ {
		r[i] = (r[i] * f.g[i]) >> eqP
	}

	for i := histOld; i > 0; i-- {
		f.h[i] = f.h[i-1]
	}
	f.h[histNew] = s

	return r[0] + r[1] + r[2]
}

// kHz2L converts a frequency in kHz to a per-line sample count, the unit
// the equalizer cutoffs are specified in.
func kHz2L(kHz int) int {
	return HRes * (kHz * 100) / lFreq
}
