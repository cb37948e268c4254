package crt

import "fmt"

// ccSeq is the color carrier phase sequence sampled at CBFreq samples per
// cycle.
var ccSeq = [4]int{0, 1, 0, -1}

// Encode renders s into the CRT's analog signal buffer as a composite NTSC
// waveform: sync, color burst, and active video for one field.
//
// The encoder has no separate progressive mode. Every call rewrites the sync
// pattern of every line and the same active-video rows, so encoding Field 0
// and then Field 1 before a single Decode leaves only the Field 1 signal in
// the analog buffer; the two fields are not combined.
func (v *CRT) Encode(s *Settings) error {
	if s.Field != 0 && s.Field != 1 {
		return fmt.Errorf("crt: field must be 0 or 1, got %d", s.Field)
	}
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("crt: source dimensions must be positive, got %dx%d", s.W, s.H)
	}
	if len(s.RGB) < s.W*s.H {
		return fmt.Errorf("crt: source buffer too small: need %d pixels, got %d", s.W*s.H, len(s.RGB))
	}

	destW := (avLen * 55500) >> 16
	destH := (Lines * 63500) >> 16

	xo := avBeg + 4 + (avLen-destW)/2
	yo := Top + 4 + (Lines-destH)/2
	xo &= ^3

	for n := 0; n < VRes; n++ {
		t := fpBeg
		line := v.analog.Line(n)

		switch {
		case n <= 3 || (n >= 7 && n <= 9):
			// equalizing pulses: small blips of sync, mostly blank
			for t < 4*HRes/100 {
				line[t] = syncLevel
				t++
			}
			for t < 50*HRes/100 {
				line[t] = blankLevel
				t++
			}
			for t < 54*HRes/100 {
				line[t] = syncLevel
				t++
			}
			for t < 100*HRes/100 {
				line[t] = blankLevel
				t++
			}
		case n >= 4 && n <= 6:
			even := [4]int{46, 50, 96, 100}
			odd := [4]int{4, 50, 96, 100}
			offs := even
			if s.Field == 1 {
				offs = odd
			}
			// vertical sync pulse: small blips of blank, mostly sync
			for t < offs[0]*HRes/100 {
				line[t] = syncLevel
				t++
			}
			for t < offs[1]*HRes/100 {
				line[t] = blankLevel
				t++
			}
			for t < offs[2]*HRes/100 {
				line[t] = syncLevel
				t++
			}
			for t < offs[3]*HRes/100 {
				line[t] = blankLevel
				t++
			}
		default:
			for t < syncBeg {
				line[t] = blankLevel
				t++
			}
			for t < bwBeg {
				line[t] = syncLevel
				t++
			}
			for t < avBeg {
				line[t] = blankLevel
				t++
			}
			if n < Top {
				for t < HRes {
					line[t] = blankLevel
					t++
				}
			}
			if s.AsColor {
				for t = cbBeg; t < cbBeg+CBCycles*CBFreq; t++ {
					line[t] = int8(blankLevel + ccSeq[(t+0)&3]*burstLevel)
				}
			}
		}
	}

	for y := 0; y < destH; y++ {
		fieldOffset := (s.Field*s.H + destH) / destH / 2
		syA := (y * s.H) / destH
		syB := (y*s.H + destH/2) / destH

		syA += fieldOffset
		syB += fieldOffset

		if syA >= s.H {
			syA = s.H - 1
		}
		if syB >= s.H {
			syB = s.H - 1
		}

		syA *= s.W
		syB *= s.W

		v.iirY.reset()
		v.iirI.reset()
		v.iirQ.reset()

		for x := 0; x < destW; x++ {
			sx := (x * s.W) / destW
			pA := s.RGB[sx+syA]
			pB := s.RGB[sx+syB]
			rA := int((pA >> 16) & 0xff)
			gA := int((pA >> 8) & 0xff)
			bA := int((pA >> 0) & 0xff)
			rB := int((pB >> 16) & 0xff)
			gB := int((pB >> 8) & 0xff)
			bB := int((pB >> 0) & 0xff)

			fy := (19595*rA + 38470*gA + 7471*bA + 19595*rB + 38470*gB + 7471*bB) >> 15
			fi := (39059*rA - 18022*gA - 21103*bA + 39059*rB - 18022*gB - 21103*bB) >> 15
			fq := (13894*rA - 34275*gA + 20382*bA + 13894*rB - 34275*gB + 20382*bB) >> 15

			ph := ccPhase(y + yo)
			ire := blackLevel + v.blackPoint

			fy = v.iirY.step(fy)
			fi = v.iirI.step(fi) * ph * ccSeq[(x+0)&3]
			fq = v.iirQ.step(fq) * ph * ccSeq[(x+3)&3]
			ire += (fy + fi + fq) * (whiteLevel * v.whitePoint / 100) >> 10

			if ire < 0 {
				ire = 0
			}
			if ire > 110 {
				ire = 110
			}

			v.analog.SetAt((x+xo)+(y+yo)*HRes, int8(ire))
		}
	}

	return nil
}
