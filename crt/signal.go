package crt

// SignalBuffer holds one frame's worth of sampled waveform, HRes samples
// per line across VRes lines, addressed by line and column rather than a
// flat index at every call site.
type SignalBuffer struct {
	samples [InputSize]int8
}

// Line returns the slice of samples making up scan line n.
func (b *SignalBuffer) Line(n int) []int8 {
	return b.samples[n*HRes : (n+1)*HRes]
}

// Get returns the sample at column x on line n.
func (b *SignalBuffer) Get(n, x int) int8 {
	return b.samples[n*HRes+x]
}

// Set stores the sample at column x on line n.
func (b *SignalBuffer) Set(n, x int, v int8) {
	b.samples[n*HRes+x] = v
}

// At returns the sample at flat index i, 0 <= i < InputSize.
func (b *SignalBuffer) At(i int) int8 {
	return b.samples[i]
}

// SetAt stores the sample at flat index i, 0 <= i < InputSize.
func (b *SignalBuffer) SetAt(i int, v int8) {
	b.samples[i] = v
}
