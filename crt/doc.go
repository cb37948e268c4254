// Package crt emulates the analog NTSC composite video signal chain in
// integer-only fixed-point arithmetic: an encoder that turns a raster of
// packed RGB pixels into a sampled composite waveform, and a decoder that
// recovers a raster back out of that waveform, including the sync search,
// chroma demodulation, and bandlimiting a real receiver would perform.
//
// Everything here runs on a single goroutine against a *CRT handle that owns
// all filter and synchronization state; nothing is safe for concurrent use
// across goroutines, and there is no floating point anywhere in the signal
// path.
package crt
