// Package audiosrc provides streaming sample-rate conversion for real-time
// audio in pure Go.
//
// The converter is a polyphase FIR resampler built from a single embedded
// minimum-phase equiripple prototype filter (96 taps per phase, oversampled
// 32x, stopband below -125 dB). Rate pairs that reduce to a small rational
// fraction run in rational mode with a per-phase step table; all other pairs
// run in irrational mode, where a Q32.32 fixed-point accumulator addresses a
// 256-phase bank with linear coefficient interpolation between phases. Phase
// is continuous across call boundaries, so audio can be fed in arbitrary
// chunks with no discontinuities.
//
// # Quick Start
//
// For interleaved 16-bit PCM:
//
//	src, err := audiosrc.New(44100, 48000, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out := make([]int16, 2*src.MaxOutput(len(in)/2))
//	n := src.Render(in, out, len(in)/2)
//	play(out[:2*n])
//
// For deinterleaved float32 audio use [Resampler.ProcessFloat]; output
// slices must hold at least [Resampler.MaxOutput] frames per channel.
//
// # Streaming
//
// One Resampler instance is owned by one logical producer-consumer and must
// not be called concurrently. Processing never blocks and does bounded work
// per output sample. Splitting a stream at any frame boundary produces
// bit-identical output to processing it in one call.
//
// # Attribution
//
// The conversion algorithm and prototype filter follow the audio SRC
// developed at High Fidelity for the Vircadia codebase, distributed under
// the Apache License, Version 2.0.
package audiosrc
