// Package simdops provides SIMD-accelerated float32 primitives for the
// resampling hot path, delegating to github.com/tphakala/simd.
//
// The engine processes float32 throughout; coefficient banks are 32-byte
// aligned so the 8-lane single-precision kernels can use full-width loads.
package simdops

import (
	"github.com/tphakala/simd/f32"
)

// DotProduct computes the dot product of two equal-length slices without
// bounds checking. Callers must guarantee len(a) == len(b).
var DotProduct = f32.DotProductUnsafe

// Sum returns the sum of all elements.
var Sum = f32.Sum

// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
var Scale = f32.Scale

// DotProduct2 computes dot products of two signals against one shared
// kernel. The kernel is fetched once and stays hot across both products:
// stereo vectorizes across taps, not channels.
func DotProduct2(x0, x1, c []float32) (float32, float32) {
	return f32.DotProductUnsafe(x0, c), f32.DotProductUnsafe(x1, c)
}

// InterpDot computes the dot product of x against coefficients linearly
// interpolated between two adjacent phase rows:
//
//	Σ x[j]·(c0[j] + frac·(c1[j]−c0[j]))
//
// which factors into dot(x,c0) + frac·(dot(x,c1)−dot(x,c0)), so both halves
// run through the SIMD dot kernel.
func InterpDot(x, c0, c1 []float32, frac float32) float32 {
	a := f32.DotProductUnsafe(x, c0)
	b := f32.DotProductUnsafe(x, c1)
	return a + frac*(b-a)
}

// InterpDot2 is the stereo variant of InterpDot with a shared coefficient
// pair applied to both channels.
func InterpDot2(x0, x1, c0, c1 []float32, frac float32) (float32, float32) {
	a0 := f32.DotProductUnsafe(x0, c0)
	b0 := f32.DotProductUnsafe(x0, c1)
	a1 := f32.DotProductUnsafe(x1, c0)
	b1 := f32.DotProductUnsafe(x1, c1)
	return a0 + frac*(b0-a0), a1 + frac*(b1-a1)
}
