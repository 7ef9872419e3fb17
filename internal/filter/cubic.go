// Package filter builds polyphase coefficient banks from the embedded
// prototype lowpass filter.
//
// The prototype is heavily oversampled (32x), so banks with arbitrary phase
// counts are produced by resampling it once at construction time with a
// 3rd-order Lagrange interpolator. Lagrange interpolation is maximally flat
// near dc and well suited to further upsampling an already-oversampled
// filter.
package filter

import "unsafe"

const (
	// q32ToFloat converts the low word of a Q32.32 value to a fraction in [0, 1).
	q32ToFloat = 1.0 / 4294967296.0

	// CoefAlign is the byte alignment of coefficient banks, sized for
	// 8-lane single-precision SIMD loads.
	CoefAlign = 32
)

// alignedFloats returns a zeroed float32 slice of length n whose backing
// array starts on a CoefAlign-byte boundary. Go has no aligned allocator,
// so the slice is over-allocated and re-sliced at the first aligned element.
func alignedFloats(n int) []float32 {
	const elems = CoefAlign / 4
	buf := make([]float32, n+elems-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := 0
	if rem := addr % CoefAlign; rem != 0 {
		off = int(CoefAlign-rem) / 4
	}
	return buf[off : off+n : off+n]
}

// cubicInterpolate resamples in to out with uniform sampling of the
// continuous 3rd-order Lagrange interpolant, scaling by gain.
//
// Positions advance by a Q32.32 step of len(in)/len(out) input samples per
// output. When decimating, the initial offset is biased by half a step to
// improve symmetry on small integer ratios. Values outside the input window
// are zero.
func cubicInterpolate(in []float32, out []float64, gain float64) {
	nin := len(in)
	nout := len(out)

	step := (int64(nin) << 32) / int64(nout) // Q32.32
	var offset int64
	if nout < nin {
		offset = step / 2
	}

	// Lagrange interpolation using the Farrow structure: the polynomial is
	// evaluated in power-basis form with the fractional delay as variable.
	for j := range out {
		i := int(offset >> 32)
		f := uint32(offset)

		var x0, x1, x2, x3 float64
		if i-1 >= 0 {
			x0 = float64(in[i-1])
		}
		if i >= 0 {
			x1 = float64(in[i])
		}
		if i+1 < nin {
			x2 = float64(in[i+1])
		}
		if i+2 < nin {
			x3 = float64(in[i+2])
		}

		c0 := (x3-x0)/6 + (x1-x2)/2
		c1 := (x0+x2)/2 - x1
		c2 := x2 - x0/3 - x1/2 - x3/6
		c3 := x1

		t := float64(f) * q32ToFloat
		out[j] = (((c0*t+c1)*t+c2)*t + c3) * gain

		offset += step
	}
}
