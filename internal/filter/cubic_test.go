package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicInterpolateIdentity(t *testing.T) {
	in := make([]float32, 64)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) / 5))
	}

	out := make([]float64, 64)
	cubicInterpolate(in, out, 1.0)

	// Equal lengths step exactly one input sample per output with zero
	// fraction, so the interpolant passes through the knots.
	for i := range out {
		assert.InDelta(t, float64(in[i]), out[i], 1e-12, "sample %d", i)
	}
}

func TestCubicInterpolateGain(t *testing.T) {
	in := make([]float32, 32)
	for i := range in {
		in[i] = float32(i%7) - 3
	}

	unity := make([]float64, 32)
	doubled := make([]float64, 32)
	cubicInterpolate(in, unity, 1.0)
	cubicInterpolate(in, doubled, 2.0)

	for i := range unity {
		assert.InDelta(t, 2*unity[i], doubled[i], 1e-12, "sample %d", i)
	}
}

func TestCubicInterpolateUpsampleSine(t *testing.T) {
	// 64 samples per cycle is well within the interpolator's flat region;
	// a 4x upsample should track the analytic sine closely.
	const cycles = 4
	in := make([]float32, 64*cycles)
	for i := range in {
		in[i] = float32(math.Sin(2 * math.Pi * float64(i) / 64))
	}

	out := make([]float64, len(in)*4)
	cubicInterpolate(in, out, 1.0)

	// skip the edges where the zero padding distorts the fit
	for j := 16; j < len(out)-16; j++ {
		want := math.Sin(2 * math.Pi * float64(j) / 256)
		assert.InDelta(t, want, out[j], 1e-4, "sample %d", j)
	}
}

func TestCubicInterpolateDecimationBias(t *testing.T) {
	// Cubic interpolation reproduces a linear ramp exactly, which exposes
	// the half-step bias applied when decimating: output j sits at input
	// position 2j+1.
	in := make([]float32, 64)
	for i := range in {
		in[i] = float32(i)
	}

	out := make([]float64, 32)
	cubicInterpolate(in, out, 1.0)

	for j := 1; j < len(out)-1; j++ {
		assert.InDelta(t, float64(2*j+1), out[j], 1e-9, "sample %d", j)
	}
}

func TestCubicInterpolateZeroOutsideWindow(t *testing.T) {
	// A single-sample input interpolates down to zero at the far edge.
	in := []float32{1}
	out := make([]float64, 4)
	cubicInterpolate(in, out, 1.0)

	require.InDelta(t, 1.0, out[0], 1e-12)
	for j := 1; j < len(out); j++ {
		assert.Less(t, math.Abs(out[j]), 1.0, "sample %d", j)
	}
}
