// Package testutil provides reusable helpers for resampler tests: signal
// generators, sinusoid fitting and spectrum measurement.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Sine generates n samples of a sine wave at freq Hz sampled at rate Hz
// with the given peak amplitude.
func Sine(n int, freq, rate, amp float64) []float32 {
	out := make([]float32, n)
	w := 2 * math.Pi * freq / rate
	for i := range out {
		out[i] = float32(amp * math.Sin(w*float64(i)))
	}
	return out
}

// Ramp generates n samples rising linearly from 0 to amp.
func Ramp(n int, amp float64) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(amp * float64(i) / float64(n))
	}
	return out
}

// WhiteNoise generates n samples of uniform noise in [-amp, amp] from a
// fixed-seed LCG so runs are reproducible.
func WhiteNoise(n int, amp float64, seed uint32) []float32 {
	out := make([]float32, n)
	rz := seed
	for i := range out {
		rz = rz*69069 + 1
		out[i] = float32(amp * (float64(rz)/2147483648.0 - 1.0))
	}
	return out
}

// ToFloat64 widens a float32 slice.
func ToFloat64(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

// RMS returns the root-mean-square level of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

// DB converts a linear amplitude ratio to decibels.
func DB(x float64) float64 {
	return 20 * math.Log10(x)
}

// FitSine least-squares fits y ≈ a·sin(w n) + b·cos(w n) + dc at freq Hz
// and returns the fitted amplitude and the ratio of fitted-component power
// to residual power in dB (signal-to-noise-and-distortion).
func FitSine(y []float64, freq, rate float64) (amp, snrDB float64) {
	n := len(y)
	w := 2 * math.Pi * freq / rate

	// normal equations for the 3-parameter basis
	var ss, cc, sc, s1, c1 float64
	var ys, yc, y1 float64
	for i := range n {
		s := math.Sin(w * float64(i))
		c := math.Cos(w * float64(i))
		ss += s * s
		cc += c * c
		sc += s * c
		s1 += s
		c1 += c
		ys += y[i] * s
		yc += y[i] * c
		y1 += y[i]
	}
	nn := float64(n)

	// solve the 3x3 system by Cramer's rule
	det := ss*(cc*nn-c1*c1) - sc*(sc*nn-c1*s1) + s1*(sc*c1-cc*s1)
	if det == 0 {
		return 0, math.Inf(-1)
	}
	a := (ys*(cc*nn-c1*c1) - sc*(yc*nn-c1*y1) + s1*(yc*c1-cc*y1)) / det
	b := (ss*(yc*nn-y1*c1) - ys*(sc*nn-c1*s1) + s1*(sc*y1-yc*s1)) / det
	d := (ss*(cc*y1-yc*c1) - sc*(sc*y1-ys*c1) + ys*(sc*c1-cc*s1)) / det

	var sigPow, resPow float64
	for i := range n {
		fit := a*math.Sin(w*float64(i)) + b*math.Cos(w*float64(i)) + d
		res := y[i] - fit
		sigPow += fit * fit
		resPow += res * res
	}
	if resPow == 0 {
		return math.Hypot(a, b), math.Inf(1)
	}
	return math.Hypot(a, b), 10 * math.Log10(sigPow/resPow)
}

// ToneLevel measures the amplitude of the component at freq Hz via a
// Hann-windowed FFT, scanning one bin either side of the nominal bin for
// the peak.
func ToneLevel(y []float64, freq, rate float64) float64 {
	n := len(y)
	windowed := make([]float64, n)
	var windowGain float64
	for i := range n {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowed[i] = y[i] * w
		windowGain += w
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, windowed)

	bin := int(math.Round(freq * float64(n) / rate))
	var peak float64
	for b := bin - 1; b <= bin+1; b++ {
		if b < 0 || b >= len(coeffs) {
			continue
		}
		if mag := cmplx.Abs(coeffs[b]); mag > peak {
			peak = mag
		}
	}
	return 2 * peak / windowGain
}

// AssertNoNaNOrInf verifies that no elements of s are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float32) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// PeakIndex returns the index of the element with the largest magnitude.
func PeakIndex(s []float32) int {
	idx := 0
	var peak float64
	for i, v := range s {
		if m := math.Abs(float64(v)); m > peak {
			peak = m
			idx = i
		}
	}
	return idx
}
