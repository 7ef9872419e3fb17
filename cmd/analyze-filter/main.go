// Command analyze-filter prints the frequency response of the embedded
// prototype filter and the per-phase DC gain of constructed banks.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/odysseus654/vircadia/internal/filter"
)

const (
	// FFT length for the prototype response; well above the 3072
	// coefficients for fine frequency resolution
	fftSize = 16384

	// frequencies of interest, normalized so 1.0 is the Nyquist of the
	// critically sampled filter
	passbandEdge = 0.918
	nyquistEdge  = 1.000
	stopbandEdge = 1.010
)

func main() {
	up := flag.Int("up", 160, "Upsampling factor of the bank to inspect")
	down := flag.Int("down", 147, "Downsampling factor of the bank to inspect")
	flag.Parse()

	analyzePrototype()
	analyzeBank(*up, *down)
}

// analyzePrototype reports the prototype's magnitude response at the edges
// that define its quality: passband flatness and stopband rejection.
func analyzePrototype() {
	input := make([]float64, fftSize)
	proto := filter.Prototype()
	for i, c := range proto {
		input[i] = float64(c)
	}

	fft := fourier.NewFFT(fftSize)
	coeffs := fft.Coefficients(nil, input)

	// dc gain equals the oversampling factor; normalize it out
	dc := cmplx.Abs(coeffs[0])

	fmt.Println("=== Prototype filter response ===")
	fmt.Printf("coefficients: %d (taps=%d, oversample=%d)\n",
		len(proto), filter.PrototypeTaps, filter.PrototypePhases)
	fmt.Printf("dc gain: %.4f\n", dc)

	for _, edge := range []struct {
		name string
		freq float64
	}{
		{"passband edge", passbandEdge},
		{"nyquist", nyquistEdge},
		{"stopband edge", stopbandEdge},
	} {
		// the critically sampled filter's Nyquist sits at bin
		// fftSize/(2*oversample)
		bin := int(math.Round(edge.freq * fftSize / (2 * filter.PrototypePhases)))
		mag := cmplx.Abs(coeffs[bin]) / dc
		fmt.Printf("%-14s %.3f: %8.2f dB\n", edge.name, edge.freq, 20*math.Log10(mag))
	}
	fmt.Println()
}

// analyzeBank prints layout and per-phase DC gain statistics for a rational
// bank built from the given factors.
func analyzeBank(up, down int) {
	bank := filter.NewRational(up, down, 1.0)

	fmt.Printf("=== Rational bank %d/%d ===\n", up, down)
	fmt.Printf("phases: %d, taps per phase: %d\n", bank.Phases, bank.NumTaps)

	var minDC, maxDC, sumDC float64
	minDC = math.Inf(1)
	maxDC = math.Inf(-1)
	for p := range bank.Phases {
		var dc float64
		for _, c := range bank.Coefs[p*bank.NumTaps : (p+1)*bank.NumTaps] {
			dc += float64(c)
		}
		minDC = math.Min(minDC, dc)
		maxDC = math.Max(maxDC, dc)
		sumDC += dc
	}

	stepSum := 0
	for _, s := range bank.StepTable {
		stepSum += s
	}

	fmt.Printf("per-phase dc gain: min %.6f, max %.6f, mean %.6f\n",
		minDC, maxDC, sumDC/float64(bank.Phases))
	fmt.Printf("step table sum: %d (down factor %d)\n", stepSum, down)
}
