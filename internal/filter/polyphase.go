package filter

// Prototype returns the embedded prototype filter coefficients. The slice
// aliases the table and must be treated as read-only.
func Prototype() []float32 { return prototypeFilter[:] }

// Bank is an immutable polyphase coefficient bank.
//
// Coefs is phase-major: phase p occupies Coefs[p*NumTaps : (p+1)*NumTaps],
// with taps stored in reverse so convolution runs as a forward dot product.
// The backing array is CoefAlign-byte aligned and must not be mutated after
// construction; a Bank may be shared read-only across goroutines.
type Bank struct {
	Coefs   []float32
	NumTaps int
	Phases  int

	// StepTable holds the input-index increment after each output sample.
	// Rational banks only; nil for irrational banks.
	StepTable []int
}

// widen lowers the filter cutoff by downFactor/upFactor when decimating,
// using the time-scaling property of the Fourier transform, and compensates
// the passband gain accordingly. It returns the per-phase tap count, the
// total interpolated coefficient count and the adjusted gain.
func widen(upFactor, downFactor int, gain float64) (numTaps, numCoefs int, adjGain float64) {
	numTaps = PrototypeTaps
	numCoefs = numTaps * upFactor
	adjGain = gain

	if downFactor > upFactor {
		oldCoefs := numCoefs
		numCoefs = int(int64(oldCoefs) * int64(downFactor) / int64(upFactor))
		numTaps = (numCoefs + upFactor - 1) / upFactor
		adjGain *= float64(oldCoefs) / float64(numCoefs)
	}
	return numTaps, numCoefs, adjGain
}

// NewRational builds a bank with upFactor phases ordered by use: output i
// convolves with phase (i*downFactor) mod upFactor, so rows are laid out in
// that stride order and the engine walks them sequentially. The step table
// gives the input advance after each output.
func NewRational(upFactor, downFactor int, gain float64) *Bank {
	numTaps, numCoefs, gain := widen(upFactor, downFactor, gain)
	numPhases := upFactor

	temp := make([]float64, numTaps*numPhases)
	cubicInterpolate(prototypeFilter[:], temp[:numCoefs], gain)

	coefs := alignedFloats(numTaps * numPhases)
	for i := range numPhases {
		phase := (i * downFactor) % upFactor
		for j := range numTaps {
			coefs[i*numTaps+j] = float32(temp[(numTaps-1-j)*numPhases+phase])
		}
	}

	stepTable := make([]int, numPhases)
	for i := range numPhases {
		stepTable[i] = int(int64(i+1)*int64(downFactor)/int64(upFactor) -
			int64(i)*int64(downFactor)/int64(upFactor))
	}

	return &Bank{
		Coefs:     coefs,
		NumTaps:   numTaps,
		Phases:    numPhases,
		StepTable: stepTable,
	}
}

// NewIrrational builds a bank with upFactor phases in natural fractional-delay
// order plus one sentinel phase, so linear coefficient interpolation between
// phase p and p+1 never indexes out of bounds.
func NewIrrational(upFactor, downFactor int, gain float64) *Bank {
	numTaps, numCoefs, gain := widen(upFactor, downFactor, gain)
	numPhases := upFactor

	temp := make([]float64, numTaps*numPhases)
	cubicInterpolate(prototypeFilter[:], temp[:numCoefs], gain)

	coefs := alignedFloats(numTaps * (numPhases + 1))
	for phase := range numPhases {
		for j := range numTaps {
			coefs[phase*numTaps+j] = float32(temp[(numTaps-1-j)*numPhases+phase])
		}
	}

	// By construction, the last tap of the first phase must be zero.
	if coefs[numTaps-1] != 0 {
		panic("filter: last tap of phase 0 is nonzero")
	}

	// So the sentinel phase is just the first, shifted by one sample:
	// interpolating between the last real phase and the sentinel continues
	// the coefficient surface into the next input position.
	coefs[numPhases*numTaps] = 0
	for j := 1; j < numTaps; j++ {
		coefs[numPhases*numTaps+j] = coefs[j-1]
	}

	return &Bank{
		Coefs:   coefs,
		NumTaps: numTaps,
		Phases:  numPhases,
	}
}
