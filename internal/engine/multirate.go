// Package engine implements the multirate filtering core: a polyphase FIR
// convolution driven by a Q32.32 fixed-point phase accumulator, with
// per-channel history buffers for streaming continuity.
//
// Two modes exist. Rational mode reduces the rate pair by its gcd and walks
// a precomputed step table, one bank row per output. Irrational mode keeps
// the phase in the low word of the accumulator and linearly interpolates
// coefficients between adjacent bank rows, so the ratio need not reduce to a
// small fraction. The accumulator makes phase arithmetic exact: there is no
// cumulative float drift no matter how many samples flow through.
package engine

import (
	"github.com/odysseus654/vircadia/internal/filter"
	"github.com/odysseus654/vircadia/internal/simdops"
)

const (
	phaseBits = 8

	// Phases is the phase count of irrational-mode banks.
	Phases = 1 << phaseBits

	fracBits = 32 - phaseBits
	fracMask = (1 << fracBits) - 1

	qfracToFloat = 1.0 / (1 << fracBits)

	// MaxRationalPhases is the largest reduced upsampling factor handled in
	// rational mode; above it the bank would outgrow cache and irrational
	// mode takes over.
	MaxRationalPhases = 640

	// MaxChannels is the number of channels the filter kernels support.
	MaxChannels = 2
)

// Multirate converts a stream between two fixed sample rates. One instance
// is owned by one producer-consumer and must not be called concurrently;
// the coefficient bank is immutable and shareable, the accumulator, phase
// index and history buffers are not.
type Multirate struct {
	channels   int
	upFactor   int
	downFactor int

	bank       *filter.Bank
	numTaps    int
	numHistory int

	// offset is the signed Q32.32 phase accumulator: the high word is the
	// integer input position (briefly negative during rebasing), the low
	// word the fractional position. step is the per-output advance in
	// irrational mode and zero in rational mode, where the step table and
	// phase index drive the walk instead.
	offset int64
	step   int64
	phase  int

	history [MaxChannels][]float32
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// New builds a converter between inputRate and outputRate for the given
// channel count. Arguments must already be validated.
func New(inputRate, outputRate, channels int) *Multirate {
	// Reduce to the smallest rational fraction.
	divisor := gcd(inputRate, outputRate)
	up := outputRate / divisor
	down := inputRate / divisor

	// If the number of phases is too large, use irrational mode.
	var step int64
	if up > MaxRationalPhases {
		up = Phases
		down = int(int64(Phases) * int64(inputRate) / int64(outputRate))
		step = (int64(inputRate) << 32) / int64(outputRate)
	}

	var bank *filter.Bank
	if step == 0 {
		bank = filter.NewRational(up, down, 1.0)
	} else {
		bank = filter.NewIrrational(up, down, 1.0)
	}

	m := &Multirate{
		channels:   channels,
		upFactor:   up,
		downFactor: down,
		bank:       bank,
		numTaps:    bank.NumTaps,
		numHistory: bank.NumTaps - 1,
		step:       step,
	}
	for c := range channels {
		m.history[c] = make([]float32, 2*m.numHistory)
	}
	return m
}

// filter1 runs the mono kernel over inputFrames virtual input positions,
// returning the number of outputs produced. input must extend numTaps-1
// frames past inputFrames so every window is valid.
func (m *Multirate) filter1(input, output []float32, inputFrames int) int {
	outputFrames := 0
	numTaps := m.numTaps
	coefs := m.bank.Coefs

	if m.step == 0 { // rational
		stepTable := m.bank.StepTable
		phase := m.phase
		i := int(m.offset >> 32)

		for i < inputFrames {
			c := coefs[phase*numTaps : (phase+1)*numTaps]

			output[outputFrames] = simdops.DotProduct(input[i:i+numTaps], c)
			outputFrames++

			i += stepTable[phase]
			if phase++; phase == m.upFactor {
				phase = 0
			}
		}
		m.phase = phase
		m.offset = int64(i-inputFrames) << 32

	} else { // irrational
		offset := m.offset
		step := m.step

		for offset>>32 < int64(inputFrames) {
			i := int(offset >> 32)
			f := uint32(offset)

			p := int(f >> fracBits)
			frac := float32(f&fracMask) * qfracToFloat

			c0 := coefs[p*numTaps : (p+1)*numTaps]
			c1 := coefs[(p+1)*numTaps : (p+2)*numTaps]

			output[outputFrames] = simdops.InterpDot(input[i:i+numTaps], c0, c1, frac)
			outputFrames++

			offset += step
		}
		m.offset = offset - int64(inputFrames)<<32
	}

	return outputFrames
}

// filter2 is the stereo kernel: two accumulators per output with a shared
// coefficient fetch.
func (m *Multirate) filter2(input0, input1, output0, output1 []float32, inputFrames int) int {
	outputFrames := 0
	numTaps := m.numTaps
	coefs := m.bank.Coefs

	if m.step == 0 { // rational
		stepTable := m.bank.StepTable
		phase := m.phase
		i := int(m.offset >> 32)

		for i < inputFrames {
			c := coefs[phase*numTaps : (phase+1)*numTaps]

			acc0, acc1 := simdops.DotProduct2(input0[i:i+numTaps], input1[i:i+numTaps], c)
			output0[outputFrames] = acc0
			output1[outputFrames] = acc1
			outputFrames++

			i += stepTable[phase]
			if phase++; phase == m.upFactor {
				phase = 0
			}
		}
		m.phase = phase
		m.offset = int64(i-inputFrames) << 32

	} else { // irrational
		offset := m.offset
		step := m.step

		for offset>>32 < int64(inputFrames) {
			i := int(offset >> 32)
			f := uint32(offset)

			p := int(f >> fracBits)
			frac := float32(f&fracMask) * qfracToFloat

			c0 := coefs[p*numTaps : (p+1)*numTaps]
			c1 := coefs[(p+1)*numTaps : (p+2)*numTaps]

			acc0, acc1 := simdops.InterpDot2(input0[i:i+numTaps], input1[i:i+numTaps], c0, c1, frac)
			output0[outputFrames] = acc0
			output1[outputFrames] = acc1
			outputFrames++

			offset += step
		}
		m.offset = offset - int64(inputFrames)<<32
	}

	return outputFrames
}

// ProcessFloat resamples inputFrames deinterleaved frames into outputs and
// returns the number of output frames produced. Each input slice must hold
// at least inputFrames samples and each output slice at least
// MaxOutput(inputFrames).
//
// The first numTaps-1 input samples of the block double as the window tail
// for the region past the history buffer, so the two filter invocations
// consume exactly inputFrames positions between them with no discontinuity.
func (m *Multirate) ProcessFloat(inputs, outputs [][]float32, inputFrames int) int {
	outputFrames := 0

	nh := min(m.numHistory, inputFrames) // frames from the history buffer
	ni := inputFrames - nh               // frames from the remaining input

	if m.channels == 1 {
		h0 := m.history[0]

		// refill history buffer
		copy(h0[m.numHistory:m.numHistory+nh], inputs[0][:nh])

		// process history buffer
		outputFrames += m.filter1(h0, outputs[0], nh)

		// process remaining input
		if ni > 0 {
			outputFrames += m.filter1(inputs[0], outputs[0][outputFrames:], ni)
		}

		// shift history buffer
		if ni > 0 {
			copy(h0[:m.numHistory], inputs[0][ni:ni+m.numHistory])
		} else {
			copy(h0[:m.numHistory], h0[nh:nh+m.numHistory])
		}

	} else {
		h0, h1 := m.history[0], m.history[1]

		copy(h0[m.numHistory:m.numHistory+nh], inputs[0][:nh])
		copy(h1[m.numHistory:m.numHistory+nh], inputs[1][:nh])

		outputFrames += m.filter2(h0, h1, outputs[0], outputs[1], nh)

		if ni > 0 {
			outputFrames += m.filter2(inputs[0], inputs[1],
				outputs[0][outputFrames:], outputs[1][outputFrames:], ni)
		}

		if ni > 0 {
			copy(h0[:m.numHistory], inputs[0][ni:ni+m.numHistory])
			copy(h1[:m.numHistory], inputs[1][ni:ni+m.numHistory])
		} else {
			copy(h0[:m.numHistory], h0[nh:nh+m.numHistory])
			copy(h1[:m.numHistory], h1[nh:nh+m.numHistory])
		}
	}

	return outputFrames
}

// Reset returns the converter to its initial state: zero phase, empty
// history.
func (m *Multirate) Reset() {
	m.offset = 0
	m.phase = 0
	for c := range m.channels {
		clear(m.history[c])
	}
}

// MinOutput returns the minimum output frames produced by inputFrames.
func (m *Multirate) MinOutput(inputFrames int) int {
	if m.step == 0 {
		return int(int64(inputFrames) * int64(m.upFactor) / int64(m.downFactor))
	}
	return int((int64(inputFrames) << 32) / m.step)
}

// MaxOutput returns the maximum output frames produced by inputFrames.
func (m *Multirate) MaxOutput(inputFrames int) int {
	if m.step == 0 {
		return int((int64(inputFrames)*int64(m.upFactor) + int64(m.downFactor) - 1) / int64(m.downFactor))
	}
	return int(((int64(inputFrames) << 32) + m.step - 1) / m.step)
}

// MinInput returns the minimum input frames that produce at least
// outputFrames.
func (m *Multirate) MinInput(outputFrames int) int {
	if m.step == 0 {
		return int((int64(outputFrames)*int64(m.downFactor) + int64(m.upFactor) - 1) / int64(m.upFactor))
	}
	return int((int64(outputFrames)*m.step + 0xffffffff) >> 32)
}

// MaxInput returns the maximum input frames that produce at most
// outputFrames.
func (m *Multirate) MaxInput(outputFrames int) int {
	if m.step == 0 {
		return int(int64(outputFrames) * int64(m.downFactor) / int64(m.upFactor))
	}
	return int((int64(outputFrames) * m.step) >> 32)
}

// Rational reports whether the converter runs in rational mode.
func (m *Multirate) Rational() bool { return m.step == 0 }

// UpFactor returns the phase count of the bank.
func (m *Multirate) UpFactor() int { return m.upFactor }

// DownFactor returns the decimation factor (in irrational mode, the integer
// part of the Q32.32 step times the phase count).
func (m *Multirate) DownFactor() int { return m.downFactor }

// NumTaps returns the per-phase filter length.
func (m *Multirate) NumTaps() int { return m.numTaps }

// StepTable returns the rational-mode step table, nil in irrational mode.
func (m *Multirate) StepTable() []int { return m.bank.StepTable }
