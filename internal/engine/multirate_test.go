package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odysseus654/vircadia/internal/testutil"
)

func TestModeSelection(t *testing.T) {
	tests := []struct {
		name     string
		in, out  int
		rational bool
		up, down int
	}{
		{"unity", 48000, 48000, true, 1, 1},
		{"cd to dat", 44100, 48000, true, 160, 147},
		{"dat to cd", 48000, 44100, true, 147, 160},
		{"4x upsample", 48000, 192000, true, 4, 1},
		{"cd to hires", 44100, 96000, true, 320, 147},
		{"coprime pair", 44100, 48001, false, Phases, 256 * 44100 / 48001},
		{"downsample coprime", 48000, 44101, false, Phases, 256 * 48000 / 44101},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := New(tc.in, tc.out, 1)
			assert.Equal(t, tc.rational, m.Rational())
			assert.Equal(t, tc.up, m.UpFactor())
			assert.Equal(t, tc.down, m.DownFactor())
			if tc.rational {
				require.NotNil(t, m.StepTable())
			} else {
				require.Nil(t, m.StepTable())
			}
		})
	}
}

func TestStepTableSum(t *testing.T) {
	m := New(44100, 48000, 2)
	require.True(t, m.Rational())
	require.Equal(t, 160, m.UpFactor())

	sum := 0
	for _, s := range m.StepTable() {
		sum += s
	}
	assert.Equal(t, 147, sum)
	assert.Equal(t, m.DownFactor(), sum)
}

func TestTapWidening(t *testing.T) {
	assert.Equal(t, 96, New(48000, 48000, 1).NumTaps())
	assert.Equal(t, 96, New(44100, 48000, 1).NumTaps())
	assert.Equal(t, 105, New(48000, 44100, 1).NumTaps())
	assert.Equal(t, 209, New(96000, 44100, 1).NumTaps())
}

// run pushes the whole input through m in chunks of blockSize frames and
// returns the concatenated output.
func run(m *Multirate, input [][]float32, blockSize int) [][]float32 {
	channels := len(input)
	total := len(input[0])
	out := make([][]float32, channels)

	ins := make([][]float32, channels)
	outs := make([][]float32, channels)
	for pos := 0; pos < total; {
		n := min(blockSize, total-pos)
		for c := range channels {
			ins[c] = input[c][pos : pos+n]
			outs[c] = make([]float32, m.MaxOutput(n))
		}
		produced := m.ProcessFloat(ins, outs, n)
		for c := range channels {
			out[c] = append(out[c], outs[c][:produced]...)
		}
		pos += n
	}
	return out
}

func TestStreamingContinuity(t *testing.T) {
	// Splitting a stream at any frame boundary must produce bit-identical
	// output to processing it in one call.
	rates := []struct {
		name    string
		in, out int
	}{
		{"rational up", 44100, 48000},
		{"rational down", 48000, 44100},
		{"irrational up", 44100, 48001},
		{"irrational down", 96000, 44101},
	}
	blockSizes := []int{1, 37, 100, 1000}

	for _, rc := range rates {
		for _, channels := range []int{1, 2} {
			input := make([][]float32, channels)
			for c := range channels {
				input[c] = testutil.WhiteNoise(1000, 0.8, uint32(1+c))
			}

			whole := run(New(rc.in, rc.out, channels), input, 1000)

			for _, bs := range blockSizes {
				chunked := run(New(rc.in, rc.out, channels), input, bs)
				for c := range channels {
					require.Equal(t, whole[c], chunked[c],
						"%s ch=%d/%d block=%d", rc.name, c, channels, bs)
				}
			}
		}
	}
}

func TestZeroInputFrames(t *testing.T) {
	for _, rate := range []int{48000, 48001} {
		m := New(44100, rate, 1)
		input := [][]float32{testutil.Sine(500, 1000, 44100, 0.5)}

		reference := run(New(44100, rate, 1), input, 500)

		outs := [][]float32{nil}
		require.Zero(t, m.ProcessFloat([][]float32{{}}, outs, 0))

		// an empty call must not perturb subsequent output
		interleaved := run(m, input, 250)
		require.Equal(t, reference[0], interleaved[0], "rate=%d", rate)
	}
}

func TestInputSmallerThanHistory(t *testing.T) {
	// Blocks smaller than the history depth must still consume from the
	// history buffer correctly; block size 1 is the degenerate worst case
	// and is covered by TestStreamingContinuity. Here just verify counts.
	m := New(44100, 48000, 1)
	require.Greater(t, m.NumTaps()-1, 10)

	total := 0
	input := [][]float32{testutil.Sine(10, 1000, 44100, 0.5)}
	outs := [][]float32{make([]float32, m.MaxOutput(10))}
	for range 50 {
		total += m.ProcessFloat(input, outs, 10)
	}
	assert.InDelta(t, float64(m.MinOutput(500)), float64(total), 2)
}

func TestOutputCountBounds(t *testing.T) {
	rates := []struct{ in, out int }{
		{44100, 48000},
		{48000, 44100},
		{8000, 192000},
		{44100, 48001},
		{96000, 44101},
	}
	blockSizes := []int{1, 7, 128, 1024}

	for _, rc := range rates {
		for _, bs := range blockSizes {
			m := New(rc.in, rc.out, 1)
			ins := [][]float32{make([]float32, bs)}
			outs := [][]float32{make([]float32, m.MaxOutput(bs)+1)}

			totalIn, totalOut := 0, 0
			for range 100 {
				totalOut += m.ProcessFloat(ins, outs, bs)
				totalIn += bs
			}

			lo := m.MinOutput(totalIn) - 1
			hi := m.MaxOutput(totalIn) + 1
			assert.GreaterOrEqual(t, totalOut, lo, "%d->%d block=%d", rc.in, rc.out, bs)
			assert.LessOrEqual(t, totalOut, hi, "%d->%d block=%d", rc.in, rc.out, bs)
		}
	}
}

func TestOracleConsistency(t *testing.T) {
	for _, rc := range []struct{ in, out int }{
		{44100, 48000},
		{48000, 44100},
		{44100, 48001},
	} {
		m := New(rc.in, rc.out, 1)
		for _, frames := range []int{1, 10, 1024, 1 << 20} {
			assert.LessOrEqual(t, m.MinOutput(frames), m.MaxOutput(frames))
			assert.GreaterOrEqual(t, m.MinOutput(m.MinInput(frames)), frames,
				"%d->%d frames=%d", rc.in, rc.out, frames)
			assert.LessOrEqual(t, m.MaxOutput(m.MaxInput(frames)), frames,
				"%d->%d frames=%d", rc.in, rc.out, frames)
		}
	}
}

func TestUnityRatioPassthrough(t *testing.T) {
	// At 1:1 the converter is a plain FIR with near-flat passband: a sine
	// in is a sine out, with amplitude preserved to within the passband
	// ripple. The filter is minimum phase, so the delay is small but
	// fractional; fitting amplitude and phase separates the filter's
	// response from genuine distortion.
	m := New(48000, 48000, 1)
	require.True(t, m.Rational())

	input := [][]float32{testutil.Sine(4096, 1000, 48000, 0.5)}
	output := run(m, input, 1000)[0]
	require.Len(t, output, 4096)

	steady := testutil.ToFloat64(output[512:3584])
	amp, snr := testutil.FitSine(steady, 1000, 48000)

	assert.InDelta(t, 0.5, amp, 0.5*2e-3)
	assert.Greater(t, snr, 100.0)

	// residual against the fitted sine stays under 1e-4 of full scale
	assert.Less(t, 0.5/math.Pow(10, snr/20), 1e-4)
}

func TestResetRestoresInitialState(t *testing.T) {
	m := New(44100, 48001, 2)
	input := make([][]float32, 2)
	for c := range input {
		input[c] = testutil.WhiteNoise(600, 0.8, uint32(9+c))
	}

	first := run(m, input, 600)
	m.Reset()
	second := run(m, input, 600)

	for c := range input {
		require.Equal(t, first[c], second[c], "channel %d", c)
	}
}

func TestStereoMatchesTwoMonoInstances(t *testing.T) {
	// The stereo kernel shares the coefficient fetch but keeps independent
	// accumulators; each channel must equal the mono result exactly.
	left := testutil.Sine(800, 440, 44100, 0.7)
	right := testutil.WhiteNoise(800, 0.5, 77)

	stereo := run(New(44100, 48000, 2), [][]float32{left, right}, 320)
	monoL := run(New(44100, 48000, 1), [][]float32{left}, 320)
	monoR := run(New(44100, 48000, 1), [][]float32{right}, 320)

	require.Equal(t, monoL[0], stereo[0])
	require.Equal(t, monoR[0], stereo[1])
}

func BenchmarkFilterMonoRational(b *testing.B) {
	benchmarkFilter(b, 44100, 48000, 1)
}

func BenchmarkFilterStereoRational(b *testing.B) {
	benchmarkFilter(b, 44100, 48000, 2)
}

func BenchmarkFilterMonoIrrational(b *testing.B) {
	benchmarkFilter(b, 44100, 48001, 1)
}

func BenchmarkFilterStereoIrrational(b *testing.B) {
	benchmarkFilter(b, 44100, 48001, 2)
}

func benchmarkFilter(b *testing.B, inRate, outRate, channels int) {
	m := New(inRate, outRate, channels)
	const frames = 1024
	ins := make([][]float32, channels)
	outs := make([][]float32, channels)
	for c := range channels {
		ins[c] = testutil.WhiteNoise(frames, 0.8, uint32(3+c))
		outs[c] = make([]float32, m.MaxOutput(frames))
	}

	b.SetBytes(int64(frames * channels * 4))
	b.ResetTimer()
	for range b.N {
		m.ProcessFloat(ins, outs, frames)
	}
}
