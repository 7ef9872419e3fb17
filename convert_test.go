package audiosrc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name              string
		in, out, channels int
	}{
		{"zero input rate", 0, 48000, 1},
		{"zero output rate", 48000, 0, 1},
		{"negative rate", -44100, 48000, 1},
		{"zero channels", 44100, 48000, 0},
		{"too many channels", 44100, 48000, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.in, tc.out, tc.channels)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := NewWithConfig(nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	r, err := New(44100, 48000, 2)
	require.NoError(t, err)
	assert.Equal(t, 44100, r.InputRate())
	assert.Equal(t, 48000, r.OutputRate())
	assert.Equal(t, 2, r.Channels())
	assert.Equal(t, 95, r.Latency())
}

func TestProcessFloatBufferChecks(t *testing.T) {
	r, err := New(44100, 48000, 1)
	require.NoError(t, err)

	in := [][]float32{make([]float32, 100)}

	_, err = r.ProcessFloat(in, [][]float32{make([]float32, 10)}, 100)
	require.ErrorIs(t, err, ErrBufferTooSmall)

	_, err = r.ProcessFloat([][]float32{make([]float32, 50)},
		[][]float32{make([]float32, 200)}, 100)
	require.ErrorIs(t, err, ErrBufferTooSmall)

	_, err = r.ProcessFloat(in, [][]float32{make([]float32, 200), make([]float32, 200)}, 100)
	require.ErrorIs(t, err, ErrInvalidConfig)

	n, err := r.ProcessFloat(in, [][]float32{make([]float32, r.MaxOutput(100))}, 100)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, r.MinOutput(100))
}

func TestConvertInputScaling(t *testing.T) {
	r, err := New(48000, 48000, 2)
	require.NoError(t, err)

	input := []int16{32767, -32768, 0, 16384, -16384, 8192}
	r.convertInput(input, 3)

	assert.InDelta(t, 32767.0/32768.0, float64(r.inputs[0][0]), 1e-7)
	assert.InDelta(t, -1.0, float64(r.inputs[1][0]), 1e-7)
	assert.Zero(t, r.inputs[0][1])
	assert.InDelta(t, 0.5, float64(r.inputs[1][1]), 1e-7)
	assert.InDelta(t, -0.5, float64(r.inputs[0][2]), 1e-7)
	assert.InDelta(t, 0.25, float64(r.inputs[1][2]), 1e-7)
}

func TestConvertOutputSaturation(t *testing.T) {
	r, err := New(48000, 48000, 1)
	require.NoError(t, err)

	r.outputs[0][0] = 2.0
	r.outputs[0][1] = -2.0
	r.outputs[0][2] = 0.5
	r.outputs[0][3] = 1.0 // one past the largest positive code

	out := make([]int16, 4)
	r.convertOutput(out, 4)

	assert.Equal(t, int16(32767), out[0])
	assert.Equal(t, int16(-32768), out[1])
	assert.Equal(t, int16(16384), out[2])
	assert.Equal(t, int16(32767), out[3])
}

func TestConvertOutputTruncatesWithoutDither(t *testing.T) {
	r, err := New(48000, 48000, 1)
	require.NoError(t, err)

	r.outputs[0][0] = 100.7 / 32768.0
	r.outputs[0][1] = -100.7 / 32768.0

	out := make([]int16, 2)
	r.convertOutput(out, 2)

	assert.Equal(t, int16(100), out[0])
	assert.Equal(t, int16(-100), out[1])
}

func TestDitherStatistics(t *testing.T) {
	r, err := NewWithConfig(&Config{
		InputRate:  48000,
		OutputRate: 48000,
		Channels:   1,
		Dither:     true,
	})
	require.NoError(t, err)

	// a value exactly between two codes dithers to both; TPDF noise of one
	// LSB keeps codes within two steps and the mean unbiased
	const target = 100.5
	const rounds = 40

	var sum float64
	count := 0
	out := make([]int16, BlockFrames)
	for range rounds {
		for i := range BlockFrames {
			r.outputs[0][i] = target / 32768.0
		}
		r.convertOutput(out, BlockFrames)
		for _, v := range out {
			assert.GreaterOrEqual(t, v, int16(99))
			assert.LessOrEqual(t, v, int16(102))
			sum += float64(v)
			count++
		}
	}

	assert.InDelta(t, target, sum/float64(count), 0.1)
}

func TestRenderContinuityAcrossCalls(t *testing.T) {
	// Feeding the int16 path in two calls must match one call bit-exactly;
	// Render chunks internally but the phase carries over.
	sine := make([]int16, 2000)
	for i := range sine {
		sine[i] = int16(10000 * math.Sin(2*math.Pi*float64(i)/44))
	}

	r1, err := New(44100, 48000, 1)
	require.NoError(t, err)
	whole := make([]int16, r1.MaxOutput(2000))
	n1 := r1.Render(sine, whole, 2000)

	r2, err := New(44100, 48000, 1)
	require.NoError(t, err)
	split := make([]int16, r2.MaxOutput(2000))
	na := r2.Render(sine[:700], split, 700)
	nb := r2.Render(sine[700:], split[na:], 1300)

	require.Equal(t, n1, na+nb)
	assert.Equal(t, whole[:n1], split[:n1])
}
