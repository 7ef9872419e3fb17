package filter

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odysseus654/vircadia/internal/simdops"
)

func TestWiden(t *testing.T) {
	tests := []struct {
		name      string
		up, down  int
		wantTaps  int
		wantCoefs int
		wantGain  float64
	}{
		{"unity", 1, 1, 96, 96, 1.0},
		{"upsampling keeps prototype", 160, 147, 96, 96 * 160, 1.0},
		{"cd to dat reversed", 147, 160, 105, 15360, 14112.0 / 15360.0},
		{"heavy decimation widens", 147, 320, 209, 30720, 14112.0 / 30720.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			numTaps, numCoefs, gain := widen(tc.up, tc.down, 1.0)
			assert.Equal(t, tc.wantTaps, numTaps)
			assert.Equal(t, tc.wantCoefs, numCoefs)
			assert.InDelta(t, tc.wantGain, gain, 1e-12)
		})
	}
}

func TestStepTableSumsToDownFactor(t *testing.T) {
	tests := []struct {
		up, down int
	}{
		{1, 1},
		{160, 147}, // 44.1k -> 48k
		{147, 160}, // 48k -> 44.1k
		{320, 147}, // 44.1k -> 96k
		{147, 320}, // 96k -> 44.1k
		{4, 1},     // 48k -> 192k
		{640, 639},
	}

	for _, tc := range tests {
		bank := NewRational(tc.up, tc.down, 1.0)

		require.Len(t, bank.StepTable, tc.up)
		sum := 0
		for _, s := range bank.StepTable {
			sum += s
		}
		assert.Equal(t, tc.down, sum, "up=%d down=%d", tc.up, tc.down)
	}
}

func TestRationalBankLayout(t *testing.T) {
	const up, down = 4, 1
	bank := NewRational(up, down, 1.0)
	require.Equal(t, PrototypeTaps, bank.NumTaps)
	require.Len(t, bank.Coefs, up*bank.NumTaps)

	// reproduce the expanded filter and check the stride-ordered, reversed
	// layout directly
	temp := make([]float64, bank.NumTaps*up)
	cubicInterpolate(prototypeFilter[:], temp, 1.0)

	for i := range up {
		phase := (i * down) % up
		for j := range bank.NumTaps {
			want := float32(temp[(bank.NumTaps-1-j)*up+phase])
			assert.Equal(t, want, bank.Coefs[i*bank.NumTaps+j], "phase %d tap %d", i, j)
		}
	}
}

func TestIrrationalBankSentinelRow(t *testing.T) {
	for _, down := range []int{200, 256, 300} {
		bank := NewIrrational(256, down, 1.0)
		numTaps := bank.NumTaps
		require.Len(t, bank.Coefs, (256+1)*numTaps, "down=%d", down)
		require.Nil(t, bank.StepTable)

		// last tap of phase 0 is zero by construction
		require.Zero(t, bank.Coefs[numTaps-1], "down=%d", down)

		// the sentinel row is phase 0 advanced by one input sample
		sentinel := bank.Coefs[256*numTaps:]
		assert.Zero(t, sentinel[0], "down=%d", down)
		for j := 1; j < numTaps; j++ {
			assert.Equal(t, bank.Coefs[j-1], sentinel[j], "down=%d tap %d", down, j)
		}
	}
}

func TestBankAlignment(t *testing.T) {
	for _, bank := range []*Bank{
		NewRational(160, 147, 1.0),
		NewIrrational(256, 278, 1.0),
	} {
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(bank.Coefs)))
		assert.Zero(t, addr%CoefAlign, "bank base address %#x", addr)
	}
}

func TestPhaseDCGainNearUnity(t *testing.T) {
	// The prototype has DC gain equal to its oversampling factor, so every
	// phase of a constructed bank should pass DC at roughly unity gain,
	// including banks widened for decimation.
	banks := []*Bank{
		NewRational(160, 147, 1.0),
		NewRational(147, 160, 1.0),
		NewIrrational(256, 417, 1.0),
	}

	for _, bank := range banks {
		for p := range bank.Phases {
			row := bank.Coefs[p*bank.NumTaps : (p+1)*bank.NumTaps]
			assert.InDelta(t, 1.0, float64(simdops.Sum(row)), 0.05,
				"phases=%d taps=%d phase=%d", bank.Phases, bank.NumTaps, p)
		}
	}
}

func TestPrototypeTable(t *testing.T) {
	require.Len(t, prototypeFilter[:], PrototypeCoefs)

	// first coefficient anchors the zero-tap invariant the irrational
	// sentinel row depends on
	assert.Zero(t, prototypeFilter[0])

	// oversampled unity-gain lowpass: coefficients sum to the phase count
	var sum float64
	for _, c := range prototypeFilter {
		sum += float64(c)
	}
	assert.InDelta(t, float64(PrototypePhases), sum, 0.05)
}
