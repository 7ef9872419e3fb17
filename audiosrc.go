package audiosrc

import (
	"errors"
	"fmt"

	"github.com/odysseus654/vircadia/internal/engine"
)

const (
	// BlockFrames is the internal blocking size in frames, chosen so block
	// processing fits in L1 cache.
	BlockFrames = 1024

	// MaxChannels is the largest supported channel count.
	MaxChannels = engine.MaxChannels
)

// Common errors returned by the resampler.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid resampler configuration")

	// ErrBufferTooSmall indicates an undersized input or output buffer.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// Config holds resampler configuration.
type Config struct {
	// InputRate is the sample rate of input audio in Hz.
	InputRate int

	// OutputRate is the desired output sample rate in Hz.
	OutputRate int

	// Channels is the number of audio channels (1 or 2).
	Channels int

	// Dither enables TPDF dither on the int16 output path. Dither
	// decorrelates the quantization noise of the 16-bit truncation at the
	// cost of two PRNG draws per sample.
	Dither bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.InputRate <= 0 || c.OutputRate <= 0 {
		return fmt.Errorf("%w: sample rates must be positive", ErrInvalidConfig)
	}
	if c.Channels < 1 || c.Channels > MaxChannels {
		return fmt.Errorf("%w: channels must be 1 or %d", ErrInvalidConfig, MaxChannels)
	}
	return nil
}

// Resampler converts an audio stream between two fixed sample rates while
// keeping phase continuous across calls. Create one with New or
// NewWithConfig; one instance serves one stream and must not be called
// concurrently.
type Resampler struct {
	config Config
	engine *engine.Multirate

	// inputBlock is the per-call frame limit on the int16 path, such that
	// input and output are both guaranteed not to exceed BlockFrames.
	inputBlock int

	// format conversion buffers for the int16 path
	inputs  [][]float32
	outputs [][]float32

	// dither PRNG state
	rz uint32
}

// New creates a resampler converting inputRate to outputRate over the given
// number of channels (1 or 2).
func New(inputRate, outputRate, channels int) (*Resampler, error) {
	return NewWithConfig(&Config{
		InputRate:  inputRate,
		OutputRate: outputRate,
		Channels:   channels,
	})
}

// NewWithConfig creates a resampler from a full configuration.
func NewWithConfig(config *Config) (*Resampler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	m := engine.New(config.InputRate, config.OutputRate, config.Channels)

	r := &Resampler{
		config: *config,
		engine: m,
		rz:     1,
	}
	r.inputBlock = min(BlockFrames, m.MaxInput(BlockFrames))

	r.inputs = make([][]float32, config.Channels)
	r.outputs = make([][]float32, config.Channels)
	for c := range config.Channels {
		r.inputs[c] = make([]float32, BlockFrames)
		r.outputs[c] = make([]float32, BlockFrames)
	}

	return r, nil
}

// Render resamples inputFrames frames of interleaved 16-bit PCM from input
// into output, returning the number of output frames produced. The output
// slice must hold at least MaxOutput(inputFrames) frames. Input is consumed
// in blocks so that intermediate buffers never overflow, regardless of
// inputFrames.
func (r *Resampler) Render(input []int16, output []int16, inputFrames int) int {
	channels := r.config.Channels
	outputFrames := 0

	for inputFrames > 0 {
		ni := min(inputFrames, r.inputBlock)

		r.convertInput(input, ni)

		no := r.engine.ProcessFloat(r.inputs, r.outputs, ni)

		r.convertOutput(output, no)

		input = input[channels*ni:]
		output = output[channels*no:]
		inputFrames -= ni
		outputFrames += no
	}

	return outputFrames
}

// ProcessFloat resamples inputFrames frames of deinterleaved float32 audio
// from inputs into outputs, returning the number of output frames produced.
// One slice per channel; each output slice must hold at least
// MaxOutput(inputFrames) frames.
func (r *Resampler) ProcessFloat(inputs, outputs [][]float32, inputFrames int) (int, error) {
	if len(inputs) != r.config.Channels || len(outputs) != r.config.Channels {
		return 0, fmt.Errorf("%w: expected %d channel slices", ErrInvalidConfig, r.config.Channels)
	}
	need := r.engine.MaxOutput(inputFrames)
	for c := range r.config.Channels {
		if len(inputs[c]) < inputFrames {
			return 0, fmt.Errorf("%w: input channel %d holds %d of %d frames",
				ErrBufferTooSmall, c, len(inputs[c]), inputFrames)
		}
		if len(outputs[c]) < need {
			return 0, fmt.Errorf("%w: output channel %d holds %d of %d frames",
				ErrBufferTooSmall, c, len(outputs[c]), need)
		}
	}

	return r.engine.ProcessFloat(inputs, outputs, inputFrames), nil
}

// Reset clears all internal state: phase accumulator, history buffers and
// dither PRNG. The coefficient bank is untouched.
func (r *Resampler) Reset() {
	r.engine.Reset()
	r.rz = 1
}

// MinOutput returns the minimum output frames produced by inputFrames.
func (r *Resampler) MinOutput(inputFrames int) int { return r.engine.MinOutput(inputFrames) }

// MaxOutput returns the maximum output frames produced by inputFrames.
func (r *Resampler) MaxOutput(inputFrames int) int { return r.engine.MaxOutput(inputFrames) }

// MinInput returns the minimum input frames that produce at least
// outputFrames.
func (r *Resampler) MinInput(outputFrames int) int { return r.engine.MinInput(outputFrames) }

// MaxInput returns the maximum input frames that produce at most
// outputFrames.
func (r *Resampler) MaxInput(outputFrames int) int { return r.engine.MaxInput(outputFrames) }

// InputRate returns the configured input sample rate in Hz.
func (r *Resampler) InputRate() int { return r.config.InputRate }

// OutputRate returns the configured output sample rate in Hz.
func (r *Resampler) OutputRate() int { return r.config.OutputRate }

// Channels returns the configured channel count.
func (r *Resampler) Channels() int { return r.config.Channels }

// Latency returns the filter history depth in input frames: the delay
// between a sample entering the converter and its full contribution to the
// output window.
func (r *Resampler) Latency() int { return r.engine.NumTaps() - 1 }
