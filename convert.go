package audiosrc

const (
	int16ToFloat = 1.0 / 32768.0
	floatToInt16 = 32768.0

	// One LSB of dither amplitude in the scaled int16 domain.
	ditherScale = 1.0 / 65536.0

	int16Max = 32767.0
	int16Min = -32768.0
)

// rand16 draws 16 uniform bits from the dither LCG (Marsaglia 69069).
func (r *Resampler) rand16() int32 {
	r.rz = r.rz*69069 + 1
	return int32(r.rz >> 16)
}

// convertInput deinterleaves numFrames of int16 PCM into the float
// conversion buffers, scaled to nominal [-1, 1).
func (r *Resampler) convertInput(input []int16, numFrames int) {
	channels := r.config.Channels
	for c := range channels {
		buf := r.inputs[c]
		for i := range numFrames {
			buf[i] = float32(input[channels*i+c]) * int16ToFloat
		}
	}
}

// convertOutput interleaves numFrames from the float conversion buffers
// into int16 PCM with saturation. Without dither, narrowing truncates
// toward zero; with dither, TPDF noise of one LSB is added from two
// independent uniform draws and the result is rounded to nearest.
func (r *Resampler) convertOutput(output []int16, numFrames int) {
	channels := r.config.Channels
	dither := r.config.Dither
	for i := range numFrames {
		for c := range channels {
			f := r.outputs[c][i] * floatToInt16

			if dither {
				r0 := r.rand16()
				r1 := r.rand16()
				f += float32(r0-r1) * ditherScale

				if f < 0 {
					f -= 0.5
				} else {
					f += 0.5
				}
			}

			// saturate
			if f > int16Max {
				f = int16Max
			}
			if f < int16Min {
				f = int16Min
			}

			output[channels*i+c] = int16(f)
		}
	}
}
