package main

// narrowSamples converts decoder ints to int16 PCM, saturating values that
// stray outside the 16-bit range.
func narrowSamples(src []int, dst []int16) {
	for i, v := range src {
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		dst[i] = int16(v)
	}
}

// widenSamples converts int16 PCM back to the encoder's int samples,
// appending to dst.
func widenSamples(src []int16, dst []int) []int {
	for _, v := range src {
		dst = append(dst, int(v))
	}
	return dst
}
