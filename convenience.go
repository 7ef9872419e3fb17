package audiosrc

// Common sample rates for convenience constructors.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000

	// RateHiRes192 is the very high resolution 4x DAT sample rate.
	RateHiRes192 = 192000

	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000

	// RateVoIP is the VoIP wideband sample rate.
	RateVoIP = 16000
)

// NewCDtoDAT creates a resampler for CD (44.1kHz) to DAT (48kHz)
// conversion, one of the most common professional audio conversions.
func NewCDtoDAT(channels int) (*Resampler, error) {
	return New(RateCD, RateDAT, channels)
}

// NewDATtoCD creates a resampler for DAT (48kHz) to CD (44.1kHz)
// conversion.
func NewDATtoCD(channels int) (*Resampler, error) {
	return New(RateDAT, RateCD, channels)
}

// NewMonoVoIP creates a mono resampler from the given rate to 16kHz
// wideband.
func NewMonoVoIP(inputRate int) (*Resampler, error) {
	return New(inputRate, RateVoIP, 1)
}
