// Command resample-wav resamples 16-bit PCM WAV files to a target rate.
//
// Usage:
//
//	resample-wav -rate 48000 input.wav output.wav
//	resample-wav -rate 16000 -dither speech.wav speech_16k.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	audiosrc "github.com/odysseus654/vircadia"
)

const (
	// frames read from the decoder per loop iteration
	chunkFrames = 8192

	bitDepth16      = 16
	wavFormatPCM    = 1
	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", audiosrc.RateDAT, "Target sample rate in Hz (e.g. 16000, 44100, 48000)")
	dither := flag.Bool("dither", false, "Apply TPDF dither to the 16-bit output")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	stats, err := resampleWAV(args[0], args[1], *rate, *dither, *verbose)
	if err != nil {
		return err
	}

	fmt.Printf("Resampled %s -> %s\n", args[0], args[1])
	fmt.Printf("  %d Hz -> %d Hz (%d channels)\n", stats.inputRate, stats.outputRate, stats.channels)
	fmt.Printf("  %d frames -> %d frames\n", stats.inputFrames, stats.outputFrames)
	return nil
}

type resampleStats struct {
	inputRate    int
	outputRate   int
	channels     int
	inputFrames  int64
	outputFrames int64
}

func resampleWAV(inputPath, outputPath string, targetRate int, dither, verbose bool) (*resampleStats, error) {
	inputFile, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = inputFile.Close() }()

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", inputPath)
	}
	format := decoder.Format()
	if int(decoder.BitDepth) != bitDepth16 {
		return nil, fmt.Errorf("unsupported bit depth %d: only 16-bit PCM input is supported", decoder.BitDepth)
	}
	if format.NumChannels > audiosrc.MaxChannels {
		return nil, fmt.Errorf("unsupported channel count %d", format.NumChannels)
	}
	if format.SampleRate == targetRate {
		return nil, fmt.Errorf("input already at target rate %d Hz", targetRate)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, decoder.BitDepth)
	}

	src, err := audiosrc.NewWithConfig(&audiosrc.Config{
		InputRate:  format.SampleRate,
		OutputRate: targetRate,
		Channels:   format.NumChannels,
		Dither:     dither,
	})
	if err != nil {
		return nil, err
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = outputFile.Close() }()

	encoder := wav.NewEncoder(outputFile, targetRate, bitDepth16, format.NumChannels, wavFormatPCM)

	stats := &resampleStats{
		inputRate:  format.SampleRate,
		outputRate: targetRate,
		channels:   format.NumChannels,
	}

	channels := format.NumChannels
	intBuf := &audio.IntBuffer{
		Format: format,
		Data:   make([]int, chunkFrames*channels),
	}
	pcmIn := make([]int16, chunkFrames*channels)
	pcmOut := make([]int16, src.MaxOutput(chunkFrames)*channels)
	outData := make([]int, 0, len(pcmOut))

	for {
		n, err := decoder.PCMBuffer(intBuf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}
		frames := n / channels

		narrowSamples(intBuf.Data[:n], pcmIn)
		produced := src.Render(pcmIn[:n], pcmOut, frames)

		outData = widenSamples(pcmOut[:produced*channels], outData[:0])
		if err := encoder.Write(&audio.IntBuffer{
			Format: &audio.Format{NumChannels: channels, SampleRate: targetRate},
			Data:   outData,
		}); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		stats.inputFrames += int64(frames)
		stats.outputFrames += int64(produced)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize output: %w", err)
	}
	return stats, nil
}
