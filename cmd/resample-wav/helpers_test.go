package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNarrowSamplesSaturates(t *testing.T) {
	src := []int{0, 100, -100, 40000, -40000, 32767, -32768}
	dst := make([]int16, len(src))
	narrowSamples(src, dst)

	assert.Equal(t, []int16{0, 100, -100, 32767, -32768, 32767, -32768}, dst)
}

func TestWidenSamplesRoundTrip(t *testing.T) {
	src := []int16{0, 1, -1, 32767, -32768}
	dst := widenSamples(src, nil)

	assert.Equal(t, []int{0, 1, -1, 32767, -32768}, dst)

	back := make([]int16, len(dst))
	narrowSamples(dst, back)
	assert.Equal(t, src, back)
}
