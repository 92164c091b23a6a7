package dsp

import (
	"errors"
	"math"
	"testing"

	"github.com/oussetg/nfcsim/x/scatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evenlySpaced(y []float64, spacingNs int64) scatter.Scatter {
	s := scatter.New(len(y))
	for i, v := range y {
		s.SetX(i, int64(i)*spacingNs)
		s.SetY(i, v)
	}
	return s
}

func TestFFTComputeEmptyInput(t *testing.T) {
	_, err := FFTCompute(scatter.New(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestFFTComputePreservesLength(t *testing.T) {
	y := make([]float64, 16)
	out, err := FFTCompute(evenlySpaced(y, 10))
	require.NoError(t, err)
	assert.Equal(t, 16, out.Len())
}

func TestFFTComputeOfZeroSignalIsZero(t *testing.T) {
	y := make([]float64, 8)
	out, err := FFTCompute(evenlySpaced(y, 10))
	require.NoError(t, err)
	for i := 0; i < out.Len(); i++ {
		assert.InDelta(t, 0.0, out.Y(i), 1e-9)
	}
}

func TestFFTComputeOfDCSignalConcentratesAtZeroFrequency(t *testing.T) {
	n := 8
	y := make([]float64, n)
	for i := range y {
		y[i] = 1
	}
	out, err := FFTCompute(evenlySpaced(y, 10))
	require.NoError(t, err)

	assert.InDelta(t, float64(n), out.Y(0), 1e-9)
	assert.Equal(t, int64(0), out.X(0))
	for i := 1; i < n; i++ {
		assert.InDelta(t, 0.0, out.Y(i), 1e-9)
	}
}

func TestFFTComputeSecondHalfIsNegativeFrequency(t *testing.T) {
	n := 16
	y := make([]float64, n)
	for i := range y {
		y[i] = math.Sin(2 * math.Pi * float64(i) / float64(n))
	}
	out, err := FFTCompute(evenlySpaced(y, 10))
	require.NoError(t, err)
	assert.Less(t, out.X(n-1), int64(0))
}

func TestAvgSamplingRateConstantSpacing(t *testing.T) {
	y := make([]float64, 5)
	s := evenlySpaced(y, 1000) // 1000 ns spacing -> 1e6 Hz
	rate, err := AvgSamplingRate(s)
	require.NoError(t, err)
	assert.InDelta(t, 1e6, rate, 1e-6)
}

func TestAvgSamplingRateTooFewPoints(t *testing.T) {
	_, err := AvgSamplingRate(scatter.New(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestFFTComputeNonPowerOfTwoStillRuns(t *testing.T) {
	y := make([]float64, 10)
	out, err := FFTCompute(evenlySpaced(y, 10))
	require.NoError(t, err)
	assert.Equal(t, 10, out.Len())
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, isPowerOfTwo(1))
	assert.True(t, isPowerOfTwo(2))
	assert.True(t, isPowerOfTwo(1024))
	assert.False(t, isPowerOfTwo(0))
	assert.False(t, isPowerOfTwo(-4))
	assert.False(t, isPowerOfTwo(100))
}
