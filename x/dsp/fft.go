// Package dsp analyzes a time-domain Scatter produced by the nfc package,
// turning it into a frequency-domain magnitude spectrum.
package dsp

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/oussetg/nfcsim/pkg/logger"
	"github.com/oussetg/nfcsim/x/scatter"
)

// Error taxonomy, mirroring the nfc package's.
var (
	ErrInvalidArgument = errors.New("dsp: invalid argument")
)

// isPowerOfTwo reports whether n is a positive power of two. The FFT below
// only requires a power-of-two length for the bit-reversal permutation to
// visit every index exactly once.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// AvgSamplingRate estimates the sampling rate (Hz) of a time serie whose X
// values are nanosecond timestamps, from the mean spacing between
// consecutive samples.
func AvgSamplingRate(timeSerie scatter.Scatter) (float64, error) {
	n := timeSerie.Len()
	if n < 2 {
		return 0, fmt.Errorf("%w: time serie needs at least 2 points", ErrInvalidArgument)
	}

	span := float64(timeSerie.X(n-1) - timeSerie.X(0))
	if span <= 0 {
		return 0, fmt.Errorf("%w: time serie X values must be strictly increasing", ErrInvalidArgument)
	}
	return float64(n-1) / span * 1e9, nil
}

// FFTCompute runs an iterative radix-2 FFT over timeSerie.Y and returns a
// Scatter of the same length whose Y holds the magnitude spectrum and
// whose X holds the signed frequency axis in Hz: indices below N/2 carry
// non-negative frequencies, indices from N/2 on carry the mirrored
// negative frequencies, exactly as the transform produces them. This is
// the raw two-sided spectrum, not an fftshift'ed one.
//
// timeSerie.Len() must be a power of two; a non-power-of-two length is
// logged as a warning but still processed, since the Cooley-Tukey
// butterfly below silently computes a partial, incorrect transform rather
// than crashing on it. Callers that need a hard failure should check
// length themselves before calling.
func FFTCompute(timeSerie scatter.Scatter) (scatter.Scatter, error) {
	n := timeSerie.Len()
	if n == 0 {
		return scatter.Scatter{}, fmt.Errorf("%w: time serie cannot be empty", ErrInvalidArgument)
	}
	if !isPowerOfTwo(n) {
		logger.Log.Warn().Int("length", n).Msg("fft input length should be a power of two")
	}

	logger.Log.Info().Msg("processing the fft")

	avgSamplingRate, err := AvgSamplingRate(timeSerie)
	if err != nil {
		return scatter.Scatter{}, fmt.Errorf("average sampling rate: %w", err)
	}

	x := make([]complex128, n)
	for i := 0; i < n; i++ {
		x[i] = complex(timeSerie.Y(i), 0)
	}
	fftIterative(x)

	freqSerie := scatter.New(n)
	for i := 0; i < n; i++ {
		var freqIndex int
		if i < n/2 {
			freqIndex = i
		} else {
			freqIndex = i - n
		}
		freqHz := int64(float64(freqIndex) * avgSamplingRate / float64(n))
		freqSerie.SetX(i, freqHz)
		freqSerie.SetY(i, cmplx.Abs(x[i]))
	}

	logger.Log.Info().Msg("fft successfully applied")
	return freqSerie.WithNames("Frequency (Hz)", "Magnitude"), nil
}

// fftIterative computes the in-place, iterative radix-2 Cooley-Tukey FFT
// of x. len(x) is assumed to be a power of two; a non-power-of-two length
// still runs to completion but does not produce a correct transform.
func fftIterative(x []complex128) {
	n := len(x)

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j &^= bit
		}
		j |= bit
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}

	// Butterfly passes.
	for length := 2; length <= n; length <<= 1 {
		angle := -2 * math.Pi / float64(length)
		wlen := cmplx.Exp(complex(0, angle))
		for i := 0; i+length <= n; i += length {
			w := complex(1, 0)
			half := length / 2
			for j := 0; j < half; j++ {
				u := x[i+j]
				t := w * x[i+j+half]
				x[i+j] = u + t
				x[i+j+half] = u - t
				w *= wlen
			}
		}
	}
}
