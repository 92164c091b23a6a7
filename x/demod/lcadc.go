// Package demod implements a level-crossing ADC: an external observer of
// the waveforms the nfc package produces, used to spot-check a generated
// signal without decoding it.
package demod

import (
	"errors"
	"fmt"

	"github.com/oussetg/nfcsim/pkg/logger"
	"github.com/oussetg/nfcsim/x/scatter"
)

var ErrInvalidArgument = errors.New("demod: invalid argument")

// LCADC simulates a level-crossing ADC: it walks signal sample-by-sample
// and, each time consecutive samples straddle one of levels, emits a
// sample point (crossing X, that level). Only the first crossing level
// found at a given index is emitted, and skip further crossings are
// dropped afterward (skip == 0 keeps every crossing). An empty levels
// slice is not an error; it yields an empty output, mirroring a sampler
// wired to no comparators.
func LCADC(signal scatter.Scatter, levels []float64, skip uint) (scatter.Scatter, error) {
	if signal.Len() == 0 {
		return scatter.Scatter{}, fmt.Errorf("%w: signal cannot be empty", ErrInvalidArgument)
	}
	if len(levels) == 0 {
		logger.Log.Warn().Msg("no levels provided")
		return scatter.New(0), nil
	}

	samples := make([]scatter.Point, 0)
	skipRemaining := uint(0)

	for i := 1; i < signal.Len(); i++ {
		prevY := signal.Y(i - 1)
		curY := signal.Y(i)

		for _, level := range levels {
			if (prevY-level)*(curY-level) < 0 {
				if skipRemaining == 0 {
					skipRemaining = skip
					samples = append(samples, scatter.Point{X: signal.X(i), Y: level})
					break
				}
				skipRemaining--
			}
		}
	}

	out := scatter.New(len(samples))
	for i, p := range samples {
		out.SetX(i, p.X)
		out.SetY(i, p.Y)
	}
	return out, nil
}
