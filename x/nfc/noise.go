package nfc

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oussetg/nfcsim/x/scatter"
)

// AddNoise adds centered, additive uniform noise: Y' = Y + noiseLevel*(U -
// 0.5), U ~ Uniform[0,1). rng is never the global math/rand source; tests
// and callers that need reproducible noise pass a seeded *rand.Rand. A nil
// rng gets a fresh source seeded from the current time, so two calls with
// rng == nil are not expected to agree.
func AddNoise(signal scatter.Scatter, noiseLevel float64, rng *rand.Rand) (scatter.Scatter, error) {
	if signal.Len() == 0 {
		return scatter.Scatter{}, fmt.Errorf("%w: signal cannot be empty", ErrInvalidArgument)
	}
	if noiseLevel < 0 || noiseLevel > 1 {
		return scatter.Scatter{}, fmt.Errorf("%w: noise level must be in [0,1]", ErrInvalidArgument)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	noisy := scatter.New(signal.Len())
	for i := 0; i < signal.Len(); i++ {
		noisy.SetX(i, signal.X(i))
		noisy.SetY(i, signal.Y(i)+noiseLevel*(rng.Float64()-0.5))
	}
	return noisy, nil
}
