package nfc

import (
	"fmt"
	"math"

	"github.com/oussetg/nfcsim/x/scatter"
)

// MixCarrier multiplies an envelope by a fixed-phase sine carrier starting
// at 0: M[i].Y = E[i].Y * sin(2*pi*carrierFreq*E[i].X/1e9). The simulator
// assumes perfect amplitude modulation.
func MixCarrier(envelope scatter.Scatter, params SignalParameters) (scatter.Scatter, error) {
	if envelope.Len() == 0 {
		return scatter.Scatter{}, fmt.Errorf("%w: envelope cannot be empty", ErrInvalidArgument)
	}
	if params.CarrierFreq == 0 {
		return scatter.Scatter{}, fmt.Errorf("%w: carrier frequency cannot be zero", ErrInvalidArgument)
	}

	mixed := scatter.New(envelope.Len())
	omega := 2 * math.Pi * float64(params.CarrierFreq) / 1e9

	for i := 0; i < envelope.Len(); i++ {
		x := envelope.X(i)
		mixed.SetX(i, x)
		mixed.SetY(i, envelope.Y(i)*math.Sin(omega*float64(x)))
	}
	return mixed, nil
}
