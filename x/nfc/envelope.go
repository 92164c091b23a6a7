package nfc

import (
	"fmt"

	"github.com/oussetg/nfcsim/x/math/filter/ma"
	"github.com/oussetg/nfcsim/x/scatter"
)

// SynthesizeEnvelope turns a sub-symbol stream into a time-domain envelope
// of length params.NumberOfPoints, X in [0, params.SimDuration) ns.
//
// The envelope is a boxcar average, over the last transTime samples, of
// the sub-symbol the sample's timestamp maps back to (mapped to amplitude
// 1 for a logical high, modDepth for a logical low). transTime spans two
// carrier periods, a crude first-order model of the antenna's finite
// bandwidth that smooths sharp 0<->1 transitions. The window only grows
// until it reaches transTime samples, so the first transTime-1 outputs
// average over a partially-filled window.
func SynthesizeEnvelope(subSymbols []byte, params SignalParameters) (scatter.Scatter, error) {
	if len(subSymbols) == 0 {
		return scatter.Scatter{}, fmt.Errorf("%w: sub-symbol stream cannot be empty", ErrInvalidArgument)
	}
	if params.SubModulation != NoSubModulation && params.SubModulation != OOK && params.SubModulation != BPSK {
		return scatter.Scatter{}, fmt.Errorf("%w: unrecognized sub-modulation %v", ErrInvalidArgument, params.SubModulation)
	}
	if params.BitRate == 0 {
		return scatter.Scatter{}, fmt.Errorf("%w: bit rate cannot be zero", ErrInvalidArgument)
	}
	if params.SubCarrierFreq == 0 && params.SubModulation != NoSubModulation {
		return scatter.Scatter{}, fmt.Errorf("%w: sub-carrier frequency cannot be zero", ErrInvalidArgument)
	}
	if params.SubCarrierFreq != 0 && params.SubCarrierFreq%params.BitRate != 0 {
		return scatter.Scatter{}, fmt.Errorf("%w: sub-carrier frequency must be a multiple of the bit rate", ErrPrecondition)
	}
	if params.ModulationIndex > 100 {
		return scatter.Scatter{}, fmt.Errorf("%w: modulation index cannot exceed 100", ErrInvalidArgument)
	}
	if params.SimDuration == 0 {
		return scatter.Scatter{}, fmt.Errorf("%w: simulation duration cannot be zero", ErrInvalidArgument)
	}
	if params.NumberOfPoints <= 0 {
		return scatter.Scatter{}, fmt.Errorf("%w: number of points must be positive", ErrInvalidArgument)
	}

	n := params.NumberOfPoints
	symbolDuration := symbolDurationNs(params)
	transTime := transitionSamples(params)
	modDepth := modulationDepth(params.ModulationIndex)

	envelope := scatter.New(n)
	smoother := ma.New(clampWindow(transTime))
	subLen := uint64(len(subSymbols))

	for i := 0; i < n; i++ {
		x := int64(uint64(i) * params.SimDuration / uint64(n))
		envelope.SetX(i, x)

		k := uint64(x) / symbolDuration
		if k >= subLen {
			k = subLen - 1
		}

		chip := modDepth
		if subSymbols[k] != 0 {
			chip = 1
		}
		envelope.SetY(i, smoother.Process(chip))
	}

	return envelope, nil
}

// clampWindow guards against a degenerate zero-length moving-average
// window (e.g. a very short simulation relative to the carrier period).
func clampWindow(transTime uint64) int {
	if transTime < 1 {
		return 1
	}
	return int(transTime)
}

// symbolDurationNs is the duration of one sub-symbol in nanoseconds.
func symbolDurationNs(params SignalParameters) uint64 {
	if params.SubModulation == NoSubModulation {
		return uint64(1e9) / uint64(params.BitRate) / 4
	}
	return uint64(1e9) / uint64(params.SubCarrierFreq) / 2
}

// transitionSamples is the sample count spanning two carrier periods, the
// boxcar smoothing window.
func transitionSamples(params SignalParameters) uint64 {
	perCarrierPeriod := uint64(2e9) / uint64(params.CarrierFreq)
	return perCarrierPeriod * uint64(params.NumberOfPoints) / params.SimDuration
}

// modulationDepth maps a logical low to this amplitude and a logical high
// to amplitude 1, so that (high-low)/(high+low) equals modulationIndex/100.
func modulationDepth(modulationIndex uint8) float64 {
	return float64(100-int(modulationIndex)) / float64(100+int(modulationIndex))
}
