package nfc

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/oussetg/nfcsim/pkg/logger"
	"github.com/oussetg/nfcsim/x/scatter"
)

// CreateSignal chains Encoder -> SubCarrierModulator -> EnvelopeSynthesizer
// -> CarrierMixer -> NoiseAdder (when NoiseLevel != 0) and returns the
// final series. Each stage's output is an independently owned value; the
// pipeline does not retain references to intermediates once the next
// stage has consumed them, so there is nothing to release explicitly on
// any exit path: Go's garbage collector reclaims them once they fall out
// of scope. log may be nil, in which case the package logger is used; pass
// rng for deterministic noise in tests.
func CreateSignal(params SignalParameters, rng *rand.Rand, log *zerolog.Logger) (scatter.Scatter, error) {
	if log == nil {
		log = &logger.Log
	}

	log.Info().
		Int("payload_len", len(params.Payload)).
		Uint("bit_rate", params.BitRate).
		Str("encoding", params.Encoding.String()).
		Str("sub_modulation", params.SubModulation.String()).
		Uint("sub_carrier_freq", params.SubCarrierFreq).
		Uint("carrier_freq", params.CarrierFreq).
		Uint8("modulation_index", params.ModulationIndex).
		Float64("noise_level", params.NoiseLevel).
		Uint64("sim_duration", params.SimDuration).
		Int("number_of_points", params.NumberOfPoints).
		Msg("nfc signal generation parameters")

	symbols, err := Encode(params.Payload, params.Encoding)
	if err != nil {
		return scatter.Scatter{}, fmt.Errorf("encode: %w", err)
	}

	subSymbols, err := ModulateSubCarrier(symbols, params)
	if err != nil {
		return scatter.Scatter{}, fmt.Errorf("modulate sub-carrier: %w", err)
	}

	envelope, err := SynthesizeEnvelope(subSymbols, params)
	if err != nil {
		return scatter.Scatter{}, fmt.Errorf("synthesize envelope: %w", err)
	}

	mixed, err := MixCarrier(envelope, params)
	if err != nil {
		return scatter.Scatter{}, fmt.Errorf("mix carrier: %w", err)
	}

	if params.NoiseLevel == 0 {
		log.Info().Msg("skipping noise addition")
		log.Info().Msg("signal successfully generated")
		return mixed, nil
	}

	noisy, err := AddNoise(mixed, params.NoiseLevel, rng)
	if err != nil {
		return scatter.Scatter{}, fmt.Errorf("add noise: %w", err)
	}

	log.Info().Msg("signal successfully generated")
	return noisy, nil
}

// StandardSignal resolves (encoding, sub-modulation, sub-carrier
// frequency, modulation index) from (standard, direction), auto-sizes the
// simulation duration, and invokes CreateSignal. carrierFreq is fixed at
// 13.56 MHz. A bit rate outside [106000, 424000] logs a warning but
// proceeds; this simulator does not yet support NFC-V (212/424 kbit/s
// only).
func StandardSignal(
	payload []byte,
	standard Standard,
	direction Direction,
	bitRate uint,
	noiseLevel float64,
	numberOfPoints int,
	rng *rand.Rand,
	log *zerolog.Logger,
) (scatter.Scatter, error) {
	if log == nil {
		log = &logger.Log
	}

	byDirection, ok := presets[standard]
	if !ok {
		return scatter.Scatter{}, fmt.Errorf("%w: invalid NFC standard %v", ErrInvalidArgument, standard)
	}
	p, ok := byDirection[direction]
	if !ok {
		return scatter.Scatter{}, fmt.Errorf("%w: invalid data transmission direction %v", ErrInvalidArgument, direction)
	}

	if bitRate < MinStandardBitRate || bitRate > MaxStandardBitRate {
		log.Warn().
			Uint("bit_rate", bitRate).
			Msg("non-standard bit rate, should be between 106 kbit/s and 424 kbit/s")
	}

	simDuration, err := AutoSimTime(len(payload), bitRate)
	if err != nil {
		return scatter.Scatter{}, fmt.Errorf("auto sim time: %w", err)
	}

	params := SignalParameters{
		Payload:         payload,
		BitRate:         bitRate,
		Encoding:        p.encoding,
		SubModulation:   p.subModulation,
		SubCarrierFreq:  p.subCarrierFreq,
		CarrierFreq:     CarrierFreq,
		ModulationIndex: p.modulationIndex,
		NoiseLevel:      noiseLevel,
		SimDuration:     simDuration,
		NumberOfPoints:  numberOfPoints,
	}

	return CreateSignal(params, rng, log)
}
