package nfc

import "fmt"

// AutoSimTime sizes a simulation duration from the payload length and bit
// rate: simDuration (ns) = payload_size * 8 * 1e9 / bitRate.
func AutoSimTime(payloadSize int, bitRate uint) (uint64, error) {
	if bitRate == 0 {
		return 0, fmt.Errorf("%w: bit rate cannot be zero", ErrInvalidArgument)
	}
	return uint64(payloadSize) * 8 * uint64(1e9) / uint64(bitRate), nil
}

// preset holds the (encoding, sub-modulation, sub-carrier frequency,
// modulation index) decision table entry for one (standard, direction)
// pair.
type preset struct {
	encoding        Encoding
	subModulation   SubModulation
	subCarrierFreq  uint
	modulationIndex uint8
}

var presets = map[Standard]map[Direction]preset{
	StandardA: {
		PCD:  {encoding: ModMiller, subModulation: NoSubModulation, subCarrierFreq: 0, modulationIndex: 100},
		PICC: {encoding: Manchester, subModulation: OOK, subCarrierFreq: SubCarrierFreq, modulationIndex: 10},
	},
	StandardB: {
		PCD:  {encoding: NRZ, subModulation: NoSubModulation, subCarrierFreq: 0, modulationIndex: 10},
		PICC: {encoding: NRZ, subModulation: BPSK, subCarrierFreq: SubCarrierFreq, modulationIndex: 10},
	},
}
