package nfc

import "fmt"

// ModulateSubCarrier expands a symbol stream into sub-symbols at half the
// sub-carrier period. R = subCarrierFreq/bitRate must be an integer (the
// ratio assumption is foundational); W = R/2 sub-symbols are written per
// input symbol.
func ModulateSubCarrier(symbols []byte, params SignalParameters) ([]byte, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: symbol stream cannot be empty", ErrInvalidArgument)
	}
	if params.BitRate == 0 {
		return nil, fmt.Errorf("%w: bit rate cannot be zero", ErrInvalidArgument)
	}

	switch params.SubModulation {
	case NoSubModulation:
		out := make([]byte, len(symbols))
		copy(out, symbols)
		return out, nil
	case OOK, BPSK:
		// fall through to ratio validation below
	default:
		return nil, fmt.Errorf("%w: unrecognized sub-modulation %v", ErrInvalidArgument, params.SubModulation)
	}

	if params.SubCarrierFreq == 0 {
		return nil, fmt.Errorf("%w: sub-carrier frequency cannot be zero when sub-modulation is active", ErrInvalidArgument)
	}
	if params.SubCarrierFreq%params.BitRate != 0 {
		return nil, fmt.Errorf("%w: sub-carrier frequency must be a multiple of the bit rate", ErrPrecondition)
	}

	ratio := params.SubCarrierFreq / params.BitRate
	if ratio < 2 {
		return nil, fmt.Errorf("%w: sub-carrier frequency must be at least twice the bit rate", ErrPrecondition)
	}
	halfPeriod := int(ratio / 2)

	out := make([]byte, len(symbols)*halfPeriod)
	for i, s := range symbols {
		start := i * halfPeriod
		writeSubCarrierCell(out[start:start+halfPeriod], s, params.SubModulation)
	}
	return out, nil
}

// writeSubCarrierCell fills one symbol's worth of sub-symbols.
//
// OOK: 1 -> all ones; 0 -> alternating 0,1,0,1,... starting at 0.
// BPSK: 1 -> alternating 1,0,1,0,... starting at 1; 0 -> same as OOK's 0
// case. Phase flips 180 degrees with symbol value.
func writeSubCarrierCell(cell []byte, symbol byte, mod SubModulation) {
	if mod == OOK && symbol != 0 {
		for i := range cell {
			cell[i] = 1
		}
		return
	}

	start := byte(0)
	if mod == BPSK && symbol != 0 {
		start = 1
	}
	v := start
	for i := range cell {
		cell[i] = v
		v ^= 1
	}
}
