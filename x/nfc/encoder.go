package nfc

import "fmt"

// modMiller1 is the one-quarter pause cell for a logical 1.
var modMiller1 = [4]byte{1, 1, 0, 1}

// modMiller0After1 is the no-pause cell for a 0 following a 1.
var modMiller0After1 = [4]byte{1, 1, 1, 1}

// modMiller0After0 places the pause in the first quarter-cell, distinguishing
// a 0 following a 0 from a 0 following a 1.
var modMiller0After0 = [4]byte{0, 1, 1, 1}

var nrz1 = [4]byte{1, 1, 1, 1}
var nrz0 = [4]byte{0, 0, 0, 0}

var manchester1 = [4]byte{0, 0, 1, 1}
var manchester0 = [4]byte{1, 1, 0, 0}

// Encode converts a byte payload into a symbol stream: 32 symbols per byte,
// bit order LSB-first within each byte (bit j of byte i maps to symbols
// [32i+4j .. 32i+4j+3]).
func Encode(payload []byte, encoding Encoding) ([]byte, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: payload cannot be empty", ErrInvalidArgument)
	}

	switch encoding {
	case ModMiller:
		return encodeModMiller(payload), nil
	case NRZ:
		return encodeLineCode(payload, nrz1, nrz0), nil
	case Manchester:
		return encodeLineCode(payload, manchester1, manchester0), nil
	default:
		return nil, fmt.Errorf("%w: unrecognized encoding %v", ErrInvalidArgument, encoding)
	}
}

// encodeLineCode handles NRZ and Manchester, which both depend only on the
// current bit's value.
func encodeLineCode(payload []byte, one, zero [4]byte) []byte {
	out := make([]byte, 32*len(payload))
	for i, b := range payload {
		for j := 0; j < 8; j++ {
			cell := zero
			if bitAt(b, j) {
				cell = one
			}
			copy(out[32*i+4*j:32*i+4*j+4], cell[:])
		}
	}
	return out
}

// encodeModMiller additionally depends on the previous bit, including
// across byte boundaries (j=0 looks at bit 7 of the prior byte).
func encodeModMiller(payload []byte) []byte {
	out := make([]byte, 32*len(payload))
	prevWasOne := true // seed: treat the start of the stream as preceded by a 1

	for i, b := range payload {
		for j := 0; j < 8; j++ {
			bit := bitAt(b, j)

			var cell [4]byte
			switch {
			case bit:
				cell = modMiller1
			case prevWasOne:
				cell = modMiller0After1
			default:
				cell = modMiller0After0
			}
			copy(out[32*i+4*j:32*i+4*j+4], cell[:])

			prevWasOne = bit
		}
	}
	return out
}

// bitAt reports bit j (0 = LSB) of b.
func bitAt(b byte, j int) bool {
	return (b>>uint(j))&0x01 != 0
}
