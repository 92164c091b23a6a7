// Package nfc simulates the analog waveform of an ISO/IEC 14443 Type A/B
// radio-frequency exchange at the physical layer: given a byte payload and
// a set of signal parameters, it produces a time-domain amplitude Scatter
// representing the RF signal at the antenna. This is a forward simulator
// only; there is no decoding, no closed-loop transceiver, and no
// frame-level protocol (anticollision, framing, CRC).
package nfc

import "errors"

// Encoding selects the line code applied to the payload bits.
type Encoding int

const (
	ModMiller Encoding = iota
	NRZ
	Manchester
)

func (e Encoding) String() string {
	switch e {
	case ModMiller:
		return "ModMiller"
	case NRZ:
		return "NRZ"
	case Manchester:
		return "Manchester"
	default:
		return "Unknown"
	}
}

// SubModulation selects how (or whether) the line-coded symbols are
// impressed onto a sub-carrier before envelope synthesis.
type SubModulation int

const (
	NoSubModulation SubModulation = iota
	OOK
	BPSK
)

func (m SubModulation) String() string {
	switch m {
	case NoSubModulation:
		return "None"
	case OOK:
		return "OOK"
	case BPSK:
		return "BPSK"
	default:
		return "Unknown"
	}
}

// Standard selects an ISO/IEC 14443 variant for StandardSignal's preset
// table.
type Standard int

const (
	StandardA Standard = iota
	StandardB
)

// Direction selects which side of the air interface is transmitting.
type Direction int

const (
	// PCD is the Proximity Coupling Device: the reader transmitting to the card.
	PCD Direction = iota
	// PICC is the Proximity Integrated Circuit Card: the card transmitting
	// to the reader, via load-modulating the reader's field.
	PICC
)

// Configuration constants, overridable per call through SignalParameters.
const (
	CarrierFreq       = 13.56e6 // Hz
	SubCarrierFreq    = 848e3   // Hz
	DefaultBitRate    = 106000  // bit/s
	DefaultPointCount = 16384   // power of two, sized for the FFT
)

// MinStandardBitRate and MaxStandardBitRate bound the ISO/IEC 14443 bit
// rates StandardSignal expects; outside this range it warns but proceeds.
const (
	MinStandardBitRate = 106000
	MaxStandardBitRate = 424000
)

// SignalParameters carries every input to a createSignal run.
type SignalParameters struct {
	Payload []byte

	BitRate uint // bit/s

	Encoding      Encoding
	SubModulation SubModulation

	SubCarrierFreq uint // Hz; 0 iff SubModulation == NoSubModulation
	CarrierFreq    uint // Hz

	ModulationIndex uint8   // 0..100, percent
	NoiseLevel      float64 // 0..1, uniform amplitude scale (not an SNR)

	SimDuration    uint64 // ns
	NumberOfPoints int    // sample count; must be a power of two to feed the FFT
}

// Error taxonomy. Every stage is a checked transformation that either
// yields its output or surfaces one of these wrapped with context;
// errors.Is discriminates the category.
var (
	ErrInvalidArgument = errors.New("nfc: invalid argument")
	ErrPrecondition    = errors.New("nfc: precondition violation")
	ErrAllocation      = errors.New("nfc: allocation failure")
	ErrIO              = errors.New("nfc: io failure")
)
