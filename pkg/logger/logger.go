// +build !logless

// Package logger provides the process-wide leveled logger shared by the
// nfc, dsp, demod, and csvexport packages. The individual pipeline stages
// (encoder, sub-carrier modulator, envelope synthesizer, carrier mixer,
// noise adder) stay silent; only operations that front a pipeline or
// write to the outside world (CreateSignal, StandardSignal, FFTCompute,
// LCADC, WriteCSVFile) log through this package.
package logger

import (
	"os"

	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
)

var Log = logger.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// Verbosity gates which log categories get emitted, mirroring the
// original's compile-time verbosity constant (0..5: off, error, warn, info,
// debug, trace).
type Verbosity int

const (
	VerbosityOff Verbosity = iota
	VerbosityError
	VerbosityWarn
	VerbosityInfo
	VerbosityDebug
	VerbosityTrace
)

// SetVerbosity maps a verbosity level onto zerolog's global level filter.
func SetVerbosity(v Verbosity) {
	switch v {
	case VerbosityOff:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case VerbosityError:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case VerbosityWarn:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case VerbosityInfo:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case VerbosityDebug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
}
