// Package csvexport writes one or more Scatter series side by side into a
// single CSV-like file, for plotting in spreadsheet tools.
package csvexport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oussetg/nfcsim/pkg/logger"
	"github.com/oussetg/nfcsim/x/scatter"
)

var ErrInvalidArgument = errors.New("csvexport: invalid argument")

const (
	separator       = ','
	doubleSeparator = ",,"
)

// WriteCSVFile opens (creating or truncating) filename and writes series
// to it via WriteCSV.
func WriteCSVFile(filename string, series []scatter.Scatter) error {
	if filename == "" {
		return fmt.Errorf("%w: filename cannot be empty", ErrInvalidArgument)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("csvexport: open %q: %w", filename, err)
	}
	defer f.Close()

	if err := WriteCSV(f, series); err != nil {
		return err
	}
	logger.Log.Info().Str("filename", filename).Int("series", len(series)).Msg("cloud(s) of points written to file")
	return nil
}

// WriteCSV writes series side by side to w: one header row naming each
// series' X/Y axes, followed by one row per sample index up to the
// longest series. Each series contributes an "X,Y,," column group; a
// series shorter than the longest contributes empty X and Y cells past its
// own length rather than ending the row early. An unnamed axis falls back
// to "X_<i>"/"Y_<i>".
func WriteCSV(w io.Writer, series []scatter.Scatter) error {
	if len(series) == 0 {
		return fmt.Errorf("%w: series cannot be empty", ErrInvalidArgument)
	}

	bw := bufio.NewWriter(w)

	nbLines := 0
	for _, s := range series {
		if s.Len() > nbLines {
			nbLines = s.Len()
		}
	}

	for i, s := range series {
		xName, yName := s.AxisNames(i)
		if _, err := fmt.Fprintf(bw, "%s%c%s%s", xName, separator, yName, doubleSeparator); err != nil {
			return fmt.Errorf("csvexport: write header: %w", err)
		}
	}
	if _, err := fmt.Fprint(bw, "\n"); err != nil {
		return fmt.Errorf("csvexport: write header: %w", err)
	}

	for i := 0; i < nbLines; i++ {
		for _, s := range series {
			if i < s.Len() {
				if _, err := fmt.Fprintf(bw, "%d%c%f%s", s.X(i), separator, s.Y(i), doubleSeparator); err != nil {
					return fmt.Errorf("csvexport: write row: %w", err)
				}
			} else {
				if _, err := fmt.Fprintf(bw, "%c%s", separator, doubleSeparator); err != nil {
					return fmt.Errorf("csvexport: write row: %w", err)
				}
			}
		}
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return fmt.Errorf("csvexport: write row: %w", err)
		}
	}

	return bw.Flush()
}
