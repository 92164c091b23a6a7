package demod

import (
	"errors"
	"testing"

	"github.com/oussetg/nfcsim/x/scatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(y []float64) scatter.Scatter {
	s := scatter.New(len(y))
	for i, v := range y {
		s.SetX(i, int64(i))
		s.SetY(i, v)
	}
	return s
}

func TestLCADCEmptySignal(t *testing.T) {
	_, err := LCADC(scatter.New(0), []float64{0.5}, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestLCADCNoLevelsReturnsEmptyOutput(t *testing.T) {
	sig := square([]float64{0, 1, 0, 1})
	out, err := LCADC(sig, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestLCADCCountsEachCrossing(t *testing.T) {
	// 0 -> 1 -> 0 -> 1 crosses the 0.5 level on every transition.
	sig := square([]float64{0, 1, 0, 1})
	out, err := LCADC(sig, []float64{0.5}, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Len())
	assert.Equal(t, int64(1), out.X(0))
	assert.Equal(t, int64(2), out.X(1))
	assert.Equal(t, int64(3), out.X(2))
	for i := 0; i < out.Len(); i++ {
		assert.Equal(t, 0.5, out.Y(i))
	}
}

func TestLCADCSkipDropsSubsequentCrossings(t *testing.T) {
	sig := square([]float64{0, 1, 0, 1, 0, 1})
	out, err := LCADC(sig, []float64{0.5}, 1)
	require.NoError(t, err)
	// crossings happen at every index transition; skip=1 drops every other one.
	assert.Equal(t, 3, out.Len())
}

func TestLCADCNoCrossingsYieldsEmptyOutput(t *testing.T) {
	sig := square([]float64{0, 0, 0, 0})
	out, err := LCADC(sig, []float64{0.5}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestLCADCMultipleLevels(t *testing.T) {
	sig := square([]float64{0, 2})
	out, err := LCADC(sig, []float64{0.5, 1.5}, 0)
	require.NoError(t, err)
	// Only the first level crossed at a given index is recorded.
	assert.Equal(t, 1, out.Len())
	assert.Equal(t, 0.5, out.Y(0))
}
