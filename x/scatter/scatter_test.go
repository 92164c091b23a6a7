package scatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(4)
	require.Equal(t, 4, s.Len())
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, int64(0), s.X(i))
		assert.Equal(t, 0.0, s.Y(i))
	}
}

func TestNewFrom(t *testing.T) {
	s := NewFrom([]int64{0, 1, 2}, []float64{0.5, -0.5, 1.0})
	require.Equal(t, 3, s.Len())
	assert.Equal(t, int64(1), s.X(1))
	assert.Equal(t, -0.5, s.Y(1))
}

func TestNewFromMismatchedLengthPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewFrom([]int64{0, 1}, []float64{0.5})
	})
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewFrom([]int64{0, 1}, []float64{1, 2})
	clone := s.Clone()
	clone.SetY(0, 99)
	assert.Equal(t, 1.0, s.Y(0))
	assert.Equal(t, 99.0, clone.Y(0))
}

func TestAxisNamesFallback(t *testing.T) {
	s := New(1)
	x, y := s.AxisNames(2)
	assert.Equal(t, "X_2", x)
	assert.Equal(t, "Y_2", y)

	s = s.WithNames("time_ns", "amplitude")
	x, y = s.AxisNames(2)
	assert.Equal(t, "time_ns", x)
	assert.Equal(t, "amplitude", y)
}
