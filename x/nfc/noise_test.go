package nfc

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/oussetg/nfcsim/x/scatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNoiseEmptySignal(t *testing.T) {
	_, err := AddNoise(scatter.New(0), 0.1, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestAddNoiseLevelOutOfRange(t *testing.T) {
	sig := scatter.New(4)
	_, err := AddNoise(sig, 1.5, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = AddNoise(sig, -0.1, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestAddNoiseZeroLevelIsDeterministicNoOp(t *testing.T) {
	sig := scatter.New(3)
	for i := 0; i < 3; i++ {
		sig.SetY(i, float64(i))
	}
	noisy, err := AddNoise(sig, 0, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, sig.Y(i), noisy.Y(i))
	}
}

func TestAddNoiseIsReproducibleWithSameSeed(t *testing.T) {
	sig := scatter.New(10)
	for i := 0; i < 10; i++ {
		sig.SetY(i, 1.0)
	}

	a, err := AddNoise(sig, 0.5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := AddNoise(sig, 0.5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Y(i), b.Y(i))
	}
}

func TestAddNoiseBoundedByLevel(t *testing.T) {
	sig := scatter.New(100)
	for i := 0; i < 100; i++ {
		sig.SetY(i, 0)
	}
	noisy, err := AddNoise(sig, 0.2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.LessOrEqual(t, noisy.Y(i), 0.1)
		assert.GreaterOrEqual(t, noisy.Y(i), -0.1)
	}
}

func TestAddNoisePreservesX(t *testing.T) {
	sig := scatter.New(3)
	sig.SetX(0, 10)
	sig.SetX(1, 20)
	sig.SetX(2, 30)
	noisy, err := AddNoise(sig, 0.1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, int64(10), noisy.X(0))
	assert.Equal(t, int64(20), noisy.X(1))
	assert.Equal(t, int64(30), noisy.X(2))
}
