package randx

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/tutils/randx/lcg"
)

func TestGammaShapeOne(t *testing.T) {
	vs, err := Gamma(1, 3, 100, WithSeed(9))
	require.NoError(t, err)
	require.Len(t, vs, 100)
	for i, s := range lcg.Generate(2, 100, 9) {
		require.Equal(t, 3*-math.Log(1-s[0]), vs[i])
	}
}

func TestGammaRejection(t *testing.T) {
	for _, tc := range []struct {
		alpha float64
		n     int
		mean  float64
	}{
		{0.5, 774, 0.7629568880239429},
		{2.5, 814, 5.083710518034898},
	} {
		vs, err := Gamma(tc.alpha, 2, 1000)
		require.NoError(t, err)
		require.Len(t, vs, tc.n, "alpha %v", tc.alpha)
		require.InDelta(t, tc.mean, stat.Mean(vs, nil), 1e-9, "alpha %v", tc.alpha)
		for _, v := range vs {
			require.Greater(t, v, 0.0)
		}
	}
}

func TestGammaCandidate(t *testing.T) {
	g := newGammaSampler(0.5, 2)

	// c*u0 > 1 takes the unscaled branch.
	u0 := 0.9
	y := -math.Log((g.c - g.c*u0) / 0.5)
	v, ok := g.candidate(u0, 0)
	require.True(t, ok)
	require.Equal(t, y, v)

	u0 = 0.1
	y = math.Pow(g.c*u0, 2)
	v, ok = g.candidate(u0, 0)
	require.True(t, ok)
	require.Equal(t, 2*y, v)

	_, ok = g.candidate(u0, 1)
	require.False(t, ok)
}

func TestGammaRetry(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)

	for _, alpha := range []float64{0.3, 0.5, 2.5, 7} {
		plain, err := Gamma(alpha, 1.5, 300, WithSeed(13))
		require.NoError(t, err)
		require.LessOrEqual(t, len(plain), 300)

		buf.Reset()
		retried, err := Gamma(alpha, 1.5, 300, WithSeed(13), WithRetryRejected(true), WithLogger(logger))
		require.NoError(t, err)
		require.Len(t, retried, 300)

		// Both walk the same pair stream, the plain result stops after
		// size pairs.
		require.Equal(t, plain, retried[:len(plain)], "alpha %v", alpha)
		if len(plain) < 300 {
			require.Contains(t, buf.String(), "gamma candidates rejected")
		}
	}

	one, err := Gamma(1, 2, 50, WithRetryRejected(true))
	require.NoError(t, err)
	plain, err := Gamma(1, 2, 50)
	require.NoError(t, err)
	require.Equal(t, plain, one)
}
