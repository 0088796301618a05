package lcg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateParkMiller(t *testing.T) {
	batch := Generate(1, 3, 1)
	require.Len(t, batch, 3)

	want := []int64{16807, 282475249, 1622650073}
	for i, x := range want {
		require.Len(t, batch[i], 1)
		require.Equal(t, float64(x)/float64(Modulus), batch[i][0], "sample %d", i)
	}
}

func TestGeneratorStep(t *testing.T) {
	g := New(1)
	want := []int64{16807, 282475249, 1622650073, 984943658, 1144108930,
		470211272, 101027544, 1457850878, 1458777923, 2007237709}
	for i, x := range want {
		require.Equal(t, x, g.Step(), "step %d", i)
	}

	// Minimal standard check value.
	g = New(1)
	for i := 0; i < 9999; i++ {
		g.Step()
	}
	require.EqualValues(t, 1043618065, g.Step())
}

func TestGenerateRowMajor(t *testing.T) {
	flat := Generate(1, 6, 42)
	batch := Generate(3, 2, 42)
	require.Len(t, batch, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, flat[i*3+j][0], batch[i][j])
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	require.Equal(t, Generate(2, 50, 7), Generate(2, 50, 7))
	require.NotEqual(t, Generate(1, 2, 7), Generate(1, 2, 8))
}

func TestNewReducesSeed(t *testing.T) {
	require.Equal(t, Generate(1, 5, 1), Generate(1, 5, Modulus+1))

	g := New(1<<62 + 3)
	for i := 0; i < 1000; i++ {
		u := g.Next()
		require.True(t, u >= 0 && u < 1, "value %v out of range", u)
	}
}

func TestGenerateRange(t *testing.T) {
	for _, row := range Generate(4, 2500, 12345) {
		for _, u := range row {
			require.Greater(t, u, 0.0)
			require.Less(t, u, 1.0)
		}
	}
}
