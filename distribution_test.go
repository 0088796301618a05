package randx

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireArgError(t *testing.T, err error, kind error, param string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, kind), "expected %v, got %v", kind, err)
	var ae *ArgumentError
	require.True(t, errors.As(err, &ae))
	require.Equal(t, param, ae.Param)
}

func TestCallTypeErrorFirst(t *testing.T) {
	_, err := Call("rand_unif", "x", 1, 10, 42)
	requireArgError(t, err, ErrInvalidArgumentType, "a")

	// a is reported even though size and seed are invalid too.
	_, err = Call("unif", "x", 1, -1, -5)
	requireArgError(t, err, ErrInvalidArgumentType, "a")
}

func TestValidationOrder(t *testing.T) {
	for _, tc := range []struct {
		name  string
		args  []interface{}
		kind  error
		param string
	}{
		{"unif", []interface{}{1, "b", 10}, ErrInvalidArgumentType, "b"},
		{"unif", []interface{}{1, 2, 0}, ErrInvalidArgumentValue, "size"},
		{"unif", []interface{}{1, 2, 2.5}, ErrInvalidArgumentType, "size"},
		{"unif", []interface{}{1, 2, 3, 0}, ErrInvalidArgumentValue, "seed"},
		{"unif", []interface{}{1, 2, 3, "s"}, ErrInvalidArgumentType, "seed"},
		{"exp", []interface{}{-1, 0, 0}, ErrInvalidArgumentValue, "lambda"},
		{"weibull", []interface{}{0, "k", 10}, ErrInvalidArgumentValue, "lambda"},
		{"weibull", []interface{}{1, -2, 10}, ErrInvalidArgumentValue, "k"},
		{"triangular", []interface{}{0, 5, 1, 10}, ErrInvalidArgumentValue, "c"},
		{"triangular", []interface{}{0, "c", 1, 10}, ErrInvalidArgumentType, "c"},
		{"triangular", []interface{}{0, "c", "b", 10}, ErrInvalidArgumentType, "b"},
		{"triangular", []interface{}{0, 5, "b", 10}, ErrInvalidArgumentType, "b"},
		{"triangular", []interface{}{"a", "c", "b", 10}, ErrInvalidArgumentType, "a"},
		{"erlang", []interface{}{2.0, 1, 10}, ErrInvalidArgumentType, "n"},
		{"erlang", []interface{}{0, 1, 10}, ErrInvalidArgumentValue, "n"},
		{"bin", []interface{}{3, 1.5, 10}, ErrInvalidArgumentValue, "p"},
		{"bern", []interface{}{true, 10}, ErrInvalidArgumentType, "p"},
		{"geom", []interface{}{-0.1, 10}, ErrInvalidArgumentValue, "p"},
		{"negbin", []interface{}{"2", nil, 10}, ErrInvalidArgumentType, "p"},
		{"poisson", []interface{}{0, 10}, ErrInvalidArgumentValue, "lambda"},
		{"gamma", []interface{}{1, 0, 10}, ErrInvalidArgumentValue, "beta"},
		{"normal", []interface{}{math.NaN(), 1, 10}, ErrInvalidArgumentType, "m"},
		{"normal", []interface{}{0, -1, 10}, ErrInvalidArgumentValue, "v"},
	} {
		_, err := Call(tc.name, tc.args...)
		requireArgError(t, err, tc.kind, tc.param)
	}
}

func TestCallErrors(t *testing.T) {
	_, err := Call("cauchy", 1, 2, 10)
	require.Equal(t, ErrUnknownDistribution, err)

	_, err = Call("unif", 1, 10)
	require.Equal(t, ErrArgumentCount, err)
	_, err = Call("unif", 1, 2, 10, 42, 7)
	require.Equal(t, ErrArgumentCount, err)
}

func TestMaxDraws(t *testing.T) {
	for _, tc := range []struct {
		name  string
		args  []interface{}
		limit int
		param string
	}{
		{"unif", []interface{}{0, 1, 10}, 9, "size"},
		{"gamma", []interface{}{2, 1, 10}, 19, "size"},
		{"bin", []interface{}{1000000000, 0.5, 1}, 1000, "n"},
		{"negbin", []interface{}{5, 0.5, 4}, 19, "n"},
		{"erlang", []interface{}{5, 1, 4}, 19, "n"},
	} {
		d, ok := Lookup(tc.name)
		require.True(t, ok)
		_, err := d.Sample(tc.args[:len(tc.args)-1], tc.args[len(tc.args)-1], WithMaxDraws(tc.limit))
		requireArgError(t, err, ErrInvalidArgumentValue, tc.param)
	}

	vs, err := Erlang(5, 1, 4, WithMaxDraws(20))
	require.NoError(t, err)
	require.Len(t, vs, 4)

	_, err = Erlang(math.MaxInt32, 1, 1)
	requireArgError(t, err, ErrInvalidArgumentValue, "n")

	_, err = Uniforms(math.MaxInt32, 1)
	requireArgError(t, err, ErrInvalidArgumentValue, "n")
	_, err = Uniforms(4, 5, WithMaxDraws(19))
	requireArgError(t, err, ErrInvalidArgumentValue, "n")
	batch, err := Uniforms(4, 5, WithMaxDraws(20))
	require.NoError(t, err)
	require.Len(t, batch, 5)
}

func TestCallMatchesTyped(t *testing.T) {
	res, err := Call("rand_exp", "2", "20", 7)
	require.NoError(t, err)
	want, err := Exponential(2, 20, WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, want, res.Floats)
	require.Nil(t, res.Ints)
	require.EqualValues(t, 7, res.Seed)

	res, err = Call("bin", json.Number("3"), json.Number("0.5"), uint8(4), int64(42))
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 0, 2}, res.Ints)
	require.Equal(t, []string{"1", "3", "0", "2"}, res.Strings())
	require.Equal(t, []float64{1, 3, 0, 2}, res.Float64s())

	_, err = Call("bin", json.Number("3.5"), 0.5, 4)
	requireArgError(t, err, ErrInvalidArgumentType, "n")
}

func TestDefaultSeed(t *testing.T) {
	a, err := Uniform(0, 1, 10)
	require.NoError(t, err)
	b, err := Uniform(0, 1, 10, WithSeed(DefaultSeed))
	require.NoError(t, err)
	require.Equal(t, a, b)

	res, err := Call("unif", 0, 1, 10)
	require.NoError(t, err)
	require.Equal(t, a, res.Floats)
	require.Equal(t, DefaultSeed, res.Seed)
}

func TestOptionValidation(t *testing.T) {
	_, err := Uniform(0, 1, 10, WithSeed(0))
	requireArgError(t, err, ErrInvalidArgumentValue, "seed")

	_, err = Poisson(2, 10, WithPoissonMargin(0))
	requireArgError(t, err, ErrInvalidArgumentValue, "poisson margin")

	_, err = Uniform(0, 1, 11, WithMaxSize(10))
	requireArgError(t, err, ErrInvalidArgumentValue, "size")
	vs, err := Uniform(0, 1, 10, WithMaxSize(10))
	require.NoError(t, err)
	require.Len(t, vs, 10)

	// Size is checked before the seed.
	_, err = Uniform(0, 1, 0, WithSeed(-1))
	requireArgError(t, err, ErrInvalidArgumentValue, "size")
}

func TestSampleWithSeed(t *testing.T) {
	d, ok := Lookup("bern")
	require.True(t, ok)

	res, err := d.SampleWithSeed([]interface{}{"0.5"}, "5", "1", WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 0, 1, 0}, res.Ints)
	require.EqualValues(t, 1, res.Seed)

	res, err = d.SampleWithSeed([]interface{}{0.5}, 5, nil, WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 0, 1, 0}, res.Ints)
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("RAND_GAMMA")
	require.True(t, ok)
	require.Equal(t, "gamma", d.Name)
	require.Equal(t, "gamma alpha beta", d.Usage())
	require.False(t, d.Discrete)

	d, ok = Lookup("negbin")
	require.True(t, ok)
	require.True(t, d.Discrete)
	require.Equal(t, []Param{
		{Name: "n", Integer: true, Domain: "> 0"},
		{Name: "p", Domain: "[0, 1]"},
	}, d.Params())

	_, ok = Lookup("rand_")
	require.False(t, ok)

	var names []string
	for _, d := range Distributions() {
		names = append(names, d.Name)
	}
	require.Equal(t, []string{
		"bern", "bin", "erlang", "exp", "gamma", "geom",
		"negbin", "normal", "poisson", "triangular", "unif", "weibull",
	}, names)
}

func TestSampleDeterministic(t *testing.T) {
	for _, d := range Distributions() {
		args := make([]interface{}, len(d.params))
		for i, p := range d.params {
			if p.Integer {
				args[i] = 3
			} else {
				args[i] = 0.5
			}
		}
		switch d.Name {
		case "triangular":
			args = []interface{}{0, 0.5, 1}
		case "unif":
			args = []interface{}{0, 1}
		}

		a, err := d.Sample(args, 25, WithSeed(11))
		require.NoError(t, err, d.Name)
		b, err := d.Sample(args, 25, WithSeed(11))
		require.NoError(t, err, d.Name)
		require.Equal(t, a, b, d.Name)

		c, err := d.Sample(args, 25, WithSeed(12))
		require.NoError(t, err, d.Name)
		require.NotEqual(t, a.Values(), c.Values(), d.Name)
	}
}
