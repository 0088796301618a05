package randx

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var uniformDist = register(&Distribution{
	Name:        "unif",
	Description: "continuous uniform on [a, b]",
	params: []param{
		{Param: Param{Name: "a"}},
		{Param: Param{Name: "b"}},
	},
	floats: func(r *run, args []float64, size int) []float64 {
		a, b := args[0], args[1]
		out := make([]float64, size)
		for i, s := range r.batch(1, size) {
			out[i] = a + (b-a)*s[0]
		}
		return out
	},
})

// Uniform draws size values from the uniform distribution on [a, b].
func Uniform(a, b float64, size int, opts ...Option) ([]float64, error) {
	return floats(uniformDist, floatArgs(a, b), size, opts)
}

var triangularDist = register(&Distribution{
	Name:        "triangular",
	Description: "triangular with minimum a, mode c and maximum b",
	params: []param{
		{Param: Param{Name: "a"}},
		{Param: Param{Name: "c", Domain: "a <= c <= b"}},
		{Param: Param{Name: "b"}, checks: []check{
			func(args []float64) error {
				a, c, b := args[0], args[1], args[2]
				if c > b || c < a {
					return valueError("c", "must be between a and b")
				}
				return nil
			},
			func(args []float64) error {
				if args[0] > args[2] {
					return valueError("a", "must be less than b")
				}
				return nil
			},
		}},
	},
	typeOrder: []int{0, 2, 1},
	floats: func(r *run, args []float64, size int) []float64 {
		a, c, b := args[0], args[1], args[2]
		// NaN when a == b; every draw then takes the second branch and
		// yields b.
		split := (c - a) / (b - a)
		out := make([]float64, size)
		for i, s := range r.batch(1, size) {
			u := s[0]
			if u < split {
				out[i] = a + math.Sqrt((b-a)*(c-a)*u)
			} else {
				out[i] = b - math.Sqrt((b-a)*(b-c)*(1-u))
			}
		}
		return out
	},
})

// Triangular draws size values from the triangular distribution with
// minimum a, mode c and maximum b. Dynamic calls check the types of a, b
// and c in that order before any range check.
func Triangular(a, c, b float64, size int, opts ...Option) ([]float64, error) {
	return floats(triangularDist, floatArgs(a, c, b), size, opts)
}

var exponentialDist = register(&Distribution{
	Name:        "exp",
	Description: "exponential with rate lambda",
	params: []param{
		{Param: Param{Name: "lambda", Domain: ">= 0"}, checks: []check{nonNegative("lambda")}},
	},
	floats: func(r *run, args []float64, size int) []float64 {
		l := args[0]
		out := make([]float64, size)
		for i, s := range r.batch(1, size) {
			out[i] = (-1 / l) * math.Log(1-s[0])
		}
		return out
	},
})

// Exponential draws size values from the exponential distribution with
// rate lambda. A zero rate yields +Inf.
func Exponential(lambda float64, size int, opts ...Option) ([]float64, error) {
	return floats(exponentialDist, floatArgs(lambda), size, opts)
}

var weibullDist = register(&Distribution{
	Name:        "weibull",
	Description: "Weibull with scale lambda and shape k",
	params: []param{
		{Param: Param{Name: "lambda", Domain: "> 0"}, checks: []check{positive("lambda")}},
		{Param: Param{Name: "k", Domain: "> 0"}, checks: []check{positive("k")}},
	},
	floats: func(r *run, args []float64, size int) []float64 {
		l, k := args[0], args[1]
		out := make([]float64, size)
		for i, s := range r.batch(1, size) {
			out[i] = l * math.Pow(-math.Log(1-s[0]), 1/k)
		}
		return out
	},
})

// Weibull draws size values from the Weibull distribution with scale
// lambda and shape k.
func Weibull(lambda, k float64, size int, opts ...Option) ([]float64, error) {
	return floats(weibullDist, floatArgs(lambda, k), size, opts)
}

var erlangDist = register(&Distribution{
	Name:        "erlang",
	Description: "Erlang with n phases of rate lambda",
	params: []param{
		{Param: Param{Name: "n", Integer: true, Domain: "> 0"}, checks: []check{positive("n")}},
		{Param: Param{Name: "lambda", Domain: "> 0"}, checks: []check{positive("lambda")}},
	},
	draws: countDraws,
	floats: func(r *run, args []float64, size int) []float64 {
		n, l := int(args[0]), args[1]
		out := make([]float64, size)
		for i, s := range r.batch(n, size) {
			prod := 1.0
			for _, u := range s {
				prod *= u
			}
			out[i] = (-1 / l) * math.Log(prod)
		}
		return out
	},
})

// Erlang draws size values from the Erlang distribution, the sum of n
// exponentials with rate lambda.
func Erlang(n int, lambda float64, size int, opts ...Option) ([]float64, error) {
	return floats(erlangDist, []interface{}{n, lambda}, size, opts)
}

var normalDist = register(&Distribution{
	Name:        "normal",
	Description: "normal with mean m and variance v",
	params: []param{
		{Param: Param{Name: "m"}},
		{Param: Param{Name: "v", Domain: ">= 0"}, checks: []check{nonNegative("v")}},
	},
	floats: func(r *run, args []float64, size int) []float64 {
		m, v := args[0], args[1]
		out := make([]float64, size)
		for i, s := range r.batch(1, size) {
			// v scales the standard quantile directly.
			out[i] = m + v*distuv.UnitNormal.Quantile(s[0])
		}
		return out
	},
})

// Normal draws size values by applying the normal quantile function to
// each uniform. The variance argument is used as the scale of the
// quantile function.
func Normal(mean, variance float64, size int, opts ...Option) ([]float64, error) {
	return floats(normalDist, floatArgs(mean, variance), size, opts)
}

// Uniforms returns the raw batch of size samples of n uniforms each, after
// the same size and seed validation the samplers apply.
func Uniforms(n, size int, opts ...Option) ([][]float64, error) {
	if n <= 0 {
		return nil, valueError("n", "must be greater than zero")
	}
	if size <= 0 {
		return nil, valueError("size", "must be greater than zero")
	}
	opt := newOptions(opts...)
	if opt.maxSize > 0 && size > opt.maxSize {
		return nil, valueError("size", fmt.Sprintf("must not exceed %d", opt.maxSize))
	}
	if opt.seed <= 0 {
		return nil, valueError("seed", "must be greater than zero")
	}
	if n >= math.MaxInt32 {
		return nil, valueError("n", "is too large")
	}
	if total := n * size; opt.maxDraws > 0 && total > opt.maxDraws {
		return nil, valueError("n", fmt.Sprintf("needs %d draws, more than the limit of %d", total, opt.maxDraws))
	}
	r := &run{opts: opt}
	return r.batch(n, size), nil
}

// countDraws is the draws function of distributions whose first parameter
// n is the number of uniforms per variate.
func countDraws(args []float64, _ *Options) (float64, string) {
	return args[0], "n"
}

func floats(d *Distribution, args []interface{}, size int, opts []Option) ([]float64, error) {
	res, err := d.sample(args, size, nil, opts)
	if err != nil {
		return nil, err
	}
	return res.Floats, nil
}

func ints(d *Distribution, args []interface{}, size int, opts []Option) ([]int, error) {
	res, err := d.sample(args, size, nil, opts)
	if err != nil {
		return nil, err
	}
	return res.Ints, nil
}
