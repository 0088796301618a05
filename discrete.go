package randx

import (
	"math"

	"github.com/go-kit/log/level"
)

var bernoulliDist = register(&Distribution{
	Name:        "bern",
	Description: "Bernoulli with success probability p",
	Discrete:    true,
	params: []param{
		{Param: Param{Name: "p", Domain: "[0, 1]"}, checks: []check{probability("p")}},
	},
	ints: func(r *run, args []float64, size int) []int {
		p := args[0]
		out := make([]int, size)
		for i, s := range r.batch(1, size) {
			if s[0] <= p {
				out[i] = 1
			}
		}
		return out
	},
})

// Bernoulli draws size values in {0, 1}, 1 with probability p.
func Bernoulli(p float64, size int, opts ...Option) ([]int, error) {
	return ints(bernoulliDist, floatArgs(p), size, opts)
}

var binomialDist = register(&Distribution{
	Name:        "bin",
	Description: "binomial with n trials of success probability p",
	Discrete:    true,
	params: []param{
		{Param: Param{Name: "n", Integer: true, Domain: "> 0"}, checks: []check{positive("n")}},
		{Param: Param{Name: "p", Domain: "[0, 1]"}, checks: []check{probability("p")}},
	},
	draws: countDraws,
	ints: func(r *run, args []float64, size int) []int {
		n, p := int(args[0]), args[1]
		out := make([]int, size)
		for i, s := range r.batch(n, size) {
			for _, u := range s {
				if u <= p {
					out[i]++
				}
			}
		}
		return out
	},
})

// Binomial draws size values counting the successes in n Bernoulli(p)
// trials.
func Binomial(n int, p float64, size int, opts ...Option) ([]int, error) {
	return ints(binomialDist, []interface{}{n, p}, size, opts)
}

// geometric maps one uniform to the number of trials up to the first
// success. logq is ln(1-p).
func geometric(u, p, logq float64) int {
	switch p {
	case 1:
		return 1
	case 0:
		return math.MaxInt
	}
	x := math.Ceil(math.Log(u) / logq)
	if math.IsNaN(x) || x >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(x)
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

var geometricDist = register(&Distribution{
	Name:        "geom",
	Description: "geometric, trials until the first success of probability p",
	Discrete:    true,
	params: []param{
		{Param: Param{Name: "p", Domain: "[0, 1]"}, checks: []check{probability("p")}},
	},
	ints: func(r *run, args []float64, size int) []int {
		p := args[0]
		logq := math.Log(1 - p)
		out := make([]int, size)
		for i, s := range r.batch(1, size) {
			out[i] = geometric(s[0], p, logq)
		}
		return out
	},
})

// Geometric draws size values counting the trials up to and including the
// first success. With p == 0 no success ever happens and every value
// saturates at math.MaxInt.
func Geometric(p float64, size int, opts ...Option) ([]int, error) {
	return ints(geometricDist, floatArgs(p), size, opts)
}

var negativeBinomialDist = register(&Distribution{
	Name:        "negbin",
	Description: "negative binomial, trials until n successes of probability p",
	Discrete:    true,
	params: []param{
		{Param: Param{Name: "n", Integer: true, Domain: "> 0"}, checks: []check{positive("n")}},
		{Param: Param{Name: "p", Domain: "[0, 1]"}, checks: []check{probability("p")}},
	},
	draws: countDraws,
	ints: func(r *run, args []float64, size int) []int {
		n, p := int(args[0]), args[1]
		logq := math.Log(1 - p)
		out := make([]int, size)
		for i, s := range r.batch(n, size) {
			for _, u := range s {
				out[i] = addSat(out[i], geometric(u, p, logq))
			}
		}
		return out
	},
})

// NegativeBinomial draws size values, each the sum of n geometric(p)
// variates.
func NegativeBinomial(n int, p float64, size int, opts ...Option) ([]int, error) {
	return ints(negativeBinomialDist, []interface{}{n, p}, size, opts)
}

var poissonDist = register(&Distribution{
	Name:        "poisson",
	Description: "Poisson with rate lambda",
	Discrete:    true,
	params: []param{
		{Param: Param{Name: "lambda", Domain: "> 0"}, checks: []check{positive("lambda")}},
	},
	draws: func(args []float64, opt *Options) (float64, string) {
		return math.Floor(args[0]) + float64(opt.poissonMargin), "lambda"
	},
	ints: func(r *run, args []float64, size int) []int {
		l := args[0]
		trials := int(math.Floor(l)) + r.opts.poissonMargin
		threshold := math.Exp(-l)
		out := make([]int, size)
		truncated := 0
		for i, s := range r.batch(trials, size) {
			p, x := 1.0, -1
			for _, u := range s {
				if p < threshold {
					break
				}
				p *= u
				x++
			}
			if p >= threshold {
				truncated++
			}
			out[i] = x
		}
		if truncated > 0 {
			level.Warn(r.opts.logger).Log(
				"msg", "poisson variates truncated at trial bound",
				"lambda", l,
				"trials", trials,
				"truncated", truncated,
				"size", size,
			)
		}
		return out
	},
})

// Poisson draws size values by counting homogeneous arrivals: uniforms are
// multiplied until the product drops below e^-lambda. At most
// floor(lambda)+margin uniforms are used per variate (see
// WithPoissonMargin); a variate that runs out of draws is truncated at
// that bound and reported through the logger.
func Poisson(lambda float64, size int, opts ...Option) ([]int, error) {
	return ints(poissonDist, floatArgs(lambda), size, opts)
}
