package randx

import (
	"math"

	"github.com/go-kit/log/level"

	"github.com/tutils/randx/lcg"
)

// gammaSampler holds the constants of the shape dependent
// acceptance-rejection scheme.
type gammaSampler struct {
	alpha, beta float64

	// alpha < 1
	c float64

	// alpha > 1
	v, w, q, z float64
}

func newGammaSampler(alpha, beta float64) *gammaSampler {
	return &gammaSampler{
		alpha: alpha,
		beta:  beta,
		c:     (math.E + alpha) / math.E,
		v:     1 / math.Sqrt(2*alpha-1),
		w:     alpha - math.Log(4),
		q:     alpha + math.Sqrt(2*alpha-1),
		z:     1 + math.Log(4.5),
	}
}

// candidate turns a pair of uniforms into a gamma variate and reports
// whether it was accepted.
func (g *gammaSampler) candidate(u0, u1 float64) (float64, bool) {
	a := g.alpha
	switch {
	case a == 1:
		return g.beta * -math.Log(1-u0), true

	case a < 1:
		cu := g.c * u0
		if cu > 1 {
			y := -math.Log((g.c - cu) / a)
			// This branch returns y without the beta factor, unlike its
			// sibling. Sequences produced so far depend on it.
			return y, u1 <= math.Pow(y, a-1)
		}
		y := math.Pow(cu, 1/a)
		return g.beta * y, u1 <= math.Exp(-y)

	default:
		v := g.v * math.Log(u0/(1-u0))
		y := a * math.Exp(v)
		z := u0 * u0 * u1
		w := g.w + g.q*v - y
		return g.beta * y, w+g.z-4.5*z >= 0 || w >= math.Log(z)
	}
}

var gammaDist = register(&Distribution{
	Name:        "gamma",
	Description: "gamma with shape alpha and scale factor beta",
	params: []param{
		{Param: Param{Name: "alpha", Domain: "> 0"}, checks: []check{positive("alpha")}},
		{Param: Param{Name: "beta", Domain: "> 0"}, checks: []check{positive("beta")}},
	},
	draws: func([]float64, *Options) (float64, string) {
		return 2, ""
	},
	floats: func(r *run, args []float64, size int) []float64 {
		g := newGammaSampler(args[0], args[1])
		if r.opts.retryRejected {
			return g.retry(r, size)
		}

		out := make([]float64, 0, size)
		for _, s := range r.batch(2, size) {
			if y, ok := g.candidate(s[0], s[1]); ok {
				out = append(out, y)
			}
		}
		if rejected := size - len(out); rejected > 0 {
			level.Debug(r.opts.logger).Log(
				"msg", "gamma candidates rejected",
				"alpha", g.alpha,
				"rejected", rejected,
				"size", size,
			)
		}
		return out
	},
})

// retry keeps drawing pairs from one stream until size candidates have
// been accepted.
func (g *gammaSampler) retry(r *run, size int) []float64 {
	gen := lcg.New(r.opts.seed)
	out := make([]float64, 0, size)
	pairs := 0
	for len(out) < size {
		u0 := gen.Next()
		u1 := gen.Next()
		pairs++
		if y, ok := g.candidate(u0, u1); ok {
			out = append(out, y)
		}
	}
	if pairs > size {
		level.Debug(r.opts.logger).Log(
			"msg", "gamma candidates rejected",
			"alpha", g.alpha,
			"rejected", pairs-size,
			"size", size,
		)
	}
	return out
}

// Gamma draws gamma variates with shape alpha and scale factor beta.
//
// For alpha == 1 the result has exactly size values. Otherwise each of the
// size draw pairs yields at most one value and rejected candidates are
// dropped, so the result may be shorter than size unless
// WithRetryRejected is set. When alpha < 1 and the first candidate form
// is taken, the value is not multiplied by beta.
func Gamma(alpha, beta float64, size int, opts ...Option) ([]float64, error) {
	return floats(gammaDist, floatArgs(alpha, beta), size, opts)
}
