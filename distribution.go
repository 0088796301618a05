package randx

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/tutils/randx/lcg"
)

// Param describes one distributional parameter.
type Param struct {
	Name    string `json:"name"`
	Integer bool   `json:"integer"`
	Domain  string `json:"domain,omitempty"`
}

// check validates the arguments converted so far. The last element is the
// argument being checked.
type check func(args []float64) error

type param struct {
	Param
	checks []check
}

// Distribution is a registered sampler that can be driven with untyped
// arguments.
type Distribution struct {
	Name        string
	Description string
	Discrete    bool

	params []param
	// typeOrder lists parameter indices whose types are checked before any
	// domain check runs. The remaining parameters are converted in order.
	typeOrder []int
	// draws returns the uniforms consumed per variate and the parameter
	// that sets it, or "" when it is fixed. Nil means one uniform.
	draws  func(args []float64, opt *Options) (float64, string)
	floats func(r *run, args []float64, size int) []float64
	ints   func(r *run, args []float64, size int) []int
}

// Params returns the parameters in call order.
func (d *Distribution) Params() []Param {
	ps := make([]Param, len(d.params))
	for i, p := range d.params {
		ps[i] = p.Param
	}
	return ps
}

// Usage returns a one line signature such as "gamma alpha beta".
func (d *Distribution) Usage() string {
	var b strings.Builder
	b.WriteString(d.Name)
	for _, p := range d.params {
		b.WriteByte(' ')
		b.WriteString(p.Name)
	}
	return b.String()
}

// Result is the output of a dynamic sampling call. Exactly one of Floats
// and Ints is set, depending on Distribution.Discrete.
type Result struct {
	Distribution string    `json:"distribution"`
	Seed         int64     `json:"seed"`
	Size         int       `json:"size"`
	Floats       []float64 `json:"-"`
	Ints         []int     `json:"-"`
}

// Len returns the number of variates produced.
func (r *Result) Len() int {
	if r.Ints != nil {
		return len(r.Ints)
	}
	return len(r.Floats)
}

// Float64s returns the variates as floats.
func (r *Result) Float64s() []float64 {
	if r.Ints == nil {
		return r.Floats
	}
	fs := make([]float64, len(r.Ints))
	for i, v := range r.Ints {
		fs[i] = float64(v)
	}
	return fs
}

// Values returns the variates as []float64 or []int, for encoding.
func (r *Result) Values() interface{} {
	if r.Ints != nil {
		return r.Ints
	}
	return r.Floats
}

// Strings formats the variates, integers without a fractional part.
func (r *Result) Strings() []string {
	ss := make([]string, r.Len())
	if r.Ints != nil {
		for i, v := range r.Ints {
			ss[i] = strconv.Itoa(v)
		}
		return ss
	}
	for i, v := range r.Floats {
		ss[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return ss
}

// run carries the per call state. It is never shared between calls.
type run struct {
	opts *Options
}

// batch draws the DrawBatch for this call from a fresh generator.
func (r *run) batch(n, size int) [][]float64 {
	return lcg.Generate(n, size, r.opts.seed)
}

// Sample validates args, size and the seed in that order and draws size
// variates. Arguments may be any Go numeric kind, json.Number or a numeric
// string. Integer parameters reject floating point kinds.
func (d *Distribution) Sample(args []interface{}, size interface{}, opts ...Option) (*Result, error) {
	return d.sample(args, size, nil, opts)
}

// SampleWithSeed is Sample with an untyped seed that takes precedence over
// WithSeed. A nil seed falls back to the options.
func (d *Distribution) SampleWithSeed(args []interface{}, size, seed interface{}, opts ...Option) (*Result, error) {
	return d.sample(args, size, seed, opts)
}

func (d *Distribution) sample(args []interface{}, size, seed interface{}, opts []Option) (*Result, error) {
	if len(args) != len(d.params) {
		return nil, ErrArgumentCount
	}

	vals := make([]float64, len(args))
	converted := make([]bool, len(args))
	for _, i := range d.typeOrder {
		v, err := d.params[i].convert(args[i])
		if err != nil {
			return nil, err
		}
		vals[i], converted[i] = v, true
	}
	for i, p := range d.params {
		if !converted[i] {
			v, err := p.convert(args[i])
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		for _, c := range p.checks {
			if err := c(vals[:i+1]); err != nil {
				return nil, err
			}
		}
	}

	n, err := toInt("size", size)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, valueError("size", "must be greater than zero")
	}
	opt := newOptions(opts...)
	if opt.maxSize > 0 && n > int64(opt.maxSize) {
		return nil, valueError("size", fmt.Sprintf("must not exceed %d", opt.maxSize))
	}

	if seed != nil {
		s, err := toInt("seed", seed)
		if err != nil {
			return nil, err
		}
		opt.seed = s
	}
	if opt.seed <= 0 {
		return nil, valueError("seed", "must be greater than zero")
	}
	if opt.poissonMargin <= 0 {
		return nil, valueError("poisson margin", "must be greater than zero")
	}
	if err := d.checkDraws(vals, int(n), opt); err != nil {
		return nil, err
	}

	r := &run{opts: opt}
	res := &Result{Distribution: d.Name, Seed: opt.seed, Size: int(n)}
	if d.Discrete {
		res.Ints = d.ints(r, vals, int(n))
	} else {
		res.Floats = d.floats(r, vals, int(n))
	}
	return res, nil
}

func (p param) convert(v interface{}) (float64, error) {
	if p.Integer {
		n, err := toInt(p.Name, v)
		return float64(n), err
	}
	return toFloat(p.Name, v)
}

// checkDraws rejects calls whose DrawBatch cannot be allocated, or that
// exceed the configured draw limit.
func (d *Distribution) checkDraws(args []float64, size int, opt *Options) error {
	perVariate, name := 1.0, ""
	if d.draws != nil {
		perVariate, name = d.draws(args, opt)
	}
	if name == "" {
		name = "size"
	}
	if perVariate >= math.MaxInt32 {
		return valueError(name, "is too large")
	}
	if total := perVariate * float64(size); opt.maxDraws > 0 && total > float64(opt.maxDraws) {
		return valueError(name, fmt.Sprintf("needs %.0f draws, more than the limit of %d", total, opt.maxDraws))
	}
	return nil
}

func toFloat(name string, v interface{}) (float64, error) {
	var (
		f   float64
		err error
	)
	switch x := v.(type) {
	case nil, bool:
		return 0, typeError(name, "must be numeric")
	case json.Number:
		f, err = x.Float64()
	default:
		f, err = cast.ToFloat64E(v)
	}
	if err != nil || math.IsNaN(f) {
		return 0, typeError(name, "must be numeric")
	}
	return f, nil
}

func toInt(name string, v interface{}) (int64, error) {
	var (
		n   int64
		err error
	)
	switch x := v.(type) {
	case nil, bool, float32, float64:
		return 0, typeError(name, "must be an integer")
	case json.Number:
		n, err = x.Int64()
	default:
		n, err = cast.ToInt64E(v)
	}
	if err != nil {
		return 0, typeError(name, "must be an integer")
	}
	return n, nil
}

var registry = map[string]*Distribution{}

func register(d *Distribution) *Distribution {
	registry[d.Name] = d
	return d
}

// Lookup finds a distribution by name. Names are case insensitive and may
// carry a "rand_" prefix, so "rand_unif" and "unif" are the same.
func Lookup(name string) (*Distribution, bool) {
	name = strings.TrimPrefix(strings.ToLower(name), "rand_")
	d, ok := registry[name]
	return d, ok
}

// Distributions returns every registered distribution sorted by name.
func Distributions() []*Distribution {
	ds := make([]*Distribution, 0, len(registry))
	for _, d := range registry {
		ds = append(ds, d)
	}
	sort.Slice(ds, func(i, j int) bool {
		return ds[i].Name < ds[j].Name
	})
	return ds
}

// Call samples the named distribution. args holds the distribution
// parameters followed by size and, optionally, the seed.
func Call(name string, args ...interface{}) (*Result, error) {
	d, ok := Lookup(name)
	if !ok {
		return nil, ErrUnknownDistribution
	}
	np := len(d.params)
	switch len(args) {
	case np + 1:
		return d.sample(args[:np], args[np], nil, nil)
	case np + 2:
		return d.sample(args[:np], args[np], args[np+1], nil)
	default:
		return nil, ErrArgumentCount
	}
}

func floatArgs(args ...float64) []interface{} {
	vs := make([]interface{}, len(args))
	for i, a := range args {
		vs[i] = a
	}
	return vs
}
