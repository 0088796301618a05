package randx

import (
	"github.com/go-kit/log"
)

// Options configures a single sampling call.
type Options struct {
	seed          int64
	retryRejected bool
	poissonMargin int
	maxSize       int
	maxDraws      int
	logger        log.Logger
}

// Option mutates Options.
type Option func(opts *Options)

var (
	// DefaultSeed is used when no WithSeed option is given.
	DefaultSeed int64 = 42
	// DefaultPoissonMargin is the number of draws added to floor(lambda) to
	// bound the arrivals simulated for one Poisson variate.
	DefaultPoissonMargin = 10
)

func newOptions(opts ...Option) *Options {
	opt := &Options{
		seed:          DefaultSeed,
		poissonMargin: DefaultPoissonMargin,
	}
	for _, o := range opts {
		o(opt)
	}

	if opt.logger == nil {
		opt.logger = log.NewNopLogger()
	}

	return opt
}

// Seed returns the configured seed.
func (o *Options) Seed() int64 {
	return o.seed
}

// WithSeed sets the starting state of the generator. It must be positive.
func WithSeed(seed int64) Option {
	return func(opts *Options) {
		opts.seed = seed
	}
}

// WithRetryRejected makes the gamma sampler draw fresh pairs until a
// candidate is accepted, so it always returns size values. By default a
// rejected slot produces no output.
func WithRetryRejected(retry bool) Option {
	return func(opts *Options) {
		opts.retryRejected = retry
	}
}

// WithPoissonMargin sets the safety margin of uniforms drawn per Poisson
// variate on top of floor(lambda).
func WithPoissonMargin(margin int) Option {
	return func(opts *Options) {
		opts.poissonMargin = margin
	}
}

// WithMaxSize rejects sizes above max with ErrInvalidArgumentValue.
// Zero, the default, means no limit.
func WithMaxSize(max int) Option {
	return func(opts *Options) {
		opts.maxSize = max
	}
}

// WithMaxDraws bounds the uniforms one call may draw, size times the
// draws per variate, with ErrInvalidArgumentValue. Zero, the default,
// means no limit.
func WithMaxDraws(max int) Option {
	return func(opts *Options) {
		opts.maxDraws = max
	}
}

// WithLogger sets the logger used to report gamma rejections and Poisson
// truncation.
func WithLogger(logger log.Logger) Option {
	return func(opts *Options) {
		opts.logger = logger
	}
}
