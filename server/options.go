package server

import (
	"github.com/go-kit/log"

	"github.com/tutils/randx"
)

// Options configures a Server.
type Options struct {
	listenAddr string
	maxSize    int
	maxDraws   int
	logger     log.Logger
	sampleOpts []randx.Option
}

// Option mutates Options.
type Option func(opts *Options)

var (
	DefaultListenAddress = "127.0.0.1:8080"
	DefaultMaxSize       = 100000
	DefaultMaxDraws      = 10000000
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.listenAddr == "" {
		opt.listenAddr = DefaultListenAddress
	}
	if opt.maxSize <= 0 {
		opt.maxSize = DefaultMaxSize
	}
	if opt.maxDraws <= 0 {
		opt.maxDraws = DefaultMaxDraws
	}
	if opt.logger == nil {
		opt.logger = log.NewNopLogger()
	}

	return opt
}

func WithListenAddress(addr string) Option {
	return func(opts *Options) {
		opts.listenAddr = addr
	}
}

// WithMaxSize bounds the size a single request may ask for.
func WithMaxSize(max int) Option {
	return func(opts *Options) {
		opts.maxSize = max
	}
}

// WithMaxDraws bounds the uniforms a single request may consume, size
// times the draws per variate.
func WithMaxDraws(max int) Option {
	return func(opts *Options) {
		opts.maxDraws = max
	}
}

func WithLogger(logger log.Logger) Option {
	return func(opts *Options) {
		opts.logger = logger
	}
}

// WithSampleOptions sets options applied to every sampling call, such as
// the default seed or the gamma retry policy. Seeds given in requests take
// precedence.
func WithSampleOptions(opts ...randx.Option) Option {
	return func(o *Options) {
		o.sampleOpts = append(o.sampleOpts, opts...)
	}
}
