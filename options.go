package fsa

import "log/slog"

type options struct {
	namer  Namer
	logger *slog.Logger
}

// Option configures Minimize.
type Option func(*options)

// WithNamer Sets how merged states are named. Defaults to ConcatNamer.
func WithNamer(namer Namer) Option {
	return func(o *options) {
		if namer != nil {
			o.namer = namer
		}
	}
}

// WithLogger Receives one debug record per refinement round. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		namer:  ConcatNamer,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
