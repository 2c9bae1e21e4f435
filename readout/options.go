// SPDX-License-Identifier: MIT

package readout

import (
	"runtime"

	"go.uber.org/zap"
)

type config struct {
	logger  *zap.Logger
	workers int
}

// Option customizes a Decoder.
type Option func(*config)

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("readout: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithWorkers bounds the goroutines DecodeCounts may run at once. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("readout: WithWorkers(n < 1)")
	}
	return func(c *config) { c.workers = n }
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop(), workers: runtime.GOMAXPROCS(0)}
	for _, o := range opts {
		o(&c)
	}
	return c
}
