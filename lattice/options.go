// SPDX-License-Identifier: MIT

package lattice

import "go.uber.org/zap"

// DefaultName prefixes registers when WithName is not given.
const DefaultName = "tqubit"

// Params carries the code parameters. Distance must be odd and positive;
// the zero value means "missing".
type Params struct {
	Distance int
}

type config struct {
	name   string
	logger *zap.Logger
}

// Option customizes a Lattice before construction.
type Option func(*config)

// WithName sets the register prefix. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("lattice: WithName(\"\")")
	}
	return func(c *config) { c.name = name }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("lattice: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) config {
	c := config{name: DefaultName, logger: zap.NewNop()}
	for _, o := range opts {
		o(&c)
	}
	return c
}
