// SPDX-License-Identifier: MIT

package qubit

import (
	"go.uber.org/zap"
)

type config struct {
	name    string
	logger  *zap.Logger
	idle    bool
	workers int
}

// Option customizes a Qubit or a Register.
type Option func(*config)

// WithName sets the register prefix of a Qubit, or the base name of a
// Register's qubits. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("qubit: WithName(\"\")")
	}
	return func(c *config) { c.name = name }
}

// WithLogger attaches a structured logger to the lattice and decoder. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("qubit: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithIdle makes Memory insert an identity layer before every round.
func WithIdle() Option {
	return func(c *config) { c.idle = true }
}

// WithWorkers bounds concurrent record decoding in DecodeCounts. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("qubit: WithWorkers(n < 1)")
	}
	return func(c *config) { c.workers = n }
}

// DefaultRegisterName is the base name of a Register's qubits when no
// WithName option is given.
const DefaultRegisterName = "treg"

// newConfig applies opts over defaults; name is used unless WithName overrides it.
func newConfig(name string, opts []Option) config {
	c := config{name: name, logger: zap.NewNop()}
	for _, o := range opts {
		o(&c)
	}
	return c
}
