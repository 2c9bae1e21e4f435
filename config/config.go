// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/surfacecode/geometry"
	"github.com/katalvlaran/surfacecode/lattice"
	"github.com/katalvlaran/surfacecode/qubit"
	"github.com/katalvlaran/surfacecode/readout"
)

// ErrInvalidConfig wraps every validation and override failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment overrides.
const (
	EnvDistance = "SURFACECODE_DISTANCE"
	EnvRounds   = "SURFACECODE_ROUNDS"
)

// Output formats of the circuit command.
const (
	FormatQASM = "qasm"
	FormatText = "text"
)

// Config holds the settings of one memory experiment and its decoding.
type Config struct {
	// Name prefixes every register of the logical qubit.
	Name     string `yaml:"name" toml:"name"`
	Distance int    `yaml:"distance" toml:"distance"`
	Rounds   int    `yaml:"rounds" toml:"rounds"`
	// Basis is "X" or "Z".
	Basis string `yaml:"basis" toml:"basis"`
	// Idle inserts an identity layer before every round.
	Idle bool `yaml:"idle" toml:"idle"`
	// Workers bounds concurrent decoding; 0 means GOMAXPROCS.
	Workers  int    `yaml:"workers" toml:"workers"`
	Format   string `yaml:"format" toml:"format"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Default returns a d=3, three-round Z memory experiment.
func Default() *Config {
	return &Config{
		Name:     lattice.DefaultName,
		Distance: 3,
		Rounds:   3,
		Basis:    "Z",
		Format:   FormatQASM,
		LogLevel: "info",
	}
}

// Load reads path over Default. Files ending in .toml are TOML, anything
// else is YAML. A missing file yields the defaults. Environment overrides
// are applied last; the result is not validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	case isTOML(path):
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c to path in the format its extension selects.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	var data []byte
	if isTOML(path) {
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(c); err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		data = []byte(sb.String())
	} else {
		var err error
		if data, err = yaml.Marshal(c); err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) applyEnvOverrides() error {
	for _, o := range []struct {
		key string
		dst *int
	}{
		{EnvDistance, &c.Distance},
		{EnvRounds, &c.Rounds},
	} {
		v := strings.TrimSpace(os.Getenv(o.key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, o.key, v)
		}
		*o.dst = n
	}
	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidConfig)
	}
	if err := geometry.CheckDistance(c.Distance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds %d, need at least 1", ErrInvalidConfig, c.Rounds)
	}
	if _, err := c.ReadoutType(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative workers %d", ErrInvalidConfig, c.Workers)
	}
	if c.Format != FormatQASM && c.Format != FormatText {
		return fmt.Errorf("%w: format %q (valid: %s, %s)", ErrInvalidConfig, c.Format, FormatQASM, FormatText)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Params returns the lattice parameters.
func (c *Config) Params() lattice.Params {
	return lattice.Params{Distance: c.Distance}
}

// ReadoutType parses Basis. An empty basis is rejected.
func (c *Config) ReadoutType() (readout.Type, error) {
	t, err := readout.ParseType(c.Basis)
	if err != nil {
		return readout.TypeNone, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if t == readout.TypeNone {
		return readout.TypeNone, fmt.Errorf("%w: basis must be X or Z", ErrInvalidConfig)
	}
	return t, nil
}

// Level parses LogLevel; empty means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// QubitOptions translates c into options for qubit.New.
func (c *Config) QubitOptions(logger *zap.Logger) []qubit.Option {
	var opts []qubit.Option
	if c.Name != "" {
		opts = append(opts, qubit.WithName(c.Name))
	}
	if logger != nil {
		opts = append(opts, qubit.WithLogger(logger))
	}
	if c.Idle {
		opts = append(opts, qubit.WithIdle())
	}
	if c.Workers > 0 {
		opts = append(opts, qubit.WithWorkers(c.Workers))
	}
	return opts
}
