// SPDX-License-Identifier: MIT

// Package config loads the settings of the surfacecode command from a YAML
// or TOML file, with environment overrides for the two values most often
// swept from scripts (SURFACECODE_DISTANCE and SURFACECODE_ROUNDS).
package config
