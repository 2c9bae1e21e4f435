// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/surfacecode/geometry"
	"github.com/katalvlaran/surfacecode/readout"
)

// decodeReport is the JSON document printed by the decode command.
type decodeReport struct {
	Distance         int             `json:"distance"`
	Final            string          `json:"final,omitempty"`
	Shots            []readout.Shot  `json:"shots"`
	Summary          readout.Summary `json:"summary"`
	LogicalErrorRate float64         `json:"logical_error_rate"`
}

func (a *app) decodeCmd() *cobra.Command {
	var (
		final    string
		expected int
	)
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode measurement records into syndrome defects",
		Long: `Reads records from file, or from stdin when file is omitted or "-".
A .json file holds a histogram {"record": count, ...}; any other input holds
one record per line. Records are tokens separated by spaces, most recent
first: the logical bit (or a full lattice readout), then one token per
stabilization round.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			counts, err := readCounts(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			t, err := a.finalType(cmd, final)
			if err != nil {
				return err
			}

			g, err := geometry.New(a.cfg.Distance)
			if err != nil {
				return err
			}
			opts := []readout.Option{readout.WithLogger(a.logger)}
			if a.cfg.Workers > 0 {
				opts = append(opts, readout.WithWorkers(a.cfg.Workers))
			}
			dec := readout.NewDecoder(g, opts...)

			shots, err := dec.DecodeCounts(cmd.Context(), counts, t)
			if err != nil {
				return err
			}
			sum := readout.Summarize(shots)
			a.logger.Info("decoded records",
				zap.String("source", path),
				zap.Int("records", len(shots)),
				zap.Int("shots", sum.Shots),
				zap.Int("clean", sum.Clean))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(decodeReport{
				Distance:         g.Distance(),
				Final:            t.String(),
				Shots:            shots,
				Summary:          sum,
				LogicalErrorRate: sum.LogicalErrorRate(expected),
			})
		},
	}
	cmd.Flags().StringVar(&final, "final", "", `basis of a leading full lattice readout: X, Z or "none" (default: config basis)`)
	cmd.Flags().IntVar(&expected, "expected", 0, "logical value the experiment should return")
	return cmd
}

// finalType picks the readout type: --final when given, else the config basis.
func (a *app) finalType(cmd *cobra.Command, final string) (readout.Type, error) {
	if !cmd.Flags().Changed("final") {
		return a.cfg.ReadoutType()
	}
	if strings.EqualFold(final, "none") {
		return readout.TypeNone, nil
	}
	return readout.ParseType(final)
}

// readCounts loads a histogram from path ("-" is stdin). Plain-text input
// holds one record per line; repeated lines accumulate.
func readCounts(stdin io.Reader, path string) (map[string]int, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open records: %w", err)
		}
		defer f.Close()
		r = f
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		counts := map[string]int{}
		if err := json.NewDecoder(r).Decode(&counts); err != nil {
			return nil, fmt.Errorf("parse histogram %s: %w", path, err)
		}
		return counts, nil
	}

	counts := map[string]int{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		counts[line]++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return counts, nil
}
