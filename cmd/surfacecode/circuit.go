// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/config"
	"github.com/katalvlaran/surfacecode/qubit"
)

func (a *app) circuitCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "circuit",
		Short: "Emit the circuit of a memory experiment",
		Long: `Prepares the +1 eigenstate of the configured basis, appends the configured
number of stabilization rounds and finishes with a lattice readout in the
same basis. The result is printed as OpenQASM 2.0 or as one operation per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Format = format
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			basis, err := a.cfg.ReadoutType()
			if err != nil {
				return err
			}

			c := circuit.New()
			q, err := qubit.New(c, a.cfg.Params(), a.cfg.QubitOptions(a.logger)...)
			if err != nil {
				return err
			}
			if err := q.Memory(basis, a.cfg.Rounds); err != nil {
				return err
			}

			out := c.String()
			if a.cfg.Format == config.FormatQASM {
				out = c.QASM()
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatQASM, "output format: qasm or text")
	return cmd
}
