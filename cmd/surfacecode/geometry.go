// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/surfacecode/geometry"
)

func (a *app) geometryCmd() *cobra.Command {
	var data bool
	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print the plaquette layout of both stabilizer families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := geometry.New(a.cfg.Distance)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "distance %d: %d data qubits, %d syndromes per family\n\n",
				g.Distance(), g.NumData(), g.NumSyndrome())
			// styles degrade to plain text when out is not a terminal
			st := newTableStyles(lipgloss.NewRenderer(out))
			if data {
				fmt.Fprint(out, st.dataTable(g))
				return nil
			}
			fmt.Fprint(out, st.plaquetteTable(g))
			return nil
		},
	}
	cmd.Flags().BoolVar(&data, "data", false, "list plaquette membership per data qubit instead")
	return cmd
}

type tableStyles struct {
	header lipgloss.Style
	cell   lipgloss.Style
	sep    lipgloss.Style
}

func newTableStyles(r *lipgloss.Renderer) tableStyles {
	return tableStyles{
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		sep:    r.NewStyle().Faint(true),
	}
}

// plaquetteTable renders one row per plaquette, X family first.
func (st tableStyles) plaquetteTable(g *geometry.Geometry) string {
	headers := []string{"family", "syndrome", "top_left", "top_right", "bottom_left", "bottom_right", "weight"}
	var rows [][]string
	for _, f := range geometry.Families() {
		for _, p := range g.Plaquettes(f) {
			row := []string{f.ShortName(), strconv.Itoa(p.Syndrome)}
			for _, n := range p.Neighbors() {
				row = append(row, n.String())
			}
			rows = append(rows, append(row, strconv.Itoa(p.Weight())))
		}
	}
	return st.render(headers, rows)
}

// dataTable renders one row per data qubit with the plaquettes touching it.
func (st tableStyles) dataTable(g *geometry.Geometry) string {
	headers := []string{"data", "row", "col", "mx", "mz"}
	rows := make([][]string, 0, g.NumData())
	for idx := 0; idx < g.NumData(); idx++ {
		r, c := g.Coordinate(idx)
		m := g.Membership(idx)
		rows = append(rows, []string{
			strconv.Itoa(idx), strconv.Itoa(r), strconv.Itoa(c),
			joinInts(m[geometry.FamilyX]), joinInts(m[geometry.FamilyZ]),
		})
	}
	return st.render(headers, rows)
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

func (st tableStyles) render(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	// Width includes padding
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	line := func(cells []string, style lipgloss.Style) {
		for i, c := range cells {
			sb.WriteString(style.Width(widths[i]).Render(c))
			if i < len(cells)-1 {
				sb.WriteString(st.sep.Render("|"))
			}
		}
		sb.WriteString("\n")
	}
	line(headers, st.header)
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(st.sep.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")
	for _, row := range rows {
		line(row, st.cell)
	}
	return sb.String()
}
