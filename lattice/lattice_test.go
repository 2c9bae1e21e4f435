// SPDX-License-Identifier: MIT

package lattice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/geometry"
	"github.com/katalvlaran/surfacecode/lattice"
)

// build returns a fresh d=3 lattice on its own circuit.
func build(t *testing.T, opts ...lattice.Option) (*lattice.Lattice, *circuit.Circuit) {
	t.Helper()
	c := circuit.New()
	l, err := lattice.New(c, lattice.Params{Distance: 3}, opts...)
	require.NoError(t, err)
	return l, c
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Registers(t *testing.T) {
	l, c := build(t, lattice.WithName("q0"))
	require.Equal(t, "q0", l.Name())
	require.Equal(t, 3, l.Distance())

	regs := c.QuantumRegisters()
	require.Equal(t, []circuit.QuantumRegister{
		{Name: "q0_data", Size: 9},
		{Name: "q0_mz", Size: 4},
		{Name: "q0_mx", Size: 4},
		{Name: "q0_ancilla", Size: 1},
	}, regs)
	require.Equal(t, "q0_mx", l.SyndromeRegister(geometry.FamilyX).Name)
	require.Equal(t, "q0_mz", l.SyndromeRegister(geometry.FamilyZ).Name)
	require.Zero(t, c.Len(), "construction appends no operations")

	require.Equal(t, -1, l.Round())
	require.Equal(t, -1, l.Readouts())
	require.Equal(t, -1, l.LatticeReadouts())
}

func TestNew_DefaultName(t *testing.T) {
	l, _ := build(t)
	require.Equal(t, lattice.DefaultName, l.Name())
	require.Equal(t, "tqubit_data", l.DataRegister().Name)
}

func TestNew_ConfigurationErrors(t *testing.T) {
	cases := []struct {
		name string
		d    int
		err  error
	}{
		{"Missing", 0, geometry.ErrMissingDistance},
		{"Even", 4, geometry.ErrInvalidDistance},
		{"Negative", -1, geometry.ErrInvalidDistance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := circuit.New()
			_, err := lattice.New(c, lattice.Params{Distance: tc.d})
			require.ErrorIs(t, err, tc.err)
			require.Empty(t, c.QuantumRegisters(), "no register work before validation")
		})
	}
}

func TestNew_NilProgram(t *testing.T) {
	_, err := lattice.New(nil, lattice.Params{Distance: 3})
	require.ErrorIs(t, err, lattice.ErrNilProgram)
}

func TestNew_SharedProgram(t *testing.T) {
	c := circuit.New()
	_, err := lattice.New(c, lattice.Params{Distance: 3}, lattice.WithName("a"))
	require.NoError(t, err)
	_, err = lattice.New(c, lattice.Params{Distance: 5}, lattice.WithName("b"))
	require.NoError(t, err)
	require.Equal(t, 9+4+4+1+25+12+12+1, c.NumQubits())

	_, err = lattice.New(c, lattice.Params{Distance: 3}, lattice.WithName("a"))
	require.ErrorIs(t, err, circuit.ErrDuplicateRegister)
}

func TestNew_CollisionLeavesProgramUntouched(t *testing.T) {
	for _, suffix := range []string{"_data", "_mz", "_mx", "_ancilla"} {
		t.Run(suffix, func(t *testing.T) {
			c := circuit.New()
			_, err := c.AddQuantumRegister("q"+suffix, 1)
			require.NoError(t, err)

			_, err = lattice.New(c, lattice.Params{Distance: 3}, lattice.WithName("q"))
			require.ErrorIs(t, err, circuit.ErrDuplicateRegister)
			require.Equal(t, []circuit.QuantumRegister{{Name: "q" + suffix, Size: 1}}, c.QuantumRegisters())

			// the prefix stays usable once the collision is gone
			_, err = lattice.New(c, lattice.Params{Distance: 3}, lattice.WithName("r"))
			require.NoError(t, err)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { lattice.WithName("") })
	require.Panics(t, func() { lattice.WithLogger(nil) })
}

//----------------------------------------------------------------------------//
// Stabilization rounds
//----------------------------------------------------------------------------//

func TestStabilize_OperationCounts(t *testing.T) {
	l, c := build(t)
	require.NoError(t, l.Stabilize())

	require.Equal(t, 0, l.Round())
	require.Equal(t, 24, c.Count(circuit.OpCX))
	require.Equal(t, 8, c.Count(circuit.OpH), "one basis change pair per X plaquette")
	require.Equal(t, 8, c.Count(circuit.OpMeasure))
	require.Equal(t, 8, c.Count(circuit.OpReset))
	require.Equal(t, 9, c.Count(circuit.OpBarrier))
	require.Equal(t, 57, c.Len())

	creg, ok := l.RoundRegister(0)
	require.True(t, ok)
	require.Equal(t, circuit.ClassicalRegister{Name: "tqubit_c0", Size: 8}, creg)
}

func TestStabilize_MeasurementLayout(t *testing.T) {
	l, c := build(t)
	require.NoError(t, l.Stabilize())

	var measures []circuit.Op
	for _, op := range c.Ops() {
		if op.Kind == circuit.OpMeasure {
			measures = append(measures, op)
		}
	}
	require.Len(t, measures, 8)
	for i := 0; i < 4; i++ {
		require.Equal(t, circuit.Qubit{Register: "tqubit_mz", Index: i}, measures[i].Qubits[0])
		require.Equal(t, circuit.Clbit{Register: "tqubit_c0", Index: i}, measures[i].Clbit, "Z family in low half")
		require.Equal(t, circuit.Qubit{Register: "tqubit_mx", Index: i}, measures[4+i].Qubits[0])
		require.Equal(t, circuit.Clbit{Register: "tqubit_c0", Index: 4 + i}, measures[4+i].Clbit, "X family in high half")
	}
}

func TestStabilize_ProtocolOrder(t *testing.T) {
	l, c := build(t)
	require.NoError(t, l.Stabilize())

	ops := c.Ops()
	// X plaquette 0 (bottom boundary row) comes first.
	want := []string{
		"h tqubit_mx[0]",
		"cx tqubit_mx[0], tqubit_data[1]",
		"cx tqubit_mx[0], tqubit_data[0]",
		"h tqubit_mx[0]",
		"barrier",
	}
	for i, w := range want {
		require.Equal(t, w, ops[i].String())
	}
	// First Z plaquette follows the four X plaquettes (20 gates + 4 barriers).
	require.Equal(t, "cx tqubit_data[1], tqubit_mz[0]", ops[24].String())
	require.Equal(t, "cx tqubit_data[4], tqubit_mz[0]", ops[25].String())
}

func TestStabilize_RoundsAdvance(t *testing.T) {
	l, c := build(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Stabilize())
		require.Equal(t, i, l.Round())
	}
	names := []string{}
	for _, r := range c.ClassicalRegisters() {
		names = append(names, r.Name)
	}
	require.Equal(t, []string{"tqubit_c0", "tqubit_c1", "tqubit_c2"}, names)
	_, ok := l.RoundRegister(3)
	require.False(t, ok)
}

func TestStabilize_FailedAllocationKeepsCounter(t *testing.T) {
	c := circuit.New()
	l, err := lattice.New(c, lattice.Params{Distance: 3}, lattice.WithName("q"))
	require.NoError(t, err)
	_, err = c.AddClassicalRegister("q_c0", 1)
	require.NoError(t, err)

	require.ErrorIs(t, l.Stabilize(), circuit.ErrDuplicateRegister)
	require.Equal(t, -1, l.Round())
	_, ok := l.RoundRegister(0)
	require.False(t, ok)
	require.Zero(t, c.Len(), "no operations after a failed allocation")

	// a retry hits the same name; counter and registers stay in step
	require.ErrorIs(t, l.Stabilize(), circuit.ErrDuplicateRegister)
	require.Equal(t, -1, l.Round())
}

// flakyProgram fails its first classical register allocation.
type flakyProgram struct {
	*circuit.Circuit
	failed bool
}

func (p *flakyProgram) AddClassicalRegister(name string, size int) (circuit.ClassicalRegister, error) {
	if !p.failed {
		p.failed = true
		return circuit.ClassicalRegister{}, fmt.Errorf("allocate %q: unavailable", name)
	}
	return p.Circuit.AddClassicalRegister(name, size)
}

func TestStabilize_RetryAfterFailedAllocation(t *testing.T) {
	p := &flakyProgram{Circuit: circuit.New()}
	l, err := lattice.New(p, lattice.Params{Distance: 3}, lattice.WithName("q"))
	require.NoError(t, err)

	require.Error(t, l.Stabilize())
	require.Equal(t, -1, l.Round())

	require.NoError(t, l.Stabilize())
	require.Equal(t, 0, l.Round())
	reg, ok := l.RoundRegister(0)
	require.True(t, ok)
	require.Equal(t, "q_c0", reg.Name)
	require.Equal(t, []circuit.ClassicalRegister{{Name: "q_c0", Size: 8}}, p.ClassicalRegisters())
}

func TestReadouts_FailedAllocationKeepsCounters(t *testing.T) {
	c := circuit.New()
	l, err := lattice.New(c, lattice.Params{Distance: 3}, lattice.WithName("q"))
	require.NoError(t, err)
	_, err = c.AddClassicalRegister("q_readout_0", 1)
	require.NoError(t, err)
	_, err = c.AddClassicalRegister("q_data_readout_0", 1)
	require.NoError(t, err)

	require.ErrorIs(t, l.ReadoutZ(), circuit.ErrDuplicateRegister)
	require.Equal(t, -1, l.Readouts())
	_, ok := l.ReadoutRegister()
	require.False(t, ok)

	require.ErrorIs(t, l.LatticeReadoutX(), circuit.ErrDuplicateRegister)
	require.Equal(t, -1, l.LatticeReadouts())
	_, ok = l.DataReadoutRegister()
	require.False(t, ok)
}

func TestRoundRegister_TracksRound(t *testing.T) {
	l, _ := build(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Stabilize())
		reg, ok := l.RoundRegister(l.Round())
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("tqubit_c%d", l.Round()), reg.Name)
	}
}

func TestEntangleFamilies(t *testing.T) {
	l, c := build(t)
	require.NoError(t, l.EntangleZ())
	require.Equal(t, 12, c.Count(circuit.OpCX))
	require.Zero(t, c.Count(circuit.OpH))

	require.NoError(t, l.EntangleX())
	require.Equal(t, 24, c.Count(circuit.OpCX))
	require.Equal(t, 8, c.Count(circuit.OpH))
}

func TestStabilize_DistanceOne(t *testing.T) {
	c := circuit.New()
	l, err := lattice.New(c, lattice.Params{Distance: 1})
	require.NoError(t, err)
	require.NoError(t, l.Stabilize())
	require.Equal(t, 1, c.Len(), "only the closing barrier")
}

//----------------------------------------------------------------------------//
// Logical operators and readouts
//----------------------------------------------------------------------------//

func TestLogicalOperators(t *testing.T) {
	l, c := build(t)
	require.NoError(t, l.LogicalX())
	require.NoError(t, l.LogicalZ())
	require.Equal(t,
		"x tqubit_data[0]\nx tqubit_data[3]\nx tqubit_data[6]\nbarrier\n"+
			"z tqubit_data[0]\nz tqubit_data[1]\nz tqubit_data[2]\nbarrier\n",
		c.String())
}

func TestReadoutX(t *testing.T) {
	l, c := build(t)
	require.NoError(t, l.ReadoutX())
	require.Equal(t, 0, l.Readouts())
	require.Equal(t,
		"reset tqubit_ancilla[0]\n"+
			"h tqubit_ancilla[0]\n"+
			"cx tqubit_ancilla[0], tqubit_data[0]\n"+
			"cx tqubit_ancilla[0], tqubit_data[3]\n"+
			"cx tqubit_ancilla[0], tqubit_data[6]\n"+
			"h tqubit_ancilla[0]\n"+
			"measure tqubit_ancilla[0] -> tqubit_readout_0[0]\n"+
			"barrier\n",
		c.String())
}

func TestReadoutZ(t *testing.T) {
	l, c := build(t)
	require.NoError(t, l.ReadoutZ())
	require.NoError(t, l.ReadoutZ())
	require.Equal(t, 1, l.Readouts())

	reg, ok := l.ReadoutRegister()
	require.True(t, ok)
	require.Equal(t, "tqubit_readout_1", reg.Name)

	ops := c.Ops()
	require.Equal(t, "cx tqubit_data[0], tqubit_ancilla[0]", ops[1].String())
	require.Equal(t, "cx tqubit_data[2], tqubit_ancilla[0]", ops[3].String())
	require.Zero(t, c.Count(circuit.OpH))
}

func TestLatticeReadouts(t *testing.T) {
	l, c := build(t)
	_, ok := l.DataReadoutRegister()
	require.False(t, ok)

	require.NoError(t, l.LatticeReadoutZ())
	require.Zero(t, c.Count(circuit.OpH))
	require.Equal(t, 9, c.Count(circuit.OpMeasure))

	require.NoError(t, l.LatticeReadoutX())
	require.Equal(t, 9, c.Count(circuit.OpH))
	require.Equal(t, 18, c.Count(circuit.OpMeasure))
	require.Equal(t, 1, l.LatticeReadouts())

	reg, ok := l.DataReadoutRegister()
	require.True(t, ok)
	require.Equal(t, circuit.ClassicalRegister{Name: "tqubit_data_readout_1", Size: 9}, reg)
}

func TestIdentityAndResets(t *testing.T) {
	l, c := build(t)
	require.NoError(t, l.Identity())
	require.Equal(t, 9+4+4+1, c.Count(circuit.OpI))

	require.NoError(t, l.IdentityData())
	require.Equal(t, 18+9, c.Count(circuit.OpI))

	require.NoError(t, l.ResetXPlus())
	require.Equal(t, 9, c.Count(circuit.OpReset))
	require.Equal(t, 9, c.Count(circuit.OpH))

	require.NoError(t, l.ResetZPlus())
	require.Equal(t, 18, c.Count(circuit.OpReset))
	require.Equal(t, 9, c.Count(circuit.OpH))
	require.Equal(t, 4, c.Count(circuit.OpBarrier))
}

//----------------------------------------------------------------------------//
// Logging
//----------------------------------------------------------------------------//

func TestLogger_RecordsRounds(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l, _ := build(t, lattice.WithName("obs"), lattice.WithLogger(zap.New(core)))

	require.NoError(t, l.Stabilize())
	require.NoError(t, l.ReadoutZ())
	require.NoError(t, l.LatticeReadoutX())

	require.Equal(t, 1, logs.FilterMessage("lattice built").Len())
	rounds := logs.FilterMessage("stabilizer round appended").All()
	require.Len(t, rounds, 1)
	require.Equal(t, "obs", rounds[0].ContextMap()["lattice"])
	require.Equal(t, int64(0), rounds[0].ContextMap()["round"])
	require.Equal(t, 1, logs.FilterMessage("logical readout appended").Len())
	require.Equal(t, 1, logs.FilterMessage("lattice readout appended").Len())
}
