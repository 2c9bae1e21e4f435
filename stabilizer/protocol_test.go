// SPDX-License-Identifier: MIT

package stabilizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/geometry"
	"github.com/katalvlaran/surfacecode/stabilizer"
)

// setup allocates a five-unit data register and a one-unit syndrome register.
func setup(t *testing.T) (*circuit.Circuit, circuit.QuantumRegister, circuit.Qubit) {
	t.Helper()
	c := circuit.New()
	data, err := c.AddQuantumRegister("data", 9)
	require.NoError(t, err)
	syn, err := c.AddQuantumRegister("syn", 1)
	require.NoError(t, err)
	return c, data, syn.Qubit(0)
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestValidate(t *testing.T) {
	q := func(i int) stabilizer.Slot { return stabilizer.Use(circuit.Qubit{Register: "data", Index: i}) }
	e := stabilizer.Empty()
	cases := []struct {
		name  string
		kind  stabilizer.Kind
		slots stabilizer.Slots
		ok    bool
	}{
		{"X_Full", stabilizer.KindX, stabilizer.Slots{TopLeft: q(0), TopRight: q(1), BottomLeft: q(3), BottomRight: q(4)}, true},
		{"X_BottomOnly", stabilizer.KindX, stabilizer.Slots{TopLeft: e, TopRight: e, BottomLeft: q(0), BottomRight: q(1)}, true},
		{"X_TopRightWithoutLeft", stabilizer.KindX, stabilizer.Slots{TopRight: q(1), BottomLeft: q(3), BottomRight: q(4)}, false},
		{"X_BottomLeftWithoutRight", stabilizer.KindX, stabilizer.Slots{TopLeft: q(0), TopRight: q(1), BottomLeft: q(3)}, false},
		{"Z_LeftOnly", stabilizer.KindZ, stabilizer.Slots{TopLeft: q(2), BottomLeft: q(5)}, true},
		{"Z_TopRightWithoutBottom", stabilizer.KindZ, stabilizer.Slots{TopLeft: q(0), TopRight: q(1), BottomLeft: q(3)}, false},
		{"Z_TopLeftWithoutBottom", stabilizer.KindZ, stabilizer.Slots{TopLeft: q(0), TopRight: q(1), BottomRight: q(4)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := stabilizer.New(tc.kind, tc.slots)
			if tc.ok {
				require.NoError(t, err)
				require.Equal(t, tc.kind, in.Kind())
				return
			}
			require.ErrorIs(t, err, stabilizer.ErrInconsistentConnections)
			require.ErrorIs(t, err, geometry.ErrInconsistentBoundary)
			require.Nil(t, in)
		})
	}
}

func TestForFamily(t *testing.T) {
	require.Equal(t, stabilizer.KindX, stabilizer.ForFamily(geometry.FamilyX))
	require.Equal(t, stabilizer.KindZ, stabilizer.ForFamily(geometry.FamilyZ))
	require.Equal(t, "XXXX", stabilizer.KindX.String())
	require.Equal(t, "ZZZZ", stabilizer.KindZ.String())
}

//----------------------------------------------------------------------------//
// Entangle
//----------------------------------------------------------------------------//

func TestEntangle_XFull(t *testing.T) {
	c, data, s := setup(t)
	p := geometry.Plaquette{Syndrome: 0,
		TopLeft: geometry.At(1), TopRight: geometry.At(2), BottomLeft: geometry.At(4), BottomRight: geometry.At(5)}
	in, err := stabilizer.Bind(stabilizer.KindX, p, circuit.QuantumRegister{Name: "syn", Size: 1}, data)
	require.NoError(t, err)
	require.NoError(t, in.Entangle(c))

	want := "h syn[0]\n" +
		"cx syn[0], data[2]\n" +
		"cx syn[0], data[1]\n" +
		"cx syn[0], data[5]\n" +
		"cx syn[0], data[4]\n" +
		"h syn[0]\n"
	require.Equal(t, want, c.String())
	require.Equal(t, s, in.Slots().Syndrome)
}

func TestEntangle_XBoundary(t *testing.T) {
	c, data, _ := setup(t)
	p := geometry.Plaquette{Syndrome: 0, BottomLeft: geometry.At(0), BottomRight: geometry.At(1)}
	in, err := stabilizer.Bind(stabilizer.KindX, p, circuit.QuantumRegister{Name: "syn", Size: 1}, data)
	require.NoError(t, err)
	require.NoError(t, in.Entangle(c))
	require.Equal(t, "h syn[0]\ncx syn[0], data[1]\ncx syn[0], data[0]\nh syn[0]\n", c.String())
}

func TestEntangle_ZFull(t *testing.T) {
	c, data, _ := setup(t)
	p := geometry.Plaquette{Syndrome: 0,
		TopLeft: geometry.At(0), TopRight: geometry.At(1), BottomLeft: geometry.At(3), BottomRight: geometry.At(4)}
	in, err := stabilizer.Bind(stabilizer.KindZ, p, circuit.QuantumRegister{Name: "syn", Size: 1}, data)
	require.NoError(t, err)
	require.NoError(t, in.Entangle(c))

	want := "cx data[1], syn[0]\n" +
		"cx data[4], syn[0]\n" +
		"cx data[0], syn[0]\n" +
		"cx data[3], syn[0]\n"
	require.Equal(t, want, c.String())
	require.Zero(t, c.Count(circuit.OpH), "Z parity needs no basis change")
}

func TestEntangle_ZBoundaries(t *testing.T) {
	c, data, _ := setup(t)
	syn := circuit.QuantumRegister{Name: "syn", Size: 1}

	right, err := stabilizer.Bind(stabilizer.KindZ, geometry.Plaquette{TopLeft: geometry.At(2), BottomLeft: geometry.At(5)}, syn, data)
	require.NoError(t, err)
	require.NoError(t, right.Entangle(c))

	left, err := stabilizer.Bind(stabilizer.KindZ, geometry.Plaquette{TopRight: geometry.At(3), BottomRight: geometry.At(6)}, syn, data)
	require.NoError(t, err)
	require.NoError(t, left.Entangle(c))

	require.Equal(t, "cx data[2], syn[0]\ncx data[5], syn[0]\ncx data[3], syn[0]\ncx data[6], syn[0]\n", c.String())
}

func TestBind_RejectsInconsistentPlaquette(t *testing.T) {
	_, data, _ := setup(t)
	p := geometry.Plaquette{TopRight: geometry.At(1), BottomLeft: geometry.At(3), BottomRight: geometry.At(4)}
	_, err := stabilizer.Bind(stabilizer.KindX, p, circuit.QuantumRegister{Name: "syn", Size: 1}, data)
	require.ErrorIs(t, err, stabilizer.ErrInconsistentConnections)
}

func TestEntangle_ReportsProgramError(t *testing.T) {
	c, data, _ := setup(t)
	p := geometry.Plaquette{TopLeft: geometry.At(0), BottomLeft: geometry.At(3)}
	in, err := stabilizer.Bind(stabilizer.KindZ, p, circuit.QuantumRegister{Name: "ghost", Size: 1}, data)
	require.NoError(t, err)
	require.ErrorIs(t, in.Entangle(c), circuit.ErrUnknownUnit)
}
