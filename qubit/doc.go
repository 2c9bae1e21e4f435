// SPDX-License-Identifier: MIT

// Package qubit is the user-facing logical qubit: a lattice.Lattice for
// appending operations plus a readout.Decoder for the records those
// operations produce.
//
// A Qubit remembers the basis of its most recent lattice readout so that
// ParseReadout can splice the final stabilizer round without being told
// which half to recompute. Memory appends a whole memory experiment
// (preparation, rounds, readout) in one call.
//
// Register groups several qubits over one shared Program, naming them
// <name>_0 .. <name>_{n-1} (treg_0 .. by default) and addressing them by
// index.
//
//	c := circuit.New()
//	q, _ := qubit.New(c, lattice.Params{Distance: 3})
//	_ = q.Memory(readout.TypeZ, 2)
//	fmt.Print(c.QASM())
package qubit
