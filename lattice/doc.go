// SPDX-License-Identifier: MIT

// Package lattice owns one rotated surface-code logical qubit laid onto a
// circuit.Program: its registers, its geometry, its bound stabilizer
// protocols and its round/readout counters.
//
// Registers (prefix = lattice name):
//
//	<name>_data     d² data units, row-major
//	<name>_mz       (d²-1)/2 Z-type syndrome units
//	<name>_mx       (d²-1)/2 X-type syndrome units
//	<name>_ancilla  one unit for logical parity readout
//
// Every stabilization round allocates <name>_c<T> with 2·num_syn bits: the
// Z family lands in bits [0, num_syn), the X family in [num_syn, 2·num_syn).
// Logical readouts allocate <name>_readout_<n> (1 bit) and lattice readouts
// allocate <name>_data_readout_<n> (d² bits). Counters start at -1 and advance
// exactly once per call.
//
// Several lattices may share one Program as long as their names differ.
// A Lattice is not safe for concurrent use.
package lattice
