// SPDX-License-Identifier: MIT

// Package surfacecode builds rotated (XXZZ) surface-code logical qubits as
// gate-level programs and decodes the measurement records they produce.
//
// Everything is organized under one subpackage per concern:
//
//	geometry/    plaquette layout of both stabilizer families for distance d
//	stabilizer/  the X-type and Z-type four-qubit parity protocols
//	circuit/     Program interface, in-memory recorder, OpenQASM 2.0 export
//	lattice/     registers, round/readout counters, full-lattice operations
//	readout/     transcript parsing into (logical bit, defect coordinates)
//	qubit/       user-facing logical qubit, memory experiments, registers
//	config/      YAML/TOML settings of the surfacecode command
//
// d=3 data layout, row-major:
//
//	0 ─ 1 ─ 2
//	│ Z │ X │
//	3 ─ 4 ─ 5
//	│ X │ Z │
//	6 ─ 7 ─ 8
//
// Every stabilization round measures the Z family into the low half and the
// X family into the high half of a fresh 2·(d²-1)/2-bit register; the
// decoder XORs adjacent rounds to locate defects. Turning the defect list
// into a correction is left to an external matching decoder.
//
//	go install github.com/katalvlaran/surfacecode/cmd/surfacecode@latest
package surfacecode
