// SPDX-License-Identifier: MIT

// Package stabilizer holds the two parity-check protocols of the rotated
// surface code as a closed variant, Kind, with one member per syndrome
// family.
//
// Both protocols act on the same five-slot shape: a syndrome unit plus four
// optional neighbors. Construction validates the slot pattern; Entangle
// appends the protocol's operations to a circuit.Program.
//
//   - KindX: H(s); CX(s→tr) CX(s→tl) if the top pair exists;
//     CX(s→br) CX(s→bl) if the bottom pair exists; H(s).
//   - KindZ: CX(tr→s) CX(br→s) if the right pair exists;
//     CX(tl→s) CX(bl→s) if the left pair exists.
//
// Operation order is part of the contract: two programs built from the same
// geometry are identical operation for operation.
package stabilizer
