// SPDX-License-Identifier: MIT

// Package circuit defines the execution-substrate contract consumed by the
// lattice: named quantum and classical registers, single-unit gates, a
// controlled-NOT with explicit control/target roles, reset, measurement and
// barriers, all appended to one ordered program.
//
// Program is the contract. Circuit is an in-memory recorder satisfying it:
// it validates every unit reference, keeps operations in append order and
// renders them as a plain listing (String) or OpenQASM 2.0 (QASM). It never
// simulates anything; execution belongs to whatever consumes the program.
//
// Errors follow the sticky pattern of bufio.Writer: the first invalid
// operation is kept, every later operation is dropped, and Err reports it.
//
//   - ErrDuplicateRegister: a register name is already taken.
//   - ErrBadSize: negative register size or mismatched group lengths.
//   - ErrUnknownUnit: an operation references a missing register or index.
package circuit
