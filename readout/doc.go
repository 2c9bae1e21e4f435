// SPDX-License-Identifier: MIT

// Package readout turns measurement transcripts of a rotated surface-code
// lattice into a logical bit and a space-time list of defects.
//
// Wire format (one record per shot):
//
//	"<first> <round_N> ... <round_1> <round_0>"
//
// Tokens are separated by whitespace; the most recent round comes first, as
// execution backends print later registers first. Each round token holds
// 2·num_syn binary characters, most significant bit first: the low half
// (rightmost characters) carries the Z family, the high half the X family.
// The first token is either a single logical bit, or a full d²-character
// lattice readout. A full readout needs a readout Type so that one more
// stabilizer round can be recomputed from the data values (ExtractFinal).
//
// Defects are bit flips between temporally adjacent rounds. A flip at round
// transition T and plaquette loc maps to:
//
//	X: (T, -0.5+loc, 0.5+loc%2)
//	Z: (T, 0.5+loc/2, 0.5+(loc%2)*2-loc/2)
//
// Downstream matching decoders rely on this embedding.
//
// Errors are fatal for the decode call only and never touch lattice state;
// every one matches ErrDecode through errors.Is.
package readout
