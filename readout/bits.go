// SPDX-License-Identifier: MIT

package readout

import "fmt"

// bits holds a binary token indexed by bit position: bits[0] is the last
// character of the token, i.e. unit 0 in register order.
type bits []uint8

// parseBits validates that tok has exactly want binary characters and
// returns it reversed into register order.
func parseBits(tok string, want int, role string) (bits, error) {
	if len(tok) != want {
		return nil, fmt.Errorf("%w: %s %q has %d characters, want %d", ErrTokenLength, role, tok, len(tok), want)
	}
	out := make(bits, want)
	for i := 0; i < want; i++ {
		ch := tok[want-1-i]
		switch ch {
		case '0':
		case '1':
			out[i] = 1
		default:
			return nil, fmt.Errorf("%w: %s %q has %q at %d", ErrNonBinary, role, tok, ch, want-1-i)
		}
	}
	return out, nil
}

// xor returns a ^ b; both must have the same length.
func xor(a, b bits) bits {
	out := make(bits, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
