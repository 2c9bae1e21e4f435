// SPDX-License-Identifier: MIT

package readout

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/surfacecode/geometry"
)

// Type selects which half a full lattice readout refreshes.
type Type int

const (
	// TypeNone means the record carries a single logical bit.
	TypeNone Type = iota
	// TypeX recomputes the X half from an X-basis lattice readout.
	TypeX
	// TypeZ recomputes the Z half from a Z-basis lattice readout.
	TypeZ
)

// ParseType accepts "X", "Z" or "" (TypeNone), case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return TypeNone, nil
	case "X":
		return TypeX, nil
	case "Z":
		return TypeZ, nil
	}
	return TypeNone, fmt.Errorf("%w: %q", ErrUnknownReadoutType, s)
}

// Family returns the syndrome family refreshed by t.
func (t Type) Family() (geometry.Family, bool) {
	switch t {
	case TypeX:
		return geometry.FamilyX, true
	case TypeZ:
		return geometry.FamilyZ, true
	}
	return 0, false
}

func (t Type) String() string {
	switch t {
	case TypeX:
		return "X"
	case TypeZ:
		return "Z"
	case TypeNone:
		return ""
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Coord is a defect location in the code's space-time embedding.
type Coord struct {
	T   float64 `json:"t"`
	Row float64 `json:"row"`
	Col float64 `json:"col"`
}

// XCoord maps X-family plaquette loc at round transition t.
func XCoord(t, loc int) Coord {
	return Coord{T: float64(t), Row: -0.5 + float64(loc), Col: 0.5 + float64(loc%2)}
}

// ZCoord maps Z-family plaquette loc at round transition t.
func ZCoord(t, loc int) Coord {
	return Coord{T: float64(t), Row: 0.5 + float64(loc/2), Col: 0.5 + float64(loc%2*2) - float64(loc/2)}
}

// Result is the decoded form of one record.
type Result struct {
	Logical int     `json:"logical"`
	X       []Coord `json:"x"`
	Z       []Coord `json:"z"`
}

// Defects returns the defect list of family f.
func (r Result) Defects(f geometry.Family) []Coord {
	if f == geometry.FamilyX {
		return r.X
	}
	return r.Z
}
