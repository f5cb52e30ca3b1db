package rule

import (
	"math/big"
	"slices"
)

// Size is the number of distinct 3x3 neighbourhoods, and therefore the length
// of every decoded Table.
const Size = 512

// Table maps a neighbourhood fingerprint to the next state of the centre cell.
type Table struct {
	bits []bool
}

// FromBits builds a Table from raw entries. Shorter slices are accepted; the
// missing entries read as dead.
func FromBits(bits []bool) Table {
	return Table{bits: slices.Clone(bits)}
}

// Decode converts a rule integer into its lookup table. Bit i of r becomes
// entry i of the table.
func Decode(r *big.Int) (Table, error) {
	if r == nil {
		return Table{}, invalidf("nil rule")
	}
	if r.Sign() < 0 {
		return Table{}, invalidf("rule %s is negative", r)
	}
	if r.BitLen() > Size {
		return Table{}, invalidf("rule needs %d bits, at most %d are allowed", r.BitLen(), Size)
	}

	raw := r.Bytes()
	bits := make([]bool, 0, len(raw)*8)
	for _, b := range raw {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>shift)&1 == 1)
		}
	}
	// Big-endian bytes read most-significant-bit first; reversing the whole
	// sequence puts the least-significant bit at index 0.
	slices.Reverse(bits)

	t := Table{bits: make([]bool, Size)}
	copy(t.bits, bits)
	return t, nil
}

// MustDecode is Decode for rules known to be valid at compile time.
func MustDecode(r *big.Int) Table {
	t, err := Decode(r)
	if err != nil {
		panic(err)
	}
	return t
}

// Encode is the inverse of Decode.
func Encode(t Table) *big.Int {
	r := new(big.Int)
	for i, alive := range t.bits {
		if alive {
			r.SetBit(r, i, 1)
		}
	}
	return r
}

// Alive reports the table entry for fp. Fingerprints the table does not cover
// read as dead.
func (t Table) Alive(fp int) bool {
	if fp < 0 || fp >= len(t.bits) {
		return false
	}
	return t.bits[fp]
}

// Len returns the number of entries in the table.
func (t Table) Len() int { return len(t.bits) }

// Bits returns a copy of the table entries.
func (t Table) Bits() []bool { return slices.Clone(t.bits) }
