package rule

import (
	"math/big"
	"math/bits"
	"math/rand/v2"
	"strings"
)

// centerBit is the fingerprint bit of the cell being updated (dx=1, dy=1).
const centerBit = 1 << 4

// StandardLife derives Conway's B3/S23 rule as a rule integer.
func StandardLife() *big.Int {
	r := new(big.Int)
	for state := 0; state < Size; state++ {
		neighbors := bits.OnesCount16(uint16(state &^ centerBit))
		alive := state&centerBit != 0
		if neighbors == 3 || (neighbors == 2 && alive) {
			r.SetBit(r, state, 1)
		}
	}
	return r
}

// Random returns a rule drawn uniformly from all 2^512 rules.
func Random(rng *rand.Rand) *big.Int {
	words := make([]big.Word, Size/bits.UintSize)
	for i := range words {
		words[i] = big.Word(rng.Uint64())
	}
	return new(big.Int).SetBits(words)
}

// Parse reads a rule from a non-negative decimal string.
func Parse(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, invalidf("empty rule")
	}
	for i, c := range s {
		if c < '0' || c > '9' {
			return nil, invalidf("non-digit %q at offset %d", c, i)
		}
	}
	r, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, invalidf("cannot parse %q", s)
	}
	if r.BitLen() > Size {
		return nil, invalidf("rule needs %d bits, at most %d are allowed", r.BitLen(), Size)
	}
	return r, nil
}

// ParseTable is Parse followed by Decode.
func ParseTable(s string) (Table, error) {
	r, err := Parse(s)
	if err != nil {
		return Table{}, err
	}
	return Decode(r)
}
