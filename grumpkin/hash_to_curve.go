package grumpkin

import (
	"encoding/binary"
	"math/big"

	"lukechampine.com/blake3"
)

// HashToCurve deterministically maps seed to a curve point.  Two BLAKE3
// digests of seed || attempt || {0,1} form a 512 bit integer reduced into
// the base field as x.  The top bit of the first digest selects the parity of
// y.  When x^3 - 17 has no root the attempt counter is bumped.
func HashToCurve(seed []byte) *Point {
	target := make([]byte, len(seed)+2)
	copy(target, seed)

	for attempt := 0; ; attempt++ {
		target[len(seed)] = byte(attempt)

		target[len(seed)+1] = 0
		hi := blake3.Sum256(target)
		target[len(seed)+1] = 1
		lo := blake3.Sum256(target)

		wide := make([]byte, 0, 2*len(hi))
		wide = append(wide, hi[:]...)
		wide = append(wide, lo[:]...)
		x := NewFieldElement(new(big.Int).SetBytes(wide))

		y, ok := Sqrt(curveRHS(x))
		if !ok {
			continue
		}
		odd := hi[0] > 127
		if (y.V.Bit(0) == 1) != odd {
			y = negF(y)
		}
		return &Point{x: x, y: y}
	}
}

// DeriveGenerators returns count independent generators for the given domain
// separator, starting at index start.  Each preimage is the BLAKE3 digest of
// the domain followed by 32 bytes whose first four hold the big-endian index.
func DeriveGenerators(domain []byte, count, start int) []*Point {
	domainHash := blake3.Sum256(domain)

	preimage := make([]byte, 64)
	copy(preimage, domainHash[:])

	generators := make([]*Point, 0, count)
	for i := start; i < start+count; i++ {
		binary.BigEndian.PutUint32(preimage[32:36], uint32(i))
		generators = append(generators, HashToCurve(preimage))
	}
	return generators
}
