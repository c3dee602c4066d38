// Package pedersen implements the Barretenberg flavour of Pedersen
// commitments and hashes over Grumpkin.  Inputs are BN254 scalar field
// elements, which are Grumpkin base field elements.
package pedersen

import (
	"math/big"
	"sync"

	"github.com/LHerskind/grumpkin-schnorr/grumpkin"
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/group/mod"
)

const (
	// DefaultDomainSeparator is the domain used for commitment generators.
	DefaultDomainSeparator = "DEFAULT_DOMAIN_SEPARATOR"

	lengthDomainSeparator = "pedersen_hash_length"
)

var suite = grumpkin.NewSuite()

var (
	cacheMtx sync.Mutex
	cache    = make(map[string][]*grumpkin.Point)
)

// Generators returns count generators of domain starting at offset.
// Derived generators are cached per domain; callers receive copies.
func Generators(count, offset int, domain string) []*grumpkin.Point {
	cacheMtx.Lock()
	defer cacheMtx.Unlock()

	gens := cache[domain]
	if need := offset + count; len(gens) < need {
		more := grumpkin.DeriveGenerators([]byte(domain), need-len(gens), len(gens))
		gens = append(gens, more...)
		cache[domain] = gens
	}

	out := make([]*grumpkin.Point, count)
	for i := range out {
		out[i] = gens[offset+i].Clone().(*grumpkin.Point)
	}
	return out
}

// LengthGenerator is the generator that binds the number of hashed inputs.
func LengthGenerator() *grumpkin.Point {
	return Generators(1, 0, lengthDomainSeparator)[0]
}

// Commit returns sum inputs[i] * G_i over the default generators.
func Commit(inputs ...*mod.Int) *grumpkin.Point {
	return commit(Generators(len(inputs), 0, DefaultDomainSeparator), inputs)
}

func commit(gens []*grumpkin.Point, inputs []*mod.Int) *grumpkin.Point {
	var res kyber.Point = suite.Point().Null()
	for i, in := range inputs {
		res = suite.Point().Add(res, suite.Point().Mul(in, gens[i]))
	}
	return res.(*grumpkin.Point)
}

// Hash returns the x coordinate of len(inputs) * H + Commit(inputs), where H
// is the length generator.  A result at infinity hashes to zero.
func Hash(inputs ...*mod.Int) *mod.Int {
	n := grumpkin.ScalarFromInt64(int64(len(inputs)))
	res := suite.Point().Add(
		suite.Point().Mul(n, LengthGenerator()),
		Commit(inputs...),
	).(*grumpkin.Point)

	if res.IsInfinite() {
		return grumpkin.NewFieldElement(new(big.Int))
	}
	return res.X()
}
