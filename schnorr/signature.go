package schnorr

import (
	"crypto/subtle"
	"fmt"

	"github.com/LHerskind/grumpkin-schnorr/grumpkin"
	"go.dedis.ch/kyber/v3/group/mod"
)

const (
	// SignatureSize is the size of an encoded Schnorr signature.
	SignatureSize = 64

	// scalarSize is the size of an encoded big endian scalar.
	scalarSize = grumpkin.ElementSize
)

// Signature is a type representing a Schnorr signature.  The challenge is
// kept as the raw hash output; verifiers compare hashes rather than reduced
// scalars, so no conversion is needed on the circuit side.
type Signature struct {
	s *mod.Int
	e [scalarSize]byte
}

// NewSignature instantiates a new signature given the response s and the raw
// challenge hash e.
func NewSignature(s *mod.Int, e [scalarSize]byte) *Signature {
	return &Signature{s: grumpkin.NewScalar(&s.V), e: e}
}

// Serialize returns the Schnorr signature in its fixed layout.
//
// The signatures are encoded as
//
//	sig[0:32]  s, encoded as a big-endian uint256
//	sig[32:64] e, the raw 32 byte BLAKE2s challenge
func (sig Signature) Serialize() []byte {
	var b [SignatureSize]byte
	s := grumpkin.EncodeElement(sig.s)
	copy(b[0:32], s[:])
	copy(b[32:64], sig.e[:])
	return b[:]
}

// ParseSignature parses a 64 byte signature.  The s component must be below
// the group order; the challenge half is taken as is.
func ParseSignature(sig []byte) (*Signature, error) {
	// The signature must be the correct length.
	sigLen := len(sig)
	if sigLen < SignatureSize {
		str := fmt.Sprintf("malformed signature: too short: %d < %d", sigLen,
			SignatureSize)
		return nil, signatureError(ErrMalformedSignature, str)
	}
	if sigLen > SignatureSize {
		str := fmt.Sprintf("malformed signature: too long: %d > %d", sigLen,
			SignatureSize)
		return nil, signatureError(ErrMalformedSignature, str)
	}

	s, err := grumpkin.ScalarFromBytes(sig[0:32])
	if err != nil {
		str := "malformed signature: s >= group order"
		return nil, signatureError(ErrMalformedSignature, str)
	}
	var e [scalarSize]byte
	copy(e[:], sig[32:64])

	return &Signature{s: s, e: e}, nil
}

// S returns the response scalar.
func (sig Signature) S() *mod.Int {
	return sig.s.Clone().(*mod.Int)
}

// E returns the challenge reduced modulo the group order.
func (sig Signature) E() *mod.Int {
	return grumpkin.ScalarFromUniformBytes(sig.e[:])
}

// RawChallenge returns the challenge hash as carried in the signature.
func (sig Signature) RawChallenge() [scalarSize]byte {
	return sig.e
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.
func (sig Signature) IsEqual(otherSig *Signature) bool {
	return sig.s.Equal(otherSig.s) &&
		subtle.ConstantTimeCompare(sig.e[:], otherSig.e[:]) == 1
}
