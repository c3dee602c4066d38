package grumpkin

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"go.dedis.ch/kyber/v3/group/mod"
)

// ElementSize is the width in bytes of an encoded field element or scalar.
const ElementSize = 32

// Grumpkin is the cycle partner of BN254: its base field is the BN254 scalar
// field and its group order is the BN254 base field prime.
var (
	fieldPrime = fr.Modulus()
	groupOrder = fp.Modulus()
)

// FieldPrime returns a copy of the base field prime p.
func FieldPrime() *big.Int {
	return new(big.Int).Set(fieldPrime)
}

// Order returns a copy of the group order n.
func Order() *big.Int {
	return new(big.Int).Set(groupOrder)
}

// NewFieldElement returns v reduced into [0, p).
func NewFieldElement(v *big.Int) *mod.Int {
	return mod.NewInt(v, fieldPrime)
}

// NewScalar returns v reduced into [0, n).
func NewScalar(v *big.Int) *mod.Int {
	return mod.NewInt(v, groupOrder)
}

func FieldElementFromInt64(v int64) *mod.Int {
	return NewFieldElement(big.NewInt(v))
}

func ScalarFromInt64(v int64) *mod.Int {
	return NewScalar(big.NewInt(v))
}

// ScalarFromUniformBytes interprets b as a big-endian integer of any length
// and reduces it modulo the group order.
func ScalarFromUniformBytes(b []byte) *mod.Int {
	return NewScalar(new(big.Int).SetBytes(b))
}

func addF(a, b *mod.Int) *mod.Int {
	return new(mod.Int).Add(a, b).(*mod.Int)
}

func subF(a, b *mod.Int) *mod.Int {
	return new(mod.Int).Sub(a, b).(*mod.Int)
}

func mulF(a, b *mod.Int) *mod.Int {
	return new(mod.Int).Mul(a, b).(*mod.Int)
}

func negF(a *mod.Int) *mod.Int {
	return new(mod.Int).Neg(a).(*mod.Int)
}

// Invert returns a^-1 modulo the modulus a was built with.  Inverting zero
// fails with ErrInvalidInverse.
func Invert(a *mod.Int) (*mod.Int, error) {
	if !a.Nonzero() {
		return nil, MakeError(ErrInvalidInverse, "cannot invert the zero element")
	}
	return new(mod.Int).Inv(a).(*mod.Int), nil
}

// Sqrt returns one square root of a, or false when a is a non-residue.
func Sqrt(a *mod.Int) (*mod.Int, bool) {
	var r big.Int
	if r.ModSqrt(&a.V, a.M) == nil {
		return nil, false
	}
	return mod.NewInt(&r, a.M), true
}

// EncodeElement writes a as a fixed width big-endian integer.
func EncodeElement(a *mod.Int) [ElementSize]byte {
	var b [ElementSize]byte
	a.V.FillBytes(b[:])
	return b
}

func decodeElement(b []byte, modulus *big.Int, what string) (*mod.Int, error) {
	if len(b) != ElementSize {
		str := fmt.Sprintf("%s encoding must be %d bytes, got %d", what,
			ElementSize, len(b))
		return nil, MakeError(ErrInvalidEncoding, str)
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(modulus) >= 0 {
		str := fmt.Sprintf("%s encoding is not below its modulus", what)
		return nil, MakeError(ErrInvalidEncoding, str)
	}
	return mod.NewInt(v, modulus), nil
}

// FieldElementFromBytes decodes a canonical 32 byte big-endian base field
// element.
func FieldElementFromBytes(b []byte) (*mod.Int, error) {
	return decodeElement(b, fieldPrime, "field element")
}

// ScalarFromBytes decodes a canonical 32 byte big-endian scalar.
func ScalarFromBytes(b []byte) (*mod.Int, error) {
	return decodeElement(b, groupOrder, "scalar")
}

// FieldHex renders a field element as 0x followed by 64 lowercase hex digits.
func FieldHex(a *mod.Int) string {
	b := EncodeElement(a)
	return "0x" + hex.EncodeToString(b[:])
}

// ParseFieldHex is the inverse of FieldHex.  The 0x prefix and the full 64
// digit width are required.
func ParseFieldHex(s string) (*mod.Int, error) {
	if !strings.HasPrefix(s, "0x") || len(s) != 2+2*ElementSize {
		str := fmt.Sprintf("field hex %q must be 0x followed by %d digits",
			s, 2*ElementSize)
		return nil, MakeError(ErrInvalidEncoding, str)
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return nil, MakeError(ErrInvalidEncoding, err.Error())
	}
	return FieldElementFromBytes(b)
}
