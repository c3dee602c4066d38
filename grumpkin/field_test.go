package grumpkin

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModuli(t *testing.T) {
	require.Equal(t,
		"21888242871839275222246405745257275088548364400416034343698204186575808495617",
		FieldPrime().String())
	require.Equal(t,
		"21888242871839275222246405745257275088696311157297823662689037894645226208583",
		Order().String())

	// Callers get copies.
	FieldPrime().SetInt64(0)
	require.NotZero(t, fieldPrime.Sign())
}

func TestFieldArithmetic(t *testing.T) {
	a := FieldElementFromInt64(7)
	b := FieldElementFromInt64(-3)

	require.True(t, addF(a, b).Equal(FieldElementFromInt64(4)))
	require.True(t, subF(b, a).Equal(FieldElementFromInt64(-10)))
	require.True(t, mulF(a, b).Equal(FieldElementFromInt64(-21)))
	require.True(t, negF(a).Equal(FieldElementFromInt64(-7)))

	// -3 is stored reduced.
	want := new(big.Int).Sub(fieldPrime, big.NewInt(3))
	require.Zero(t, b.V.Cmp(want))
}

func TestInvert(t *testing.T) {
	for _, v := range []int64{1, 2, 17, -1, 123456789} {
		f := FieldElementFromInt64(v)
		inv, err := Invert(f)
		require.NoError(t, err)
		require.True(t, mulF(f, inv).Equal(FieldElementFromInt64(1)), "field %d", v)

		s := ScalarFromInt64(v)
		sinv, err := Invert(s)
		require.NoError(t, err)
		require.True(t, mulF(s, sinv).Equal(ScalarFromInt64(1)), "scalar %d", v)
	}

	_, err := Invert(FieldElementFromInt64(0))
	require.ErrorIs(t, err, ErrInvalidInverse)

	// n reduces to zero in the scalar field.
	_, err = Invert(NewScalar(Order()))
	require.ErrorIs(t, err, ErrInvalidInverse)
}

func TestSqrt(t *testing.T) {
	sixteen := FieldElementFromInt64(16)
	r, ok := Sqrt(sixteen)
	require.True(t, ok)
	require.True(t, mulF(r, r).Equal(sixteen))
}

func TestElementEncoding(t *testing.T) {
	a := NewFieldElement(new(big.Int).Sub(fieldPrime, big.NewInt(1)))
	b := EncodeElement(a)
	require.Len(t, b, ElementSize)

	got, err := FieldElementFromBytes(b[:])
	require.NoError(t, err)
	require.True(t, got.Equal(a))

	small := EncodeElement(FieldElementFromInt64(1))
	require.Equal(t, byte(1), small[ElementSize-1])
	for _, c := range small[:ElementSize-1] {
		require.Zero(t, c)
	}

	// p itself is not canonical.
	var p [ElementSize]byte
	fieldPrime.FillBytes(p[:])
	_, err = FieldElementFromBytes(p[:])
	require.ErrorIs(t, err, ErrInvalidEncoding)

	// p is a valid scalar since n > p.
	s, err := ScalarFromBytes(p[:])
	require.NoError(t, err)
	require.Zero(t, s.V.Cmp(fieldPrime))

	_, err = ScalarFromBytes(p[1:])
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestScalarFromUniformBytes(t *testing.T) {
	var wide [64]byte
	for i := range wide {
		wide[i] = 0xff
	}
	s := ScalarFromUniformBytes(wide[:])
	require.Equal(t, -1, s.V.Cmp(groupOrder))

	want := new(big.Int).SetBytes(wide[:])
	want.Mod(want, groupOrder)
	require.Zero(t, s.V.Cmp(want))
}

func TestFieldHex(t *testing.T) {
	one := FieldElementFromInt64(1)
	h := FieldHex(one)
	require.Equal(t, "0x"+strings.Repeat("0", 63)+"1", h)

	got, err := ParseFieldHex(h)
	require.NoError(t, err)
	require.True(t, got.Equal(one))

	tests := []string{
		"",
		"0x01",
		strings.Repeat("0", 66),
		"0x" + strings.Repeat("g", 64),
		"0x" + strings.Repeat("f", 64),
	}
	for _, in := range tests {
		_, err := ParseFieldHex(in)
		require.ErrorIs(t, err, ErrInvalidEncoding, "input %q", in)
	}
}
