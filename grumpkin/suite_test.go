package grumpkin

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuite(t *testing.T) {
	suite := NewSuite()
	require.Equal(t, "Grumpkin", suite.String())
	require.Equal(t, 32, suite.ScalarLen())
	require.Equal(t, 64, suite.PointLen())
	require.True(t, suite.Point().(*Point).IsInfinite())
	require.Equal(t, 32, suite.Scalar().MarshalSize())
	require.Zero(t, suite.FieldElement().V.Sign())

	// BLAKE2s-256 of the empty string.
	h := suite.Hash()
	require.Equal(t,
		"69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9",
		hex.EncodeToString(h.Sum(nil)))

	// The XOF is deterministic for a given seed.
	var a, b [48]byte
	_, err := suite.XOF([]byte("seed")).Read(a[:])
	require.NoError(t, err)
	_, err = suite.XOF([]byte("seed")).Read(b[:])
	require.NoError(t, err)
	require.Equal(t, a, b)

	s1 := suite.Scalar().Pick(suite.RandomStream())
	s2 := suite.Scalar().Pick(suite.RandomStream())
	require.False(t, s1.Equal(s2))
}

func TestSuiteWrite(t *testing.T) {
	suite := NewSuite()
	p := suite.Point().Base()
	k := ScalarFromInt64(7)

	var buf bytes.Buffer
	require.NoError(t, suite.Write(&buf, p, k))

	pb, err := p.MarshalBinary()
	require.NoError(t, err)
	kb := EncodeElement(k)
	require.Equal(t, append(pb, kb[:]...), buf.Bytes())
}
