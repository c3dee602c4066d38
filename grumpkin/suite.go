package grumpkin

import (
	"crypto/cipher"
	"hash"
	"io"
	"math/big"
	"reflect"

	"go.dedis.ch/fixbuf"
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/group/mod"
	"go.dedis.ch/kyber/v3/suites"
	"go.dedis.ch/kyber/v3/util/random"
	"go.dedis.ch/kyber/v3/xof/blake2xb"
	"golang.org/x/crypto/blake2s"
)

// Suite is the Grumpkin group together with the hash and randomness choices
// of the Aztec Schnorr scheme: BLAKE2s-256 as the hash, blake2xb as the XOF.
type Suite struct{}

var _ suites.Suite = (*Suite)(nil)

// NewSuite returns the Grumpkin suite.
func NewSuite() *Suite {
	return &Suite{}
}

func (s *Suite) String() string {
	return "Grumpkin"
}

func (s *Suite) ScalarLen() int {
	return ElementSize
}

// Scalar returns a zero scalar modulo the group order.
func (s *Suite) Scalar() kyber.Scalar {
	return NewScalar(new(big.Int))
}

func (s *Suite) PointLen() int {
	return PointSize
}

// Point returns the identity.
func (s *Suite) Point() kyber.Point {
	return Identity()
}

func (s *Suite) Hash() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		// Only a key longer than 32 bytes makes New256 fail.
		panic(err)
	}
	return h
}

func (s *Suite) XOF(seed []byte) kyber.XOF {
	return blake2xb.New(seed)
}

// RandomStream returns a stream backed by crypto/rand.
func (s *Suite) RandomStream() cipher.Stream {
	return random.New()
}

// Write encodes points and scalars into w as fixed width binary.
func (s *Suite) Write(w io.Writer, objs ...interface{}) error {
	return fixbuf.Write(w, objs)
}

// Read decodes objects written by Write.
func (s *Suite) Read(r io.Reader, objs ...interface{}) error {
	return fixbuf.Read(r, s, objs)
}

var (
	scalarType = reflect.TypeOf((*kyber.Scalar)(nil)).Elem()
	pointType  = reflect.TypeOf((*kyber.Point)(nil)).Elem()
)

// New constructs the zero value for the kyber.Scalar and kyber.Point
// interface types when decoding.
func (s *Suite) New(t reflect.Type) interface{} {
	switch t {
	case scalarType:
		return s.Scalar()
	case pointType:
		return s.Point()
	}
	return nil
}

// FieldElement returns a zero base field element.
func (s *Suite) FieldElement() *mod.Int {
	return NewFieldElement(new(big.Int))
}
