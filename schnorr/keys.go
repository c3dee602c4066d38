package schnorr

import (
	crand "crypto/rand"
	"fmt"
	"io"

	"github.com/LHerskind/grumpkin-schnorr/grumpkin"
	"go.dedis.ch/kyber/v3/group/mod"
)

const (
	// PrivKeyBytesLen is the length of a serialized private key.
	PrivKeyBytesLen = grumpkin.ElementSize

	// uniformBytesLen is the number of random bytes reduced into one scalar.
	// Twice the order width keeps the modular bias negligible.
	uniformBytesLen = 2 * grumpkin.ElementSize

	// maxZeroDraws bounds how many zero scalars a random source may produce
	// before it is considered broken.
	maxZeroDraws = 8
)

var suite = grumpkin.NewSuite()

// randomScalar draws a uniformly random nonzero scalar from rand.  A nil
// reader selects crypto/rand.
func randomScalar(rand io.Reader) (*mod.Int, error) {
	if rand == nil {
		rand = crand.Reader
	}

	var buf [uniformBytesLen]byte
	defer zeroBytes(buf[:])

	for i := 0; i < maxZeroDraws; i++ {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			str := fmt.Sprintf("unable to read %d random bytes: %v",
				uniformBytesLen, err)
			return nil, signatureError(ErrInsufficientRandomness, str)
		}
		s := grumpkin.ScalarFromUniformBytes(buf[:])
		if s.Nonzero() {
			return s, nil
		}
	}

	str := fmt.Sprintf("random source produced %d zero scalars", maxZeroDraws)
	return nil, signatureError(ErrInsufficientRandomness, str)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func zeroScalar(s *mod.Int) {
	s.V.SetInt64(0)
}

// PrivateKey is a nonzero scalar below the group order.
type PrivateKey struct {
	key *mod.Int
}

// GeneratePrivateKey returns a new private key drawn from rand, or from
// crypto/rand when rand is nil.
func GeneratePrivateKey(rand io.Reader) (*PrivateKey, error) {
	k, err := randomScalar(rand)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: k}, nil
}

// PrivKeyFromScalar wraps s as a private key.  Zero is rejected.
func PrivKeyFromScalar(s *mod.Int) (*PrivateKey, error) {
	k := grumpkin.NewScalar(&s.V)
	if !k.Nonzero() {
		return nil, signatureError(ErrInvalidPrivateKey, "private key is zero")
	}
	return &PrivateKey{key: k}, nil
}

// PrivKeyFromBytes parses a 32 byte big-endian private key.  Values that are
// zero or not below the group order are rejected.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	s, err := grumpkin.ScalarFromBytes(b)
	if err != nil {
		str := fmt.Sprintf("invalid private key encoding: %v", err)
		return nil, signatureError(ErrInvalidPrivateKey, str)
	}
	return PrivKeyFromScalar(s)
}

// PubKey returns the public key x*G.
func (p *PrivateKey) PubKey() PublicKey {
	pt := suite.Point().Mul(p.key, nil).(*grumpkin.Point)
	return PublicKey{point: pt}
}

// Serialize returns the 32 byte big-endian encoding of the private key.
func (p *PrivateKey) Serialize() []byte {
	b := grumpkin.EncodeElement(p.key)
	return b[:]
}

// Zero clears the secret scalar.
func (p *PrivateKey) Zero() {
	zeroScalar(p.key)
}

// PublicKey is a Grumpkin point derived from a private key.
type PublicKey struct {
	point *grumpkin.Point
}

// NewPublicKey wraps p after checking it is on the curve.
func NewPublicKey(p *grumpkin.Point) (PublicKey, error) {
	if p == nil || !p.IsOnCurve() {
		return PublicKey{}, signatureError(ErrInvalidPoint,
			"public key is not a point on the curve")
	}
	return PublicKey{point: p.Clone().(*grumpkin.Point)}, nil
}

// ParsePubKey decodes the fixed width coordinates and infinity flag of a
// public key.
func ParsePubKey(x, y []byte, infinite bool) (PublicKey, error) {
	p, err := grumpkin.DecodePoint(x, y, infinite)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{point: p}, nil
}

// Point returns a copy of the underlying curve point.
func (k PublicKey) Point() *grumpkin.Point {
	if k.point == nil {
		return nil
	}
	return k.point.Clone().(*grumpkin.Point)
}

// IsValid reports whether k holds a point.  The zero PublicKey does not.
func (k PublicKey) IsValid() bool {
	return k.point != nil
}

// Encode returns the big-endian coordinates and infinity flag.  The zero
// PublicKey encodes as zero coordinates with the flag unset.
func (k PublicKey) Encode() (x, y [grumpkin.ElementSize]byte, infinite bool) {
	if k.point == nil {
		return x, y, false
	}
	return grumpkin.EncodePoint(k.point)
}

// Serialize returns x || y, 64 bytes.
func (k PublicKey) Serialize() []byte {
	if k.point == nil {
		return make([]byte, grumpkin.PointSize)
	}
	b, _ := k.point.MarshalBinary()
	return b
}

// IsEqual reports whether both keys are the same point.
func (k PublicKey) IsEqual(other PublicKey) bool {
	if k.point == nil || other.point == nil {
		return k.point == other.point
	}
	return k.point.Equal(other.point)
}

func (k PublicKey) String() string {
	if k.point == nil {
		return "<nil>"
	}
	return k.point.String()
}
