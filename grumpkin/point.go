package grumpkin

import (
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"io"
	"math/big"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/group/mod"
)

// PointSize is the width of the x || y binary encoding of a point.
const PointSize = 2 * ElementSize

var (
	// curveB is the constant term of y^2 = x^3 - 17.
	curveB = FieldElementFromInt64(-17)

	generatorX = FieldElementFromInt64(1)
	generatorY = NewFieldElement(mustBig("17631683881184975370165255887551781615748388533673675138860"))
)

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("grumpkin: invalid constant " + s)
	}
	return v
}

// Point is an affine Grumpkin point.  The identity carries no coordinates and
// is recognised only by its infinite flag.
//
// Points are created through Identity, Generator, NewPoint and the decoders,
// all of which enforce the curve equation.
type Point struct {
	x, y     *mod.Int
	infinite bool
}

// Identity returns the point at infinity.
func Identity() *Point {
	return &Point{infinite: true}
}

// Generator returns the fixed base point G = (1, sqrt(-16)).
func Generator() *Point {
	return &Point{x: generatorX, y: generatorY}
}

// NewPoint builds a finite point from its affine coordinates.
func NewPoint(x, y *mod.Int) (*Point, error) {
	p := &Point{
		x: NewFieldElement(&x.V),
		y: NewFieldElement(&y.V),
	}
	if !p.IsOnCurve() {
		return nil, MakeError(ErrInvalidPoint, "point is not on the curve")
	}
	return p, nil
}

// X returns the affine x coordinate, or nil for the identity.
func (p *Point) X() *mod.Int {
	if p.infinite {
		return nil
	}
	return p.x.Clone().(*mod.Int)
}

// Y returns the affine y coordinate, or nil for the identity.
func (p *Point) Y() *mod.Int {
	if p.infinite {
		return nil
	}
	return p.y.Clone().(*mod.Int)
}

// IsInfinite reports whether p is the identity.
func (p *Point) IsInfinite() bool {
	return p.infinite
}

// IsOnCurve reports whether p is the identity or satisfies y^2 = x^3 - 17.
func (p *Point) IsOnCurve() bool {
	if p.infinite {
		return true
	}
	if p.x == nil || p.y == nil {
		return false
	}
	if p.x.V.Cmp(fieldPrime) >= 0 || p.y.V.Cmp(fieldPrime) >= 0 {
		return false
	}
	return mulF(p.y, p.y).Equal(curveRHS(p.x))
}

// curveRHS returns x^3 + b.
func curveRHS(x *mod.Int) *mod.Int {
	return addF(mulF(mulF(x, x), x), curveB)
}

func checkPoints(points ...*Point) error {
	for _, p := range points {
		if p == nil || !p.IsOnCurve() {
			return MakeError(ErrInvalidPoint, "operand is not a point on the curve")
		}
	}
	return nil
}

// Add returns p + q.
func Add(p, q *Point) (*Point, error) {
	if err := checkPoints(p, q); err != nil {
		return nil, err
	}
	return add(p, q), nil
}

// Double returns 2p.
func Double(p *Point) (*Point, error) {
	if err := checkPoints(p); err != nil {
		return nil, err
	}
	return double(p), nil
}

// ScalarMul returns k*p.  k may be any integer; it is reduced modulo the
// group order first.
func ScalarMul(k *big.Int, p *Point) (*Point, error) {
	if err := checkPoints(p); err != nil {
		return nil, err
	}
	return scalarMul(k, p), nil
}

// ScalarBaseMul returns k*G.
func ScalarBaseMul(k *big.Int) *Point {
	return scalarMul(k, Generator())
}

func add(p, q *Point) *Point {
	switch {
	case p.infinite:
		return q.clone()
	case q.infinite:
		return p.clone()
	}

	if p.x.Equal(q.x) {
		if p.y.Equal(q.y) {
			return double(p)
		}
		// q = -p
		return Identity()
	}

	// lambda = (y2 - y1) / (x2 - x1), x2 != x1 here.
	inv, _ := Invert(subF(q.x, p.x))
	lambda := mulF(subF(q.y, p.y), inv)

	x3 := subF(subF(mulF(lambda, lambda), p.x), q.x)
	y3 := subF(mulF(lambda, subF(p.x, x3)), p.y)
	return &Point{x: x3, y: y3}
}

func double(p *Point) *Point {
	if p.infinite || !p.y.Nonzero() {
		return Identity()
	}

	// lambda = 3x^2 / 2y
	xx := mulF(p.x, p.x)
	num := addF(addF(xx, xx), xx)
	inv, _ := Invert(addF(p.y, p.y))
	lambda := mulF(num, inv)

	x3 := subF(mulF(lambda, lambda), addF(p.x, p.x))
	y3 := subF(mulF(lambda, subF(p.x, x3)), p.y)
	return &Point{x: x3, y: y3}
}

// scalarMul is a left to right double-and-add over the bits of k mod n.
func scalarMul(k *big.Int, p *Point) *Point {
	e := new(big.Int).Mod(k, groupOrder)
	result := Identity()
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = double(result)
		if e.Bit(i) == 1 {
			result = add(result, p)
		}
	}
	return result
}

func negate(p *Point) *Point {
	if p.infinite {
		return Identity()
	}
	return &Point{x: p.x, y: negF(p.y)}
}

func (p *Point) clone() *Point {
	if p.infinite {
		return Identity()
	}
	return &Point{
		x: p.x.Clone().(*mod.Int),
		y: p.y.Clone().(*mod.Int),
	}
}

// EncodePoint returns the canonical encoding of p: big-endian coordinates and
// the infinity flag.  The identity encodes as zero coordinates; consumers
// must check the flag first.
func EncodePoint(p *Point) (x, y [ElementSize]byte, infinite bool) {
	if p.infinite {
		return x, y, true
	}
	return EncodeElement(p.x), EncodeElement(p.y), false
}

// DecodePoint is the inverse of EncodePoint.  When infinite is set the
// coordinates are ignored.
func DecodePoint(x, y []byte, infinite bool) (*Point, error) {
	if infinite {
		return Identity(), nil
	}
	fx, err := FieldElementFromBytes(x)
	if err != nil {
		return nil, err
	}
	fy, err := FieldElementFromBytes(y)
	if err != nil {
		return nil, err
	}
	return NewPoint(fx, fy)
}

// kyber.Point implementation.

var _ kyber.Point = (*Point)(nil)

func (p *Point) assign(q *Point) *Point {
	*p = *q
	return p
}

func mustPoint(q kyber.Point) *Point {
	gp, ok := q.(*Point)
	if !ok || checkPoints(gp) != nil {
		panic(MakeError(ErrInvalidPoint, "operand is not a Grumpkin point"))
	}
	return gp
}

func scalarBig(s kyber.Scalar) *big.Int {
	if m, ok := s.(*mod.Int); ok {
		return new(big.Int).Set(&m.V)
	}
	b, err := s.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return new(big.Int).SetBytes(b)
}

// Equal reports whether p and q are the same group element.
func (p *Point) Equal(q kyber.Point) bool {
	o, ok := q.(*Point)
	if !ok {
		return false
	}
	if p.infinite || o.infinite {
		return p.infinite == o.infinite
	}
	return p.x.Equal(o.x) && p.y.Equal(o.y)
}

func (p *Point) Null() kyber.Point {
	return p.assign(Identity())
}

func (p *Point) Base() kyber.Point {
	return p.assign(Generator())
}

// Pick sets p to a random point.
func (p *Point) Pick(rand cipher.Stream) kyber.Point {
	return p.Embed(nil, rand)
}

func (p *Point) Set(q kyber.Point) kyber.Point {
	return p.assign(mustPoint(q).clone())
}

func (p *Point) Clone() kyber.Point {
	return p.clone()
}

// EmbedLen leaves one byte for the length and one for the top byte that keeps
// x below the field prime.
func (p *Point) EmbedLen() int {
	return (fieldPrime.BitLen() - 8 - 8) / 8
}

// Embed encodes up to EmbedLen bytes of data into the x coordinate of a
// random point.  The last byte of x holds the data length.
func (p *Point) Embed(data []byte, rand cipher.Stream) kyber.Point {
	dl := p.EmbedLen()
	if dl > len(data) {
		dl = len(data)
	}

	for {
		var b [ElementSize]byte
		rand.XORKeyStream(b[:], b[:])
		b[0] &= 0x1f
		if data != nil {
			b[ElementSize-1] = byte(dl)
			copy(b[ElementSize-1-dl:ElementSize-1], data[:dl])
		}

		x := NewFieldElement(new(big.Int).SetBytes(b[:]))
		y, ok := Sqrt(curveRHS(x))
		if !ok {
			continue
		}

		var flip [1]byte
		rand.XORKeyStream(flip[:], flip[:])
		if flip[0]&1 == 1 {
			y = negF(y)
		}
		return p.assign(&Point{x: x, y: y})
	}
}

// Data extracts bytes previously embedded with Embed.
func (p *Point) Data() ([]byte, error) {
	if p.infinite {
		return nil, errors.New("grumpkin: identity carries no embedded data")
	}
	b := EncodeElement(p.x)
	dl := int(b[ElementSize-1])
	if dl > p.EmbedLen() {
		return nil, errors.New("grumpkin: invalid embedded data length")
	}
	return b[ElementSize-1-dl : ElementSize-1], nil
}

func (p *Point) Add(a, b kyber.Point) kyber.Point {
	return p.assign(add(mustPoint(a), mustPoint(b)))
}

func (p *Point) Sub(a, b kyber.Point) kyber.Point {
	return p.assign(add(mustPoint(a), negate(mustPoint(b))))
}

func (p *Point) Neg(a kyber.Point) kyber.Point {
	return p.assign(negate(mustPoint(a)))
}

// Mul sets p to s*q, or s*G when q is nil.
func (p *Point) Mul(s kyber.Scalar, q kyber.Point) kyber.Point {
	base := Generator()
	if q != nil {
		base = mustPoint(q)
	}
	return p.assign(scalarMul(scalarBig(s), base))
}

// MarshalSize returns the width of x || y.
func (p *Point) MarshalSize() int {
	return PointSize
}

// MarshalBinary returns x || y in big-endian.  The identity is all zeroes,
// which is unambiguous since (0, 0) is not on the curve.
func (p *Point) MarshalBinary() ([]byte, error) {
	x, y, _ := EncodePoint(p)
	buf := make([]byte, 0, PointSize)
	buf = append(buf, x[:]...)
	return append(buf, y[:]...), nil
}

func (p *Point) UnmarshalBinary(buf []byte) error {
	if len(buf) != PointSize {
		return MakeError(ErrInvalidEncoding, "point encoding must be 64 bytes")
	}
	infinite := true
	for _, c := range buf {
		if c != 0 {
			infinite = false
			break
		}
	}
	q, err := DecodePoint(buf[:ElementSize], buf[ElementSize:], infinite)
	if err != nil {
		return err
	}
	p.assign(q)
	return nil
}

func (p *Point) MarshalTo(w io.Writer) (int, error) {
	buf, err := p.MarshalBinary()
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}

func (p *Point) UnmarshalFrom(r io.Reader) (int, error) {
	buf := make([]byte, PointSize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return n, err
	}
	return n, p.UnmarshalBinary(buf)
}

func (p *Point) String() string {
	if p.infinite {
		return "(infinity)"
	}
	x := EncodeElement(p.x)
	y := EncodeElement(p.y)
	return "(0x" + hex.EncodeToString(x[:]) + ",0x" + hex.EncodeToString(y[:]) + ")"
}
