package fixture

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/LHerskind/grumpkin-schnorr/grumpkin"
	"github.com/LHerskind/grumpkin-schnorr/schnorr"
)

// byteArray is a byte slice that encodes as a JSON array of numbers rather
// than base64, the shape circuit input files expect.
type byteArray []byte

// MarshalJSON implements json.Marshaler.
func (b byteArray) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 2+4*len(b))
	out = append(out, '[')
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	return append(out, ']'), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *byteArray) UnmarshalJSON(data []byte) error {
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return err
	}
	out := make([]byte, len(nums))
	for i, n := range nums {
		if n < 0 || n > 255 {
			return fmt.Errorf("byte %d out of range: %d", i, n)
		}
		out[i] = byte(n)
	}
	*b = out
	return nil
}

type jsonPoint struct {
	X          string `json:"x"`
	Y          string `json:"y"`
	IsInfinite bool   `json:"is_infinite"`
}

type jsonRecord struct {
	PublicKey jsonPoint `json:"public_key"`
	Signature byteArray `json:"signature"`
	Message   byteArray `json:"message"`
}

func coordHex(b [grumpkin.ElementSize]byte) string {
	return "0x" + hex.EncodeToString(b[:])
}

func coordBytes(s string) ([]byte, error) {
	f, err := grumpkin.ParseFieldHex(s)
	if err != nil {
		return nil, err
	}
	b := grumpkin.EncodeElement(f)
	return b[:], nil
}

// MarshalJSON implements json.Marshaler.  Coordinates are 0x prefixed, 64
// digit big-endian hex; the signature and message are arrays of byte values.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r.Signature == nil {
		return nil, fmt.Errorf("record has no signature")
	}
	if !r.PublicKey.IsValid() {
		return nil, fmt.Errorf("record has no public key")
	}
	x, y, infinite := r.PublicKey.Encode()

	msg := r.Message
	if msg == nil {
		msg = []byte{}
	}
	return json.Marshal(jsonRecord{
		PublicKey: jsonPoint{
			X:          coordHex(x),
			Y:          coordHex(y),
			IsInfinite: infinite,
		},
		Signature: r.Signature.Serialize(),
		Message:   msg,
	})
}

// UnmarshalJSON implements json.Unmarshaler.  Coordinates must be exactly 32
// bytes and on the curve, and the signature exactly 64 bytes.
func (r *Record) UnmarshalJSON(data []byte) error {
	var jr jsonRecord
	if err := json.Unmarshal(data, &jr); err != nil {
		return err
	}

	x, err := coordBytes(jr.PublicKey.X)
	if err != nil {
		return fmt.Errorf("public key x: %w", err)
	}
	y, err := coordBytes(jr.PublicKey.Y)
	if err != nil {
		return fmt.Errorf("public key y: %w", err)
	}
	pub, err := schnorr.ParsePubKey(x, y, jr.PublicKey.IsInfinite)
	if err != nil {
		return fmt.Errorf("public key: %w", err)
	}

	sig, err := schnorr.ParseSignature(jr.Signature)
	if err != nil {
		return err
	}

	r.PublicKey = pub
	r.Signature = sig
	r.Message = []byte(jr.Message)
	return nil
}

// Document is the top level object of a circuit input file.
type Document struct {
	SchnorrSignature *Record `json:"schnorr_signature"`
}
