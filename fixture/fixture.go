// Package fixture assembles signed test vectors for a circuit side Schnorr
// verifier: a public key, a signature and the signed message.
package fixture

import (
	"io"

	"github.com/LHerskind/grumpkin-schnorr/schnorr"
)

// ReferenceMessage is the 32 byte message signed by the reference vector.
var ReferenceMessage = []byte{
	122, 73, 139, 47, 208, 5, 141, 100, 197, 228, 151, 29, 207, 222, 14, 206,
	6, 242, 217, 47, 241, 190, 80, 228, 233, 173, 169, 165, 31, 178, 236, 0,
}

// Record is a single test vector.
type Record struct {
	PublicKey schnorr.PublicKey
	Signature *schnorr.Signature
	Message   []byte
}

// Assemble derives the public key of sk, signs message and packages the
// result.  Errors from key derivation or signing are returned unchanged.
func Assemble(sk *schnorr.PrivateKey, message []byte, rand io.Reader) (*Record, error) {
	sig, err := schnorr.Sign(sk, message, rand)
	if err != nil {
		return nil, err
	}
	pub := sk.PubKey()

	msg := make([]byte, len(message))
	copy(msg, message)

	log.Debugf("assembled vector for key %v over %d byte message", pub,
		len(msg))

	return &Record{
		PublicKey: pub,
		Signature: sig,
		Message:   msg,
	}, nil
}

// Generate draws a fresh private key from rand and assembles a vector for
// message.  The private key is cleared before returning.
func Generate(message []byte, rand io.Reader) (*Record, error) {
	sk, err := schnorr.GeneratePrivateKey(rand)
	if err != nil {
		return nil, err
	}
	defer sk.Zero()

	return Assemble(sk, message, rand)
}

// Verify reports whether the record's signature is valid for its message
// and public key.
func (r *Record) Verify() bool {
	if r.Signature == nil {
		return false
	}
	return r.Signature.Verify(r.Message, r.PublicKey)
}

// VerifyDetailed is Verify reporting the reason for a failure.
func (r *Record) VerifyDetailed() error {
	if r.Signature == nil {
		return schnorr.Error{
			Err:         schnorr.ErrMalformedSignature,
			Description: "record has no signature",
		}
	}
	return r.Signature.VerifyDetailed(r.Message, r.PublicKey)
}
