package schnorr

import (
	"crypto/subtle"
	"io"

	"github.com/LHerskind/grumpkin-schnorr/grumpkin"
	"github.com/LHerskind/grumpkin-schnorr/pedersen"
	"go.dedis.ch/kyber/v3/group/mod"
)

// challenge computes BLAKE2s(pedersen(R.x, P.x, P.y) || m).  The Pedersen
// hash compresses the commitment and key into one field element so the
// circuit hashes 32 + len(m) bytes.
func challenge(r, pub *grumpkin.Point, msg []byte) [scalarSize]byte {
	compressed := pedersen.Hash(r.X(), pub.X(), pub.Y())
	enc := grumpkin.EncodeElement(compressed)

	h := suite.Hash()
	_, _ = h.Write(enc[:])
	_, _ = h.Write(msg)

	var e [scalarSize]byte
	copy(e[:], h.Sum(nil))
	return e
}

// Sign produces a signature of msg under privKey, drawing the nonce from rand
// (crypto/rand when nil).  Every call uses a fresh nonce, so signing the same
// message twice yields two different valid signatures.
func Sign(privKey *PrivateKey, msg []byte, rand io.Reader) (*Signature, error) {
	// The algorithm for producing a signature is:
	//
	// 1. k = random nonzero scalar
	// 2. R = k*G
	// 3. e_raw = BLAKE2s(pedersen(R.x, P.x, P.y) || m), e = e_raw mod n
	// 4. s = k - e*x mod n
	// 5. Return s || e_raw, starting over when s or e is zero.
	if privKey == nil || privKey.key == nil || !privKey.key.Nonzero() {
		return nil, signatureError(ErrInvalidPrivateKey, "private key is unset")
	}
	pub := privKey.PubKey()

	for {
		// Step 1.
		k, err := randomScalar(rand)
		if err != nil {
			return nil, err
		}

		sig := signWithNonce(privKey, pub, k, msg)
		zeroScalar(k)
		if sig != nil {
			return sig, nil
		}
		log.Debugf("degenerate signature, drawing a new nonce")
	}
}

func signWithNonce(privKey *PrivateKey, pub PublicKey, k *mod.Int, msg []byte) *Signature {
	// Step 2.
	r := suite.Point().Mul(k, nil).(*grumpkin.Point)

	// Step 3.
	eRaw := challenge(r, pub.point, msg)
	e := grumpkin.ScalarFromUniformBytes(eRaw[:])
	if !e.Nonzero() {
		return nil
	}

	// Step 4.
	s := suite.Scalar().Sub(k, suite.Scalar().Mul(e, privKey.key)).(*mod.Int)
	if !s.Nonzero() {
		return nil
	}

	// Step 5.
	return &Signature{s: s, e: eRaw}
}

// schnorrVerify attempts to verify the signature for the provided message and
// public key and either returns nil if successful or a specific error
// indicating why it failed if not successful.
//
// This differs from the exported Verify method in that it returns a specific
// error to support better testing while the exported method simply returns a
// bool indicating success or failure.
func schnorrVerify(sig *Signature, msg []byte, pubKey PublicKey) error {
	// 1. Fail if P is not a finite point on the curve.
	// 2. Fail if s = 0 or e = 0.
	// 3. R = s*G + e*P
	// 4. Fail if R is the point at infinity.
	// 5. Fail if BLAKE2s(pedersen(R.x, P.x, P.y) || m) != e_raw.

	// Step 1.
	if pubKey.point == nil || !pubKey.point.IsOnCurve() {
		return signatureError(ErrInvalidPoint, "pubkey point is not on curve")
	}
	if pubKey.point.IsInfinite() {
		return signatureError(ErrPubKeyInfinite, "pubkey is the point at infinity")
	}

	// Step 2.
	if !sig.s.Nonzero() {
		return signatureError(ErrSigSIsZero, "signature s is zero")
	}
	e := sig.E()
	if !e.Nonzero() {
		return signatureError(ErrSigEIsZero, "signature e is zero")
	}

	// Step 3.
	//
	// g^s * y^e = g^(k - xe) * g^(xe) = g^k
	sG := suite.Point().Mul(sig.s, nil)
	eP := suite.Point().Mul(e, pubKey.point)
	r := suite.Point().Add(sG, eP).(*grumpkin.Point)

	// Step 4.
	if r.IsInfinite() {
		str := "calculated R point is the point at infinity"
		return signatureError(ErrSigRIsInfinity, str)
	}

	// Step 5.
	target := challenge(r, pubKey.point, msg)
	if subtle.ConstantTimeCompare(target[:], sig.e[:]) != 1 {
		return signatureError(ErrChallengeMismatch, "challenge mismatch")
	}

	return nil
}

// Verify returns whether or not the signature is valid for the provided
// message and public key.
func (sig *Signature) Verify(msg []byte, pubKey PublicKey) bool {
	return schnorrVerify(sig, msg, pubKey) == nil
}

// VerifyDetailed is Verify reporting why verification failed.
func (sig *Signature) VerifyDetailed(msg []byte, pubKey PublicKey) error {
	return schnorrVerify(sig, msg, pubKey)
}

// Verify parses the serialized signature and checks it against msg and
// pubKey.  Malformed signatures are logged and reported as invalid.
func Verify(pubKey PublicKey, msg, sig []byte) bool {
	parsed, err := ParseSignature(sig)
	if err != nil {
		log.Debugf("rejecting signature: %v", err)
		return false
	}
	if err := schnorrVerify(parsed, msg, pubKey); err != nil {
		log.Tracef("signature does not verify: %v", err)
		return false
	}
	return true
}
