package schnorr

import (
	"github.com/LHerskind/grumpkin-schnorr/grumpkin"
)

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind = grumpkin.ErrorKind

// Error identifies an error related to a schnorr signature. It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error = grumpkin.Error

// Error kinds shared with the curve package.
const (
	ErrInsufficientRandomness = grumpkin.ErrInsufficientRandomness
	ErrMalformedSignature     = grumpkin.ErrMalformedSignature
	ErrInvalidPrivateKey      = grumpkin.ErrInvalidPrivateKey
	ErrInvalidPoint           = grumpkin.ErrInvalidPoint
)

// Error kinds specific to signature verification.
const (
	// ErrPubKeyInfinite is returned when verifying against the point at
	// infinity, for which any message can be forged.
	ErrPubKeyInfinite = ErrorKind("ErrPubKeyInfinite")

	// ErrSigSIsZero is returned when the response scalar of a signature is
	// zero.
	ErrSigSIsZero = ErrorKind("ErrSigSIsZero")

	// ErrSigEIsZero is returned when the challenge of a signature reduces to
	// zero.
	ErrSigEIsZero = ErrorKind("ErrSigEIsZero")

	// ErrSigRIsInfinity is returned when the recomputed commitment s*G + e*P
	// is the point at infinity.
	ErrSigRIsInfinity = ErrorKind("ErrSigRIsInfinity")

	// ErrChallengeMismatch is returned when the recomputed challenge does not
	// match the one carried by the signature.
	ErrChallengeMismatch = ErrorKind("ErrChallengeMismatch")
)

// signatureError creates an Error given a set of arguments.
func signatureError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
