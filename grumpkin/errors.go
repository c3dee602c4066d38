package grumpkin

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidInverse is returned when inverting the zero element of the
	// base field or of the scalar field.
	ErrInvalidInverse = ErrorKind("ErrInvalidInverse")

	// ErrInvalidPoint is returned when a point does not satisfy the curve
	// equation.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrInvalidEncoding is returned when a field element, scalar or point
	// encoding has the wrong width or a value that is not fully reduced.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrInsufficientRandomness is returned when the secure random source
	// fails or returns fewer bytes than requested.
	ErrInsufficientRandomness = ErrorKind("ErrInsufficientRandomness")

	// ErrMalformedSignature is returned when a signature does not have the
	// fixed 64 byte layout or carries an out of range component.
	ErrMalformedSignature = ErrorKind("ErrMalformedSignature")

	// ErrInvalidPrivateKey is returned when a private key is zero or not
	// below the group order.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to Grumpkin arithmetic or to the Schnorr
// scheme built on top of it.  It has full support for errors.Is and errors.As,
// so the caller can ascertain the specific reason for the error by checking
// the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// MakeError creates an Error given a set of arguments.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
