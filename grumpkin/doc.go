/*
Package grumpkin implements the Grumpkin elliptic curve in pure Go.

Grumpkin is the curve y^2 = x^3 - 17 defined over the BN254 scalar field.  Its
group of points has prime order equal to the BN254 base field prime, so the two
curves form a cycle and Grumpkin arithmetic is native inside BN254 circuits.

The package provides:

  - Base field and scalar field elements as kyber mod.Int values
  - Affine points with an explicit infinity flag
  - Point addition, doubling and double-and-add scalar multiplication
  - Canonical 32 byte big-endian encodings and 0x prefixed hex
  - Barretenberg compatible hash to curve and generator derivation
  - A kyber suites.Suite so the curve can be used with kyber based code

Field and scalar constants are taken from the BN254 packages of gnark-crypto.
*/
package grumpkin
