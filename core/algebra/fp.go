package algebra

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ErrInvalidPrime signifies that a given prime was not positive.
var ErrInvalidPrime = errors.New("prime must be positive")

// Fp represents the field of integers modulo p, where p is a prime. The
// prime is not checked for primality; a composite modulus produces a ring in
// which some nonzero elements are not invertible, and inversion of such an
// element fails at the point of use.
type Fp struct {
	prime *big.Int
}

// NewField creates a new field from a prime. If the prime is not positive
// then ErrInvalidPrime is returned.
func NewField(prime *big.Int) (Fp, error) {
	if prime.Sign() != 1 {
		return Fp{}, ErrInvalidPrime
	}
	return Fp{big.NewInt(0).Set(prime)}, nil
}

// Prime returns a copy of the prime defining the field.
func (f Fp) Prime() *big.Int {
	return big.NewInt(0).Set(f.prime)
}

// Eq returns true if the two fields are defined by the same prime.
func (f Fp) Eq(g Fp) bool {
	return f.prime.Cmp(g.prime) == 0
}

// Contains returns true if the given integer is a residue in the field.
func (f Fp) Contains(value *big.Int) bool {
	return value.Sign() != -1 && value.Cmp(f.prime) == -1
}

// NewInField creates a new element of the field from a residue. If the
// residue is not in the range [0, p), ErrInvalidResidue is returned.
func (f Fp) NewInField(value *big.Int) (FpElement, error) {
	return NewFpElement(value, f.prime)
}

// Zero returns the additive identity of the field.
func (f Fp) Zero() FpElement {
	return FpElement{f.prime, big.NewInt(0)}
}

// One returns the multiplicative identity of the field.
func (f Fp) One() FpElement {
	return FpElement{f.prime, big.NewInt(1)}
}

// Random returns a uniformly random element of the field.
func (f Fp) Random() FpElement {
	value, err := rand.Int(rand.Reader, f.prime)
	if err != nil {
		panic("cannot read random bytes for field element")
	}
	return FpElement{f.prime, value}
}
