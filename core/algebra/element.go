package algebra

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidResidue signifies that a residue was given that is not in the
	// range [0, p) for the prime p defining the field.
	ErrInvalidResidue = errors.New("residue is not in the range defined by the prime")

	// ErrFieldMismatch signifies that a binary operation was attempted on two
	// elements from fields defined by different primes.
	ErrFieldMismatch = errors.New("elements are from different fields")

	// ErrDivisionByZero signifies that a division by the zero element was
	// attempted.
	ErrDivisionByZero = errors.New("cannot divide by the zero element")

	// ErrNotInvertible signifies that an element has no multiplicative
	// inverse. This happens for the zero element, and for any element that
	// shares a nontrivial factor with the modulus.
	ErrNotInvertible = errors.New("element has no multiplicative inverse")
)

// An FpElement is an immutable element of the field of integers modulo a
// prime: a residue in the range [0, p). Arithmetic methods never modify their
// receiver or arguments; they allocate and return a new element.
type FpElement struct {
	prime, value *big.Int
}

// NewFpElement creates a new FpElement from a residue and a prime. The
// residue must already be reduced; if it is negative, or not less than the
// prime, ErrInvalidResidue is returned. Both integers are copied, so later
// mutation of the arguments cannot affect the element.
func NewFpElement(value, prime *big.Int) (FpElement, error) {
	if value.Sign() == -1 || value.Cmp(prime) != -1 {
		return FpElement{}, ErrInvalidResidue
	}
	return FpElement{
		big.NewInt(0).Set(prime),
		big.NewInt(0).Set(value),
	}, nil
}

// Field returns the field that the element belongs to.
func (a FpElement) Field() Fp {
	return Fp{a.prime}
}

// Value returns a copy of the residue of the element.
func (a FpElement) Value() *big.Int {
	return big.NewInt(0).Set(a.value)
}

// Prime returns a copy of the prime defining the field of the element.
func (a FpElement) Prime() *big.Int {
	return big.NewInt(0).Set(a.prime)
}

// FieldEq returns true if the two elements are in the same field.
func (a FpElement) FieldEq(b FpElement) bool {
	return a.prime.Cmp(b.prime) == 0
}

// Eq returns true if the two elements are in the same field and have the
// same residue.
func (a FpElement) Eq(b FpElement) bool {
	return a.prime.Cmp(b.prime) == 0 && a.value.Cmp(b.value) == 0
}

// IsZero returns true if the element is the additive identity.
func (a FpElement) IsZero() bool {
	return a.value.Sign() == 0
}

// IsOne returns true if the element is the multiplicative identity.
func (a FpElement) IsOne() bool {
	return a.value.Cmp(big.NewInt(1)) == 0
}

// Add computes lhs + rhs in the field. If the two elements are not in the
// same field, ErrFieldMismatch is returned.
func (lhs FpElement) Add(rhs FpElement) (FpElement, error) {
	if !lhs.FieldEq(rhs) {
		return FpElement{}, ErrFieldMismatch
	}
	value := big.NewInt(0).Add(lhs.value, rhs.value)
	value.Mod(value, lhs.prime)
	return FpElement{lhs.prime, value}, nil
}

// Sub computes lhs - rhs in the field. If the two elements are not in the
// same field, ErrFieldMismatch is returned.
func (lhs FpElement) Sub(rhs FpElement) (FpElement, error) {
	if !lhs.FieldEq(rhs) {
		return FpElement{}, ErrFieldMismatch
	}
	value := big.NewInt(0).Sub(lhs.value, rhs.value)
	value.Mod(value, lhs.prime)
	return FpElement{lhs.prime, value}, nil
}

// Mul computes lhs * rhs in the field. If the two elements are not in the
// same field, ErrFieldMismatch is returned.
func (lhs FpElement) Mul(rhs FpElement) (FpElement, error) {
	if !lhs.FieldEq(rhs) {
		return FpElement{}, ErrFieldMismatch
	}
	value := big.NewInt(0).Mul(lhs.value, rhs.value)
	value.Mod(value, lhs.prime)
	return FpElement{lhs.prime, value}, nil
}

// Div computes lhs * rhs⁻¹ in the field. If the two elements are not in the
// same field, ErrFieldMismatch is returned, and if rhs is the zero element,
// ErrDivisionByZero is returned.
func (lhs FpElement) Div(rhs FpElement) (FpElement, error) {
	if !lhs.FieldEq(rhs) {
		return FpElement{}, ErrFieldMismatch
	}
	if rhs.IsZero() {
		return FpElement{}, ErrDivisionByZero
	}
	inv, err := rhs.Inv()
	if err != nil {
		return FpElement{}, err
	}
	return lhs.Mul(inv)
}

// AddInt computes lhs + rhs for a bare integer rhs. The integer is not range
// checked; it is reduced modulo the prime as part of the arithmetic.
func (lhs FpElement) AddInt(rhs *big.Int) FpElement {
	value := big.NewInt(0).Add(lhs.value, rhs)
	value.Mod(value, lhs.prime)
	return FpElement{lhs.prime, value}
}

// SubInt computes lhs - rhs for a bare integer rhs. The result is always the
// non-negative residue, even when the intermediate difference is negative.
func (lhs FpElement) SubInt(rhs *big.Int) FpElement {
	value := big.NewInt(0).Sub(lhs.value, rhs)
	value.Mod(value, lhs.prime)
	return FpElement{lhs.prime, value}
}

// MulInt computes lhs * rhs for a bare integer rhs. The integer is not range
// checked; it is reduced modulo the prime as part of the arithmetic.
func (lhs FpElement) MulInt(rhs *big.Int) FpElement {
	value := big.NewInt(0).Mul(lhs.value, rhs)
	value.Mod(value, lhs.prime)
	return FpElement{lhs.prime, value}
}

// DivInt computes lhs / rhs for a bare integer rhs. Unlike the other bare
// integer operations, the divisor must already be a residue in [0, p), and
// ErrInvalidResidue is returned when it is not. Division by zero returns
// ErrDivisionByZero.
func (lhs FpElement) DivInt(rhs *big.Int) (FpElement, error) {
	divisor, err := NewFpElement(rhs, lhs.prime)
	if err != nil {
		return FpElement{}, err
	}
	return lhs.Div(divisor)
}

// Exp computes lhs raised to the given integer exponent. A zero exponent
// returns the multiplicative identity, for every base including zero. A
// negative exponent inverts the base, returning ErrNotInvertible for the
// zero element, and then exponentiates by the negated exponent.
func (lhs FpElement) Exp(exponent *big.Int) (FpElement, error) {
	switch exponent.Sign() {
	case 0:
		return FpElement{lhs.prime, big.NewInt(1)}, nil
	case -1:
		inv, err := lhs.Inv()
		if err != nil {
			return FpElement{}, err
		}
		return inv.Exp(big.NewInt(0).Neg(exponent))
	}
	value := big.NewInt(0).Exp(lhs.value, exponent, lhs.prime)
	return FpElement{lhs.prime, value}, nil
}

// ExpElement computes lhs raised to the residue of rhs. The residue is used
// as a plain integer count: it is not reduced modulo p-1, and rhs does not
// need to be in the same field as lhs.
func (lhs FpElement) ExpElement(rhs FpElement) (FpElement, error) {
	return lhs.Exp(rhs.value)
}

// Neg returns the additive inverse of the element.
func (a FpElement) Neg() FpElement {
	value := big.NewInt(0).Sub(a.prime, a.value)
	value.Mod(value, a.prime)
	return FpElement{a.prime, value}
}

// String returns the decimal representation of the residue. The prime is not
// part of the representation.
func (a FpElement) String() string {
	return a.value.String()
}
