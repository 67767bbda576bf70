package algebra

import "math/big"

// Inv returns the multiplicative inverse of the element, computed from the
// Bézout coefficients of the extended Euclidean algorithm on the residue and
// the prime. The zero element has no inverse, and ErrNotInvertible is
// returned for it. A gcd that is neither 1 nor the prime means the residue
// shares a factor with the modulus, which can only happen when the modulus is
// not prime; this is also surfaced as ErrNotInvertible rather than silently
// returning a wrong value.
func (a FpElement) Inv() (FpElement, error) {
	gcd, x, _ := gcdExtended(a.value, a.prime)
	if gcd.Cmp(a.prime) == 0 {
		return FpElement{}, ErrNotInvertible
	}
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return FpElement{}, ErrNotInvertible
	}
	x.Mod(x, a.prime)
	return FpElement{a.prime, x}, nil
}

// gcdExtended computes the gcd of a and b along with the Bézout coefficients
// x and y satisfying a*x + b*y = gcd(a, b). Both arguments must be
// non-negative, which keeps the Euclidean division below equal to floor
// division. The recursion depth is bounded by the bit length of b.
func gcdExtended(a, b *big.Int) (gcd, x, y *big.Int) {
	if a.Sign() == 0 {
		return big.NewInt(0).Set(b), big.NewInt(0), big.NewInt(1)
	}

	quo, rem := big.NewInt(0).DivMod(b, a, big.NewInt(0))
	gcd, x1, y1 := gcdExtended(rem, a)

	x = big.NewInt(0).Sub(y1, quo.Mul(quo, x1))
	y = x1

	return gcd, x, y
}
