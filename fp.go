package fp

import "github.com/republicprotocol/fp-go/core/algebra"

type (
	Fp = algebra.Fp

	FpElement = algebra.FpElement
)

var (
	NewField = algebra.NewField

	NewFpElement = algebra.NewFpElement
)

var (
	ErrInvalidPrime = algebra.ErrInvalidPrime

	ErrInvalidResidue = algebra.ErrInvalidResidue

	ErrFieldMismatch = algebra.ErrFieldMismatch

	ErrDivisionByZero = algebra.ErrDivisionByZero

	ErrNotInvertible = algebra.ErrNotInvertible
)
