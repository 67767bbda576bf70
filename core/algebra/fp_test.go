package algebra_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/extensions/table"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/republicprotocol/fp-go/core/algebra"
)

var _ = Describe("Finite field Fp", func() {
	const Trials = 50

	Context("when constructing a field", func() {
		Context("with a positive number", func() {
			DescribeTable("it should succeed", func(prime *big.Int) {
				_, err := NewField(prime)
				Expect(err).ToNot(HaveOccurred())
			},
				PrimeEntries...,
			)

			// Primality is never validated, so composite moduli are accepted
			// and fail later, at inversion.
			DescribeTable("it should succeed even for composite numbers", func(composite *big.Int) {
				_, err := NewField(composite)
				Expect(err).ToNot(HaveOccurred())
			},
				CompositeEntries...,
			)
		})

		Context("with a number that is not positive", func() {
			It("should return ErrInvalidPrime", func() {
				_, err := NewField(big.NewInt(0))
				Expect(err).To(Equal(ErrInvalidPrime))

				for i := 0; i < Trials; i++ {
					negative := RandomInField(big.NewInt(0).SetUint64(^uint64(0)))
					negative.Neg(negative)
					negative.Sub(negative, big.NewInt(1))

					_, err := NewField(negative)
					Expect(err).To(Equal(ErrInvalidPrime))
				}
			})
		})
	})

	Context("when checking if an integer is an element of the field", func() {
		DescribeTable("it should succeed in determining containment", func(prime *big.Int) {
			field, _ := NewField(prime)
			for i := 0; i < Trials; i++ {
				if RandomBool() {
					Expect(field.Contains(RandomNotInField(prime))).To(BeFalse())
				} else {
					Expect(field.Contains(RandomInField(prime))).To(BeTrue())
				}
			}
		},
			PrimeEntries...,
		)
	})

	Context("when creating an element from a residue", func() {
		DescribeTable("it should agree with the element constructor", func(prime *big.Int) {
			field, _ := NewField(prime)
			for i := 0; i < Trials; i++ {
				value := RandomInField(prime)
				a, err := field.NewInField(value)
				Expect(err).ToNot(HaveOccurred())

				b, err := NewFpElement(value, prime)
				Expect(err).ToNot(HaveOccurred())
				Expect(a.Eq(b)).To(BeTrue())
			}

			_, err := field.NewInField(RandomNotInField(prime))
			Expect(err).To(Equal(ErrInvalidResidue))
		},
			PrimeEntries...,
		)
	})

	Context("when creating a random field element", func() {
		DescribeTable("it should always be a residue in the field", func(prime *big.Int) {
			field, _ := NewField(prime)
			for i := 0; i < Trials; i++ {
				a := field.Random()
				Expect(field.Contains(a.Value())).To(BeTrue())
			}
		},
			PrimeEntries...,
		)
	})

	Context("when creating the identity elements", func() {
		DescribeTable("zero should be the additive identity", func(prime *big.Int) {
			field, _ := NewField(prime)
			Expect(field.Zero().IsZero()).To(BeTrue())
			for i := 0; i < Trials; i++ {
				a := field.Random()
				sum, err := a.Add(field.Zero())
				Expect(err).ToNot(HaveOccurred())
				Expect(sum.Eq(a)).To(BeTrue())
			}
		},
			PrimeEntries...,
		)

		DescribeTable("one should be the multiplicative identity", func(prime *big.Int) {
			field, _ := NewField(prime)
			for i := 0; i < Trials; i++ {
				a := field.Random()
				prod, err := a.Mul(field.One())
				Expect(err).ToNot(HaveOccurred())
				Expect(prod.Eq(a)).To(BeTrue())
			}
		},
			PrimeEntries...,
		)
	})

	Context("when reading the prime of a field", func() {
		It("should return a copy that cannot mutate the field", func() {
			field, _ := NewField(big.NewInt(7))
			prime := field.Prime()
			prime.SetInt64(11)
			Expect(field.Prime().Int64()).To(Equal(int64(7)))
		})
	})
})
