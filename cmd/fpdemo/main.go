package main

import (
	"fmt"
	"log"
	"math/big"

	"github.com/republicprotocol/fp-go/core/algebra"
)

func main() {
	a, err := algebra.NewFpElement(big.NewInt(5), big.NewInt(7))
	if err != nil {
		log.Fatal(err)
	}
	b, err := algebra.NewFpElement(big.NewInt(2), big.NewInt(7))
	if err != nil {
		log.Fatal(err)
	}

	sum, err := a.Add(b)
	if err != nil {
		log.Fatal(err)
	}
	prod, err := a.Mul(b)
	if err != nil {
		log.Fatal(err)
	}
	inv, err := b.Inv()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("in the field of integers modulo 7:\n")
	fmt.Printf("%v + %v = %v\n", a, b, sum)
	fmt.Printf("%v * %v = %v\n", a, b, prod)
	fmt.Printf("%v⁻¹ = %v\n", b, inv)
}
