package bigrat_test

import (
	"fmt"
	"math/big"

	"github.com/yakimovim/big-rational-numbers/bigrat"
)

func ExampleNewInt() {
	v := bigrat.NewInt(4, 2)
	fmt.Println(v)
	// Output: 2
}

func ExampleNew() {
	num, _ := new(big.Int).SetString("333333333333333333333333", 10)
	v := bigrat.New(num, big.NewInt(3))
	fmt.Println(v)
	// Output: 111111111111111111111111
}

func ExampleTry_denomZero() {
	_, err := bigrat.Try(big.NewInt(1), big.NewInt(0))
	fmt.Println(err)
	// Output: denominator is zero
}

func ExampleR_Add() {
	x := bigrat.NewInt(1, 2)
	y := bigrat.NewInt(1, 3)
	fmt.Println(x.Add(y))
	// Output: 5/6
}

func ExampleR_Div() {
	x := bigrat.NewInt(1, 2)
	y := bigrat.NewInt(2, 3)
	fmt.Println(x.Div(y))
	// Output: 3/4
}

func ExampleR_Pow() {
	x := bigrat.NewInt(2, 3)
	fmt.Println(x.Pow(2), x.Pow(0), x.Pow(-2))
	// Output: 4/9 1 9/4
}

func ExampleFromInt() {
	v := bigrat.FromInt(uint8(200))
	fmt.Println(v)
	// Output: 200
}
